package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// migrateCmd はテーブルの作成のみを行います。既存のテーブルは変更しません。
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "creates the users and todos tables if they do not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		logrus.WithField("driver", cfg.DBDriver).Info("schema is up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
