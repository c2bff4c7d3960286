package main

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go-multiuser-todo/backend/internal/config"
	"go-multiuser-todo/backend/internal/database"
	"go-multiuser-todo/backend/internal/logging"
)

var v = viper.New()

var rootCmd = &cobra.Command{
	Use:           "todo-api",
	Short:         "multi-user todo list backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("env-file", ".env", "dotenv file to load before reading the environment")
	flags.Int("port", 3004, "port to listen on")
	flags.String("db-driver", config.DriverSQLite, "database driver (sqlite or mysql)")
	flags.String("db-path", "todos.db", "sqlite database file")

	for key, name := range map[string]string{
		"port":      "port",
		"db_driver": "db-driver",
		"db_path":   "db-path",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// bootstrap は設定とログを初期化し、スキーマ作成済みのデータベース接続を返します。
func bootstrap(cmd *cobra.Command) (*config.Config, *sql.DB, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(v, envFile)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to load configuration")
	}
	if err := logging.Setup(cfg.LogLevel); err != nil {
		return nil, nil, errors.Wrapf(err, "invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	gin.SetMode(cfg.GinMode)

	if cfg.UsesDevSecret() {
		logrus.Warn("JWT_SECRET is not set, signing tokens with the development secret")
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	logrus.Debug("ensuring users and todos tables are present")
	if err := database.EnsureSchema(db, cfg.DBDriver); err != nil {
		db.Close()
		return nil, nil, err
	}
	return cfg, db, nil
}
