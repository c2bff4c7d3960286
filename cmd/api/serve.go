package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"go-multiuser-todo/backend/internal/routes"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves the api",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		server := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           routes.SetupRouter(db, cfg),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		done := make(chan struct{})
		go func() {
			<-ctx.Done()
			logrus.Info("Signal received. shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logrus.Error(err)
			}
			close(done)
		}()

		logrus.Infof("server connected to %d...", cfg.Port)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		<-done
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
