// cmd/simseactl/main.go
package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"simsea/internal/config"
	"simsea/internal/db"
	"simsea/internal/repository"
)

// app is what every subcommand needs once the database is open.
type app struct {
	cfg      *config.Config
	logger   *logrus.Logger
	database *db.Database
	retry    repository.RetryPolicy
}

func openApp(ctx context.Context) (*app, error) {
	cfg := config.Load()
	logger := config.NewLogger(cfg)

	database, err := db.Open(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return nil, err
	}

	retry := repository.NewRetryPolicy(cfg.RetryAttempts, cfg.RetryBaseDelay, logger)
	return &app{cfg: cfg, logger: logger, database: database, retry: retry}, nil
}

func (a *app) Close() error {
	return a.database.Close()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "simseactl",
		Short:         "Operator tasks for the SIMSEA monitoring database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCmd(), newCreateAdminCmd(), newExportCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database if needed and apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			a.logger.Info("database is up to date")
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		logrus.WithError(err).Error("simseactl failed")
		os.Exit(1)
	}
}
