package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"eats/internal/adapters/out/postgres"
	"eats/internal/adapters/out/qr"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

// NewRootCommand builds the eats CLI with the serve and migrate commands.
func NewRootCommand() *cobra.Command {
	var (
		envFile string
		v       *viper.Viper
	)

	root := &cobra.Command{
		Use:           "eats",
		Short:         "Order management backend for restaurant delivery",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if v, err = NewViper(envFile); err != nil {
				return err
			}
			return bindFlags(v, cmd.Flags(), map[string]string{
				"port":       "HTTP_PORT",
				"db-driver":  "DB_DRIVER",
				"bus-driver": "BUS_DRIVER",
			})
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "file with environment variables to load")
	root.PersistentFlags().String("db-driver", "", "database driver: postgres or sqlite")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, the notifier and the scheduled jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			migrate, _ := cmd.Flags().GetBool("migrate")
			return runServe(cmd.Context(), v, migrate)
		},
	}
	serve.Flags().String("port", "", "HTTP port")
	serve.Flags().String("bus-driver", "", "notification bus: memory, redis or postgres")
	serve.Flags().Bool("migrate", false, "apply the schema before serving")

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(v)
		},
	}

	root.AddCommand(serve, migrate)
	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for name, key := range keys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func runMigrate(v *viper.Viper) error {
	cfg, err := LoadConfig(v)
	if err != nil {
		return err
	}
	db, err := postgres.Open(cfg.Database())
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	newLogger().Info("schema migrated", "driver", cfg.DBDriver)
	return nil
}

func runServe(ctx context.Context, v *viper.Viper, migrate bool) error {
	cfg, err := LoadConfig(v)
	if err != nil {
		return err
	}
	logger := newLogger()

	infra, err := OpenInfrastructure(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := infra.Close(); err != nil {
			logger.Error("failed to close infrastructure", "error", err)
		}
	}()

	if migrate {
		if err := postgres.Migrate(infra.DB); err != nil {
			return err
		}
	}

	app, err := NewCompositionRoot(cfg, infra.DB, infra.Bus, infra.Journal, logger)
	if err != nil {
		return err
	}

	app.Notifier().Start()
	jobManager := app.Jobs()
	if err := jobManager.StartAll(); err != nil {
		return err
	}

	e, err := app.Server(infra.Storage, qr.NewEncoder(qr.DefaultSize)).Echo(ctx)
	if err != nil {
		jobManager.StopAll()
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server started", "port", cfg.HTTPPort)
		serverErr <- e.Start("0.0.0.0:" + cfg.HTTPPort)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error("http shutdown failed", "error", shutdownErr)
	}
	jobManager.StopAll()
	if closeErr := app.Notifier().Close(shutdownCtx); closeErr != nil {
		logger.Error("notifier did not drain", "error", closeErr)
	}
	logger.Info("stopped")
	return err
}
