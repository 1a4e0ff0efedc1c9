package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"marketing-api/internal/adapter/http"
	"marketing-api/internal/adapter/memory"
	"marketing-api/internal/adapter/postgres"
	"marketing-api/internal/adapter/usecase"
	"marketing-api/internal/config"
	"marketing-api/internal/config/configs"
	"marketing-api/internal/core/port"
	"marketing-api/internal/db"
	"marketing-api/internal/fallback"
)

var (
	cfg    config.Config
	logger *slog.Logger
)

// main runs the marketing API. Without a subcommand it serves HTTP.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "marketing-api",
	Short:         "Campaign, profile, experiment and brand API",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			slog.Error("failed to load config", slog.Any("error", err))
			return err
		}
		logger = cfg.Log.New(os.Stdout)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return err
		}
		logger.Info("migrations applied successfully")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the fallback dataset into the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		data, err := fallback.Load(cfg.Fallback.File)
		if err != nil {
			logger.Error("fallback dataset error", slog.Any("error", err))
			return err
		}
		store, closeStore, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeStore()

		if _, err = db.Seed(ctx, store, data, logger); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return err
		}
		return nil
	},
}

// openStore builds the configured store. The postgres driver runs
// migrations first when enabled; an unreachable database is only logged so
// reads can be served from the fallback dataset.
func openStore(ctx context.Context) (port.Store, func(), error) {
	if cfg.Store.Driver == configs.DriverMemory {
		logger.Info("using in-memory store")
		return memory.NewStore(), func() {}, nil
	}

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database configuration error", slog.Any("error", err))
		return nil, nil, err
	}
	if err = db.Ping(ctx, pool, cfg.Psql.PingTimeout); err != nil {
		logger.Warn("database unreachable, reads will use fallback data", slog.Any("error", err))
	}
	return postgres.NewStore(pool), pool.Close, nil
}

func serve(ctx context.Context) error {
	data, err := fallback.Load(cfg.Fallback.File)
	if err != nil {
		logger.Error("fallback dataset error", slog.Any("error", err))
		return err
	}

	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if cfg.Store.Seed {
		if _, err = db.Seed(ctx, store, data, logger); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		}
	}

	handler := httpadapter.NewHandler(httpadapter.Services{
		Campaigns:   usecase.NewCampaignUseCase(store, store, data, logger),
		Profiles:    usecase.NewProfileUseCase(store, data, logger),
		Experiments: usecase.NewExperimentUseCase(store, store, data, logger),
		Brands:      usecase.NewBrandUseCase(store, data, logger),
		Store:       store,
	}, cfg.HTTP.Prefix, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("prefix", cfg.HTTP.Prefix),
			slog.String("store", cfg.Store.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			logger.Error("server error", slog.Any("error", err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}
