// Command herpmatchd is the HerpMatch recommendation service.
// It serves the recommendation API, species lookups, and dataset
// administration over HTTP.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/herpmatch/herpmatch/internal/api"
	"github.com/herpmatch/herpmatch/internal/catalog"
	"github.com/herpmatch/herpmatch/internal/platform"
	"github.com/herpmatch/herpmatch/pkg/config"
	"github.com/herpmatch/herpmatch/pkg/dataset"
)

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := platform.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	table, reload, cleanup, err := datasetSource(ctx, cfg, log)
	if err != nil {
		log.Fatal("load dataset", zap.Error(err))
	}
	defer cleanup()

	log.Info("dataset loaded",
		zap.String("version", table.Version),
		zap.Int("species", table.Len()),
		zap.Int("warnings", len(table.Warnings)))
	for _, w := range table.Warnings {
		log.Warn("dataset warning", zap.String("warning", w))
	}

	handler := api.NewHandler(table, cfg.Scoring.Weights, reload, log)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, api.APIKeyAuth(cfg.Server.APIKey))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: api.CORS(mux),
	}

	go func() {
		log.Info("starting herpmatchd", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}

func loadConfig() (*config.Config, error) {
	path := os.Getenv("HERPMATCH_CONFIG")
	if path == "" {
		if cwd, err := os.Getwd(); err == nil {
			path = config.FindConfigFile(cwd)
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// datasetSource resolves where species data comes from. With a database
// URL configured the daemon serves the active catalog version; otherwise
// it reads a CSV file directly. The returned reload function backs the
// admin reload endpoint.
func datasetSource(ctx context.Context, cfg *config.Config, log *zap.Logger) (*dataset.Table, api.ReloadFunc, func(), error) {
	if cfg.Database.URL != "" {
		db, err := sql.Open("postgres", cfg.Database.URL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open database: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, nil, fmt.Errorf("ping database: %w", err)
		}
		if err := platform.AutoMigrate(db); err != nil {
			db.Close()
			return nil, nil, nil, fmt.Errorf("migrate: %w", err)
		}

		storage, err := catalog.NewStorage(ctx, cfg.Storage)
		if err != nil {
			db.Close()
			return nil, nil, nil, err
		}

		svc := catalog.NewService(db, storage)
		table, err := svc.LoadActive(ctx)
		if err != nil {
			db.Close()
			return nil, nil, nil, err
		}

		log.Info("serving from catalog", zap.String("backend", cfg.Storage.Backend))
		reload := func(ctx context.Context) (*dataset.Table, error) {
			return svc.LoadActive(ctx)
		}
		return table, reload, func() { db.Close() }, nil
	}

	path := cfg.Dataset.Path
	if path == "" {
		discovered, err := dataset.Discover(cfg.Dataset.Dir)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("no catalog file found: %w", err)
		}
		path = discovered
	}

	table, err := dataset.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}

	log.Info("serving from file", zap.String("path", path))
	reload := func(context.Context) (*dataset.Table, error) {
		return dataset.Load(path)
	}
	return table, reload, func() {}, nil
}
