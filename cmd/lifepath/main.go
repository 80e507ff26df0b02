package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lifepath/internal/api"
	"lifepath/internal/api/handlers"
	"lifepath/internal/repository"
	"lifepath/internal/service"
	"lifepath/internal/simulation"
	"lifepath/pkg/config"
	"lifepath/pkg/logger"
	"lifepath/pkg/postgres"

	"go.uber.org/zap"
)

// @title Life Path API
// @version 1.0
// @description Simulates education and career paths year by year and recommends one against a user's profile and priorities.

// @host localhost:8080
// @BasePath /api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting lifepath service", zap.String("catalog_driver", cfg.Catalog.Driver))

	ctx := context.Background()

	pathRepo, closeCatalog, err := openCatalog(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open path catalog", zap.Error(err))
	}
	defer closeCatalog()

	cache, err := simulation.NewLRUCache(cfg.Simulation.CacheSize)
	if err != nil {
		appLogger.Fatal("Failed to create simulation cache", zap.Error(err))
	}
	var simOpts []simulation.Option
	if cfg.Redis.Addr != "" {
		redisCache := repository.NewRedisCache(cfg.Redis.Addr, cfg.Redis.TTL, appLogger)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := redisCache.Ping(pingCtx)
		cancel()
		if err != nil {
			appLogger.Warn("Redis unavailable, using in-process simulation cache only",
				zap.String("addr", cfg.Redis.Addr), zap.Error(err))
			redisCache.Close()
		} else {
			appLogger.Info("Redis simulation cache enabled", zap.String("addr", cfg.Redis.Addr))
			simOpts = append(simOpts, simulation.WithRemoteStore(redisCache))
			defer redisCache.Close()
		}
	}
	simulator := simulation.NewSimulator(cache, appLogger, simOpts...)

	pathService := service.NewPathService(pathRepo, appLogger)
	recService := service.NewRecommendationService(pathRepo, simulator, cfg.Simulation.DefaultHorizon, appLogger)
	compService := service.NewComparisonService(pathRepo, simulator, cfg.Simulation.DefaultHorizon, cfg.Simulation.MaxHorizon, appLogger)

	app := api.SetupRouter(api.Handlers{
		Health:     handlers.NewHealthHandler(simulator),
		Paths:      handlers.NewPathHandler(pathService, appLogger),
		Evaluation: handlers.NewEvaluationHandler(recService, appLogger),
		Comparison: handlers.NewComparisonHandler(compService, appLogger),
	}, cfg, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server", zap.Any("simulation", simulator.Stats()))
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}

// openCatalog builds the path repository for the configured driver. The
// returned func releases its resources.
func openCatalog(ctx context.Context, cfg *config.Config, appLogger *zap.Logger) (repository.PathRepository, func(), error) {
	switch cfg.Catalog.Driver {
	case config.CatalogDriverPostgres:
		db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPostgresPathRepository(db, appLogger), db.Close, nil
	case config.CatalogDriverSQLite:
		repo, err := repository.NewSQLitePathRepository(cfg.Catalog.SQLitePath, appLogger)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { repo.Close() }, nil
	default:
		paths, err := repository.LoadPathCatalog(cfg.Catalog.File)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewMemoryPathRepository(paths, appLogger), func() {}, nil
	}
}
