package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"lifepath/internal/models"
	"lifepath/internal/repository"
	"lifepath/pkg/config"
	"lifepath/pkg/logger"
	"lifepath/pkg/postgres"

	"go.uber.org/zap"
)

// pathUpserter is the write side of a SQL catalog backend.
type pathUpserter interface {
	Upsert(ctx context.Context, t *models.PathTemplate) error
}

// SeedRecord remembers the last catalog seeded into a target.
type SeedRecord struct {
	CatalogHash string    `json:"catalog_hash"`
	Paths       int       `json:"paths"`
	SeededAt    time.Time `json:"seeded_at"`
}

// SeedCache stores seed records keyed by target.
type SeedCache struct {
	Targets map[string]SeedRecord `json:"targets"`
}

func main() {
	force := flag.Bool("force", false, "upsert even when the catalog is unchanged since the last seed")
	cacheFile := flag.String("cache", ".seed_cache.json", "file recording seeded catalog hashes")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()

	target, repo, closeRepo, err := openTarget(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open catalog backend", zap.Error(err))
	}
	defer closeRepo()

	data, err := readCatalog(cfg.Catalog.File)
	if err != nil {
		appLogger.Fatal("Failed to read catalog", zap.Error(err))
	}
	paths, err := repository.ParsePathCatalog(data)
	if err != nil {
		appLogger.Fatal("Failed to parse catalog", zap.Error(err))
	}

	cache := loadSeedCache(*cacheFile, appLogger)
	hash := catalogHash(data)
	if prev, ok := cache.Targets[target]; ok && prev.CatalogHash == hash && !*force {
		appLogger.Info("Catalog unchanged since last seed, skipping",
			zap.String("target", target),
			zap.Time("seeded_at", prev.SeededAt),
		)
		return
	}

	appLogger.Info("Seeding path catalog", zap.String("target", target), zap.Int("paths", len(paths)))
	for _, p := range paths {
		if err := repo.Upsert(ctx, p); err != nil {
			appLogger.Fatal("Failed to upsert path", zap.String("path_id", p.ID), zap.Error(err))
		}
		appLogger.Debug("Path upserted", zap.String("path_id", p.ID))
	}

	cache.Targets[target] = SeedRecord{CatalogHash: hash, Paths: len(paths), SeededAt: time.Now()}
	if err := saveSeedCache(*cacheFile, cache); err != nil {
		appLogger.Warn("Failed to save seed cache", zap.Error(err))
	}

	appLogger.Info("Catalog seeding completed", zap.Int("paths", len(paths)))
}

func openTarget(ctx context.Context, cfg *config.Config, appLogger *zap.Logger) (string, pathUpserter, func(), error) {
	switch cfg.Catalog.Driver {
	case config.CatalogDriverPostgres:
		db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
		if err != nil {
			return "", nil, nil, err
		}
		repo := repository.NewPostgresPathRepository(db, appLogger)
		if err := repo.EnsureSchema(ctx); err != nil {
			db.Close()
			return "", nil, nil, err
		}
		target := fmt.Sprintf("postgres://%s:%s/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
		return target, repo, db.Close, nil
	case config.CatalogDriverSQLite:
		repo, err := repository.NewSQLitePathRepository(cfg.Catalog.SQLitePath, appLogger)
		if err != nil {
			return "", nil, nil, err
		}
		return "sqlite://" + cfg.Catalog.SQLitePath, repo, func() { repo.Close() }, nil
	}
	return "", nil, nil, fmt.Errorf("CATALOG_DRIVER=%s has nothing to seed; use postgres or sqlite", cfg.Catalog.Driver)
}

// readCatalog returns the YAML catalog at path, or the built-in one.
func readCatalog(path string) ([]byte, error) {
	if path == "" {
		return repository.DefaultCatalog(), nil
	}
	return os.ReadFile(path)
}

func catalogHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func loadSeedCache(path string, appLogger *zap.Logger) *SeedCache {
	cache := &SeedCache{Targets: make(map[string]SeedRecord)}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cache
	}
	if err != nil {
		appLogger.Warn("Failed to read seed cache", zap.String("path", path), zap.Error(err))
		return cache
	}
	if err := json.Unmarshal(data, cache); err != nil {
		appLogger.Warn("Ignoring corrupt seed cache", zap.String("path", path), zap.Error(err))
		return &SeedCache{Targets: make(map[string]SeedRecord)}
	}
	if cache.Targets == nil {
		cache.Targets = make(map[string]SeedRecord)
	}
	return cache
}

func saveSeedCache(path string, cache *SeedCache) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
