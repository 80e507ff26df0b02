package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	CatalogDriverYAML     = "yaml"
	CatalogDriverPostgres = "postgres"
	CatalogDriverSQLite   = "sqlite"
)

type Config struct {
	Server     ServerConfig
	RateLimit  RateLimitConfig
	Catalog    CatalogConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Simulation SimulationConfig
	Logger     LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

type CatalogConfig struct {
	Driver     string
	File       string
	SQLitePath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig configures the optional shared simulation cache. An empty Addr
// disables it.
type RedisConfig struct {
	Addr string
	TTL  time.Duration
}

type SimulationConfig struct {
	CacheSize      int
	DefaultHorizon int
	MaxHorizon     int
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work without it.
	for _, envFile := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	rateMax, _ := strconv.Atoi(getEnv("RATE_LIMIT_MAX", "60"))
	rateWindow, _ := strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_SECONDS", "60"))
	redisTTL, _ := strconv.Atoi(getEnv("REDIS_TTL_MINUTES", "60"))
	cacheSize, _ := strconv.Atoi(getEnv("SIMULATION_CACHE_SIZE", "1024"))
	defaultHorizon, _ := strconv.Atoi(getEnv("SIMULATION_DEFAULT_HORIZON", "10"))
	maxHorizon, _ := strconv.Atoi(getEnv("SIMULATION_MAX_HORIZON", "100"))

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		RateLimit: RateLimitConfig{
			Max:    rateMax,
			Window: time.Duration(rateWindow) * time.Second,
		},
		Catalog: CatalogConfig{
			Driver:     strings.ToLower(getEnv("CATALOG_DRIVER", CatalogDriverYAML)),
			File:       getEnv("CATALOG_FILE", ""),
			SQLitePath: getEnv("SQLITE_PATH", "lifepath.db"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "lifepath"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", ""),
			TTL:  time.Duration(redisTTL) * time.Minute,
		},
		Simulation: SimulationConfig{
			CacheSize:      cacheSize,
			DefaultHorizon: defaultHorizon,
			MaxHorizon:     maxHorizon,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Catalog.Driver {
	case CatalogDriverYAML, CatalogDriverPostgres, CatalogDriverSQLite:
	default:
		return fmt.Errorf("unknown CATALOG_DRIVER %q", c.Catalog.Driver)
	}
	if c.Simulation.MaxHorizon <= 0 {
		return fmt.Errorf("SIMULATION_MAX_HORIZON must be positive, got %d", c.Simulation.MaxHorizon)
	}
	if c.Simulation.DefaultHorizon <= 0 || c.Simulation.DefaultHorizon > c.Simulation.MaxHorizon {
		return fmt.Errorf("SIMULATION_DEFAULT_HORIZON must be in 1..%d, got %d", c.Simulation.MaxHorizon, c.Simulation.DefaultHorizon)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
