package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Cache drivers
const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Redis    RedisConfig
	Log      LogConfig
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Host        string
	Port        int // gRPC port
	HTTPPort    int // HTTP admin API port
	MetricsPort int // Port for Prometheus metrics HTTP server
}

// StoreConfig selects the attribute store
type StoreConfig struct {
	Driver string // postgres or memory
}

// CacheConfig represents cache configuration for the enabled attribute list
type CacheConfig struct {
	Enabled        bool
	Driver         string // memory or redis
	MaxMemoryBytes int64  // Maximum memory usage in bytes for the memory driver
	Metrics        bool
	TTLSeconds     int
	SyncChanges    bool // invalidate on PostgreSQL change notifications from other instances
}

// TTL returns the cache entry lifetime
func (c *CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// RedisConfig represents redis connection settings for the redis cache driver
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LogConfig represents logger settings
type LogConfig struct {
	Level       string
	Format      string
	Development bool
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// findProjectRoot finds the project root directory by looking for go.mod
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	// Walk up the directory tree until we find go.mod
	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found in any parent directory")
		}
		dir = parent
	}
}

// ProjectRoot returns the directory holding go.mod
func ProjectRoot() (string, error) {
	return findProjectRoot()
}

// InitConfig initializes viper configuration
// env: environment name (dev, test, prod)
func InitConfig(env string) error {
	if env == "" {
		env = "dev"
	}

	projectRoot, err := findProjectRoot()
	if err != nil {
		return fmt.Errorf("failed to find project root: %w", err)
	}

	viper.SetConfigName(fmt.Sprintf(".env.%s", env))
	viper.SetConfigType("env")
	viper.AddConfigPath(projectRoot)

	// Read config file (optional, ignore error if not found)
	_ = viper.ReadInConfig()

	// Environment variables take precedence over config file
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", 50051)
	viper.SetDefault("HTTP_PORT", 8080)
	viper.SetDefault("METRICS_PORT", 9090)

	viper.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 15432)
	viper.SetDefault("DB_USER", "prodattr")
	viper.SetDefault("DB_NAME", "prodattr_dev")
	viper.SetDefault("DB_SSLMODE", "disable")

	// Cache defaults
	viper.SetDefault("CACHE_ENABLED", true)
	viper.SetDefault("CACHE_DRIVER", CacheDriverMemory)
	viper.SetDefault("CACHE_MAX_MEMORY_BYTES", 16*1024*1024) // 16MB
	viper.SetDefault("CACHE_METRICS", true)
	viper.SetDefault("CACHE_TTL_SECONDS", 60)
	viper.SetDefault("CACHE_SYNC_CHANGES", true)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("LOG_DEVELOPMENT", false)

	return nil
}

// Load loads configuration from viper
func Load() (*Config, error) {
	storeDriver := viper.GetString("STORE_DRIVER")
	if storeDriver == "" {
		storeDriver = StoreDriverPostgres
	}
	if storeDriver != StoreDriverPostgres && storeDriver != StoreDriverMemory {
		return nil, fmt.Errorf("unsupported STORE_DRIVER: %s", storeDriver)
	}

	// DB_PASSWORD is required for security
	dbPassword := viper.GetString("DB_PASSWORD")
	if storeDriver == StoreDriverPostgres && dbPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required (set via environment variable or .env file)")
	}

	cacheDriver := viper.GetString("CACHE_DRIVER")
	if cacheDriver == "" {
		cacheDriver = CacheDriverMemory
	}
	if cacheDriver != CacheDriverMemory && cacheDriver != CacheDriverRedis {
		return nil, fmt.Errorf("unsupported CACHE_DRIVER: %s", cacheDriver)
	}

	config := &Config{
		Server: ServerConfig{
			Host:        viper.GetString("SERVER_HOST"),
			Port:        viper.GetInt("SERVER_PORT"),
			HTTPPort:    viper.GetInt("HTTP_PORT"),
			MetricsPort: viper.GetInt("METRICS_PORT"),
		},
		Store: StoreConfig{
			Driver: storeDriver,
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetInt("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: dbPassword,
			Database: viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
		},
		Cache: CacheConfig{
			Enabled:        viper.GetBool("CACHE_ENABLED"),
			Driver:         cacheDriver,
			MaxMemoryBytes: viper.GetInt64("CACHE_MAX_MEMORY_BYTES"),
			Metrics:        viper.GetBool("CACHE_METRICS"),
			TTLSeconds:     viper.GetInt("CACHE_TTL_SECONDS"),
			SyncChanges:    viper.GetBool("CACHE_SYNC_CHANGES"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Log: LogConfig{
			Level:       viper.GetString("LOG_LEVEL"),
			Format:      viper.GetString("LOG_FORMAT"),
			Development: viper.GetBool("LOG_DEVELOPMENT"),
		},
	}

	return config, nil
}

// ConnectionString returns PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.Database,
		c.SSLMode,
	)
}
