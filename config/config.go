package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Source   SourceConfig
	Report   ReportConfig
}

type ServerConfig struct {
	AppEnv   string
	HTTPPort string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SourceConfig selects the inventory record store backing a session.
// Kind is one of "synthetic", "csv", "postgres".
type SourceConfig struct {
	Kind           string
	CSVPath        string
	SyntheticCount int
	SyntheticSeed  int64
}

// ReportConfig holds the behavioral toggles of the aging report:
// whether empty buckets appear in the distribution, and whether reloading
// the dataset drops the active drill-down selection.
type ReportConfig struct {
	IncludeZeroCounts      bool
	ClearSelectionOnReload bool
	CacheTTLSeconds        int
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:   getEnv("APP_ENV", "dev"),
			HTTPPort: getEnv("HTTP_PORT", ":8080"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnv("POSTGRES_PORT", "5432"),
			User:            getEnv("POSTGRES_USER", "aging"),
			Password:        getEnv("POSTGRES_PASSWORD", "aging"),
			DBName:          getEnv("POSTGRES_DB", "inventory_aging"),
			SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("POSTGRES_CONN_MAX_LIFETIME", 300),
			ConnMaxIdleTime: getEnvInt("POSTGRES_CONN_MAX_IDLE_TIME", 60),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Source: SourceConfig{
			Kind:           getEnv("SOURCE_KIND", "synthetic"),
			CSVPath:        getEnv("SOURCE_CSV_PATH", "inventory.csv"),
			SyntheticCount: getEnvInt("SOURCE_SYNTHETIC_COUNT", 500),
			SyntheticSeed:  getEnvInt64("SOURCE_SYNTHETIC_SEED", 42),
		},
		Report: ReportConfig{
			IncludeZeroCounts:      getEnvBool("REPORT_INCLUDE_ZERO_COUNTS", false),
			ClearSelectionOnReload: getEnvBool("REPORT_CLEAR_SELECTION_ON_RELOAD", true),
			CacheTTLSeconds:        getEnvInt("REPORT_CACHE_TTL", 300),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
