package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Data sources the catalog can be served from
const (
	DataSourceMemory   = "memory"
	DataSourcePostgres = "postgres"
)

// Join submitters
const (
	SubmitterSimulated = "simulated"
	SubmitterDatabase  = "database"
	SubmitterRedis     = "redis"
)

// Config holds all configuration for the application
type Config struct {
	App      AppConfig
	Log      LogConfig
	Database DatabaseConfig
	Join     JoinConfig
	Redis    RedisConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	Port        string `env:"APP_PORT" envDefault:"8080"`
	DataSource  string `env:"DATA_SOURCE" envDefault:"memory"`
}

// LogConfig controls the zap logger
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"console"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	DBName   string `env:"DB_NAME" envDefault:"trustedmarket"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// JoinConfig controls the supplier join-request flow
type JoinConfig struct {
	Submitter         string        `env:"JOIN_SUBMITTER" envDefault:"simulated"`
	SubmitDelay       time.Duration `env:"JOIN_SUBMIT_DELAY" envDefault:"2s"`
	SuccessCloseDelay time.Duration `env:"JOIN_SUCCESS_CLOSE_DELAY" envDefault:"2s"`
	SubmitTimeout     time.Duration `env:"JOIN_SUBMIT_TIMEOUT" envDefault:"10s"`
	// IdleTTL is how long an abandoned modal or unread toast queue is kept
	IdleTTL time.Duration `env:"JOIN_IDLE_TTL" envDefault:"30m"`
}

// RedisConfig is used by the redis join submitter
type RedisConfig struct {
	Addr       string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password   string `env:"REDIS_PASSWORD"`
	DB         int    `env:"REDIS_DB" envDefault:"0"`
	JoinStream string `env:"REDIS_JOIN_STREAM" envDefault:"trustedmarket:join-requests"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist in production
		fmt.Println("No .env file found")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects unknown data sources and submitters
func (c *Config) Validate() error {
	switch c.App.DataSource {
	case DataSourceMemory, DataSourcePostgres:
	default:
		return fmt.Errorf("config: unknown DATA_SOURCE %q", c.App.DataSource)
	}

	switch c.Join.Submitter {
	case SubmitterSimulated, SubmitterRedis:
	case SubmitterDatabase:
		if c.App.DataSource != DataSourcePostgres {
			return fmt.Errorf("config: JOIN_SUBMITTER=database requires DATA_SOURCE=postgres")
		}
	default:
		return fmt.Errorf("config: unknown JOIN_SUBMITTER %q", c.Join.Submitter)
	}

	if c.Join.SubmitDelay < 0 || c.Join.SuccessCloseDelay < 0 {
		return fmt.Errorf("config: join delays must not be negative")
	}
	if c.Join.IdleTTL < 0 {
		return fmt.Errorf("config: JOIN_IDLE_TTL must not be negative")
	}
	return nil
}

// IsProduction reports whether the app runs with APP_ENV=production
func (c *AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

// GetDSN returns the database connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
