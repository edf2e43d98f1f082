package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/osse101/PotionGacha_Go/internal/domain"
	"github.com/osse101/PotionGacha_Go/internal/logger"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	APIKey      string `env:"API_KEY"` // API key for authentication
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	LogDir      string `env:"LOG_DIR"` // session log files are written here when set
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"potion-gacha"`
	Version     string `env:"VERSION" envDefault:"dev"`

	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// Storage
	DBDriver          string        `env:"DB_DRIVER" envDefault:"postgres"`
	DBUser            string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost            string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string        `env:"DB_PORT" envDefault:"5432"`
	DBName            string        `env:"DB_NAME" envDefault:"potiongacha"`
	DBMaxConns        int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBLockTimeout     time.Duration `env:"DB_LOCK_TIMEOUT" envDefault:"5s"`

	// Game
	CatalogPath   string `env:"CATALOG_PATH"`
	MaxHP         int    `env:"MAX_HP" envDefault:"200"`
	MaxMP         int    `env:"MAX_MP" envDefault:"200"`
	GachaUnitCost int    `env:"GACHA_UNIT_COST" envDefault:"10"`
	MaxGachaDraws int    `env:"MAX_GACHA_DRAWS" envDefault:"100"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects configurations the service cannot run with
func (c *Config) Validate() error {
	var errs []error

	if c.APIKey == "" {
		errs = append(errs, errors.New(ErrMsgAPIKeyRequired))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf(ErrMsgInvalidPortFmt, c.Port))
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if err := logger.ValidateFormat(c.LogFormat); err != nil {
		errs = append(errs, err)
	}

	switch strings.ToLower(c.DBDriver) {
	case DBDriverPostgres, DBDriverMemory:
	default:
		errs = append(errs, fmt.Errorf(ErrMsgUnknownDriverFmt, c.DBDriver))
	}

	if c.DBLockTimeout <= 0 {
		errs = append(errs, errors.New(ErrMsgLockTimeoutPositive))
	}

	for name, v := range map[string]int{
		"MAX_HP":          c.MaxHP,
		"MAX_MP":          c.MaxMP,
		"GACHA_UNIT_COST": c.GachaUnitCost,
		"MAX_GACHA_DRAWS": c.MaxGachaDraws,
	} {
		if v <= 0 {
			errs = append(errs, fmt.Errorf(ErrMsgMustBePositiveFmt, name, v))
		}
	}

	return errors.Join(errs...)
}

// Limits returns the game limits configured for this process
func (c *Config) Limits() domain.Limits {
	return domain.Limits{
		MaxHP:         c.MaxHP,
		MaxMP:         c.MaxMP,
		GachaUnitCost: c.GachaUnitCost,
		MaxGachaDraws: c.MaxGachaDraws,
	}
}

// UseMemoryStore reports whether the in-memory storage engine is selected
func (c *Config) UseMemoryStore() bool {
	return strings.EqualFold(c.DBDriver, DBDriverMemory)
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
