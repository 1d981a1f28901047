package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store drivers selectable through TEAM_STORE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	StoreDriver  string `env:"TEAM_STORE_DRIVER"  envDefault:"sqlite"`  // memory, sqlite or postgres
	DatabaseFile string `env:"TEAM_DATABASE_FILE" envDefault:"team.db"` // sqlite only
	DatabaseURL  string `env:"TEAM_DATABASE_URL"`                       // postgres only
	PepperFile   string `env:"TEAM_PEPPER_FILE"   envDefault:"pepper"`

	Env                 string        `env:"ENV"                   envDefault:"dev"`
	LogLevel            string        `env:"LOG_LEVEL"             envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT"            envDefault:"json"`
	Port                int           `env:"PORT"                  envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

var errMissingDatabaseURL = errors.New("TEAM_DATABASE_URL is required for the postgres driver")

// LoadConfig reads an optional .env file from the working directory and then
// parses the environment. Variables already set win over the file.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StoreDriver {
	case DriverMemory, DriverSQLite:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errMissingDatabaseURL
		}
	default:
		return fmt.Errorf("unknown TEAM_STORE_DRIVER %q", c.StoreDriver)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	return nil
}
