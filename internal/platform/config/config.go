package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// DefaultDBDSN keeps the backing ledger in a shared in-memory database
	// that lives as long as the process.
	DefaultDBDSN = "file:chemlab?mode=memory&cache=shared"
)

type Config struct {
	Addr          string        `env:"CHEMLAB_ADDR" envDefault:"127.0.0.1:8080"`
	APIBaseURL    string        `env:"CHEMLAB_API_URL"`
	DBDSN         string        `env:"CHEMLAB_DB_DSN" envDefault:"file:chemlab?mode=memory&cache=shared"`
	Environment   string        `env:"CHEMLAB_ENV" envDefault:"development"`
	AppURL        string        `env:"CHEMLAB_APP_URL" envDefault:"https://baesed.app"`
	TransferDelay time.Duration `env:"CHEMLAB_TRANSFER_DELAY" envDefault:"2s"`
	LogLevel      string        `env:"CHEMLAB_LOG_LEVEL" envDefault:"info"`
	LogFile       string        `env:"CHEMLAB_LOG_FILE"`
	// Wallet is the connected address the terminal client backs with.
	Wallet string `env:"CHEMLAB_WALLET" envDefault:"0x1234567890123456789012345678901234567890"`
	// ChainID is the chain the wallet reports, decimal or 0x-prefixed hex.
	ChainID string `env:"CHEMLAB_CHAIN_ID" envDefault:"84532"`
}

// New reads the environment and applies defaults.
func New() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("listen address is required")
	}
	if strings.TrimSpace(c.DBDSN) == "" {
		return fmt.Errorf("db dsn is required")
	}
	switch c.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("unsupported environment %q", c.Environment)
	}
	if strings.TrimSpace(c.Wallet) == "" {
		return fmt.Errorf("wallet address is required")
	}
	if c.TransferDelay < 0 {
		return fmt.Errorf("transfer delay must be non-negative")
	}
	return nil
}

func (c Config) Development() bool {
	return c.Environment == EnvDevelopment
}

// Remote reports whether the terminal client should talk to an API server
// instead of running the modules in process.
func (c Config) Remote() bool {
	return strings.TrimSpace(c.APIBaseURL) != ""
}
