package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"grantledger"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Ledger struct {
		// DefaultYear is assigned when a pay date's year cannot be
		// parsed. Zero means "current year", resolved at startup.
		DefaultYear int `envconfig:"LEDGER_DEFAULT_YEAR" default:"0"`
		// TopN caps the dimension-sliced report views by default.
		TopN int `envconfig:"REPORT_TOP_N" default:"5"`
	}

	// Funders overrides the built-in envelope list, formatted as
	// "id:name:approved;id:name:approved" with approved in whole units.
	Funders string `envconfig:"FUNDERS"`

	Auth struct {
		// Secret enables the JWT bearer gate when non-empty. The portal's
		// login service signs the tokens; this service only verifies them.
		Secret string `envconfig:"AUTH_JWT_SECRET"`
	}

	CORS struct {
		Origins []string `envconfig:"CORS_ORIGINS" default:"*"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.Ledger.DefaultYear == 0 {
		cfg.Ledger.DefaultYear = time.Now().Year()
	}

	return &cfg, nil
}
