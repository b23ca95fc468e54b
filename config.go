package datereg

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config groups the construction parameters. Values are taken from
// environment variables with the prefix "DATEREG_". Example:
// DATEREG_TOKEN=... DATEREG_TIMEOUT=10s .
type Config struct {
	Token   string        `envconfig:"TOKEN" required:"true"`
	BaseURL string        `envconfig:"BASE_URL" default:"https://api.goy.guru/api/v1"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
}

// LoadConfig populates Config from environment variables (prefix DATEREG_).
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("DATEREG", &c)
}

// FromEnv builds a Client from environment configuration. Explicit options
// are applied after the env-derived ones and win on conflict.
func FromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	all := append([]Option{
		WithBaseURL(cfg.BaseURL),
		WithHTTPTimeout(cfg.Timeout),
	}, opts...)
	return New(cfg.Token, all...), nil
}
