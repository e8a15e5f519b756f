package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// AppConfig is the process configuration, read from the environment.
type AppConfig struct {
	GitHubToken     string        `env:"GITHUB_TOKEN"`
	GitHubRepo      string        `env:"GITHUB_REPO" envDefault:"your-org/oracle-standby"`
	GitHubAPIURL    string        `env:"GITHUB_API_URL"`
	GitHubWebURL    string        `env:"GITHUB_WEB_URL" envDefault:"https://github.com"`
	DispatchTimeout time.Duration `env:"DISPATCH_TIMEOUT" envDefault:"30s"`
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"5000"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadEnv parses AppConfig from the environment.
func LoadEnv() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	cfg.GitHubToken = strings.TrimSpace(cfg.GitHubToken)
	return cfg, nil
}

// DryRun reports whether no dispatch credential is configured.
func (c AppConfig) DryRun() bool {
	return c.GitHubToken == ""
}
