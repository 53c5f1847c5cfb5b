// Package config loads application configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// App is the root configuration.
type App struct {
	Env    string `envconfig:"APP_ENV" default:"development"`
	Server Server
	DB     DB
	Log    Log
	Bank   Bank
}

// Server configures the HTTP listener.
type Server struct {
	Host string `envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port int    `envconfig:"HTTP_PORT" default:"3000"`
}

// DB configures the persistence gateway connection.
type DB struct {
	URL string `envconfig:"DATABASE_URL"`
}

// Log configures logging output.
type Log struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
	Prefix string `envconfig:"LOG_PREFIX" default:"pulabank"`
}

// Bank holds bank-wide operational settings.
type Bank struct {
	DefaultBranch string `envconfig:"BANK_DEFAULT_BRANCH" default:"Gaborone Main"`
}

// Load reads configuration from the environment. If a .env file exists
// in the working directory it is loaded first; a missing file is not an
// error.
func Load() (*App, error) {
	logger := slog.Default()
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using system environment variables")
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	logger.Info("configuration loaded",
		"env", cfg.Env,
		"http_host", cfg.Server.Host,
		"http_port", cfg.Server.Port,
		"db", maskValue(cfg.DB.URL),
		"default_branch", cfg.Bank.DefaultBranch,
	)
	return &cfg, nil
}

func maskValue(v string) string {
	if len(v) <= 6 {
		return "****"
	}
	return v[:3] + "****" + v[len(v)-3:]
}
