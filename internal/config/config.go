// Package config loads settings for the site server and the arcade client
// from the environment (and a .env file when present).
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Server configures the site binary.
type Server struct {
	Port          string `env:"PORT" envDefault:"8080"`
	DBPath        string `env:"DB_PATH" envDefault:"content.db"`
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@example.com"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`
	SMTP          SMTP
}

// SMTP configures the contact form mailer.
type SMTP struct {
	Host    string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port    string `env:"SMTP_PORT" envDefault:"587"`
	User    string `env:"SMTP_USER"`
	Pass    string `env:"SMTP_PASS"`
	ToEmail string `env:"TO_EMAIL"`
}

// Arcade configures the game client.
type Arcade struct {
	// SiteURL is where content and, when RemoteScores is set, the
	// leaderboard are fetched from.
	SiteURL      string `env:"ARCADE_SITE_URL" envDefault:"http://localhost:8080"`
	RemoteScores bool   `env:"ARCADE_REMOTE_SCORES" envDefault:"false"`
	// ScoresFile overrides the default leaderboard file location.
	ScoresFile string `env:"ARCADE_SCORES_FILE"`
	Seed       uint64 `env:"ARCADE_SEED"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServer returns the server configuration.
func LoadServer() (Server, error) {
	var cfg Server
	err := ParseEnv(&cfg)
	return cfg, err
}

// pageOrigin is the origin of the page hosting the browser build, or "".
var pageOrigin = browserOrigin

// LoadArcade returns the arcade configuration. In the browser, where the
// environment is empty, SiteURL defaults to the page's own origin.
func LoadArcade() (Arcade, error) {
	var cfg Arcade
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	if _, set := os.LookupEnv("ARCADE_SITE_URL"); !set {
		if origin := pageOrigin(); origin != "" {
			cfg.SiteURL = origin
		}
	}
	return cfg, nil
}
