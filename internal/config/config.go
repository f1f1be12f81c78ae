// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable the process reads from the environment.
// All variables are prefixed SENRYAKU_.
type Config struct {
	// DBPath overrides the database location (default ~/.senryaku/senryaku.db).
	DBPath string `env:"DB_PATH"`

	// WebhookURL is where scheduled briefings and reviews are delivered.
	// Empty disables notifications.
	WebhookURL string `env:"WEBHOOK_URL"`

	// WebhookType selects the payload shape: ntfy, telegram or generic.
	WebhookType string `env:"WEBHOOK_TYPE" envDefault:"ntfy"`

	// BriefingCron fires the morning briefing job.
	BriefingCron string `env:"BRIEFING_CRON" envDefault:"0 7 * * *"`

	// ReviewCron fires the weekly review job.
	ReviewCron string `env:"REVIEW_CRON" envDefault:"0 18 * * 0"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "SENRYAKU_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.WebhookType {
	case "ntfy", "telegram", "generic":
		return nil
	}
	return fmt.Errorf("unknown webhook type %q", c.WebhookType)
}
