package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Retention.validate(); err != nil {
		return fmt.Errorf("retention: %w", err)
	}

	return nil
}

func (r *RetentionConfig) validate() error {
	if r.DefaultMaxCount < 1 {
		return fmt.Errorf("default_max_count must be >= 1 (got %d)", r.DefaultMaxCount)
	}
	if r.RunTimeout <= 0 {
		return fmt.Errorf("run_timeout must be > 0 (got %v)", r.RunTimeout)
	}

	r.SchedulePolicy = strings.ToLower(strings.TrimSpace(r.SchedulePolicy))
	switch r.SchedulePolicy {
	case "dedup", "cap":
	default:
		return fmt.Errorf("schedule_policy must be dedup or cap (got %q)", r.SchedulePolicy)
	}

	if strings.TrimSpace(r.Schedule) != "" {
		if _, err := cron.ParseStandard(r.Schedule); err != nil {
			return fmt.Errorf("schedule %q: %w", r.Schedule, err)
		}
	}

	return nil
}

// ScheduleEnabled reports whether scheduled retention runs are configured.
func (r RetentionConfig) ScheduleEnabled() bool {
	return strings.TrimSpace(r.Schedule) != ""
}
