package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/specialistvlad/gridcarbon/internal/report"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SettingsPath string // optional hcl file

	Start time.Time
	End   time.Time

	Format          string
	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	Workers         int
}

// NewConfig validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Start.IsZero() || cfg.End.IsZero() {
		return nil, errors.New("start and end are required")
	}
	if cfg.End.Before(cfg.Start) {
		return nil, fmt.Errorf("end %s is before start %s", cfg.End.Format(time.RFC3339), cfg.Start.Format(time.RFC3339))
	}
	switch cfg.Format {
	case "":
		cfg.Format = report.FormatJSON
	case report.FormatJSON, report.FormatYAML:
	default:
		return nil, fmt.Errorf("%w: %q", report.ErrUnknownFormat, cfg.Format)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	return &cfg, nil
}
