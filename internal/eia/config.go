package eia

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultBaseURL is the EIA v2 API root.
	DefaultBaseURL = "https://api.eia.gov/v2"
	// DefaultPageSize is the maximum number of rows the API returns per call.
	DefaultPageSize = 5000
	// DefaultTimeout bounds one page request.
	DefaultTimeout = 30 * time.Second
	// EnvAPIKey is the environment variable holding the API key.
	EnvAPIKey = "EIA_API_KEY"
)

// ErrMissingAPIKey is returned when no API key is configured.
var ErrMissingAPIKey = errors.New("EIA API key is not set")

// Config holds client settings. Zero values take the package defaults.
type Config struct {
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
	PageSize int
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	return c
}

// APIKeyFromEnv reads the API key from the named variable (EnvAPIKey when
// name is empty) using lookup, normally os.LookupEnv.
func APIKeyFromEnv(name string, lookup func(string) (string, bool)) (string, error) {
	if name == "" {
		name = EnvAPIKey
	}
	key, ok := lookup(name)
	if !ok || key == "" {
		return "", fmt.Errorf("%w: %s environment variable is empty", ErrMissingAPIKey, name)
	}
	return key, nil
}
