package config

import (
	"fmt"
	"time"

	"github.com/specialistvlad/gridcarbon/internal/grid"
)

// Settings is the loaded configuration. Zero values mean "use the default".
type Settings struct {
	// Authorities restricts and orders the registry. Empty keeps the
	// built-in registry.
	Authorities []string
	// EmissionFactors are merged onto the built-in factor table.
	EmissionFactors map[string]float64
	Workers         int
	EIA             EIASettings
}

// EIASettings configures the data source.
type EIASettings struct {
	BaseURL   string
	APIKeyEnv string
	Timeout   time.Duration
	PageSize  int
}

// Registry builds the registry the settings describe.
func (s *Settings) Registry() (*grid.Registry, error) {
	if len(s.Authorities) == 0 {
		return grid.DefaultRegistry(), nil
	}
	r, err := grid.NewRegistry(s.Authorities...)
	if err != nil {
		return nil, fmt.Errorf("balancing_authorities: %w", err)
	}
	return r, nil
}

// Factors builds the factor table the settings describe.
func (s *Settings) Factors() (*grid.FactorTable, error) {
	t, err := grid.DefaultFactorTable().With(s.EmissionFactors)
	if err != nil {
		return nil, fmt.Errorf("emission_factors: %w", err)
	}
	return t, nil
}
