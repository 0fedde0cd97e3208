package config

import (
	"testing"

	"github.com/specialistvlad/gridcarbon/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaults(t *testing.T) {
	var s Settings

	reg, err := s.Registry()
	require.NoError(t, err)
	assert.Equal(t, grid.DefaultRegistry().Codes(), reg.Codes())

	factors, err := s.Factors()
	require.NoError(t, err)
	assert.Equal(t, grid.DefaultFactorTable().Fuels(), factors.Fuels())
}

func TestSettingsOverrides(t *testing.T) {
	s := Settings{
		Authorities:     []string{"CISO", "PACW"},
		EmissionFactors: map[string]float64{"GAS": 450},
	}

	reg, err := s.Registry()
	require.NoError(t, err)
	assert.Equal(t, []string{"CISO", "PACW"}, reg.Codes())

	factors, err := s.Factors()
	require.NoError(t, err)
	f, _ := factors.Lookup("NG")
	assert.Equal(t, 450.0, f)
}

func TestSettingsInvalid(t *testing.T) {
	s := Settings{Authorities: []string{"CISO", "CISO"}, EmissionFactors: map[string]float64{"GAS": -1}}

	_, err := s.Registry()
	require.ErrorIs(t, err, grid.ErrDuplicateAuthority)
	_, err = s.Factors()
	require.ErrorIs(t, err, grid.ErrInvalidFactor)
}
