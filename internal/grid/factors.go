package grid

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidFactor is returned for negative or non-finite emission factors.
var ErrInvalidFactor = errors.New("invalid emission factor")

// NormalizeFuelType maps EIA fuel codes onto factor table keys. "NG" is
// published for natural gas but collides with the net-generation series
// code, so it is looked up as "GAS".
func NormalizeFuelType(fuel string) string {
	if fuel == "NG" {
		return "GAS"
	}
	return fuel
}

// FactorTable maps fuel-type codes to CO2-equivalent emission factors
// (mass per unit of generated energy).
type FactorTable struct {
	factors map[string]float64
}

// NewFactorTable copies factors into an immutable table.
func NewFactorTable(factors map[string]float64) (*FactorTable, error) {
	t := &FactorTable{factors: make(map[string]float64, len(factors))}
	for fuel, f := range factors {
		if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
			return nil, fmt.Errorf("%w for %q: %v", ErrInvalidFactor, fuel, f)
		}
		t.factors[fuel] = f
	}
	return t, nil
}

// Lookup returns the factor for fuel after normalization.
func (t *FactorTable) Lookup(fuel string) (float64, bool) {
	f, ok := t.factors[NormalizeFuelType(fuel)]
	return f, ok
}

// With returns a copy of t with overrides applied on top.
func (t *FactorTable) With(overrides map[string]float64) (*FactorTable, error) {
	merged := make(map[string]float64, len(t.factors)+len(overrides))
	for fuel, f := range t.factors {
		merged[fuel] = f
	}
	for fuel, f := range overrides {
		merged[fuel] = f
	}
	return NewFactorTable(merged)
}

// Fuels returns the table's fuel codes in sorted order.
func (t *FactorTable) Fuels() []string {
	out := make([]string, 0, len(t.factors))
	for fuel := range t.factors {
		out = append(out, fuel)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of fuel codes in the table.
func (t *FactorTable) Len() int { return len(t.factors) }
