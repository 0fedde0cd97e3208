package attribution

import "github.com/specialistvlad/gridcarbon/internal/grid"

// EmissionsTotals computes each authority's direct emissions as the sum of
// generation times the fuel's emission factor.
//
// The result is all or nothing: the first fuel code missing from factors
// aborts the hour with an *UnrecognizedFuelTypeError carrying the original
// code.
func EmissionsTotals(records []GenerationRecord, reg *grid.Registry, factors *grid.FactorTable) (Vector, error) {
	e := make(Vector, reg.Len())
	for _, rec := range records {
		factor, ok := factors.Lookup(rec.FuelType)
		if !ok {
			return nil, &UnrecognizedFuelTypeError{FuelType: rec.FuelType, Respondent: rec.Respondent}
		}
		i, ok := reg.Index(rec.Respondent)
		if !ok {
			continue
		}
		v, err := parseValue("generation value", rec.Value)
		if err != nil {
			return nil, err
		}
		e[i] += v * factor
	}
	return e, nil
}
