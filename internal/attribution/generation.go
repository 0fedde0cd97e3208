package attribution

import "github.com/specialistvlad/gridcarbon/internal/grid"

// GenerationTotals sums each authority's generation across all fuel types.
// Records from authorities outside reg are ignored.
func GenerationTotals(records []GenerationRecord, reg *grid.Registry) (Vector, error) {
	g := make(Vector, reg.Len())
	for _, rec := range records {
		i, ok := reg.Index(rec.Respondent)
		if !ok {
			continue
		}
		v, err := parseValue("generation value", rec.Value)
		if err != nil {
			return nil, err
		}
		g[i] += v
	}
	return g, nil
}
