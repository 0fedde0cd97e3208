package attribution

import "github.com/specialistvlad/gridcarbon/internal/grid"

// InterchangeMatrix places each record's value at [from][to]. When several
// records share the same pair the last one wins; values are never summed.
// The matrix is not symmetrized.
func InterchangeMatrix(records []InterchangeRecord, reg *grid.Registry) (Matrix, error) {
	m := newMatrix(reg.Len())
	for _, rec := range records {
		from, ok := reg.Index(rec.FromBA)
		if !ok {
			continue
		}
		to, ok := reg.Index(rec.ToBA)
		if !ok {
			continue
		}
		v, err := parseValue("interchange value", rec.Value)
		if err != nil {
			return nil, err
		}
		m[from][to] = v
	}
	return m, nil
}
