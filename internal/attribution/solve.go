package attribution

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// machineEpsilon is the float64 spacing at 1.0.
var machineEpsilon = math.Nextafter(1, 2) - 1

// ConditionThreshold is the largest condition number Solve accepts.
var ConditionThreshold = 1 / machineEpsilon

// SystemMatrix builds A = diag(G + totalImports) - imports, where
// imports[i][j] = max(0, -I[i][j]). Interchange values follow the EIA sign
// convention: a negative value in row i means i received energy from j.
// Positive (export) entries are clamped out because exported energy is
// already carried by the exporter's own generation.
func SystemMatrix(interchange Matrix, generation Vector) *mat.Dense {
	n := len(generation)
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		var total, self float64
		for j := 0; j < n; j++ {
			imp := math.Max(0, -interchange[i][j])
			total += imp
			if i == j {
				self = imp
				continue
			}
			a.Set(i, j, -imp)
		}
		a.Set(i, i, generation[i]+total-self)
	}
	return a
}

// Solve returns the consumption-based intensity x satisfying A·x = E for the
// system matrix built from interchange and generation.
//
// The solve is direct (LU). When the 1-norm condition estimate of A exceeds
// ConditionThreshold the hour fails with *IllConditionedError; a typical
// cause is an authority with neither generation nor imports, which zeroes its
// diagonal entry.
func Solve(emissions Vector, interchange Matrix, generation Vector) (Vector, error) {
	n := len(emissions)
	if len(generation) != n || len(interchange) != n {
		return nil, fmt.Errorf("%w: emissions %d, generation %d, interchange %d",
			ErrDimensionMismatch, n, len(generation), len(interchange))
	}
	for i, row := range interchange {
		if len(row) != n {
			return nil, fmt.Errorf("%w: interchange row %d has %d columns, want %d",
				ErrDimensionMismatch, i, len(row), n)
		}
	}
	if n == 0 {
		return Vector{}, nil
	}

	a := SystemMatrix(interchange, generation)

	var lu mat.LU
	lu.Factorize(a)
	cond := lu.Cond()
	if math.IsNaN(cond) || cond > ConditionThreshold {
		return nil, &IllConditionedError{Condition: cond, Threshold: ConditionThreshold}
	}

	b := mat.NewVecDense(n, append([]float64(nil), emissions...))
	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, b); err != nil {
		var c mat.Condition
		if errors.As(err, &c) {
			return nil, &IllConditionedError{Condition: float64(c), Threshold: ConditionThreshold}
		}
		return nil, fmt.Errorf("solve intensity system: %w", err)
	}

	out := make(Vector, n)
	for i := range out {
		out[i] = x.AtVec(i)
	}
	return out, nil
}
