package attribution

import (
	"context"
	"fmt"

	"github.com/specialistvlad/gridcarbon/internal/ctxlog"
	"github.com/specialistvlad/gridcarbon/internal/grid"
)

// Engine runs the full attribution pipeline for one hour at a time. Its
// registry and factor table are read-only, so Compute is safe for concurrent
// use.
type Engine struct {
	registry *grid.Registry
	factors  *grid.FactorTable
}

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry replaces the built-in balancing-authority registry.
func WithRegistry(r *grid.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithFactors replaces the built-in emission factor table.
func WithFactors(t *grid.FactorTable) Option {
	return func(e *Engine) {
		if t != nil {
			e.factors = t
		}
	}
}

// New returns an Engine using the built-in registry and factors unless
// overridden.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.registry == nil {
		e.registry = grid.DefaultRegistry()
	}
	if e.factors == nil {
		e.factors = grid.DefaultFactorTable()
	}
	return e
}

// Registry returns the registry every Result is aligned to.
func (e *Engine) Registry() *grid.Registry { return e.registry }

// Factors returns the engine's emission factor table.
func (e *Engine) Factors() *grid.FactorTable { return e.factors }

// Result is the outcome of one hour.
type Result struct {
	Period      string
	Generation  Vector
	Emissions   Vector
	Interchange Matrix
	Intensity   Vector
	// ProductionEmissions is the sum of direct emissions over all authorities.
	ProductionEmissions float64

	registry *grid.Registry
}

// IntensityByAuthority keys Intensity by authority code.
func (r *Result) IntensityByAuthority() map[string]float64 {
	return r.byAuthority(r.Intensity)
}

// EmissionsByAuthority keys Emissions by authority code.
func (r *Result) EmissionsByAuthority() map[string]float64 {
	return r.byAuthority(r.Emissions)
}

func (r *Result) byAuthority(v Vector) map[string]float64 {
	out := make(map[string]float64, len(v))
	for i, val := range v {
		out[r.registry.Code(i)] = val
	}
	return out
}

// Compute aggregates the hour's records and solves for carbon intensity. Any
// error aborts the whole hour; no partial Result is returned.
func (e *Engine) Compute(ctx context.Context, hour HourRecords) (*Result, error) {
	ctx = ctxlog.With(ctx, "period", hour.Period)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Computing hour.", "generation_records", len(hour.Generation), "interchange_records", len(hour.Interchange))

	g, err := GenerationTotals(hour.Generation, e.registry)
	if err != nil {
		return nil, fmt.Errorf("hour %s: generation: %w", hour.Period, err)
	}
	em, err := EmissionsTotals(hour.Generation, e.registry, e.factors)
	if err != nil {
		return nil, fmt.Errorf("hour %s: emissions: %w", hour.Period, err)
	}
	m, err := InterchangeMatrix(hour.Interchange, e.registry)
	if err != nil {
		return nil, fmt.Errorf("hour %s: interchange: %w", hour.Period, err)
	}
	x, err := Solve(em, m, g)
	if err != nil {
		return nil, fmt.Errorf("hour %s: solve: %w", hour.Period, err)
	}

	var total float64
	for _, v := range em {
		total += v
	}
	logger.Debug("Hour computed.", "production_emissions", total)

	return &Result{
		Period:              hour.Period,
		Generation:          g,
		Emissions:           em,
		Interchange:         m,
		Intensity:           x,
		ProductionEmissions: total,
		registry:            e.registry,
	}, nil
}
