// Package plugin adapts the attribution engine to an impact-framework style
// host: each input names a time window and produces one output per hour in
// that window.
package plugin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/specialistvlad/gridcarbon/internal/attribution"
	"github.com/specialistvlad/gridcarbon/internal/ctxlog"
	"github.com/specialistvlad/gridcarbon/internal/eia"
	"github.com/specialistvlad/gridcarbon/internal/executor"
	"github.com/specialistvlad/gridcarbon/internal/grid"
	"github.com/specialistvlad/gridcarbon/internal/hourly"
)

// HourSeconds is the duration reported on every output.
const HourSeconds = 3600

// ErrInvalidInput is returned for inputs without a timestamp or with a
// non-positive duration.
var ErrInvalidInput = errors.New("invalid plugin input")

// DataSource supplies the records for a time window.
type DataSource interface {
	FetchWindow(ctx context.Context, start, end time.Time) (*eia.Window, error)
}

// Config overrides the engine's static tables. Nil fields use the built-in
// defaults.
type Config struct {
	Registry *grid.Registry
	Factors  *grid.FactorTable
	Workers  int
}

// Input is one host observation.
type Input struct {
	Timestamp time.Time
	Duration  time.Duration
}

// Output is one computed hour.
type Output struct {
	Timestamp string             `json:"timestamp" yaml:"timestamp"`
	Duration  int                `json:"duration" yaml:"duration"`
	Emissions float64            `json:"emissions" yaml:"emissions"`
	Intensity map[string]float64 `json:"intensity" yaml:"intensity"`
}

// Plugin is the host-facing entrypoint.
type Plugin struct {
	engine  *attribution.Engine
	source  DataSource
	workers int
}

// New builds a plugin from cfg reading records from source.
func New(cfg Config, source DataSource) *Plugin {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &Plugin{
		engine:  attribution.New(attribution.WithRegistry(cfg.Registry), attribution.WithFactors(cfg.Factors)),
		source:  source,
		workers: workers,
	}
}

// Validate checks a single input.
func Validate(in Input) error {
	if in.Timestamp.IsZero() {
		return fmt.Errorf("%w: timestamp is required", ErrInvalidInput)
	}
	if in.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %s", ErrInvalidInput, in.Duration)
	}
	return nil
}

// Execute fetches and computes every hour covered by inputs. All inputs are
// validated before anything is fetched. A failed fetch skips only that
// input: outputs from the others are returned together with the joined
// retrieval errors. Hours that fail to compute are logged and omitted.
func (p *Plugin) Execute(ctx context.Context, inputs []Input) ([]Output, error) {
	for _, in := range inputs {
		if err := Validate(in); err != nil {
			return nil, err
		}
	}

	logger := ctxlog.FromContext(ctx)
	var (
		outputs []Output
		errs    []error
	)
	for _, in := range inputs {
		start := in.Timestamp
		end := start.Add(in.Duration)

		window, err := p.source.FetchWindow(ctx, start, end)
		if err != nil {
			logger.Warn("Skipping input.", "start", start, "end", end, "error", err)
			errs = append(errs, fmt.Errorf("fetch %s to %s: %w", start.Format(time.RFC3339), end.Format(time.RFC3339), err))
			continue
		}
		hours, rejected := hourly.Split(window.Generation, window.Interchange, window.Region)
		for _, err := range rejected {
			logger.Warn("Dropping malformed record.", "error", err)
		}

		outcomes := executor.Run(ctx, hours, p.workers, func(ctx context.Context, h hourly.Hour) (*attribution.Result, error) {
			return p.engine.Compute(ctx, h.Records)
		})
		for _, o := range outcomes {
			if o.Err != nil {
				logger.Warn("Skipping hour.", "period", o.Input.Records.Period, "error", o.Err)
				continue
			}
			outputs = append(outputs, Output{
				Timestamp: o.Input.Timestamp(),
				Duration:  HourSeconds,
				Emissions: o.Result.ProductionEmissions,
				Intensity: o.Result.IntensityByAuthority(),
			})
		}
	}
	return outputs, errors.Join(errs...)
}
