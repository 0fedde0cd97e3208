package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/specialistvlad/gridcarbon/internal/attribution"
	"github.com/specialistvlad/gridcarbon/internal/ctxlog"
	"github.com/specialistvlad/gridcarbon/internal/eia"
	"github.com/specialistvlad/gridcarbon/internal/executor"
	"github.com/specialistvlad/gridcarbon/internal/hourly"
	"github.com/specialistvlad/gridcarbon/internal/report"
)

var (
	// ErrNoRecords marks an hour the data source returned nothing for.
	ErrNoRecords = errors.New("no records returned for hour")
	// ErrNoResults is returned when not a single hour could be computed.
	ErrNoResults = errors.New("no hour could be computed")
)

// chunkSpan is the width of one retrieval window. Endpoints are inclusive.
const chunkSpan = 24 * time.Hour

type chunk struct {
	Start time.Time
	End   time.Time
}

// dayChunks splits the inclusive hour range [start, end] into day-sized
// retrieval windows.
func dayChunks(start, end time.Time) []chunk {
	var out []chunk
	for s := start; !s.After(end); s = s.Add(chunkSpan) {
		e := s.Add(chunkSpan - time.Hour)
		if e.After(end) {
			e = end
		}
		out = append(out, chunk{Start: s, End: e})
	}
	return out
}

// Run fetches, computes and reports every hour between the configured start
// and end. Retrieval and solver failures are isolated to the hours they
// affect and appear in the report.
func (a *App) Run(ctx context.Context) error {
	runID := uuid.NewString()
	logger := a.logger.With("run_id", runID)
	ctx = ctxlog.WithLogger(ctx, logger)

	if a.config.HealthcheckPort > 0 {
		a.startHealthcheckServer(a.config.HealthcheckPort)
		defer a.stopHealthcheckServer(context.WithoutCancel(ctx))
	}

	start := a.config.Start.UTC().Truncate(time.Hour)
	end := a.config.End.UTC().Truncate(time.Hour)
	chunks := dayChunks(start, end)
	logger.Info("Starting run.", "start", hourly.Timestamp(start), "end", hourly.Timestamp(end), "windows", len(chunks), "workers", a.workers)

	entries := make(map[time.Time]report.Hour)
	markFailed := func(c chunk, err error) {
		for t := c.Start; !t.After(c.End); t = t.Add(time.Hour) {
			entries[t] = report.Failed(hourly.Timestamp(t), err)
		}
	}

	fetched := executor.Run(ctx, chunks, a.workers, func(ctx context.Context, c chunk) (*eia.Window, error) {
		return a.source.FetchWindow(ctx, c.Start, c.End)
	})

	var hours []hourly.Hour
	for _, f := range fetched {
		if f.Err != nil {
			logger.Error("Window retrieval failed.", "window_start", hourly.Timestamp(f.Input.Start), "error", f.Err)
			markFailed(f.Input, fmt.Errorf("retrieve: %w", f.Err))
			continue
		}
		hs, rejected := hourly.Split(f.Result.Generation, f.Result.Interchange, f.Result.Region)
		for _, err := range rejected {
			logger.Warn("Dropping malformed record.", "window_start", hourly.Timestamp(f.Input.Start), "error", err)
		}
		hours = append(hours, hs...)
	}

	computed := executor.Run(ctx, hours, a.workers, func(ctx context.Context, h hourly.Hour) (*attribution.Result, error) {
		return a.engine.Compute(ctx, h.Records)
	})

	succeeded := 0
	for _, c := range computed {
		ts := c.Input.Timestamp()
		if c.Err != nil {
			logger.Warn("Hour failed.", "period", c.Input.Records.Period, "error", c.Err)
			entries[c.Input.Start] = report.Failed(ts, c.Err)
			continue
		}
		succeeded++
		entries[c.Input.Start] = report.Succeeded(ts, c.Result)
	}
	for t := start; !t.After(end); t = t.Add(time.Hour) {
		if _, ok := entries[t]; !ok {
			entries[t] = report.Failed(hourly.Timestamp(t), ErrNoRecords)
		}
	}

	doc := &report.Document{
		RunID:       runID,
		Start:       hourly.Timestamp(start),
		End:         hourly.Timestamp(end),
		Authorities: a.engine.Registry().Codes(),
		Hours:       sortedEntries(entries),
	}
	if err := report.Write(a.outW, a.config.Format, doc); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	logger.Info("Run finished.", "hours", len(doc.Hours), "succeeded", succeeded, "failed", len(doc.Hours)-succeeded)
	if succeeded == 0 {
		return ErrNoResults
	}
	return nil
}

func sortedEntries(entries map[time.Time]report.Hour) []report.Hour {
	keys := make([]time.Time, 0, len(entries))
	for t := range entries {
		keys = append(keys, t)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	out := make([]report.Hour, len(keys))
	for i, t := range keys {
		out[i] = entries[t]
	}
	return out
}
