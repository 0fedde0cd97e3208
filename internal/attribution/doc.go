// Package attribution turns one hour of EIA-930 generation and interchange
// records into per-authority direct emissions and consumption-based carbon
// intensity.
//
// The pipeline is strictly one-way:
//
//	records -> GenerationTotals, EmissionsTotals, InterchangeMatrix -> Solve
//
// Every stage is a pure function of its inputs and the shared grid.Registry
// order. No state survives between hours, so an Engine can be used from many
// goroutines at once.
package attribution
