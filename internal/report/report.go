// Package report renders a run's hourly outcomes as JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/gridcarbon/internal/attribution"
	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for formats other than json and yaml.
var ErrUnknownFormat = errors.New("unknown report format")

// Status values for an hour entry.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Document is the top-level report.
type Document struct {
	RunID       string   `json:"run_id" yaml:"run_id"`
	Start       string   `json:"start" yaml:"start"`
	End         string   `json:"end" yaml:"end"`
	Authorities []string `json:"authorities" yaml:"authorities"`
	Hours       []Hour   `json:"hours" yaml:"hours"`
}

// Hour is one hour's entry. Failed hours carry only the error.
type Hour struct {
	Timestamp           string             `json:"timestamp" yaml:"timestamp"`
	Status              string             `json:"status" yaml:"status"`
	Error               string             `json:"error,omitempty" yaml:"error,omitempty"`
	ProductionEmissions *float64           `json:"production_emissions,omitempty" yaml:"production_emissions,omitempty"`
	Emissions           map[string]float64 `json:"emissions,omitempty" yaml:"emissions,omitempty"`
	Intensity           map[string]float64 `json:"intensity,omitempty" yaml:"intensity,omitempty"`
}

// Succeeded builds the entry for a computed hour.
func Succeeded(timestamp string, res *attribution.Result) Hour {
	total := res.ProductionEmissions
	return Hour{
		Timestamp:           timestamp,
		Status:              StatusOK,
		ProductionEmissions: &total,
		Emissions:           res.EmissionsByAuthority(),
		Intensity:           res.IntensityByAuthority(),
	}
}

// Failed builds the entry for an hour that could not be computed.
func Failed(timestamp string, err error) Hour {
	return Hour{Timestamp: timestamp, Status: StatusFailed, Error: err.Error()}
}

// Write renders doc to w in format.
func Write(w io.Writer, format string, doc *Document) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
