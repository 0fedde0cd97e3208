package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/specialistvlad/gridcarbon/internal/attribution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func ptr(v float64) *float64 { return &v }

func sampleDocument() *Document {
	return &Document{
		RunID:       "run-1",
		Start:       "2024-01-01T00:00Z",
		End:         "2024-01-01T01:00Z",
		Authorities: []string{"BA1"},
		Hours: []Hour{
			{Timestamp: "2024-01-01T00:00Z", Status: StatusOK, ProductionEmissions: ptr(10), Intensity: map[string]float64{"BA1": 0.5}},
			Failed("2024-01-01T01:00Z", errors.New("ill-conditioned")),
		},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sampleDocument()))

	var got Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "run-1", got.RunID)
	require.Len(t, got.Hours, 2)
	assert.Equal(t, 0.5, got.Hours[0].Intensity["BA1"])
	assert.Equal(t, StatusFailed, got.Hours[1].Status)
	assert.Equal(t, "ill-conditioned", got.Hours[1].Error)
	assert.NotContains(t, buf.String(), `"intensity": null`)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, sampleDocument()))
	assert.Contains(t, buf.String(), "run_id: run-1")

	var got Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Hours, 2)
	require.NotNil(t, got.Hours[0].ProductionEmissions)
	assert.Equal(t, 10.0, *got.Hours[0].ProductionEmissions)
	assert.Nil(t, got.Hours[1].ProductionEmissions)
}

func TestSucceededKeepsZeroEmissions(t *testing.T) {
	res := &attribution.Result{Period: "2024-01-01T00"}
	doc := &Document{Hours: []Hour{Succeeded("2024-01-01T00:00Z", res)}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, doc))
	assert.Contains(t, buf.String(), `"production_emissions": 0`)

	buf.Reset()
	require.NoError(t, Write(&buf, FormatYAML, doc))
	assert.Contains(t, buf.String(), "production_emissions: 0")
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "xml", sampleDocument())
	require.ErrorIs(t, err, ErrUnknownFormat)
}
