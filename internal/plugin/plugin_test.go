package plugin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/specialistvlad/gridcarbon/internal/attribution"
	"github.com/specialistvlad/gridcarbon/internal/eia"
	"github.com/specialistvlad/gridcarbon/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource returns window for every call, or err for every call when
// failCall is nil. With failCall set, only the listed call numbers fail.
type stubSource struct {
	window   *eia.Window
	err      error
	failCall map[int]bool
	calls    [][2]time.Time
}

func (s *stubSource) FetchWindow(_ context.Context, start, end time.Time) (*eia.Window, error) {
	n := len(s.calls)
	s.calls = append(s.calls, [2]time.Time{start, end})
	if s.failCall != nil {
		if s.failCall[n] {
			return nil, s.err
		}
		return s.window, nil
	}
	return s.window, s.err
}

func testConfig(t *testing.T) Config {
	t.Helper()
	factors, err := grid.NewFactorTable(map[string]float64{"COL": 1000, "SUN": 46})
	require.NoError(t, err)
	return Config{Registry: grid.MustRegistry("BA1", "BA2"), Factors: factors, Workers: 2}
}

func TestExecute(t *testing.T) {
	src := &stubSource{window: &eia.Window{
		Generation: []attribution.GenerationRecord{
			{Period: "2024-01-01T01", Respondent: "BA1", FuelType: "COL", Value: "10"},
			{Period: "2024-01-01T01", Respondent: "BA2", FuelType: "SUN", Value: "10"},
			{Period: "2024-01-01T00", Respondent: "BA1", FuelType: "COL", Value: "20"},
			{Period: "2024-01-01T00", Respondent: "BA2", FuelType: "SUN", Value: "20"},
		},
	}}
	p := New(testConfig(t), src)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out, err := p.Execute(context.Background(), []Input{{Timestamp: start, Duration: 2 * time.Hour}})
	require.NoError(t, err)

	require.Len(t, src.calls, 1)
	assert.Equal(t, start.Add(2*time.Hour), src.calls[0][1])

	require.Len(t, out, 2)
	assert.Equal(t, "2024-01-01T00:00Z", out[0].Timestamp)
	assert.Equal(t, HourSeconds, out[0].Duration)
	assert.InDelta(t, 20*1000+20*46, out[0].Emissions, 1e-9)
	assert.InDelta(t, 1000, out[0].Intensity["BA1"], 1e-9)
	assert.InDelta(t, 46, out[0].Intensity["BA2"], 1e-9)
	assert.Equal(t, "2024-01-01T01:00Z", out[1].Timestamp)
}

func TestExecuteSkipsFailedHours(t *testing.T) {
	src := &stubSource{window: &eia.Window{
		Generation: []attribution.GenerationRecord{
			{Period: "2024-01-01T00", Respondent: "BA1", FuelType: "COL", Value: "20"},
			{Period: "2024-01-01T00", Respondent: "BA2", FuelType: "SUN", Value: "20"},
			// BA2 has nothing this hour, so the system is singular.
			{Period: "2024-01-01T01", Respondent: "BA1", FuelType: "COL", Value: "10"},
		},
	}}
	p := New(testConfig(t), src)

	out, err := p.Execute(context.Background(), []Input{{Timestamp: time.Unix(0, 0), Duration: time.Hour}})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2024-01-01T00:00Z", out[0].Timestamp)
}

func TestExecuteFetchError(t *testing.T) {
	boom := errors.New("upstream down")
	p := New(testConfig(t), &stubSource{err: boom})

	_, err := p.Execute(context.Background(), []Input{{Timestamp: time.Unix(0, 0), Duration: time.Hour}})
	require.ErrorIs(t, err, boom)
}

func TestExecuteKeepsOutputsOfOtherInputs(t *testing.T) {
	boom := errors.New("upstream down")
	src := &stubSource{
		window: &eia.Window{
			Generation: []attribution.GenerationRecord{
				{Period: "2024-01-01T00", Respondent: "BA1", FuelType: "COL", Value: "20"},
				{Period: "2024-01-01T00", Respondent: "BA2", FuelType: "SUN", Value: "20"},
				{Period: "not-a-period", Respondent: "BA1", FuelType: "COL", Value: "20"},
			},
		},
		err:      boom,
		failCall: map[int]bool{1: true},
	}
	p := New(testConfig(t), src)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	inputs := []Input{
		{Timestamp: start, Duration: time.Hour},
		{Timestamp: start.Add(time.Hour), Duration: time.Hour},
		{Timestamp: start.Add(2 * time.Hour), Duration: time.Hour},
	}
	out, err := p.Execute(context.Background(), inputs)
	require.ErrorIs(t, err, boom)
	assert.Len(t, src.calls, 3)
	assert.Len(t, out, 2, "the first and third inputs still produce output")
}

func TestExecuteValidatesBeforeFetching(t *testing.T) {
	src := &stubSource{window: &eia.Window{}}
	p := New(testConfig(t), src)

	_, err := p.Execute(context.Background(), []Input{
		{Timestamp: time.Unix(0, 0), Duration: time.Hour},
		{Timestamp: time.Unix(0, 0)},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, src.calls)
}

func TestValidate(t *testing.T) {
	require.ErrorIs(t, Validate(Input{Duration: time.Hour}), ErrInvalidInput)
	require.ErrorIs(t, Validate(Input{Timestamp: time.Unix(1, 0)}), ErrInvalidInput)
	require.NoError(t, Validate(Input{Timestamp: time.Unix(1, 0), Duration: time.Second}))
}
