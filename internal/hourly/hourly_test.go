package hourly

import (
	"testing"
	"time"

	"github.com/specialistvlad/gridcarbon/internal/attribution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	gen := []attribution.GenerationRecord{
		{Period: "2024-01-01T01", Respondent: "BA1", FuelType: "COL", Value: "1"},
		{Period: "2024-01-01T00", Respondent: "BA1", FuelType: "COL", Value: "2"},
		{Period: "2024-01-01T01", Respondent: "BA2", FuelType: "SUN", Value: "3"},
	}
	xchg := []attribution.InterchangeRecord{
		{Period: "2024-01-01T00", FromBA: "BA1", ToBA: "BA2", Value: "10"},
		{Period: "2024-01-01T00", FromBA: "BA1", ToBA: "BA2", Value: "20"},
	}
	region := []attribution.RegionRecord{
		{Period: "2024-01-01T02", Respondent: "BA1", Type: "D", Value: "5"},
	}

	hours, rejected := Split(gen, xchg, region)
	require.Empty(t, rejected)
	require.Len(t, hours, 3)

	assert.Equal(t, "2024-01-01T00", hours[0].Records.Period)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), hours[0].Start)
	assert.Len(t, hours[0].Records.Generation, 1)
	require.Len(t, hours[0].Records.Interchange, 2)
	assert.Equal(t, "20", hours[0].Records.Interchange[1].Value, "record order must be preserved")

	assert.Equal(t, "2024-01-01T01", hours[1].Records.Period)
	assert.Len(t, hours[1].Records.Generation, 2)

	assert.Equal(t, "2024-01-01T02", hours[2].Records.Period)
	assert.Len(t, hours[2].Records.Region, 1)
	assert.Empty(t, hours[2].Records.Generation)
}

func TestSplitSkipsBadPeriod(t *testing.T) {
	gen := []attribution.GenerationRecord{
		{Period: "2024-01-01T00", Respondent: "BA1", FuelType: "COL", Value: "1"},
		{Period: "yesterday", Respondent: "BA1", FuelType: "COL", Value: "2"},
	}
	xchg := []attribution.InterchangeRecord{
		{Period: "garbage", FromBA: "BA1", ToBA: "BA2", Value: "10"},
	}

	hours, rejected := Split(gen, xchg, nil)
	require.Len(t, hours, 1)
	assert.Equal(t, "2024-01-01T00", hours[0].Records.Period)
	assert.Len(t, hours[0].Records.Generation, 1)
	assert.Empty(t, hours[0].Records.Interchange)

	require.Len(t, rejected, 2)
	var perr *attribution.ParseError
	require.ErrorAs(t, rejected[0], &perr)
	assert.Equal(t, "period", perr.Field)
	assert.Equal(t, "yesterday", perr.Value)
	assert.Contains(t, rejected[1].Error(), "interchange record")
}

func TestTimestamp(t *testing.T) {
	h := Hour{Start: time.Date(2024, 3, 9, 17, 0, 0, 0, time.UTC)}
	assert.Equal(t, "2024-03-09T17:00Z", h.Timestamp())
	assert.Equal(t, "2024-03-09T17", FormatPeriod(h.Start))
}
