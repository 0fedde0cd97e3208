// Package hourly splits a retrieval window's record collections into the
// independent per-hour inputs the attribution engine consumes.
package hourly

import (
	"fmt"
	"sort"
	"time"

	"github.com/specialistvlad/gridcarbon/internal/attribution"
)

// PeriodLayout is the EIA hourly period format. Periods are UTC.
const PeriodLayout = "2006-01-02T15"

// Hour is one hour's records plus its parsed start time.
type Hour struct {
	Start   time.Time
	Records attribution.HourRecords
}

// Timestamp renders the hour start in the ISO form reported to callers.
func (h Hour) Timestamp() string {
	return Timestamp(h.Start)
}

// Timestamp formats t as an hour-resolution ISO 8601 UTC timestamp.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04Z")
}

// ParsePeriod parses an EIA hourly period string.
func ParsePeriod(period string) (time.Time, error) {
	t, err := time.ParseInLocation(PeriodLayout, period, time.UTC)
	if err != nil {
		return time.Time{}, &attribution.ParseError{Field: "period", Value: period, Err: err}
	}
	return t, nil
}

// FormatPeriod renders t in the EIA hourly period format.
func FormatPeriod(t time.Time) string {
	return t.UTC().Format(PeriodLayout)
}

// Split groups records by period and returns the hours in ascending order.
// Record order within an hour is preserved, which keeps last-write-wins
// interchange semantics stable.
//
// A record whose period does not parse belongs to no hour. It is left out
// and reported in rejected; the remaining hours are still returned.
func Split(
	generation []attribution.GenerationRecord,
	interchange []attribution.InterchangeRecord,
	region []attribution.RegionRecord,
) (hours []Hour, rejected []error) {
	byPeriod := make(map[string]*Hour)
	get := func(kind string, period string) *Hour {
		if h, ok := byPeriod[period]; ok {
			return h
		}
		start, err := ParsePeriod(period)
		if err != nil {
			rejected = append(rejected, fmt.Errorf("%s record: %w", kind, err))
			return nil
		}
		h := &Hour{Start: start, Records: attribution.HourRecords{Period: period}}
		byPeriod[period] = h
		return h
	}

	for _, rec := range generation {
		if h := get("generation", rec.Period); h != nil {
			h.Records.Generation = append(h.Records.Generation, rec)
		}
	}
	for _, rec := range interchange {
		if h := get("interchange", rec.Period); h != nil {
			h.Records.Interchange = append(h.Records.Interchange, rec)
		}
	}
	for _, rec := range region {
		if h := get("region", rec.Period); h != nil {
			h.Records.Region = append(h.Records.Region, rec)
		}
	}

	hours = make([]Hour, 0, len(byPeriod))
	for _, h := range byPeriod {
		hours = append(hours, *h)
	}
	sort.Slice(hours, func(i, j int) bool { return hours[i].Start.Before(hours[j].Start) })
	return hours, rejected
}
