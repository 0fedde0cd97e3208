package attribution

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var errNotFinite = errors.New("value is not finite")

// ErrMissingValue is wrapped by the ParseError returned for a blank or null
// record value.
var ErrMissingValue = errors.New("value is missing")

// parseValue reads an EIA decimal string. A blank cell is an error, not zero.
func parseValue(field, s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, &ParseError{Field: field, Value: s, Err: ErrMissingValue}
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, &ParseError{Field: field, Value: trimmed, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Field: field, Value: trimmed, Err: errNotFinite}
	}
	return v, nil
}
