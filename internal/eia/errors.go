package eia

import "fmt"

// APIRequestError reports a failed page request against an EIA route.
type APIRequestError struct {
	Route  string
	Status int
	Err    error
}

func (e *APIRequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("EIA API request to %s failed with status %d: %v", e.Route, e.Status, e.Err)
	}
	return fmt.Sprintf("EIA API request to %s failed: %v", e.Route, e.Err)
}

func (e *APIRequestError) Unwrap() error { return e.Err }
