package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRegistry is returned when a registry is built without codes.
	ErrEmptyRegistry = errors.New("registry must contain at least one balancing authority")
	// ErrDuplicateAuthority is returned when a code appears twice.
	ErrDuplicateAuthority = errors.New("duplicate balancing authority")
	// ErrUnknownAuthority is returned by Restrict for codes outside the parent.
	ErrUnknownAuthority = errors.New("unknown balancing authority")
)

// Registry is an ordered set of balancing-authority codes. The order is the
// index contract for every vector and matrix in a computation.
type Registry struct {
	codes []string
	index map[string]int
}

// NewRegistry builds a registry from codes, preserving their order.
func NewRegistry(codes ...string) (*Registry, error) {
	if len(codes) == 0 {
		return nil, ErrEmptyRegistry
	}
	r := &Registry{
		codes: make([]string, len(codes)),
		index: make(map[string]int, len(codes)),
	}
	for i, code := range codes {
		if code == "" {
			return nil, fmt.Errorf("balancing authority at position %d is empty", i)
		}
		if _, seen := r.index[code]; seen {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAuthority, code)
		}
		r.codes[i] = code
		r.index[code] = i
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on error. It is meant for
// package-level constant data.
func MustRegistry(codes ...string) *Registry {
	r, err := NewRegistry(codes...)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of balancing authorities.
func (r *Registry) Len() int { return len(r.codes) }

// Code returns the code at position i.
func (r *Registry) Code(i int) string { return r.codes[i] }

// Codes returns a copy of the ordered codes.
func (r *Registry) Codes() []string {
	out := make([]string, len(r.codes))
	copy(out, r.codes)
	return out
}

// Index returns the position of code, or false when it is not registered.
func (r *Registry) Index(code string) (int, bool) {
	i, ok := r.index[code]
	return i, ok
}

// Restrict returns a new registry holding only codes, in the given order.
// Every code must already belong to r.
func (r *Registry) Restrict(codes ...string) (*Registry, error) {
	for _, code := range codes {
		if _, ok := r.index[code]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAuthority, code)
		}
	}
	return NewRegistry(codes...)
}
