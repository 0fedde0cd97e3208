// Package grid holds the static configuration shared by every attribution
// computation: the ordered balancing-authority registry and the fuel-type
// emission factor table.
//
// Both types are immutable once constructed. Every vector and matrix built for
// an hour is indexed by registry position, so all stages of one computation
// must see the same Registry value.
package grid
