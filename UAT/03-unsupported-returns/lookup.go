// Package lookup demonstrates the stub behavior for operations with results:
// the fake cannot synthesize return values, so calling such an operation
// panics, while the interface's remaining operations verify as usual.
package lookup

//go:generate go run github.com/verifake/verifake/vfgen ../..

// Lookup mixes an operation with results and one without.
type Lookup interface {
	Get(key string) (string, bool)
	Drop(key string)
}

//vfgen:verify
var _ Lookup
