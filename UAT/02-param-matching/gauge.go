// Package matching demonstrates per-parameter matchers: positional matcher
// lists, single-matcher expansion, and predicate matchers.
package matching

//go:generate go run github.com/verifake/verifake/vfgen ../..

// Gauge accepts level adjustments from the code under test.
type Gauge interface {
	Set(level int)
	Adjust(delta float64, reason string)
	Pulse(times ...int)
}

//vfgen:verify
var _ Gauge
