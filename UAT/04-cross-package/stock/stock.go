// Package stock declares the market data surface consumed by the watch
// package, which generates a fake for it across the package boundary.
package stock

// Quote is one priced observation.
type Quote struct {
	Symbol string
	Price  float64
}

// Feed delivers quotes to a consumer.
type Feed interface {
	Push(q Quote)
	Flush()
}
