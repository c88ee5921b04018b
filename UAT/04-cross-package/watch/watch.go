// Package watch demonstrates fake generation for an interface declared in
// another package: the fake lands next to the annotation and qualifies the
// foreign types it mentions.
package watch

import "github.com/verifake/verifake/UAT/04-cross-package/stock"

//go:generate go run github.com/verifake/verifake/vfgen ../../..

//vfgen:verify
var _ stock.Feed
