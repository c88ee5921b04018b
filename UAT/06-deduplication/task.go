// Package dedup demonstrates that repeated annotations of one interface
// produce a single fake: the first occurrence wins and the rest are skipped.
package dedup

//go:generate go run github.com/verifake/verifake/vfgen ../..

// Task is annotated twice below and still gets exactly one fake.
type Task interface {
	Start(job string)
	Stop()
}

//vfgen:verify
var _ Task

//vfgen:verify
var _ Task
