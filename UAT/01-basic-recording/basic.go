// Package basic demonstrates the record and verify protocol on a small
// interface mixing zero-parameter and multi-parameter operations.
package basic

//go:generate go run github.com/verifake/verifake/vfgen ../..

// Recorder receives progress notes from the code under test.
type Recorder interface {
	Begin()
	Note(subject string, count int)
	End()
}

// The fake is generated next to this annotation.
//
//vfgen:verify
var _ Recorder
