// Package ineligible holds annotations the generator rejects. Each one logs
// a warning during the pass and produces no fake, which is why this package
// contains no generated file.
package ineligible

//go:generate go run github.com/verifake/verifake/vfgen ../..

// Config is a type declaration, not a property.
//
//vfgen:verify
type Config struct {
	Name string
}

// Reload is a function declaration, not a property.
//
//vfgen:verify
func Reload() {}

// Count is a property, but its type is not an interface.
//
//vfgen:verify
var Count int

// Cfg is a property of a struct type.
//
//vfgen:verify
var Cfg Config

// Box is generic, so instantiations of it cannot be verified.
type Box[T any] interface {
	Put(item T)
}

//vfgen:verify
var _ Box[int]
