// verifake/vfgen is a tool to generate verifiable fakes for Go interfaces.
// To use it, install it with `go install github.com/verifake/verifake/vfgen@latest`
// and annotate a package-level var of interface type with a `//vfgen:verify`
// comment. Running vfgen over the module generates a fake named <interface>_Fake
// in a file next to the annotation, plus a dispatch table package that maps
// interface names to fake constructors.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/verifake/verifake/vfgen/run"
	load "github.com/verifake/verifake/vfgen/run/2_load"
)

// main is the entry point of the vfgen tool.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	err := run.Run(os.Args, logger, &realFileSystem{}, &realPackageLoader{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// realFileSystem implements FileSystem using the os package.
type realFileSystem struct{}

// WriteFile writes data to the file named by name.
func (fs *realFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	err := os.WriteFile(name, data, perm)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", name, err)
	}

	return nil
}

// MkdirAll creates the directory named by path, along with any missing parents.
func (fs *realFileSystem) MkdirAll(path string, perm os.FileMode) error {
	err := os.MkdirAll(path, perm)
	if err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}

	return nil
}

// realPackageLoader implements PackageLoader using direct DST parsing.
type realPackageLoader struct{}

// Load parses the Go package in dir and returns its source files.
// Uses the shared load.Dir function for direct DST parsing with no type checking.
func (pl *realPackageLoader) Load(dir string, local bool) ([]load.SourceFile, error) {
	files, err := load.Dir(dir, local)
	if err != nil {
		return nil, fmt.Errorf("failed to load package in %s: %w", dir, err)
	}

	return files, nil
}
