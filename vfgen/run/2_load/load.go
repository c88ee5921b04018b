// Package load parses Go package directories into dst syntax trees.
package load

import (
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

// SourceFile is one parsed Go file.
type SourceFile struct {
	Path string
	File *dst.File
}

// Dir parses the Go files of one directory, sorted by file name. Directives
// live in comments, so files are always parsed with comments attached.
//
// For local directories (the scanned module's own packages) test files are
// included and a parse error fails the load: a broken source file in the
// scanned tree is a defect to surface. For foreign directories (resolution
// loads of imported packages) test files are excluded and unparseable files
// are skipped, since those trees may carry files for other build contexts.
func Dir(dir string, local bool) ([]SourceFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasSuffix(name, ".go") {
			continue
		}

		// The go tool ignores these, so a pass over the same tree must too.
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}

		if !local && strings.HasSuffix(name, "_test.go") {
			continue
		}

		names = append(names, name)
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no .go files in %s", errNoGoFiles, dir)
	}

	dec := decorator.NewDecorator(token.NewFileSet())

	files := make([]SourceFile, 0, len(names))

	for _, name := range names {
		path := filepath.Join(dir, name)

		file, err := dec.ParseFile(path, nil, parser.ParseComments)
		if err != nil {
			if local {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}

			continue
		}

		files = append(files, SourceFile{Path: path, File: file})
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: failed to parse any .go files in %s", errNoGoFiles, dir)
	}

	return files, nil
}

// PackageName returns the package clause shared by the non-test files of a
// loaded directory, falling back to the first file's package.
func PackageName(files []SourceFile) string {
	for _, file := range files {
		name := file.File.Name.Name
		if !strings.HasSuffix(name, "_test") {
			return name
		}
	}

	if len(files) > 0 {
		return files[0].File.Name.Name
	}

	return ""
}

// IsTestFile reports whether path names a Go test file.
func IsTestFile(path string) bool {
	return strings.HasSuffix(path, "_test.go")
}

// unexported variables.
var (
	errNoGoFiles = errors.New("no Go files")
)

// IsNoGoFiles reports whether err means the directory held nothing loadable.
func IsNoGoFiles(err error) bool {
	return errors.Is(err, errNoGoFiles)
}
