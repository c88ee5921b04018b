// Package scan discovers the package directories of a module tree.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// unexported variables.
var skipDirs = map[string]struct{}{
	"testdata":     {},
	"vendor":       {},
	"node_modules": {},
}

// PackageDirs walks the tree rooted at root and returns the sorted set of
// directories containing at least one Go source file. Dot-prefixed and
// underscore-prefixed directories, testdata, vendor, nested modules (their
// own go.mod), and root .gitignore matches are skipped. The sorted order
// defines first-occurrence semantics for everything downstream.
func PackageDirs(root string) ([]string, error) {
	gitignore := loadGitignore(root)

	seen := map[string]struct{}{}

	walkErr := filepath.WalkDir(root, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name := entry.Name()

		if entry.IsDir() {
			if path == root {
				return nil
			}

			if _, skip := skipDirs[name]; skip || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
				return filepath.SkipDir
			}

			if hasOwnModule(path) {
				return filepath.SkipDir
			}

			if gitignore != nil && gitignore.MatchesPath(mustRel(root, path)) {
				return filepath.SkipDir
			}

			return nil
		}

		if !strings.HasSuffix(name, ".go") || strings.HasPrefix(name, ".") {
			return nil
		}

		// Symlinked files are not scanned.
		if entry.Type()&os.ModeSymlink != 0 {
			return nil
		}

		if gitignore != nil && gitignore.MatchesPath(mustRel(root, path)) {
			return nil
		}

		seen[filepath.Dir(path)] = struct{}{}

		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, walkErr)
	}

	dirs := make([]string, 0, len(seen))
	for dir := range seen {
		dirs = append(dirs, dir)
	}

	sort.Strings(dirs)

	return dirs, nil
}

// hasOwnModule reports whether dir is the root of a nested module.
func hasOwnModule(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "go.mod"))

	return err == nil && !info.IsDir()
}

// loadGitignore compiles the root .gitignore when present.
func loadGitignore(root string) *ignore.GitIgnore {
	gitignore, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}

	return gitignore
}

// mustRel returns path relative to root, falling back to path itself when
// the two do not share a prefix.
func mustRel(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}

	return rel
}
