package detect

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/tools/go/packages"
)

// Resolver maps between import paths and source directories for one module.
type Resolver struct {
	ModulePath string
	ModuleRoot string

	mu    sync.Mutex
	cache map[string]string
}

// NewResolver returns a resolver for the module rooted at moduleRoot.
func NewResolver(modulePath, moduleRoot string) *Resolver {
	return &Resolver{
		ModulePath: modulePath,
		ModuleRoot: moduleRoot,
		cache:      map[string]string{},
	}
}

// ImportPathFor returns the import path of a directory inside the module.
func (r *Resolver) ImportPathFor(dir string) (string, error) {
	rel, err := filepath.Rel(r.ModuleRoot, dir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s is not inside %s", errOutsideModule, dir, r.ModuleRoot)
	}

	if rel == "." {
		return r.ModulePath, nil
	}

	return r.ModulePath + "/" + filepath.ToSlash(rel), nil
}

// DirFor resolves an import path to its source directory. Module-local paths
// map under the module root; everything else goes through the go tool, which
// sees the standard library and the module cache alike. Lookups are cached
// for the life of the resolver.
func (r *Resolver) DirFor(importPath string) (string, error) {
	if importPath == r.ModulePath {
		return r.ModuleRoot, nil
	}

	if rest, ok := strings.CutPrefix(importPath, r.ModulePath+"/"); ok {
		return filepath.Join(r.ModuleRoot, filepath.FromSlash(rest)), nil
	}

	r.mu.Lock()
	dir, cached := r.cache[importPath]
	r.mu.Unlock()

	if cached {
		return dir, nil
	}

	dir, err := r.lookupDir(importPath)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	r.cache[importPath] = dir
	r.mu.Unlock()

	return dir, nil
}

// lookupDir locates a package outside the module.
func (r *Resolver) lookupDir(importPath string) (string, error) {
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedFiles, Dir: r.ModuleRoot}

	pkgs, err := packages.Load(cfg, importPath)
	if err != nil {
		return "", fmt.Errorf("failed to locate package %q: %w", importPath, err)
	}

	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 || len(pkg.GoFiles) == 0 {
			continue
		}

		return filepath.Dir(pkg.GoFiles[0]), nil
	}

	return "", fmt.Errorf("%w: %q", errPackageNotFound, importPath)
}

// unexported variables.
var (
	errOutsideModule   = errors.New("directory outside module")
	errPackageNotFound = errors.New("package not found")
)
