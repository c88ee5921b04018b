// Package run implements the vfgen generator pass in a testable way.
package run

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	arg "github.com/alexflint/go-arg"
	"golang.org/x/mod/modfile"

	scan "github.com/verifake/verifake/vfgen/run/1_scan"
	load "github.com/verifake/verifake/vfgen/run/2_load"
	detect "github.com/verifake/verifake/vfgen/run/3_detect"
	generate "github.com/verifake/verifake/vfgen/run/5_generate"
	output "github.com/verifake/verifake/vfgen/run/6_output"
)

// Interfaces - Public

// FileSystem is the file-mutating surface of a pass, split out for tests.
type FileSystem interface {
	WriteFile(name string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
}

// Structs - Private

// cliArgs defines the command-line arguments for the generator.
type cliArgs struct {
	Dir      string `arg:"positional"  default:"."     help:"module directory to scan for annotations"`
	FakesPkg string `arg:"--fakes-pkg" default:"fakes" help:"directory under the module root for the dispatch table package"`
}

// Functions - Public

// Run executes one generator pass: scan the module tree rooted at the given
// directory, resolve every annotated interface, write one fake file next to
// each annotation, and write the dispatch table for the importable fakes.
// A pass that finds nothing eligible writes nothing and succeeds.
func Run(args []string, logger *slog.Logger, fileSys FileSystem, pkgLoader detect.PackageLoader) error {
	parsed, err := parseArgs(args)
	if err != nil {
		return err
	}

	root, err := filepath.Abs(parsed.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", parsed.Dir, err)
	}

	modulePath, err := readModulePath(root)
	if err != nil {
		return err
	}

	resolver := detect.NewResolver(modulePath, root)

	annotated, err := collectModuleAnnotations(root, resolver, pkgLoader)
	if err != nil {
		return err
	}

	resolved, err := detect.Filter(annotated, resolver, pkgLoader, logger)
	if err != nil {
		return err
	}

	if len(resolved) == 0 {
		logger.Info("no annotated interfaces found", "root", root)

		return nil
	}

	entries, err := writeFakes(resolved, fileSys, logger)
	if err != nil {
		return err
	}

	return writeDispatch(entries, parsed.FakesPkg, modulePath, root, fileSys, logger)
}

// Functions - Private

// parseArgs parses command-line arguments into cliArgs.
func parseArgs(args []string) (cliArgs, error) {
	var parsed cliArgs

	parser, err := arg.NewParser(arg.Config{}, &parsed)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to create argument parser: %w", err)
	}

	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}

	err = parser.Parse(cmdArgs)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to parse arguments: %w", err)
	}

	return parsed, nil
}

// readModulePath reads the module path from the root go.mod.
func readModulePath(root string) (string, error) {
	goMod := filepath.Join(root, "go.mod")

	data, err := os.ReadFile(goMod)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", goMod, err)
	}

	modulePath := modfile.ModulePath(data)
	if modulePath == "" {
		return "", fmt.Errorf("%w in %s", errNoModulePath, goMod)
	}

	return modulePath, nil
}

// collectModuleAnnotations loads every scanned package and collects its
// annotations in scan order, which fixes first-occurrence semantics for the
// whole pass.
func collectModuleAnnotations(
	root string, resolver *detect.Resolver, pkgLoader detect.PackageLoader,
) ([]detect.Annotated, error) {
	dirs, err := scan.PackageDirs(root)
	if err != nil {
		return nil, err
	}

	var annotated []detect.Annotated

	for _, dir := range dirs {
		files, err := pkgLoader.Load(dir, true)
		if err != nil {
			if load.IsNoGoFiles(err) {
				continue
			}

			return nil, err
		}

		importPath, err := resolver.ImportPathFor(dir)
		if err != nil {
			return nil, err
		}

		pkg := &detect.Package{Dir: dir, ImportPath: importPath, Files: files}

		annotated = append(annotated, detect.CollectAnnotated(pkg)...)
	}

	return annotated, nil
}

// writeFakes renders and writes one fake per resolved interface and returns
// the dispatch rows for the importable ones. Fakes generated from test-file
// annotations stay out of the table: a test file cannot be imported.
func writeFakes(
	resolved []detect.ResolvedInterface, fileSys FileSystem, logger *slog.Logger,
) ([]generate.Entry, error) {
	var entries []generate.Entry

	for _, iface := range resolved {
		ops := detect.Introspect(iface)

		code, err := generate.FakeFile(iface, ops)
		if err != nil {
			return nil, err
		}

		name := generate.FakeFileName(iface.SimpleName, iface.FromTestFile)

		err = output.WriteGenerated(fileSys, iface.TargetDir, name, code, logger)
		if err != nil {
			return nil, err
		}

		if iface.FromTestFile {
			logger.Info("fake left out of dispatch table", "interface", iface.QualifiedName, "reason", "annotated in a test file")

			continue
		}

		entries = append(entries, generate.Entry{
			Key:         iface.QualifiedName,
			PkgPath:     iface.TargetPkgPath,
			PkgName:     iface.TargetPkgName,
			Constructor: generate.ConstructorName(iface.SimpleName),
		})
	}

	return entries, nil
}

// writeDispatch renders and writes the dispatch table package.
func writeDispatch(
	entries []generate.Entry, fakesPkg, modulePath, root string, fileSys FileSystem, logger *slog.Logger,
) error {
	if len(entries) == 0 {
		return nil
	}

	fakesPkg = path.Clean(filepath.ToSlash(fakesPkg))
	if fakesPkg == "." || fakesPkg == ".." || strings.HasPrefix(fakesPkg, "../") || path.IsAbs(fakesPkg) {
		return fmt.Errorf("%w: %q", errFakesPkgOutside, fakesPkg)
	}

	pkgName := path.Base(fakesPkg)
	pkgPath := modulePath + "/" + fakesPkg
	dir := filepath.Join(root, filepath.FromSlash(fakesPkg))

	code, err := generate.DispatchFile(entries, pkgName, pkgPath)
	if err != nil {
		return err
	}

	err = fileSys.MkdirAll(dir, 0o750)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	return output.WriteGenerated(fileSys, dir, generate.DispatchFileName, code, logger)
}

// unexported variables.
var (
	errNoModulePath    = errors.New("no module path")
	errFakesPkgOutside = errors.New("dispatch table directory must be a subdirectory of the module root")
)
