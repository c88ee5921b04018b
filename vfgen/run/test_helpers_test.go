package run_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	load "github.com/verifake/verifake/vfgen/run/2_load"
)

// fakeFS captures generated files in memory so a pass over a real source
// tree never mutates it.
type fakeFS struct {
	files    map[string][]byte
	dirs     []string
	writeErr error
}

func newFakeFS() *fakeFS {
	return &fakeFS{files: map[string][]byte{}}
}

func (f *fakeFS) WriteFile(name string, data []byte, _ os.FileMode) error {
	if f.writeErr != nil {
		return f.writeErr
	}

	f.files[name] = data

	return nil
}

func (f *fakeFS) MkdirAll(path string, _ os.FileMode) error {
	f.dirs = append(f.dirs, path)

	return nil
}

// dirLoader is the production loader, used directly: run tests parse real
// temp trees.
type dirLoader struct{}

func (dirLoader) Load(dir string, local bool) ([]load.SourceFile, error) {
	return load.Dir(dir, local)
}

// writeTree materializes a module tree under root.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))

		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("mkdir for %s: %v", name, err)
		}

		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

// captureLogger returns a logger writing into the returned buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

// generated returns the content of one captured file, failing loudly when
// the pass never wrote it.
func generated(t *testing.T, fileSys *fakeFS, path string) string {
	t.Helper()

	content, ok := fileSys.files[path]
	if !ok {
		names := make([]string, 0, len(fileSys.files))
		for name := range fileSys.files {
			names = append(names, name)
		}

		t.Fatalf("expected %s to be written, have %v", path, names)
	}

	return string(content)
}
