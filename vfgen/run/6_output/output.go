package output

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Writer is the file-writing surface of the output stage.
type Writer interface {
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// WriteGenerated writes one generated file into dir. Generated files carry
// owner-only permissions.
func WriteGenerated(fileWriter Writer, dir, name string, data []byte, logger *slog.Logger) error {
	const generatedFilePermissions = 0o600

	path := filepath.Join(dir, name)

	err := fileWriter.WriteFile(path, data, generatedFilePermissions)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}

	logger.Info("wrote generated file", "path", path, "bytes", len(data))

	return nil
}
