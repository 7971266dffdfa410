package gen

import (
	"os"
	"path/filepath"
)

// writeRejected writes an artifact that failed verification to a sidecar
// file next to the intended output. This is best-effort and never replaces
// the real output.
func writeRejected(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(outDir, filename+".rejected"), content, filePerm)
}
