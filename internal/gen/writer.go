package gen

import (
	"os"
	"path/filepath"

	"confgen/internal/errors"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist. Each file is written to a
// temporary file in the same directory and renamed over its target.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return errors.WriteFailed(outputDir, err)
	}

	for _, file := range files {
		if err := writeAtomic(filepath.Join(outputDir, file.Filename), file.Content); err != nil {
			return err
		}
	}

	return nil
}

func writeAtomic(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.WriteFailed(path, err)
	}

	tmpName := tmp.Name()

	fail := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return errors.WriteFailed(path, err)
	}

	if _, err := tmp.Write(content); err != nil {
		return fail(err)
	}

	if err := tmp.Chmod(filePerm); err != nil {
		return fail(err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)

		return errors.WriteFailed(path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)

		return errors.WriteFailed(path, err)
	}

	return nil
}
