package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	require.NoError(t, os.MkdirAll(dir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.proto"), []byte("old"), filePerm))

	files := []GeneratedFile{
		{Filename: "a.proto", Content: []byte("new")},
		{Filename: "b_helper.cc", Content: []byte("int x;\n")},
	}

	require.NoError(t, WriteFiles(files, dir))

	got, err := os.ReadFile(filepath.Join(dir, "a.proto"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	info, err := os.Stat(filepath.Join(dir, "b_helper.cc"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerm), info.Mode().Perm())
}
