package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestExpandDirectoriesRecursive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.go"), "package a\n")
	writeFile(t, filepath.Join(root, "sub", "b.go"), "package sub\n")
	writeFile(t, filepath.Join(root, "vendor", "c.go"), "package c\n")
	writeFile(t, filepath.Join(root, "empty", "notes.txt"), "no go files here\n")

	dirs, err := ExpandDirectories([]string{root + "/..."})
	require.NoError(t, err)

	require.Len(t, dirs, 2)
	assert.Equal(t, root, dirs[0])
	assert.Equal(t, filepath.Join(root, "sub"), dirs[1])
}

func TestExpandDirectoriesSingle(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.go"), "package a\n")

	dirs, err := ExpandDirectories([]string{root})
	require.NoError(t, err)
	assert.Equal(t, []string{root}, dirs)

	_, err = ExpandDirectories([]string{filepath.Join(root, "missing")})
	assert.Error(t, err)
}

func TestGoFilesIn(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "commands.go"), "package bot\n")
	writeFile(t, filepath.Join(root, "commands_test.go"), "package bot\n")
	writeFile(t, filepath.Join(root, "autogen_slash.go"), "package bot\n")
	writeFile(t, filepath.Join(root, "README.md"), "docs\n")

	files, err := GoFilesIn(root)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(root, "commands.go"), files[0])
}

func TestModulePath(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module example.com/demo\n\ngo 1.25\n")
	writeFile(t, filepath.Join(root, "nested", "deep", "a.go"), "package deep\n")

	path, err := ModulePath(filepath.Join(root, "nested", "deep"))
	require.NoError(t, err)
	assert.Equal(t, "example.com/demo", path)
}
