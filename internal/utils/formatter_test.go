package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatGeneratedSource(t *testing.T) {
	source := []byte("package demo\n\nimport \"fmt\"\n\nfunc Hello( ) {fmt.Println(\"hi\" )}\n")

	formatted, err := FormatGeneratedSource("demo.go", source)
	require.NoError(t, err)
	assert.Contains(t, string(formatted), "func Hello() {")
}

func TestFormatGeneratedSourceInvalid(t *testing.T) {
	_, err := FormatGeneratedSource("demo.go", []byte("package demo\n\nfunc {"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid Go")
}

func TestWriteGeneratedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "autogen_slash.go")

	err := WriteGeneratedFile(path, []byte("package demo\n\nvar  X  =  1\n"))
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package demo\n\nvar X = 1\n", string(content))
}

func TestValidateGoSource(t *testing.T) {
	assert.NoError(t, ValidateGoSource([]byte("package demo\n")))
	assert.Error(t, ValidateGoSource([]byte("not go at all")))
}
