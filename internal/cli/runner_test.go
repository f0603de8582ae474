package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCommands = `package bot

//slash::commands
type Commands struct {
	// Ping the bot.
	Ping *struct{}
}
`

func writeTestPackage(t *testing.T, source string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bot.go"), []byte(source), 0o644))
	return dir
}

func TestRunnerGeneratesFile(t *testing.T) {
	dir := writeTestPackage(t, testCommands)

	runner := NewRunner(&Config{Paths: []string{dir}, Quiet: true})
	require.NoError(t, runner.Run())

	out, err := os.ReadFile(filepath.Join(dir, "autogen_slash.go"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "// Code generated by slashgen. DO NOT EDIT.")
	assert.Contains(t, string(out), "func (x *Commands) BuildCommands()")
}

func TestRunnerReportsDiagnostics(t *testing.T) {
	dir := writeTestPackage(t, `package bot

//slash::command
type Undocumented struct {
	// The message.
	Message string
}
`)

	runner := NewRunner(&Config{Paths: []string{dir}, Quiet: true})
	err := runner.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generation failed")

	_, statErr := os.Stat(filepath.Join(dir, "autogen_slash.go"))
	assert.True(t, os.IsNotExist(statErr), "no file should be written on failure")
}

func TestRunnerSkipsPlainPackages(t *testing.T) {
	dir := writeTestPackage(t, "package bot\n\ntype Plain struct{}\n")

	runner := NewRunner(&Config{Paths: []string{dir}, Quiet: true})
	require.NoError(t, runner.Run())

	_, err := os.Stat(filepath.Join(dir, "autogen_slash.go"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunnerClean(t *testing.T) {
	dir := writeTestPackage(t, testCommands)

	runner := NewRunner(&Config{Paths: []string{dir}, Quiet: true})
	require.NoError(t, runner.Run())
	require.FileExists(t, filepath.Join(dir, "autogen_slash.go"))

	cleaner := NewRunner(&Config{Paths: []string{dir}, Quiet: true, Clean: true})
	require.NoError(t, cleaner.Run())
	_, err := os.Stat(filepath.Join(dir, "autogen_slash.go"))
	assert.True(t, os.IsNotExist(err))
}

func TestConfigValidate(t *testing.T) {
	assert.Error(t, (&Config{}).Validate())
	assert.Error(t, (&Config{Paths: []string{"."}, Verbose: true, Quiet: true}).Validate())
	assert.NoError(t, (&Config{Paths: []string{"."}}).Validate())
}
