package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// ModulePath returns the module path declared by the go.mod governing dir,
// walking parent directories the way the go tool does.
func ModulePath(dir string) (string, error) {
	goModPath, err := FindGoMod(dir)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(goModPath)
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}

	modFile, err := modfile.Parse(goModPath, content, nil)
	if err != nil {
		return "", fmt.Errorf("failed to parse go.mod: %w", err)
	}
	if modFile.Module == nil {
		return "", fmt.Errorf("no module declaration in %s", goModPath)
	}
	return modFile.Module.Mod.Path, nil
}

// FindGoMod walks up from dir looking for a go.mod file.
func FindGoMod(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	for {
		candidate := filepath.Join(current, "go.mod")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("no go.mod found above %s", dir)
		}
		current = parent
	}
}
