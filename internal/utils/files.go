package utils

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileReader parses Go files against a shared FileSet so positions stay
// meaningful across a whole generation run.
type FileReader struct {
	fileSet *token.FileSet
}

// NewFileReader creates a FileReader with a fresh FileSet.
func NewFileReader() *FileReader {
	return &FileReader{fileSet: token.NewFileSet()}
}

// FileSet exposes the underlying FileSet for position lookups.
func (fr *FileReader) FileSet() *token.FileSet {
	return fr.fileSet
}

// ParseGoFile parses a Go source file, keeping comments.
func (fr *FileReader) ParseGoFile(path string) (*ast.File, error) {
	file, err := parser.ParseFile(fr.fileSet, path, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return file, nil
}

// ParseGoSource parses Go source from a string, for tests.
func (fr *FileReader) ParseGoSource(filename, source string) (*ast.File, error) {
	file, err := parser.ParseFile(fr.fileSet, filename, source, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	return file, nil
}

// ExpandDirectories resolves the CLI's directory arguments into the set of
// directories containing Go files. A trailing "/..." requests recursion,
// matching the go tool's package patterns.
func ExpandDirectories(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var dirs []string

	add := func(dir string) error {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", dir, err)
		}
		if seen[abs] {
			return nil
		}
		ok, err := containsGoFiles(abs)
		if err != nil {
			return err
		}
		if ok {
			seen[abs] = true
			dirs = append(dirs, abs)
		}
		return nil
	}

	for _, arg := range args {
		if base, recursive := strings.CutSuffix(arg, "/..."); recursive {
			if base == "" {
				base = "."
			}
			err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() {
					return nil
				}
				name := d.Name()
				if path != base && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor" || name == "testdata") {
					return filepath.SkipDir
				}
				return add(path)
			})
			if err != nil {
				return nil, fmt.Errorf("failed to walk %s: %w", base, err)
			}
		} else if err := add(arg); err != nil {
			return nil, err
		}
	}

	sort.Strings(dirs)
	return dirs, nil
}

// GoFilesIn lists the non-generated, non-test Go files of a directory.
func GoFilesIn(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") {
			continue
		}
		if strings.HasSuffix(name, "_test.go") || strings.HasPrefix(name, "autogen_") {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)
	return files, nil
}

func containsGoFiles(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return false, fmt.Errorf("directory does not exist: %s", dir)
		}
		return false, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".go") {
			return true, nil
		}
	}
	return false, nil
}
