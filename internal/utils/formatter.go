package utils

import (
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"os"

	"golang.org/x/tools/imports"
)

// FormatGeneratedSource runs the emitted source through goimports so the
// generated file carries exactly the imports it uses, then falls back to
// plain gofmt formatting if import resolution fails.
func FormatGeneratedSource(filename string, source []byte) ([]byte, error) {
	formatted, err := imports.Process(filename, source, &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err == nil {
		return formatted, nil
	}

	formatted, fmtErr := format.Source(source)
	if fmtErr != nil {
		// Surface the underlying syntax problem, not the formatting noise.
		fset := token.NewFileSet()
		if _, parseErr := parser.ParseFile(fset, filename, source, parser.ParseComments); parseErr != nil {
			return nil, fmt.Errorf("generated source is not valid Go: %w", parseErr)
		}
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return formatted, nil
}

// WriteGeneratedFile formats the source and writes it to disk.
func WriteGeneratedFile(filename string, source []byte) error {
	formatted, err := FormatGeneratedSource(filename, source)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, formatted, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

// ValidateGoSource checks that source parses as Go.
func ValidateGoSource(source []byte) error {
	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, "", source, parser.ParseComments)
	return err
}
