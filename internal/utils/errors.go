package utils

import "fmt"

// Common error wrapping patterns used throughout the generator to keep
// messages consistent.

// WrapParseError wraps an error with a "failed to parse" message.
func WrapParseError(item string, err error) error {
	return fmt.Errorf("failed to parse %s: %w", item, err)
}

// WrapGenerateError wraps an error with a "failed to generate" message.
func WrapGenerateError(item string, err error) error {
	return fmt.Errorf("failed to generate %s: %w", item, err)
}

// WrapProcessError wraps an error with a "failed to process" message.
func WrapProcessError(item string, err error) error {
	return fmt.Errorf("failed to process %s: %w", item, err)
}
