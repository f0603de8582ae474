// Package errors defines the generation-time error model: typed errors
// carrying a source location and fix suggestions, plus the accumulator that
// batches every problem found in a pass so users see all of them at once
// instead of fixing one per run.
package errors

import (
	"fmt"
	"strings"

	"github.com/toyz/slashgen/internal/models"
)

// Location aliases the shared source-location type for brevity at call
// sites.
type Location = models.SourceLocation

// Code classifies a generation error.
type Code int

const (
	CodeUnknown Code = iota
	CodeSyntax       // malformed directive or tag
	CodeShape        // declaration shape unsupported by its role
	CodeMissingDoc   // missing doc comment description
	CodeAttribute    // invalid or missing attribute
	CodeAutocomplete // autocomplete flag misuse
	CodeDuplicate    // colliding external names
	CodeEmit         // failure assembling or formatting output
)

// String returns the display name of the code.
func (c Code) String() string {
	switch c {
	case CodeSyntax:
		return "SyntaxError"
	case CodeShape:
		return "ShapeError"
	case CodeMissingDoc:
		return "MissingDocError"
	case CodeAttribute:
		return "AttributeError"
	case CodeAutocomplete:
		return "AutocompleteError"
	case CodeDuplicate:
		return "DuplicateNameError"
	case CodeEmit:
		return "EmitError"
	default:
		return "UnknownError"
	}
}

// GenError is one generation-time diagnostic.
type GenError struct {
	Code        Code
	Message     string
	Location    models.SourceLocation
	Suggestions []string
	Cause       error
}

// Error implements the error interface.
func (e *GenError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)
	if e.Location.File != "" {
		fmt.Fprintf(&b, " (%s:%d)", e.Location.File, e.Location.Line)
	}
	return b.String()
}

// Unwrap exposes the wrapped cause, if any.
func (e *GenError) Unwrap() error {
	return e.Cause
}

// New creates a GenError at a location.
func New(code Code, loc models.SourceLocation, format string, args ...any) *GenError {
	return &GenError{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Location: loc,
	}
}

// WithSuggestions attaches fix suggestions.
func (e *GenError) WithSuggestions(suggestions ...string) *GenError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}
