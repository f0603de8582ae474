package slash

import (
	"errors"
	"fmt"
)

// Sentinel errors for absent wire data.
var (
	// ErrMissingRequiredOption is returned when a non-optional option has no
	// entry in the input list.
	ErrMissingRequiredOption = errors.New("required command option not provided")

	// ErrMissingAutocompleteOption is returned by generated autocomplete
	// parsers when no option in the input carries the focused marker.
	ErrMissingAutocompleteOption = errors.New("no option is marked as focused")
)

// UnknownCommandError reports a top-level command name that matches no
// declared command.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %s", e.Name)
}

// UnknownOptionError reports an option name that matches no declared
// option, sub-command, or sub-command group at its nesting level.
type UnknownOptionError struct {
	Name string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown command option: %s", e.Name)
}

// UnknownAutocompleteOptionError reports a focused option whose name matches
// no autocomplete-enabled declaration.
type UnknownAutocompleteOptionError struct {
	Name string
}

func (e *UnknownAutocompleteOptionError) Error() string {
	return fmt.Sprintf("unknown autocomplete option: %s", e.Name)
}

// OptionTypeError reports a wire option of the wrong kind.
type OptionTypeError struct {
	Got      OptionType
	Expected OptionType
}

func (e *OptionTypeError) Error() string {
	return fmt.Sprintf("incorrect command option type: got %s, expected %s", e.Got, e.Expected)
}

// OptionCountError reports a nested option list of the wrong length. Enum
// levels require exactly one nested entry.
type OptionCountError struct {
	Got      int
	Expected int
}

func (e *OptionCountError) Error() string {
	return fmt.Sprintf("incorrect command option count: got %d, expected %d", e.Got, e.Expected)
}

// UnknownChoiceError reports a wire value that matches no declared choice of
// a closed-set option.
type UnknownChoiceError struct {
	Value string
}

func (e *UnknownChoiceError) Error() string {
	return fmt.Sprintf("unknown choice: %s", e.Value)
}
