package errors

import (
	"fmt"
	"strings"
)

// Accumulator batches generation diagnostics. Every fallible validation
// step records its problem and keeps going; the accumulator is drained
// exactly once, at the end of the pass, by Err or Drain.
type Accumulator struct {
	errs []*GenError
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Add records a diagnostic. Nil is ignored so call sites can pass through
// optional results.
func (a *Accumulator) Add(err *GenError) {
	if err != nil {
		a.errs = append(a.errs, err)
	}
}

// Addf records a diagnostic built in place.
func (a *Accumulator) Addf(code Code, loc Location, format string, args ...any) {
	a.errs = append(a.errs, New(code, loc, format, args...))
}

// Merge appends every diagnostic from another accumulator.
func (a *Accumulator) Merge(other *Accumulator) {
	a.errs = append(a.errs, other.errs...)
}

// HasErrors reports whether anything was recorded.
func (a *Accumulator) HasErrors() bool {
	return len(a.errs) > 0
}

// Len returns the number of recorded diagnostics.
func (a *Accumulator) Len() int {
	return len(a.errs)
}

// Drain returns all recorded diagnostics and resets the accumulator.
func (a *Accumulator) Drain() []*GenError {
	errs := a.errs
	a.errs = nil
	return errs
}

// Err collapses the accumulator into a single error, or nil if clean.
func (a *Accumulator) Err() error {
	if len(a.errs) == 0 {
		return nil
	}
	return &AggregateError{Errors: a.Drain()}
}

// AggregateError is the drained form of an accumulator.
type AggregateError struct {
	Errors []*GenError
}

// Error lists every diagnostic, one per line.
func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d problems found:", len(e.Errors))
	for _, err := range e.Errors {
		b.WriteString("\n\t")
		b.WriteString(err.Error())
	}
	return b.String()
}
