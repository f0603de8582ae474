package slash

// Partial holds the outcome of a best-effort decode during an autocomplete
// interaction: either the fully parsed value, or the coarse wire value
// together with the error that blocked full parsing. Sibling options of the
// one being typed are often incomplete, so autocomplete parsers never let
// their failures abort the whole parse.
type Partial[T any] struct {
	// Value is the parsed value. Meaningful only when Err is nil.
	Value T

	// Raw is the wire value as received (string, int64, float64, bool, or a
	// snowflake ID), or nil if the option was absent. Set only when Err is
	// non-nil.
	Raw any

	// Err is the error that blocked full parsing, if any.
	Err error
}

// NewPartial runs decode and captures a failure as a partial value instead
// of propagating it.
func NewPartial[T any](opt *OptionData, decode func(*OptionData) (T, error)) Partial[T] {
	v, err := decode(opt)
	if err != nil {
		var raw any
		if opt != nil {
			raw = opt.Value
		}
		return Partial[T]{Raw: raw, Err: err}
	}
	return Partial[T]{Value: v}
}

// Ok reports whether the value parsed fully.
func (p Partial[T]) Ok() bool {
	return p.Err == nil
}

// Get returns the parsed value or the blocking error.
func (p Partial[T]) Get() (T, error) {
	if p.Err != nil {
		var zero T
		return zero, p.Err
	}
	return p.Value, nil
}
