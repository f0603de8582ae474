package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulatorBatchesProblems(t *testing.T) {
	acc := NewAccumulator()
	assert.False(t, acc.HasErrors())
	assert.NoError(t, acc.Err())

	acc.Addf(CodeMissingDoc, Location{File: "commands.go", Line: 10},
		"field Message: missing doc comment to use as description")
	acc.Addf(CodeShape, Location{File: "commands.go", Line: 14},
		"type Medal: const block is empty")
	acc.Add(nil) // ignored

	require.True(t, acc.HasErrors())
	assert.Equal(t, 2, acc.Len())

	err := acc.Err()
	require.Error(t, err)

	var agg *AggregateError
	require.ErrorAs(t, err, &agg)
	require.Len(t, agg.Errors, 2)
	assert.Contains(t, err.Error(), "2 problems found:")
	assert.Contains(t, err.Error(), "commands.go:10")
	assert.Contains(t, err.Error(), "[ShapeError]")

	// Err drains: a second call sees a clean accumulator.
	assert.NoError(t, acc.Err())
}

func TestAccumulatorSingleError(t *testing.T) {
	acc := NewAccumulator()
	acc.Add(New(CodeAutocomplete, Location{File: "cmd.go", Line: 3},
		"variant Ping: autocomplete is not supported on unit variants").
		WithSuggestions("remove the autocomplete flag"))

	err := acc.Err()
	require.Error(t, err)
	assert.Equal(t, "[AutocompleteError] variant Ping: autocomplete is not supported on unit variants (cmd.go:3)", err.Error())
}

func TestAccumulatorMerge(t *testing.T) {
	a := NewAccumulator()
	b := NewAccumulator()
	b.Addf(CodeAttribute, Location{}, "missing type= parameter")

	a.Merge(b)
	assert.Equal(t, 1, a.Len())
}
