package slash

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandBuilderJSON(t *testing.T) {
	cmd := NewCommand("echo", "Echo a message.").
		AddOption(StringOption("message", "The message to echo.")).
		AddOption(IntOption("times", "How many times.").Required(false).MinValue(1).MaxValue(10))

	raw, err := json.Marshal(cmd)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"name": "echo",
		"description": "Echo a message.",
		"options": [
			{"type": 3, "name": "message", "description": "The message to echo.", "required": true},
			{"type": 4, "name": "times", "description": "How many times.", "min_value": 1, "max_value": 10}
		]
	}`, string(raw))
}

func TestOptionBuilderChoices(t *testing.T) {
	opt := NewOption(TypeInteger, "medal", "The medal to award.").
		AddIntChoice("Gold", 1).
		AddIntChoice("Silver", 2).
		AddIntChoice("Bronze", 3).
		Required(true)

	require.Len(t, opt.Choices, 3)
	assert.Equal(t, Choice{Name: "Silver", Value: int64(2)}, opt.Choices[1])

	raw, err := json.Marshal(opt)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"choices":[{"name":"Gold","value":1}`)
}

func TestOptionBuilderNesting(t *testing.T) {
	group := NewOption(TypeSubCommandGroup, "math", "Math operations.").
		AddSubOption(NewOption(TypeSubCommand, "add", "Add two numbers.").
			AddSubOption(NumberOption("a", "First number.")).
			AddSubOption(NumberOption("b", "Second number.")))

	require.Len(t, group.Options, 1)
	assert.Equal(t, TypeSubCommand, group.Options[0].OptionType)
	require.Len(t, group.Options[0].Options, 2)
}

func TestOptionBuilderConstraints(t *testing.T) {
	opt := StringOption("word", "A word.").MinLength(2).MaxLength(30).SetAutocomplete(true)

	require.NotNil(t, opt.MinLen)
	assert.Equal(t, 2, *opt.MinLen)
	require.NotNil(t, opt.MaxLen)
	assert.Equal(t, 30, *opt.MaxLen)
	assert.True(t, opt.Autocomplete)
}
