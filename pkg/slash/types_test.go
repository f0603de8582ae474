package slash

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionDataUnmarshalJSON(t *testing.T) {
	payload := `{
		"id": "1234",
		"name": "echo",
		"options": [
			{"name": "message", "type": 3, "value": "hi"},
			{"name": "times", "type": 4, "value": 3},
			{"name": "volume", "type": 10, "value": 0.5},
			{"name": "loud", "type": 5, "value": true},
			{"name": "target", "type": 6, "value": "99887766"}
		]
	}`

	var data InteractionData
	require.NoError(t, json.Unmarshal([]byte(payload), &data))

	require.Len(t, data.Options, 5)
	assert.Equal(t, "echo", data.Name)
	assert.Equal(t, "hi", data.Options[0].Value)
	assert.Equal(t, int64(3), data.Options[1].Value)
	assert.Equal(t, 0.5, data.Options[2].Value)
	assert.Equal(t, true, data.Options[3].Value)
	assert.Equal(t, UserID("99887766"), data.Options[4].Value)
}

func TestOptionDataUnmarshalNested(t *testing.T) {
	payload := `{
		"name": "math",
		"type": 2,
		"options": [
			{"name": "add", "type": 1, "options": [
				{"name": "a", "type": 10, "value": 1},
				{"name": "b", "type": 10, "value": 2}
			]}
		]
	}`

	var opt OptionData
	require.NoError(t, json.Unmarshal([]byte(payload), &opt))

	assert.Equal(t, TypeSubCommandGroup, opt.Type)
	assert.Nil(t, opt.Value)
	require.Len(t, opt.Options, 1)
	require.Len(t, opt.Options[0].Options, 2)
	assert.Equal(t, 1.0, opt.Options[0].Options[0].Value)
}

func TestOptionDataUnmarshalFocused(t *testing.T) {
	// Focused entries carry raw text even when declared as another kind.
	payload := `{"name": "times", "type": 4, "value": "12", "focused": true}`

	var opt OptionData
	require.NoError(t, json.Unmarshal([]byte(payload), &opt))

	assert.True(t, opt.Focused)
	assert.Equal(t, "12", opt.Value)
}

func TestFindAndFocused(t *testing.T) {
	options := []OptionData{
		{Name: "a", Type: TypeNumber, Value: 1.0},
		{Name: "b", Type: TypeNumber, Value: "2", Focused: true},
	}

	assert.Nil(t, Find(options, "c"))
	require.NotNil(t, Find(options, "a"))
	assert.Equal(t, 1.0, Find(options, "a").Value)

	focused := Focused(options)
	require.NotNil(t, focused)
	assert.Equal(t, "b", focused.Name)

	assert.Nil(t, Focused(options[:1]))
}

func TestOptionTypeString(t *testing.T) {
	assert.Equal(t, "sub_command_group", TypeSubCommandGroup.String())
	assert.Equal(t, "attachment", TypeAttachment.String())
	assert.Equal(t, "unknown(99)", OptionType(99).String())
}
