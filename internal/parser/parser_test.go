package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/slashgen/internal/errors"
	"github.com/toyz/slashgen/internal/models"
	"github.com/toyz/slashgen/internal/utils"
)

func parseSource(t *testing.T, source string) (*models.PackageMetadata, *errors.Accumulator) {
	t.Helper()
	p := NewParser(utils.NewDiagnosticSystem(utils.DiagnosticSilent))
	acc := errors.NewAccumulator()
	meta, err := p.ParseSource("bot/bot.go", source, acc)
	require.NoError(t, err)
	return meta, acc
}

func TestParseCommandList(t *testing.T) {
	meta, acc := parseSource(t, `package bot

//slash::commands
type Commands struct {
	// Ping the bot.
	Ping *struct{}
	// Echo a message back.
	Echo *EchoCommand
	// Do some math.
	Math *struct {
		// The first operand.
		First int64
		// The second operand.
		Second int64
	}
}

//slash::command
// Echo a message back.
type EchoCommand struct {
	// The message to echo.
	Message string
	// How many times to repeat it.
	Times *int64
}
`)
	require.NoError(t, acc.Err())
	require.NotNil(t, meta)
	assert.Equal(t, "bot", meta.PackageName)
	require.Len(t, meta.Types, 2)

	list := meta.Types[0]
	assert.Equal(t, "Commands", list.Name)
	assert.Equal(t, models.RoleCommands, list.Role)
	assert.Equal(t, models.ShapeEnum, list.Shape)
	require.Len(t, list.Variants, 3)

	assert.Equal(t, models.VariantUnit, list.Variants[0].Shape)
	assert.Equal(t, "ping", list.Variants[0].Name)
	assert.Equal(t, "Ping the bot.", list.Variants[0].Doc)

	assert.Equal(t, models.VariantNewtype, list.Variants[1].Shape)
	assert.Equal(t, "EchoCommand", list.Variants[1].Inner)

	math := list.Variants[2]
	assert.Equal(t, models.VariantNamed, math.Shape)
	require.Len(t, math.Fields, 2)
	assert.Equal(t, "first", math.Fields[0].Name)
	assert.Equal(t, "int64", math.Fields[0].TypeExpr)

	echo := meta.Types[1]
	assert.Equal(t, models.RoleCommand, echo.Role)
	assert.Equal(t, models.ShapeOptions, echo.Shape)
	assert.Equal(t, "Echo a message back.", echo.Doc)
	require.Len(t, echo.Fields, 2)
	assert.Equal(t, "message", echo.Fields[0].Name)
	assert.False(t, echo.Fields[0].Optional)
	assert.Equal(t, "times", echo.Fields[1].Name)
	assert.True(t, echo.Fields[1].Optional)
}

func TestParseGroupAndSubCommands(t *testing.T) {
	meta, acc := parseSource(t, `package bot

//slash::group
// Manage saved tags.
type TagGroup struct {
	// Add a tag.
	Add *AddTag
	// Remove a tag.
	Remove *struct {
		// The tag to remove.
		Name string `+"`slash:\"name=tag-name\"`"+`
	}
}

//slash::subcommand
// Add a tag.
type AddTag struct {
	// The tag name.
	Name string
	// The tag body.
	Body string
}
`)
	require.NoError(t, acc.Err())
	require.Len(t, meta.Types, 2)

	add := meta.Types[0]
	assert.Equal(t, models.RoleSubCommand, add.Role)
	assert.Equal(t, models.ShapeOptions, add.Shape)

	group := meta.Types[1]
	assert.Equal(t, models.RoleGroup, group.Role)
	assert.Equal(t, models.ShapeEnum, group.Shape)
	require.Len(t, group.Variants, 2)
	require.Len(t, group.Variants[1].Fields, 1)
	assert.Equal(t, "tag-name", group.Variants[1].Fields[0].Name)
}

func TestParseChoiceOption(t *testing.T) {
	meta, acc := parseSource(t, `package bot

//slash::option type=integer
type Medal int

const (
	MedalGold Medal = iota + 1
	MedalSilver
	//slash::choice name="Bronze Medal"
	MedalBronze
)
`)
	require.NoError(t, acc.Err())
	require.Len(t, meta.Types, 1)

	medal := meta.Types[0]
	assert.Equal(t, models.RoleOption, medal.Role)
	assert.Equal(t, models.ShapeChoices, medal.Shape)
	assert.Equal(t, models.ChoiceInteger, medal.ChoiceKind)
	assert.Equal(t, "int", medal.Underlying)
	require.Len(t, medal.Choices, 3)

	assert.Equal(t, "Gold", medal.Choices[0].Name)
	assert.Equal(t, "1", medal.Choices[0].Value)
	assert.Equal(t, "Silver", medal.Choices[1].Name)
	assert.Equal(t, "2", medal.Choices[1].Value)
	assert.Equal(t, "Bronze Medal", medal.Choices[2].Name)
	assert.Equal(t, "3", medal.Choices[2].Value)
}

func TestParseStringChoices(t *testing.T) {
	meta, acc := parseSource(t, `package bot

//slash::option type=string
type Region string

const (
	RegionNorthAmerica Region = "na"
	RegionEurope       Region = "eu"
)
`)
	require.NoError(t, acc.Err())
	require.Len(t, meta.Types, 1)
	choices := meta.Types[0].Choices
	require.Len(t, choices, 2)
	assert.Equal(t, "North America", choices[0].Name)
	assert.Equal(t, `"na"`, choices[0].Value)
	assert.Equal(t, "Europe", choices[1].Name)
}

func TestParseNewtypes(t *testing.T) {
	meta, acc := parseSource(t, `package bot

//slash::command
// Wrap another command.
type Wrapper struct {
	EchoCommand
}

//slash::command
// Echo a message back.
type EchoCommand struct {
	// The message to echo.
	Message string
}

//slash::option
type LoudMessage string
`)
	require.NoError(t, acc.Err())
	require.Len(t, meta.Types, 3)

	loud := meta.Types[1]
	assert.Equal(t, models.ShapeNewtype, loud.Shape)
	assert.Equal(t, "string", loud.Inner)

	wrapper := meta.Types[2]
	assert.Equal(t, models.ShapeNewtype, wrapper.Shape)
	assert.Equal(t, "EchoCommand", wrapper.Inner)
}

func TestCommandShapeInference(t *testing.T) {
	t.Run("pointer to builtin is an optional option", func(t *testing.T) {
		meta, acc := parseSource(t, `package bot

//slash::command
// Echo a message back.
type Echo struct {
	// The message to echo.
	Message *string
}
`)
		require.NoError(t, acc.Err())
		assert.Equal(t, models.ShapeOptions, meta.Types[0].Shape)
		assert.True(t, meta.Types[0].Fields[0].Optional)
	})

	t.Run("pointer to int is an optional option", func(t *testing.T) {
		meta, acc := parseSource(t, `package bot

//slash::command
// Roll some dice.
type Roll struct {
	// How many sides per die.
	Sides *int
}
`)
		require.NoError(t, acc.Err())
		assert.Equal(t, models.ShapeOptions, meta.Types[0].Shape)
		assert.True(t, meta.Types[0].Fields[0].Optional)
		assert.Equal(t, "int", meta.Types[0].Fields[0].TypeExpr)
	})

	t.Run("variant tag forces enum", func(t *testing.T) {
		meta, acc := parseSource(t, `package bot

//slash::command
// Manage tags.
type Tags struct {
	// Add a tag.
	Add *AddTag `+"`slash:\"variant\"`"+`
}

//slash::subcommand
// Add a tag.
type AddTag struct {
	// The tag name.
	Name string
}
`)
		require.NoError(t, acc.Err())
		assert.Equal(t, models.ShapeEnum, meta.Types[1].Shape)
	})

	t.Run("all ambiguous fields is an error", func(t *testing.T) {
		_, acc := parseSource(t, `package bot

//slash::command
// Ambiguous.
type Odd struct {
	// Something.
	Thing *Custom
}
`)
		require.True(t, acc.HasErrors())
		assert.Contains(t, acc.Err().Error(), "cannot tell whether command Odd")
	})

	t.Run("mixed votes is an error", func(t *testing.T) {
		_, acc := parseSource(t, `package bot

//slash::command
// Mixed.
type Mixed struct {
	// An option.
	Message string
	// A variant.
	Extra *struct{}
}
`)
		require.True(t, acc.HasErrors())
		assert.Contains(t, acc.Err().Error(), "mixes variant fields and option fields")
	})
}

func TestParseDiagnostics(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name: "missing type doc",
			source: `package bot

//slash::command
type Quiet struct {
	// The message.
	Message string
}
`,
			want: "needs a doc comment",
		},
		{
			name: "missing option doc",
			source: `package bot

//slash::command
// Echo a message back.
type Echo struct {
	Message string
}
`,
			want: "option Message of Echo needs a doc comment",
		},
		{
			name: "non-pointer variant",
			source: `package bot

//slash::commands
type Commands struct {
	// Ping the bot.
	Ping struct{}
}
`,
			want: "variant Ping of Commands must be a pointer field",
		},
		{
			name: "unknown directive",
			source: `package bot

//slash::comands
type Commands struct{}
`,
			want: "unknown directive: comands",
		},
		{
			name: "unexpected parameter",
			source: `package bot

//slash::command type=string
// Echo.
type Echo struct {
	// The message.
	Message string
}
`,
			want: "does not take a type parameter",
		},
		{
			name: "autocomplete on unit variant",
			source: `package bot

//slash::commands
type Commands struct {
	// Ping the bot.
	Ping *struct{} `+"`slash:\"autocomplete\"`"+`
}
`,
			want: "cannot be autocompleted",
		},
		{
			name: "duplicate option names",
			source: `package bot

//slash::command
// Echo.
type Echo struct {
	// The message.
	Message string
	// Also the message.
	Msg string `+"`slash:\"name=message\"`"+`
}
`,
			want: "declares option name message more than once",
		},
		{
			name: "embedded field mixed with options",
			source: `package bot

//slash::command
// Echo a message back.
type Echo struct {
	EchoBase
	// The message.
	Message string
}

type EchoBase struct{}
`,
			want: "must embed exactly one delegate type and nothing else",
		},
		{
			name: "choice kind over incompatible type",
			source: `package bot

//slash::option type=integer
type Region string

const (
	RegionNorthAmerica Region = "na"
)
`,
			want: "cannot hold integer choices",
		},
		{
			name: "choice type without constants",
			source: `package bot

//slash::option type=integer
type Medal int
`,
			want: "declares no constants",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, acc := parseSource(t, tt.source)
			require.True(t, acc.HasErrors(), "expected a diagnostic")
			assert.Contains(t, acc.Err().Error(), tt.want)
		})
	}
}

func TestParseAccumulatesProblems(t *testing.T) {
	_, acc := parseSource(t, `package bot

//slash::command
type Quiet struct {
	// The message.
	Message string
}

//slash::command
// Echo a message back.
type Echo struct {
	Message string
}

//slash::option type=number
type Weight float64
`)
	require.True(t, acc.HasErrors())
	assert.GreaterOrEqual(t, acc.Len(), 3)
	msg := acc.Err().Error()
	assert.Contains(t, msg, "Quiet needs a doc comment")
	assert.Contains(t, msg, "option Message of Echo needs a doc comment")
	assert.Contains(t, msg, "declares no constants")
}

func TestEmptyEnumDiagnosedAfterOtherErrors(t *testing.T) {
	_, acc := parseSource(t, `package bot

//slash::command
type Quiet struct {
	// The message.
	Message string
}

//slash::commands
type Commands struct{}
`)
	require.True(t, acc.HasErrors())
	msg := acc.Err().Error()
	assert.Contains(t, msg, "Quiet needs a doc comment")
	assert.Contains(t, msg, "Commands declares no variants")
}

func TestDuplicateCommandNamesAcrossLists(t *testing.T) {
	_, acc := parseSource(t, `package bot

//slash::commands
type AdminCommands struct {
	// Ping the bot.
	Ping *struct{}
}

//slash::commands
type UserCommands struct {
	// Ping the bot.
	Ping *struct{}
}
`)
	require.True(t, acc.HasErrors())
	assert.Contains(t, acc.Err().Error(), "command name ping is declared by both")
}
