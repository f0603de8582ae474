package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/slashgen/internal/errors"
	"github.com/toyz/slashgen/internal/parser"
	"github.com/toyz/slashgen/internal/utils"
)

func generateSource(t *testing.T, source string) string {
	t.Helper()
	diag := utils.NewDiagnosticSystem(utils.DiagnosticSilent)
	acc := errors.NewAccumulator()

	meta, err := parser.NewParser(diag).ParseSource("bot/bot.go", source, acc)
	require.NoError(t, err)
	require.NoError(t, acc.Err())
	require.NotNil(t, meta)

	out, err := NewGenerator(diag).GenerateFile(meta, acc)
	require.NoError(t, err)
	require.NoError(t, acc.Err())
	require.NoError(t, utils.ValidateGoSource(out))
	return string(out)
}

func TestGenerateCommandList(t *testing.T) {
	out := generateSource(t, `package bot

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

	assert.Contains(t, out, "// Code generated by slashgen. DO NOT EDIT.")
	assert.Contains(t, out, "var _ slash.Commands = (*Commands)(nil)")
	assert.Contains(t, out, "var _ slash.Command = (*EchoCommand)(nil)")
	assert.Contains(t, out, `slash.NewCommand("ping", "Ping the bot.")`)
	assert.Contains(t, out, `new(EchoCommand).BuildCommand("echo", "Echo a message back.")`)
	assert.Contains(t, out, `AddOption(slash.IntOption("first", "The first operand."))`)
	assert.Contains(t, out, "func (x *Commands) UnmarshalInteraction(data *slash.InteractionData) error")
	assert.Contains(t, out, "&slash.UnknownCommandError{Name: data.Name}")
	assert.Contains(t, out, `slash.Optional(slash.DecodeInt, slash.Find(options, "times"))`)
	assert.Contains(t, out, ".Required(false)")
}

func TestGenerateNestedLevels(t *testing.T) {
	out := generateSource(t, `package bot

//slash::group
// Manage saved tags.
type TagGroup struct {
	// Add a tag.
	Add *AddTag
	// Clear all tags.
	Clear *struct{}
}

//slash::subcommand
// Add a tag.
type AddTag struct {
	// The tag name.
	Name string
	// The tag body.
	Body *string
}
`)

	assert.Contains(t, out, "var _ slash.SubCommandGroup = (*TagGroup)(nil)")
	assert.Contains(t, out, "var _ slash.SubCommand = (*AddTag)(nil)")
	assert.Contains(t, out, "func (x *AddTag) IsSubCommand() {}")
	assert.Contains(t, out, "slash.NewOption(slash.TypeSubCommandGroup, name, description)")
	assert.Contains(t, out, `AddSubOption(new(AddTag).BuildOption("add", "Add a tag."))`)
	assert.Contains(t, out, "&slash.OptionCountError{Got: len(opt.Options), Expected: 1}")
	assert.Contains(t, out, "&slash.OptionTypeError{Got: opt.Type, Expected: slash.TypeSubCommand}")
	assert.Contains(t, out, "&slash.UnknownOptionError{Name: opt.Options[i].Name}")
}

func TestGenerateChoiceOption(t *testing.T) {
	out := generateSource(t, `package bot

//slash::option type=integer
type Medal int

const (
	MedalGold Medal = iota + 1
	MedalSilver
	//slash::choice name="Bronze Medal"
	MedalBronze
)
`)

	assert.Contains(t, out, "var _ slash.Option = (*Medal)(nil)")
	assert.Contains(t, out, `AddIntChoice("Gold", 1)`)
	assert.Contains(t, out, `AddIntChoice("Bronze Medal", 3)`)
	assert.Contains(t, out, "case MedalGold, MedalSilver, MedalBronze:")
	assert.Contains(t, out, "&slash.UnknownChoiceError{Value: fmt.Sprint(v)}")
}

func TestGenerateNewtypeOption(t *testing.T) {
	out := generateSource(t, `package bot

//slash::option
type LoudMessage string
`)

	assert.Contains(t, out, "func (x *LoudMessage) BuildOption(name, description string) *slash.OptionBuilder")
	assert.Contains(t, out, "return slash.StringOption(name, description)")
	assert.Contains(t, out, "*x = LoudMessage(v)")
}

func TestGenerateAutocomplete(t *testing.T) {
	out := generateSource(t, `package bot

//slash::commands
type Commands struct {
	// Look up a word.
	Define *DefineCommand
}

//slash::command
// Look up a word.
type DefineCommand struct {
	// The word to define.
	Word string `+"`slash:\"autocomplete\"`"+`
	// The dictionary to search.
	Dictionary *string
}
`)

	assert.Contains(t, out, "type DefineCommandAutocomplete struct {")
	assert.Contains(t, out, "Word *DefineCommandWordAutocomplete")
	assert.Contains(t, out, "type DefineCommandWordAutocomplete struct {")
	assert.Contains(t, out, "Dictionary slash.Partial[*string]")
	assert.Contains(t, out, "slash.ErrMissingAutocompleteOption")
	assert.Contains(t, out, "&slash.UnknownAutocompleteOptionError{Name: focused.Name}")
	assert.Contains(t, out, ".SetAutocomplete(true)")

	// the command list mirrors only autocompletable commands
	assert.Contains(t, out, "type CommandsAutocomplete struct {")
	assert.Contains(t, out, "Define *DefineCommandAutocomplete")
	assert.Contains(t, out, "return x.Define.UnmarshalOptions(data.Options)")
}

func TestGenerateIntOptions(t *testing.T) {
	out := generateSource(t, `package bot

//slash::command
// Roll some dice.
type RollCommand struct {
	// How many dice to roll.
	Count int
	// How many sides per die.
	Sides *int
}
`)

	assert.Contains(t, out, `AddOption(slash.IntOption("count", "How many dice to roll."))`)
	assert.Contains(t, out, "x.Count = int(v)")
	assert.Contains(t, out, "w := int(v)")
	assert.Contains(t, out, "x.Sides = &w")
	assert.NotContains(t, out, "x.Count.UnmarshalValue")
}

func TestGenerateAutocompleteFlagRequiresOptions(t *testing.T) {
	diag := utils.NewDiagnosticSystem(utils.DiagnosticSilent)
	acc := errors.NewAccumulator()

	meta, err := parser.NewParser(diag).ParseSource("bot/bot.go", `package bot

//slash::commands
type Commands struct {
	// Look up a word.
	Define *DefineCommand `+"`slash:\"autocomplete\"`"+`
}

//slash::command
// Look up a word.
type DefineCommand struct {
	// The word to define.
	Word string
}
`, acc)
	require.NoError(t, err)
	require.NotNil(t, meta)

	out, err := NewGenerator(diag).GenerateFile(meta, acc)
	require.NoError(t, err)
	assert.Nil(t, out)
	require.True(t, acc.HasErrors())
	assert.Contains(t, acc.Err().Error(), "DefineCommand declares no autocomplete options")
}

func TestGenerateBuilderTags(t *testing.T) {
	out := generateSource(t, `package bot

//slash::command
// Roll some dice.
type RollCommand struct {
	// How many dice to roll.
	Count int64 `+"`slash:\"builder=MinValue(1) MaxValue(100)\"`"+`
}
`)

	assert.Contains(t, out, ".MinValue(1)")
	assert.Contains(t, out, ".MaxValue(100)")
}

func TestGenerateWithDelegate(t *testing.T) {
	out := generateSource(t, `package bot

//slash::command
// Set the playback volume.
type VolumeCommand struct {
	// The volume level.
	Level int64 `+"`slash:\"with=ClampedVolume\"`"+`
	// The fade duration.
	Fade *int64 `+"`slash:\"with=ClampedVolume\"`"+`
}

//slash::option
type ClampedVolume int64
`)

	assert.Contains(t, out, `AddOption(new(ClampedVolume).BuildOption("level", "The volume level."))`)
	assert.Contains(t, out, "var w ClampedVolume")
	assert.Contains(t, out, "x.Level = int64(w)")
	assert.Contains(t, out, "v := int64(w)")
	assert.Contains(t, out, "x.Fade = &v")
}

func TestGenerateSkipsCleanPackages(t *testing.T) {
	diag := utils.NewDiagnosticSystem(utils.DiagnosticSilent)
	acc := errors.NewAccumulator()
	meta, err := parser.NewParser(diag).ParseSource("bot/bot.go", "package bot\n\ntype Plain struct{}\n", acc)
	require.NoError(t, err)
	assert.Nil(t, meta)
}
