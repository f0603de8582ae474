package slash

// The interfaces below are the contract between generated code and callers.
// Builder methods ignore receiver state, so they are callable on zero
// values; Unmarshal methods decode into the receiver, following the
// encoding/json convention.
//
// Generated code also emits interface assertions against these types so
// that nesting mistakes (a group inside a group, a non-command inside a
// command list) surface as ordinary compile errors in the generated file.

// Commands is a list of top-level commands. Each variant of the declaring
// type is one command.
type Commands interface {
	// BuildCommands returns one schema per declared command, in
	// declaration order, for registration with the command host.
	BuildCommands() []*CommandBuilder

	// UnmarshalInteraction dispatches on the interaction's command name and
	// fills in exactly one variant.
	UnmarshalInteraction(data *InteractionData) error
}

// Command is a single top-level command: either a flat option list or a set
// of sub-command / sub-command-group variants.
type Command interface {
	BuildCommand(name, description string) *CommandBuilder
	UnmarshalOptions(options []OptionData) error
}

// SubCommandGroup is one level of nesting beneath a command, containing
// sub-commands.
type SubCommandGroup interface {
	BuildOption(name, description string) *OptionBuilder
	UnmarshalOption(opt *OptionData) error
}

// SubCommand is a leaf nesting level. It can stand anywhere a
// SubCommandGroup can, but not vice versa: the marker method is what stops
// a group from nesting inside another group at compile time.
type SubCommand interface {
	SubCommandGroup

	// IsSubCommand is a marker with no behavior. Generated for sub-command
	// role types only.
	IsSubCommand()
}

// Option is a basic (leaf) option: a scalar, reference, or closed choice
// set. UnmarshalValue accepts nil for an absent entry; required options
// reject it with ErrMissingRequiredOption.
type Option interface {
	BuildOption(name, description string) *OptionBuilder
	UnmarshalValue(opt *OptionData) error
}
