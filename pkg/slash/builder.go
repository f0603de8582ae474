package slash

// Choice is one fixed value of a closed-set option: a display name plus the
// wire value (string, int64, or float64) that selects it.
type Choice struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// CommandBuilder accumulates a top-level command schema. All methods return
// the receiver for chaining.
type CommandBuilder struct {
	CommandName string           `json:"name"`
	CommandDesc string           `json:"description"`
	Options     []*OptionBuilder `json:"options,omitempty"`
}

// NewCommand starts a command schema with the given name and description.
func NewCommand(name, description string) *CommandBuilder {
	return &CommandBuilder{CommandName: name, CommandDesc: description}
}

// Description replaces the command description.
func (b *CommandBuilder) Description(description string) *CommandBuilder {
	b.CommandDesc = description
	return b
}

// AddOption appends one option schema.
func (b *CommandBuilder) AddOption(opt *OptionBuilder) *CommandBuilder {
	b.Options = append(b.Options, opt)
	return b
}

// SetOptions replaces the option list.
func (b *CommandBuilder) SetOptions(opts []*OptionBuilder) *CommandBuilder {
	b.Options = opts
	return b
}

// OptionBuilder accumulates one option schema node: a scalar option, a
// choice set, a sub-command, or a sub-command group with nested options.
type OptionBuilder struct {
	OptionType   OptionType       `json:"type"`
	OptionName   string           `json:"name"`
	OptionDesc   string           `json:"description"`
	IsRequired   bool             `json:"required,omitempty"`
	Autocomplete bool             `json:"autocomplete,omitempty"`
	Choices      []Choice         `json:"choices,omitempty"`
	Options      []*OptionBuilder `json:"options,omitempty"`
	MinValueNum  *float64         `json:"min_value,omitempty"`
	MaxValueNum  *float64         `json:"max_value,omitempty"`
	MinLen       *int             `json:"min_length,omitempty"`
	MaxLen       *int             `json:"max_length,omitempty"`
	ChannelKinds []int            `json:"channel_types,omitempty"`
}

// NewOption starts an option schema of the given kind.
func NewOption(t OptionType, name, description string) *OptionBuilder {
	return &OptionBuilder{OptionType: t, OptionName: name, OptionDesc: description}
}

// Required flags whether the option must be present in the input.
func (b *OptionBuilder) Required(required bool) *OptionBuilder {
	b.IsRequired = required
	return b
}

// SetAutocomplete flags the option as autocomplete-capable.
func (b *OptionBuilder) SetAutocomplete(autocomplete bool) *OptionBuilder {
	b.Autocomplete = autocomplete
	return b
}

// AddSubOption appends a nested option (sub-command contents, or the
// sub-commands of a group).
func (b *OptionBuilder) AddSubOption(opt *OptionBuilder) *OptionBuilder {
	b.Options = append(b.Options, opt)
	return b
}

// AddStringChoice appends a string-valued choice.
func (b *OptionBuilder) AddStringChoice(name, value string) *OptionBuilder {
	b.Choices = append(b.Choices, Choice{Name: name, Value: value})
	return b
}

// AddIntChoice appends an integer-valued choice.
func (b *OptionBuilder) AddIntChoice(name string, value int64) *OptionBuilder {
	b.Choices = append(b.Choices, Choice{Name: name, Value: value})
	return b
}

// AddNumberChoice appends a float-valued choice.
func (b *OptionBuilder) AddNumberChoice(name string, value float64) *OptionBuilder {
	b.Choices = append(b.Choices, Choice{Name: name, Value: value})
	return b
}

// MinValue constrains integer and number options.
func (b *OptionBuilder) MinValue(v float64) *OptionBuilder {
	b.MinValueNum = &v
	return b
}

// MaxValue constrains integer and number options.
func (b *OptionBuilder) MaxValue(v float64) *OptionBuilder {
	b.MaxValueNum = &v
	return b
}

// MinLength constrains string options.
func (b *OptionBuilder) MinLength(n int) *OptionBuilder {
	b.MinLen = &n
	return b
}

// MaxLength constrains string options.
func (b *OptionBuilder) MaxLength(n int) *OptionBuilder {
	b.MaxLen = &n
	return b
}

// ChannelTypes restricts a channel option to the given channel kinds.
func (b *OptionBuilder) ChannelTypes(kinds ...int) *OptionBuilder {
	b.ChannelKinds = append(b.ChannelKinds, kinds...)
	return b
}
