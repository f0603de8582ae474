package generator

import (
	"fmt"
	"strings"

	"github.com/toyz/slashgen/internal/errors"
	"github.com/toyz/slashgen/internal/models"
)

// emitGroup emits the SubCommandGroup implementation: a group schema node
// and a parser that selects exactly one nested sub-command.
func (g *Generator) emitGroup(b *strings.Builder, td *models.TypeDecl, acc *errors.Accumulator) {
	fmt.Fprintf(b, "\nvar _ slash.SubCommandGroup = (*%s)(nil)\n", td.Name)

	fmt.Fprintf(b, "\n// BuildOption implements slash.SubCommandGroup.\n")
	fmt.Fprintf(b, "func (x *%s) BuildOption(name, description string) *slash.OptionBuilder {\n", td.Name)
	fmt.Fprintf(b, "\treturn slash.NewOption(slash.TypeSubCommandGroup, name, description)")
	for i := range td.Variants {
		fmt.Fprintf(b, ".\n\t\tAddSubOption(%s)", nestedSchemaExpr(&td.Variants[i]))
	}
	fmt.Fprintf(b, "\n}\n")

	fmt.Fprintf(b, "\n// UnmarshalOption implements slash.SubCommandGroup.\n")
	fmt.Fprintf(b, "func (x *%s) UnmarshalOption(opt *slash.OptionData) error {\n", td.Name)
	fmt.Fprintf(b, "\t*x = %s{}\n", td.Name)
	fmt.Fprintf(b, "\tif opt.Type != slash.TypeSubCommandGroup {\n")
	fmt.Fprintf(b, "\t\treturn &slash.OptionTypeError{Got: opt.Type, Expected: slash.TypeSubCommandGroup}\n\t}\n")
	fmt.Fprintf(b, "\tif len(opt.Options) != 1 {\n")
	fmt.Fprintf(b, "\t\treturn &slash.OptionCountError{Got: len(opt.Options), Expected: 1}\n\t}\n")
	fmt.Fprintf(b, "\tsub := &opt.Options[0]\n")
	g.emitVariantDispatch(b, td.Variants, "sub")
	fmt.Fprintf(b, "}\n")

	// a group can only nest sub-commands, never another group; the
	// marker interface turns that into a compile error
	for i := range td.Variants {
		if v := &td.Variants[i]; v.Shape == models.VariantNewtype {
			fmt.Fprintf(b, "\nvar _ slash.SubCommand = (*%s)(nil)\n", v.Inner)
		}
	}
}

// emitSubCommand emits the SubCommand implementation, including the
// marker method that lets it stand beneath groups.
func (g *Generator) emitSubCommand(b *strings.Builder, td *models.TypeDecl, acc *errors.Accumulator) {
	fmt.Fprintf(b, "\nvar _ slash.SubCommand = (*%s)(nil)\n", td.Name)

	if td.Shape == models.ShapeNewtype {
		// the embedded field's promoted methods implement the interface
		return
	}

	fmt.Fprintf(b, "\n// BuildOption implements slash.SubCommand.\n")
	fmt.Fprintf(b, "func (x *%s) BuildOption(name, description string) *slash.OptionBuilder {\n", td.Name)
	fmt.Fprintf(b, "\treturn slash.NewOption(slash.TypeSubCommand, name, description)")
	emitOptionListSchema(b, td.Fields, "AddSubOption")
	fmt.Fprintf(b, "\n}\n")

	fmt.Fprintf(b, "\n// UnmarshalOption implements slash.SubCommand.\n")
	fmt.Fprintf(b, "func (x *%s) UnmarshalOption(opt *slash.OptionData) error {\n", td.Name)
	fmt.Fprintf(b, "\t*x = %s{}\n", td.Name)
	fmt.Fprintf(b, "\tif opt.Type != slash.TypeSubCommand {\n")
	fmt.Fprintf(b, "\t\treturn &slash.OptionTypeError{Got: opt.Type, Expected: slash.TypeSubCommand}\n\t}\n")
	emitOptionsDecode(b, td.Fields, "x", "opt.Options", true)
	fmt.Fprintf(b, "\treturn nil\n}\n")

	fmt.Fprintf(b, "\n// IsSubCommand marks %s as usable wherever a sub-command fits.\n", td.Name)
	fmt.Fprintf(b, "func (x *%s) IsSubCommand() {}\n", td.Name)
}

// emitOption emits the Option implementation for choice types and option
// newtypes.
func (g *Generator) emitOption(b *strings.Builder, td *models.TypeDecl, acc *errors.Accumulator) {
	fmt.Fprintf(b, "\nvar _ slash.Option = (*%s)(nil)\n", td.Name)

	switch {
	case td.Shape == models.ShapeChoices:
		g.emitChoiceOption(b, td)
	case td.Embedded:
		// the embedded field's promoted methods implement the interface
	default:
		g.emitNewtypeOption(b, td, acc)
	}
}

// emitChoiceOption emits a closed-set option: the declared constants are
// both the schema choices and the accepted wire values.
func (g *Generator) emitChoiceOption(b *strings.Builder, td *models.TypeDecl) {
	fmt.Fprintf(b, "\n// BuildOption implements slash.Option.\n")
	fmt.Fprintf(b, "func (x *%s) BuildOption(name, description string) *slash.OptionBuilder {\n", td.Name)
	fmt.Fprintf(b, "\treturn slash.NewOption(%s, name, description).\n\t\tRequired(true)", td.ChoiceKind.OptionTypeExpr())
	for i := range td.Choices {
		c := &td.Choices[i]
		fmt.Fprintf(b, ".\n\t\t%s(%s, %s)", td.ChoiceKind.AddChoiceMethod(), quote(c.Name), c.Value)
	}
	fmt.Fprintf(b, "\n}\n")

	fmt.Fprintf(b, "\n// UnmarshalValue implements slash.Option.\n")
	fmt.Fprintf(b, "func (x *%s) UnmarshalValue(opt *slash.OptionData) error {\n", td.Name)
	fmt.Fprintf(b, "\tv, err := %s(opt)\n", td.ChoiceKind.DecodeFunc())
	fmt.Fprintf(b, "\tif err != nil {\n\t\treturn err\n\t}\n")
	fmt.Fprintf(b, "\tswitch %s(v) {\n", td.Name)
	names := make([]string, len(td.Choices))
	for i := range td.Choices {
		names[i] = td.Choices[i].GoName
	}
	fmt.Fprintf(b, "\tcase %s:\n", strings.Join(names, ", "))
	fmt.Fprintf(b, "\t\t*x = %s(v)\n\t\treturn nil\n", td.Name)
	fmt.Fprintf(b, "\tdefault:\n\t\treturn &slash.UnknownChoiceError{Value: fmt.Sprint(v)}\n\t}\n}\n")
}

// emitNewtypeOption emits an option declared as a type definition over
// another type: a builtin scalar decodes directly, anything else delegates
// to the underlying type's own implementation through a pointer
// conversion.
func (g *Generator) emitNewtypeOption(b *strings.Builder, td *models.TypeDecl, acc *errors.Accumulator) {
	if kind, ok := builtinFor(td.Inner); ok {
		fmt.Fprintf(b, "\n// BuildOption implements slash.Option.\n")
		fmt.Fprintf(b, "func (x *%s) BuildOption(name, description string) *slash.OptionBuilder {\n", td.Name)
		fmt.Fprintf(b, "\treturn %s(name, description)\n}\n", kind.builderFunc)

		fmt.Fprintf(b, "\n// UnmarshalValue implements slash.Option.\n")
		fmt.Fprintf(b, "func (x *%s) UnmarshalValue(opt *slash.OptionData) error {\n", td.Name)
		fmt.Fprintf(b, "\tv, err := %s(opt)\n", kind.decodeFunc)
		fmt.Fprintf(b, "\tif err != nil {\n\t\treturn err\n\t}\n")
		fmt.Fprintf(b, "\t*x = %s(v)\n\treturn nil\n}\n", td.Name)
		return
	}

	fmt.Fprintf(b, "\n// BuildOption implements slash.Option.\n")
	fmt.Fprintf(b, "func (x *%s) BuildOption(name, description string) *slash.OptionBuilder {\n", td.Name)
	fmt.Fprintf(b, "\treturn new(%s).BuildOption(name, description)\n}\n", td.Inner)

	fmt.Fprintf(b, "\n// UnmarshalValue implements slash.Option.\n")
	fmt.Fprintf(b, "func (x *%s) UnmarshalValue(opt *slash.OptionData) error {\n", td.Name)
	fmt.Fprintf(b, "\treturn (*%s)(x).UnmarshalValue(opt)\n}\n", td.Inner)
}
