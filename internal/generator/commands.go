package generator

import (
	"fmt"
	"strings"

	"github.com/toyz/slashgen/internal/errors"
	"github.com/toyz/slashgen/internal/models"
)

// emitCommandList emits the Commands implementation: one schema per
// variant for registration, and a name-dispatching parser.
func (g *Generator) emitCommandList(b *strings.Builder, td *models.TypeDecl, acc *errors.Accumulator) {
	fmt.Fprintf(b, "\nvar _ slash.Commands = (*%s)(nil)\n", td.Name)

	fmt.Fprintf(b, "\n// BuildCommands implements slash.Commands.\n")
	fmt.Fprintf(b, "func (x *%s) BuildCommands() []*slash.CommandBuilder {\n", td.Name)
	fmt.Fprintf(b, "\treturn []*slash.CommandBuilder{\n")
	for i := range td.Variants {
		fmt.Fprintf(b, "\t\t%s,\n", commandSchemaExpr(&td.Variants[i]))
	}
	fmt.Fprintf(b, "\t}\n}\n")

	fmt.Fprintf(b, "\n// UnmarshalInteraction implements slash.Commands.\n")
	fmt.Fprintf(b, "func (x *%s) UnmarshalInteraction(data *slash.InteractionData) error {\n", td.Name)
	fmt.Fprintf(b, "\t*x = %s{}\n", td.Name)
	fmt.Fprintf(b, "\tswitch data.Name {\n")
	for i := range td.Variants {
		v := &td.Variants[i]
		fmt.Fprintf(b, "\tcase %s:\n", quote(v.Name))
		switch v.Shape {
		case models.VariantUnit:
			fmt.Fprintf(b, "\t\tslash.Alloc(&x.%s)\n\t\treturn nil\n", v.GoName)
		case models.VariantNewtype:
			fmt.Fprintf(b, "\t\tx.%s = new(%s)\n", v.GoName, v.Inner)
			fmt.Fprintf(b, "\t\treturn x.%s.UnmarshalOptions(data.Options)\n", v.GoName)
		case models.VariantNamed:
			fmt.Fprintf(b, "\t\tm := slash.Alloc(&x.%s)\n", v.GoName)
			emitOptionsDecode(b, v.Fields, "m", "data.Options", false)
			fmt.Fprintf(b, "\t\treturn nil\n")
		}
	}
	fmt.Fprintf(b, "\tdefault:\n\t\treturn &slash.UnknownCommandError{Name: data.Name}\n\t}\n}\n")

	for i := range td.Variants {
		if v := &td.Variants[i]; v.Shape == models.VariantNewtype {
			fmt.Fprintf(b, "\nvar _ slash.Command = (*%s)(nil)\n", v.Inner)
		}
	}
}

// commandSchemaExpr renders one top-level command schema.
func commandSchemaExpr(v *models.Variant) string {
	var b strings.Builder
	switch v.Shape {
	case models.VariantNewtype:
		fmt.Fprintf(&b, "new(%s).BuildCommand(%s, %s)", v.Inner, quote(v.Name), quote(v.Doc))
	default:
		fmt.Fprintf(&b, "slash.NewCommand(%s, %s)", quote(v.Name), quote(v.Doc))
		emitOptionListSchema(&b, v.Fields, "AddOption")
	}
	for _, call := range v.Builder {
		fmt.Fprintf(&b, ".%s(%s)", call.Method, call.Args)
	}
	return b.String()
}

// emitCommand emits the Command implementation for a standalone command
// type, in whichever of its three shapes it was declared.
func (g *Generator) emitCommand(b *strings.Builder, td *models.TypeDecl, acc *errors.Accumulator) {
	fmt.Fprintf(b, "\nvar _ slash.Command = (*%s)(nil)\n", td.Name)

	if td.Shape == models.ShapeNewtype {
		// the embedded field's promoted methods implement the interface
		return
	}

	fmt.Fprintf(b, "\n// BuildCommand implements slash.Command.\n")
	fmt.Fprintf(b, "func (x *%s) BuildCommand(name, description string) *slash.CommandBuilder {\n", td.Name)
	fmt.Fprintf(b, "\treturn slash.NewCommand(name, description)")
	switch td.Shape {
	case models.ShapeOptions:
		emitOptionListSchema(b, td.Fields, "AddOption")
	case models.ShapeEnum:
		for i := range td.Variants {
			fmt.Fprintf(b, ".\n\t\tAddOption(%s)", nestedSchemaExpr(&td.Variants[i]))
		}
	}
	fmt.Fprintf(b, "\n}\n")

	fmt.Fprintf(b, "\n// UnmarshalOptions implements slash.Command.\n")
	fmt.Fprintf(b, "func (x *%s) UnmarshalOptions(options []slash.OptionData) error {\n", td.Name)
	fmt.Fprintf(b, "\t*x = %s{}\n", td.Name)
	switch td.Shape {
	case models.ShapeUnit:
		fmt.Fprintf(b, "\treturn nil\n}\n")
	case models.ShapeOptions:
		emitOptionsDecode(b, td.Fields, "x", "options", false)
		fmt.Fprintf(b, "\treturn nil\n}\n")
	case models.ShapeEnum:
		fmt.Fprintf(b, "\tif len(options) != 1 {\n")
		fmt.Fprintf(b, "\t\treturn &slash.OptionCountError{Got: len(options), Expected: 1}\n\t}\n")
		fmt.Fprintf(b, "\topt := &options[0]\n")
		g.emitVariantDispatch(b, td.Variants, "opt")
		fmt.Fprintf(b, "}\n")
	}

	for i := range td.Variants {
		if v := &td.Variants[i]; v.Shape == models.VariantNewtype {
			fmt.Fprintf(b, "\nvar _ slash.SubCommandGroup = (*%s)(nil)\n", v.Inner)
		}
	}
}

// emitVariantDispatch writes the name switch shared by enum commands and
// groups: exactly one nested entry has already been selected into opt.
func (g *Generator) emitVariantDispatch(b *strings.Builder, variants []models.Variant, opt string) {
	fmt.Fprintf(b, "\tswitch %s.Name {\n", opt)
	for i := range variants {
		v := &variants[i]
		fmt.Fprintf(b, "\tcase %s:\n", quote(v.Name))
		switch v.Shape {
		case models.VariantNewtype:
			fmt.Fprintf(b, "\t\tx.%s = new(%s)\n", v.GoName, v.Inner)
			fmt.Fprintf(b, "\t\treturn x.%s.UnmarshalOption(%s)\n", v.GoName, opt)
		case models.VariantUnit:
			emitSubCommandGuard(b, opt)
			emitStrictNameCheck(b, nil, opt+".Options")
			fmt.Fprintf(b, "\t\tslash.Alloc(&x.%s)\n\t\treturn nil\n", v.GoName)
		default:
			fmt.Fprintf(b, "\t\tm := slash.Alloc(&x.%s)\n", v.GoName)
			emitSubCommandGuard(b, opt)
			emitOptionsDecode(b, v.Fields, "m", opt+".Options", true)
			fmt.Fprintf(b, "\t\treturn nil\n")
		}
	}
	fmt.Fprintf(b, "\tdefault:\n\t\treturn &slash.UnknownOptionError{Name: %s.Name}\n\t}\n", opt)
}

// nestedSchemaExpr renders the schema of one variant nested beneath a
// command or group: an inline sub-command, or a delegated type.
func nestedSchemaExpr(v *models.Variant) string {
	var b strings.Builder
	switch v.Shape {
	case models.VariantNewtype:
		fmt.Fprintf(&b, "new(%s).BuildOption(%s, %s)", v.Inner, quote(v.Name), quote(v.Doc))
	default:
		fmt.Fprintf(&b, "slash.NewOption(slash.TypeSubCommand, %s, %s)", quote(v.Name), quote(v.Doc))
		emitOptionListSchema(&b, v.Fields, "AddSubOption")
	}
	for _, call := range v.Builder {
		fmt.Fprintf(&b, ".%s(%s)", call.Method, call.Args)
	}
	return b.String()
}

// emitSubCommandGuard rejects a nested entry that is not a sub-command.
func emitSubCommandGuard(b *strings.Builder, opt string) {
	fmt.Fprintf(b, "\t\tif %s.Type != slash.TypeSubCommand {\n", opt)
	fmt.Fprintf(b, "\t\t\treturn &slash.OptionTypeError{Got: %s.Type, Expected: slash.TypeSubCommand}\n\t\t}\n", opt)
}
