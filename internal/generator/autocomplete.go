package generator

import (
	"fmt"
	"strings"

	"github.com/toyz/slashgen/internal/errors"
	"github.com/toyz/slashgen/internal/models"
)

// Autocomplete counterpart types. A declaration with at least one flagged
// option gets a mirror type named <Type>Autocomplete whose parse selects
// the focused option: the focused value stays the raw in-progress text,
// and every sibling decodes best-effort into a slash.Partial.

// emitAutocomplete emits the counterpart for one declaration, if any of
// its options (or any delegation target's options) carries the flag.
func (g *Generator) emitAutocomplete(b *strings.Builder, td *models.TypeDecl, acc *errors.Accumulator) {
	if !g.needsAutocomplete(td, nil) {
		return
	}

	name := td.Name + "Autocomplete"
	switch td.Role {
	case models.RoleCommands:
		g.emitEnumAutocomplete(b, td, name, acVariantKindTop, acc)
	case models.RoleCommand:
		switch td.Shape {
		case models.ShapeEnum:
			g.emitEnumAutocomplete(b, td, name, acVariantKindCommand, acc)
		case models.ShapeOptions:
			g.emitOptionsAutocomplete(b, td.Name, td.Fields, acLevelCommand)
		case models.ShapeNewtype:
			g.emitNewtypeAutocomplete(b, td, name)
		}
	case models.RoleSubCommand:
		switch td.Shape {
		case models.ShapeOptions:
			g.emitOptionsAutocomplete(b, td.Name, td.Fields, acLevelSubCommand)
		case models.ShapeNewtype:
			g.emitNewtypeAutocomplete(b, td, name)
		}
	case models.RoleGroup:
		g.emitEnumAutocomplete(b, td, name, acVariantKindGroup, acc)
	}
}

// needsAutocomplete reports whether a declaration's counterpart must
// exist, following newtype and variant delegation inside the package.
func (g *Generator) needsAutocomplete(td *models.TypeDecl, seen map[string]bool) bool {
	if td.NeedsAutocomplete() {
		return true
	}
	if seen == nil {
		seen = map[string]bool{td.Name: true}
	}
	targets := make([]string, 0, len(td.Variants)+1)
	if td.Shape == models.ShapeNewtype {
		targets = append(targets, td.Inner)
	}
	for i := range td.Variants {
		if td.Variants[i].Shape == models.VariantNewtype {
			targets = append(targets, td.Variants[i].Inner)
		}
	}
	for _, target := range targets {
		if seen[target] {
			continue
		}
		seen[target] = true
		if inner, ok := g.lookup(target); ok && g.needsAutocomplete(inner, seen) {
			return true
		}
	}
	return false
}

// variantNeedsAutocomplete reports whether one variant participates in the
// enclosing counterpart type.
func (g *Generator) variantNeedsAutocomplete(v *models.Variant) bool {
	if v.Autocomplete {
		return true
	}
	for i := range v.Fields {
		if v.Fields[i].Autocomplete {
			return true
		}
	}
	if v.Shape == models.VariantNewtype {
		if inner, ok := g.lookup(v.Inner); ok {
			return g.needsAutocomplete(inner, nil)
		}
	}
	return false
}

// acVariantKind distinguishes the three enum nesting levels, which differ
// in parse entry point and expected wire kinds.
type acVariantKind int

const (
	acVariantKindTop     acVariantKind = iota // commands list, keyed by interaction name
	acVariantKindCommand                      // enum command, one nested option
	acVariantKindGroup                        // group, one nested sub-command
)

// acLevel distinguishes the parse surface of an options-level counterpart.
type acLevel int

const (
	acLevelCommand    acLevel = iota // UnmarshalOptions on the raw list
	acLevelSubCommand                // UnmarshalOption on a sub-command entry
)

// acVariant pairs a variant with the counterpart type that parses it.
type acVariant struct {
	v        *models.Variant
	typeName string
	inline   bool
}

// emitNewtypeAutocomplete mirrors a delegating declaration by embedding
// the target's counterpart, whose promoted methods carry the parse.
func (g *Generator) emitNewtypeAutocomplete(b *strings.Builder, td *models.TypeDecl, name string) {
	fmt.Fprintf(b, "\n// %s is the autocomplete counterpart of %s.\n", name, td.Name)
	fmt.Fprintf(b, "type %s struct {\n\t%sAutocomplete\n}\n", name, td.Inner)
}

// emitEnumAutocomplete emits the counterpart of a variant-shaped
// declaration: one pointer field per variant that can be autocompleted,
// and a parse that dispatches to the focused one.
func (g *Generator) emitEnumAutocomplete(b *strings.Builder, td *models.TypeDecl, name string, kind acVariantKind, acc *errors.Accumulator) {
	var included []acVariant
	for i := range td.Variants {
		v := &td.Variants[i]
		if v.Autocomplete && v.Shape == models.VariantNewtype {
			if inner, ok := g.lookup(v.Inner); ok && !g.needsAutocomplete(inner, nil) {
				acc.Add(errors.New(errors.CodeAutocomplete, v.Location,
					"variant %s of %s is flagged for autocomplete but %s declares no autocomplete options",
					v.GoName, td.Name, v.Inner).
					WithSuggestions("flag an option field of " + v.Inner + ` with slash:"autocomplete"`))
				continue
			}
		}
		if !g.variantNeedsAutocomplete(v) {
			continue
		}
		av := acVariant{v: v}
		if v.Shape == models.VariantNewtype {
			av.typeName = v.Inner + "Autocomplete"
		} else {
			av.typeName = td.Name + v.GoName + "Autocomplete"
			av.inline = true
		}
		included = append(included, av)
	}
	if len(included) == 0 {
		return
	}

	fmt.Fprintf(b, "\n// %s is the autocomplete counterpart of %s: exactly one\n", name, td.Name)
	fmt.Fprintf(b, "// variant is set, matching the interaction being completed.\n")
	fmt.Fprintf(b, "type %s struct {\n", name)
	for _, av := range included {
		fmt.Fprintf(b, "\t%s *%s\n", av.v.GoName, av.typeName)
	}
	fmt.Fprintf(b, "}\n")

	switch kind {
	case acVariantKindTop:
		fmt.Fprintf(b, "\n// UnmarshalInteraction fills the variant matching the focused command.\n")
		fmt.Fprintf(b, "func (x *%s) UnmarshalInteraction(data *slash.InteractionData) error {\n", name)
		fmt.Fprintf(b, "\t*x = %s{}\n", name)
		fmt.Fprintf(b, "\tswitch data.Name {\n")
		for _, av := range included {
			fmt.Fprintf(b, "\tcase %s:\n", quote(av.v.Name))
			fmt.Fprintf(b, "\t\tx.%s = new(%s)\n", av.v.GoName, av.typeName)
			fmt.Fprintf(b, "\t\treturn x.%s.UnmarshalOptions(data.Options)\n", av.v.GoName)
		}
		fmt.Fprintf(b, "\tdefault:\n\t\treturn &slash.UnknownCommandError{Name: data.Name}\n\t}\n}\n")
	case acVariantKindCommand:
		fmt.Fprintf(b, "\n// UnmarshalOptions fills the variant matching the focused sub-command.\n")
		fmt.Fprintf(b, "func (x *%s) UnmarshalOptions(options []slash.OptionData) error {\n", name)
		fmt.Fprintf(b, "\t*x = %s{}\n", name)
		fmt.Fprintf(b, "\tif len(options) != 1 {\n")
		fmt.Fprintf(b, "\t\treturn &slash.OptionCountError{Got: len(options), Expected: 1}\n\t}\n")
		fmt.Fprintf(b, "\topt := &options[0]\n")
		emitAutocompleteDispatch(b, included, "opt")
		fmt.Fprintf(b, "}\n")
	case acVariantKindGroup:
		fmt.Fprintf(b, "\n// UnmarshalOption fills the variant matching the focused sub-command.\n")
		fmt.Fprintf(b, "func (x *%s) UnmarshalOption(opt *slash.OptionData) error {\n", name)
		fmt.Fprintf(b, "\t*x = %s{}\n", name)
		fmt.Fprintf(b, "\tif opt.Type != slash.TypeSubCommandGroup {\n")
		fmt.Fprintf(b, "\t\treturn &slash.OptionTypeError{Got: opt.Type, Expected: slash.TypeSubCommandGroup}\n\t}\n")
		fmt.Fprintf(b, "\tif len(opt.Options) != 1 {\n")
		fmt.Fprintf(b, "\t\treturn &slash.OptionCountError{Got: len(opt.Options), Expected: 1}\n\t}\n")
		fmt.Fprintf(b, "\tsub := &opt.Options[0]\n")
		emitAutocompleteDispatch(b, included, "sub")
		fmt.Fprintf(b, "}\n")
	}

	// inline variants get their own options-level counterpart, parsed
	// from the raw option list at the top level and from a sub-command
	// entry below it
	inlineLevel := acLevelSubCommand
	if kind == acVariantKindTop {
		inlineLevel = acLevelCommand
	}
	for _, av := range included {
		if av.inline {
			g.emitOptionsAutocomplete(b, td.Name+av.v.GoName, av.v.Fields, inlineLevel)
		}
	}
}

// emitAutocompleteDispatch writes the name switch selecting the focused
// variant's counterpart.
func emitAutocompleteDispatch(b *strings.Builder, included []acVariant, opt string) {
	fmt.Fprintf(b, "\tswitch %s.Name {\n", opt)
	for _, av := range included {
		fmt.Fprintf(b, "\tcase %s:\n", quote(av.v.Name))
		fmt.Fprintf(b, "\t\tx.%s = new(%s)\n", av.v.GoName, av.typeName)
		fmt.Fprintf(b, "\t\treturn x.%s.UnmarshalOption(%s)\n", av.v.GoName, opt)
	}
	fmt.Fprintf(b, "\tdefault:\n\t\treturn &slash.UnknownAutocompleteOptionError{Name: %s.Name}\n\t}\n", opt)
}

// emitOptionsAutocomplete emits the counterpart of an options level: one
// focused-option struct per flagged field, and the selecting parse.
func (g *Generator) emitOptionsAutocomplete(b *strings.Builder, owner string, fields []models.Field, level acLevel) {
	name := owner + "Autocomplete"
	var flagged []*models.Field
	for i := range fields {
		if fields[i].Autocomplete {
			flagged = append(flagged, &fields[i])
		}
	}
	if len(flagged) == 0 {
		return
	}

	fmt.Fprintf(b, "\n// %s is the autocomplete counterpart of %s: exactly one\n", name, owner)
	fmt.Fprintf(b, "// pointer field is set, naming the focused option.\n")
	fmt.Fprintf(b, "type %s struct {\n", name)
	for _, f := range flagged {
		fmt.Fprintf(b, "\t%s *%s%sAutocomplete\n", f.GoName, owner, f.GoName)
	}
	fmt.Fprintf(b, "}\n")

	for _, f := range flagged {
		g.emitFocusedStruct(b, owner, f, fields)
	}

	switch level {
	case acLevelCommand:
		fmt.Fprintf(b, "\n// UnmarshalOptions fills the struct matching the focused option.\n")
		fmt.Fprintf(b, "func (x *%s) UnmarshalOptions(options []slash.OptionData) error {\n", name)
		fmt.Fprintf(b, "\t*x = %s{}\n", name)
		emitFocusedSwitch(b, flagged, fields, "options")
		fmt.Fprintf(b, "}\n")
	case acLevelSubCommand:
		fmt.Fprintf(b, "\n// UnmarshalOption fills the struct matching the focused option.\n")
		fmt.Fprintf(b, "func (x *%s) UnmarshalOption(opt *slash.OptionData) error {\n", name)
		fmt.Fprintf(b, "\t*x = %s{}\n", name)
		fmt.Fprintf(b, "\tif opt.Type != slash.TypeSubCommand {\n")
		fmt.Fprintf(b, "\t\treturn &slash.OptionTypeError{Got: opt.Type, Expected: slash.TypeSubCommand}\n\t}\n")
		emitFocusedSwitch(b, flagged, fields, "opt.Options")
		fmt.Fprintf(b, "}\n")
	}
}

// emitFocusedStruct emits the value struct for one flagged option: the raw
// focused text plus best-effort partials for every sibling.
func (g *Generator) emitFocusedStruct(b *strings.Builder, owner string, focused *models.Field, fields []models.Field) {
	name := owner + focused.GoName + "Autocomplete"
	fmt.Fprintf(b, "\n// %s carries the in-progress text of the %s option\n", name, focused.Name)
	fmt.Fprintf(b, "// and best-effort values for its siblings.\n")
	fmt.Fprintf(b, "type %s struct {\n", name)
	fmt.Fprintf(b, "\t%s string\n", focused.GoName)
	for i := range fields {
		f := &fields[i]
		if f.GoName == focused.GoName {
			continue
		}
		fmt.Fprintf(b, "\t%s slash.Partial[%s]\n", f.GoName, partialTypeExpr(f))
	}
	fmt.Fprintf(b, "}\n")
}

// emitFocusedSwitch writes the focused-option dispatch shared by both
// parse surfaces.
func emitFocusedSwitch(b *strings.Builder, flagged []*models.Field, fields []models.Field, src string) {
	fmt.Fprintf(b, "\tfocused := slash.Focused(%s)\n", src)
	fmt.Fprintf(b, "\tif focused == nil {\n\t\treturn slash.ErrMissingAutocompleteOption\n\t}\n")
	fmt.Fprintf(b, "\tswitch focused.Name {\n")
	for _, f := range flagged {
		fmt.Fprintf(b, "\tcase %s:\n", quote(f.Name))
		fmt.Fprintf(b, "\t\tv := slash.Alloc(&x.%s)\n", f.GoName)
		fmt.Fprintf(b, "\t\traw, _ := focused.Value.(string)\n")
		fmt.Fprintf(b, "\t\tv.%s = raw\n", f.GoName)
		for i := range fields {
			sib := &fields[i]
			if sib.GoName == f.GoName {
				continue
			}
			fmt.Fprintf(b, "\t\tv.%s = slash.NewPartial(slash.Find(%s, %s), %s)\n",
				sib.GoName, src, quote(sib.Name), partialDecodeExpr(sib))
		}
		fmt.Fprintf(b, "\t\treturn nil\n")
	}
	fmt.Fprintf(b, "\tdefault:\n\t\treturn &slash.UnknownAutocompleteOptionError{Name: focused.Name}\n\t}\n")
}

// partialTypeExpr is the Partial type parameter for a sibling field.
func partialTypeExpr(f *models.Field) string {
	base := f.TypeExpr
	if kind, ok := builtinFor(f.TypeExpr); ok && f.With == "" {
		base = kind.goType
	}
	if f.Optional {
		return "*" + base
	}
	return base
}

// partialDecodeExpr is the decode function handed to slash.NewPartial for
// a sibling field.
func partialDecodeExpr(f *models.Field) string {
	kind, builtin := builtinFor(f.TypeExpr)
	if f.With != "" {
		builtin = false
	}

	switch {
	case builtin && !f.Optional:
		return kind.decodeFunc
	case builtin && f.Optional:
		return fmt.Sprintf("func(opt *slash.OptionData) (*%s, error) {\n"+
			"\t\t\treturn slash.Optional(%s, opt)\n\t\t}", kind.goType, kind.decodeFunc)
	case f.With != "" && !f.Optional:
		return fmt.Sprintf("func(opt *slash.OptionData) (%s, error) {\n"+
			"\t\t\tvar w %s\n\t\t\terr := w.UnmarshalValue(opt)\n"+
			"\t\t\treturn %s(w), err\n\t\t}", f.TypeExpr, f.With, f.TypeExpr)
	case f.With != "" && f.Optional:
		return fmt.Sprintf("func(opt *slash.OptionData) (*%s, error) {\n"+
			"\t\t\tif opt == nil {\n\t\t\t\treturn nil, nil\n\t\t\t}\n"+
			"\t\t\tvar w %s\n\t\t\tif err := w.UnmarshalValue(opt); err != nil {\n"+
			"\t\t\t\treturn nil, err\n\t\t\t}\n"+
			"\t\t\tv := %s(w)\n\t\t\treturn &v, nil\n\t\t}", f.TypeExpr, f.With, f.TypeExpr)
	case f.Optional:
		return fmt.Sprintf("func(opt *slash.OptionData) (*%s, error) {\n"+
			"\t\t\tif opt == nil {\n\t\t\t\treturn nil, nil\n\t\t\t}\n"+
			"\t\t\tv := new(%s)\n\t\t\terr := v.UnmarshalValue(opt)\n"+
			"\t\t\treturn v, err\n\t\t}", f.TypeExpr, f.TypeExpr)
	default:
		return fmt.Sprintf("func(opt *slash.OptionData) (%s, error) {\n"+
			"\t\t\tvar v %s\n\t\t\terr := v.UnmarshalValue(opt)\n"+
			"\t\t\treturn v, err\n\t\t}", f.TypeExpr, f.TypeExpr)
	}
}
