package generator

import (
	"fmt"
	"strings"

	"github.com/toyz/slashgen/internal/models"
)

// builtinKind maps a field type decoded directly from wire values to the
// runtime helpers that build and decode it.
type builtinKind struct {
	builderFunc string
	decodeFunc  string
	goType      string
}

var builtinKinds = map[string]builtinKind{
	"string":        {"slash.StringOption", "slash.DecodeString", "string"},
	"int64":         {"slash.IntOption", "slash.DecodeInt", "int64"},
	"int":           {"slash.IntOption", "slash.DecodeInt", "int64"},
	"float64":       {"slash.NumberOption", "slash.DecodeNumber", "float64"},
	"bool":          {"slash.BoolOption", "slash.DecodeBool", "bool"},
	"UserID":        {"slash.UserOption", "slash.DecodeUser", "slash.UserID"},
	"ChannelID":     {"slash.ChannelOption", "slash.DecodeChannel", "slash.ChannelID"},
	"RoleID":        {"slash.RoleOption", "slash.DecodeRole", "slash.RoleID"},
	"MentionableID": {"slash.MentionableOption", "slash.DecodeMentionable", "slash.MentionableID"},
	"AttachmentID":  {"slash.AttachmentOption", "slash.DecodeAttachment", "slash.AttachmentID"},
}

// builtinFor matches a field type expression against the builtin kinds,
// keyed on the last path segment so slash.UserID and UserID both resolve.
func builtinFor(typeExpr string) (builtinKind, bool) {
	name := typeExpr
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	k, ok := builtinKinds[name]
	return k, ok
}

// optionImpl is the type whose generated Option implementation serves a
// field: the field's own type unless a with tag overrides it.
func optionImpl(f *models.Field) string {
	if f.With != "" {
		return f.With
	}
	return f.TypeExpr
}

// optionSchemaExpr renders the schema-builder expression for one field.
func optionSchemaExpr(f *models.Field) string {
	var b strings.Builder
	if kind, ok := builtinFor(optionImpl(f)); ok && f.With == "" {
		fmt.Fprintf(&b, "%s(%s, %s)", kind.builderFunc, quote(f.Name), quote(f.Doc))
	} else {
		fmt.Fprintf(&b, "new(%s).BuildOption(%s, %s)", optionImpl(f), quote(f.Name), quote(f.Doc))
	}
	if f.Optional {
		b.WriteString(".Required(false)")
	}
	if f.Autocomplete {
		b.WriteString(".SetAutocomplete(true)")
	}
	for _, call := range f.Builder {
		fmt.Fprintf(&b, ".%s(%s)", call.Method, call.Args)
	}
	return b.String()
}

// emitFieldDecode writes the statements that fill target.<GoName> from the
// option list expression src.
func emitFieldDecode(b *strings.Builder, f *models.Field, target, src string) {
	find := fmt.Sprintf("slash.Find(%s, %s)", src, quote(f.Name))

	if f.With != "" {
		emitWithDecode(b, f, target, find)
		return
	}

	kind, builtin := builtinFor(f.TypeExpr)
	switch {
	case builtin && !f.Optional:
		fmt.Fprintf(b, "\t{\n\t\tv, err := %s(%s)\n", kind.decodeFunc, find)
		fmt.Fprintf(b, "\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n")
		fmt.Fprintf(b, "\t\t%s.%s = %s\n\t}\n", target, f.GoName, castExpr(f.TypeExpr, kind, "v"))
	case builtin && f.Optional && needsCast(f.TypeExpr, kind):
		fmt.Fprintf(b, "\tif opt := %s; opt != nil {\n", find)
		fmt.Fprintf(b, "\t\tv, err := %s(opt)\n", kind.decodeFunc)
		fmt.Fprintf(b, "\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n")
		fmt.Fprintf(b, "\t\tw := %s(v)\n", f.TypeExpr)
		fmt.Fprintf(b, "\t\t%s.%s = &w\n\t}\n", target, f.GoName)
	case builtin && f.Optional:
		fmt.Fprintf(b, "\t{\n\t\tv, err := slash.Optional(%s, %s)\n", kind.decodeFunc, find)
		fmt.Fprintf(b, "\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n")
		fmt.Fprintf(b, "\t\t%s.%s = v\n\t}\n", target, f.GoName)
	case !f.Optional:
		fmt.Fprintf(b, "\tif err := %s.%s.UnmarshalValue(%s); err != nil {\n\t\treturn err\n\t}\n",
			target, f.GoName, find)
	default:
		fmt.Fprintf(b, "\tif opt := %s; opt != nil {\n", find)
		fmt.Fprintf(b, "\t\t%s.%s = new(%s)\n", target, f.GoName, f.TypeExpr)
		fmt.Fprintf(b, "\t\tif err := %s.%s.UnmarshalValue(opt); err != nil {\n\t\t\treturn err\n\t\t}\n\t}\n",
			target, f.GoName)
	}
}

// emitWithDecode decodes through the delegate type named by a with tag and
// converts the result to the field's own type.
func emitWithDecode(b *strings.Builder, f *models.Field, target, find string) {
	if f.Optional {
		fmt.Fprintf(b, "\tif opt := %s; opt != nil {\n", find)
		fmt.Fprintf(b, "\t\tvar w %s\n", f.With)
		fmt.Fprintf(b, "\t\tif err := w.UnmarshalValue(opt); err != nil {\n\t\t\treturn err\n\t\t}\n")
		fmt.Fprintf(b, "\t\tv := %s(w)\n", f.TypeExpr)
		fmt.Fprintf(b, "\t\t%s.%s = &v\n\t}\n", target, f.GoName)
		return
	}
	fmt.Fprintf(b, "\t{\n\t\tvar w %s\n", f.With)
	fmt.Fprintf(b, "\t\tif err := w.UnmarshalValue(%s); err != nil {\n\t\t\treturn err\n\t\t}\n", find)
	fmt.Fprintf(b, "\t\t%s.%s = %s(w)\n\t}\n", target, f.GoName, f.TypeExpr)
}

// needsCast reports whether the field's declared type differs from the
// decoder's result type, e.g. an int field decoded as int64.
func needsCast(typeExpr string, kind builtinKind) bool {
	return typeExpr != kind.goType && typeExpr != strings.TrimPrefix(kind.goType, "slash.")
}

// castExpr converts a decoded builtin value to the field's declared type
// when they differ.
func castExpr(typeExpr string, kind builtinKind, v string) string {
	if !needsCast(typeExpr, kind) {
		return v
	}
	return fmt.Sprintf("%s(%s)", typeExpr, v)
}

// emitOptionListSchema appends one AddOption call per field to an open
// builder chain.
func emitOptionListSchema(b *strings.Builder, fields []models.Field, method string) {
	for i := range fields {
		fmt.Fprintf(b, ".\n\t\t%s(%s)", method, optionSchemaExpr(&fields[i]))
	}
}

// emitStrictNameCheck rejects wire entries whose names match no declared
// option. Nested levels are strict; top-level commands ignore extras.
func emitStrictNameCheck(b *strings.Builder, fields []models.Field, src string) {
	fmt.Fprintf(b, "\tfor i := range %s {\n\t\tswitch %s[i].Name {\n", src, src)
	if len(fields) > 0 {
		names := make([]string, len(fields))
		for i := range fields {
			names[i] = quote(fields[i].Name)
		}
		fmt.Fprintf(b, "\t\tcase %s:\n", strings.Join(names, ", "))
	}
	fmt.Fprintf(b, "\t\tdefault:\n\t\t\treturn &slash.UnknownOptionError{Name: %s[i].Name}\n\t\t}\n\t}\n", src)
}

// emitOptionsDecode writes the per-field decode block for an options
// level. strict additionally rejects unknown entry names first.
func emitOptionsDecode(b *strings.Builder, fields []models.Field, target, src string, strict bool) {
	if strict {
		emitStrictNameCheck(b, fields, src)
	}
	for i := range fields {
		emitFieldDecode(b, &fields[i], target, src)
	}
}
