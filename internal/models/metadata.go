package models

// SourceLocation points diagnostics at the declaration that caused them.
type SourceLocation struct {
	File string
	Line int
}

// PackageMetadata is everything extracted from one package directory.
type PackageMetadata struct {
	PackageName string
	Dir         string
	Types       []*TypeDecl
}

// TypeDecl is one annotated type declaration.
type TypeDecl struct {
	Role     Role
	Name     string // Go type name
	Doc      string // joined description from the doc comment
	Shape    Shape
	Location SourceLocation

	// ShapeOptions
	Fields []Field

	// ShapeEnum
	Variants []Variant

	// ShapeNewtype: the delegation target type expression, and whether it
	// was declared as an embedded field rather than a type definition
	Inner    string
	Embedded bool

	// ShapeChoices
	ChoiceKind ChoiceKind
	Choices    []Choice
	Underlying string // underlying Go type of the choice declaration
}

// NeedsAutocomplete reports whether this declaration carries at least one
// autocomplete flag and therefore gets a generated counterpart.
func (t *TypeDecl) NeedsAutocomplete() bool {
	for i := range t.Fields {
		if t.Fields[i].Autocomplete {
			return true
		}
	}
	for i := range t.Variants {
		if t.Variants[i].Autocomplete {
			return true
		}
		for j := range t.Variants[i].Fields {
			if t.Variants[i].Fields[j].Autocomplete {
				return true
			}
		}
	}
	return false
}

// Field is one option slot of a named shape.
type Field struct {
	GoName   string
	TypeExpr string // the field's Go type as written, pointer stripped
	Optional bool   // declared as a pointer type
	Doc      string
	Name     string // external name (kebab-cased or overridden)
	Location SourceLocation

	Autocomplete bool
	With         string // delegate implementation path, or ""
	Builder      []BuilderCall
}

// Variant is one variant of an enum-shaped declaration.
type Variant struct {
	GoName   string
	Shape    VariantShape
	Doc      string
	Name     string // external name (kebab-cased or overridden)
	Location SourceLocation

	Autocomplete bool
	Builder      []BuilderCall

	// VariantNamed
	Fields []Field

	// VariantNewtype: the inner type expression
	Inner string
}

// Choice is one constant of a choice option type. Wire choices carry only
// a display name and a value, so no description is collected.
type Choice struct {
	GoName   string
	Name     string // display name (Title Case or overridden)
	Value    string // the constant's literal value, as written
	Location SourceLocation
}

// BuilderCall is one extra schema-builder method call from a builder
// attribute, e.g. MinValue(1).
type BuilderCall struct {
	Method string
	Args   string // raw argument list, emitted verbatim
}
