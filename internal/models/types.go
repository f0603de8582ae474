// Package models holds the metadata extracted from annotated type
// declarations: which role a type plays, its shape, and the per-field and
// per-variant attributes the emitters consume.
package models

import "fmt"

// Role is the schema role a declared type plays.
type Role int

const (
	RoleCommands Role = iota // list of top-level commands
	RoleCommand              // a single top-level command
	RoleGroup                // a sub-command group
	RoleSubCommand           // a sub-command
	RoleOption               // a basic/choice option
)

// String returns the directive spelling of the role.
func (r Role) String() string {
	switch r {
	case RoleCommands:
		return "commands"
	case RoleCommand:
		return "command"
	case RoleGroup:
		return "group"
	case RoleSubCommand:
		return "subcommand"
	case RoleOption:
		return "option"
	default:
		return "unknown"
	}
}

// ParseRole converts a directive name to a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "commands":
		return RoleCommands, nil
	case "command":
		return RoleCommand, nil
	case "group":
		return RoleGroup, nil
	case "subcommand":
		return RoleSubCommand, nil
	case "option":
		return RoleOption, nil
	default:
		return 0, fmt.Errorf("unknown directive: %s", s)
	}
}

// Shape classifies a declared type's overall structure.
type Shape int

const (
	ShapeOptions Shape = iota // struct whose fields are options
	ShapeEnum                 // struct whose fields are variants
	ShapeNewtype              // single delegating field or underlying type
	ShapeUnit                 // empty struct
	ShapeChoices              // named scalar type with a choice const block
)

// String returns a human-readable shape name for diagnostics.
func (s Shape) String() string {
	switch s {
	case ShapeOptions:
		return "options struct"
	case ShapeEnum:
		return "variant struct"
	case ShapeNewtype:
		return "newtype"
	case ShapeUnit:
		return "unit struct"
	case ShapeChoices:
		return "choice type"
	default:
		return "unknown"
	}
}

// VariantShape classifies one variant of an enum-shaped declaration.
type VariantShape int

const (
	VariantUnit    VariantShape = iota // *struct{}
	VariantNamed                       // *struct{ ...options }
	VariantNewtype                     // *Named, delegating
)

// String returns a human-readable variant shape name for diagnostics.
func (s VariantShape) String() string {
	switch s {
	case VariantUnit:
		return "unit variant"
	case VariantNamed:
		return "named variant"
	case VariantNewtype:
		return "newtype variant"
	default:
		return "unknown"
	}
}

// ChoiceKind is the wire kind of a choice option type.
type ChoiceKind int

const (
	ChoiceString ChoiceKind = iota
	ChoiceInteger
	ChoiceNumber
)

// ParseChoiceKind converts the directive's type parameter.
func ParseChoiceKind(s string) (ChoiceKind, error) {
	switch s {
	case "string":
		return ChoiceString, nil
	case "integer":
		return ChoiceInteger, nil
	case "number":
		return ChoiceNumber, nil
	default:
		return 0, fmt.Errorf("unknown option type: %s (want string, integer, or number)", s)
	}
}

// OptionTypeExpr is the slash.OptionType constant the emitters reference.
func (k ChoiceKind) OptionTypeExpr() string {
	switch k {
	case ChoiceString:
		return "slash.TypeString"
	case ChoiceInteger:
		return "slash.TypeInteger"
	default:
		return "slash.TypeNumber"
	}
}

// AddChoiceMethod is the OptionBuilder method that appends a choice of this
// kind.
func (k ChoiceKind) AddChoiceMethod() string {
	switch k {
	case ChoiceString:
		return "AddStringChoice"
	case ChoiceInteger:
		return "AddIntChoice"
	default:
		return "AddNumberChoice"
	}
}

// DecodeFunc is the pkg/slash decoder for this kind's wire values.
func (k ChoiceKind) DecodeFunc() string {
	switch k {
	case ChoiceString:
		return "slash.DecodeString"
	case ChoiceInteger:
		return "slash.DecodeInt"
	default:
		return "slash.DecodeNumber"
	}
}

// basicKinds maps the predeclared basic types to the choice kind whose
// wire values they can hold.
var basicKinds = map[string]ChoiceKind{
	"string":  ChoiceString,
	"int":     ChoiceInteger,
	"int8":    ChoiceInteger,
	"int16":   ChoiceInteger,
	"int32":   ChoiceInteger,
	"int64":   ChoiceInteger,
	"uint":    ChoiceInteger,
	"uint8":   ChoiceInteger,
	"uint16":  ChoiceInteger,
	"uint32":  ChoiceInteger,
	"uint64":  ChoiceInteger,
	"byte":    ChoiceInteger,
	"rune":    ChoiceInteger,
	"float32": ChoiceNumber,
	"float64": ChoiceNumber,
}

// UnderlyingAllowed reports whether a choice declaration over the named
// type can hold this kind's wire values. Names outside the predeclared
// basic types pass, since they may alias a compatible type.
func (k ChoiceKind) UnderlyingAllowed(name string) bool {
	kind, known := basicKinds[name]
	return !known || kind == k
}
