package directives

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/slashgen/internal/models"
)

// FieldTag is the parsed `slash:"..."` struct tag of one field.
type FieldTag struct {
	// Name overrides the derived external name.
	Name string

	// Autocomplete marks the field for autocomplete generation.
	Autocomplete bool

	// Variant and Option force the field's interpretation when a command
	// declaration's shape is ambiguous.
	Variant bool
	Option  bool

	// With names a delegate implementation (a type or helper pair) used
	// instead of the field type's own generated code.
	With string

	// Builder lists extra schema-builder calls appended verbatim.
	Builder []models.BuilderCall
}

type tagEntryAST struct {
	Key   string       `parser:"@Ident"`
	Value *tagValueAST `parser:"('=' @@)?"`
}

type tagValueAST struct {
	Calls  []builderCallAST `parser:"@@ @@*"`
	Scalar *string          `parser:"| @(String | Number | Ident)"`
}

type builderCallAST struct {
	Method string   `parser:"@Ident '('"`
	Args   []string `parser:"@(String | Number | Ident | ',')* ')'"`
}

var tagLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Number", Pattern: `[-+]?[0-9]+(\.[0-9]+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_.\-/]*`},
	{Name: "Punct", Pattern: `[(),=]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var tagEntryParser = participle.MustBuild[tagEntryAST](
	participle.Lexer(tagLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// ExtractTag pulls the slash key out of a raw struct tag literal (still
// wrapped in backticks). The second result reports whether the key was
// present at all.
func ExtractTag(tagLiteral string) (string, bool) {
	trimmed := strings.Trim(tagLiteral, "`")
	return reflect.StructTag(trimmed).Lookup("slash")
}

// ParseTag parses the value of a slash struct tag. Entries are separated
// by top-level commas; commas inside builder-call parentheses belong to
// the call's arguments.
func ParseTag(tag string) (*FieldTag, error) {
	parsed := &FieldTag{}

	for _, entry := range splitEntries(tag) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		ast, err := tagEntryParser.ParseString("", entry)
		if err != nil {
			return nil, fmt.Errorf("malformed tag entry %q: %w", entry, err)
		}

		switch ast.Key {
		case "name":
			scalar, err := scalarValue(ast, entry)
			if err != nil {
				return nil, err
			}
			parsed.Name = scalar
		case "with":
			scalar, err := scalarValue(ast, entry)
			if err != nil {
				return nil, err
			}
			parsed.With = scalar
		case "builder":
			if ast.Value == nil || len(ast.Value.Calls) == 0 {
				return nil, fmt.Errorf("tag entry %q: builder requires method calls, e.g. builder=MinValue(1)", entry)
			}
			for _, call := range ast.Value.Calls {
				parsed.Builder = append(parsed.Builder, models.BuilderCall{
					Method: call.Method,
					Args:   strings.Join(call.Args, " "),
				})
			}
		case "autocomplete", "variant", "option":
			if ast.Value != nil {
				return nil, fmt.Errorf("tag entry %q: %s takes no value", entry, ast.Key)
			}
			switch ast.Key {
			case "autocomplete":
				parsed.Autocomplete = true
			case "variant":
				parsed.Variant = true
			case "option":
				parsed.Option = true
			}
		default:
			return nil, fmt.Errorf("unknown tag entry %q (want name, autocomplete, variant, option, with, or builder)", ast.Key)
		}
	}

	if parsed.Variant && parsed.Option {
		return nil, fmt.Errorf("tag cannot mark a field as both variant and option")
	}
	return parsed, nil
}

func scalarValue(ast *tagEntryAST, entry string) (string, error) {
	if ast.Value == nil || ast.Value.Scalar == nil {
		return "", fmt.Errorf("tag entry %q: %s requires a value", entry, ast.Key)
	}
	return unquote(*ast.Value.Scalar), nil
}

// splitEntries splits on commas outside parentheses.
func splitEntries(tag string) []string {
	var entries []string
	var current strings.Builder
	depth := 0
	for _, r := range tag {
		switch {
		case r == '(':
			depth++
			current.WriteRune(r)
		case r == ')':
			depth--
			current.WriteRune(r)
		case r == ',' && depth == 0:
			entries = append(entries, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	entries = append(entries, current.String())
	return entries
}
