// Package directives parses the two declarative surfaces slashgen
// consumes: `//slash::` doc-comment directives on type and const
// declarations, and `slash:"..."` struct tags on fields.
package directives

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/slashgen/internal/models"
)

// Prefix starts every slashgen doc directive.
const Prefix = "slash::"

// Directive is one parsed `//slash::<name> key=value ...` line.
type Directive struct {
	Name     string
	Params   map[string]string
	Raw      string
	Location models.SourceLocation
}

// Param returns a parameter value and whether it was present.
func (d *Directive) Param(key string) (string, bool) {
	v, ok := d.Params[key]
	return v, ok
}

// directiveAST is the participle shape of a directive line.
type directiveAST struct {
	Marker string           `parser:"@Ident '::'"`
	Name   string           `parser:"@Ident"`
	Params []directiveParam `parser:"@@*"`
}

type directiveParam struct {
	Key   string  `parser:"@Ident"`
	Value *string `parser:"('=' @(String | Number | Ident))?"`
}

// Ident deliberately admits dots, hyphens, and slashes so bare parameter
// values like echo-msg or pkg.Helper stay single tokens.
var directiveLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Sep", Pattern: `::`},
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Number", Pattern: `[-+]?[0-9]+(\.[0-9]+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_.\-/]*`},
	{Name: "Equals", Pattern: `=`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var directiveParser = participle.MustBuild[directiveAST](
	participle.Lexer(directiveLexer),
	participle.Elide("Whitespace"),
)

// IsDirective reports whether a comment line is a slashgen directive. The
// line may still carry its // prefix.
func IsDirective(line string) bool {
	text := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "//"))
	return strings.HasPrefix(text, Prefix)
}

// ParseDirective parses one directive line. The line may still carry its
// comment prefix.
func ParseDirective(line string, loc models.SourceLocation) (*Directive, error) {
	text := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "//"))
	if !strings.HasPrefix(text, Prefix) {
		return nil, fmt.Errorf("not a slash:: directive: %q", line)
	}

	ast, err := directiveParser.ParseString(loc.File, text)
	if err != nil {
		return nil, fmt.Errorf("malformed directive %q: %w", text, err)
	}
	if ast.Marker != "slash" {
		return nil, fmt.Errorf("malformed directive %q", text)
	}

	d := &Directive{
		Name:     ast.Name,
		Params:   make(map[string]string, len(ast.Params)),
		Raw:      text,
		Location: loc,
	}
	for _, p := range ast.Params {
		if _, dup := d.Params[p.Key]; dup {
			return nil, fmt.Errorf("duplicate parameter %q in directive %q", p.Key, text)
		}
		value := ""
		if p.Value != nil {
			value = unquote(*p.Value)
		}
		d.Params[p.Key] = value
	}
	return d, nil
}

// unquote strips quotes from string parameter values, leaving bare values
// untouched.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' {
		if unquoted, err := strconv.Unquote(s); err == nil {
			return unquoted
		}
	}
	return s
}
