package parser

import (
	"go/ast"
	"go/types"
	"strings"

	"github.com/toyz/slashgen/internal/directives"
	"github.com/toyz/slashgen/internal/errors"
	"github.com/toyz/slashgen/internal/models"
	"github.com/toyz/slashgen/internal/utils"
)

// extractField converts one struct field into an option slot.
// allowShapeTags admits variant/option tags, which only mean something on
// the fields of a command declaration.
func (p *Parser) extractField(td *models.TypeDecl, field *ast.Field, allowShapeTags bool, acc *errors.Accumulator) *models.Field {
	goName := field.Names[0].Name
	loc := p.location(field.Pos())

	tag, err := p.fieldTag(field)
	if err != nil {
		acc.Addf(errors.CodeSyntax, loc, "%s", err)
		return nil
	}
	if tag == nil {
		tag = &directives.FieldTag{}
	}
	if !allowShapeTags && (tag.Variant || tag.Option) {
		acc.Addf(errors.CodeAttribute, loc,
			"field %s of %s: variant and option tags only apply to command fields", goName, td.Name)
	}

	doc := fieldDoc(field)
	if doc == "" {
		acc.Addf(errors.CodeMissingDoc, loc,
			"option %s of %s needs a doc comment to use as its description", goName, td.Name)
	}

	f := &models.Field{
		GoName:       goName,
		Doc:          doc,
		Location:     loc,
		Autocomplete: tag.Autocomplete,
		With:         tag.With,
		Builder:      tag.Builder,
	}

	expr := field.Type
	if star, ok := expr.(*ast.StarExpr); ok {
		f.Optional = true
		expr = star.X
	}
	switch expr.(type) {
	case *ast.Ident, *ast.SelectorExpr:
		f.TypeExpr = typeString(expr)
	default:
		acc.Addf(errors.CodeShape, loc,
			"option %s of %s has unsupported type %s", goName, td.Name, typeString(field.Type))
		return nil
	}

	f.Name = tag.Name
	if f.Name == "" {
		f.Name = utils.KebabCase(goName)
	}
	return f
}

// extractVariant converts one pointer field of an enum-shaped declaration
// into a variant.
func (p *Parser) extractVariant(td *models.TypeDecl, field *ast.Field, acc *errors.Accumulator) *models.Variant {
	goName := field.Names[0].Name
	loc := p.location(field.Pos())

	tag, err := p.fieldTag(field)
	if err != nil {
		acc.Addf(errors.CodeSyntax, loc, "%s", err)
		return nil
	}
	if tag == nil {
		tag = &directives.FieldTag{}
	}
	if td.Role != models.RoleCommand && (tag.Variant || tag.Option) {
		acc.Addf(errors.CodeAttribute, loc,
			"variant %s of %s: variant and option tags only apply to command fields", goName, td.Name)
	}
	if tag.With != "" {
		acc.Addf(errors.CodeAttribute, loc,
			"variant %s of %s: with only applies to option fields", goName, td.Name)
	}

	doc := fieldDoc(field)
	if doc == "" {
		acc.Addf(errors.CodeMissingDoc, loc,
			"variant %s of %s needs a doc comment to use as its description", goName, td.Name)
	}

	v := &models.Variant{
		GoName:       goName,
		Doc:          doc,
		Location:     loc,
		Autocomplete: tag.Autocomplete,
		Builder:      tag.Builder,
	}

	star, ok := field.Type.(*ast.StarExpr)
	if !ok {
		acc.Add(errors.New(errors.CodeShape, loc,
			"variant %s of %s must be a pointer field", goName, td.Name).
			WithSuggestions("declare it as " + goName + " *" + typeString(field.Type)))
		return nil
	}

	switch inner := star.X.(type) {
	case *ast.StructType:
		fields := flattenFields(inner)
		if len(fields) == 0 {
			v.Shape = models.VariantUnit
		} else {
			v.Shape = models.VariantNamed
			for _, f := range fields {
				if opt := p.extractField(td, f, false, acc); opt != nil {
					v.Fields = append(v.Fields, *opt)
				}
			}
		}
	case *ast.Ident, *ast.SelectorExpr:
		v.Shape = models.VariantNewtype
		v.Inner = typeString(inner)
	default:
		acc.Addf(errors.CodeShape, loc,
			"variant %s of %s has unsupported type %s", goName, td.Name, typeString(field.Type))
		return nil
	}

	v.Name = tag.Name
	if v.Name == "" {
		v.Name = utils.KebabCase(goName)
	}
	return v
}

// fieldTag parses a field's slash struct tag, if present.
func (p *Parser) fieldTag(field *ast.Field) (*directives.FieldTag, error) {
	if field.Tag == nil {
		return nil, nil
	}
	raw, ok := directives.ExtractTag(field.Tag.Value)
	if !ok {
		return nil, nil
	}
	return directives.ParseTag(raw)
}

// fieldKind is the inference vote a field's type casts.
type fieldKind int

const (
	fieldVariantLike fieldKind = iota // *struct{...}
	fieldOptionLike                   // non-pointer, or pointer to builtin scalar
	fieldAmbiguous                    // pointer to a named type
)

// classifyFieldType votes on whether a field reads as an option or a
// variant when no tag decides it.
func classifyFieldType(expr ast.Expr) fieldKind {
	star, ok := expr.(*ast.StarExpr)
	if !ok {
		return fieldOptionLike
	}
	switch inner := star.X.(type) {
	case *ast.StructType:
		return fieldVariantLike
	case *ast.Ident:
		if isBuiltinScalar(inner.Name) {
			return fieldOptionLike
		}
		return fieldAmbiguous
	case *ast.SelectorExpr:
		if isBuiltinScalar(inner.Sel.Name) {
			return fieldOptionLike
		}
		return fieldAmbiguous
	default:
		return fieldAmbiguous
	}
}

// builtinScalars are the field types decoded directly from wire values,
// without delegating to a generated option type.
var builtinScalars = map[string]bool{
	"string":        true,
	"bool":          true,
	"int64":         true,
	"int":           true,
	"float64":       true,
	"UserID":        true,
	"ChannelID":     true,
	"RoleID":        true,
	"MentionableID": true,
	"AttachmentID":  true,
}

func isBuiltinScalar(name string) bool {
	return builtinScalars[name]
}

// flattenFields expands a struct's field list so every entry carries
// exactly one name, cloning shared type and doc info for multi-name
// declarations. Unexported and embedded fields are dropped; a sole
// embedded field is recognized earlier as a delegate.
func flattenFields(st *ast.StructType) []*ast.Field {
	var out []*ast.Field
	for _, field := range st.Fields.List {
		for _, name := range field.Names {
			if !name.IsExported() {
				continue
			}
			clone := *field
			clone.Names = []*ast.Ident{name}
			out = append(out, &clone)
		}
	}
	return out
}

// embeddedDelegate reports whether the struct is a newtype: a single
// embedded field naming the type the generated code delegates to.
func embeddedDelegate(st *ast.StructType) (string, bool) {
	if len(st.Fields.List) != 1 {
		return "", false
	}
	field := st.Fields.List[0]
	if len(field.Names) != 0 {
		return "", false
	}
	expr := field.Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	return typeString(expr), true
}

// typeString renders a type expression as written in source.
func typeString(expr ast.Expr) string {
	return types.ExprString(expr)
}

// docString joins a doc comment's lines into one description, skipping
// directive lines.
func docString(doc *ast.CommentGroup) string {
	if doc == nil {
		return ""
	}
	var parts []string
	for _, comment := range doc.List {
		if directives.IsDirective(comment.Text) {
			continue
		}
		line := strings.TrimSpace(strings.TrimPrefix(comment.Text, "//"))
		line = strings.TrimSpace(strings.TrimPrefix(line, "/*"))
		line = strings.TrimSpace(strings.TrimSuffix(line, "*/"))
		if line == "" {
			continue
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " ")
}

// fieldDoc prefers a field's doc comment and falls back to its trailing
// line comment.
func fieldDoc(field *ast.Field) string {
	if doc := docString(field.Doc); doc != "" {
		return doc
	}
	return docString(field.Comment)
}
