package parser

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	"github.com/toyz/slashgen/internal/directives"
	"github.com/toyz/slashgen/internal/errors"
	"github.com/toyz/slashgen/internal/models"
	"github.com/toyz/slashgen/internal/utils"
)

// collectChoices walks the package's const blocks and gathers every
// constant typed as the given choice declaration. Display names come from
// a //slash::choice name= override when present, otherwise from the
// title-cased constant name with the type prefix stripped.
func (p *Parser) collectChoices(td *models.TypeDecl, files []*ast.File, acc *errors.Accumulator) {
	for _, file := range files {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.CONST {
				continue
			}
			p.collectConstBlock(td, genDecl, acc)
		}
	}
	if len(td.Choices) == 0 {
		acc.Addf(errors.CodeShape, td.Location,
			"choice option %s declares no constants", td.Name)
	}
}

// collectConstBlock scans one const declaration. Go carries the previous
// spec's type and expression forward through blank specs, so the walk
// tracks both along with the running iota index.
func (p *Parser) collectConstBlock(td *models.TypeDecl, decl *ast.GenDecl, acc *errors.Accumulator) {
	var (
		carryType   string
		carryValues []ast.Expr
	)
	for iotaIdx, spec := range decl.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}

		switch {
		case vs.Type != nil:
			carryType = typeString(vs.Type)
			carryValues = vs.Values
		case len(vs.Values) > 0:
			carryType = ""
			carryValues = vs.Values
		}
		if carryType != td.Name {
			continue
		}

		for i, name := range vs.Names {
			if name.Name == "_" {
				continue
			}
			if i >= len(carryValues) {
				acc.Addf(errors.CodeShape, p.location(name.Pos()),
					"choice constant %s of %s has no value expression", name.Name, td.Name)
				continue
			}
			value, err := constLiteral(carryValues[i], iotaIdx)
			if err != nil {
				acc.Addf(errors.CodeShape, p.location(name.Pos()),
					"choice constant %s of %s: %s", name.Name, td.Name, err)
				continue
			}
			c := models.Choice{
				GoName:   name.Name,
				Value:    value,
				Location: p.location(name.Pos()),
			}
			c.Name = p.choiceName(td, vs, name.Name, acc)
			td.Choices = append(td.Choices, c)
		}
	}
}

// choiceName resolves a constant's display name, honoring a
// //slash::choice name= directive in its doc comment.
func (p *Parser) choiceName(td *models.TypeDecl, vs *ast.ValueSpec, goName string, acc *errors.Accumulator) string {
	if vs.Doc != nil {
		for _, comment := range vs.Doc.List {
			if !directives.IsDirective(comment.Text) {
				continue
			}
			loc := p.location(comment.Pos())
			d, err := directives.ParseDirective(comment.Text, loc)
			if err != nil {
				acc.Addf(errors.CodeSyntax, loc, "%s", err)
				continue
			}
			if d.Name != "choice" {
				acc.Addf(errors.CodeAttribute, loc,
					"only slash::choice directives are valid on constants, got slash::%s", d.Name)
				continue
			}
			name, ok := d.Param("name")
			if !ok || name == "" {
				acc.Addf(errors.CodeAttribute, loc,
					"slash::choice on %s needs a name parameter", goName)
				continue
			}
			return name
		}
	}
	return utils.TitleCase(strings.TrimPrefix(goName, td.Name))
}

// constLiteral renders a constant's value expression as the literal the
// emitted choice table carries. Expressions are limited to plain literals
// and simple iota arithmetic so values stay computable without full type
// checking.
func constLiteral(expr ast.Expr, iotaIdx int) (string, error) {
	switch e := expr.(type) {
	case *ast.BasicLit:
		switch e.Kind {
		case token.INT, token.FLOAT, token.STRING:
			return e.Value, nil
		}
		return "", errLiteral(e.Value)
	case *ast.Ident:
		if e.Name == "iota" {
			return strconv.Itoa(iotaIdx), nil
		}
		return "", errLiteral(e.Name)
	case *ast.UnaryExpr:
		if e.Op == token.SUB {
			inner, err := constLiteral(e.X, iotaIdx)
			if err != nil {
				return "", err
			}
			return "-" + inner, nil
		}
		return "", errLiteral(typeString(expr))
	case *ast.BinaryExpr:
		left, err := constInt(e.X, iotaIdx)
		if err != nil {
			return "", err
		}
		right, err := constInt(e.Y, iotaIdx)
		if err != nil {
			return "", err
		}
		switch e.Op {
		case token.ADD:
			return strconv.Itoa(left + right), nil
		case token.SUB:
			return strconv.Itoa(left - right), nil
		case token.MUL:
			return strconv.Itoa(left * right), nil
		}
		return "", errLiteral(typeString(expr))
	case *ast.ParenExpr:
		return constLiteral(e.X, iotaIdx)
	case *ast.CallExpr:
		// conversions like Medal(3)
		if len(e.Args) == 1 {
			return constLiteral(e.Args[0], iotaIdx)
		}
		return "", errLiteral(typeString(expr))
	default:
		return "", errLiteral(typeString(expr))
	}
}

func constInt(expr ast.Expr, iotaIdx int) (int, error) {
	lit, err := constLiteral(expr, iotaIdx)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(lit)
	if err != nil {
		return 0, errLiteral(lit)
	}
	return n, nil
}

func errLiteral(expr string) error {
	return &unsupportedConstError{expr: expr}
}

type unsupportedConstError struct {
	expr string
}

func (e *unsupportedConstError) Error() string {
	return "unsupported value expression " + e.expr + ", use a plain literal or simple iota arithmetic"
}
