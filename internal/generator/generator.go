// Package generator emits the autogen_slash.go file for a package of
// annotated declarations: schema builders, wire parsers, interface
// assertions, and autocomplete counterparts.
//
// Emitted source is assembled with plain string writes and then run
// through the formatter, which also resolves imports. The emitters only
// guarantee syntactically valid Go; naming and spacing are the
// formatter's problem.
package generator

import (
	"fmt"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/toyz/slashgen/internal/errors"
	"github.com/toyz/slashgen/internal/models"
	"github.com/toyz/slashgen/internal/utils"
)

// GeneratedFileName is the output file written into each annotated
// package.
const GeneratedFileName = "autogen_slash.go"

const runtimeImport = "github.com/toyz/slashgen/pkg/slash"

// Generator emits generated source for one package at a time.
type Generator struct {
	diag *utils.DiagnosticSystem

	// types indexes the current package's declarations by Go type name,
	// in emission order. Lookups resolve newtype delegation targets.
	types *orderedmap.OrderedMap[string, *models.TypeDecl]
}

func NewGenerator(diag *utils.DiagnosticSystem) *Generator {
	return &Generator{diag: diag}
}

// GenerateFile renders the complete generated file for a package.
// Generation problems are accumulated; a non-nil source is returned only
// when the accumulator stayed clean.
func (g *Generator) GenerateFile(meta *models.PackageMetadata, acc *errors.Accumulator) ([]byte, error) {
	g.types = orderedmap.New[string, *models.TypeDecl]()
	for _, td := range meta.Types {
		g.types.Set(td.Name, td)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by slashgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", meta.PackageName)
	fmt.Fprintf(&b, "import (\n\t\"%s\"\n)\n", runtimeImport)

	for pair := g.types.Oldest(); pair != nil; pair = pair.Next() {
		g.emitType(&b, pair.Value, acc)
	}
	for pair := g.types.Oldest(); pair != nil; pair = pair.Next() {
		g.emitAutocomplete(&b, pair.Value, acc)
	}

	if acc.HasErrors() {
		return nil, nil
	}

	source, err := utils.FormatGeneratedSource(GeneratedFileName, []byte(b.String()))
	if err != nil {
		return nil, utils.WrapGenerateError(meta.PackageName, err)
	}
	g.diag.Verbose("generated %d declarations for package %s", len(meta.Types), meta.PackageName)
	return source, nil
}

// emitType dispatches one declaration to its role emitter.
func (g *Generator) emitType(b *strings.Builder, td *models.TypeDecl, acc *errors.Accumulator) {
	switch td.Role {
	case models.RoleCommands:
		g.emitCommandList(b, td, acc)
	case models.RoleCommand:
		g.emitCommand(b, td, acc)
	case models.RoleGroup:
		g.emitGroup(b, td, acc)
	case models.RoleSubCommand:
		g.emitSubCommand(b, td, acc)
	case models.RoleOption:
		g.emitOption(b, td, acc)
	}
}

// lookup resolves an in-package declaration by type name.
func (g *Generator) lookup(name string) (*models.TypeDecl, bool) {
	if g.types == nil {
		return nil, false
	}
	return g.types.Get(name)
}

func quote(s string) string {
	return strconv.Quote(s)
}
