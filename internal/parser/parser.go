// Package parser extracts annotated command declarations from Go source.
//
// A declaration participates in generation when its doc comment carries a
// //slash:: directive. The parser classifies each annotated type into a
// role and shape, pulls option and variant metadata out of its fields, and
// collects choice constants for choice-backed option types. All problems
// are accumulated so a single run reports every diagnostic at once.
package parser

import (
	"go/ast"
	"go/token"
	"path/filepath"
	"sort"

	"github.com/toyz/slashgen/internal/directives"
	"github.com/toyz/slashgen/internal/errors"
	"github.com/toyz/slashgen/internal/models"
	"github.com/toyz/slashgen/internal/utils"
)

// Parser walks Go packages and produces generation metadata.
type Parser struct {
	reader *utils.FileReader
	diag   *utils.DiagnosticSystem
}

func NewParser(diag *utils.DiagnosticSystem) *Parser {
	return &Parser{
		reader: utils.NewFileReader(),
		diag:   diag,
	}
}

// ParseDirectory parses every non-generated Go file in dir and returns the
// package metadata for annotated declarations found there. A nil metadata
// with a nil error means the directory contains no annotated types.
func (p *Parser) ParseDirectory(dir string, acc *errors.Accumulator) (*models.PackageMetadata, error) {
	paths, err := utils.GoFilesIn(dir)
	if err != nil {
		return nil, utils.WrapParseError(dir, err)
	}
	if len(paths) == 0 {
		return nil, nil
	}
	p.diag.Debug("parsing %d files in %s", len(paths), dir)

	var files []*ast.File
	for _, path := range paths {
		file, err := p.reader.ParseGoFile(path)
		if err != nil {
			return nil, utils.WrapParseError(path, err)
		}
		files = append(files, file)
	}

	meta := p.extractPackage(dir, files, acc)
	if meta == nil {
		return nil, nil
	}
	p.diag.Verbose("found %d annotated declarations in %s", len(meta.Types), dir)
	return meta, nil
}

// ParseSource parses a single in-memory file. Used by tests.
func (p *Parser) ParseSource(filename, source string, acc *errors.Accumulator) (*models.PackageMetadata, error) {
	file, err := p.reader.ParseGoSource(filename, source)
	if err != nil {
		return nil, utils.WrapParseError(filename, err)
	}
	return p.extractPackage(filepath.Dir(filename), []*ast.File{file}, acc), nil
}

// extractPackage runs two passes over the files: the first collects every
// annotated type declaration, the second resolves choice constants for
// option types whose underlying type is a basic kind.
func (p *Parser) extractPackage(dir string, files []*ast.File, acc *errors.Accumulator) *models.PackageMetadata {
	meta := &models.PackageMetadata{Dir: dir}

	for _, file := range files {
		if meta.PackageName == "" {
			meta.PackageName = file.Name.Name
		}
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}
			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				doc := typeSpec.Doc
				if doc == nil {
					doc = genDecl.Doc
				}
				directive := p.findDirective(doc, acc)
				if directive == nil {
					continue
				}
				td := p.extractType(typeSpec, doc, directive, acc)
				if td != nil {
					meta.Types = append(meta.Types, td)
				}
			}
		}
	}

	if len(meta.Types) == 0 {
		return nil
	}

	// Choice constants may live in any file of the package, so resolve
	// them only after every annotated type is known.
	for _, td := range meta.Types {
		if td.Shape == models.ShapeChoices {
			p.collectChoices(td, files, acc)
		}
	}

	p.checkDuplicateNames(meta, acc)

	sort.Slice(meta.Types, func(i, j int) bool {
		return meta.Types[i].Name < meta.Types[j].Name
	})
	return meta
}

// findDirective scans a doc comment group for a slash directive. More than
// one directive on a single declaration is rejected.
func (p *Parser) findDirective(doc *ast.CommentGroup, acc *errors.Accumulator) *directives.Directive {
	if doc == nil {
		return nil
	}
	var found *directives.Directive
	for _, comment := range doc.List {
		if !directives.IsDirective(comment.Text) {
			continue
		}
		loc := p.location(comment.Pos())
		d, err := directives.ParseDirective(comment.Text, loc)
		if err != nil {
			acc.Addf(errors.CodeSyntax, loc, "%s", err)
			continue
		}
		if d.Name == "choice" {
			// choice directives belong on constants, handled in
			// collectChoices.
			acc.Addf(errors.CodeAttribute, loc,
				"choice directive is only valid on constants of a choice option type")
			continue
		}
		if found != nil {
			acc.Addf(errors.CodeAttribute, loc,
				"declaration has more than one slash directive")
			continue
		}
		found = d
	}
	return found
}

// checkDuplicateNames rejects two annotated types resolving to the same
// command-facing name, which would produce colliding wire entries.
func (p *Parser) checkDuplicateNames(meta *models.PackageMetadata, acc *errors.Accumulator) {
	seen := make(map[string]*models.TypeDecl)
	for _, td := range meta.Types {
		if td.Role != models.RoleCommands {
			continue
		}
		for _, v := range td.Variants {
			if prev, ok := seen[v.Name]; ok {
				acc.Addf(errors.CodeDuplicate, v.Location,
					"command name %s is declared by both %s and %s", v.Name, prev.Name, td.Name)
				continue
			}
			seen[v.Name] = td
		}
	}
}

func (p *Parser) location(pos token.Pos) models.SourceLocation {
	position := p.reader.FileSet().Position(pos)
	return models.SourceLocation{File: position.Filename, Line: position.Line}
}
