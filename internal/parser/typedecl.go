package parser

import (
	"go/ast"

	"github.com/toyz/slashgen/internal/directives"
	"github.com/toyz/slashgen/internal/errors"
	"github.com/toyz/slashgen/internal/models"
)

// extractType converts one annotated TypeSpec into a TypeDecl, or nil when
// the declaration is too broken to carry forward. Problems land in acc.
func (p *Parser) extractType(spec *ast.TypeSpec, doc *ast.CommentGroup, d *directives.Directive, acc *errors.Accumulator) *models.TypeDecl {
	loc := p.location(spec.Pos())

	role, err := models.ParseRole(d.Name)
	if err != nil {
		acc.Addf(errors.CodeAttribute, d.Location, "%s", err)
		return nil
	}

	td := &models.TypeDecl{
		Role:     role,
		Name:     spec.Name.Name,
		Doc:      docString(doc),
		Location: loc,
	}

	p.checkDirectiveParams(d, role, acc)

	// Top-level command lists and choice types never appear inside the
	// schema tree, so they carry no description of their own. Everything
	// else needs one.
	if td.Doc == "" && role != models.RoleCommands && role != models.RoleOption {
		acc.Addf(errors.CodeMissingDoc, loc,
			"%s %s needs a doc comment to use as its description", role, td.Name)
	}

	switch role {
	case models.RoleCommands:
		p.extractEnum(td, spec, acc)
	case models.RoleCommand:
		p.extractCommand(td, spec, acc)
	case models.RoleGroup:
		p.extractEnum(td, spec, acc)
	case models.RoleSubCommand:
		p.extractNamed(td, spec, acc)
	case models.RoleOption:
		p.extractOption(td, spec, d, acc)
	}

	p.checkAutocompleteFlags(td, acc)
	p.checkSiblingNames(td, acc)
	return td
}

// checkSiblingNames rejects two options or variants of the same level
// resolving to the same external name.
func (p *Parser) checkSiblingNames(td *models.TypeDecl, acc *errors.Accumulator) {
	checkFields := func(owner string, fields []models.Field) {
		seen := make(map[string]bool, len(fields))
		for i := range fields {
			f := &fields[i]
			if seen[f.Name] {
				acc.Addf(errors.CodeDuplicate, f.Location,
					"%s declares option name %s more than once", owner, f.Name)
				continue
			}
			seen[f.Name] = true
		}
	}

	checkFields(td.Name, td.Fields)
	seen := make(map[string]bool, len(td.Variants))
	for i := range td.Variants {
		v := &td.Variants[i]
		if seen[v.Name] {
			acc.Addf(errors.CodeDuplicate, v.Location,
				"%s declares variant name %s more than once", td.Name, v.Name)
		}
		seen[v.Name] = true
		checkFields(td.Name+"."+v.GoName, v.Fields)
	}
}

// checkDirectiveParams rejects directive parameters that do not belong on
// the given role. Only option declarations take a parameter (type=).
func (p *Parser) checkDirectiveParams(d *directives.Directive, role models.Role, acc *errors.Accumulator) {
	for key := range d.Params {
		if role == models.RoleOption && key == "type" {
			continue
		}
		acc.Addf(errors.CodeAttribute, d.Location,
			"directive slash::%s does not take a %s parameter", d.Name, key)
	}
}

// extractEnum handles the roles that are always variant-shaped: command
// lists and sub-command groups.
func (p *Parser) extractEnum(td *models.TypeDecl, spec *ast.TypeSpec, acc *errors.Accumulator) {
	st, ok := spec.Type.(*ast.StructType)
	if !ok {
		acc.Addf(errors.CodeShape, td.Location,
			"%s %s must be a struct with one pointer field per variant", td.Role, td.Name)
		return
	}
	if p.checkStrayEmbeds(td, st, acc) {
		return
	}
	td.Shape = models.ShapeEnum
	before := acc.Len()
	for _, field := range flattenFields(st) {
		if v := p.extractVariant(td, field, acc); v != nil {
			td.Variants = append(td.Variants, *v)
		}
	}
	// only diagnose a genuinely empty struct, not one whose variants all
	// failed extraction above
	if len(td.Variants) == 0 && acc.Len() == before {
		acc.Addf(errors.CodeShape, td.Location, "%s %s declares no variants", td.Role, td.Name)
	}
}

// extractNamed handles sub-commands: an options struct, a unit struct, or
// a newtype delegating to another sub-command-shaped type.
func (p *Parser) extractNamed(td *models.TypeDecl, spec *ast.TypeSpec, acc *errors.Accumulator) {
	st, ok := spec.Type.(*ast.StructType)
	if !ok {
		acc.Addf(errors.CodeShape, td.Location, "%s %s must be a struct", td.Role, td.Name)
		return
	}
	if inner, ok := embeddedDelegate(st); ok {
		td.Shape = models.ShapeNewtype
		td.Inner = inner
		td.Embedded = true
		return
	}
	if p.checkStrayEmbeds(td, st, acc) {
		return
	}
	fields := flattenFields(st)
	if len(fields) == 0 {
		td.Shape = models.ShapeUnit
		return
	}
	td.Shape = models.ShapeOptions
	for _, field := range fields {
		if f := p.extractField(td, field, false, acc); f != nil {
			td.Fields = append(td.Fields, *f)
		}
	}
}

// checkStrayEmbeds rejects embedded fields mixed with anything else. A
// delegate is exactly one embedded field and nothing more.
func (p *Parser) checkStrayEmbeds(td *models.TypeDecl, st *ast.StructType, acc *errors.Accumulator) bool {
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			acc.Addf(errors.CodeShape, p.location(field.Pos()),
				"%s %s must embed exactly one delegate type and nothing else", td.Role, td.Name)
			return true
		}
	}
	return false
}

// extractCommand handles the one role whose shape must be inferred: a
// command struct holds either options or variants, and a field declared
// as a pointer to a named type reads both ways. The call is made from the
// unambiguous fields when possible, and from variant/option tags when not.
func (p *Parser) extractCommand(td *models.TypeDecl, spec *ast.TypeSpec, acc *errors.Accumulator) {
	st, ok := spec.Type.(*ast.StructType)
	if !ok {
		acc.Addf(errors.CodeShape, td.Location, "command %s must be a struct", td.Name)
		return
	}
	if inner, ok := embeddedDelegate(st); ok {
		td.Shape = models.ShapeNewtype
		td.Inner = inner
		td.Embedded = true
		return
	}
	if p.checkStrayEmbeds(td, st, acc) {
		return
	}
	fields := flattenFields(st)
	if len(fields) == 0 {
		td.Shape = models.ShapeUnit
		return
	}

	shape, genErr := p.inferCommandShape(td, fields)
	if genErr != nil {
		acc.Add(genErr)
		return
	}
	td.Shape = shape
	for _, field := range fields {
		if shape == models.ShapeEnum {
			if v := p.extractVariant(td, field, acc); v != nil {
				td.Variants = append(td.Variants, *v)
			}
		} else {
			if f := p.extractField(td, field, true, acc); f != nil {
				td.Fields = append(td.Fields, *f)
			}
		}
	}
}

// inferCommandShape decides between enum and options. A pointer to an
// inline struct can only be a variant; a non-pointer field or a pointer
// to a builtin scalar can only be an option. Pointers to named types are
// the ambiguous middle and defer to tags.
func (p *Parser) inferCommandShape(td *models.TypeDecl, fields []*ast.Field) (models.Shape, *errors.GenError) {
	var variantVotes, optionVotes int
	for _, field := range fields {
		tag, err := p.fieldTag(field)
		if err != nil {
			// reported again during field extraction
			continue
		}
		switch {
		case tag != nil && tag.Variant:
			variantVotes++
		case tag != nil && tag.Option:
			optionVotes++
		default:
			switch classifyFieldType(field.Type) {
			case fieldVariantLike:
				variantVotes++
			case fieldOptionLike:
				optionVotes++
			}
		}
	}

	switch {
	case variantVotes > 0 && optionVotes > 0:
		return 0, errors.New(errors.CodeShape, td.Location,
			"command %s mixes variant fields and option fields", td.Name).WithSuggestions(
			"split the variants into a sub-command group, or make every field an option")
	case variantVotes > 0:
		return models.ShapeEnum, nil
	case optionVotes > 0:
		return models.ShapeOptions, nil
	default:
		return 0, errors.New(errors.CodeShape, td.Location,
			"cannot tell whether command %s holds options or variants", td.Name).WithSuggestions(
			`tag a field with slash:"variant" or slash:"option" to decide`)
	}
}

// extractOption handles basic option types: a choice type when the
// directive carries type=, otherwise a newtype delegating to another
// option implementation.
func (p *Parser) extractOption(td *models.TypeDecl, spec *ast.TypeSpec, d *directives.Directive, acc *errors.Accumulator) {
	if kindName, ok := d.Param("type"); ok {
		kind, err := models.ParseChoiceKind(kindName)
		if err != nil {
			acc.Addf(errors.CodeAttribute, d.Location, "%s", err)
			return
		}
		ident, ok := spec.Type.(*ast.Ident)
		if !ok {
			acc.Addf(errors.CodeShape, td.Location,
				"choice option %s must be declared over a basic type, e.g. type %s int", td.Name, td.Name)
			return
		}
		td.Shape = models.ShapeChoices
		td.ChoiceKind = kind
		td.Underlying = ident.Name
		if !kind.UnderlyingAllowed(td.Underlying) {
			acc.Addf(errors.CodeAttribute, d.Location,
				"choice option %s is declared over %s, which cannot hold %s choices",
				td.Name, td.Underlying, kindName)
		}
		// constants are collected in a later pass
		return
	}

	if st, ok := spec.Type.(*ast.StructType); ok {
		if inner, ok := embeddedDelegate(st); ok {
			td.Shape = models.ShapeNewtype
			td.Inner = inner
			td.Embedded = true
			return
		}
		acc.Addf(errors.CodeShape, td.Location,
			"option %s must embed exactly one delegate type or declare type= choices", td.Name)
		return
	}

	// type Wrapped Underlying delegates to the underlying option type.
	td.Shape = models.ShapeNewtype
	td.Inner = typeString(spec.Type)
}

// checkAutocompleteFlags rejects autocomplete on variants that have no
// single focused value to complete.
func (p *Parser) checkAutocompleteFlags(td *models.TypeDecl, acc *errors.Accumulator) {
	for i := range td.Variants {
		v := &td.Variants[i]
		if v.Autocomplete && v.Shape != models.VariantNewtype {
			acc.Add(errors.New(errors.CodeAutocomplete, v.Location,
				"variant %s of %s cannot be autocompleted", v.GoName, td.Name).
				WithSuggestions("flag the individual option fields instead"))
		}
	}
}
