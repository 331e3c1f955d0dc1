package parser

import (
	"swipc/internal/ast"
	"swipc/internal/source"
	"swipc/internal/token"
)

// bufferForms is the flat dispatch table for the buffer value kinds. The
// plain In/OutBuffer spellings default to MapAlias.
var bufferForms = map[string]ast.Value{
	"InBuffer":                    ast.InBuffer(ast.TransferMapAlias, ast.AttrsNone),
	"InMapAliasBuffer":            ast.InBuffer(ast.TransferMapAlias, ast.AttrsNone),
	"InPointerBuffer":             ast.InBuffer(ast.TransferPointer, ast.AttrsNone),
	"InAutoSelectBuffer":          ast.InBuffer(ast.TransferAutoSelect, ast.AttrsNone),
	"InNonSecureBuffer":           ast.InBuffer(ast.TransferMapAlias, ast.AttrsAllowNonSecure),
	"InNonDeviceBuffer":           ast.InBuffer(ast.TransferMapAlias, ast.AttrsAllowNonDevice),
	"InNonSecureAutoSelectBuffer": ast.InBuffer(ast.TransferAutoSelect, ast.AttrsAllowNonSecure),

	"OutBuffer":                    ast.OutBuffer(ast.TransferMapAlias, ast.AttrsNone),
	"OutMapAliasBuffer":            ast.OutBuffer(ast.TransferMapAlias, ast.AttrsNone),
	"OutPointerBuffer":             ast.OutBuffer(ast.TransferPointer, ast.AttrsNone),
	"OutAutoSelectBuffer":          ast.OutBuffer(ast.TransferAutoSelect, ast.AttrsNone),
	"OutNonSecureBuffer":           ast.OutBuffer(ast.TransferMapAlias, ast.AttrsAllowNonSecure),
	"OutNonDeviceBuffer":           ast.OutBuffer(ast.TransferMapAlias, ast.AttrsAllowNonDevice),
	"OutNonSecureAutoSelectBuffer": ast.OutBuffer(ast.TransferAutoSelect, ast.AttrsAllowNonSecure),
}

// handleForms maps the four handle value kinds.
var handleForms = map[string]ast.Value{
	"CopyHandle":    ast.InHandle(ast.HandleCopy),
	"MoveHandle":    ast.InHandle(ast.HandleMove),
	"OutCopyHandle": ast.OutHandle(ast.HandleCopy),
	"OutMoveHandle": ast.OutHandle(ast.HandleMove),
}

// arrayForms maps the array value kinds to their direction and optional
// fixed transfer mode. The plain forms leave the mode to the element type.
type arrayForm struct {
	out     bool
	hasMode bool
	mode    ast.BufferTransferMode
}

var arrayForms = map[string]arrayForm{
	"InArray":            {},
	"InMapAliasArray":    {hasMode: true, mode: ast.TransferMapAlias},
	"InPointerArray":     {hasMode: true, mode: ast.TransferPointer},
	"InAutoSelectArray":  {hasMode: true, mode: ast.TransferAutoSelect},
	"OutArray":           {out: true},
	"OutMapAliasArray":   {out: true, hasMode: true, mode: ast.TransferMapAlias},
	"OutPointerArray":    {out: true, hasMode: true, mode: ast.TransferPointer},
	"OutAutoSelectArray": {out: true, hasMode: true, mode: ast.TransferAutoSelect},
}

// parseValue recognizes one wire-level argument kind. The specialized
// sf:: forms win over a generic nominal type reference; everything that is
// not one of them reduces to In(NominalType).
func (p *Parser) parseValue() (ast.Value, bool) {
	tok := p.peek()
	if tok.Kind != token.Ident {
		p.syntaxErr("an argument")
		return ast.Value{}, false
	}

	if n, ok := builtinNominal(tok.Text); ok {
		p.advance()
		return ast.In(n), true
	}

	segments, span, ok := p.parseNamespacedIdent("an argument")
	if !ok {
		return ast.Value{}, false
	}

	if len(segments) == 2 && segments[0] == "sf" {
		if v, handled, ok := p.parseSfValue(segments[1]); handled {
			return v, ok
		}
	}

	n, _, ok := p.parseNominalSuffix(segments, span)
	if !ok {
		return ast.Value{}, false
	}
	return ast.In(n), true
}

// parseSfValue dispatches on the second segment of an sf::-qualified name
// in argument position. handled=false sends the caller down the nominal
// type path (sf::Bytes, sf::Unknown, and unlisted names).
func (p *Parser) parseSfValue(name string) (ast.Value, bool, bool) {
	if v, ok := handleForms[name]; ok {
		return v, true, true
	}
	if v, ok := bufferForms[name]; ok {
		return v, true, true
	}
	if form, ok := arrayForms[name]; ok {
		v, ok := p.parseArrayValue(form)
		return v, true, ok
	}
	switch name {
	case "ClientProcessId":
		return ast.ClientProcessID(), true, true
	case "SharedPointer":
		iface, span, ok := p.parseSharedPointerArg()
		if !ok {
			return ast.Value{}, true, false
		}
		return ast.InObject(iface, span), true, true
	case "Out":
		v, ok := p.parseOutValue()
		return v, true, ok
	}
	return ast.Value{}, false, true
}

// parseArrayValue parses the `<ElementType>` tail of an array form.
func (p *Parser) parseArrayValue(form arrayForm) (ast.Value, bool) {
	if _, ok := p.expect(token.Lt, "'<' with an element type"); !ok {
		return ast.Value{}, false
	}
	elem, _, ok := p.parseNominalType()
	if !ok {
		return ast.Value{}, false
	}
	if _, ok := p.expect(token.Gt, "'>'"); !ok {
		return ast.Value{}, false
	}

	var mode *ast.BufferTransferMode
	if form.hasMode {
		mode = &form.mode
	}
	if form.out {
		return ast.OutArray(elem, mode), true
	}
	return ast.InArray(elem, mode), true
}

// parseSharedPointerArg parses `<ns::IFace>` and returns the interface
// name with the span covering exactly the name tokens.
func (p *Parser) parseSharedPointerArg() (ast.NamespacedIdent, source.Span, bool) {
	if _, ok := p.expect(token.Lt, "'<' with an interface name"); !ok {
		return ast.NamespacedIdent{}, source.Span{}, false
	}
	segments, span, ok := p.parseNamespacedIdent("an interface name")
	if !ok {
		return ast.NamespacedIdent{}, source.Span{}, false
	}
	if _, ok := p.expect(token.Gt, "'>'"); !ok {
		return ast.NamespacedIdent{}, source.Span{}, false
	}
	return ast.NewNamespacedIdent(segments...), span, true
}

// parseOutValue disambiguates `sf::Out<sf::SharedPointer<...>>` from the
// generic `sf::Out<T>`, with the specialized object form taking
// precedence.
func (p *Parser) parseOutValue() (ast.Value, bool) {
	if _, ok := p.expect(token.Lt, "'<'"); !ok {
		return ast.Value{}, false
	}

	tok := p.peek()
	if tok.Kind == token.Ident {
		if n, ok := builtinNominal(tok.Text); ok {
			p.advance()
			if _, ok := p.expect(token.Gt, "'>'"); !ok {
				return ast.Value{}, false
			}
			return ast.Out(n), true
		}

		segments, span, ok := p.parseNamespacedIdent("a type or sf::SharedPointer")
		if !ok {
			return ast.Value{}, false
		}

		if len(segments) == 2 && segments[0] == "sf" && segments[1] == "SharedPointer" {
			iface, ifaceSpan, ok := p.parseSharedPointerArg()
			if !ok {
				return ast.Value{}, false
			}
			if _, ok := p.expect(token.Gt, "'>'"); !ok {
				return ast.Value{}, false
			}
			if len(iface.Segments) == 2 && iface.Segments[0] == "sf" && iface.Segments[1] == "IUnknown" {
				return ast.OutObject(ast.NamespacedIdent{}, ifaceSpan), true
			}
			return ast.OutObject(iface, ifaceSpan), true
		}

		n, _, ok := p.parseNominalSuffix(segments, span)
		if !ok {
			return ast.Value{}, false
		}
		if _, ok := p.expect(token.Gt, "'>'"); !ok {
			return ast.Value{}, false
		}
		return ast.Out(n), true
	}

	p.syntaxErr("a type or sf::SharedPointer")
	return ast.Value{}, false
}
