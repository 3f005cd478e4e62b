package parser

import (
	"github.com/mguinhos/akitac/internal/ast"
	"github.com/mguinhos/akitac/pkg/token"
)

// parseImport handles a bare `import module` line. pos is the position
// of the already-consumed `import` keyword.
func (p *Parser) parseImport(pos token.Position) (*ast.Import, error) {
	name := p.c.Take()
	if name.Type != token.IDENT {
		return nil, newSyntaxError(name.Pos, "expected module name, found `%s`", name.String())
	}
	return ast.NewImport(ast.NewName(name.Literal, name.Pos), nil, pos), nil
}

// parseFromImport handles `from module import name[, name...]`. pos is
// the position of the already-consumed `from` keyword.
func (p *Parser) parseFromImport(pos token.Position) (*ast.Import, error) {
	name := p.c.Take()
	if name.Type != token.IDENT {
		return nil, newSyntaxError(name.Pos, "expected module name to import, found `%s`", name.String())
	}

	kw := p.c.Take()
	if kw.Type != token.IMPORT {
		return nil, newSyntaxError(kw.Pos, "expected keyword `import`, found `%s`", kw.String())
	}

	var names []*ast.Name
	for {
		member := p.c.Take()
		if member.Type == token.STAR {
			// `from module import *` — the original takes a single raw
			// token here with no type check; a bare `*` has no further
			// comma-separated names to read.
			names = append(names, ast.NewName(member.String(), member.Pos))
			break
		}
		if member.Type != token.IDENT {
			return nil, newSyntaxError(member.Pos, "expected imported name, found `%s`", member.String())
		}
		names = append(names, ast.NewName(member.Literal, member.Pos))

		sep := p.c.Take()
		if sep.Type != token.COMMA {
			p.c.Drop()
			break
		}
	}

	return ast.NewImport(ast.NewName(name.Literal, name.Pos), names, pos), nil
}
