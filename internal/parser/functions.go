package parser

import (
	"github.com/mguinhos/akitac/internal/ast"
	"github.com/mguinhos/akitac/pkg/token"
)

// parseDef parses `def name(args) [-> rethint]: body`, with the `def`
// keyword already consumed.
func (p *Parser) parseDef() (*ast.Def, error) {
	nameTok := p.c.Take()
	if nameTok.Type != token.IDENT {
		return nil, newSyntaxError(nameTok.Pos, "expected function name, found `%s`", nameTok.String())
	}
	name := ast.NewName(nameTok.Literal, nameTok.Pos)

	open := p.c.Take()
	if open.Type != token.LPAREN {
		return nil, newSyntaxError(open.Pos, "missing `(` at `def %s(....)`", name.Value)
	}

	args, err := p.parseDefArgs(name)
	if err != nil {
		return nil, err
	}

	tok := p.c.Take()
	if tok.Type != token.ARROW {
		p.c.Drop()
		body, err := p.parseBody()
		if err != nil {
			return nil, err
		}
		return ast.NewDef(name, args, body, nil, nameTok.Pos), nil
	}

	rethint, err := p.parseExpression(p.c.Take())
	if err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	return ast.NewDef(name, args, body, rethint, nameTok.Pos), nil
}

// parseDefArgs parses the comma-separated, optionally hinted parameter
// list of a def, with the `(` already consumed. name is the function
// name, used only for error messages.
func (p *Parser) parseDefArgs(name *ast.Name) ([]*ast.Name, error) {
	var args []*ast.Name

	for {
		tok := p.c.Take()
		if tok.Type == token.RPAREN {
			break
		}

		if tok.Type != token.IDENT {
			return nil, newSyntaxError(tok.Pos, "unexpected `%s` at `def %s(%s...)`", tok.String(), name.Value, argNames(args))
		}

		arg := ast.NewName(tok.Literal, tok.Pos)
		args = append(args, arg)

		tok = p.c.Take()
		if tok.Type == token.COLON {
			hint, err := p.parseExpression(p.c.Take())
			if err != nil {
				return nil, err
			}
			arg.SetHint(hint)
			tok = p.c.Take()
		}

		switch tok.Type {
		case token.RPAREN:
			return args, nil
		case token.IDENT:
			return nil, newSyntaxError(tok.Pos, "missing comma for argument separator at `def %s(...%s...)`", name.Value, tok.String())
		case token.COMMA:
			// continue to next argument
		default:
			return nil, newSyntaxError(tok.Pos, "unexpected `%s` at `def %s(%s...)`", tok.String(), name.Value, argNames(args))
		}
	}

	return args, nil
}

func argNames(args []*ast.Name) string {
	s := ""
	for i, a := range args {
		if i > 0 {
			s += ", "
		}
		s += a.Value
	}
	return s
}

// parseClass parses `class name: body`, with the `class` keyword
// already consumed.
func (p *Parser) parseClass() (*ast.Class, error) {
	nameTok := p.c.Take()
	if nameTok.Type != token.IDENT {
		return nil, newSyntaxError(nameTok.Pos, "expected class name, found `%s`", nameTok.String())
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	return ast.NewClass(ast.NewName(nameTok.Literal, nameTok.Pos), body, nameTok.Pos), nil
}
