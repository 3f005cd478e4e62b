package parser

import (
	"strconv"

	"github.com/mguinhos/akitac/internal/ast"
	"github.com/mguinhos/akitac/pkg/token"
)

// binaryOperators is the set of tokens that continue an expression as a
// BinaryOperation (spec §4.2 "Operator grammar" — no precedence
// climbing; each operator binds right-to-left through plain recursion,
// matching parse_expression in the source parser exactly).
var binaryOperators = map[token.Type]bool{
	token.PLUS: true, token.MINUS: true, token.STAR: true, token.SLASH: true,
	token.LT: true, token.GT: true, token.EQ_EQ: true, token.NOT_EQ: true,
}

// parseExpression parses the expression starting at tok. accept, when
// non-empty, restricts which continuation token the expression may be
// followed by — used by parseAttribute so that each member of a dotted
// chain takes only call and subscript continuations and stops at any
// other token (such as the next `.`), draining that non-matching
// lookahead back onto the cursor via Drop.
func (p *Parser) parseExpression(tok token.Token, accept ...token.Type) (ast.Expression, error) {
	value, err := p.parsePrimary(tok)
	if err != nil {
		return nil, err
	}
	return p.continueExpression(value, accept...)
}

// parsePrimary builds the base expression node for tok: a literal, a
// bare name, or the start of a list. Any other token is not a valid
// expression start.
func (p *Parser) parsePrimary(tok token.Token) (ast.Expression, error) {
	switch tok.Type {
	case token.LBRACKET:
		return p.parseList()
	case token.IDENT:
		return ast.NewName(tok.Literal, tok.Pos), nil
	case token.INT:
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, newSyntaxError(tok.Pos, "malformed integer literal `%s`", tok.Literal)
		}
		return ast.NewLiteral(n, false, tok.Pos), nil
	case token.FLOAT:
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, newSyntaxError(tok.Pos, "malformed float literal `%s`", tok.Literal)
		}
		return ast.NewLiteral(f, false, tok.Pos), nil
	case token.STRING:
		return ast.NewLiteral(tok.Literal, tok.FString, tok.Pos), nil
	default:
		return nil, newSyntaxError(tok.Pos, "expected expression, found `%s`", tok.String())
	}
}

// continueExpression consumes operators, attribute chains, calls, and
// subscripts following value, recursing the same way parse_expression
// does in the source parser.
func (p *Parser) continueExpression(value ast.Expression, accept ...token.Type) (ast.Expression, error) {
	tok := p.c.Take()

	if len(accept) > 0 && !containsType(accept, tok.Type) {
		p.c.Drop()
		return value, nil
	}

	switch {
	case binaryOperators[tok.Type]:
		rhs, err := p.parseExpression(p.c.Take())
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryOperation(tok.Type, value, rhs, value.Pos()), nil

	case tok.Type == token.DOT:
		attr, err := p.parseAttribute(value)
		if err != nil {
			return nil, err
		}
		return p.continueExpression(attr)

	case tok.Type == token.LPAREN:
		call, err := p.parseCall(value)
		if err != nil {
			return nil, err
		}
		return p.continueExpression(call, accept...)

	case tok.Type == token.LBRACKET:
		item, err := p.parseItem(value)
		if err != nil {
			return nil, err
		}
		return p.continueExpression(item, accept...)

	default:
		p.c.Drop()
		return value, nil
	}
}

// parseCall parses the argument list of a call whose `(` has already
// been consumed; head is the callee expression.
func (p *Parser) parseCall(head ast.Expression) (*ast.Call, error) {
	var args []ast.Expression

	for {
		tok := p.c.Take()
		if tok.Type == token.RPAREN {
			break
		}

		arg, err := p.parseExpression(tok)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		sep := p.c.Take()
		if sep.Type == token.RPAREN {
			break
		}
		if sep.Type != token.COMMA {
			return nil, newSyntaxError(sep.Pos, "missing `,` at `%s(...)`. found `%s`", head.String(), sep.String())
		}
	}

	return ast.NewCall(head, args, head.Pos()), nil
}

// parseItem parses a subscript expression whose `[` has already been
// consumed; head is the expression being indexed.
func (p *Parser) parseItem(head ast.Expression) (*ast.Item, error) {
	indice, err := p.parseExpression(p.c.Take())
	if err != nil {
		return nil, err
	}

	tok := p.c.Take()
	if tok.Type != token.RBRACKET {
		return nil, newSyntaxError(tok.Pos, "missing `]` at `%s`", head.String())
	}

	return ast.NewItem(head, indice, head.Pos()), nil
}

// parseList parses a list literal whose `[` has already been consumed.
func (p *Parser) parseList() (*ast.List, error) {
	var items []ast.Expression
	pos := p.c.Current().Pos

	for {
		tok := p.c.Take()
		if tok.Type == token.RBRACKET {
			break
		}
		if tok.Type == token.COMMA {
			continue
		}

		item, err := p.parseExpression(tok)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return ast.NewList(items, pos), nil
}

// parseAttribute parses a dotted attribute chain whose first `.` has
// already been consumed; value is the receiver expression. Each member
// is itself parsed as an expression restricted to call and subscript
// continuations, so it stops at the next `.` and `a.b().c` parses as
// Attribute(a, [Call(b), c]).
func (p *Parser) parseAttribute(value ast.Expression) (*ast.Attribute, error) {
	var body []ast.Expression

	for {
		member, err := p.parseExpression(p.c.Take(), token.LPAREN, token.LBRACKET)
		if err != nil {
			return nil, err
		}
		body = append(body, member)

		tok := p.c.Take()
		if tok.Type != token.DOT {
			p.c.Drop()
			break
		}
	}

	return ast.NewAttribute(value, body, value.Pos()), nil
}

func containsType(types []token.Type, t token.Type) bool {
	for _, want := range types {
		if want == t {
			return true
		}
	}
	return false
}
