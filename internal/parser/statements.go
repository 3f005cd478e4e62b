package parser

import (
	"strconv"

	"github.com/mguinhos/akitac/internal/ast"
	"github.com/mguinhos/akitac/pkg/token"
)

// assignmentOperators is the set of tokens that turn a bare name into a
// Set statement (spec §4.2 "Assignment grammar").
var assignmentOperators = map[token.Type]bool{
	token.EQUAL: true, token.PLUS_EQ: true, token.MINUS_EQ: true,
	token.STAR_EQ: true, token.SLASH_EQ: true,
}

// parseBody parses the `:` and the indented block following it (spec
// §4.1 "Block grammar"). The caller has already consumed everything up
// to (not including) the `:`.
func (p *Parser) parseBody() (*ast.Body, error) {
	colon := p.c.Take()
	if colon.Type != token.COLON {
		return nil, newSyntaxError(colon.Pos, "expecting `:`, found `%s`", colon.String())
	}

	indentTok := p.c.Take()
	if indentTok.Type != token.INDENT {
		return nil, newSyntaxError(indentTok.Pos, "expecting indent, found `%s`", indentTok.String())
	}
	indent, err := strconv.Atoi(indentTok.Literal)
	if err != nil {
		return nil, newSyntaxError(indentTok.Pos, "malformed indent `%s`", indentTok.Literal)
	}

	var lines []ast.Statement

	for {
		tok := p.c.Take()
		if tok.Type == token.EOF {
			break
		}
		if tok.Type == token.PASS {
			continue
		}

		if tok.Type == token.INDENT {
			cur, err := strconv.Atoi(tok.Literal)
			if err != nil {
				return nil, newSyntaxError(tok.Pos, "malformed indent `%s`", tok.Literal)
			}
			if cur < indent {
				leave := true
				for {
					peek := p.c.Take()
					if peek.Type != token.INDENT {
						p.c.Drop()
						leave = true
						break
					}
					peekVal, err := strconv.Atoi(peek.Literal)
					if err != nil {
						return nil, newSyntaxError(peek.Pos, "malformed indent `%s`", peek.Literal)
					}
					if peekVal >= indent {
						p.c.Drop()
						leave = false
						break
					}
				}
				if leave {
					break
				}
			}
			continue
		}

		stmt, err := p.parseBodyLine(tok)
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			lines = append(lines, stmt)
		}
	}

	return ast.NewBody(lines, colon.Pos), nil
}

// parseBodyLine dispatches a single statement inside a block, given its
// already-consumed first token.
func (p *Parser) parseBodyLine(tok token.Token) (ast.Statement, error) {
	switch tok.Type {
	case token.ELLIPSIS, token.BREAK, token.CONTINUE:
		return ast.NewKeywordLine(tok.Type, tok.Pos), nil

	case token.RETURN:
		operand, err := p.parseExpression(p.c.Take())
		if err != nil {
			return nil, err
		}
		return ast.NewReturn(operand, tok.Pos), nil

	case token.WHILE:
		operand, err := p.parseExpression(p.c.Take())
		if err != nil {
			return nil, err
		}
		body, err := p.parseBody()
		if err != nil {
			return nil, err
		}
		return ast.NewWhile(operand, body, tok.Pos), nil

	case token.DEF:
		return p.parseDef()

	case token.CLASS:
		return p.parseClass()

	case token.FOR:
		return p.parseFor(tok.Pos)

	case token.IF:
		operand, err := p.parseExpression(p.c.Take())
		if err != nil {
			return nil, err
		}
		body, err := p.parseBody()
		if err != nil {
			return nil, err
		}
		return ast.NewIf(operand, body, tok.Pos), nil

	case token.ELIF:
		operand, err := p.parseExpression(p.c.Take())
		if err != nil {
			return nil, err
		}
		body, err := p.parseBody()
		if err != nil {
			return nil, err
		}
		return ast.NewElif(operand, body, tok.Pos), nil

	case token.ELSE:
		body, err := p.parseBody()
		if err != nil {
			return nil, err
		}
		return ast.NewElse(body, tok.Pos), nil

	case token.COMMENT:
		return ast.NewComment(tok.Literal, tok.Pos), nil

	case token.IDENT:
		return p.parseNameLine(tok)

	default:
		expr, err := p.parseExpression(tok)
		if err != nil {
			return nil, err
		}
		return ast.NewExprStatement(expr, tok.Pos), nil
	}
}

// parseFor parses `for name in operand: body`, with the `for` keyword
// already consumed (pos is its position).
func (p *Parser) parseFor(pos token.Position) (*ast.For, error) {
	nameTok := p.c.Take()
	if nameTok.Type != token.IDENT {
		return nil, newSyntaxError(nameTok.Pos, "expected loop variable, found `%s`", nameTok.String())
	}

	in := p.c.Take()
	if in.Type != token.IN {
		return nil, newSyntaxError(in.Pos, "expecting keyword `in` found `%s`", in.String())
	}

	operand, err := p.parseExpression(p.c.Take())
	if err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	return ast.NewFor(ast.NewName(nameTok.Literal, nameTok.Pos), operand, body, pos), nil
}

// parseNameLine parses a line starting with a bare identifier: either a
// typed/compound assignment (`x: int = 1`, `x += 1`) or a bare
// expression statement (`f(x)`).
func (p *Parser) parseNameLine(nameTok token.Token) (ast.Statement, error) {
	name := ast.NewName(nameTok.Literal, nameTok.Pos)

	tok := p.c.Take()

	if tok.Type == token.COLON {
		hint, err := p.parseExpression(p.c.Take())
		if err != nil {
			return nil, err
		}
		name.SetHint(hint)
		tok = p.c.Take()
	}

	if assignmentOperators[tok.Type] {
		value, err := p.parseExpression(p.c.Take())
		if err != nil {
			return nil, err
		}
		if name.Hint() == nil {
			if hinter, ok := value.(ast.Hinter); ok {
				name.SetHint(hinter.Hint())
			}
		}
		return ast.NewSet(name, tok.Type, value, nameTok.Pos), nil
	}

	p.c.Drop()
	expr, err := p.continueExpression(name)
	if err != nil {
		return nil, err
	}
	return ast.NewExprStatement(expr, nameTok.Pos), nil
}
