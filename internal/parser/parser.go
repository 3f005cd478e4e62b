package parser

import (
	"github.com/mguinhos/akitac/internal/ast"
	"github.com/mguinhos/akitac/internal/lexer"
	"github.com/mguinhos/akitac/pkg/token"
)

// Parser builds an internal/ast tree from a token stream. It holds no
// state beyond the cursor: every parse* method takes exactly the tokens
// it needs and returns the node plus an error, instead of panicking.
type Parser struct {
	c *TokenCursor
}

// New creates a Parser reading from l.
func New(l *lexer.Lexer) *Parser {
	return &Parser{c: NewTokenCursor(l)}
}

// Parse consumes the entire token stream and returns the file's
// top-level declarations: Def, Class, Comment, and Import nodes, in
// source order (spec §4.1 "Top-level grammar").
func (p *Parser) Parse() ([]ast.Declaration, error) {
	var decls []ast.Declaration

	for {
		tok := p.c.Take()

		switch tok.Type {
		case token.EOF:
			return decls, nil
		case token.INDENT:
			continue
		case token.DEF:
			def, err := p.parseDef()
			if err != nil {
				return nil, err
			}
			decls = append(decls, def)
		case token.CLASS:
			class, err := p.parseClass()
			if err != nil {
				return nil, err
			}
			decls = append(decls, class)
		case token.COMMENT:
			decls = append(decls, ast.NewComment(tok.Literal, tok.Pos))
		case token.IMPORT:
			imp, err := p.parseImport(tok.Pos)
			if err != nil {
				return nil, err
			}
			decls = append(decls, imp)
		case token.FROM:
			imp, err := p.parseFromImport(tok.Pos)
			if err != nil {
				return nil, err
			}
			decls = append(decls, imp)
		default:
			return nil, newSyntaxError(tok.Pos, "unexpected token `%s`", tok.String())
		}
	}
}
