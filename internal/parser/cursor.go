// Package parser implements a recursive-descent parser over the token
// stream produced by internal/lexer, building the internal/ast tree
// (spec §4).
package parser

import (
	"github.com/mguinhos/akitac/internal/lexer"
	"github.com/mguinhos/akitac/pkg/token"
)

// TokenCursor buffers a single step of lookahead over a lexer, exposing
// Take/Drop instead of the teacher's immutable Peek/Advance pair — this
// grammar only ever needs to look one token ahead and put it back, the
// same shape as the source tokenizer's TokenHook.take()/drop().
//
// Take advances and returns the next token. Drop rewinds by exactly one
// token: the next Take re-returns the token just taken instead of
// reading a new one from the lexer. Calling Drop twice in a row without
// an intervening Take is a caller bug and panics, the same way the
// source's drop() raising past the start of its buffer would.
type TokenCursor struct {
	lex     *lexer.Lexer
	current token.Token
	dropped bool
}

// NewTokenCursor creates a cursor over l. The cursor holds no token
// until the first Take.
func NewTokenCursor(l *lexer.Lexer) *TokenCursor {
	return &TokenCursor{lex: l}
}

// Take returns the next token in the stream, advancing the cursor. If
// the previous token was dropped, Take re-returns it without consuming
// a new one from the lexer.
func (c *TokenCursor) Take() token.Token {
	if c.dropped {
		c.dropped = false
		return c.current
	}
	c.current = c.lex.NextToken()
	return c.current
}

// Drop rewinds the cursor by one token: the next Take returns the same
// token again. Panics if called twice without an intervening Take.
func (c *TokenCursor) Drop() {
	if c.dropped {
		panic("parser: Drop called twice without an intervening Take")
	}
	c.dropped = true
}

// Current returns the last token returned by Take, without consuming.
func (c *TokenCursor) Current() token.Token {
	return c.current
}
