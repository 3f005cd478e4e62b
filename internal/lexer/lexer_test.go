package lexer

import (
	"testing"

	"github.com/mguinhos/akitac/pkg/token"
)

func TestNextTokenHelloWorld(t *testing.T) {
	input := "def main():\n    print(\"hi\")\n"

	tests := []struct {
		typ     token.Type
		literal string
	}{
		{token.DEF, "def"},
		{token.IDENT, "main"},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.COLON, ":"},
		{token.INDENT, "4"},
		{token.IDENT, "print"},
		{token.LPAREN, "("},
		{token.STRING, "hi"},
		{token.RPAREN, ")"},
		{token.INDENT, "0"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.typ {
			t.Fatalf("tests[%d] - type wrong. expected=%v, got=%v (literal=%q)", i, tt.typ, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.literal {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.literal, tok.Literal)
		}
	}
}

func TestNextTokenKeywords(t *testing.T) {
	input := "pass from import class def return while for in if elif else break continue"
	expected := []token.Type{
		token.PASS, token.FROM, token.IMPORT, token.CLASS, token.DEF, token.RETURN,
		token.WHILE, token.FOR, token.IN, token.IF, token.ELIF, token.ELSE,
		token.BREAK, token.CONTINUE, token.EOF,
	}

	l := New(input)
	for i, want := range expected {
		if got := l.NextToken().Type; got != want {
			t.Fatalf("tests[%d]: expected %v, got %v", i, want, got)
		}
	}
}

func TestNextTokenOperators(t *testing.T) {
	input := ": ; , . ... ! = > < + - * / % != == >= <= += -= *= /= %= -> ( ) [ ]"
	expected := []token.Type{
		token.COLON, token.SEMICOLON, token.COMMA, token.DOT, token.ELLIPSIS,
		token.NOT, token.EQUAL, token.GT, token.LT, token.PLUS, token.MINUS,
		token.STAR, token.SLASH, token.PCT, token.NOT_EQ, token.EQ_EQ,
		token.GT_EQ, token.LT_EQ, token.PLUS_EQ, token.MINUS_EQ, token.STAR_EQ,
		token.SLASH_EQ, token.PCT_EQ, token.ARROW, token.LPAREN, token.RPAREN,
		token.LBRACKET, token.RBRACKET, token.EOF,
	}

	l := New(input)
	for i, want := range expected {
		if got := l.NextToken().Type; got != want {
			t.Fatalf("tests[%d]: expected %v, got %v", i, want, got)
		}
	}
}

func TestNextTokenNumbers(t *testing.T) {
	tests := []struct {
		input   string
		typ     token.Type
		literal string
	}{
		{"123", token.INT, "123"},
		{"1_000", token.INT, "1000"},
		{"3.14", token.FLOAT, "3.14"},
		{"0xFF", token.INT, "255"},
		{"0b1010", token.INT, "10"},
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != tt.typ || tok.Literal != tt.literal {
			t.Errorf("input %q: got (%v, %q), want (%v, %q)", tt.input, tok.Type, tok.Literal, tt.typ, tt.literal)
		}
	}
}

func TestNextTokenStrings(t *testing.T) {
	tests := []struct {
		input   string
		literal string
		fstring bool
	}{
		{`"hello"`, "hello", false},
		{`'hello'`, "hello", false},
		{`"it\'s"`, `it\'s`, false},
		{`"say \"hi\""`, `say "hi"`, false},
		{`f"hi {x}"`, "hi {x}", true},
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != token.STRING {
			t.Fatalf("input %q: expected STRING, got %v", tt.input, tok.Type)
		}
		if tok.Literal != tt.literal {
			t.Errorf("input %q: literal = %q, want %q", tt.input, tok.Literal, tt.literal)
		}
		if tok.FString != tt.fstring {
			t.Errorf("input %q: fstring = %v, want %v", tt.input, tok.FString, tt.fstring)
		}
	}
}

func TestNextTokenComment(t *testing.T) {
	l := New("# emit foo();\n")
	tok := l.NextToken()
	if tok.Type != token.COMMENT {
		t.Fatalf("expected COMMENT, got %v", tok.Type)
	}
	if tok.Literal != "emit foo();" {
		t.Errorf("literal = %q", tok.Literal)
	}
	if !IsEmitDirective(tok.Literal) {
		t.Error("expected emit directive")
	}
	if got := EmitDirectiveBody(tok.Literal); got != "foo();" {
		t.Errorf("EmitDirectiveBody = %q", got)
	}
}

func TestNextTokenPlainComment(t *testing.T) {
	l := New("# just a note\n")
	tok := l.NextToken()
	if IsEmitDirective(tok.Literal) {
		t.Error("plain comment should not be an emit directive")
	}
}

func TestNextTokenIndentClosesBlocks(t *testing.T) {
	// spec §8: Indent 0 after a block of deeper indent closes all enclosing blocks.
	input := "if x:\n    if y:\n        pass\nz"
	l := New(input)

	var indents []string
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		if tok.Type == token.INDENT {
			indents = append(indents, tok.Literal)
		}
	}

	want := []string{"4", "8", "0"}
	if len(indents) != len(want) {
		t.Fatalf("got indents %v, want %v", indents, want)
	}
	for i := range want {
		if indents[i] != want[i] {
			t.Errorf("indents[%d] = %q, want %q", i, indents[i], want[i])
		}
	}
}

func TestNextTokenIllegalCharacter(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %v", tok.Type)
	}
	if tok.Literal != "@" {
		t.Errorf("literal = %q", tok.Literal)
	}
}

func TestTokenizeThenPrintRoundTrip(t *testing.T) {
	// spec §8: tokenizing then printing the surface form of each token
	// (excluding indentation and comments) reproduces the original
	// token sequence.
	input := "def f(x: int) -> int:\n    return x + 1\n"
	l := New(input)

	var rebuilt string
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		if tok.Type == token.INDENT || tok.Type == token.COMMENT {
			continue
		}
		if rebuilt != "" {
			rebuilt += " "
		}
		rebuilt += tok.String()
	}

	want := "def f ( x : int ) -> int : return x + 1"
	if rebuilt != want {
		t.Errorf("rebuilt = %q, want %q", rebuilt, want)
	}
}
