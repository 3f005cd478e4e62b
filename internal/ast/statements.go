package ast

import (
	"strings"

	"github.com/mguinhos/akitac/pkg/token"
)

// Body is the ordered sequence of statements forming the interior of a
// compound statement.
type Body struct {
	Lines []Statement
	pos   token.Position
}

func NewBody(lines []Statement, pos token.Position) *Body {
	return &Body{Lines: lines, pos: pos}
}

func (b *Body) Pos() token.Position { return b.pos }

func (b *Body) String() string {
	parts := make([]string, len(b.Lines))
	for i, l := range b.Lines {
		parts[i] = l.String()
	}
	return strings.Join(parts, "\n")
}

// Set is a typed assignment or compound assignment: `name [: hint] op value`.
type Set struct {
	Target *Name
	Op     token.Type // EQUAL, PLUS_EQ, MINUS_EQ, STAR_EQ, SLASH_EQ
	Value  Expression
	pos    token.Position
}

func NewSet(target *Name, op token.Type, value Expression, pos token.Position) *Set {
	return &Set{Target: target, Op: op, Value: value, pos: pos}
}

func (s *Set) Pos() token.Position { return s.pos }
func (s *Set) String() string {
	return s.Target.Value + " " + s.Op.String() + " " + s.Value.String()
}

// Return is a `return expr` statement.
type Return struct {
	Operand Expression
	pos     token.Position
}

func NewReturn(operand Expression, pos token.Position) *Return {
	return &Return{Operand: operand, pos: pos}
}

func (r *Return) Pos() token.Position { return r.pos }
func (r *Return) String() string      { return "return " + r.Operand.String() }

// If is `if expr: body`.
type If struct {
	Operand Expression
	Body    *Body
	pos     token.Position
}

func NewIf(operand Expression, body *Body, pos token.Position) *If {
	return &If{Operand: operand, Body: body, pos: pos}
}

func (i *If) Pos() token.Position { return i.pos }
func (i *If) String() string      { return "if " + i.Operand.String() + ":\n" + i.Body.String() }

// Elif is `elif expr: body`.
type Elif struct {
	Operand Expression
	Body    *Body
	pos     token.Position
}

func NewElif(operand Expression, body *Body, pos token.Position) *Elif {
	return &Elif{Operand: operand, Body: body, pos: pos}
}

func (e *Elif) Pos() token.Position { return e.pos }
func (e *Elif) String() string      { return "elif " + e.Operand.String() + ":\n" + e.Body.String() }

// Else is `else: body`.
type Else struct {
	Body *Body
	pos  token.Position
}

func NewElse(body *Body, pos token.Position) *Else {
	return &Else{Body: body, pos: pos}
}

func (e *Else) Pos() token.Position { return e.pos }
func (e *Else) String() string      { return "else:\n" + e.Body.String() }

// While is `while expr: body`.
type While struct {
	Operand Expression
	Body    *Body
	pos     token.Position
}

func NewWhile(operand Expression, body *Body, pos token.Position) *While {
	return &While{Operand: operand, Body: body, pos: pos}
}

func (w *While) Pos() token.Position { return w.pos }
func (w *While) String() string      { return "while " + w.Operand.String() + ":\n" + w.Body.String() }

// For is `for name in operand: body`.
type For struct {
	Name    *Name
	Operand Expression
	Body    *Body
	pos     token.Position
}

func NewFor(name *Name, operand Expression, body *Body, pos token.Position) *For {
	return &For{Name: name, Operand: operand, Body: body, pos: pos}
}

func (f *For) Pos() token.Position { return f.pos }
func (f *For) String() string {
	return "for " + f.Name.Value + " in " + f.Operand.String() + ":\n" + f.Body.String()
}

// KeywordLine is a bare `break`, `continue`, or `...` (Ellipsis) line,
// emitted verbatim by the code generator.
type KeywordLine struct {
	Type token.Type // BREAK, CONTINUE, or ELLIPSIS
	pos  token.Position
}

func NewKeywordLine(t token.Type, pos token.Position) *KeywordLine {
	return &KeywordLine{Type: t, pos: pos}
}

func (k *KeywordLine) Pos() token.Position { return k.pos }
func (k *KeywordLine) String() string      { return k.Type.String() }

// ExprStatement is a bare expression used as a statement (e.g. a call for
// its side effects).
type ExprStatement struct {
	Expr Expression
	pos  token.Position
}

func NewExprStatement(expr Expression, pos token.Position) *ExprStatement {
	return &ExprStatement{Expr: expr, pos: pos}
}

func (e *ExprStatement) Pos() token.Position { return e.pos }
func (e *ExprStatement) String() string      { return e.Expr.String() }

// Comment is free comment text (already trimmed by the lexer). When its
// text begins with `emit `, it is a pass-through directive (spec §6).
type Comment struct {
	Text string
	pos  token.Position
}

func NewComment(text string, pos token.Position) *Comment {
	return &Comment{Text: text, pos: pos}
}

func (c *Comment) Pos() token.Position { return c.pos }
func (c *Comment) String() string      { return "#" + c.Text }

// Import is `import module` or `from module import names`.
type Import struct {
	Module *Name
	Names  []*Name // empty for a bare `import module`
	pos    token.Position
}

func NewImport(module *Name, names []*Name, pos token.Position) *Import {
	return &Import{Module: module, Names: names, pos: pos}
}

func (i *Import) Pos() token.Position { return i.pos }
func (i *Import) String() string {
	if len(i.Names) == 0 {
		return "import " + i.Module.Value
	}
	parts := make([]string, len(i.Names))
	for idx, n := range i.Names {
		parts[idx] = n.Value
	}
	return "from " + i.Module.Value + " import " + strings.Join(parts, ", ")
}
