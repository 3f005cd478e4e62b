package ast

import (
	"strings"

	"github.com/mguinhos/akitac/pkg/token"
)

// Name is an identifier together with an optional Hint describing its
// declared or inferred type. A Name's Hint is itself either a *Name
// (atomic type, e.g. `str`) or an *Item (indexed type, e.g. `list[str]`),
// per spec §3's invariant on hints.
type Name struct {
	Value string
	hint  Expression
	pos   token.Position
}

// NewName constructs a Name with no hint.
func NewName(value string, pos token.Position) *Name {
	return &Name{Value: value, pos: pos}
}

func (n *Name) Pos() token.Position { return n.pos }
func (n *Name) String() string      { return n.Value }
func (n *Name) Hint() Expression    { return n.hint }
func (n *Name) SetHint(h Expression) {
	n.hint = h
}

// Equal reports value equality, matching the source tokenizer's Name.__eq__
// which compares only the identifier text, ignoring hints.
func (n *Name) Equal(other *Name) bool {
	return n != nil && other != nil && n.Value == other.Value
}

// Literal is an integer, floating-point, boolean, or string constant. Its
// hint is derived purely from its Go value's kind and cannot be
// reassigned, matching the source's read-only `Literal.hint` property.
type Literal struct {
	Value   any // int64, float64, bool, or string
	FString bool
	pos     token.Position
}

func NewLiteral(value any, fstring bool, pos token.Position) *Literal {
	return &Literal{Value: value, FString: fstring, pos: pos}
}

func (l *Literal) Pos() token.Position { return l.pos }

func (l *Literal) String() string {
	switch v := l.Value.(type) {
	case string:
		return v
	default:
		return ""
	}
}

// Hint returns the atomic type name derived from the literal's Go kind:
// int64 -> "int", float64 -> "float", bool -> "bool", string -> "str".
func (l *Literal) Hint() Expression {
	switch l.Value.(type) {
	case int64:
		return NewName("int", l.pos)
	case float64:
		return NewName("float", l.pos)
	case bool:
		return NewName("bool", l.pos)
	case string:
		return NewName("str", l.pos)
	}
	return nil
}

// List is an ordered sequence of expressions with an element-type hint
// recorded once the first element's hint is known.
type List struct {
	Items []Expression
	hint  Expression
	pos   token.Position
}

func NewList(items []Expression, pos token.Position) *List {
	return &List{Items: items, pos: pos}
}

func (l *List) Pos() token.Position  { return l.pos }
func (l *List) Hint() Expression     { return l.hint }
func (l *List) SetHint(h Expression) { l.hint = h }

func (l *List) String() string {
	parts := make([]string, len(l.Items))
	for i, item := range l.Items {
		parts[i] = item.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Signature returns the list's compiled element-type name, e.g.
// `list__str__` for a list whose hint is `str`.
func (l *List) Signature() *Name {
	elem, _ := l.hint.(*Name)
	elemValue := ""
	if elem != nil {
		elemValue = elem.Value
	}
	return NewName("list__"+elemValue+"__", l.pos)
}

// Item is either a subscript expression (`head[indice]`) or, when it
// appears as a type hint, an indexed type annotation such as `list[str]`
// — the two roles share this node exactly as in the source parser. Its
// *expression* hint (str->char, etc.) is inferred on demand by the code
// generator's namespace-aware hint pass (spec §4.3 "Hint inference");
// this node only exposes the structural type-compilation rule (§4.3
// "Type compilation"), via TypeName.
type Item struct {
	Head   Expression
	Indice Expression
	pos    token.Position
}

func NewItem(head, indice Expression, pos token.Position) *Item {
	return &Item{Head: head, Indice: indice, pos: pos}
}

func (i *Item) Pos() token.Position { return i.pos }

func (i *Item) String() string {
	return i.Head.String() + "[" + i.Indice.String() + "]"
}

// TypeName compiles an Item used as a type hint into its C identifier,
// e.g. Item(Name("list"), Name("str")) -> "list__str__".
func (i *Item) TypeName() string {
	head, _ := i.Head.(*Name)
	indice, _ := i.Indice.(*Name)
	headValue, indiceValue := "", ""
	if head != nil {
		headValue = head.Value
	}
	if indice != nil {
		indiceValue = indice.Value
	}
	return headValue + "__" + indiceValue + "__"
}

// Attribute is `head.body` where body is a dotted path of names ending in
// a Call (spec §3). Only the Call-terminated form is implemented; any
// other tail is a NotImplemented code-generation error (spec §7).
type Attribute struct {
	Head Expression
	Body []Expression
	pos  token.Position
}

func NewAttribute(head Expression, body []Expression, pos token.Position) *Attribute {
	return &Attribute{Head: head, Body: body, pos: pos}
}

func (a *Attribute) Pos() token.Position { return a.pos }

func (a *Attribute) String() string {
	parts := make([]string, len(a.Body))
	for i, b := range a.Body {
		parts[i] = b.String()
	}
	return a.Head.String() + "." + strings.Join(parts, ".")
}

// Tail returns the last element of Body — the part the code generator
// expects to be a *Call.
func (a *Attribute) Tail() Expression {
	if len(a.Body) == 0 {
		return nil
	}
	return a.Body[len(a.Body)-1]
}

// Call is `head(args)`. Head is always a *Name in straightforward call
// expressions; attribute rewriting (see compile-time name mangling in
// internal/codegen) mutates Head in place to record the mangled callee.
type Call struct {
	Head Expression
	Args []Expression
	hint Expression
	pos  token.Position
}

func NewCall(head Expression, args []Expression, pos token.Position) *Call {
	return &Call{Head: head, Args: args, pos: pos}
}

func (c *Call) Pos() token.Position  { return c.pos }
func (c *Call) Hint() Expression     { return c.hint }
func (c *Call) SetHint(h Expression) { c.hint = h }

func (c *Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Name().Value + "(" + strings.Join(parts, ", ") + ")"
}

// Name returns the callee's identifier, recursing through a chained call
// head (e.g. `f()()`) the way the source's `Call.name` property does.
func (c *Call) Name() *Name {
	switch head := c.Head.(type) {
	case *Name:
		return head
	case *Call:
		return head.Name()
	default:
		return NewName("", c.pos)
	}
}

// SetName replaces the callee identifier in place — the attribute
// rewriting trick spec §9 calls out ("collapses receiver.method(args) to
// Receiver__method(args) by string rewriting the call's own name").
func (c *Call) SetName(n *Name) {
	c.Head = n
}

// BinaryOperation is one of the eight supported operators (+, -, *, /,
// <, >, ==, !=). Its Hint is
// `bool` for comparisons, else the left operand's hint if known, else the
// right's (spec §3).
type BinaryOperation struct {
	Operator token.Type
	Left     Expression
	Right    Expression
	pos      token.Position
}

func NewBinaryOperation(op token.Type, left, right Expression, pos token.Position) *BinaryOperation {
	return &BinaryOperation{Operator: op, Left: left, Right: right, pos: pos}
}

func (b *BinaryOperation) Pos() token.Position { return b.pos }

func (b *BinaryOperation) String() string {
	return b.Left.String() + " " + b.Operator.String() + " " + b.Right.String()
}

// IsComparison reports whether the operator is one of ==, !=, <, >.
func (b *BinaryOperation) IsComparison() bool {
	switch b.Operator {
	case token.EQ_EQ, token.NOT_EQ, token.LT, token.GT:
		return true
	}
	return false
}

// Hint returns `bool` for comparisons; otherwise the left operand's hint
// if set, else the right's. It does not consult a namespace — namespace-
// aware inference (looking up a bare Name's declared hint) lives in
// internal/codegen's GetHint, mirroring the split between the AST-level
// property and the compiler's get_hint in the source.
func (b *BinaryOperation) Hint() Expression {
	if b.IsComparison() {
		return NewName("bool", b.pos)
	}
	if left, ok := b.Left.(Hinter); ok {
		if h := left.Hint(); h != nil {
			return h
		}
	}
	if right, ok := b.Right.(Hinter); ok {
		return right.Hint()
	}
	return nil
}

// SetHint mirrors the source's unusual hint.setter: if the left operand's
// hint is unset, assigning to the BinaryOperation writes the hint onto
// both operands. A comparison's Hint() is always non-nil (`bool`), so the
// setter is a permanent no-op there, exactly as in the source.
func (b *BinaryOperation) SetHint(h Expression) {
	if b.IsComparison() {
		return
	}
	if left, ok := b.Left.(Hinter); ok && left.Hint() != nil {
		return
	}
	if setter, ok := b.Left.(interface{ SetHint(Expression) }); ok {
		setter.SetHint(h)
	}
	if setter, ok := b.Right.(interface{ SetHint(Expression) }); ok {
		setter.SetHint(h)
	}
}
