package ast

import (
	"testing"

	"github.com/mguinhos/akitac/pkg/token"
)

func zeroPos() token.Position { return token.Position{Line: 1, Column: 1} }

func TestNameEqual(t *testing.T) {
	a := NewName("x", zeroPos())
	b := NewName("x", zeroPos())
	c := NewName("y", zeroPos())

	if !a.Equal(b) {
		t.Error("expected equal names to compare equal")
	}
	if a.Equal(c) {
		t.Error("expected different names to compare unequal")
	}
	if a.Equal(nil) {
		t.Error("expected Equal(nil) to be false")
	}
}

func TestNameHintRoundTrip(t *testing.T) {
	n := NewName("x", zeroPos())
	if n.Hint() != nil {
		t.Fatalf("expected nil hint, got %v", n.Hint())
	}
	h := NewName("int", zeroPos())
	n.SetHint(h)
	if n.Hint() != h {
		t.Errorf("expected hint %v, got %v", h, n.Hint())
	}
}

func TestLiteralHint(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{int64(1), "int"},
		{float64(1.5), "float"},
		{true, "bool"},
		{"s", "str"},
	}
	for _, tt := range tests {
		lit := NewLiteral(tt.value, false, zeroPos())
		hint, ok := lit.Hint().(*Name)
		if !ok {
			t.Fatalf("value %v: hint is not *Name", tt.value)
		}
		if hint.Value != tt.want {
			t.Errorf("value %v: hint = %q, want %q", tt.value, hint.Value, tt.want)
		}
	}
}

func TestLiteralStringSurface(t *testing.T) {
	lit := NewLiteral("hi", false, zeroPos())
	if lit.String() != "hi" {
		t.Errorf("String() = %q, want %q", lit.String(), "hi")
	}
}

func TestListSignature(t *testing.T) {
	l := NewList([]Expression{NewLiteral("a", false, zeroPos())}, zeroPos())
	l.SetHint(NewName("str", zeroPos()))
	if got := l.Signature().Value; got != "list__str__" {
		t.Errorf("Signature() = %q, want %q", got, "list__str__")
	}
}

func TestListSignatureEmptyHint(t *testing.T) {
	l := NewList(nil, zeroPos())
	if got := l.Signature().Value; got != "list____" {
		t.Errorf("Signature() = %q, want %q", got, "list____")
	}
}

func TestItemTypeName(t *testing.T) {
	item := NewItem(NewName("list", zeroPos()), NewName("str", zeroPos()), zeroPos())
	if got := item.TypeName(); got != "list__str__" {
		t.Errorf("TypeName() = %q, want %q", got, "list__str__")
	}
}

func TestAttributeTail(t *testing.T) {
	call := NewCall(NewName("append", zeroPos()), nil, zeroPos())
	attr := NewAttribute(NewName("xs", zeroPos()), []Expression{call}, zeroPos())
	if attr.Tail() != call {
		t.Errorf("Tail() = %v, want %v", attr.Tail(), call)
	}
}

func TestAttributeTailEmpty(t *testing.T) {
	attr := NewAttribute(NewName("xs", zeroPos()), nil, zeroPos())
	if attr.Tail() != nil {
		t.Errorf("Tail() = %v, want nil", attr.Tail())
	}
}

func TestCallNameDirect(t *testing.T) {
	c := NewCall(NewName("f", zeroPos()), nil, zeroPos())
	if c.Name().Value != "f" {
		t.Errorf("Name() = %q, want %q", c.Name().Value, "f")
	}
}

func TestCallNameChained(t *testing.T) {
	inner := NewCall(NewName("f", zeroPos()), nil, zeroPos())
	outer := NewCall(inner, nil, zeroPos())
	if outer.Name().Value != "f" {
		t.Errorf("Name() = %q, want %q", outer.Name().Value, "f")
	}
}

func TestCallSetName(t *testing.T) {
	c := NewCall(NewName("f", zeroPos()), nil, zeroPos())
	c.SetName(NewName("Receiver__f", zeroPos()))
	if c.Name().Value != "Receiver__f" {
		t.Errorf("Name() = %q, want %q", c.Name().Value, "Receiver__f")
	}
}

func TestBinaryOperationIsComparison(t *testing.T) {
	tests := []struct {
		op   token.Type
		want bool
	}{
		{token.EQ_EQ, true},
		{token.NOT_EQ, true},
		{token.LT, true},
		{token.GT, true},
		{token.PLUS, false},
	}
	for _, tt := range tests {
		b := NewBinaryOperation(tt.op, NewLiteral(int64(1), false, zeroPos()), NewLiteral(int64(2), false, zeroPos()), zeroPos())
		if got := b.IsComparison(); got != tt.want {
			t.Errorf("op %v: IsComparison() = %v, want %v", tt.op, got, tt.want)
		}
	}
}

func TestBinaryOperationHintComparison(t *testing.T) {
	b := NewBinaryOperation(token.EQ_EQ, NewLiteral(int64(1), false, zeroPos()), NewLiteral(int64(2), false, zeroPos()), zeroPos())
	hint, ok := b.Hint().(*Name)
	if !ok || hint.Value != "bool" {
		t.Errorf("Hint() = %v, want bool", b.Hint())
	}
}

func TestBinaryOperationHintArithmeticFallsBackToRight(t *testing.T) {
	left := NewName("x", zeroPos()) // no hint set
	right := NewLiteral(int64(2), false, zeroPos())
	b := NewBinaryOperation(token.PLUS, left, right, zeroPos())
	hint, ok := b.Hint().(*Name)
	if !ok || hint.Value != "int" {
		t.Errorf("Hint() = %v, want int (from right operand)", b.Hint())
	}
}

func TestBinaryOperationSetHintPropagatesToBothOperandsWhenUnset(t *testing.T) {
	left := NewName("x", zeroPos())
	right := NewName("y", zeroPos())
	b := NewBinaryOperation(token.PLUS, left, right, zeroPos())
	b.SetHint(NewName("int", zeroPos()))

	if left.Hint() == nil || left.Hint().(*Name).Value != "int" {
		t.Errorf("left hint = %v, want int", left.Hint())
	}
	if right.Hint() == nil || right.Hint().(*Name).Value != "int" {
		t.Errorf("right hint = %v, want int", right.Hint())
	}
}

func TestBinaryOperationSetHintNoopWhenLeftAlreadyHinted(t *testing.T) {
	left := NewName("x", zeroPos())
	left.SetHint(NewName("str", zeroPos()))
	right := NewName("y", zeroPos())
	b := NewBinaryOperation(token.PLUS, left, right, zeroPos())
	b.SetHint(NewName("int", zeroPos()))

	if right.Hint() != nil {
		t.Errorf("right hint = %v, want nil (left already hinted)", right.Hint())
	}
}

func TestDefSignature(t *testing.T) {
	args := []*Name{NewName("a", zeroPos()), NewName("b", zeroPos())}
	args[0].SetHint(NewName("int", zeroPos()))
	args[1].SetHint(NewName("str", zeroPos()))
	def := NewDef(NewName("f", zeroPos()), args, NewBody(nil, zeroPos()), nil, zeroPos())

	sig := def.Signature()
	if len(sig) != 2 {
		t.Fatalf("Signature() len = %d, want 2", len(sig))
	}
	if sig[0].(*Name).Value != "int" || sig[1].(*Name).Value != "str" {
		t.Errorf("Signature() = %v", sig)
	}
}

func TestClassMethodsSkipsNonDefLines(t *testing.T) {
	def := NewDef(NewName("m", zeroPos()), nil, NewBody(nil, zeroPos()), nil, zeroPos())
	comment := NewComment("note", zeroPos())
	class := NewClass(NewName("C", zeroPos()), NewBody([]Statement{comment, def}, zeroPos()), zeroPos())

	methods := class.Methods()
	if len(methods) != 1 || methods[0] != def {
		t.Errorf("Methods() = %v, want [%v]", methods, def)
	}
}

func TestImportStringBareForm(t *testing.T) {
	imp := NewImport(NewName("mathlib", zeroPos()), nil, zeroPos())
	if got := imp.String(); got != "import mathlib" {
		t.Errorf("String() = %q", got)
	}
}

func TestImportStringFromForm(t *testing.T) {
	imp := NewImport(NewName("mathlib", zeroPos()), []*Name{NewName("sqrt", zeroPos()), NewName("pow", zeroPos())}, zeroPos())
	if got := imp.String(); got != "from mathlib import sqrt, pow" {
		t.Errorf("String() = %q", got)
	}
}
