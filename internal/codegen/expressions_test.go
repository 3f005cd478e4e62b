package codegen

import (
	"testing"

	"github.com/mguinhos/akitac/internal/ast"
	"github.com/mguinhos/akitac/pkg/token"
)

// TestCompileBinaryOperationStringConcat exercises spec §8's "String
// concat" scenario: `a + b` on two str operands lowers to a cat() call,
// not a literal C `+`.
func TestCompileBinaryOperationStringConcat(t *testing.T) {
	ns := NewNamespace()
	op := ast.NewBinaryOperation(token.PLUS, strArg("a"), strArg("b"), token.Position{})

	out, err := compileBinaryOperation(ns, op)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "cat(a, b)" {
		t.Errorf("expected cat(a, b), got %q", out)
	}
}

// TestCompileBinaryOperationStringComparisonUsesStrcmp exercises spec
// §8's string equality boundary case: `==`/`!=` between two str operands
// lower to strcmp() comparisons. BinaryOperation.Hint() is `bool` for
// every comparison, so compileBinaryOperation decides on the left
// operand's hint instead.
func TestCompileBinaryOperationStringComparisonUsesStrcmp(t *testing.T) {
	ns := NewNamespace()

	eq := ast.NewBinaryOperation(token.EQ_EQ, strArg("a"), strArg("b"), token.Position{})
	out, err := compileBinaryOperation(ns, eq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "strcmp(a, b) == 0" {
		t.Errorf("expected strcmp(a, b) == 0, got %q", out)
	}

	neq := ast.NewBinaryOperation(token.NOT_EQ, strArg("a"), strArg("b"), token.Position{})
	out, err = compileBinaryOperation(ns, neq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "strcmp(a, b) != 0" {
		t.Errorf("expected strcmp(a, b) != 0, got %q", out)
	}
}

// TestCompileBinaryOperationIntArithmeticPassesThrough confirms a
// non-str-hinted binary operation emits a plain C infix expression.
func TestCompileBinaryOperationIntArithmeticPassesThrough(t *testing.T) {
	ns := NewNamespace()
	op := ast.NewBinaryOperation(token.PLUS, intArg("a"), intArg("b"), token.Position{})

	out, err := compileBinaryOperation(ns, op)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "a + b" {
		t.Errorf("expected a + b, got %q", out)
	}
}

// TestCompileCallResolvesOverloadBySignature exercises spec §8's
// "Integer overload" call-site resolution: f(1) must resolve to the
// bare `f` overload, f("a") to the mangled `f_str` overload.
func TestCompileCallResolvesOverloadBySignature(t *testing.T) {
	ns := NewNamespace()
	ns.Functions["f"] = map[string]*ast.Def{
		signatureKey([]ast.Expression{ast.NewName("int", token.Position{})}): ast.NewDef(
			ast.NewName("f", token.Position{}), []*ast.Name{intArg("x")}, ast.NewBody(nil, token.Position{}),
			ast.NewName("int", token.Position{}), token.Position{}),
		signatureKey([]ast.Expression{ast.NewName("str", token.Position{})}): ast.NewDef(
			ast.NewName("f_str", token.Position{}), []*ast.Name{strArg("x")}, ast.NewBody(nil, token.Position{}),
			ast.NewName("str", token.Position{}), token.Position{}),
	}

	intCall := ast.NewCall(ast.NewName("f", token.Position{}),
		[]ast.Expression{ast.NewLiteral(int64(1), false, token.Position{})}, token.Position{})
	out, err := compileCall(ns, intCall)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "f(1)" {
		t.Errorf("expected f(1), got %q", out)
	}

	strCall := ast.NewCall(ast.NewName("f", token.Position{}),
		[]ast.Expression{ast.NewLiteral("a", false, token.Position{})}, token.Position{})
	out, err = compileCall(ns, strCall)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `f_str("a")` {
		t.Errorf(`expected f_str("a"), got %q`, out)
	}
}
