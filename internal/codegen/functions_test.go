package codegen

import (
	"strings"
	"testing"

	"github.com/mguinhos/akitac/internal/ast"
	"github.com/mguinhos/akitac/pkg/token"
)

func intArg(name string) *ast.Name {
	n := ast.NewName(name, token.Position{})
	n.SetHint(ast.NewName("int", token.Position{}))
	return n
}

func strArg(name string) *ast.Name {
	n := ast.NewName(name, token.Position{})
	n.SetHint(ast.NewName("str", token.Position{}))
	return n
}

// TestCompileDefFirstDeclarationKeepsItsName exercises spec §8's
// "Integer overload" scenario: the first declaration of a name keeps
// it verbatim as the C-visible function.
func TestCompileDefFirstDeclarationKeepsItsName(t *testing.T) {
	ns := NewNamespace()
	def := ast.NewDef(
		ast.NewName("f", token.Position{}),
		[]*ast.Name{intArg("x")},
		ast.NewBody([]ast.Statement{ast.NewReturn(intArg("x"), token.Position{})}, token.Position{}),
		ast.NewName("int", token.Position{}),
		token.Position{},
	)

	out, err := CompileDef(ns, def, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "int f(int x)") {
		t.Errorf("expected the first overload to keep its bare name, got:\n%s", out)
	}
}

// TestCompileDefOverloadMangledBySignature exercises the redeclaration
// branch: a second `f` overload over a `str` argument must mangle to
// `f_str` rather than colliding with the first C function.
func TestCompileDefOverloadMangledBySignature(t *testing.T) {
	ns := NewNamespace()

	first := ast.NewDef(
		ast.NewName("f", token.Position{}),
		[]*ast.Name{intArg("x")},
		ast.NewBody([]ast.Statement{ast.NewReturn(intArg("x"), token.Position{})}, token.Position{}),
		ast.NewName("int", token.Position{}),
		token.Position{},
	)
	if _, err := CompileDef(ns, first, nil); err != nil {
		t.Fatalf("unexpected error compiling first overload: %v", err)
	}

	second := ast.NewDef(
		ast.NewName("f", token.Position{}),
		[]*ast.Name{strArg("x")},
		ast.NewBody([]ast.Statement{ast.NewReturn(strArg("x"), token.Position{})}, token.Position{}),
		ast.NewName("str", token.Position{}),
		token.Position{},
	)

	out, err := CompileDef(ns, second, nil)
	if err != nil {
		t.Fatalf("unexpected error compiling second overload: %v", err)
	}
	if !strings.HasPrefix(out, "str f_str(str x)") {
		t.Errorf("expected the second overload mangled to f_str, got:\n%s", out)
	}

	overloads, ok := ns.Functions["f"]
	if !ok {
		t.Fatal("expected f to be registered in the function table")
	}
	if len(overloads) != 2 {
		t.Fatalf("expected 2 registered overloads, got %d", len(overloads))
	}
}

// TestCompileClassPrefixesMethodNames exercises method name mangling
// via CompileClass: a method keeps its `Class__method` C name.
func TestCompileClassPrefixesMethodNames(t *testing.T) {
	ns := NewNamespace()
	method := ast.NewDef(
		ast.NewName("greet", token.Position{}),
		nil,
		ast.NewBody(nil, token.Position{}),
		nil,
		token.Position{},
	)
	class := ast.NewClass(ast.NewName("Greeter", token.Position{}),
		ast.NewBody([]ast.Statement{method}, token.Position{}), token.Position{})

	out, err := CompileClass(ns, class)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Greeter__greet") {
		t.Errorf("expected the method to be mangled to Greeter__greet, got:\n%s", out)
	}
}
