// Package codegen translates an internal/ast tree into C source text,
// resolving overloads and inferring hints against a running Namespace
// exactly as compile.py's compile_* functions do (spec §4.3).
package codegen

import (
	"fmt"
	"strings"

	"github.com/mguinhos/akitac/internal/ast"
)

// Namespace tracks the variables in scope and the function overload
// table accumulated so far. Child() clones share the Functions
// table (new overloads registered in a nested scope are visible to
// the caller), matching `Namespace(list(namespace.variables),
// namespace.functions)` in compile.py: a fresh variable list, the same
// functions dict.
type Namespace struct {
	Variables []*ast.Name
	Functions map[string]map[string]*ast.Def
}

// NewNamespace creates an empty top-level namespace.
func NewNamespace() *Namespace {
	return &Namespace{Functions: map[string]map[string]*ast.Def{}}
}

// Child returns a namespace for a nested scope (a function body): its
// own variable list seeded with the parent's, sharing the parent's
// function table.
func (ns *Namespace) Child() *Namespace {
	vars := make([]*ast.Name, len(ns.Variables))
	copy(vars, ns.Variables)
	return &Namespace{Variables: vars, Functions: ns.Functions}
}

// FindVariable returns the in-scope variable matching name by value,
// the way `operand in namespace.variables` does (Name equality is
// value-only).
func (ns *Namespace) FindVariable(name *ast.Name) (*ast.Name, bool) {
	for _, v := range ns.Variables {
		if v.Equal(name) {
			return v, true
		}
	}
	return nil, false
}

// Declare appends name to the namespace's variable list.
func (ns *Namespace) Declare(name *ast.Name) {
	ns.Variables = append(ns.Variables, name)
}

// signatureKey joins a tuple of hint expressions into a single map key,
// standing in for the source's tuple-of-Name dict key. It encodes each
// element's Go type alongside its text on purpose: a function is
// always *registered* under its declared hints run through CompileType
// (always producing *ast.Name), but a call site's argument hints come
// from a raw GetHint that can still return an *ast.Item (e.g. an
// unindexed `list[str]`-typed variable). Folding both shapes to the
// same string would silently "fix" a real resolution difference the
// source has: a bare Name hint and an Item hint with the same mangled
// text are NOT the same dict key there (Item defines no custom
// equality), so a call whose argument hint never got compiled down to
// a Name can legitimately fail to match an otherwise-identical
// overload. Keeping the type tag here reproduces that deterministically
// instead of relying on Python object-identity behavior.
func signatureKey(hints []ast.Expression) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		switch v := h.(type) {
		case nil:
			parts[i] = "nil:"
		case *ast.Name:
			parts[i] = "Name:" + v.Value
		case *ast.Item:
			parts[i] = "Item:" + v.TypeName()
		default:
			parts[i] = fmt.Sprintf("%T:%s", h, h.String())
		}
	}
	return strings.Join(parts, "|")
}
