package codegen

import (
	"fmt"

	"github.com/mguinhos/akitac/internal/ast"
	"github.com/mguinhos/akitac/internal/errors"
)

// CompileDeclaration renders a single top-level declaration — a Def,
// a Class, or a pass-through Comment — mirroring the Def/Class/Comment
// branches of compiler.py's top-level `compile` function. An Import
// declaration is deliberately not handled here: resolving and
// recompiling the imported file is internal/compiler's job (it needs
// the filesystem and internal/units' module registry, neither of
// which this package touches), so CompileDeclaration reports it as
// not implemented rather than silently ignoring it.
func CompileDeclaration(ns *Namespace, decl ast.Declaration) (string, error) {
	switch d := decl.(type) {
	case *ast.Def:
		return CompileDef(ns, d, nil)
	case *ast.Class:
		return CompileClass(ns, d)
	case *ast.Comment:
		return compileComment(d), nil
	default:
		return "", errors.NewNotImplementedError(decl.Pos(), fmt.Sprintf("top-level declaration of type %T", decl))
	}
}
