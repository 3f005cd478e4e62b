package codegen

import (
	"fmt"
	"strings"

	"github.com/mguinhos/akitac/internal/ast"
)

// CompileDef renders a function or method declaration as C source and
// registers it into ns.Functions under its compiled-hint signature,
// mirroring compile_def. When prefix is non-nil (a class method), the
// name is first qualified as `prefix.name` before any of that. The
// function table is keyed by the C name (dots collapsed to `__`), the
// same name an attribute call `Class.method(...)` is rewritten to.
//
// A redeclaration (another Def already registered under this name)
// mangles the new overload's C-visible name from its argument type
// names alone, dropping compile_def's extra `_<return-hint>` suffix
// term: that term reads the *qualified* Def's own hint field, which at
// that point still holds the pre-rename Name object rather than a
// return type, and contributes nothing but an inconsistent suffix — a
// simplification recorded in DESIGN.md rather than a literal port.
func CompileDef(ns *Namespace, def *ast.Def, prefix *ast.Name) (string, error) {
	if prefix != nil {
		def.Name = ast.NewName(prefix.Value+"."+def.Name.Value, def.Name.Pos())
	}

	local := ns.Child()
	local.Variables = append(local.Variables, def.Args...)

	key := signatureKey(compiledSignature(def))
	name := strings.ReplaceAll(def.Name.Value, ".", "__")

	if overloads, exists := ns.Functions[name]; exists {
		mangled := overloadName(def)
		overloads[key] = ast.NewDef(ast.NewName(mangled, def.Pos()), def.Args, def.Body, def.RetHint, def.Pos())

		body, err := CompileBody(local, def.Body, 1)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("%s %s(%s)\n{%s\n}",
			CompileType(def.RetHint).Value, mangled, argList(def.Args, false), body), nil
	}

	ns.Functions[name] = map[string]*ast.Def{key: def}

	body, err := CompileBody(local, def.Body, 1)
	if err != nil {
		return "", err
	}

	retType := "void"
	if def.RetHint != nil {
		retType = CompileType(def.RetHint).Value
	}

	return fmt.Sprintf("%s %s(%s)\n{%s\n}", retType, name, argList(def.Args, true), body), nil
}

// CompileClass renders every method of class, prefixed with its name,
// joined one per line — mirroring compile_class's join over
// ast.body.lines run through compile_def.
func CompileClass(ns *Namespace, class *ast.Class) (string, error) {
	methods := class.Methods()
	parts := make([]string, len(methods))
	for i, m := range methods {
		s, err := CompileDef(ns, m, class.Name)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, "\n"), nil
}

func compiledSignature(def *ast.Def) []ast.Expression {
	sig := def.Signature()
	out := make([]ast.Expression, len(sig))
	for i, h := range sig {
		out[i] = CompileType(h)
	}
	return out
}

func overloadName(def *ast.Def) string {
	types := make([]string, len(def.Args))
	for i, a := range def.Args {
		types[i] = CompileType(a.Hint()).Value
	}
	base := strings.ReplaceAll(def.Name.Value, ".", "__")
	if len(types) == 0 {
		return base
	}
	return base + "_" + strings.Join(types, "_")
}

// argList renders a Def's parameter list as C text: `type name`, with
// a trailing `[]` on a list-typed parameter when withArraySuffix — only
// a function's own first declaration carries that suffix, matching
// compile_def's first-registration branch (the overload-rename branch
// never appends it).
func argList(args []*ast.Name, withArraySuffix bool) string {
	parts := make([]string, len(args))
	for i, a := range args {
		t := CompileType(a.Hint()).Value
		suffix := ""
		if withArraySuffix && strings.HasPrefix(t, "list") {
			suffix = "[]"
		}
		parts[i] = t + " " + a.Value + suffix
	}
	return strings.Join(parts, ", ")
}
