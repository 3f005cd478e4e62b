package codegen

import (
	"github.com/mguinhos/akitac/internal/ast"
	"github.com/mguinhos/akitac/internal/errors"
)

// GetHint infers operand's type against ns, consulting in-scope
// variable declarations and the function table — the namespace-aware
// half of hint inference that an AST node's own context-free Hint()
// method can't do (spec §4.3 "Hint inference"). It mirrors get_hint in
// compiler.py member for member, including its side effect of writing
// the inferred hint back onto BinaryOperation/List nodes as it goes.
func GetHint(ns *Namespace, operand ast.Expression) (ast.Expression, error) {
	switch op := operand.(type) {
	case *ast.Name:
		if v, ok := ns.FindVariable(op); ok {
			return v.Hint(), nil
		}
		return op.Hint(), nil

	case *ast.Call:
		if op.Name().Value == "str" {
			return ast.NewName("str", op.Pos()), nil
		}
		fn, err := getFunction(ns, op)
		if err != nil {
			return nil, err
		}
		return fn.RetHint, nil

	case *ast.BinaryOperation:
		h, err := GetHint(ns, op.Left)
		if err != nil {
			return nil, err
		}
		op.SetHint(h)
		return op.Hint(), nil

	case *ast.Item:
		headHint, err := GetHint(ns, op.Head)
		if err != nil {
			return nil, err
		}
		switch CompileType(headHint).Value {
		case "str":
			return ast.NewName("char", op.Pos()), nil
		case "list__str__":
			return ast.NewName("str", op.Pos()), nil
		}
		return headHint, nil

	case *ast.Attribute:
		tail, ok := op.Tail().(*ast.Call)
		if !ok {
			return nil, errors.NewNotImplementedError(op.Pos(), "attribute access without a trailing call")
		}
		tail.SetName(ast.NewName(op.Head.String()+"__"+tail.Name().Value, tail.Pos()))
		return GetHint(ns, tail)

	case *ast.List:
		if len(op.Items) == 0 {
			return nil, errors.NewSyntaxError(op.Pos(), "cannot infer the type of an empty list literal")
		}
		elemHint, err := GetHint(ns, op.Items[0])
		if err != nil {
			return nil, err
		}
		op.SetHint(elemHint)
		return ast.NewName("list__"+CompileType(elemHint).Value+"__", op.Pos()), nil

	case ast.Hinter:
		return op.Hint(), nil

	default:
		return nil, nil
	}
}

// getFunction resolves call to the overload matching the inferred
// hints of its arguments, raising NameError when the function name
// itself is unknown and SignatureError when it's known but no
// registered overload matches (spec §7).
func getFunction(ns *Namespace, call *ast.Call) (*ast.Def, error) {
	overloads, ok := ns.Functions[call.Name().Value]
	if !ok {
		return nil, errors.NewNameError(call.Pos(), call.Name().Value)
	}

	sig := make([]ast.Expression, len(call.Args))
	for i, arg := range call.Args {
		h, err := GetHint(ns, arg)
		if err != nil {
			return nil, err
		}
		sig[i] = h
	}

	def, ok := overloads[signatureKey(sig)]
	if !ok {
		names := make([]string, len(sig))
		for i, h := range sig {
			if h == nil {
				names[i] = ""
				continue
			}
			names[i] = h.String()
		}
		return nil, errors.NewSignatureError(call.Pos(), call.Name().Value, names)
	}

	return def, nil
}
