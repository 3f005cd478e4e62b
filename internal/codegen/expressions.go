package codegen

import (
	"fmt"
	"strings"

	"github.com/mguinhos/akitac/internal/ast"
	"github.com/mguinhos/akitac/internal/errors"
	"github.com/mguinhos/akitac/pkg/token"
)

// CompileExpression renders operand as C expression text against ns,
// mirroring compile_expression in compiler.py node kind for node kind
// (spec §4.3 "Expression emission").
func CompileExpression(ns *Namespace, operand ast.Expression) (string, error) {
	switch op := operand.(type) {
	case *ast.Name:
		return op.Value, nil

	case *ast.Literal:
		if s, ok := op.Value.(string); ok {
			return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`, nil
		}
		return fmt.Sprint(op.Value), nil

	case *ast.List:
		parts := make([]string, len(op.Items))
		for i, item := range op.Items {
			s, err := CompileExpression(ns, item)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return "{" + strings.Join(parts, ", ") + "}", nil

	case *ast.Item:
		headHint, err := GetHint(ns, op.Head)
		if err != nil {
			return "", err
		}
		if setter, ok := op.Head.(ast.HintSetter); ok {
			setter.SetHint(headHint)
		}
		indice, err := CompileExpression(ns, op.Indice)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s[%s]", op.Head.String(), indice), nil

	case *ast.Attribute:
		tail, ok := op.Tail().(*ast.Call)
		if !ok {
			return "", errors.NewNotImplementedError(op.Pos(), "attribute access without a trailing call")
		}
		mangled := ast.NewName(op.Head.String()+"__"+tail.Name().Value, tail.Pos())
		mangled.SetHint(tail.Hint())
		tail.SetName(mangled)
		return compileCall(ns, tail)

	case *ast.Call:
		return compileCall(ns, op)

	case *ast.BinaryOperation:
		return compileBinaryOperation(ns, op)

	default:
		return "", errors.NewNotImplementedError(operand.Pos(), fmt.Sprintf("expression of type %T", operand))
	}
}

// compileBinaryOperation emits a binary expression, special-casing
// string-hinted operations into strcmp/cat calls: `==`/`!=` on strings
// become strcmp, and any other string operator (there is only `+`)
// becomes a cat() call. A comparison's own Hint() is always `bool`, so
// for `==`/`!=` the left operand's namespace-aware hint decides whether
// the operands are strings.
func compileBinaryOperation(ns *Namespace, op *ast.BinaryOperation) (string, error) {
	hint := op.Hint()
	if op.Operator == token.EQ_EQ || op.Operator == token.NOT_EQ {
		h, err := GetHint(ns, op.Left)
		if err != nil {
			return "", err
		}
		hint = h
	}
	if CompileType(hint).Value == "str" {
		if right, ok := op.Right.(ast.Hinter); ok && right.Hint() == nil {
			h, err := GetHint(ns, op.Right)
			if err != nil {
				return "", err
			}
			if setter, ok := op.Right.(ast.HintSetter); ok {
				setter.SetHint(h)
			}
		}
		if left, ok := op.Left.(ast.Hinter); ok && left.Hint() == nil {
			h, err := GetHint(ns, op.Left)
			if err != nil {
				return "", err
			}
			if setter, ok := op.Left.(ast.HintSetter); ok {
				setter.SetHint(h)
			}
		}

		left, err := CompileExpression(ns, op.Left)
		if err != nil {
			return "", err
		}
		right, err := CompileExpression(ns, op.Right)
		if err != nil {
			return "", err
		}

		switch op.Operator {
		case token.EQ_EQ:
			return fmt.Sprintf("strcmp(%s, %s) == 0", left, right), nil
		case token.NOT_EQ:
			return fmt.Sprintf("strcmp(%s, %s) != 0", left, right), nil
		default:
			return fmt.Sprintf("cat(%s, %s)", left, right), nil
		}
	}

	left, err := CompileExpression(ns, op.Left)
	if err != nil {
		return "", err
	}
	right, err := CompileExpression(ns, op.Right)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s %s", left, op.Operator.String(), right), nil
}

// compileCall resolves call's overload and emits it as a C call
// expression, its mangled callee name with dots collapsed to `__`.
func compileCall(ns *Namespace, call *ast.Call) (string, error) {
	fn, err := getFunction(ns, call)
	if err != nil {
		return "", err
	}

	args := make([]string, len(call.Args))
	for i, arg := range call.Args {
		s, err := CompileExpression(ns, arg)
		if err != nil {
			return "", err
		}
		args[i] = s
	}

	name := strings.ReplaceAll(fn.Name.Value, ".", "__")
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", ")), nil
}
