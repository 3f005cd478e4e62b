package codegen

import (
	"fmt"
	"strings"

	"github.com/mguinhos/akitac/internal/ast"
	"github.com/mguinhos/akitac/internal/errors"
	"github.com/mguinhos/akitac/internal/lexer"
	"github.com/mguinhos/akitac/pkg/token"
)

// CompileBody renders every line of body as indented C statements,
// mirroring compile_body in compiler.py. Unlike CompileDef, it does not
// open a child scope: an if/while/for block shares its enclosing
// function's namespace, exactly as the source's nested `compile`
// closure threads the same namespace argument through every branch.
func CompileBody(ns *Namespace, body *ast.Body, indent int) (string, error) {
	var sb strings.Builder
	ni := newlineIndent(indent)

	for _, line := range body.Lines {
		compiled, err := compileLine(ns, line, indent)
		if err != nil {
			return "", err
		}
		sb.WriteString(ni)
		sb.WriteString(compiled)
	}

	return sb.String(), nil
}

func compileLine(ns *Namespace, line ast.Statement, indent int) (string, error) {
	switch s := line.(type) {
	case *ast.Comment:
		return compileComment(s), nil

	case *ast.KeywordLine:
		return s.Type.String() + ";", nil

	case *ast.Return:
		value, err := CompileExpression(ns, s.Operand)
		if err != nil {
			return "", err
		}
		return "return " + value + ";", nil

	case *ast.Set:
		return compileSet(ns, s, indent)

	case *ast.If:
		cond, body, err := compileConditionAndBody(ns, s.Operand, s.Body, indent)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("if (%s)%s{%s%s}", cond, newlineIndent(indent), body, newlineIndent(indent)), nil

	case *ast.Elif:
		cond, body, err := compileConditionAndBody(ns, s.Operand, s.Body, indent)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("else if (%s)%s{%s%s}", cond, newlineIndent(indent), body, newlineIndent(indent)), nil

	case *ast.Else:
		body, err := CompileBody(ns, s.Body, indent+1)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("else%s{%s%s}", newlineIndent(indent), body, newlineIndent(indent)), nil

	case *ast.While:
		cond, body, err := compileConditionAndBody(ns, s.Operand, s.Body, indent)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("while (%s)%s{%s%s}", cond, newlineIndent(indent), body, newlineIndent(indent)), nil

	case *ast.For:
		return compileFor(ns, s, indent)

	case *ast.ExprStatement:
		return compileExprStatement(ns, s)

	default:
		return "", errors.NewNotImplementedError(line.Pos(), fmt.Sprintf("statement of type %T", line))
	}
}

func compileComment(c *ast.Comment) string {
	if lexer.IsEmitDirective(c.Text) {
		return lexer.EmitDirectiveBody(c.Text)
	}
	return "// " + c.Text
}

func compileConditionAndBody(ns *Namespace, operand ast.Expression, body *ast.Body, indent int) (string, string, error) {
	cond, err := CompileExpression(ns, operand)
	if err != nil {
		return "", "", err
	}
	compiledBody, err := CompileBody(ns, body, indent+1)
	if err != nil {
		return "", "", err
	}
	return cond, compiledBody, nil
}

// compileExprStatement renders a bare expression line: a call for its
// side effects, or a receiver.method(args) attribute call, mangled the
// same way compile_body's own Attribute branch does — without
// preserving any existing hint on the call, unlike the expression-level
// mangling in CompileExpression.
func compileExprStatement(ns *Namespace, s *ast.ExprStatement) (string, error) {
	if attr, ok := s.Expr.(*ast.Attribute); ok {
		tail, ok := attr.Tail().(*ast.Call)
		if !ok {
			return "", errors.NewNotImplementedError(attr.Pos(), "attribute access without a trailing call")
		}
		tail.SetName(ast.NewName(attr.Head.String()+"__"+tail.Name().Value, tail.Pos()))
		call, err := compileCall(ns, tail)
		if err != nil {
			return "", err
		}
		return call + ";", nil
	}

	value, err := CompileExpression(ns, s.Expr)
	if err != nil {
		return "", err
	}
	return value + ";", nil
}

// compileSet renders a declaration or reassignment, checking the
// declared-vs-given type on reassignment and emitting a fresh
// variable's `int len_<name>` companion line when its value is a list literal
// (spec §4.3 "Set emission").
func compileSet(ns *Namespace, s *ast.Set, indent int) (string, error) {
	if s.Target.Hint() == nil {
		h, err := GetHint(ns, s.Target)
		if err != nil {
			return "", err
		}
		s.Target.SetHint(h)
	}
	if s.Target.Hint() == nil {
		h, err := GetHint(ns, s.Value)
		if err != nil {
			return "", err
		}
		s.Target.SetHint(h)
	}

	if existing, ok := ns.FindVariable(s.Target); ok {
		declared := CompileType(existing.Hint()).Value
		given := CompileType(s.Target.Hint()).Value
		if declared != given {
			return "", errors.NewTypeMismatchError(s.Pos(), existing.Value, declared, given)
		}

		value, err := CompileExpression(ns, s.Value)
		if err != nil {
			return "", err
		}

		if declared == "str" && s.Op == token.PLUS_EQ {
			return fmt.Sprintf("%s = cat(%s, %s);", s.Target.Value, s.Target.Value, value), nil
		}

		return fmt.Sprintf("%s %s %s;", s.Target.Value, s.Op.String(), value), nil
	}

	ns.Declare(s.Target)

	value, err := CompileExpression(ns, s.Value)
	if err != nil {
		return "", err
	}

	hint := CompileType(s.Target.Hint()).Value

	if list, ok := s.Value.(*ast.List); ok {
		return fmt.Sprintf("%s %s[] = %s;%sint len_%s = %d;",
			hint, s.Target.Value, value, newlineIndent(indent), s.Target.Value, len(list.Items)), nil
	}

	return fmt.Sprintf("%s %s = %s;", hint, s.Target.Value, value), nil
}
