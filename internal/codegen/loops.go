package codegen

import (
	"fmt"

	"github.com/mguinhos/akitac/internal/ast"
)

// compileFor renders a `for name in operand:` loop as one of four C
// lowerings chosen by operand's compiled hint, matching the four
// branches of compile_body's For case: a str_iterator_p call result,
// direct character iteration over a str, iteration over a list__str__
// literal, and iteration over a named list__str__ variable — falling
// back to a plain integer range loop when none of those hints apply.
//
// Where compile_body unwraps an Item-shaped operand hint via its own
// `.hint` property before the string comparisons, this runs the hint
// through CompileType instead: both reduce an indexed hint like
// `list[str]` to the same "list__str__" string, but CompileType never
// risks the attribute lookup failing on a hint that is itself an Item.
func compileFor(ns *Namespace, s *ast.For, indent int) (string, error) {
	var hint ast.Expression
	if hinter, ok := s.Operand.(ast.Hinter); ok {
		hint = hinter.Hint()
	}
	if hint == nil {
		h, err := GetHint(ns, s.Operand)
		if err != nil {
			return "", err
		}
		if setter, ok := s.Operand.(ast.HintSetter); ok {
			setter.SetHint(h)
		}
		hint = h
	}

	typeName := CompileType(hint).Value
	ni := newlineIndent(indent)

	switch typeName {
	case "str_iterator_p":
		declareLoopVar(ns, s.Name, "str")
		operand, err := CompileExpression(ns, s.Operand)
		if err != nil {
			return "", err
		}
		body, err := CompileBody(ns, s.Body, indent+1)
		if err != nil {
			return "", err
		}
		name := s.Name.Value
		return fmt.Sprintf(
			"str_iterator_p %s_iterator = %s;%sfor (str %s=next(%s_iterator); !%s_iterator->stopped; %s = next(%s_iterator))%s{%s%s}",
			name, operand, ni, name, name, name, name, name, ni, body, ni,
		), nil

	case "str":
		declareLoopVar(ns, s.Name, "char")
		operand, err := CompileExpression(ns, s.Operand)
		if err != nil {
			return "", err
		}
		body, err := CompileBody(ns, s.Body, indent+1)
		if err != nil {
			return "", err
		}
		name := s.Name.Value
		return fmt.Sprintf(
			"str %s_iterator = %s;%sfor (char %s=%s_iterator++[0]; %s != '\\0'; %s = %s_iterator++[0])%s{%s%s}",
			name, operand, ni, name, name, name, name, name, ni, body, ni,
		), nil

	case "list__str__":
		declareLoopVar(ns, s.Name, "str")
		body, err := CompileBody(ns, s.Body, indent+1)
		if err != nil {
			return "", err
		}
		name := s.Name.Value

		if list, ok := s.Operand.(*ast.List); ok {
			operand, err := CompileExpression(ns, s.Operand)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf(
				"list__str__ items[] = %s;%sint len_items = %d;%sint index_items = 0;%s%sfor (str %s=items[index_items]; index_items < len_items; %s = items[++index_items])%s{%s%s}",
				operand, ni, len(list.Items), ni, ni, ni, name, name, ni, body, ni,
			), nil
		}

		operandName := s.Operand.String()
		return fmt.Sprintf(
			"int index_%s = 0;%s%sfor (str %s=%s[index_%s]; index_%s < len_%s; %s = %s[++index_%s])%s{%s%s}",
			operandName, ni, ni, name, operandName, operandName, operandName, operandName, name, operandName, operandName, ni, body, ni,
		), nil
	}

	declareLoopVar(ns, s.Name, "int")
	operand, err := CompileExpression(ns, s.Operand)
	if err != nil {
		return "", err
	}
	body, err := CompileBody(ns, s.Body, indent+1)
	if err != nil {
		return "", err
	}
	name := s.Name.Value
	return fmt.Sprintf("for (int %s=0; %s < %s; %s++)%s{%s%s}", name, name, operand, name, ni, body, ni), nil
}

func declareLoopVar(ns *Namespace, name *ast.Name, hintValue string) {
	if _, ok := ns.FindVariable(name); ok {
		return
	}
	name.SetHint(ast.NewName(hintValue, zeroPosition))
	ns.Declare(name)
}
