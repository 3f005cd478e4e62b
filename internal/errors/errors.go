// Package errors defines the compiler's diagnostic taxonomy — one type per
// failure kind produced by the lexer, parser, and code generator — plus a
// CompilerError formatter that renders a diagnostic with source-line and
// caret context, the way the teacher's own internal/errors formats
// position-carrying failures.
package errors

import (
	"fmt"

	"github.com/mguinhos/akitac/pkg/token"
)

// SyntaxError is a grammar violation: a missing delimiter, an
// unexpected token, or a malformed declaration (spec §7).
type SyntaxError struct {
	Pos     token.Position
	Message string
}

func NewSyntaxError(pos token.Position, format string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: syntax error: %s", e.Pos, e.Message)
}

// NameError is raised when a call references a function name with no
// registered overload at all (spec §7).
type NameError struct {
	Pos  token.Position
	Name string
}

func NewNameError(pos token.Position, name string) *NameError {
	return &NameError{Pos: pos, Name: name}
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%s: there is no function named `%s`", e.Pos, e.Name)
}

// SignatureError is raised when a function name is known but no
// overload matches the call's argument types (spec §7).
type SignatureError struct {
	Pos       token.Position
	Name      string
	Signature []string
}

func NewSignatureError(pos token.Position, name string, signature []string) *SignatureError {
	return &SignatureError{Pos: pos, Name: name, Signature: signature}
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("%s: function with signature `%s(%s)` does not exist", e.Pos, e.Name, joinOrUnknown(e.Signature))
}

func joinOrUnknown(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		if p == "" {
			p = "?"
		}
		out += p
	}
	return out
}

// TypeMismatchError is raised when an assignment's value type disagrees
// with a variable's already-declared type (spec §7).
type TypeMismatchError struct {
	Pos      token.Position
	Variable string
	Declared string
	Given    string
}

func NewTypeMismatchError(pos token.Position, variable, declared, given string) *TypeMismatchError {
	return &TypeMismatchError{Pos: pos, Variable: variable, Declared: declared, Given: given}
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: variable `%s` is of type `%s`, but a `%s` was provided", e.Pos, e.Variable, e.Declared, e.Given)
}

// NotImplementedError is raised for a structurally valid but
// unsupported construct: an Attribute expression whose tail is not a
// Call (spec §3, §7), or an expression, statement or top-level node
// kind the code generator has no case for.
type NotImplementedError struct {
	Pos     token.Position
	Feature string
}

func NewNotImplementedError(pos token.Position, feature string) *NotImplementedError {
	return &NotImplementedError{Pos: pos, Feature: feature}
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s: not implemented: %s", e.Pos, e.Feature)
}
