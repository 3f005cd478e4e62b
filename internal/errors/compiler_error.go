package errors

import (
	"fmt"
	"strings"

	"github.com/mguinhos/akitac/pkg/token"
)

// CompilerError wraps any positioned diagnostic with the source text it
// came from, so it can render a source line and a caret pointing at the
// offending column, the way the teacher's own CompilerError does.
type CompilerError struct {
	Pos     token.Position
	Message string
	Source  string
	File    string
}

// NewCompilerError builds a CompilerError from a position and message
// together with the file's source text and name. Wrap derives pos and
// message from an existing diagnostic.
func NewCompilerError(pos token.Position, message, source, file string) *CompilerError {
	return &CompilerError{Pos: pos, Message: message, Source: source, File: file}
}

// Wrap builds a CompilerError from any diagnostic produced by the
// lexer/parser/codegen packages, reading its position from the Pos
// field each of SyntaxError/NameError/SignatureError/
// TypeMismatchError/NotImplementedError carries; any other error gets
// the zero Position.
func Wrap(err error, source, file string) *CompilerError {
	pos, ok := positionOf(err)
	if !ok {
		pos = token.Position{}
	}
	return NewCompilerError(pos, err.Error(), source, file)
}

func positionOf(err error) (token.Position, bool) {
	switch e := err.(type) {
	case *SyntaxError:
		return e.Pos, true
	case *NameError:
		return e.Pos, true
	case *SignatureError:
		return e.Pos, true
	case *TypeMismatchError:
		return e.Pos, true
	case *NotImplementedError:
		return e.Pos, true
	default:
		return token.Position{}, false
	}
}

func (e *CompilerError) Error() string {
	return e.Format(false)
}

// Format renders the diagnostic, optionally with ANSI color, as a
// header line carrying the position and the message, then (when the
// source line is available) the offending source line and a caret.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "%s:%d:%d: ", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "%d:%d: ", e.Pos.Line, e.Pos.Column)
	}
	sb.WriteString(e.Message)

	if line := e.sourceLine(e.Pos.Line); line != "" {
		sb.WriteString("\n")
		lineNum := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNum)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNum)+max(e.Pos.Column-1, 0)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
	}

	return sb.String()
}

func (e *CompilerError) sourceLine(n int) string {
	if e.Source == "" || n < 1 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if n > len(lines) {
		return ""
	}
	return lines[n-1]
}

