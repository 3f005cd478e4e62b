package parser

import (
	"github.com/mguinhos/akitac/internal/errors"
	"github.com/mguinhos/akitac/pkg/token"
)

// newSyntaxError builds the shared internal/errors.SyntaxError type,
// so a parse failure and a codegen failure carry the same diagnostic
// shape through to internal/errors.Wrap / CompilerError rendering.
func newSyntaxError(pos token.Position, format string, args ...any) *errors.SyntaxError {
	return errors.NewSyntaxError(pos, format, args...)
}
