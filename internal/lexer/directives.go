package lexer

import "strings"

// emitPrefix is the pass-through directive prefix (spec §6 "`# emit`
// directive"): a comment whose trimmed text begins with this is lifted
// verbatim into the generated C instead of becoming a `// ...` comment.
const emitPrefix = "emit "

// IsEmitDirective reports whether a trimmed comment body is an `emit`
// pass-through directive.
func IsEmitDirective(commentText string) bool {
	return strings.HasPrefix(commentText, emitPrefix)
}

// EmitDirectiveBody returns the raw C text carried by an `emit` directive,
// i.e. the comment body with the `emit ` prefix removed. Callers must
// check IsEmitDirective first.
func EmitDirectiveBody(commentText string) string {
	return strings.TrimPrefix(commentText, emitPrefix)
}
