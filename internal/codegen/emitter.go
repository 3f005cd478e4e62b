package codegen

import "strings"

// softTab is the C indentation unit, matching SOFTTAB in compiler.py.
const softTab = "    "

// newlineIndent returns a newline followed by indent repetitions of
// softTab — the NEWLINEINDENT local compile_body recomputes for every
// nesting level it descends into.
func newlineIndent(indent int) string {
	return "\n" + strings.Repeat(softTab, indent)
}
