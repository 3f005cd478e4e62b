package codegen

import "github.com/mguinhos/akitac/pkg/token"

// zeroPosition stands in for a source position when a node is
// synthesized by the code generator itself (e.g. the implicit "void"
// return type) rather than read off a parsed token.
var zeroPosition = token.Position{}
