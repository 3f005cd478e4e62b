package codegen

import "github.com/mguinhos/akitac/internal/ast"

// CompileType lowers a parsed type hint to the single Name identifying
// its C type: nil becomes "void", an indexed hint like `list[str]`
// becomes the mangled Name "list__str__", and an already-atomic hint
// passes through unchanged (spec §4.3 "Type compilation").
func CompileType(hint ast.Expression) *ast.Name {
	switch h := hint.(type) {
	case nil:
		return ast.NewName("void", zeroPosition)
	case *ast.Item:
		return ast.NewName(h.TypeName(), h.Pos())
	case *ast.Name:
		return h
	default:
		return ast.NewName("", hint.Pos())
	}
}
