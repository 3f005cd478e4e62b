// Package ast defines the Akita abstract syntax tree node types (spec §3).
//
// Nodes are produced once by the parser and then mutated in place by the
// code generator to record inferred hints — the same mutable-AST trade-off
// spec §9 calls out. A Name's Hint field and an expression's Hint() method
// are written to on demand during code generation rather than computed
// ahead of time in a separate pass.
package ast

import "github.com/mguinhos/akitac/pkg/token"

// Node is the base interface every AST node implements.
type Node interface {
	Pos() token.Position
	String() string
}

// Expression is any node that produces a value. Most expression kinds also
// expose a Hint() Expression method (the declared/inferred type), but that
// isn't part of this interface: Item's hint role is contextual (see
// Item.TypeName vs. the namespace-aware inference in internal/codegen), so
// code that needs a hint type-switches or checks the optional Hinter
// interface below, exactly the way the code generator dispatches by node
// type throughout spec §4.3.
type Expression interface {
	Node
}

// Hinter is implemented by expression nodes whose type Hint can be read
// without consulting a namespace: Name, Literal, List, Call, BinaryOperation.
type Hinter interface {
	Hint() Expression
}

// HintSetter is implemented by expression nodes whose Hint can be
// reassigned in place by the code generator: Name, List, Call,
// BinaryOperation.
type HintSetter interface {
	SetHint(Expression)
}

// Statement is any node that appears as a line inside a Body.
type Statement interface {
	Node
}

// Declaration is a top-level item: Def, Class, Comment, or Import.
type Declaration interface {
	Node
}
