package ast

import (
	"strings"

	"github.com/mguinhos/akitac/pkg/token"
)

// Def is a function/method declaration: `def name(args) [-> rethint]: body`.
type Def struct {
	Name    *Name
	Args    []*Name
	Body    *Body
	RetHint Expression // nil if no `-> hint` was given
	pos     token.Position
}

func NewDef(name *Name, args []*Name, body *Body, rethint Expression, pos token.Position) *Def {
	return &Def{Name: name, Args: args, Body: body, RetHint: rethint, pos: pos}
}

func (d *Def) Pos() token.Position { return d.pos }

func (d *Def) String() string {
	parts := make([]string, len(d.Args))
	for i, a := range d.Args {
		parts[i] = a.Value
	}
	return "def " + d.Name.Value + "(" + strings.Join(parts, ", ") + "):\n" + d.Body.String()
}

// Signature returns the tuple of argument hints identifying this
// function's overload, exactly as declared (uncompiled). internal/codegen
// runs each element through CompileType before registering an overload
// under it (see its asymmetric registration, documented in SPEC_FULL.md).
func (d *Def) Signature() []Expression {
	sig := make([]Expression, len(d.Args))
	for i, a := range d.Args {
		sig[i] = a.Hint()
	}
	return sig
}

// Class is `class name: body`, whose body lines are all Defs (spec §3).
type Class struct {
	Name *Name
	Body *Body
	pos  token.Position
}

func NewClass(name *Name, body *Body, pos token.Position) *Class {
	return &Class{Name: name, Body: body, pos: pos}
}

func (c *Class) Pos() token.Position { return c.pos }
func (c *Class) String() string      { return "class " + c.Name.Value + ":\n" + c.Body.String() }

// Methods returns the Class body's lines cast to *Def, silently skipping
// any non-Def line. A well-formed class body contains only Defs; the
// parser does not reject other lines in a class body, so they are
// dropped here.
func (c *Class) Methods() []*Def {
	defs := make([]*Def, 0, len(c.Body.Lines))
	for _, line := range c.Body.Lines {
		if def, ok := line.(*Def); ok {
			defs = append(defs, def)
		}
	}
	return defs
}
