// Package compiler wires internal/lexer, internal/parser, internal/codegen,
// and internal/units together into the single public entry point a
// command-line driver calls: read one source file, compile it (and,
// transitively, every file it imports) to C, mirroring compile_filename
// and the top-level compile() dispatcher in compiler.py (spec §6).
package compiler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mguinhos/akitac/internal/ast"
	"github.com/mguinhos/akitac/internal/codegen"
	"github.com/mguinhos/akitac/internal/errors"
	"github.com/mguinhos/akitac/internal/lexer"
	"github.com/mguinhos/akitac/internal/parser"
	"github.com/mguinhos/akitac/internal/units"
)

// Compile translates the file at path into C, along with every module
// it transitively imports, writing each imported module's output
// alongside its source as `<module>.py.c` and returning the entry
// file's own generated text.
func Compile(path string) (string, error) {
	reg := units.NewRegistry([]string{filepath.Dir(path)})
	ns := codegen.NewNamespace()
	return CompileFile(path, reg, ns)
}

// CompileFile compiles a single file against a shared module registry
// and namespace, so a multi-file program's overload table and import
// cache carry across the whole import graph rather than resetting per
// file.
func CompileFile(path string, reg *units.Registry, ns *codegen.Namespace) (string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read %s: %w", path, err)
	}

	output, err := compileSource(string(source), path, reg, ns)
	if err != nil {
		return "", wrapIfNeeded(err, string(source), path)
	}
	return output, nil
}

func compileSource(source, path string, reg *units.Registry, ns *codegen.Namespace) (string, error) {
	l := lexer.New(source)
	p := parser.New(l)

	decls, err := p.Parse()
	if err != nil {
		return "", err
	}

	dir := filepath.Dir(path)

	var sb strings.Builder
	for _, decl := range decls {
		var text string
		var err error

		if imp, ok := decl.(*ast.Import); ok {
			text, err = compileImport(imp, dir, reg, ns)
		} else {
			text, err = codegen.CompileDeclaration(ns, decl)
		}

		if err != nil {
			return "", err
		}

		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// compileImport resolves an Import's module to a sibling source file,
// compiles it if this is the first time it's been seen in this run,
// and returns the `#include` line compile() would have emitted in its
// place — the source's own Import branch of the top-level `compile`
// function, split out because it alone needs the filesystem and the
// module registry.
func compileImport(imp *ast.Import, dir string, reg *units.Registry, ns *codegen.Namespace) (string, error) {
	name := imp.Module.Value

	if mod, ok := reg.Get(name); ok {
		return includeLine(mod), nil
	}

	if err := reg.BeginLoad(name); err != nil {
		return "", err
	}
	defer reg.EndLoad(name)

	modulePath, err := reg.Resolve(name, []string{dir})
	if err != nil {
		return "", err
	}

	output, err := CompileFile(modulePath, reg, ns)
	if err != nil {
		return "", err
	}

	mod := units.NewModule(name, modulePath)
	mod.Output = output

	if err := os.WriteFile(modulePath+".c", []byte(output), 0644); err != nil {
		return "", fmt.Errorf("cannot write %s.c: %w", modulePath, err)
	}

	if err := reg.Register(name, mod); err != nil {
		return "", err
	}

	return includeLine(mod), nil
}

func includeLine(mod *units.Module) string {
	return fmt.Sprintf("#include %q", mod.IncludeName())
}

// wrapIfNeeded attaches source-line/caret context the first time an
// error crosses a file boundary, and leaves an already-wrapped error
// (one that surfaced from a recursively compiled import, with its own
// file's context attached) untouched as it propagates back up.
func wrapIfNeeded(err error, source, path string) error {
	if _, ok := err.(*errors.CompilerError); ok {
		return err
	}
	return errors.Wrap(err, source, path)
}
