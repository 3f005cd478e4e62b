// Package units resolves `import`/`from ... import` declarations to
// sibling source files and memoizes their compiled output across a
// single compiler run, the way the source's `compile_filename` would
// if it weren't re-running unconditionally on every Import it sees
// (spec §6 "Module resolution").
package units

import (
	"fmt"
	"path/filepath"
)

// Module is one compiled `.py` source file: its declared module name,
// the source path it was resolved to, and its generated C text once
// compilation has finished.
type Module struct {
	Name     string
	FilePath string
	Output   string
}

// NewModule constructs a Module record for a resolved source file. Its
// Output is empty until the caller fills it in after compilation;
// cyclic imports are detected by the Registry's loading set
// (BeginLoad), not by this record.
func NewModule(name, filePath string) *Module {
	return &Module{Name: name, FilePath: filePath}
}

// IncludeName is the generated `#include` target for this module's
// output file, mirroring `f'#include "{module}.py.c"'`.
func (m *Module) IncludeName() string {
	return fmt.Sprintf("%s.c", filepath.Base(m.FilePath))
}
