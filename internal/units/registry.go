package units

import (
	"fmt"
	"os"
	"path/filepath"
)

// Registry tracks every module compiled so far in this run (so a
// second `import foo` anywhere else in the tree reuses the first
// compilation instead of re-running it) and which modules are
// currently mid-compilation (so an import cycle is reported instead of
// recursing forever). Neither the cache nor the cycle guard has a
// counterpart in compile_filename, which recompiles an imported file
// from scratch on every Import node and has no protection against a
// module importing itself, directly or transitively — both are
// supplements this package adds on top of the source's behavior.
type Registry struct {
	searchPaths []string
	modules     map[string]*Module
	loading     map[string]bool
}

// NewRegistry creates a registry that resolves bare module names by
// searching paths in order, defaulting to the current directory when
// none are given.
func NewRegistry(searchPaths []string) *Registry {
	if searchPaths == nil {
		searchPaths = []string{"."}
	}
	return &Registry{
		searchPaths: searchPaths,
		modules:     map[string]*Module{},
		loading:     map[string]bool{},
	}
}

// Resolve finds the `<name>.py` source file for a bare module name,
// trying overridePaths first (the directory of the importing file)
// and falling back to the registry's own search paths.
func (r *Registry) Resolve(name string, overridePaths []string) (string, error) {
	for _, dir := range append(append([]string{}, overridePaths...), r.searchPaths...) {
		candidate := filepath.Join(dir, name+".py")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("cannot load module %q: no %s.py found in search paths", name, name)
}

// Get returns the module registered under name, if compilation of it
// has already finished.
func (r *Registry) Get(name string) (*Module, bool) {
	m, ok := r.modules[name]
	return m, ok
}

// Register records a fully compiled module, refusing a second
// registration under the same name.
func (r *Registry) Register(name string, m *Module) error {
	if _, exists := r.modules[name]; exists {
		return fmt.Errorf("module %q is already registered", name)
	}
	r.modules[name] = m
	return nil
}

// BeginLoad marks name as currently compiling, returning an error if
// it is already mid-compilation — an import cycle.
func (r *Registry) BeginLoad(name string) error {
	if r.loading[name] {
		return fmt.Errorf("circular dependency: module %q imports itself, directly or transitively", name)
	}
	r.loading[name] = true
	return nil
}

// EndLoad clears name's in-progress marker, whether it finished
// successfully or failed.
func (r *Registry) EndLoad(name string) {
	delete(r.loading, name)
}

// Unregister removes a module, mainly for test isolation.
func (r *Registry) Unregister(name string) {
	delete(r.modules, name)
}

// Clear removes every registered module.
func (r *Registry) Clear() {
	r.modules = map[string]*Module{}
}

// List returns every registered module's name, in no particular order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	return names
}
