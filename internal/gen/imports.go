package gen

import (
	"fmt"
	"go/types"
	"sort"
)

// importTracker assigns local names to the packages referenced by rendered
// signatures. It doubles as the qualifier passed to types.TypeString.
type importTracker struct {
	// self is the package the generated file lives in; its types are not
	// qualified. nil when generating into a foreign package.
	self *types.Package

	byPath map[string]string // import path -> local name
	byName map[string]string // local name -> import path
}

func newImportTracker(self *types.Package) *importTracker {
	t := &importTracker{
		self:   self,
		byPath: make(map[string]string),
		byName: make(map[string]string),
	}
	// The runtime import is always present; reserve its name first so a
	// colliding signature import gets the deduplicated name instead.
	t.byPath[runtimePath] = "proxy"
	t.byName["proxy"] = runtimePath
	return t
}

// qualify returns the local name for p, registering an import on first use.
func (t *importTracker) qualify(p *types.Package) string {
	if p == nil || (t.self != nil && p.Path() == t.self.Path()) {
		return ""
	}
	if name, ok := t.byPath[p.Path()]; ok {
		return name
	}
	name := p.Name()
	for i := 2; t.byName[name] != ""; i++ {
		name = fmt.Sprintf("%s%d", p.Name(), i)
	}
	t.byPath[p.Path()] = name
	t.byName[name] = p.Path()
	return name
}

// list returns all registered imports sorted by path.
func (t *importTracker) list() []Import {
	imports := make([]Import, 0, len(t.byPath))
	for path, alias := range t.byPath {
		imports = append(imports, Import{Alias: alias, Path: path})
	}
	sort.Slice(imports, func(i, j int) bool { return imports[i].Path < imports[j].Path })
	return imports
}
