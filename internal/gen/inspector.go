package gen

import (
	"fmt"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/ygrebnov/proxy/constants"
)

// Options configure a single generation run.
type Options struct {
	// Pattern is the package pattern to load, as understood by go/packages
	// (a directory like "./bakery" or an import path).
	Pattern string

	// Dir is the working directory for package loading; empty means the
	// current directory.
	Dir string

	// Interfaces are the names of the interface types to proxy. Required.
	Interfaces []string

	// PackageName overrides the package name of the generated file. By
	// default the file is generated into the interfaces' own package.
	PackageName string
}

const loadMode = packages.NeedName |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedSyntax |
	packages.NeedImports |
	packages.NeedDeps

// runtimePath is the import path of the proxy runtime the generated code
// registers itself with.
const runtimePath = "github.com/ygrebnov/proxy"

// Inspect loads the target package and resolves the requested interfaces
// into a render-ready file model.
func Inspect(opts Options) (*File, error) {
	if len(opts.Interfaces) == 0 {
		return nil, fmt.Errorf("gen: no interfaces requested")
	}
	pattern := opts.Pattern
	if pattern == "" {
		pattern = "."
	}

	cfg := &packages.Config{
		Mode: loadMode,
		Dir:  opts.Dir,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("gen: loading %s: %w", pattern, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("gen: pattern %s matched %d packages; want exactly one", pattern, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		msgs := make([]string, 0, len(pkg.Errors))
		for _, e := range pkg.Errors {
			msgs = append(msgs, e.Msg)
		}
		return nil, fmt.Errorf("gen: package %s has errors:\n  %s", pkg.PkgPath, strings.Join(msgs, "\n  "))
	}

	pkgName := pkg.Name
	self := pkg.Types
	if opts.PackageName != "" && opts.PackageName != pkg.Name {
		// The generated file lives outside the interfaces' package, so the
		// interfaces' own package must be imported and qualified like any
		// other.
		pkgName = opts.PackageName
		self = nil
	}

	imp := newImportTracker(self)
	file := &File{PackageName: pkgName}
	for _, name := range opts.Interfaces {
		p, err := resolveProxy(pkg.Types, name, imp)
		if err != nil {
			return nil, err
		}
		file.Proxies = append(file.Proxies, *p)
	}
	file.Imports = imp.list()
	return file, nil
}

// resolveProxy resolves one named interface of pkg into a Proxy model.
func resolveProxy(pkg *types.Package, name string, imp *importTracker) (*Proxy, error) {
	obj := pkg.Scope().Lookup(name)
	if obj == nil {
		return nil, fmt.Errorf("gen: package %s has no type %s", pkg.Path(), name)
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("gen: %s.%s is not a type", pkg.Path(), name)
	}
	iface, ok := tn.Type().Underlying().(*types.Interface)
	if !ok {
		return nil, fmt.Errorf("gen: %s.%s is not an interface", pkg.Path(), name)
	}

	// The complete method set, embedded interfaces included, sorted by name
	// for deterministic output.
	methods := make([]*types.Func, 0, iface.NumMethods())
	for i := 0; i < iface.NumMethods(); i++ {
		methods = append(methods, iface.Method(i))
	}
	sort.Slice(methods, func(i, j int) bool { return methods[i].Name() < methods[j].Name() })

	typeName := name + "Proxy"
	p := &Proxy{
		InterfaceRef:    types.TypeString(tn.Type(), imp.qualify),
		TypeName:        typeName,
		ConstructorName: constructorName(typeName),
	}
	for _, m := range methods {
		if !m.Exported() {
			return nil, fmt.Errorf(
				"gen: %s.%s: operation %s is unexported and cannot be proxied",
				pkg.Path(), name, m.Name(),
			)
		}
		mm, err := buildMethod(m, imp)
		if err != nil {
			return nil, fmt.Errorf("gen: %s.%s.%s: %w", pkg.Path(), name, m.Name(), err)
		}
		p.Methods = append(p.Methods, mm)
	}
	return p, nil
}

// buildMethod pre-renders every signature fragment of one operation.
func buildMethod(m *types.Func, imp *importTracker) (Method, error) {
	sig, ok := m.Type().(*types.Signature)
	if !ok {
		return Method{}, fmt.Errorf("unexpected non-signature type %s", m.Type())
	}

	params := sig.Params()
	// Reserved identifiers of the generated method bodies.
	used := map[string]bool{"p": true, "backing": true}
	decls := make([]string, 0, params.Len())
	args := make([]string, 0, params.Len())
	slotParams := make([]string, 0, params.Len())
	for i := 0; i < params.Len(); i++ {
		v := params.At(i)
		name := paramName(v.Name(), i, used)

		var typeStr string
		if sig.Variadic() && i == params.Len()-1 {
			slice, ok := v.Type().(*types.Slice)
			if !ok {
				return Method{}, fmt.Errorf("variadic parameter %s is not a slice", name)
			}
			typeStr = "..." + types.TypeString(slice.Elem(), imp.qualify)
			args = append(args, name+"...")
		} else {
			typeStr = types.TypeString(v.Type(), imp.qualify)
			args = append(args, name)
		}
		decls = append(decls, name+" "+typeStr)
		slotParams = append(slotParams, typeStr)
	}

	results := sig.Results()
	outs := make([]string, 0, results.Len())
	for i := 0; i < results.Len(); i++ {
		outs = append(outs, types.TypeString(results.At(i).Type(), imp.qualify))
	}

	return Method{
		Name:       m.Name(),
		SlotField:  m.Name() + constants.SlotSuffix,
		SlotType:   "func(" + strings.Join(slotParams, ", ") + ")" + resultClause(outs),
		ParamDecls: strings.Join(decls, ", "),
		ArgNames:   strings.Join(args, ", "),
		ResultDecl: resultClause(outs),
		HasResults: len(outs) > 0,
	}, nil
}

// resultClause renders a result list including its leading space; it returns
// an empty string for no results.
func resultClause(outs []string) string {
	switch len(outs) {
	case 0:
		return ""
	case 1:
		return " " + outs[0]
	default:
		return " (" + strings.Join(outs, ", ") + ")"
	}
}

// paramName picks an identifier for a parameter, falling back to a
// positional name when the declaration has none or it collides with an
// identifier the generated body reserves.
func paramName(name string, i int, used map[string]bool) string {
	if name == "" || name == "_" || used[name] {
		name = fmt.Sprintf("arg%d", i)
	}
	used[name] = true
	return name
}

// constructorName derives the constructor name from the proxy type name,
// preserving the type's exportedness.
func constructorName(typeName string) string {
	if r := typeName[0]; r >= 'a' && r <= 'z' {
		return "new" + strings.ToUpper(typeName[:1]) + typeName[1:]
	}
	return "New" + typeName
}
