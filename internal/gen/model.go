package gen

// File is the render-ready model of one generated proxy source file.
type File struct {
	// PackageName is the package clause of the generated file.
	PackageName string

	// Imports lists every import the rendered signatures and the proxy
	// runtime need, in deterministic order.
	Imports []Import

	// Proxies holds one entry per requested interface.
	Proxies []Proxy
}

// Import is a single named import of the generated file.
type Import struct {
	// Alias is the local name the import is bound to.
	Alias string

	// Path is the import path.
	Path string
}

// Proxy describes the generated proxy type for one interface.
type Proxy struct {
	// InterfaceRef is the interface type as written in the generated file,
	// qualified if the file is generated outside the interface's package.
	InterfaceRef string

	// TypeName is the name of the generated proxy struct.
	TypeName string

	// ConstructorName is the name of the generated constructor.
	ConstructorName string

	// Methods holds the interface operations in deterministic (name) order.
	Methods []Method
}

// Method is one operation of the proxied interface with all signature
// fragments pre-rendered for the template.
type Method struct {
	// Name is the operation name.
	Name string

	// SlotField is the name of the slot field holding the operation's
	// current binding.
	SlotField string

	// SlotType is the func type of the slot, e.g. "func(string) (int, error)".
	SlotType string

	// ParamDecls is the parameter list of the forwarding method, e.g.
	// "name string, parts ...string".
	ParamDecls string

	// ArgNames is the argument list passed through to the slot, e.g.
	// "name, parts...".
	ArgNames string

	// ResultDecl is the result clause including a leading space, e.g.
	// " (int, error)"; empty for operations yielding no value.
	ResultDecl string

	// HasResults reports whether the forwarding method returns anything.
	HasResults bool
}
