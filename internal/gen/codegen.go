package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"github.com/ygrebnov/proxy/constants"
)

// fileTemplate renders a File model into Go source. The output is passed
// through go/format, so the template only has to be syntactically correct,
// not perfectly spaced.
var fileTemplate = template.Must(template.New("proxy").Parse(`// Code generated by {{.GeneratedBy}}; DO NOT EDIT.

package {{.PackageName}}

import (
{{- range .Imports}}
	{{.Alias}} "{{.Path}}"
{{- end}}
)
{{range .Proxies}}{{$proxy := .}}
// {{.TypeName}} is a rebindable proxy for {{.InterfaceRef}}. Every operation
// forwards through its slot field; slots start bound to the backing instance
// and can be replaced independently at runtime via proxy.Rebind or a slot's
// Set method.
type {{.TypeName}} struct {
	backing {{.InterfaceRef}}
{{range .Methods}}
	{{.SlotField}} proxy.Slot[{{.SlotType}}]
{{- end}}
}

// {{.ConstructorName}} returns a proxy forwarding every operation to backing.
func {{.ConstructorName}}(backing {{.InterfaceRef}}) *{{.TypeName}} {
	p := &{{.TypeName}}{backing: backing}
{{- range .Methods}}
	p.{{.SlotField}}.Set(backing.{{.Name}})
{{- end}}
	return p
}
{{range .Methods}}
func (p *{{$proxy.TypeName}}) {{.Name}}({{.ParamDecls}}){{.ResultDecl}} {
	{{if .HasResults}}return {{end}}p.{{.SlotField}}.Get()({{.ArgNames}})
}
{{end}}
func init() {
	proxy.Register[{{.InterfaceRef}}](func(backing {{.InterfaceRef}}) {{.InterfaceRef}} {
		return {{.ConstructorName}}(backing)
	})
}
{{end}}`))

// templateContext wraps a File with the constants the template needs.
type templateContext struct {
	*File
	GeneratedBy string
}

// Render produces the formatted Go source for file.
func Render(file *File) ([]byte, error) {
	var buf bytes.Buffer
	ctx := templateContext{File: file, GeneratedBy: constants.GeneratedBy}
	if err := fileTemplate.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("gen: rendering %s: %w", file.PackageName, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		// Formatting only fails on a template bug; return the raw source so
		// the caller can see what was produced.
		return buf.Bytes(), fmt.Errorf("gen: formatting generated source: %w", err)
	}
	return src, nil
}

// Generate is the single-call surface used by cmd/proxygen: inspect then
// render.
func Generate(opts Options) ([]byte, error) {
	file, err := Inspect(opts)
	if err != nil {
		return nil, err
	}
	return Render(file)
}
