package proxy

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/proxy/errors"
)

// Operation describes a single operation of a proxied interface: its name
// and its exact calling signature. A Go interface cannot declare two
// operations with the same name, so Name is unique within the interface and
// the by-name rebinding protocol never has to disambiguate overloads.
type Operation struct {
	Name string

	// Params holds the parameter types in declaration order.
	Params []reflect.Type

	// Results holds the result types in declaration order; empty for
	// operations yielding no value.
	Results []reflect.Type

	// Variadic reports whether the final parameter is variadic.
	Variadic bool

	signature reflect.Type
}

// Signature returns the func type a callable bound to this operation must
// have. This is the slot type for the operation.
func (op Operation) Signature() reflect.Type { return op.signature }

// Descriptor is the immutable description of an interface under proxy: its
// type identity and ordered operation set. It is computed once per Factory
// and shared by every instance the factory produces.
type Descriptor struct {
	typ    reflect.Type
	ops    []Operation
	byName map[string]int
}

// describe introspects typ and captures its operation set. It is the only
// construction path for a Descriptor.
func describe(typ reflect.Type) (*Descriptor, error) {
	if typ == nil || typ.Kind() != reflect.Interface {
		return nil, errorc.With(
			errors.ErrNotInterface,
			errorc.String(errors.ErrorFieldInterfaceType, typeName(typ)),
		)
	}

	d := &Descriptor{
		typ:    typ,
		ops:    make([]Operation, 0, typ.NumMethod()),
		byName: make(map[string]int, typ.NumMethod()),
	}
	for i := 0; i < typ.NumMethod(); i++ {
		m := typ.Method(i)
		op := Operation{
			Name:     m.Name,
			Params:   paramTypes(m.Type),
			Results:  resultTypes(m.Type),
			Variadic: m.Type.IsVariadic(),
		}
		op.signature = deriveSlotType(op)
		d.byName[op.Name] = len(d.ops)
		d.ops = append(d.ops, op)
	}
	return d, nil
}

// Type returns the interface type the descriptor was built for.
func (d *Descriptor) Type() reflect.Type { return d.typ }

// Operations returns the operations in reflect method order (sorted by
// name). The returned slice must not be modified.
func (d *Descriptor) Operations() []Operation { return d.ops }

// Operation returns the named operation, if present.
func (d *Descriptor) Operation(name string) (Operation, bool) {
	i, ok := d.byName[name]
	if !ok {
		return Operation{}, false
	}
	return d.ops[i], true
}

// deriveSlotType builds an operation's slot type from its captured parameter
// and result types. For an interface method this equals the method's func
// type; deriving it from the Operation keeps slots dependent only on the
// descriptor, not on the original reflect.Method.
func deriveSlotType(op Operation) reflect.Type {
	return reflect.FuncOf(op.Params, op.Results, op.Variadic)
}

func paramTypes(fn reflect.Type) []reflect.Type {
	if fn.NumIn() == 0 {
		return nil
	}
	in := make([]reflect.Type, fn.NumIn())
	for i := range in {
		in[i] = fn.In(i)
	}
	return in
}

func resultTypes(fn reflect.Type) []reflect.Type {
	if fn.NumOut() == 0 {
		return nil
	}
	out := make([]reflect.Type, fn.NumOut())
	for i := range out {
		out[i] = fn.Out(i)
	}
	return out
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
