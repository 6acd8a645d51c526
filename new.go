package proxy

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/proxy/errors"
)

// Factory produces proxies for one interface type T. It captures the
// interface's Descriptor once at construction and resolves the proxy builder
// registered for T; both are reused for every instance it creates. A Factory
// is immutable after New returns and safe for concurrent use. Construct it
// once and share it rather than racing several New calls for the same T.
type Factory[T any] struct {
	desc  *Descriptor
	build func(T) T
}

// New constructs the Factory for interface type T.
//
// It fails with ErrNotInterface if T is not an interface type, and with
// ErrNotRegistered if no proxy implementation for T has been registered.
// Proxy implementations are produced by the proxygen tool and register
// themselves from init, so importing the generated package is enough.
func New[T any]() (*Factory[T], error) {
	desc, err := describe(interfaceType[T]())
	if err != nil {
		return nil, err
	}
	build, err := lookupBuilder[T]()
	if err != nil {
		return nil, err
	}
	return &Factory[T]{desc: desc, build: build}, nil
}

// Describe returns the immutable descriptor of T.
func (f *Factory[T]) Describe() *Descriptor { return f.desc }

// Create returns a new proxy for backing with every slot bound to the
// corresponding operation on backing itself. It fails with ErrNilBacking if
// backing is nil, either as a nil interface value or as an interface holding
// a typed nil. The backing instance is referenced, never mutated or copied.
func (f *Factory[T]) Create(backing T) (T, error) {
	if isNilBacking(reflect.ValueOf(&backing).Elem()) {
		var zero T
		return zero, errorc.With(
			errors.ErrNilBacking,
			errorc.String(errors.ErrorFieldInterfaceType, f.desc.Type().String()),
		)
	}
	return f.build(backing), nil
}

// isNilBacking reports whether v, an interface-typed value, is nil or holds
// a nilable dynamic value that is nil.
func isNilBacking(v reflect.Value) bool {
	if v.IsNil() {
		return true
	}
	switch dyn := v.Elem(); dyn.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return dyn.IsNil()
	default:
		return false
	}
}
