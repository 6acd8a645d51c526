package proxy

import (
	"reflect"
	"sync"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/proxy/errors"
)

// builderRegistry maps an interface type to the builder installed by its
// generated proxy package. Builders are registered from init functions of
// generated code; lookups happen in New.
type builderRegistry struct {
	mu       sync.RWMutex
	builders map[reflect.Type]any // interface type -> func(T) T
}

var defaultBuilders = newBuilderRegistry()

func newBuilderRegistry() *builderRegistry {
	return &builderRegistry{
		builders: make(map[reflect.Type]any),
	}
}

func (r *builderRegistry) add(typ reflect.Type, build any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.builders[typ] = build
}

func (r *builderRegistry) get(typ reflect.Type) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.builders[typ]
	return b, ok
}

// Register installs the proxy builder for interface type T. Generated proxy
// code calls Register from init; registering T again replaces the previous
// builder, so regenerating a proxy is harmless.
func Register[T any](build func(backing T) T) {
	if build == nil {
		panic("proxy: Register: nil builder")
	}
	defaultBuilders.add(interfaceType[T](), build)
}

// interfaceType returns the reflect.Type of the type parameter T itself.
// For an interface T this is the interface type, not any dynamic type.
func interfaceType[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func lookupBuilder[T any]() (func(T) T, error) {
	b, ok := defaultBuilders.get(interfaceType[T]())
	if !ok {
		return nil, errorc.With(
			errors.ErrNotRegistered,
			errorc.String(errors.ErrorFieldInterfaceType, interfaceType[T]().String()),
		)
	}
	return b.(func(T) T), nil
}
