package proxy

import (
	"reflect"
	"sync/atomic"
)

// Slot is the mutable binding cell for one operation of a proxy. It holds
// the currently bound callable of func type F. Replacing the callable is a
// single atomic store: an invocation in flight observes either the previous
// or the new callable in its entirety, never a partially updated one, and
// slots of other operations are never affected.
//
// The zero Slot is unbound and Get returns a nil func; a proxy constructor
// must Set every slot before the proxy is handed out. A Slot must not be
// copied after first use.
type Slot[F any] struct {
	fn atomic.Value // F
}

// Get returns the currently bound callable.
func (s *Slot[F]) Get() F {
	f, _ := s.fn.Load().(F)
	return f
}

// Set binds fn as the slot's callable, replacing the previous binding.
func (s *Slot[F]) Set(fn F) {
	s.fn.Store(fn)
}

// cell is the reflection-facing view of a Slot used by Rebind. It is carried
// as unexported methods so the exported Slot surface stays exactly Get/Set.
type cell interface {
	signature() reflect.Type
	load() reflect.Value
	store(fn reflect.Value)
}

func (s *Slot[F]) signature() reflect.Type {
	return reflect.TypeOf((*F)(nil)).Elem()
}

func (s *Slot[F]) load() reflect.Value {
	f, ok := s.fn.Load().(F)
	if !ok {
		return reflect.Zero(s.signature())
	}
	return reflect.ValueOf(f)
}

// store installs fn into the slot. fn's type must equal the slot's
// signature; Rebind validates this before calling.
func (s *Slot[F]) store(fn reflect.Value) {
	s.fn.Store(fn.Interface().(F))
}
