package proxy

import (
	"reflect"
	"strings"
	"sync"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/proxy/constants"
	"github.com/ygrebnov/proxy/errors"
)

// slotFieldsCache caches, per concrete proxy type, the mapping from
// operation name to the index of its slot field. Struct layouts are static
// for a compiled type, so the mapping is computed once and shared.
var slotFieldsCache sync.Map // map[reflect.Type]map[string]int

var cellType = reflect.TypeOf((*cell)(nil)).Elem()

// slotIndex returns the operation-name -> slot-field-index mapping for the
// proxy struct type typ, computing and caching it on first use.
func slotIndex(typ reflect.Type) map[string]int {
	if m, ok := slotFieldsCache.Load(typ); ok {
		return m.(map[string]int)
	}
	idx := make(map[string]int)
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() || !strings.HasSuffix(f.Name, constants.SlotSuffix) {
			continue
		}
		if !reflect.PointerTo(f.Type).Implements(cellType) {
			continue
		}
		idx[strings.TrimSuffix(f.Name, constants.SlotSuffix)] = i
	}
	slotFieldsCache.Store(typ, idx)
	return idx
}

// Rebind replaces the binding of one operation on a live proxy instance with
// the named operation of target, leaving every other slot untouched.
//
// proxyInstance must be a pointer to a proxy struct as produced by a
// Factory. The slot is resolved by the deterministic field name
// "<operation>Slot"; the target operation is resolved by name on target and
// must have exactly the slot's signature. The replacement itself is a single
// atomic store, so invocations racing the rebind observe either the old or
// the new callable. On any failure the prior binding is left intact.
//
// Rebinding is idempotent: rebinding the same operation again simply
// replaces the stored callable under the same guarantees. There is no undo;
// restoring default behavior is an explicit rebind back to the backing
// instance's operation.
func Rebind(proxyInstance any, operation string, target any, targetOperation string) error {
	s, err := slotOf(proxyInstance, operation)
	if err != nil {
		return err
	}

	if target == nil {
		return errorc.With(
			errors.ErrUnknownTargetOperation,
			errorc.String(errors.ErrorFieldTargetType, "<nil>"),
			errorc.String(errors.ErrorFieldTargetOperation, targetOperation),
		)
	}
	m := reflect.ValueOf(target).MethodByName(targetOperation)
	if !m.IsValid() {
		return errorc.With(
			errors.ErrUnknownTargetOperation,
			errorc.String(errors.ErrorFieldTargetType, reflect.TypeOf(target).String()),
			errorc.String(errors.ErrorFieldTargetOperation, targetOperation),
		)
	}

	if m.Type() != s.signature() {
		return errorc.With(
			errors.ErrSignatureMismatch,
			errorc.String(errors.ErrorFieldOperationName, operation),
			errorc.String(errors.ErrorFieldTargetType, reflect.TypeOf(target).String()),
			errorc.String(errors.ErrorFieldTargetOperation, targetOperation),
			errorc.String(errors.ErrorFieldSignatureWant, s.signature().String()),
			errorc.String(errors.ErrorFieldSignatureGot, m.Type().String()),
		)
	}

	s.store(m)
	return nil
}

// slotOf resolves the slot cell for operation on proxyInstance.
func slotOf(proxyInstance any, operation string) (cell, error) {
	v := reflect.ValueOf(proxyInstance)
	if !v.IsValid() || v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil, errorc.With(
			errors.ErrNotProxy,
			errorc.String(errors.ErrorFieldProxyType, typeName(reflect.TypeOf(proxyInstance))),
		)
	}
	elem := v.Elem()
	i, ok := slotIndex(elem.Type())[operation]
	if !ok {
		return nil, errorc.With(
			errors.ErrUnknownOperation,
			errorc.String(errors.ErrorFieldOperationName, operation),
			errorc.String(errors.ErrorFieldProxyType, elem.Type().String()),
		)
	}
	return elem.Field(i).Addr().Interface().(cell), nil
}
