package resolve

import (
	"fmt"
	"reflect"

	"filterable/semantic"
)

// Resolution is the outcome of resolving a declared field type.
type Resolution struct {
	Declared reflect.Type // the type as written on the field
	Base     reflect.Type // Declared with every optional wrapper removed
	Optional int          // number of optional (pointer) wrappers around Base
	Entry    Entry
}

// Type returns the semantic type of the resolved field.
func (r Resolution) Type() semantic.TypeEnum {
	return r.Entry.Type
}

// Resolve maps t to its semantic entry. Optional wrappers are unwrapped
// recursively and do not change the semantic type.
func (r *Registry) Resolve(t reflect.Type) (Resolution, error) {
	if t == nil {
		return Resolution{}, fmt.Errorf("%w: <nil>", ErrUnsupportedType)
	}

	depth, base := ptrDepthAndBase(t)

	entry, ok := r.Lookup(base)
	if !ok {
		return Resolution{}, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}

	return Resolution{
		Declared: t,
		Base:     base,
		Optional: depth,
		Entry:    entry,
	}, nil
}

// Value adapts v, which must be of the Declared type.
// A nil optional wrapper at any depth reports ok=false.
func (r Resolution) Value(v reflect.Value) (semantic.Value, bool, error) {
	for range r.Optional {
		if v.IsNil() {
			return semantic.Value{}, false, nil
		}
		v = v.Elem()
	}

	return r.Entry.Adapt(v)
}

// ptrDepthAndBase returns the pointer depth and the final base type.
func ptrDepthAndBase(t reflect.Type) (depth int, base reflect.Type) {
	depth, base = 0, t
	for base.Kind() == reflect.Ptr {
		depth++
		base = base.Elem()
	}

	return
}
