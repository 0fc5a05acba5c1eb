package resolve

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
	"reflect"

	"filterable/semantic"
)

var (
	ErrUnsupportedType = errors.New("unsupported field type")
	ErrAlreadyExists   = errors.New("type is already registered")
)

// Adapter converts a value of a registered type into a semantic value.
// ok=false means the value is absent and nothing must be written.
type Adapter func(v reflect.Value) (val semantic.Value, ok bool, err error)

// Entry binds a registered type to its semantic type and adapter.
type Entry struct {
	Type  semantic.TypeEnum
	Adapt Adapter
}

// Registry maps reflected types to semantic entries.
// Exact types are looked up first, then the reflect.Kind of named scalar types.
// It is not safe to Register concurrently with Resolve.
type Registry struct {
	types map[reflect.Type]Entry
	kinds map[reflect.Kind]Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[reflect.Type]Entry),
		kinds: make(map[reflect.Kind]Entry),
	}
}

var builtin = newBuiltin()

// Default returns the shared registry with the built-in mappings.
// It must not be modified; use Clone to extend it.
func Default() *Registry {
	return builtin
}

func newBuiltin() *Registry {
	r := NewRegistry()

	r.kinds[reflect.String] = Entry{Type: semantic.TypeText, Adapt: adaptText}
	for _, k := range []reflect.Kind{reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64} {
		r.kinds[k] = Entry{Type: semantic.TypeInteger, Adapt: adaptSigned}
	}
	for _, k := range []reflect.Kind{reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr} {
		r.kinds[k] = Entry{Type: semantic.TypeInteger, Adapt: adaptUnsigned}
	}

	r.types[reflect.TypeFor[net.IP]()] = Entry{Type: semantic.TypeAddress, Adapt: adaptIP}
	r.types[reflect.TypeFor[netip.Addr]()] = Entry{Type: semantic.TypeAddress, Adapt: adaptAddr}
	r.types[reflect.TypeFor[[]semantic.Pair]()] = Entry{Type: semantic.TypeText, Adapt: adaptPairs}
	r.types[reflect.TypeFor[[][2]string]()] = Entry{Type: semantic.TypeText, Adapt: adaptArrayPairs}

	return r
}

// Clone returns an independent copy of r.
func (r *Registry) Clone() *Registry {
	c := NewRegistry()
	for t, e := range r.types {
		c.types[t] = e
	}
	for k, e := range r.kinds {
		c.kinds[k] = e
	}

	return c
}

// Register adds an exact type mapping.
func (r *Registry) Register(t reflect.Type, e Entry) error {
	if t == nil || e.Adapt == nil || !e.Type.IsValid() {
		return fmt.Errorf("incomplete registry entry for %v", t)
	}

	if t.Kind() == reflect.Ptr {
		return fmt.Errorf("pointer types are optional wrappers and cannot be registered: %s", t)
	}

	if _, exists := r.types[t]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, t)
	}

	r.types[t] = e
	return nil
}

// Lookup finds the entry for an unwrapped type.
func (r *Registry) Lookup(t reflect.Type) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}

	if e, ok := r.types[t]; ok {
		return e, true
	}

	// named slices share the entry of their unnamed form
	if t.Kind() == reflect.Slice && t.Name() != "" {
		if e, ok := r.types[reflect.SliceOf(t.Elem())]; ok {
			return e, true
		}
	}

	e, ok := r.kinds[t.Kind()]
	return e, ok
}
