package derive

import (
	"errors"
	"fmt"
	"reflect"

	"filterable/internal/tag"
)

// Builder registers the fields of T by hand, in declaration order.
//
// Accessors are functions of the form func(T) V or func(*T) V, where V is any
// type the registry resolves. The first error is kept and reported by Build.
type Builder[T any] struct {
	cfg       config
	namespace string
	fields    []Field
	err       error
}

// NewBuilder starts a definition of T under namespace, which may be empty.
func NewBuilder[T any](namespace string, opts ...Option) *Builder[T] {
	b := &Builder[T]{
		cfg:       newConfig(opts),
		namespace: namespace,
	}

	if reflect.TypeFor[T]().Kind() != reflect.Struct {
		b.err = fmt.Errorf("%w: %s is not a struct", ErrUnsupportedType, reflect.TypeFor[T]())
	} else if namespace != "" {
		if err := tag.CheckName(namespace); err != nil {
			b.err = fmt.Errorf("namespace: %w", err)
		}
	}

	return b
}

// Field adds a field at path name (relative to the namespace) read by accessor.
func (b *Builder[T]) Field(name string, accessor any) *Builder[T] {
	if b.err != nil {
		return b
	}

	if err := tag.CheckName(name); err != nil {
		b.err = fmt.Errorf("field %q: %w", name, err)
		return b
	}

	get, out, err := parseAccessor(reflect.TypeFor[T](), accessor)
	if err != nil {
		b.err = fmt.Errorf("field %q: %w", name, err)
		return b
	}

	res, err := b.cfg.registry.Resolve(out)
	if err != nil {
		b.err = fmt.Errorf("field %q: %w", name, err)
		return b
	}

	f := newField(name, b.namespace, "", false)
	f.res, f.get = res, get
	b.fields = append(b.fields, f)

	return b
}

// Ignore declares a field that takes part in the layout but never in a schema or context.
func (b *Builder[T]) Ignore(name string) *Builder[T] {
	if b.err != nil {
		return b
	}

	b.fields = append(b.fields, newField(name, b.namespace, "", true))
	return b
}

// Build returns the Definition, or the first error met while building.
func (b *Builder[T]) Build() (*Definition, error) {
	if b.err != nil {
		return nil, b.err
	}

	return newDefinition(reflect.TypeFor[T](), b.namespace, append([]Field(nil), b.fields...), b.cfg)
}

var (
	errNotAFunction = errors.New("accessor is not a function")
	errSignature    = errors.New("accessor must have one argument and one result")
)

// parseAccessor inspects fn and returns a getter over addressable struct values.
//
// Supports:
//   - func(src T) V
//   - func(src *T) V
func parseAccessor(structType reflect.Type, fn any) (func(reflect.Value) reflect.Value, reflect.Type, error) {
	if fn == nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidAccessor, errNotAFunction)
	}

	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func || fnVal.IsNil() {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidAccessor, errNotAFunction)
	}

	if fnType.NumIn() != 1 || fnType.NumOut() != 1 || fnType.IsVariadic() {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidAccessor, errSignature)
	}

	out := fnType.Out(0)

	switch in := fnType.In(0); in {
	case structType:
		return func(v reflect.Value) reflect.Value {
			return fnVal.Call([]reflect.Value{v})[0]
		}, out, nil

	case reflect.PointerTo(structType):
		return func(v reflect.Value) reflect.Value {
			return fnVal.Call([]reflect.Value{v.Addr()})[0]
		}, out, nil

	default:
		return nil, nil, fmt.Errorf("%w: argument is %s, want %s or *%s", ErrInvalidAccessor, in, structType, structType)
	}
}
