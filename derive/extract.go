package derive

import (
	"fmt"
	"reflect"

	"filterable/internal/tag"
)

// Derive derives the Definition of struct type T from its struct tags.
func Derive[T any](opts ...Option) (*Definition, error) {
	return DeriveType(reflect.TypeFor[T](), opts...)
}

// MustDerive is like Derive but panics on error.
func MustDerive[T any](opts ...Option) *Definition {
	def, err := Derive[T](opts...)
	if err != nil {
		panic(err)
	}

	return def
}

// DeriveType derives the Definition of t, which must be a struct or a pointer to one.
//
// The namespace is read from a blank marker field `_ struct{}` tagged filter:"name=<ns>".
// Exported fields are declared fields in declaration order; unexported ones are skipped.
// Any unsupported type or malformed tag aborts derivation.
func DeriveType(t reflect.Type, opts ...Option) (*Definition, error) {
	cfg := newConfig(opts)

	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v is not a struct", ErrUnsupportedType, t)
	}

	namespace, err := readNamespace(t, cfg.tagKey)
	if err != nil {
		return nil, err
	}

	var fields []Field

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		raw, hasTag := sf.Tag.Lookup(cfg.tagKey)

		if sf.Name == tag.MarkerName {
			continue
		}

		if !sf.IsExported() {
			if hasTag {
				return nil, fmt.Errorf("%w: field %s.%s is unexported", ErrMalformedAnnotation, t.Name(), sf.Name)
			}
			continue
		}

		a, err := tag.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", t.Name(), sf.Name, err)
		}

		f := newField(sf.Name, namespace, a.Name, a.Ignore)
		if !f.Ignore {
			f.res, err = cfg.registry.Resolve(sf.Type)
			if err != nil {
				return nil, fmt.Errorf("field %s.%s: %w", t.Name(), sf.Name, err)
			}

			index := sf.Index
			f.get = func(v reflect.Value) reflect.Value { return v.FieldByIndex(index) }
		}

		fields = append(fields, f)
	}

	return newDefinition(t, namespace, fields, cfg)
}

// readNamespace finds the struct-level marker; at most one is allowed.
func readNamespace(t reflect.Type, key string) (string, error) {
	var (
		namespace string
		found     bool
	)

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Name != tag.MarkerName {
			continue
		}

		raw, ok := sf.Tag.Lookup(key)
		if !ok {
			continue
		}

		if found {
			return "", fmt.Errorf("%w: %s declares more than one namespace marker", ErrMalformedAnnotation, t.Name())
		}

		ns, err := tag.ParseMarker(raw)
		if err != nil {
			return "", fmt.Errorf("namespace of %s: %w", t.Name(), err)
		}

		namespace, found = ns, true
	}

	return namespace, nil
}
