package derive

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"filterable/internal/tag"
	"filterable/resolve"
	"filterable/semantic"
)

// Field describes one declared field of a struct.
type Field struct {
	Name     string   // Go field name, or the builder name
	Segments []string // [namespace, name], or [name] without a namespace; a dotted rename stays one element
	Ignore   bool

	path string
	res  resolve.Resolution
	get  func(reflect.Value) reflect.Value
}

// Path returns the dotted path of the field.
func (f Field) Path() string {
	return f.path
}

// Type returns the semantic type; ignored fields report the zero TypeEnum.
func (f Field) Type() semantic.TypeEnum {
	return f.res.Type()
}

// Optional reports whether the field is wrapped in at least one pointer.
func (f Field) Optional() bool {
	return f.res.Optional > 0
}

// GoType returns the declared type of the field, or nil for ignored fields.
func (f Field) GoType() reflect.Type {
	return f.res.Declared
}

func newField(name, namespace, rename string, ignore bool) Field {
	if rename == "" {
		rename = name
	}

	segments := tag.Segments(namespace, rename)

	return Field{
		Name:     name,
		Segments: segments,
		Ignore:   ignore,
		path:     tag.Join(segments),
	}
}

// Definition is the derived, immutable description of one struct type.
type Definition struct {
	typ       reflect.Type
	namespace string
	fields    []Field
	logger    *zap.Logger
}

// Type returns the struct type the definition was derived from.
func (d *Definition) Type() reflect.Type {
	return d.typ
}

// Namespace returns the struct-level namespace, or "" when none is set.
func (d *Definition) Namespace() string {
	return d.namespace
}

// Fields returns a copy of all declared fields, ignored ones included.
func (d *Definition) Fields() []Field {
	return append([]Field(nil), d.fields...)
}

func newDefinition(typ reflect.Type, namespace string, fields []Field, cfg config) (*Definition, error) {
	if cfg.uniquePaths {
		if err := checkUnique(fields); err != nil {
			return nil, fmt.Errorf("deriving %s: %w", typ, err)
		}
	}

	def := &Definition{
		typ:       typ,
		namespace: namespace,
		fields:    fields,
		logger:    cfg.logger.With(zap.Stringer("struct", typ)),
	}

	def.logger.Debug("Definition derived",
		zap.String("namespace", namespace),
		zap.Int("fields", len(fields)))

	return def, nil
}

func checkUnique(fields []Field) error {
	seen := make(map[string]string, len(fields))
	for _, f := range fields {
		if f.Ignore {
			continue
		}

		if other, ok := seen[f.path]; ok {
			return fmt.Errorf("%w: %s and %s both map to %q", ErrPathCollision, other, f.Name, f.path)
		}
		seen[f.path] = f.Name
	}

	return nil
}
