package derive

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"filterable/scheme"
	"filterable/semantic"
)

// Setter receives materialized values. *scheme.Context implements it.
type Setter interface {
	Set(path string, v semantic.Value) error
}

// Filterable is implemented by types that materialize their own context,
// typically through generated code.
type Filterable interface {
	FilterContext(s *scheme.Scheme) (*scheme.Context, error)
}

// Materialize writes the values of instance into ctx, field by field.
//
// instance must be a value of the definition's struct type or a non-nil
// pointer to one. Absent optional values and empty pair sequences write
// nothing. The first failing field stops processing; values already written
// stay in ctx.
func (d *Definition) Materialize(instance any, ctx Setter) error {
	v, err := d.instanceValue(instance)
	if err != nil {
		return err
	}

	for i := range d.fields {
		f := &d.fields[i]
		if f.Ignore {
			continue
		}

		val, ok, err := f.res.Value(f.get(v))
		if err != nil {
			d.logger.Warn("Field conversion failed", zap.String("path", f.path), zap.Error(err))
			return fmt.Errorf("field %s: %w", f.path, err)
		}

		if !ok {
			d.logger.Debug("Field absent", zap.String("path", f.path))
			continue
		}

		if err := ctx.Set(f.path, val); err != nil {
			d.logger.Warn("Context rejected field", zap.String("path", f.path), zap.Error(err))
			return fmt.Errorf("field %s: %w", f.path, err)
		}

		d.logger.Debug("Field materialized",
			zap.String("path", f.path),
			zap.Stringer("type", val.Type()))
	}

	return nil
}

// NewContext creates a context for s and materializes instance into it.
// On error the partially populated context is returned alongside the error;
// a nil s yields no context at all.
func NewContext(d *Definition, s *scheme.Scheme, instance any) (*scheme.Context, error) {
	if s == nil {
		return nil, fmt.Errorf("materializing %s: %w", d.typ, ErrNilScheme)
	}

	ctx := scheme.NewContext(s)
	return ctx, d.Materialize(instance, ctx)
}

// instanceValue returns an addressable struct value for instance.
func (d *Definition) instanceValue(instance any) (reflect.Value, error) {
	v := reflect.ValueOf(instance)
	if !v.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: got nil, want %s", ErrInstanceType, d.typ)
	}

	switch v.Type() {
	case d.typ:
		cp := reflect.New(d.typ).Elem()
		cp.Set(v)
		return cp, nil

	case reflect.PointerTo(d.typ):
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: nil *%s", ErrInstanceType, d.typ)
		}
		return v.Elem(), nil

	default:
		return reflect.Value{}, fmt.Errorf("%w: got %s, want %s", ErrInstanceType, v.Type(), d.typ)
	}
}
