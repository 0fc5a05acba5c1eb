package derive

import (
	"fmt"

	"filterable/scheme"
)

// Schema returns one (path, type) entry per non-ignored field, in declaration order.
// Paths are not deduplicated here.
func (d *Definition) Schema() []scheme.Field {
	out := make([]scheme.Field, 0, len(d.fields))
	for _, f := range d.fields {
		if f.Ignore {
			continue
		}

		out = append(out, scheme.Field{Path: f.path, Type: f.Type()})
	}

	return out
}

// Scheme builds a scheme.Scheme from the schema of d.
func (d *Definition) Scheme() (*scheme.Scheme, error) {
	s, err := scheme.New(d.Schema())
	if err != nil {
		return nil, fmt.Errorf("building scheme for %s: %w", d.typ, err)
	}

	return s, nil
}

// HasFields is implemented by types that describe their own schema,
// typically through generated code.
type HasFields interface {
	FilterFields() []scheme.Field
}

// SchemeOf builds a scheme.Scheme from a HasFields implementation.
func SchemeOf(h HasFields) (*scheme.Scheme, error) {
	return scheme.New(h.FilterFields())
}
