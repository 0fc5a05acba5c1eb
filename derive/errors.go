package derive

import (
	"errors"

	"filterable/internal/tag"
	"filterable/resolve"
)

var (
	// ErrUnsupportedType is returned when a field type has no semantic mapping.
	ErrUnsupportedType = resolve.ErrUnsupportedType
	// ErrMalformedAnnotation is returned for struct tags that do not parse.
	ErrMalformedAnnotation = tag.ErrMalformed
	// ErrPathCollision is returned by WithUniquePaths when two fields share a path.
	ErrPathCollision = errors.New("path collision")
	// ErrInstanceType is returned when an instance does not match its Definition.
	ErrInstanceType = errors.New("instance type does not match definition")
	// ErrNilScheme is returned by NewContext when no scheme is given.
	ErrNilScheme = errors.New("nil scheme")
	// ErrInvalidAccessor is returned by Builder for unusable accessor functions.
	ErrInvalidAccessor = errors.New("invalid field accessor")
)
