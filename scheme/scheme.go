package scheme

import (
	"errors"
	"fmt"
	"strings"

	"filterable/semantic"
)

var (
	ErrInvalidPath    = errors.New("invalid field path")
	ErrDuplicateField = errors.New("duplicate field")
	ErrInvalidType    = errors.New("invalid field type")
)

// Field is one (path, type) entry of a schema.
type Field struct {
	Path string            `yaml:"path"`
	Type semantic.TypeEnum `yaml:"type"`
}

// Scheme is an immutable set of typed fields, safe for concurrent use.
type Scheme struct {
	fields []Field
	index  map[string]int
}

// New validates fields and builds a Scheme. Field order is preserved.
func New(fields []Field) (*Scheme, error) {
	s := &Scheme{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	for _, f := range fields {
		if err := validatePath(f.Path); err != nil {
			return nil, err
		}

		if !f.Type.IsValid() {
			return nil, fmt.Errorf("%w for %s: %s", ErrInvalidType, f.Path, f.Type)
		}

		if _, exists := s.index[f.Path]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, f.Path)
		}

		s.index[f.Path] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	return s, nil
}

// MustNew is like New but panics on error.
func MustNew(fields []Field) *Scheme {
	s, err := New(fields)
	if err != nil {
		panic(err)
	}

	return s
}

// Fields returns a copy of the fields in declaration order.
func (s *Scheme) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Len returns the number of fields.
func (s *Scheme) Len() int {
	return len(s.fields)
}

// Lookup returns the declared type of path.
func (s *Scheme) Lookup(path string) (semantic.TypeEnum, bool) {
	i, ok := s.index[path]
	if !ok {
		return 0, false
	}

	return s.fields[i].Type, true
}

// validatePath checks that every dot-separated segment is an identifier.
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	for seg := range strings.SplitSeq(path, ".") {
		if !isValidIdent(seg) {
			return fmt.Errorf("%w %q: invalid segment %q", ErrInvalidPath, path, seg)
		}
	}

	return nil
}

func isValidIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			// First character must be letter or underscore
			if !isLetter(r) && r != '_' {
				return false
			}
		} else {
			if !isLetter(r) && !isDigit(r) && r != '_' {
				return false
			}
		}
	}

	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
