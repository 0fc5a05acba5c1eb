package tag

import (
	"errors"
	"fmt"
	"strings"

	"filterable/internal/suggest"
)

// DefaultKey is the struct-tag key read when no other key is configured.
const DefaultKey = "filter"

// MarkerName is the Go field name of the struct-level namespace marker.
const MarkerName = "_"

// ErrMalformed reports a tag value outside the annotation grammar.
var ErrMalformed = errors.New("malformed annotation")

// Annotation is the parsed form of one tag value.
type Annotation struct {
	Name    string
	HasName bool
	Ignore  bool
}

// Parse parses a tag value. An empty value yields the zero Annotation.
func Parse(value string) (Annotation, error) {
	var a Annotation
	if value == "" {
		return a, nil
	}

	if value == "-" {
		a.Ignore = true
		return a, nil
	}

	seen := make(map[string]struct{})
	for opt := range strings.SplitSeq(value, ",") {
		key, val, hasVal := strings.Cut(opt, "=")

		if _, dup := seen[key]; dup {
			return Annotation{}, fmt.Errorf("%w %q: duplicate option %q", ErrMalformed, value, key)
		}
		seen[key] = struct{}{}

		switch key {
		case "name":
			if !hasVal {
				return Annotation{}, fmt.Errorf("%w %q: option name requires a value", ErrMalformed, value)
			}
			if err := checkSegments(val); err != nil {
				return Annotation{}, fmt.Errorf("%w %q: %w", ErrMalformed, value, err)
			}
			a.Name, a.HasName = val, true

		case "ignore":
			if hasVal {
				return Annotation{}, fmt.Errorf("%w %q: option ignore takes no value", ErrMalformed, value)
			}
			a.Ignore = true

		default:
			return Annotation{}, fmt.Errorf("%w %q: unknown option %q%s", ErrMalformed, value, key, suggest.Hint(key, "name", "ignore"))
		}
	}

	return a, nil
}

// ParseMarker parses the tag of a struct-level marker field and returns the namespace.
func ParseMarker(value string) (string, error) {
	a, err := Parse(value)
	if err != nil {
		return "", err
	}

	if a.Ignore {
		return "", fmt.Errorf("%w %q: a namespace marker cannot be ignored", ErrMalformed, value)
	}

	if !a.HasName {
		return "", fmt.Errorf("%w %q: a namespace marker needs a name", ErrMalformed, value)
	}

	return a.Name, nil
}

// Segments pairs an optional namespace with a field name. The name is kept
// whole even when it is dotted; Join produces the full path.
func Segments(namespace, name string) []string {
	if namespace == "" {
		return []string{name}
	}

	return []string{namespace, name}
}

// Join returns the dotted form of segments.
func Join(segments []string) string {
	return strings.Join(segments, ".")
}

// CheckName validates a name given outside of a struct tag.
func CheckName(name string) error {
	if err := checkSegments(name); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return nil
}

func checkSegments(name string) error {
	if name == "" {
		return errors.New("empty name")
	}

	for seg := range strings.SplitSeq(name, ".") {
		if seg == "" {
			return fmt.Errorf("empty path segment in %q", name)
		}
	}

	return nil
}
