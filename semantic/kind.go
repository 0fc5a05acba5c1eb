package semantic

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=TypeEnum -trimprefix=Type -output=type_string.go

// TypeEnum is the semantic type of a field at the engine boundary.
type TypeEnum int

const (
	_ TypeEnum = iota // skip zero value, use it as a default (invalid) value for TypeEnum

	TypeText
	TypeInteger
	TypeAddress

	// TypeTotal is a constant that represents the total number of types defined
	TypeTotal = int(iota)
)

// IsValid reports whether t is one of the declared semantic types.
func (t TypeEnum) IsValid() bool {
	return t > 0 && int(t) < TypeTotal
}

// ParseType parses the textual name of a semantic type, case-insensitively.
func ParseType(s string) (TypeEnum, error) {
	for t := TypeEnum(1); int(t) < TypeTotal; t++ {
		if strings.EqualFold(t.String(), s) {
			return t, nil
		}
	}

	return 0, fmt.Errorf("unknown semantic type %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t TypeEnum) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid semantic type %d", int(t))
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TypeEnum) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
