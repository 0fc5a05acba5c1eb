package analyze

import (
	"go/types"

	"filterable/semantic"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "filterable/examples/request"
	Name    string // e.g., "Request"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Shape tells the generator which adapter converts a field value.
type Shape int

const (
	ShapeUnknown    Shape = iota
	ShapeText             // string and named string types
	ShapeInteger          // every integer type, named or not
	ShapeIP               // net.IP
	ShapeAddr             // net/netip.Addr
	ShapePairs            // slices of semantic.Pair
	ShapeArrayPairs       // [][2]string
)

// String returns a human-readable representation of the Shape.
func (s Shape) String() string {
	switch s {
	case ShapeText:
		return "text"
	case ShapeInteger:
		return "integer"
	case ShapeIP:
		return "ip"
	case ShapeAddr:
		return "addr"
	case ShapePairs:
		return "pairs"
	case ShapeArrayPairs:
		return "array-pairs"
	default:
		return "unknown"
	}
}

// Type returns the semantic type produced by the shape.
func (s Shape) Type() semantic.TypeEnum {
	switch s {
	case ShapeText, ShapePairs, ShapeArrayPairs:
		return semantic.TypeText
	case ShapeInteger:
		return semantic.TypeInteger
	case ShapeIP, ShapeAddr:
		return semantic.TypeAddress
	default:
		return 0
	}
}

// Field describes a declared struct field.
type Field struct {
	Name     string     // Go field name
	Path     string     // dotted path
	Ignore   bool       // excluded from schema and context
	Shape    Shape      // zero for ignored fields
	Optional int        // pointer depth around the base type
	Convert  bool       // base type is a named string type and needs string(...)
	GoType   types.Type // declared type
}

// Type returns the semantic type of the field.
func (f *Field) Type() semantic.TypeEnum {
	return f.Shape.Type()
}

// Struct describes a filterable struct type.
type Struct struct {
	ID        TypeID
	PkgName   string
	Namespace string
	Fields    []Field
}

// Active returns the fields that take part in the schema.
func (s *Struct) Active() []Field {
	var out []Field
	for _, f := range s.Fields {
		if !f.Ignore {
			out = append(out, f)
		}
	}

	return out
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Dir   string   // Directory holding the package sources
	Types []TypeID // Named struct types defined in this package, in scope order
	scope *types.Scope
}
