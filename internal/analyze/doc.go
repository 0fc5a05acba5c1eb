// Package analyze loads Go packages and extracts filterable struct
// definitions for code generation.
//
// It uses golang.org/x/tools/go/packages with go/types and applies the same
// annotation model and type mapping as the runtime derive package, so that
// generated code and reflection agree on every path and type.
//
// Key types:
//   - TypeID: package import path + type name
//   - Struct: a struct type with its namespace and ordered fields
//   - Field: a declared field with path, semantic type and value shape
package analyze
