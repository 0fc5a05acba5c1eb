// Package gen emits Go source that implements derive.HasFields and
// derive.Filterable for analyzed struct types.
//
// Generation approach uses text/template + go/format for readable,
// reflection-free Go code.
//
// Codegen patterns:
//   - Direct Set for text and address values
//   - Checked int64 widening for integers
//   - Nil guards for optional (pointer) fields
//   - Flattening of pair sequences, skipped when empty
package gen
