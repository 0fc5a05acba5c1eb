// Package tag parses the struct-tag annotation model shared by runtime
// reflection and the code generator.
//
// Grammar of a tag value (default key "filter"):
//
//	"-"                  ignore the field
//	"ignore"             ignore the field
//	"name=<a.b.c>"       rename the field (or, on a blank marker field, set the namespace)
//	"name=<x>,ignore"    options combine with commas
//
// Each option may appear once. Path segments of a name must be non-empty.
package tag
