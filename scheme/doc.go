// Package scheme is the boundary to the rule-matching engine.
//
// A Scheme is an ordered, validated set of typed field paths. A Context is
// a per-evaluation store of semantic values keyed by those paths; Set
// rejects values whose type disagrees with the Scheme.
//
// The package does not parse or evaluate filter expressions.
package scheme
