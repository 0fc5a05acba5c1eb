package scheme

import (
	"errors"
	"fmt"
	"iter"

	"filterable/semantic"
)

var (
	ErrTypeMismatch = errors.New("type mismatch")
	ErrUnknownField = errors.New("unknown field")
)

// TypeMismatchError reports a value whose type disagrees with the Scheme.
type TypeMismatchError struct {
	Path     string
	Expected semantic.TypeEnum
	Actual   semantic.TypeEnum
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s for %s: expected %s, got %s", ErrTypeMismatch, e.Path, e.Expected, e.Actual)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// Context holds the values of one evaluation. It is not safe for concurrent use.
type Context struct {
	scheme *Scheme
	values []semantic.Value
	set    []bool
}

// NewContext creates an empty Context bound to s.
func NewContext(s *Scheme) *Context {
	return &Context{
		scheme: s,
		values: make([]semantic.Value, len(s.fields)),
		set:    make([]bool, len(s.fields)),
	}
}

// Scheme returns the Scheme the context is bound to.
func (c *Context) Scheme() *Scheme {
	return c.scheme
}

// Set stores v at path. Setting a path twice overwrites the earlier value.
func (c *Context) Set(path string, v semantic.Value) error {
	i, ok := c.scheme.index[path]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, path)
	}

	if want := c.scheme.fields[i].Type; want != v.Type() {
		return &TypeMismatchError{Path: path, Expected: want, Actual: v.Type()}
	}

	c.values[i] = v
	c.set[i] = true
	return nil
}

// Get returns the value stored at path.
func (c *Context) Get(path string) (semantic.Value, bool) {
	i, ok := c.scheme.index[path]
	if !ok || !c.set[i] {
		return semantic.Value{}, false
	}

	return c.values[i], true
}

// Len returns the number of paths holding a value.
func (c *Context) Len() int {
	n := 0
	for _, ok := range c.set {
		if ok {
			n++
		}
	}

	return n
}

// All iterates the stored values in scheme order.
func (c *Context) All() iter.Seq2[string, semantic.Value] {
	return func(yield func(string, semantic.Value) bool) {
		for i, ok := range c.set {
			if !ok {
				continue
			}
			if !yield(c.scheme.fields[i].Path, c.values[i]) {
				return
			}
		}
	}
}

// Map returns the stored values keyed by path.
func (c *Context) Map() map[string]semantic.Value {
	m := make(map[string]semantic.Value, c.Len())
	for path, v := range c.All() {
		m[path] = v
	}

	return m
}
