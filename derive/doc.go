// Package derive turns annotated struct types into filter schemas and
// materializes struct instances into filter contexts.
//
// A Definition is derived once per struct type, either by reflection over
// struct tags (Derive, DeriveType) or by hand with a Builder, and then
// reused for any number of instances:
//
//	type Request struct {
//		_      struct{}     `filter:"name=http"`
//		Host   string
//		Client netip.Addr   `filter:"name=ip.src"`
//		Agent  *string      `filter:"name=user_agent"`
//		Body   []byte       `filter:"-"`
//	}
//
//	def, err := derive.Derive[Request]()
//	s, err := def.Scheme()
//	ctx, err := derive.NewContext(def, s, req)
//
// Key types:
//   - Field: one declared field with its path, semantic type and ignore flag
//   - Definition: the ordered fields of one struct type, immutable once built
//   - Builder: registers fields by path and accessor function
//
// Definitions are safe for concurrent use. Contexts are not.
package derive
