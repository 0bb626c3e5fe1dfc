// Package catalog holds the fixed, ordered set of operation descriptors that
// make up a command surface.
//
// A [Descriptor] pairs an operation name with its parameter schema (a tree
// of [Field] constraints), the template function that turns normalized
// parameters into instruction text, and the human-readable description,
// example and notes rendered alongside it.
//
// # Ordering
//
// [Catalog.List] returns descriptors in registration order. Callers present
// that order to people, so it never changes after [New] returns.
// [Catalog.Find] resolves a name to the same descriptor that [Catalog.List]
// returns for it.
//
// # Schemas
//
// Field trees are declared in Go rather than parsed from JSON Schema. They
// support the primitive kinds, string enums, nested objects, arrays and
// closed unions ([KindUnion]) whose variants are tried in order. Two
// optional annotations carry domain rules the validate package enforces:
//
//   - [Geometry] marks the coordinate, size and bound members of an object.
//   - [Collection] marks an array of labeled entries that share a unique key.
//
// [Field.JSONSchema] exports the tree for protocol enumeration, and
// [Descriptor.Tool] wraps it in a toolfoundation model.Tool.
//
// # Thread Safety
//
// A Catalog is immutable once built and safe for concurrent use.
package catalog
