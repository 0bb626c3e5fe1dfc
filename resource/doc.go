// Package resource provides a read-only catalog of static documents
// addressed by URI.
//
// Entries are listed in registration order. Bodies are composed on every
// [Catalog.Read] call rather than stored, so two reads of the same URI
// return equal text but never share state.
//
// A read for an unregistered URI fails with [ErrNotFound].
package resource
