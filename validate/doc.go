// Package validate checks normalized parameters against a catalog
// descriptor.
//
// Checks run in a fixed order and every violation is collected:
//
//  1. type conformance and enum membership
//  2. required members
//  3. geometry: coordinates, sizes and min/max bounds
//  4. collections: per-entry rules and duplicate keys
//
// Validation never mutates its input and never fails; it returns an
// [Outcome] whose Valid flag is true exactly when Violations is empty.
package validate
