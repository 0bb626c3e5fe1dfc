// Package synth renders the text artifact returned for a successful
// invocation.
//
// An artifact has a fixed section order:
//
//	## <heading> <method> (`<operation>`)
//	<description>
//	### Generated Code:   (always)
//	### Parameters:       (only when parameters are non-empty)
//	### Example:          (only when an example exists)
//	### Notes:            (only when notes exist)
//
// Missing description and example text fall back to generic placeholders.
// Structured values are encoded with [JSON], which sorts object keys and
// indents with two spaces, so the same inputs always produce byte-identical
// output.
//
// Errors are returned only when a value cannot be encoded (for example a
// NaN). Callers treat those as synthesis failures.
package synth
