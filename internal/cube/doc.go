// Package cube models multi-dimensional statistical arrays and extracts
// one-dimensional (year, region) series from them.
//
// A Cube is a sparse statistical array: an ordered list of dimensions, a
// parallel list of axis sizes, and a flat value sequence of length equal
// to the product of the sizes. The flattening is mixed-radix with the
// most-significant dimension first, so the last dimension varies fastest.
// Absent observations are nil entries in the value sequence and are
// distinct from zero-valued observations.
//
// STRUCTURAL VALIDATION:
//
// The inbound wire format is loosely specified, and a silent size/value
// misalignment would shift every downstream observation onto the wrong
// coordinates. Construction therefore validates the structural invariants
// up front and fails fast with a DecodeError; "no matching data" is the
// only condition that degrades to an empty result.
//
// Extraction walks every present value, decodes its coordinates, isolates
// the selected metric slice, drops regions outside the allow-list, and
// emits rows. It imposes no ordering; ordering is the aggregation step's
// contract.
package cube
