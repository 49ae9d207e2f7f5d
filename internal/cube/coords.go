package cube

// Coords decodes a flat cube index into per-dimension coordinates.
//
// The decomposition is mixed-radix with the last dimension decoded first:
// the flat array is row-major with the last axis innermost, so
// coordinates[i] ranges over [0, sizes[i]) and the last coordinate varies
// fastest. Re-flattening the result with the matching strides recovers
// the input index exactly.
//
// The caller must guarantee 0 <= index < product(sizes); Cube construction
// establishes that bound for every value index.
func Coords(index int, sizes []int) []int {
	coords := make([]int, len(sizes))
	remaining := index
	for i := len(sizes) - 1; i >= 0; i-- {
		coords[i] = remaining % sizes[i]
		remaining /= sizes[i]
	}
	return coords
}
