package cube

// Dimension is one ordered axis of a cube.
//
// Codes lists the dimension's value codes in axis order; that order
// defines the axis's stride in the flattened value sequence. Labels maps
// each code to its display label.
type Dimension struct {
	Code   string
	Codes  []string
	Labels map[string]string
}

// Cube is a sparse statistical array: ordered dimensions, parallel axis
// sizes, and a flat value sequence in mixed-radix order with the last
// dimension varying fastest. A nil value entry means no observation.
//
// Cubes are constructed via New or DecodeJSON and are not mutated
// afterwards.
type Cube struct {
	Dims   []Dimension
	Sizes  []int
	Values []*float64
}

// New validates the structural invariants and builds a Cube.
//
// Checks, in order:
//   - sizes parallels dims
//   - each dimension's size equals its value-code count, and codes are
//     unique within the dimension
//   - len(values) == product(sizes)
//
// Any violation returns a DecodeError; the cube is unusable in that case.
func New(dims []Dimension, sizes []int, values []*float64) (*Cube, error) {
	if len(sizes) != len(dims) {
		return nil, newDecodeError(ErrCodeSizeMismatch, "",
			"size list has %d entries for %d dimensions", len(sizes), len(dims))
	}

	product := 1
	for i, d := range dims {
		if len(d.Codes) != sizes[i] {
			return nil, newDecodeError(ErrCodeSizeMismatch, d.Code,
				"declared size %d but %d value codes", sizes[i], len(d.Codes))
		}
		seen := make(map[string]bool, len(d.Codes))
		for _, code := range d.Codes {
			if seen[code] {
				return nil, newDecodeError(ErrCodeSizeMismatch, d.Code,
					"duplicate value code %q", code)
			}
			seen[code] = true
		}
		product *= sizes[i]
	}

	if len(values) != product {
		return nil, newDecodeError(ErrCodeValueLength, "",
			"%d values for product(sizes)=%d", len(values), product)
	}

	return &Cube{Dims: dims, Sizes: sizes, Values: values}, nil
}

// Dim returns the dimension with the given code and its axis position.
func (c *Cube) Dim(code string) (Dimension, int, bool) {
	for i, d := range c.Dims {
		if d.Code == code {
			return d, i, true
		}
	}
	return Dimension{}, 0, false
}
