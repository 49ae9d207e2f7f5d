package cube

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func vals(vs ...float64) []*float64 {
	out := make([]*float64, len(vs))
	for i := range vs {
		out[i] = &vs[i]
	}
	return out
}

func twoDimCube(t *testing.T) *Cube {
	t.Helper()
	c, err := New(
		[]Dimension{
			{Code: "Alue", Codes: []string{"R1", "R2"}, Labels: map[string]string{"R1": "X", "R2": "Y"}},
			{Code: "Vuosi", Codes: []string{"2020", "2021"}, Labels: map[string]string{"2020": "2020", "2021": "2021"}},
		},
		[]int{2, 2},
		vals(10, 20, 30, 40),
	)
	require.NoError(t, err)
	return c
}

func TestNew_Valid(t *testing.T) {
	c := twoDimCube(t)
	assert.Len(t, c.Values, 4)
}

func TestNew_SizeListMismatch(t *testing.T) {
	_, err := New(
		[]Dimension{{Code: "A", Codes: []string{"a"}}},
		[]int{1, 2},
		vals(1),
	)
	require.Error(t, err)

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, ErrCodeSizeMismatch, de.Code)
}

func TestNew_DimensionSizeDisagreesWithCodes(t *testing.T) {
	_, err := New(
		[]Dimension{{Code: "A", Codes: []string{"a", "b"}}},
		[]int{3},
		vals(1, 2, 3),
	)
	require.Error(t, err)

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, ErrCodeSizeMismatch, de.Code)
	assert.Equal(t, "A", de.Dimension)
}

func TestNew_DuplicateValueCode(t *testing.T) {
	_, err := New(
		[]Dimension{{Code: "A", Codes: []string{"a", "a"}}},
		[]int{2},
		vals(1, 2),
	)
	require.Error(t, err)
	assert.True(t, IsDecodeError(err))
}

func TestNew_ValueLengthMismatch(t *testing.T) {
	_, err := New(
		[]Dimension{
			{Code: "A", Codes: []string{"a", "b"}},
			{Code: "B", Codes: []string{"x", "y", "z"}},
		},
		[]int{2, 3},
		vals(1, 2, 3, 4, 5), // product is 6
	)
	require.Error(t, err)

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, ErrCodeValueLength, de.Code)
}

func TestNew_AbsentValuesAllowed(t *testing.T) {
	c, err := New(
		[]Dimension{{Code: "A", Codes: []string{"a", "b"}}},
		[]int{2},
		[]*float64{ptr(1), nil},
	)
	require.NoError(t, err)
	assert.Nil(t, c.Values[1])
}

func TestDim_Lookup(t *testing.T) {
	c := twoDimCube(t)

	d, pos, ok := c.Dim("Vuosi")
	require.True(t, ok)
	assert.Equal(t, 1, pos)
	assert.Equal(t, []string{"2020", "2021"}, d.Codes)

	_, _, ok = c.Dim("nope")
	assert.False(t, ok)
}

func TestIsDecodeError_WrappedAndPlain(t *testing.T) {
	assert.False(t, IsDecodeError(errors.New("plain")))
	assert.True(t, IsDecodeError(newDecodeError(ErrCodeBadPayload, "", "x")))
}
