package cube

import (
	"errors"
	"fmt"
)

// DecodeError reports a structural violation of the inbound cube format.
//
// Structural violations are contract bugs in the data source or the
// caller, not expected degraded cases. They fail fast because a silently
// misaligned cube corrupts every extracted value.
type DecodeError struct {
	// Code identifies the violation category.
	Code DecodeErrorCode

	// Message is a human-readable description.
	Message string

	// Dimension names the offending dimension, when one is identifiable.
	Dimension string
}

// DecodeErrorCode categorizes structural cube violations.
type DecodeErrorCode string

const (
	// ErrCodeDimensionMissing indicates an id entry with no dimension metadata.
	ErrCodeDimensionMissing DecodeErrorCode = "DIMENSION_MISSING"

	// ErrCodeSizeMismatch indicates the size list does not parallel the id list,
	// or a dimension's size disagrees with its value-code count.
	ErrCodeSizeMismatch DecodeErrorCode = "SIZE_MISMATCH"

	// ErrCodeValueLength indicates len(values) != product(sizes).
	ErrCodeValueLength DecodeErrorCode = "VALUE_LENGTH_MISMATCH"

	// ErrCodeBadOrdinal indicates a category ordinal outside [0, size),
	// or two codes sharing an ordinal.
	ErrCodeBadOrdinal DecodeErrorCode = "BAD_ORDINAL"

	// ErrCodeBadPayload indicates the payload is not a JSON-stat cube at all.
	ErrCodeBadPayload DecodeErrorCode = "BAD_PAYLOAD"
)

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Dimension != "" {
		return fmt.Sprintf("%s: %s (dimension=%s)", e.Code, e.Message, e.Dimension)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsDecodeError returns true if the error is a structural cube violation.
// Uses errors.As to handle wrapped errors.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

func newDecodeError(code DecodeErrorCode, dim, format string, args ...any) *DecodeError {
	return &DecodeError{
		Code:      code,
		Message:   fmt.Sprintf(format, args...),
		Dimension: dim,
	}
}
