package uricodec

import "github.com/ghettovoice/uricodec/internal/errorutil"

// Common errors.
const (
	ErrInvalidArgument = errorutil.ErrInvalidArgument
)

// Node errors: violations of the encoded node's build invariants.
// A node transitions from unset to exactly one of primitive, array or map;
// any later attempt to change its shape fails.
const (
	ErrPrimitiveAlreadySet    Error = "primitive value already set"
	ErrValueOnContainer       Error = "primitive value set on a container node"
	ErrAppendToNonArray       Error = "append to a non-array node"
	ErrInsertIntoNonContainer Error = "child value inserted into a non-container node"
	ErrSparseArrayInsert      Error = "array insert out of order"
	ErrNestedInSingleValue    Error = "nested value in a single-value context"
)

// Conversion errors.
const (
	ErrIntegerOutOfRange Error = "integer out of 64-bit signed range"
	ErrBinaryData        Error = "binary data not supported"
	ErrMalformedValue    Error = "malformed value"
	ErrUnsupportedType   Error = "unsupported value type"
)

// Serialization policy errors: structurally valid nodes that the requested
// style cannot express, per OpenAPI 3.0.3 style restrictions.
const (
	ErrDeepObjectPrimitive Error = "deep object with primitive value not supported"
	ErrDeepObjectArray     Error = "deep object with array value not supported"
	ErrDeepObjectNested    Error = "deep object with nested container value not supported"
	ErrNestedContainer     Error = "nested container not supported by style"
)

// Lookup errors.
const (
	ErrValueNotFound Error = "value not found for key"
)

// Error represents a codec error.
// See [errorutil.Error].
type Error = errorutil.Error

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}

func newMalformedValueErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedValue, args...) //errtrace:skip
}
