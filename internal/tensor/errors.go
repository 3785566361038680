package tensor

import "errors"

// Common errors. Operations wrap them with context, so test with errors.Is.
var (
	ErrDimensionMismatch  = errors.New("dimension count does not match tensor rank")
	ErrShapeMismatch      = errors.New("shape mismatch")
	ErrIncompatibleShapes = errors.New("incompatible shapes")
	ErrBatchMismatch      = errors.New("batch dimensions do not match")
	ErrInvalidRank        = errors.New("invalid rank")
	ErrIndexOutOfRange    = errors.New("index out of range")
)
