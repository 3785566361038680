// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/born-ml/minnet/internal/tensor"
)

// Type aliases for public API

// Numeric is the constraint for tensor element types: float32, float64, int32, int64.
type Numeric = tensor.Numeric

// Float is the constraint for floating-point element types.
type Float = tensor.Float

// Rank is implemented by the rank marker types R1 to R4.
type Rank = tensor.Rank

// Rank markers.
type (
	R1 = tensor.R1
	R2 = tensor.R2
	R3 = tensor.R3
	R4 = tensor.R4
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a dense row-major tensor of element type T and fixed rank R.
type Tensor[T Numeric, R Rank] = tensor.Tensor[T, R]

// Errors returned by tensor operations.
var (
	ErrDimensionMismatch  = tensor.ErrDimensionMismatch
	ErrShapeMismatch      = tensor.ErrShapeMismatch
	ErrIncompatibleShapes = tensor.ErrIncompatibleShapes
	ErrBatchMismatch      = tensor.ErrBatchMismatch
	ErrInvalidRank        = tensor.ErrInvalidRank
	ErrIndexOutOfRange    = tensor.ErrIndexOutOfRange
)

// Creation functions

// New creates a zero-filled tensor with one size per axis.
//
// Example:
//
//	x, err := tensor.New[float32, tensor.R3](2, 3, 4)
func New[T Numeric, R Rank](dims ...int) (*Tensor[T, R], error) {
	return tensor.New[T, R](dims...)
}

// FromShape creates a zero-filled tensor with the given shape.
func FromShape[T Numeric, R Rank](shape Shape) (*Tensor[T, R], error) {
	return tensor.FromShape[T, R](shape)
}

// FromSlice creates a tensor holding a copy of data.
func FromSlice[T Numeric, R Rank](data []T, dims ...int) (*Tensor[T, R], error) {
	return tensor.FromSlice[T, R](data, dims...)
}

// Full creates a tensor with every element set to value.
func Full[T Numeric, R Rank](value T, dims ...int) (*Tensor[T, R], error) {
	return tensor.Full[T, R](value, dims...)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T Numeric, R Rank](dims ...int) (*Tensor[T, R], error) {
	return tensor.Zeros[T, R](dims...)
}

// Ones creates a tensor filled with ones.
func Ones[T Numeric, R Rank](dims ...int) (*Tensor[T, R], error) {
	return tensor.Ones[T, R](dims...)
}

// Uniform creates a tensor with elements drawn uniformly from [low, high).
func Uniform[T Float, R Rank](rng *rand.Rand, low, high T, dims ...int) (*Tensor[T, R], error) {
	return tensor.Uniform[T, R](rng, low, high, dims...)
}

// Operations

// BroadcastShape returns the shape two same-rank operands broadcast to.
func BroadcastShape(a, b Shape) (Shape, error) {
	return tensor.BroadcastShape(a, b)
}

// MatMul multiplies the trailing two axes of a and b; leading axes are batch axes.
func MatMul[T Numeric, R Rank](a, b *Tensor[T, R]) (*Tensor[T, R], error) {
	return tensor.MatMul(a, b)
}

// Transpose2D swaps the two trailing axes of t.
func Transpose2D[T Numeric, R Rank](t *Tensor[T, R]) (*Tensor[T, R], error) {
	return tensor.Transpose2D(t)
}
