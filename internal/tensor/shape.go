package tensor

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is non-negative.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be >= 0)", ErrShapeMismatch, i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String formats the shape as [d0, d1, ...].
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// BroadcastShape computes the result shape of an elementwise op between two
// shapes of the same rank.
//
// Per axis the result is the common size when both sides agree, otherwise the
// size of the side that is not 1 when the other side is exactly 1.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5)
//	(1, 5) + (3, 5) → (3, 5)
//	(3, 4) + (3, 5) → ErrIncompatibleShapes
func BroadcastShape(a, b Shape) (Shape, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: rank %d vs rank %d", ErrIncompatibleShapes, len(a), len(b))
	}

	result := make(Shape, len(a))
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] == b[i]:
			result[i] = a[i]
		case a[i] == 1:
			result[i] = b[i]
		case b[i] == 1:
			result[i] = a[i]
		default:
			return nil, fmt.Errorf("%w: %v vs %v (dimension %d: %d vs %d)",
				ErrIncompatibleShapes, a, b, i, a[i], b[i])
		}
	}
	return result, nil
}
