package tensor

import (
	"fmt"
	"strings"
)

// Tensor is a homogeneous numeric array with element type T and a rank fixed
// by the marker type R.
//
// Storage is a single flat row-major buffer owned exclusively by the tensor:
// len(data) == shape.NumElements() always holds, and Clone deep-copies it.
//
// Example:
//
//	x, err := tensor.New[float64, tensor.R2](2, 3)
//	if err != nil {
//	    return err
//	}
//	x.Fill(1)
//	y, err := x.Add(x) // broadcasting elementwise addition
type Tensor[T Numeric, R Rank] struct {
	shape   Shape
	strides []int
	data    []T
}

// New creates a zero-initialized tensor with the given dimension sizes.
//
// Returns ErrDimensionMismatch if len(dims) differs from the rank of R.
func New[T Numeric, R Rank](dims ...int) (*Tensor[T, R], error) {
	return FromShape[T, R](Shape(dims))
}

// FromShape creates a zero-initialized tensor with the given shape.
func FromShape[T Numeric, R Rank](shape Shape) (*Tensor[T, R], error) {
	if rank := rankOf[R](); len(shape) != rank {
		return nil, fmt.Errorf("%w: got %d dimensions for rank %d", ErrDimensionMismatch, len(shape), rank)
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return zeros[T, R](shape), nil
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T Numeric, R Rank](data []T, dims ...int) (*Tensor[T, R], error) {
	t, err := New[T, R](dims...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(t.data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, t.shape, len(t.data), len(data))
	}
	copy(t.data, data)
	return t, nil
}

// zeros allocates a tensor for a shape that is already known to be valid.
func zeros[T Numeric, R Rank](shape Shape) *Tensor[T, R] {
	s := shape.Clone()
	return &Tensor[T, R]{
		shape:   s,
		strides: s.ComputeStrides(),
		data:    make([]T, s.NumElements()),
	}
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor[T, R]) Shape() Shape {
	return t.shape.Clone()
}

// Rank returns the number of axes.
func (t *Tensor[T, R]) Rank() int {
	return len(t.shape)
}

// Size returns the total number of elements.
func (t *Tensor[T, R]) Size() int {
	return len(t.data)
}

// Dim returns the size of axis i.
//
// Unlike At and Set, Dim is not bounds-checked: an i outside [0, Rank())
// panics like slice indexing.
func (t *Tensor[T, R]) Dim(i int) int {
	return t.shape[i]
}

// Data returns the flat row-major storage.
//
// WARNING: the slice aliases the tensor; writes modify it.
func (t *Tensor[T, R]) Data() []T {
	return t.data
}

// Fill overwrites every element with value.
func (t *Tensor[T, R]) Fill(value T) {
	for i := range t.data {
		t.data[i] = value
	}
}

// Offset returns the flat storage offset of a multi-index.
func (t *Tensor[T, R]) Offset(indices ...int) (int, error) {
	if len(indices) != len(t.shape) {
		return 0, fmt.Errorf("%w: expected %d indices, got %d", ErrDimensionMismatch, len(t.shape), len(indices))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			return 0, fmt.Errorf("%w: index %d for dimension %d (size %d)", ErrIndexOutOfRange, idx, i, t.shape[i])
		}
		offset += idx * t.strides[i]
	}
	return offset, nil
}

// At returns the element at the given indices.
//
// Example:
//
//	v, err := t.At(1, 2) // row 1, column 2
func (t *Tensor[T, R]) At(indices ...int) (T, error) {
	offset, err := t.Offset(indices...)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.data[offset], nil
}

// Set stores value at the given indices.
func (t *Tensor[T, R]) Set(value T, indices ...int) error {
	offset, err := t.Offset(indices...)
	if err != nil {
		return err
	}
	t.data[offset] = value
	return nil
}

// Reshape changes the shape in place.
//
// The total element count must be preserved; storage is never resized.
func (t *Tensor[T, R]) Reshape(dims ...int) error {
	shape := Shape(dims)
	if len(shape) != len(t.shape) {
		return fmt.Errorf("reshape: %w: got %d dimensions for rank %d", ErrDimensionMismatch, len(shape), len(t.shape))
	}
	if err := shape.Validate(); err != nil {
		return fmt.Errorf("reshape: %w", err)
	}
	if shape.NumElements() != len(t.data) {
		return fmt.Errorf("reshape: %w: %v has %d elements, tensor has %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(t.data))
	}
	t.shape = shape.Clone()
	t.strides = t.shape.ComputeStrides()
	return nil
}

// Clone creates a deep copy of the tensor.
func (t *Tensor[T, R]) Clone() *Tensor[T, R] {
	c := zeros[T, R](t.shape)
	copy(c.data, t.data)
	return c
}

// Equal reports whether both tensors have the same shape and elements.
func (t *Tensor[T, R]) Equal(other *Tensor[T, R]) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i := range t.data {
		if t.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Map returns a new tensor with fn applied to every element.
func (t *Tensor[T, R]) Map(fn func(T) T) *Tensor[T, R] {
	out := zeros[T, R](t.shape)
	for i, v := range t.data {
		out.data[i] = fn(v)
	}
	return out
}

// Sum returns the sum of all elements.
func (t *Tensor[T, R]) Sum() T {
	var sum T
	for _, v := range t.data {
		sum += v
	}
	return sum
}

// String renders the tensor as nested braces, one innermost row per line.
func (t *Tensor[T, R]) String() string {
	var sb strings.Builder
	writeBlock(&sb, t.shape, t.data, 0)
	return sb.String()
}

func writeBlock[T Numeric](sb *strings.Builder, shape Shape, data []T, depth int) {
	if len(shape) <= 1 {
		for i, v := range data {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(sb, v)
		}
		return
	}

	sb.WriteString("{\n")
	if shape[0] > 0 {
		step := len(data) / shape[0]
		for i := 0; i < shape[0]; i++ {
			sb.WriteString(strings.Repeat("  ", depth+1))
			writeBlock(sb, shape[1:], data[i*step:(i+1)*step], depth+1)
			sb.WriteByte('\n')
		}
	}
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteByte('}')
}
