package tensor

import "fmt"

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a, _ := tensor.Full[float64, tensor.R2](1, 2, 3)
//	b, _ := tensor.Full[float64, tensor.R2](10, 1, 3)
//	c, err := a.Add(b) // shape [2, 3], b's row added to every row of a
func (t *Tensor[T, R]) Add(other *Tensor[T, R]) (*Tensor[T, R], error) {
	return broadcastBinary(t, other, "add", func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T, R]) Sub(other *Tensor[T, R]) (*Tensor[T, R], error) {
	return broadcastBinary(t, other, "sub", func(x, y T) T { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, R]) Mul(other *Tensor[T, R]) (*Tensor[T, R], error) {
	return broadcastBinary(t, other, "mul", func(x, y T) T { return x * y })
}

// Div performs element-wise division with broadcasting.
// Integer division by zero panics, as with the built-in operator.
func (t *Tensor[T, R]) Div(other *Tensor[T, R]) (*Tensor[T, R], error) {
	return broadcastBinary(t, other, "div", func(x, y T) T { return x / y })
}

// AddScalar adds s to every element.
func (t *Tensor[T, R]) AddScalar(s T) *Tensor[T, R] {
	return t.Map(func(v T) T { return v + s })
}

// SubScalar subtracts s from every element.
func (t *Tensor[T, R]) SubScalar(s T) *Tensor[T, R] {
	return t.Map(func(v T) T { return v - s })
}

// MulScalar multiplies every element by s.
func (t *Tensor[T, R]) MulScalar(s T) *Tensor[T, R] {
	return t.Map(func(v T) T { return v * s })
}

// DivScalar divides every element by s.
func (t *Tensor[T, R]) DivScalar(s T) *Tensor[T, R] {
	return t.Map(func(v T) T { return v / s })
}

// SubFrom computes s - t: every element is negated, then s is added.
// Scalar-on-the-left addition and multiplication are AddScalar and MulScalar.
func (t *Tensor[T, R]) SubFrom(s T) *Tensor[T, R] {
	return t.Map(func(v T) T { return s - v })
}

// broadcastBinary applies op over the broadcast shape of a and b.
//
// Each output coordinate is mapped back to each operand by substituting 0 on
// every axis where that operand has size 1, which is a zero stride.
func broadcastBinary[T Numeric, R Rank](a, b *Tensor[T, R], name string, op func(x, y T) T) (*Tensor[T, R], error) {
	outShape, err := BroadcastShape(a.shape, b.shape)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	out := zeros[T, R](outShape)
	if a.shape.Equal(b.shape) {
		for i := range out.data {
			out.data[i] = op(a.data[i], b.data[i])
		}
		return out, nil
	}

	rank := len(outShape)
	aStrides := broadcastStrides(a.shape, a.strides)
	bStrides := broadcastStrides(b.shape, b.strides)
	idx := make([]int, rank)
	aOff, bOff := 0, 0

	for flat := range out.data {
		out.data[flat] = op(a.data[aOff], b.data[bOff])

		// Advance the multi-index like an odometer, keeping both offsets in step.
		for axis := rank - 1; axis >= 0; axis-- {
			idx[axis]++
			aOff += aStrides[axis]
			bOff += bStrides[axis]
			if idx[axis] < outShape[axis] {
				break
			}
			aOff -= aStrides[axis] * idx[axis]
			bOff -= bStrides[axis] * idx[axis]
			idx[axis] = 0
		}
	}
	return out, nil
}

// broadcastStrides zeroes the stride of every size-1 axis.
func broadcastStrides(shape Shape, strides []int) []int {
	out := make([]int, len(strides))
	for i := range strides {
		if shape[i] != 1 {
			out[i] = strides[i]
		}
	}
	return out
}
