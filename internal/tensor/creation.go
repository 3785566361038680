package tensor

import "math/rand"

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t, err := tensor.Full[float64, tensor.R2](3.14, 3, 3)
func Full[T Numeric, R Rank](value T, dims ...int) (*Tensor[T, R], error) {
	t, err := New[T, R](dims...)
	if err != nil {
		return nil, err
	}
	t.Fill(value)
	return t, nil
}

// Zeros creates a tensor filled with zeros. It is New under a clearer name.
func Zeros[T Numeric, R Rank](dims ...int) (*Tensor[T, R], error) {
	return New[T, R](dims...)
}

// Ones creates a tensor filled with ones.
func Ones[T Numeric, R Rank](dims ...int) (*Tensor[T, R], error) {
	return Full[T, R](1, dims...)
}

// Uniform creates a tensor with values drawn uniformly from [low, high) using rng.
//
// The generator is supplied by the caller so initialization is reproducible
// without hidden global state.
func Uniform[T Float, R Rank](rng *rand.Rand, low, high T, dims ...int) (*Tensor[T, R], error) {
	t, err := New[T, R](dims...)
	if err != nil {
		return nil, err
	}
	span := float64(high - low)
	for i := range t.data {
		t.data[i] = low + T(rng.Float64()*span)
	}
	return t, nil
}
