// Package tensor provides the fixed-rank tensor type and its operations for the minnet toolkit.
package tensor

// Numeric is a constraint for supported tensor element types.
// It uses Go generics to ensure compile-time type safety.
type Numeric interface {
	~float32 | ~float64 | ~int32 | ~int64
}

// Float is the subset of Numeric used by layers, losses and optimizers.
type Float interface {
	~float32 | ~float64
}

// Rank is a type-level marker fixing the number of axes of a tensor.
//
// A Tensor[T, R] can only ever hold shapes of length R.Rank(); constructors
// and Reshape reject dimension lists of any other length.
type Rank interface {
	Rank() int
}

// Supported ranks.
type (
	R1 struct{}
	R2 struct{}
	R3 struct{}
	R4 struct{}
)

// Rank returns 1.
func (R1) Rank() int { return 1 }

// Rank returns 2.
func (R2) Rank() int { return 2 }

// Rank returns 3.
func (R3) Rank() int { return 3 }

// Rank returns 4.
func (R4) Rank() int { return 4 }

// rankOf returns the rank fixed by the marker type R.
func rankOf[R Rank]() int {
	var r R
	return r.Rank()
}
