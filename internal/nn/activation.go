package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/minnet/internal/tensor"
)

// ReLU is a Rectified Linear Unit activation layer.
//
// Applies the element-wise function: f(x) = max(0, x)
//
// Example:
//
//	relu := nn.NewReLU[float64]()
//	output, _ := relu.Forward(input) // All negative values become 0
type ReLU[T tensor.Float] struct {
	lastZ *Matrix[T]
}

// NewReLU creates a new ReLU activation layer.
func NewReLU[T tensor.Float]() *ReLU[T] {
	return &ReLU[T]{}
}

// Forward caches z and returns max(0, z).
func (r *ReLU[T]) Forward(z *Matrix[T]) (*Matrix[T], error) {
	r.lastZ = z.Clone()
	return z.Map(func(v T) T {
		if v > 0 {
			return v
		}
		return 0
	}), nil
}

// Backward passes g through where the cached pre-activation was positive and
// zeroes it everywhere else.
func (r *ReLU[T]) Backward(g *Matrix[T]) (*Matrix[T], error) {
	if r.lastZ == nil {
		return nil, fmt.Errorf("relu backward: %w: call Forward first", ErrInvalidState)
	}
	if !g.Shape().Equal(r.lastZ.Shape()) {
		return nil, fmt.Errorf("relu backward: %w: gradient %v, activation %v",
			tensor.ErrShapeMismatch, g.Shape(), r.lastZ.Shape())
	}

	out := g.Clone()
	grad, z := out.Data(), r.lastZ.Data()
	for i := range grad {
		if z[i] <= 0 {
			grad[i] = 0
		}
	}
	r.lastZ = nil
	return out, nil
}

// UpdateParameters is a no-op (ReLU has no trainable parameters).
func (r *ReLU[T]) UpdateParameters(Optimizer[T]) error {
	return nil
}

// Parameters returns nil (ReLU has no trainable parameters).
func (r *ReLU[T]) Parameters() []*Parameter[T] {
	return nil
}

// Sigmoid is a logistic activation layer.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x))
//
// Sigmoid squashes values to the range (0, 1), making it useful for
// binary classification outputs.
type Sigmoid[T tensor.Float] struct {
	lastA *Matrix[T]
}

// NewSigmoid creates a new Sigmoid activation layer.
func NewSigmoid[T tensor.Float]() *Sigmoid[T] {
	return &Sigmoid[T]{}
}

// Forward computes σ(z) and caches the activation.
func (s *Sigmoid[T]) Forward(z *Matrix[T]) (*Matrix[T], error) {
	a := z.Map(func(v T) T { return T(logistic(float64(v))) })
	s.lastA = a.Clone()
	return a, nil
}

// Backward returns g * a * (1 - a) using the cached activation.
func (s *Sigmoid[T]) Backward(g *Matrix[T]) (*Matrix[T], error) {
	if s.lastA == nil {
		return nil, fmt.Errorf("sigmoid backward: %w: call Forward first", ErrInvalidState)
	}
	if !g.Shape().Equal(s.lastA.Shape()) {
		return nil, fmt.Errorf("sigmoid backward: %w: gradient %v, activation %v",
			tensor.ErrShapeMismatch, g.Shape(), s.lastA.Shape())
	}

	out := g.Clone()
	grad, a := out.Data(), s.lastA.Data()
	for i := range grad {
		grad[i] *= a[i] * (1 - a[i])
	}
	s.lastA = nil
	return out, nil
}

// UpdateParameters is a no-op (Sigmoid has no trainable parameters).
func (s *Sigmoid[T]) UpdateParameters(Optimizer[T]) error {
	return nil
}

// Parameters returns nil (Sigmoid has no trainable parameters).
func (s *Sigmoid[T]) Parameters() []*Parameter[T] {
	return nil
}

// logistic is a numerically stable sigmoid: exp never sees a large positive argument.
func logistic(x float64) float64 {
	if x < 0 {
		e := math.Exp(x)
		return e / (1 + e)
	}
	return 1 / (1 + math.Exp(-x))
}
