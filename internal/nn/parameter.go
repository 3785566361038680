package nn

import (
	"github.com/born-ml/minnet/internal/tensor"
)

// Parameter represents a trainable parameter in a neural network.
//
// The *Parameter pointer is the stable identity optimizers key their state by:
// it is created once with the layer and lives as long as the layer does.
//
// Example:
//
//	weight := nn.NewParameter("weight", weightTensor)
//	w := weight.Tensor()
//	grad := weight.Grad() // nil until the layer's first Backward
type Parameter[T tensor.Float] struct {
	name   string     // Parameter name (e.g., "weight", "bias")
	tensor *Matrix[T] // The parameter tensor, updated in place
	grad   *Matrix[T] // Gradient from the last backward pass
}

// NewParameter creates a new trainable parameter.
func NewParameter[T tensor.Float](name string, t *Matrix[T]) *Parameter[T] {
	return &Parameter[T]{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter[T]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[T]) Tensor() *Matrix[T] {
	return p.tensor
}

// Grad returns the gradient tensor.
//
// Returns nil if no gradient has been computed yet (before backward pass).
func (p *Parameter[T]) Grad() *Matrix[T] {
	return p.grad
}

// SetGrad sets the gradient tensor.
func (p *Parameter[T]) SetGrad(grad *Matrix[T]) {
	p.grad = grad
}

// ZeroGrad clears the gradient tensor.
func (p *Parameter[T]) ZeroGrad() {
	p.grad = nil
}
