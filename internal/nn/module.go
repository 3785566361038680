// Package nn implements the layers and losses of the minnet toolkit.
//
// This package provides building blocks for feed-forward networks:
//   - Layer interface: forward/backward/update contract shared by all layers
//   - Parameter: Trainable tensor with an identity usable as an optimizer key
//   - Dense: Fully connected (affine) layer
//   - Activations: ReLU, Sigmoid
//   - Loss functions: MSE, BCE
//
// Gradients are derived by hand per layer; there is no autodiff graph.
package nn

import (
	"errors"

	"github.com/born-ml/minnet/internal/tensor"
)

// ErrInvalidState is returned when a layer is asked to propagate or apply
// gradients it has not computed yet (e.g. Backward before Forward).
var ErrInvalidState = errors.New("invalid layer state")

// ErrNilRand is returned when a random initializer is given no generator.
var ErrNilRand = errors.New("nil random generator")

// Matrix is the rank-2 [batch, features] tensor every layer consumes and produces.
type Matrix[T tensor.Float] = tensor.Tensor[T, tensor.R2]

// Layer is the contract implemented by every network layer.
//
// A layer caches whatever Forward needs for the following Backward call on
// the same layer; that cache is valid only between those two calls.
//
//	y, _ := layer.Forward(x)
//	dx, _ := layer.Backward(dy)
//	_ = layer.UpdateParameters(optimizer)
type Layer[T tensor.Float] interface {
	// Forward computes the layer output for a [batch, in] input.
	Forward(x *Matrix[T]) (*Matrix[T], error)

	// Backward takes the loss gradient w.r.t. the layer output and returns the
	// gradient w.r.t. the layer input. Parameter gradients are cached for
	// UpdateParameters.
	Backward(grad *Matrix[T]) (*Matrix[T], error)

	// UpdateParameters hands every parameter and its cached gradient to opt.
	// Layers without parameters do nothing.
	UpdateParameters(opt Optimizer[T]) error

	// Parameters returns all trainable parameters of this layer.
	Parameters() []*Parameter[T]
}

// Optimizer is the update capability layers need from an optimizer.
//
// Implementations keep any per-parameter state keyed by the *Parameter
// identity, so one instance can serve every parameter of every layer.
type Optimizer[T tensor.Float] interface {
	Update(param *Parameter[T], grad *Matrix[T]) error
}
