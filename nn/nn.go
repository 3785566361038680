// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/minnet/internal/nn"
	"github.com/born-ml/minnet/internal/tensor"
)

// ErrInvalidState is returned when a layer propagates or applies gradients
// it has not computed yet.
var ErrInvalidState = nn.ErrInvalidState

// ErrNilRand is returned when a random initializer is given no generator.
var ErrNilRand = nn.ErrNilRand

// Matrix is the rank-2 [batch, features] tensor layers consume and produce.
type Matrix[T tensor.Float] = nn.Matrix[T]

// Layer is the contract implemented by every layer.
type Layer[T tensor.Float] = nn.Layer[T]

// Optimizer is the update capability layers require.
type Optimizer[T tensor.Float] = nn.Optimizer[T]

// Parameter represents a trainable parameter in a neural network.
type Parameter[T tensor.Float] = nn.Parameter[T]

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter[T tensor.Float](name string, t *Matrix[T]) *Parameter[T] {
	return nn.NewParameter(name, t)
}

// Initializers

// Initializer fills a [fanIn, fanOut] (or [1, fanOut]) tensor in place.
type Initializer[T tensor.Float] = nn.Initializer[T]

// Xavier fills t from U(-sqrt(6/(fanIn+fanOut)), +sqrt(6/(fanIn+fanOut))).
func Xavier[T tensor.Float](t *Matrix[T], fanIn, fanOut int, rng *rand.Rand) {
	nn.Xavier(t, fanIn, fanOut, rng)
}

// He fills t from N(0, 2/fanIn).
func He[T tensor.Float](t *Matrix[T], fanIn, fanOut int, rng *rand.Rand) {
	nn.He(t, fanIn, fanOut, rng)
}

// Zeros fills t with zeros.
func Zeros[T tensor.Float](t *Matrix[T], fanIn, fanOut int, rng *rand.Rand) {
	nn.Zeros(t, fanIn, fanOut, rng)
}

// Constant returns an Initializer filling with v.
func Constant[T tensor.Float](v T) Initializer[T] {
	return nn.Constant(v)
}

// Layers

// Dense represents a fully connected layer.
type Dense[T tensor.Float] = nn.Dense[T]

// NewDense creates a Dense layer with Xavier weights and zero biases.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	layer, err := nn.NewDense[float64](784, 128, rng)
func NewDense[T tensor.Float](inFeatures, outFeatures int, rng *rand.Rand) (*Dense[T], error) {
	return nn.NewDense[T](inFeatures, outFeatures, rng)
}

// NewDenseWithInit creates a Dense layer with explicit initializers.
func NewDenseWithInit[T tensor.Float](inFeatures, outFeatures int, initW, initB Initializer[T], rng *rand.Rand) (*Dense[T], error) {
	return nn.NewDenseWithInit(inFeatures, outFeatures, initW, initB, rng)
}

// NewDenseFrom creates a Dense layer around a [in, out] weight and [1, out] bias.
func NewDenseFrom[T tensor.Float](weight, bias *Matrix[T]) (*Dense[T], error) {
	return nn.NewDenseFrom(weight, bias)
}

// Activations

// ReLU represents the rectified linear unit activation.
type ReLU[T tensor.Float] = nn.ReLU[T]

// NewReLU creates a ReLU activation layer.
func NewReLU[T tensor.Float]() *ReLU[T] {
	return nn.NewReLU[T]()
}

// Sigmoid represents the logistic activation.
type Sigmoid[T tensor.Float] = nn.Sigmoid[T]

// NewSigmoid creates a Sigmoid activation layer.
func NewSigmoid[T tensor.Float]() *Sigmoid[T] {
	return nn.NewSigmoid[T]()
}

// Loss functions

// Loss is a scalar loss with its gradient w.r.t. the predictions.
type Loss[T tensor.Float] = nn.Loss[T]

// LossFunc builds a Loss from predictions and targets.
type LossFunc[T tensor.Float] = nn.LossFunc[T]

// MSELoss is the mean squared error.
type MSELoss[T tensor.Float] = nn.MSELoss[T]

// BCELoss is the binary cross entropy.
type BCELoss[T tensor.Float] = nn.BCELoss[T]

// BCEOption configures a BCELoss.
type BCEOption[T tensor.Float] = nn.BCEOption[T]

// NewMSELoss computes the MSE loss of pred against target.
func NewMSELoss[T tensor.Float](pred, target *Matrix[T]) (*MSELoss[T], error) {
	return nn.NewMSELoss(pred, target)
}

// NewBCELoss computes the BCE loss of pred against target.
//
// Example:
//
//	loss, err := nn.NewBCELoss(probs, labels, nn.WithGradientScale(8.0))
func NewBCELoss[T tensor.Float](pred, target *Matrix[T], opts ...BCEOption[T]) (*BCELoss[T], error) {
	return nn.NewBCELoss(pred, target, opts...)
}

// WithGradientScale multiplies the BCE gradient by scale.
func WithGradientScale[T tensor.Float](scale T) BCEOption[T] {
	return nn.WithGradientScale(scale)
}

// MSE returns a LossFunc for mean squared error.
func MSE[T tensor.Float]() LossFunc[T] {
	return nn.MSE[T]()
}

// BCE returns a LossFunc for binary cross entropy with the given gradient scale.
func BCE[T tensor.Float](gradientScale T) LossFunc[T] {
	return nn.BCE(gradientScale)
}
