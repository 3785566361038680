package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/minnet/internal/tensor"
)

// Dense implements a fully connected (affine) layer.
//
// Performs the transformation: y = x @ W + b
// where:
//   - x is the input tensor with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias row with shape [1, out_features], broadcast over the batch
//   - y is the output tensor with shape [batch_size, out_features]
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	layer, _ := nn.NewDense[float64](2, 8, rng)
//
//	output, err := layer.Forward(input) // [batch, 2] -> [batch, 8]
type Dense[T tensor.Float] struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter[T] // [in_features, out_features]
	bias        *Parameter[T] // [1, out_features]
	input       *Matrix[T]    // cached by Forward, consumed by Backward
}

// NewDense creates a Dense layer with Xavier-uniform weights and zero biases.
//
// rng drives the weight initialization and must not be nil; pass a seeded
// generator for reproducible networks.
func NewDense[T tensor.Float](inFeatures, outFeatures int, rng *rand.Rand) (*Dense[T], error) {
	if rng == nil {
		return nil, fmt.Errorf("dense: %w: Xavier initialization needs rng", ErrNilRand)
	}
	return NewDenseWithInit(inFeatures, outFeatures, Xavier[T], Zeros[T], rng)
}

// NewDenseWithInit creates a Dense layer using explicit initializers for the
// weight and bias tensors. rng may be nil only if neither initializer draws
// from it.
func NewDenseWithInit[T tensor.Float](inFeatures, outFeatures int, initW, initB Initializer[T], rng *rand.Rand) (*Dense[T], error) {
	if inFeatures <= 0 || outFeatures <= 0 {
		return nil, fmt.Errorf("dense: %w: features must be positive, got %d -> %d",
			tensor.ErrShapeMismatch, inFeatures, outFeatures)
	}

	w, err := tensor.New[T, tensor.R2](inFeatures, outFeatures)
	if err != nil {
		return nil, fmt.Errorf("dense: %w", err)
	}
	b, err := tensor.New[T, tensor.R2](1, outFeatures)
	if err != nil {
		return nil, fmt.Errorf("dense: %w", err)
	}
	initW(w, inFeatures, outFeatures, rng)
	initB(b, inFeatures, outFeatures, rng)

	return newDense(w, b), nil
}

// NewDenseFrom creates a Dense layer around existing weight [in, out] and
// bias [1, out] tensors. The layer takes ownership of both.
func NewDenseFrom[T tensor.Float](weight, bias *Matrix[T]) (*Dense[T], error) {
	if weight.Size() == 0 {
		return nil, fmt.Errorf("dense: %w: empty weight %v", tensor.ErrShapeMismatch, weight.Shape())
	}
	want := tensor.Shape{1, weight.Dim(1)}
	if !bias.Shape().Equal(want) {
		return nil, fmt.Errorf("dense: %w: bias shape %v, expected %v",
			tensor.ErrShapeMismatch, bias.Shape(), want)
	}
	return newDense(weight, bias), nil
}

func newDense[T tensor.Float](w, b *Matrix[T]) *Dense[T] {
	return &Dense[T]{
		inFeatures:  w.Dim(0),
		outFeatures: w.Dim(1),
		weight:      NewParameter("weight", w),
		bias:        NewParameter("bias", b),
	}
}

// Forward computes y = x @ W + b and caches x for Backward.
func (l *Dense[T]) Forward(x *Matrix[T]) (*Matrix[T], error) {
	if x.Dim(0) == 0 {
		return nil, fmt.Errorf("dense forward: %w: empty batch", tensor.ErrShapeMismatch)
	}

	y, err := tensor.MatMul(x, l.weight.Tensor())
	if err != nil {
		return nil, fmt.Errorf("dense forward: %w", err)
	}
	y, err = y.Add(l.bias.Tensor())
	if err != nil {
		return nil, fmt.Errorf("dense forward: %w", err)
	}

	l.input = x.Clone()
	return y, nil
}

// Backward derives the parameter gradients from the cached input and returns
// the gradient w.r.t. the input.
//
//	dW = xᵀ @ dZ / batch
//	db = sum over batch of dZ / batch
//	dX = dZ @ Wᵀ
//
// dW and db are stored on the weight and bias parameters for UpdateParameters.
func (l *Dense[T]) Backward(dZ *Matrix[T]) (*Matrix[T], error) {
	if l.input == nil {
		return nil, fmt.Errorf("dense backward: %w: no cached input, call Forward first", ErrInvalidState)
	}

	batch := l.input.Dim(0)
	want := tensor.Shape{batch, l.outFeatures}
	if !dZ.Shape().Equal(want) {
		return nil, fmt.Errorf("dense backward: %w: gradient shape %v, expected %v",
			tensor.ErrShapeMismatch, dZ.Shape(), want)
	}

	xT, err := tensor.Transpose2D(l.input)
	if err != nil {
		return nil, fmt.Errorf("dense backward: %w", err)
	}
	dW, err := tensor.MatMul(xT, dZ)
	if err != nil {
		return nil, fmt.Errorf("dense backward: %w", err)
	}
	dW = dW.DivScalar(T(batch))

	db, err := tensor.New[T, tensor.R2](1, l.outFeatures)
	if err != nil {
		return nil, fmt.Errorf("dense backward: %w", err)
	}
	dbData, dzData := db.Data(), dZ.Data()
	for i := 0; i < batch; i++ {
		row := dzData[i*l.outFeatures : (i+1)*l.outFeatures]
		for j, g := range row {
			dbData[j] += g
		}
	}
	for j := range dbData {
		dbData[j] /= T(batch)
	}

	wT, err := tensor.Transpose2D(l.weight.Tensor())
	if err != nil {
		return nil, fmt.Errorf("dense backward: %w", err)
	}
	dX, err := tensor.MatMul(dZ, wT)
	if err != nil {
		return nil, fmt.Errorf("dense backward: %w", err)
	}

	l.weight.SetGrad(dW)
	l.bias.SetGrad(db)
	l.input = nil
	return dX, nil
}

// UpdateParameters applies the cached gradients: weight first, then bias.
func (l *Dense[T]) UpdateParameters(opt Optimizer[T]) error {
	if l.weight.Grad() == nil || l.bias.Grad() == nil {
		return fmt.Errorf("dense update: %w: no gradients, call Backward first", ErrInvalidState)
	}
	if err := opt.Update(l.weight, l.weight.Grad()); err != nil {
		return fmt.Errorf("dense update weight: %w", err)
	}
	if err := opt.Update(l.bias, l.bias.Grad()); err != nil {
		return fmt.Errorf("dense update bias: %w", err)
	}
	return nil
}

// Parameters returns [weight, bias].
func (l *Dense[T]) Parameters() []*Parameter[T] {
	return []*Parameter[T]{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Dense[T]) Weight() *Parameter[T] {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Dense[T]) Bias() *Parameter[T] {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Dense[T]) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Dense[T]) OutFeatures() int {
	return l.outFeatures
}
