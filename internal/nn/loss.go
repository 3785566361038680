package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/minnet/internal/tensor"
)

// bceEpsilon bounds probabilities away from 0 and 1 before taking logarithms.
const bceEpsilon = 1e-12

// Loss is a scalar loss evaluated once for a (prediction, target) pair.
//
// Values are immutable: the loss and its gradient are fixed at construction.
type Loss[T tensor.Float] interface {
	// Value returns the scalar loss.
	Value() T

	// Gradient returns dLoss/dPrediction, shaped like the prediction.
	Gradient() *Matrix[T]
}

// LossFunc builds a Loss from a prediction and a target of identical shape.
type LossFunc[T tensor.Float] func(pred, target *Matrix[T]) (Loss[T], error)

// MSE returns a LossFunc producing MSELoss values.
func MSE[T tensor.Float]() LossFunc[T] {
	return func(pred, target *Matrix[T]) (Loss[T], error) {
		l, err := NewMSELoss(pred, target)
		if err != nil {
			return nil, err
		}
		return l, nil
	}
}

// BCE returns a LossFunc producing BCELoss values with the given gradient scale.
func BCE[T tensor.Float](gradientScale T) LossFunc[T] {
	return func(pred, target *Matrix[T]) (Loss[T], error) {
		l, err := NewBCELoss(pred, target, WithGradientScale(gradientScale))
		if err != nil {
			return nil, err
		}
		return l, nil
	}
}

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²)
// Gradient[i,j] = 2/(n*m) * (pred[i,j] - target[i,j])
//
// Example:
//
//	loss, err := nn.NewMSELoss(predictions, targets)
//	grad := loss.Gradient()
type MSELoss[T tensor.Float] struct {
	value T
	grad  *Matrix[T]
}

// NewMSELoss computes the MSE loss and its gradient.
func NewMSELoss[T tensor.Float](pred, target *Matrix[T]) (*MSELoss[T], error) {
	if err := checkLossShapes("mse", pred, target); err != nil {
		return nil, err
	}

	diff, err := pred.Sub(target)
	if err != nil {
		return nil, fmt.Errorf("mse: %w", err)
	}

	count := T(pred.Size())
	var sum T
	for _, d := range diff.Data() {
		sum += d * d
	}

	return &MSELoss[T]{
		value: sum / count,
		grad:  diff.MulScalar(2 / count),
	}, nil
}

// Value returns the mean squared error.
func (l *MSELoss[T]) Value() T {
	return l.value
}

// Gradient returns a copy of dLoss/dPrediction.
func (l *MSELoss[T]) Gradient() *Matrix[T] {
	return l.grad.Clone()
}

// BCEOption configures a BCELoss.
type BCEOption[T tensor.Float] func(*bceConfig[T])

type bceConfig[T tensor.Float] struct {
	gradientScale T
}

// WithGradientScale multiplies the BCE gradient by scale (default 1).
//
// Useful to compensate for tiny single-output batches where the 1/(n*m)
// normalization leaves the gradient too weak to move the weights.
func WithGradientScale[T tensor.Float](scale T) BCEOption[T] {
	return func(c *bceConfig[T]) {
		c.gradientScale = scale
	}
}

// BCELoss computes Binary Cross Entropy loss over probabilities.
//
// With p clamped to [eps, 1-eps], eps = 1e-12:
//
//	Loss = mean(-(y*log(p) + (1-y)*log(1-p)))
//	Gradient[i,j] = scale/(n*m) * (p - y) / max(eps, p*(1-p))
type BCELoss[T tensor.Float] struct {
	value T
	grad  *Matrix[T]
}

// NewBCELoss computes the BCE loss and its gradient.
func NewBCELoss[T tensor.Float](pred, target *Matrix[T], opts ...BCEOption[T]) (*BCELoss[T], error) {
	if err := checkLossShapes("bce", pred, target); err != nil {
		return nil, err
	}

	cfg := bceConfig[T]{gradientScale: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	grad, err := tensor.FromShape[T, tensor.R2](pred.Shape())
	if err != nil {
		return nil, fmt.Errorf("bce: %w", err)
	}

	count := float64(pred.Size())
	scale := float64(cfg.gradientScale) / count
	p, y, g := pred.Data(), target.Data(), grad.Data()

	var sum float64
	for i := range p {
		pi := math.Min(math.Max(float64(p[i]), bceEpsilon), 1-bceEpsilon)
		yi := float64(y[i])
		sum += -(yi*math.Log(pi) + (1-yi)*math.Log(1-pi))
		g[i] = T(scale * (pi - yi) / math.Max(bceEpsilon, pi*(1-pi)))
	}

	return &BCELoss[T]{
		value: T(sum / count),
		grad:  grad,
	}, nil
}

// Value returns the mean binary cross entropy.
func (l *BCELoss[T]) Value() T {
	return l.value
}

// Gradient returns a copy of dLoss/dPrediction.
func (l *BCELoss[T]) Gradient() *Matrix[T] {
	return l.grad.Clone()
}

func checkLossShapes[T tensor.Float](name string, pred, target *Matrix[T]) error {
	if !pred.Shape().Equal(target.Shape()) {
		return fmt.Errorf("%s: %w: predictions %v, targets %v",
			name, tensor.ErrShapeMismatch, pred.Shape(), target.Shape())
	}
	if pred.Size() == 0 {
		return fmt.Errorf("%s: %w: empty predictions", name, tensor.ErrShapeMismatch)
	}
	return nil
}
