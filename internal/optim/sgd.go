package optim

import (
	"github.com/born-ml/minnet/internal/nn"
	"github.com/born-ml/minnet/internal/tensor"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Without momentum SGD keeps no state besides the learning rate.
//
// Example:
//
//	optimizer := optim.NewSGD[float64](optim.SGDConfig{LR: 0.01})
type SGD[T tensor.Float] struct {
	lr         T
	momentum   T
	velocities map[*nn.Parameter[T]]*nn.Matrix[T]
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD[T tensor.Float](config SGDConfig) *SGD[T] {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD[T]{
		lr:         T(config.LR),
		momentum:   T(config.Momentum),
		velocities: make(map[*nn.Parameter[T]]*nn.Matrix[T]),
	}
}

// Update applies one SGD step to param in place.
func (s *SGD[T]) Update(param *nn.Parameter[T], grad *nn.Matrix[T]) error {
	if err := checkGradient(param, grad); err != nil {
		return err
	}

	paramData := param.Tensor().Data()
	gradData := grad.Data()

	if s.momentum == 0 {
		for i := range paramData {
			paramData[i] -= s.lr * gradData[i]
		}
		return nil
	}

	velocity, exists := s.velocities[param]
	if !exists {
		velocity = param.Tensor().Map(func(T) T { return 0 })
		s.velocities[param] = velocity
	}
	vData := velocity.Data()
	for i := range paramData {
		vData[i] = s.momentum*vData[i] + gradData[i]
		paramData[i] -= s.lr * vData[i]
	}
	return nil
}

// Step applies the stored gradients of params.
func (s *SGD[T]) Step(params []*nn.Parameter[T]) error {
	return step[T](s, params)
}

// GetLR returns the current learning rate.
func (s *SGD[T]) GetLR() T {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD[T]) SetLR(lr T) {
	s.lr = lr
}
