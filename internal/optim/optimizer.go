// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers mutate parameters in place. Any per-parameter state (momentum
// velocity, Adam moments) is keyed by the *nn.Parameter identity, so a single
// optimizer instance can serve every parameter of every layer.
//
// Example usage:
//
//	optimizer := optim.NewAdam[float64](optim.AdamConfig{LR: 0.001})
//
//	for epoch := range epochs {
//	    ... forward, loss, backward ...
//	    for _, layer := range layers {
//	        if err := layer.UpdateParameters(optimizer); err != nil {
//	            return err
//	        }
//	    }
//	}
package optim

import (
	"fmt"

	"github.com/born-ml/minnet/internal/nn"
	"github.com/born-ml/minnet/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Update: Apply one gradient to one parameter (the nn.Optimizer capability)
//   - Step: Apply the stored gradients of a set of parameters
//   - GetLR / SetLR: Learning rate access (for monitoring/scheduling)
type Optimizer[T tensor.Float] interface {
	nn.Optimizer[T]

	// Step applies Update to every parameter with a stored gradient.
	// Parameters whose gradient is nil are skipped.
	Step(params []*nn.Parameter[T]) error

	// GetLR returns the current learning rate.
	GetLR() T

	// SetLR updates the learning rate.
	SetLR(lr T)
}

// Factory builds a fresh optimizer for the given learning rate.
type Factory[T tensor.Float] func(lr T) nn.Optimizer[T]

// SGDFactory returns a Factory producing plain SGD optimizers.
func SGDFactory[T tensor.Float]() Factory[T] {
	return func(lr T) nn.Optimizer[T] {
		return NewSGD[T](SGDConfig{LR: float64(lr)})
	}
}

// AdamFactory returns a Factory producing Adam optimizers with the given
// betas and epsilon; zero values take the Adam defaults.
func AdamFactory[T tensor.Float](config AdamConfig) Factory[T] {
	return func(lr T) nn.Optimizer[T] {
		c := config
		c.LR = float64(lr)
		return NewAdam[T](c)
	}
}

// step is the shared Step implementation.
func step[T tensor.Float](opt nn.Optimizer[T], params []*nn.Parameter[T]) error {
	for _, param := range params {
		grad := param.Grad()
		if grad == nil {
			// Parameter didn't take part in the last backward pass, skip
			continue
		}
		if err := opt.Update(param, grad); err != nil {
			return fmt.Errorf("parameter %q: %w", param.Name(), err)
		}
	}
	return nil
}

// checkGradient validates that grad matches the parameter shape.
func checkGradient[T tensor.Float](param *nn.Parameter[T], grad *nn.Matrix[T]) error {
	if !param.Tensor().Shape().Equal(grad.Shape()) {
		return fmt.Errorf("%w: parameter %q has shape %v, gradient %v",
			tensor.ErrShapeMismatch, param.Name(), param.Tensor().Shape(), grad.Shape())
	}
	return nil
}
