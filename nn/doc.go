// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides layers and loss functions for feed-forward networks.
//
// Layers exchange [batch, features] matrices (Matrix[T]). Every layer caches
// what its Backward needs during Forward, derives its own gradients by hand
// and hands parameters to an Optimizer in UpdateParameters.
//
// Available layers:
//   - Dense: y = x @ W + b
//   - ReLU: max(0, x)
//   - Sigmoid: 1 / (1 + exp(-x))
//
// Available losses:
//   - MSE: mean squared error
//   - BCE: binary cross entropy over probabilities
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	layer, _ := nn.NewDense[float64](2, 1, rng)
//	act := nn.NewSigmoid[float64]()
//
//	z, _ := layer.Forward(x)
//	p, _ := act.Forward(z)
//	loss, _ := nn.NewBCELoss(p, y)
//
//	g, _ := act.Backward(loss.Gradient())
//	_, _ = layer.Backward(g)
//	_ = layer.UpdateParameters(optim.NewSGD[float64](optim.SGDConfig{LR: 0.1}))
package nn
