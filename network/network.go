// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package network provides the sequential NeuralNetwork container.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	net := network.New[float64]()
//	hidden, _ := nn.NewDense[float64](2, 8, rng)
//	out, _ := nn.NewDense[float64](8, 1, rng)
//	net.AddLayer(hidden)
//	net.AddLayer(nn.NewReLU[float64]())
//	net.AddLayer(out)
//	net.AddLayer(nn.NewSigmoid[float64]())
//
//	history, err := net.Train(x, y, network.TrainConfig[float64]{
//	    Epochs:       500,
//	    BatchSize:    16,
//	    LearningRate: 0.01,
//	    Loss:         nn.BCE[float64](1),
//	    Optimizer:    optim.AdamFactory[float64](optim.AdamConfig{}),
//	    Rand:         rng,
//	})
//	probs, err := net.Predict(x)
package network

import (
	"github.com/born-ml/minnet/internal/network"
	"github.com/born-ml/minnet/internal/tensor"
)

// ErrInvalidConfig is returned by Train for unusable training settings.
var ErrInvalidConfig = network.ErrInvalidConfig

// NeuralNetwork chains layers so that each layer's output feeds the next.
type NeuralNetwork[T tensor.Float] = network.NeuralNetwork[T]

// TrainConfig holds the settings for a Train call.
type TrainConfig[T tensor.Float] = network.TrainConfig[T]

// History records the per-epoch loss of a Train call.
type History[T tensor.Float] = network.History[T]

// New creates an empty network.
func New[T tensor.Float]() *NeuralNetwork[T] {
	return network.New[T]()
}
