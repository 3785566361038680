// Package network implements the sequential NeuralNetwork container.
//
// A NeuralNetwork owns an ordered list of layers. Predict runs them front to
// back; Train runs forward, loss, backward and parameter updates for a fixed
// number of epochs.
package network

import (
	"errors"
	"fmt"

	"github.com/born-ml/minnet/internal/nn"
	"github.com/born-ml/minnet/internal/tensor"
)

// ErrInvalidConfig is returned by Train for unusable training settings.
var ErrInvalidConfig = errors.New("invalid training config")

// NeuralNetwork chains layers so that each layer's output feeds the next.
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
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
//	    LearningRate: 0.1,
//	})
type NeuralNetwork[T tensor.Float] struct {
	layers []nn.Layer[T]
}

// New creates an empty network.
func New[T tensor.Float]() *NeuralNetwork[T] {
	return &NeuralNetwork[T]{}
}

// AddLayer appends layer to the end of the network.
//
// The network takes ownership: a layer must not be added to two networks or
// twice to the same one, since its Forward cache is per instance.
func (n *NeuralNetwork[T]) AddLayer(layer nn.Layer[T]) {
	n.layers = append(n.layers, layer)
}

// Len returns the number of layers.
func (n *NeuralNetwork[T]) Len() int {
	return len(n.layers)
}

// Layer returns the i-th layer in insertion order.
func (n *NeuralNetwork[T]) Layer(i int) nn.Layer[T] {
	return n.layers[i]
}

// Parameters returns the trainable parameters of all layers in order.
func (n *NeuralNetwork[T]) Parameters() []*nn.Parameter[T] {
	var params []*nn.Parameter[T]
	for _, layer := range n.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// Predict runs x through every layer in insertion order.
//
// Layers cache their inputs as a side effect, exactly as during training.
// An empty network returns a copy of x.
func (n *NeuralNetwork[T]) Predict(x *nn.Matrix[T]) (*nn.Matrix[T], error) {
	output := x.Clone()
	for i, layer := range n.layers {
		var err error
		output, err = layer.Forward(output)
		if err != nil {
			return nil, fmt.Errorf("layer %d forward: %w", i, err)
		}
	}
	return output, nil
}

// backward propagates grad from the last layer to the first.
func (n *NeuralNetwork[T]) backward(grad *nn.Matrix[T]) error {
	for i := len(n.layers) - 1; i >= 0; i-- {
		var err error
		grad, err = n.layers[i].Backward(grad)
		if err != nil {
			return fmt.Errorf("layer %d backward: %w", i, err)
		}
	}
	return nil
}

// update hands every layer's cached gradients to opt.
func (n *NeuralNetwork[T]) update(opt nn.Optimizer[T]) error {
	for i, layer := range n.layers {
		if err := layer.UpdateParameters(opt); err != nil {
			return fmt.Errorf("layer %d update: %w", i, err)
		}
	}
	return nil
}

// step runs one forward/loss/backward/update cycle and returns the loss.
func (n *NeuralNetwork[T]) step(x, y *nn.Matrix[T], lossFn nn.LossFunc[T], opt nn.Optimizer[T]) (T, error) {
	pred, err := n.Predict(x)
	if err != nil {
		return 0, err
	}
	loss, err := lossFn(pred, y)
	if err != nil {
		return 0, fmt.Errorf("loss: %w", err)
	}
	if err := n.backward(loss.Gradient()); err != nil {
		return 0, err
	}
	if err := n.update(opt); err != nil {
		return 0, err
	}
	return loss.Value(), nil
}
