package main

import (
	"math/rand"

	"github.com/born-ml/minnet/nn"
	"github.com/born-ml/minnet/tensor"
)

// separableDataset draws n points from U(-1, 1)² labelled 1 when x0 + x1 > 0.
func separableDataset(n int, rng *rand.Rand) (*nn.Matrix[float64], *nn.Matrix[float64], error) {
	x, err := tensor.Uniform[float64, tensor.R2](rng, -1, 1, n, 2)
	if err != nil {
		return nil, nil, err
	}

	labels := make([]float64, n)
	data := x.Data()
	for i := range labels {
		if data[2*i]+data[2*i+1] > 0 {
			labels[i] = 1
		}
	}
	y, err := tensor.FromSlice[float64, tensor.R2](labels, n, 1)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

// accuracy thresholds probs at 0.5 and compares against 0/1 labels.
func accuracy(probs, labels *nn.Matrix[float64]) float64 {
	p, y := probs.Data(), labels.Data()
	if len(p) == 0 {
		return 0
	}
	correct := 0
	for i := range p {
		predicted := 0.0
		if p[i] >= 0.5 {
			predicted = 1
		}
		if predicted == y[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(p))
}
