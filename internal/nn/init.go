package nn

import (
	"math"
	"math/rand"

	"github.com/born-ml/minnet/internal/tensor"
)

// Initializer fills a freshly allocated parameter tensor.
//
// fanIn and fanOut are the layer's input and output feature counts; rng is
// the caller-supplied generator. Xavier and He require a non-nil rng; Zeros
// and Constant ignore it.
type Initializer[T tensor.Float] func(t *Matrix[T], fanIn, fanOut int, rng *rand.Rand)

// Xavier (Glorot) initialization for weights.
//
// Initializes weights with values drawn from a uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out)))
func Xavier[T tensor.Float](t *Matrix[T], fanIn, fanOut int, rng *rand.Rand) {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	data := t.Data()
	for i := range data {
		data[i] = T((rng.Float64()*2.0 - 1.0) * bound)
	}
}

// He initialization for weights feeding a ReLU.
//
// Values are drawn from N(0, 2/fan_in).
func He[T tensor.Float](t *Matrix[T], fanIn, _ int, rng *rand.Rand) {
	std := math.Sqrt(2.0 / float64(fanIn))
	data := t.Data()
	for i := range data {
		data[i] = T(rng.NormFloat64() * std)
	}
}

// Zeros leaves the tensor at zero. Commonly used for biases.
func Zeros[T tensor.Float](t *Matrix[T], _, _ int, _ *rand.Rand) {
	t.Fill(0)
}

// Constant returns an initializer that fills the tensor with v.
func Constant[T tensor.Float](v T) Initializer[T] {
	return func(t *Matrix[T], _, _ int, _ *rand.Rand) {
		t.Fill(v)
	}
}
