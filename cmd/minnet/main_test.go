package main

import (
	"math/rand"
	"testing"

	"github.com/born-ml/minnet/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeparableDataset(t *testing.T) {
	x, y, err := separableDataset(50, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{50, 2}, x.Shape())
	assert.Equal(t, tensor.Shape{50, 1}, y.Shape())

	for i, label := range y.Data() {
		sum := x.Data()[2*i] + x.Data()[2*i+1]
		assert.Equal(t, sum > 0, label == 1, "row %d", i)
	}
}

func TestAccuracy(t *testing.T) {
	probs, err := tensor.FromSlice[float64, tensor.R2]([]float64{0.9, 0.2, 0.6, 0.4}, 4, 1)
	require.NoError(t, err)
	labels, err := tensor.FromSlice[float64, tensor.R2]([]float64{1, 0, 0, 0}, 4, 1)
	require.NoError(t, err)

	assert.InDelta(t, 0.75, accuracy(probs, labels), 1e-12)
}

func TestRunDemo(t *testing.T) {
	err := runDemo([]string{"-samples", "40", "-epochs", "5", "-batch", "8", "-log-every", "5"})
	require.NoError(t, err)

	require.Error(t, runDemo([]string{"-optimizer", "rmsprop", "-epochs", "1"}))
	require.Error(t, runDemo([]string{"-loss", "hinge", "-epochs", "1"}))
}

func TestRunDemoRejectsLogEvery(t *testing.T) {
	for _, every := range []string{"0", "-3"} {
		err := runDemo([]string{"-epochs", "2", "-log-every", every})
		require.Error(t, err, "log-every %s", every)
		assert.Contains(t, err.Error(), "-log-every")
	}
}

func TestBuildClassifier(t *testing.T) {
	net, err := buildClassifier(4, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 4, net.Len())
	assert.Len(t, net.Parameters(), 4)
}
