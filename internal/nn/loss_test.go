package nn_test

import (
	"math"
	"testing"

	"github.com/born-ml/minnet/internal/nn"
	"github.com/born-ml/minnet/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestMSELoss(t *testing.T) {
	pred := matrix(t, []float64{1, 2, 3, 4}, 2, 2)
	target := matrix(t, []float64{0, 2, 5, 4}, 2, 2)

	loss, err := nn.NewMSELoss(pred, target)
	require.NoError(t, err)

	// (1 + 0 + 4 + 0) / 4
	assert.InDelta(t, 1.25, loss.Value(), 1e-12)
	// 2/4 * (p - y)
	assert.True(t, floats.EqualApprox([]float64{0.5, 0, -1, 0}, loss.Gradient().Data(), 1e-12))
}

func TestMSELossGradientIsCopy(t *testing.T) {
	loss, err := nn.NewMSELoss(matrix(t, []float64{1}, 1, 1), matrix(t, []float64{0}, 1, 1))
	require.NoError(t, err)

	g := loss.Gradient()
	g.Data()[0] = 100
	assert.InDelta(t, 2.0, loss.Gradient().Data()[0], 1e-12)
}

func TestBCELoss(t *testing.T) {
	pred := matrix(t, []float64{0.9, 0.2}, 2, 1)
	target := matrix(t, []float64{1, 0}, 2, 1)

	loss, err := nn.NewBCELoss(pred, target)
	require.NoError(t, err)

	expected := -(math.Log(0.9) + math.Log(0.8)) / 2
	assert.InDelta(t, expected, loss.Value(), 1e-12)

	// (1/2) * (p - y) / (p(1-p))
	g := loss.Gradient().Data()
	assert.InDelta(t, 0.5*(0.9-1)/(0.9*0.1), g[0], 1e-9)
	assert.InDelta(t, 0.5*(0.2-0)/(0.2*0.8), g[1], 1e-9)
}

func TestBCELossClampsProbabilities(t *testing.T) {
	pred := matrix(t, []float64{0, 1}, 1, 2)
	target := matrix(t, []float64{1, 0}, 1, 2)

	loss, err := nn.NewBCELoss(pred, target)
	require.NoError(t, err)

	assert.False(t, math.IsInf(loss.Value(), 0) || math.IsNaN(loss.Value()))
	assert.InDelta(t, -math.Log(1e-12), loss.Value(), 1e-3)
	for _, v := range loss.Gradient().Data() {
		assert.False(t, math.IsInf(v, 0) || math.IsNaN(v))
	}
}

func TestBCEGradientScale(t *testing.T) {
	// The scale is explicit: four single-output rows get no implicit boost.
	pred := matrix(t, []float64{0.3, 0.6, 0.8, 0.1}, 4, 1)
	target := matrix(t, []float64{0, 1, 1, 0}, 4, 1)

	plain, err := nn.NewBCELoss(pred, target)
	require.NoError(t, err)
	scaled, err := nn.NewBCELoss(pred, target, nn.WithGradientScale(8.0))
	require.NoError(t, err)

	assert.InDelta(t, plain.Value(), scaled.Value(), 1e-12, "scale only affects the gradient")

	expected := plain.Gradient()
	want := expected.MulScalar(8).Data()
	assert.True(t, floats.EqualApprox(want, scaled.Gradient().Data(), 1e-12))

	for i, p := range pred.Data() {
		y := target.Data()[i]
		assert.InDelta(t, 0.25*(p-y)/(p*(1-p)), expected.Data()[i], 1e-12)
	}
}

func TestLossShapeMismatch(t *testing.T) {
	pred := matrix(t, []float64{1, 2}, 1, 2)
	target := matrix(t, []float64{1, 2}, 2, 1)

	_, err := nn.NewMSELoss(pred, target)
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = nn.NewBCELoss(pred, target)
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestLossFuncs(t *testing.T) {
	pred := matrix(t, []float64{0.25, 0.75}, 2, 1)
	target := matrix(t, []float64{0, 1}, 2, 1)

	mse, err := nn.MSE[float64]()(pred, target)
	require.NoError(t, err)
	assert.InDelta(t, 0.0625, mse.Value(), 1e-12)

	bce, err := nn.BCE(2.0)(pred, target)
	require.NoError(t, err)
	direct, err := nn.NewBCELoss(pred, target, nn.WithGradientScale(2.0))
	require.NoError(t, err)
	assert.InDelta(t, direct.Value(), bce.Value(), 1e-12)
	assert.True(t, direct.Gradient().Equal(bce.Gradient()))

	_, err = nn.MSE[float64]()(pred, matrix(t, []float64{0}, 1, 1))
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}
