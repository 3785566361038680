package nn_test

import (
	"math/rand"
	"testing"

	"github.com/born-ml/minnet/internal/nn"
	"github.com/born-ml/minnet/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
)

func matrix(t *testing.T, data []float64, rows, cols int) *nn.Matrix[float64] {
	t.Helper()
	m, err := tensor.FromSlice[float64, tensor.R2](data, rows, cols)
	require.NoError(t, err)
	return m
}

// recordingOptimizer captures every Update call in order.
type recordingOptimizer struct {
	params []*nn.Parameter[float64]
	grads  []*nn.Matrix[float64]
}

func (r *recordingOptimizer) Update(p *nn.Parameter[float64], g *nn.Matrix[float64]) error {
	r.params = append(r.params, p)
	r.grads = append(r.grads, g)
	return nil
}

// TestParameter tests Parameter creation and methods.
func TestParameter(t *testing.T) {
	data := matrix(t, []float64{1, 2, 3}, 1, 3)
	param := nn.NewParameter("test_param", data)

	assert.Equal(t, "test_param", param.Name())
	assert.Same(t, data, param.Tensor())
	assert.Nil(t, param.Grad(), "Grad() should initially be nil")

	grad := matrix(t, []float64{0.1, 0.2, 0.3}, 1, 3)
	param.SetGrad(grad)
	assert.Same(t, grad, param.Grad())

	param.ZeroGrad()
	assert.Nil(t, param.Grad())
}

func TestDenseShapes(t *testing.T) {
	layer, err := nn.NewDense[float64](4, 3, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Equal(t, 4, layer.InFeatures())
	assert.Equal(t, 3, layer.OutFeatures())
	assert.Equal(t, tensor.Shape{4, 3}, layer.Weight().Tensor().Shape())
	assert.Equal(t, tensor.Shape{1, 3}, layer.Bias().Tensor().Shape())
	assert.Len(t, layer.Parameters(), 2)

	for _, v := range layer.Bias().Tensor().Data() {
		assert.Zero(t, v)
	}
	bound := 1.0 // sqrt(6/7) < 1
	for _, v := range layer.Weight().Tensor().Data() {
		assert.Less(t, v, bound)
		assert.Greater(t, v, -bound)
	}
}

func TestDenseSeededInitIsReproducible(t *testing.T) {
	a, err := nn.NewDense[float64](3, 5, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := nn.NewDense[float64](3, 5, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.True(t, a.Weight().Tensor().Equal(b.Weight().Tensor()))
}

func TestDenseRequiresRand(t *testing.T) {
	_, err := nn.NewDense[float64](2, 2, nil)
	require.ErrorIs(t, err, nn.ErrNilRand)

	// Deterministic initializers never touch rng.
	layer, err := nn.NewDenseWithInit(2, 2, nn.Constant(0.5), nn.Zeros[float64], nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5}, layer.Weight().Tensor().Data())
}

func TestDenseInvalidFeatures(t *testing.T) {
	_, err := nn.NewDense[float64](0, 3, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = nn.NewDenseFrom(matrix(t, []float64{1, 1}, 2, 1), matrix(t, []float64{0, 0}, 1, 2))
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestDenseForwardKnownWeights(t *testing.T) {
	layer, err := nn.NewDenseFrom(matrix(t, []float64{1, 1}, 2, 1), matrix(t, []float64{0}, 1, 1))
	require.NoError(t, err)

	y, err := layer.Forward(matrix(t, []float64{1, 2, 3, 4}, 2, 2))
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 1}, y.Shape())
	assert.Equal(t, []float64{3, 7}, y.Data())
}

func TestDenseForwardAddsBias(t *testing.T) {
	w := matrix(t, []float64{1, 0, 0, 1}, 2, 2)
	b := matrix(t, []float64{0.5, -1}, 1, 2)
	layer, err := nn.NewDenseFrom(w, b)
	require.NoError(t, err)

	y, err := layer.Forward(matrix(t, []float64{1, 2, 3, 4}, 2, 2))
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 1, 3.5, 3}, y.Data())
}

func TestDenseForwardWrongFeatures(t *testing.T) {
	layer, err := nn.NewDense[float64](3, 2, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	_, err = layer.Forward(matrix(t, []float64{1, 2, 3, 4}, 2, 2))
	require.ErrorIs(t, err, tensor.ErrIncompatibleShapes)
}

func TestDenseBackwardWithoutForward(t *testing.T) {
	layer, err := nn.NewDense[float64](2, 1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	_, err = layer.Backward(matrix(t, []float64{1}, 1, 1))
	require.ErrorIs(t, err, nn.ErrInvalidState)

	require.ErrorIs(t, layer.UpdateParameters(&recordingOptimizer{}), nn.ErrInvalidState)
}

func TestDenseBackwardConsumesCache(t *testing.T) {
	layer, err := nn.NewDense[float64](2, 1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	_, err = layer.Forward(matrix(t, []float64{1, 2}, 1, 2))
	require.NoError(t, err)
	_, err = layer.Backward(matrix(t, []float64{1}, 1, 1))
	require.NoError(t, err)

	_, err = layer.Backward(matrix(t, []float64{1}, 1, 1))
	require.ErrorIs(t, err, nn.ErrInvalidState)
}

func TestDenseBackwardGradientShape(t *testing.T) {
	layer, err := nn.NewDense[float64](2, 3, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	_, err = layer.Forward(matrix(t, []float64{1, 2}, 1, 2))
	require.NoError(t, err)
	_, err = layer.Backward(matrix(t, []float64{1, 2}, 1, 2))
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

// TestDenseGradientCheck compares the analytic backward pass against central
// finite differences of L = sum(forward(x) * g) for a fixed upstream g.
//
// Dense averages its parameter gradients over the batch, so dW and db are
// compared against numeric/batch; dX is not averaged.
func TestDenseGradientCheck(t *testing.T) {
	const (
		batch = 4
		in    = 3
		out   = 2
		tol   = 1e-5
	)

	w := []float64{0.2, -0.5, 0.7, 0.1, -0.3, 0.9}
	b := []float64{0.05, -0.2}
	x := []float64{1, 2, -1, 0.5, -0.3, 0.8, 2, -1.5, 0.1, -0.7, 0.4, 1.2}
	g := []float64{1, -1, 0.5, 2, -0.3, 0.7, 1.1, -0.4}

	objective := func(w, b, x []float64) float64 {
		layer, err := nn.NewDenseFrom(matrix(t, clone(w), in, out), matrix(t, clone(b), 1, out))
		require.NoError(t, err)
		y, err := layer.Forward(matrix(t, clone(x), batch, in))
		require.NoError(t, err)
		return floats.Dot(y.Data(), g)
	}

	layer, err := nn.NewDenseFrom(matrix(t, clone(w), in, out), matrix(t, clone(b), 1, out))
	require.NoError(t, err)
	_, err = layer.Forward(matrix(t, clone(x), batch, in))
	require.NoError(t, err)
	dX, err := layer.Backward(matrix(t, g, batch, out))
	require.NoError(t, err)

	settings := &fd.Settings{Formula: fd.Central, Step: 1e-6}

	numW := fd.Gradient(nil, func(v []float64) float64 { return objective(v, b, x) }, w, settings)
	floats.Scale(1.0/batch, numW)
	assert.True(t, floats.EqualApprox(numW, layer.Weight().Grad().Data(), tol),
		"dW: numeric %v, analytic %v", numW, layer.Weight().Grad().Data())

	numB := fd.Gradient(nil, func(v []float64) float64 { return objective(w, v, x) }, b, settings)
	floats.Scale(1.0/batch, numB)
	assert.True(t, floats.EqualApprox(numB, layer.Bias().Grad().Data(), tol),
		"db: numeric %v, analytic %v", numB, layer.Bias().Grad().Data())

	numX := fd.Gradient(nil, func(v []float64) float64 { return objective(w, b, v) }, x, settings)
	assert.True(t, floats.EqualApprox(numX, dX.Data(), tol),
		"dX: numeric %v, analytic %v", numX, dX.Data())
}

func TestDenseUpdateParametersOrder(t *testing.T) {
	layer, err := nn.NewDense[float64](2, 2, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	_, err = layer.Forward(matrix(t, []float64{1, 2, 3, 4}, 2, 2))
	require.NoError(t, err)
	_, err = layer.Backward(matrix(t, []float64{1, 1, 1, 1}, 2, 2))
	require.NoError(t, err)

	opt := &recordingOptimizer{}
	require.NoError(t, layer.UpdateParameters(opt))

	require.Len(t, opt.params, 2)
	assert.Same(t, layer.Weight(), opt.params[0], "weight is updated first")
	assert.Same(t, layer.Bias(), opt.params[1])
	assert.Equal(t, []float64{2, 2, 3, 3}, opt.grads[0].Data(), "dW = xᵀ·dZ / batch")
	assert.Equal(t, []float64{1, 1}, opt.grads[1].Data(), "db = colsum(dZ) / batch")
}

func clone(s []float64) []float64 {
	return append([]float64(nil), s...)
}
