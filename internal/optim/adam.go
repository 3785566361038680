package optim

import (
	"math"

	"github.com/born-ml/minnet/internal/nn"
	"github.com/born-ml/minnet/internal/tensor"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Adam combines ideas from RMSprop and momentum:
//   - Maintains exponential moving averages of gradients (first moment)
//   - Maintains exponential moving averages of squared gradients (second moment)
//   - Applies bias correction to compensate for initialization at zero
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)  // Parameter update
//
// The moments are allocated lazily per parameter and kept for the lifetime
// of the optimizer. The step counter t is shared: every Update call advances
// it, whichever parameter it targets.
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam[T tensor.Float] struct {
	lr    T
	beta1 float64
	beta2 float64
	eps   float64
	t     int                                // Timestep for bias correction
	m     map[*nn.Parameter[T]]*nn.Matrix[T] // First moment estimates
	v     map[*nn.Parameter[T]]*nn.Matrix[T] // Second moment estimates
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer.
//
// Default hyperparameters:
//   - LR: 0.001
//   - Beta1: 0.9
//   - Beta2: 0.999
//   - Eps: 1e-8
func NewAdam[T tensor.Float](config AdamConfig) *Adam[T] {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam[T]{
		lr:    T(config.LR),
		beta1: config.Betas[0],
		beta2: config.Betas[1],
		eps:   config.Eps,
		m:     make(map[*nn.Parameter[T]]*nn.Matrix[T]),
		v:     make(map[*nn.Parameter[T]]*nn.Matrix[T]),
	}
}

// Update performs one Adam step on param in place.
func (a *Adam[T]) Update(param *nn.Parameter[T], grad *nn.Matrix[T]) error {
	if err := checkGradient(param, grad); err != nil {
		return err
	}

	m, ok := a.m[param]
	if !ok {
		m = param.Tensor().Map(func(T) T { return 0 })
		a.m[param] = m
	}
	v, ok := a.v[param]
	if !ok {
		v = param.Tensor().Map(func(T) T { return 0 })
		a.v[param] = v
	}

	a.t++
	biasCorrection1 := 1.0 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1.0 - math.Pow(a.beta2, float64(a.t))

	paramData := param.Tensor().Data()
	gradData := grad.Data()
	mData := m.Data()
	vData := v.Data()
	lr := float64(a.lr)

	for i := range paramData {
		g := float64(gradData[i])

		mi := a.beta1*float64(mData[i]) + (1.0-a.beta1)*g
		vi := a.beta2*float64(vData[i]) + (1.0-a.beta2)*g*g
		mData[i] = T(mi)
		vData[i] = T(vi)

		mHat := mi / biasCorrection1
		vHat := vi / biasCorrection2
		paramData[i] -= T(lr * mHat / (math.Sqrt(vHat) + a.eps))
	}
	return nil
}

// Step applies the stored gradients of params.
func (a *Adam[T]) Step(params []*nn.Parameter[T]) error {
	return step[T](a, params)
}

// GetLR returns the current learning rate.
func (a *Adam[T]) GetLR() T {
	return a.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (a *Adam[T]) SetLR(lr T) {
	a.lr = lr
}

// Timestep returns the shared step counter.
func (a *Adam[T]) Timestep() int {
	return a.t
}

// Tracked returns the number of parameters holding moment state.
func (a *Adam[T]) Tracked() int {
	return len(a.m)
}
