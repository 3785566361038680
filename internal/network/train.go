package network

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/minnet/internal/nn"
	"github.com/born-ml/minnet/internal/optim"
	"github.com/born-ml/minnet/internal/tensor"
)

// TrainConfig holds the settings for a Train call.
type TrainConfig[T tensor.Float] struct {
	Epochs       int // Number of passes over the data (required, > 0)
	BatchSize    int // Rows per update; <= 0 or >= rows trains on the full batch
	LearningRate T   // Passed to the optimizer factory (required, > 0)

	Loss      nn.LossFunc[T]   // Loss constructor (default: MSE)
	Optimizer optim.Factory[T] // Optimizer constructor (default: SGD)

	// Rand shuffles rows between epochs. Required when mini-batching.
	Rand *rand.Rand

	// OnEpoch, if set, is called after every epoch with the 1-based epoch
	// number and the mean batch loss of that epoch.
	OnEpoch func(epoch int, loss T)
}

// History records the outcome of a Train call.
type History[T tensor.Float] struct {
	EpochLoss []T // Mean batch loss per epoch
}

// FinalLoss returns the loss of the last epoch, or 0 for an empty history.
func (h *History[T]) FinalLoss() T {
	if len(h.EpochLoss) == 0 {
		return 0
	}
	return h.EpochLoss[len(h.EpochLoss)-1]
}

// Train fits the network to (x, y) for exactly cfg.Epochs epochs.
//
// A single optimizer is built from cfg.Optimizer at the start of the call and
// shared by all layers, so stateful optimizers keep their moments across
// epochs. On error the parameters keep whatever updates were already applied.
func (n *NeuralNetwork[T]) Train(x, y *nn.Matrix[T], cfg TrainConfig[T]) (*History[T], error) {
	if err := n.validate(x, y, &cfg); err != nil {
		return nil, err
	}

	opt := cfg.Optimizer(cfg.LearningRate)
	rows := x.Dim(0)
	fullBatch := cfg.BatchSize <= 0 || cfg.BatchSize >= rows

	history := &History[T]{EpochLoss: make([]T, 0, cfg.Epochs)}
	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		var epochLoss T
		if fullBatch {
			loss, err := n.step(x, y, cfg.Loss, opt)
			if err != nil {
				return history, fmt.Errorf("epoch %d: %w", epoch, err)
			}
			epochLoss = loss
		} else {
			loss, err := n.trainMiniBatches(x, y, &cfg, opt)
			if err != nil {
				return history, fmt.Errorf("epoch %d: %w", epoch, err)
			}
			epochLoss = loss
		}

		history.EpochLoss = append(history.EpochLoss, epochLoss)
		if cfg.OnEpoch != nil {
			cfg.OnEpoch(epoch, epochLoss)
		}
	}
	return history, nil
}

// trainMiniBatches shuffles the rows and runs one step per batch, returning
// the mean batch loss.
func (n *NeuralNetwork[T]) trainMiniBatches(x, y *nn.Matrix[T], cfg *TrainConfig[T], opt nn.Optimizer[T]) (T, error) {
	order := cfg.Rand.Perm(x.Dim(0))

	var total T
	batches := 0
	for start := 0; start < len(order); start += cfg.BatchSize {
		end := min(start+cfg.BatchSize, len(order))
		bx, err := gatherRows(x, order[start:end])
		if err != nil {
			return 0, err
		}
		by, err := gatherRows(y, order[start:end])
		if err != nil {
			return 0, err
		}

		loss, err := n.step(bx, by, cfg.Loss, opt)
		if err != nil {
			return 0, fmt.Errorf("batch %d: %w", batches, err)
		}
		total += loss
		batches++
	}
	return total / T(batches), nil
}

func (n *NeuralNetwork[T]) validate(x, y *nn.Matrix[T], cfg *TrainConfig[T]) error {
	if len(n.layers) == 0 {
		return fmt.Errorf("train: %w: network has no layers", nn.ErrInvalidState)
	}
	if cfg.Epochs <= 0 {
		return fmt.Errorf("train: %w: epochs must be positive, got %d", ErrInvalidConfig, cfg.Epochs)
	}
	if !(cfg.LearningRate > 0) {
		return fmt.Errorf("train: %w: learning rate must be positive, got %v", ErrInvalidConfig, cfg.LearningRate)
	}
	if x.Dim(0) != y.Dim(0) {
		return fmt.Errorf("train: %w: %d input rows, %d target rows",
			tensor.ErrShapeMismatch, x.Dim(0), y.Dim(0))
	}
	if x.Dim(0) == 0 {
		return fmt.Errorf("train: %w: empty dataset", tensor.ErrShapeMismatch)
	}
	if cfg.BatchSize > 0 && cfg.BatchSize < x.Dim(0) && cfg.Rand == nil {
		return fmt.Errorf("train: %w: mini-batching requires Rand", ErrInvalidConfig)
	}

	// Set defaults
	if cfg.Loss == nil {
		cfg.Loss = nn.MSE[T]()
	}
	if cfg.Optimizer == nil {
		cfg.Optimizer = optim.SGDFactory[T]()
	}
	return nil
}

// gatherRows copies the given rows of m, in order, into a new matrix.
func gatherRows[T tensor.Float](m *nn.Matrix[T], rows []int) (*nn.Matrix[T], error) {
	cols := m.Dim(1)
	src := m.Data()
	data := make([]T, 0, len(rows)*cols)
	for _, r := range rows {
		data = append(data, src[r*cols:(r+1)*cols]...)
	}
	return tensor.FromSlice[T, tensor.R2](data, len(rows), cols)
}
