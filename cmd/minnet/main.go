// Package main provides the minnet CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/born-ml/minnet/network"
	"github.com/born-ml/minnet/nn"
	"github.com/born-ml/minnet/optim"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("minnet %s\n", version)
	case "demo":
		if err := runDemo(os.Args[2:]); err != nil {
			log.Fatalf("demo: %v", err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("minnet - feed-forward neural networks in Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Train a small classifier on synthetic separable data")
}

func runDemo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	samples := fs.Int("samples", 200, "Number of synthetic samples")
	hidden := fs.Int("hidden", 8, "Hidden layer width")
	epochs := fs.Int("epochs", 200, "Number of training epochs")
	batchSize := fs.Int("batch", 32, "Batch size (0 = full batch)")
	lr := fs.Float64("lr", 0.01, "Learning rate")
	optimizer := fs.String("optimizer", "adam", "Optimizer: sgd or adam")
	lossName := fs.String("loss", "bce", "Loss: mse or bce")
	seed := fs.Int64("seed", 42, "Random seed for data, initialization and shuffling")
	every := fs.Int("log-every", 20, "Log the loss every N epochs")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *every < 1 {
		return fmt.Errorf("-log-every must be at least 1, got %d", *every)
	}

	rng := rand.New(rand.NewSource(*seed))

	x, y, err := separableDataset(*samples, rng)
	if err != nil {
		return err
	}

	net, err := buildClassifier(*hidden, rng)
	if err != nil {
		return err
	}

	cfg := network.TrainConfig[float64]{
		Epochs:       *epochs,
		BatchSize:    *batchSize,
		LearningRate: *lr,
		Rand:         rng,
		OnEpoch: func(epoch int, loss float64) {
			if epoch == 1 || epoch%*every == 0 || epoch == *epochs {
				log.Printf("epoch %4d/%d  loss=%.6f", epoch, *epochs, loss)
			}
		},
	}

	switch *optimizer {
	case "sgd":
		cfg.Optimizer = optim.SGDFactory[float64]()
	case "adam":
		cfg.Optimizer = optim.AdamFactory[float64](optim.AdamConfig{})
	default:
		return fmt.Errorf("unknown optimizer %q", *optimizer)
	}

	switch *lossName {
	case "mse":
		cfg.Loss = nn.MSE[float64]()
	case "bce":
		cfg.Loss = nn.BCE[float64](1)
	default:
		return fmt.Errorf("unknown loss %q", *lossName)
	}

	log.Printf("training 2-%d-1 classifier on %d samples (%s, %s, lr=%g)",
		*hidden, *samples, *optimizer, *lossName, *lr)

	history, err := net.Train(x, y, cfg)
	if err != nil {
		return fmt.Errorf("train: %w", err)
	}

	probs, err := net.Predict(x)
	if err != nil {
		return fmt.Errorf("predict: %w", err)
	}
	log.Printf("final loss=%.6f accuracy=%.2f%%", history.FinalLoss(), accuracy(probs, y)*100)
	return nil
}

// buildClassifier returns Dense(2->hidden) ReLU Dense(hidden->1) Sigmoid.
func buildClassifier(hidden int, rng *rand.Rand) (*network.NeuralNetwork[float64], error) {
	first, err := nn.NewDenseWithInit(2, hidden, nn.He[float64], nn.Zeros[float64], rng)
	if err != nil {
		return nil, err
	}
	second, err := nn.NewDense[float64](hidden, 1, rng)
	if err != nil {
		return nil, err
	}

	net := network.New[float64]()
	net.AddLayer(first)
	net.AddLayer(nn.NewReLU[float64]())
	net.AddLayer(second)
	net.AddLayer(nn.NewSigmoid[float64]())
	return net, nil
}
