package main

import (
	"fmt"
	"io"
	"math"

	"github.com/warp-ml/warp/nn"
	"github.com/warp-ml/warp/tensor"
)

// lcg is a linear congruential generator so repeated runs print the
// same numbers.
type lcg struct{ state uint64 }

func (g *lcg) Float32() float32 {
	g.state = g.state*6364136223846793005 + 1
	signed := float32(int32(g.state >> 32)) / float32(math.MaxInt32)
	return (signed + 1) / 2
}

// runXOR trains the canonical XOR network: bias-trick inputs, a ReLU
// hidden layer of 12, a fused sigmoid head, 20k epochs at lr 0.01.
func runXOR(w io.Writer) error {
	x, err := tensor.New([]float32{
		0, 0, 1,
		0, 1, 1,
		1, 0, 1,
		1, 1, 1,
	}, tensor.Shape{4, 3})
	if err != nil {
		return fmt.Errorf("build inputs: %w", err)
	}
	y, err := tensor.New([]float32{0, 1, 1, 0}, tensor.Shape{4, 1})
	if err != nil {
		return fmt.Errorf("build targets: %w", err)
	}

	rng := &lcg{state: 73}
	net, err := nn.NewBuilder().
		AddLayer(nn.NewLinearNoBias(3, 12, rng)).
		AddLayer(nn.NewActivation(nn.ReLU)).
		AddLayer(nn.NewLinearNoBias(12, 1, rng)).
		AddLayer(nn.NewFusedActivation(nn.Sigmoid)).
		LossGradient(nn.BCESigmoidDelta).
		Build()
	if err != nil {
		return fmt.Errorf("build network: %w", err)
	}

	fmt.Fprintln(w, "🚀 Training XOR: 3 → 12 (relu) → 1 (sigmoid), 20000 epochs, lr=0.010")
	if err := net.Fit(x, y, 20000, 0.01); err != nil {
		return fmt.Errorf("train: %w", err)
	}

	pred, err := net.Forward(x)
	if err != nil {
		return fmt.Errorf("forward: %w", err)
	}

	fmt.Fprintln(w, "✅ Predictions:")
	for i := 0; i < 4; i++ {
		fmt.Fprintf(w, "   %v XOR %v = %.4f (want %v)\n",
			x.At(i, 0), x.At(i, 1), pred.At(i, 0), y.At(i, 0))
	}
	return nil
}

// runLinreg fits slope and intercept to the five-point dataset through
// a single bias-free linear layer. The least-squares answer is
// y = 2.04·x + 3.06.
func runLinreg(w io.Writer) error {
	x, err := tensor.New([]float32{
		1, 1,
		2, 1,
		3, 1,
		4, 1,
		5, 1,
	}, tensor.Shape{5, 2})
	if err != nil {
		return fmt.Errorf("build inputs: %w", err)
	}
	y, err := tensor.New([]float32{5.6, 6.6, 9.5, 10.2, 14.0}, tensor.Shape{5, 1})
	if err != nil {
		return fmt.Errorf("build targets: %w", err)
	}

	layer := nn.NewLinearNoBias(2, 1, &lcg{state: 73})

	fmt.Fprintln(w, "🚀 Fitting line: 5000 epochs, lr=0.010, MSE loss")
	for epoch := 0; epoch < 5000; epoch++ {
		pred, err := layer.Forward(x)
		if err != nil {
			return fmt.Errorf("forward: %w", err)
		}
		grad, err := nn.MSEGradient(pred, y)
		if err != nil {
			return fmt.Errorf("gradient: %w", err)
		}
		if _, err := layer.Backward(grad, 0.01); err != nil {
			return fmt.Errorf("backward: %w", err)
		}
	}

	weights := layer.Weight().Data()
	fmt.Fprintf(w, "✅ Fitted line: y = %.4f·x + %.4f (least squares: 2.0400·x + 3.0600)\n",
		weights[0], weights[1])
	return nil
}
