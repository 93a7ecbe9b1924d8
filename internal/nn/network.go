package nn

import (
	"github.com/warp-ml/warp/internal/tensor"
)

// Network is an ordered stack of layers trained by backpropagation.
// Layer order defines the forward application order; the backward sweep
// visits the same layers in reverse. The structure is fixed after
// Build; only the parameter tensors inside layers change during
// training.
type Network struct {
	layers   []Layer
	lossGrad LossGradient
}

// Forward folds the input through every layer in order. An empty layer
// list returns the input unchanged.
func (n *Network) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	output := input
	for _, layer := range n.layers {
		var err error
		output, err = layer.Forward(output)
		if err != nil {
			return nil, err
		}
	}
	return output, nil
}

// TrainEpoch runs one full training iteration over the whole batch: a
// forward sweep, the loss gradient, and a reverse backward sweep that
// updates every layer's parameters. The input-side gradient leaving the
// first layer is discarded.
//
// An error mid-sweep aborts the epoch; updates already applied by
// layers later in the backward order stay committed. There is no
// rollback, since such failures reflect a misconfigured architecture
// rather than a transient condition.
//
// TrainEpoch is the resumable unit of training: callers that need to
// interleave reporting, checkpointing, or cooldowns can invoke it once
// per epoch instead of using Fit.
func (n *Network) TrainEpoch(xTrain, yTrain *tensor.Tensor, learningRate float32) error {
	pred, err := n.Forward(xTrain)
	if err != nil {
		return err
	}

	grad, err := n.lossGrad(pred, yTrain)
	if err != nil {
		return err
	}

	for i := len(n.layers) - 1; i >= 0; i-- {
		grad, err = n.layers[i].Backward(grad, learningRate)
		if err != nil {
			return err
		}
	}
	return nil
}

// Fit trains for exactly the given number of epochs, each a full pass
// over the provided batch. There is no convergence check, shuffling, or
// mini-batching; any shuffling or normalization is the caller's
// responsibility before training.
func (n *Network) Fit(xTrain, yTrain *tensor.Tensor, epochs int, learningRate float32) error {
	for epoch := 0; epoch < epochs; epoch++ {
		if err := n.TrainEpoch(xTrain, yTrain, learningRate); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of layers.
func (n *Network) Len() int {
	return len(n.layers)
}

// Layer returns the layer at the given index, for read-only inspection
// of weights and cached activations (for example by visualizers).
// Panics if the index is out of bounds.
func (n *Network) Layer(index int) Layer {
	if index < 0 || index >= len(n.layers) {
		panic("nn: layer index out of bounds")
	}
	return n.layers[index]
}

// Builder accumulates layers and a loss gradient, then finalizes them
// into a Network.
//
//	net, err := nn.NewBuilder().
//	    AddLayer(nn.NewLinearNoBias(3, 12, rng)).
//	    AddLayer(nn.NewActivation(nn.ReLU)).
//	    AddLayer(nn.NewLinearNoBias(12, 1, rng)).
//	    AddLayer(nn.NewFusedActivation(nn.Sigmoid)).
//	    LossGradient(nn.BCESigmoidDelta).
//	    Build()
type Builder struct {
	layers   []Layer
	lossGrad LossGradient
}

// NewBuilder creates an empty network builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddLayer appends a layer to the network stack.
func (b *Builder) AddLayer(layer Layer) *Builder {
	b.layers = append(b.layers, layer)
	return b
}

// LossGradient sets the loss gradient function driving the backward
// sweep. Required before Build.
func (b *Builder) LossGradient(fn LossGradient) *Builder {
	b.lossGrad = fn
	return b
}

// Build finalizes the network. Fails with ErrMissingLoss when no loss
// gradient was configured.
func (b *Builder) Build() (*Network, error) {
	if b.lossGrad == nil {
		return nil, ErrMissingLoss
	}
	return &Network{
		layers:   b.layers,
		lossGrad: b.lossGrad,
	}, nil
}
