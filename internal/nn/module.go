// Package nn implements the layered forward/backward propagation engine
// for the Warp ML framework.
//
// This package provides the building blocks for feed-forward networks
// trained by backpropagation and gradient descent:
//   - Layer interface: the shared forward/backward contract
//   - Linear: affine transform with learnable weight and optional bias
//   - Activation: element-wise and whole-vector activation functions
//   - Loss functions: MSE, L1, BCE, CCE and their gradients
//   - Network: ordered layer stack with a builder and a training loop
package nn

import (
	"github.com/warp-ml/warp/internal/tensor"
)

// Layer is the contract every network layer implements.
//
// Forward and Backward form a two-phase protocol: a Backward call is
// only valid immediately after, and matched to, the most recent Forward
// call on the same layer, because Forward stores the input the backward
// pass consumes. Layers are not safe for concurrent use; each layer is
// exclusively owned by the network that holds it.
type Layer interface {
	// Forward computes the layer's output for the given input and
	// caches whatever local state the backward pass needs.
	Forward(input *tensor.Tensor) (*tensor.Tensor, error)

	// Backward receives the gradient of the loss with respect to this
	// layer's output and returns the gradient with respect to its
	// input. Layers with learnable parameters also apply their
	// gradient-descent update here, scaled by learningRate.
	Backward(outputGrad *tensor.Tensor, learningRate float32) (*tensor.Tensor, error)
}

// FloatSource produces pseudo-random floats in [0, 1). It is the
// injected randomness capability used at layer construction time, so
// determinism stays under the caller's control. *math/rand.Rand
// satisfies it.
type FloatSource interface {
	Float32() float32
}
