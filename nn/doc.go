// Copyright 2026 Warp ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks for the Warp ML framework.
//
// # Overview
//
// The package follows the layer abstraction: every building block
// implements Layer, a two-method interface with a Forward pass that
// caches what the Backward pass needs, and a Backward pass that both
// propagates the gradient and applies the parameter update in place.
//
// # Building a Network
//
//	import (
//	    "math/rand"
//
//	    "github.com/warp-ml/warp/nn"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(42))
//
//	    net, err := nn.NewBuilder().
//	        AddLayer(nn.NewLinear(2, 8, rng)).
//	        AddLayer(nn.NewActivation(nn.ReLU)).
//	        AddLayer(nn.NewLinear(8, 1, rng)).
//	        AddLayer(nn.NewFusedActivation(nn.Sigmoid)).
//	        LossGradient(nn.BCESigmoidDelta).
//	        Build()
//	    if err != nil {
//	        // a network without a loss gradient cannot train
//	    }
//	    _ = net
//	}
//
// # Training
//
// Network.Fit runs full-batch gradient descent: each epoch performs one
// forward pass over the whole input, evaluates the loss gradient, and
// sweeps it backwards through the layers. TrainEpoch exposes a single
// epoch so callers can interleave their own logging or evaluation.
//
// # Fused Activations
//
// When an output activation pairs with a matching loss shortcut
// (Sigmoid with BCESigmoidDelta, Softmax with CCESoftmaxDelta), wrap it
// with NewFusedActivation so the backward pass forwards the combined
// delta unchanged instead of multiplying in a local derivative. Softmax
// is always fused; its standalone Jacobian is not provided.
//
// # Randomness
//
// Parameter initialization draws from a FloatSource, an interface
// satisfied by *rand.Rand. Injecting the source keeps training runs
// reproducible.
package nn
