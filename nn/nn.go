// Copyright 2026 Warp ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/warp-ml/warp/internal/nn"
)

// Type aliases for public API

// Layer is the interface every network building block implements.
//
// Forward computes the layer's output and caches whatever the backward
// pass will need. Backward receives the gradient of the loss with
// respect to the layer's output, applies any parameter update in
// place, and returns the gradient with respect to the layer's input.
type Layer = nn.Layer

// FloatSource supplies floats in [0, 1) for parameter initialization.
// *math/rand.Rand satisfies it.
type FloatSource = nn.FloatSource

// ActivationKind selects an element-wise (or, for Softmax, whole-vector)
// nonlinearity.
type ActivationKind = nn.ActivationKind

// Activation kinds.
const (
	Identity  ActivationKind = nn.Identity
	ReLU      ActivationKind = nn.ReLU
	LeakyReLU ActivationKind = nn.LeakyReLU
	Sigmoid   ActivationKind = nn.Sigmoid
	Tanh      ActivationKind = nn.Tanh
	Softmax   ActivationKind = nn.Softmax
)

// Activation applies a nonlinearity as a Layer.
type Activation = nn.Activation

// Linear is a fully connected layer computing input·W (+ bias).
type Linear = nn.Linear

// Network is an ordered stack of layers with a loss gradient, trained
// by full-batch gradient descent.
type Network = nn.Network

// Builder assembles a Network layer by layer.
type Builder = nn.Builder

// LossGradient computes the gradient of a loss with respect to the
// prediction. It seeds the backward sweep.
type LossGradient = nn.LossGradient

// ErrMissingLoss reports a Build call without a loss gradient.
var ErrMissingLoss = nn.ErrMissingLoss

// Constructors

// NewActivation creates an activation layer. Softmax activations are
// always fused with their loss gradient.
func NewActivation(kind ActivationKind) *Activation {
	return nn.NewActivation(kind)
}

// NewFusedActivation creates an activation layer whose backward pass
// forwards the incoming gradient unchanged. Use it when the loss
// gradient already folds in the activation derivative, as
// BCESigmoidDelta does for Sigmoid.
func NewFusedActivation(kind ActivationKind) *Activation {
	return nn.NewFusedActivation(kind)
}

// NewLinear creates a fully connected layer with weight shape
// [inFeatures, outFeatures] and a bias vector, both initialized
// uniformly in [-1, 1) from src.
func NewLinear(inFeatures, outFeatures int, src FloatSource) *Linear {
	return nn.NewLinear(inFeatures, outFeatures, src)
}

// NewLinearNoBias creates a fully connected layer without a bias
// vector. Append a constant-1 column to the input to fold the bias
// into the weight matrix instead.
func NewLinearNoBias(inFeatures, outFeatures int, src FloatSource) *Linear {
	return nn.NewLinearNoBias(inFeatures, outFeatures, src)
}

// NewBuilder creates an empty network builder.
func NewBuilder() *Builder {
	return nn.NewBuilder()
}

// Loss functions

// MSELoss returns the mean squared error as a shape-[1] tensor.
var MSELoss = nn.MSELoss

// MSEGradient is the gradient of MSELoss: 2(pred-target)/n.
var MSEGradient LossGradient = nn.MSEGradient

// L1Loss returns the mean absolute error as a shape-[1] tensor.
var L1Loss = nn.L1Loss

// BCELoss returns the mean binary cross-entropy as a shape-[1] tensor.
var BCELoss = nn.BCELoss

// BCEGradient is the gradient of BCELoss with respect to a raw
// prediction. Prefer BCESigmoidDelta when the output layer is a fused
// Sigmoid.
var BCEGradient LossGradient = nn.BCEGradient

// BCESigmoidDelta is the combined gradient of BCELoss through a
// Sigmoid output: (pred-target)/n. Pair it with
// NewFusedActivation(Sigmoid).
var BCESigmoidDelta LossGradient = nn.BCESigmoidDelta

// CCELoss returns the summed categorical cross-entropy as a shape-[1]
// tensor. Targets are one-hot rows, predictions a probability
// distribution per row.
var CCELoss = nn.CCELoss

// CCESoftmaxDelta is the combined gradient of CCELoss through a
// Softmax output: pred-target. Pair it with NewActivation(Softmax).
var CCESoftmaxDelta LossGradient = nn.CCESoftmaxDelta
