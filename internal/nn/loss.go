package nn

import (
	"fmt"
	"math"

	"github.com/warp-ml/warp/internal/tensor"
)

// LossGradient computes the gradient of a loss with respect to the
// prediction. It is the function the network feeds into the backward
// sweep after each forward pass.
type LossGradient func(pred, target *tensor.Tensor) (*tensor.Tensor, error)

// epsilon is added before every logarithm so log never sees exactly 0.
const epsilon = 1e-15

func checkLossShapes(pred, target *tensor.Tensor) error {
	if !pred.Shape().Equal(target.Shape()) {
		return fmt.Errorf("%w: prediction %v vs target %v",
			tensor.ErrShapeMismatch, pred.Shape(), target.Shape())
	}
	return nil
}

// MSELoss returns mean((pred-target)^2) over all elements as a
// shape-[1] tensor.
func MSELoss(pred, target *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkLossShapes(pred, target); err != nil {
		return nil, err
	}
	diff, err := pred.Sub(target)
	if err != nil {
		return nil, err
	}
	n := float32(pred.Shape().NumElements())
	return diff.Powf(2).Sum().Scale(1 / n), nil
}

// MSEGradient returns d(MSE)/d(pred) = 2/n * (pred - target).
func MSEGradient(pred, target *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkLossShapes(pred, target); err != nil {
		return nil, err
	}
	diff, err := pred.Sub(target)
	if err != nil {
		return nil, err
	}
	n := float32(pred.Shape().NumElements())
	return diff.Scale(2 / n), nil
}

// L1Loss returns mean(|pred-target|) as a shape-[1] tensor.
func L1Loss(pred, target *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkLossShapes(pred, target); err != nil {
		return nil, err
	}
	diff, err := pred.Sub(target)
	if err != nil {
		return nil, err
	}
	n := float32(pred.Shape().NumElements())
	return diff.Abs().Sum().Scale(1 / n), nil
}

// BCELoss returns the binary cross-entropy
// -mean(target*log(pred+eps) + (1-target)*log(1-pred+eps)) as a
// shape-[1] tensor. Predictions are expected in (0, 1), i.e. sigmoid
// output.
func BCELoss(pred, target *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkLossShapes(pred, target); err != nil {
		return nil, err
	}
	p, y := pred.Data(), target.Data()
	var sum float64
	for i := range p {
		sum += float64(y[i])*math.Log(float64(p[i])+epsilon) +
			float64(1-y[i])*math.Log(float64(1-p[i])+epsilon)
	}
	loss := float32(-sum / float64(len(p)))
	return tensor.New([]float32{loss}, tensor.Shape{1})
}

// BCEGradient returns d(BCE)/d(pred) = (pred-target)/(pred*(1-pred)+eps).
func BCEGradient(pred, target *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkLossShapes(pred, target); err != nil {
		return nil, err
	}
	p, y := pred.Data(), target.Data()
	out := make([]float32, len(p))
	for i := range p {
		out[i] = (p[i] - y[i]) / (p[i]*(1-p[i]) + epsilon)
	}
	return tensor.New(out, pred.Shape())
}

// BCESigmoidDelta returns (pred-target)/n, the fused gradient of BCE
// loss through a sigmoid output. Use it in place of the chained
// BCEGradient and sigmoid derivative whenever the output activation is
// sigmoid: the composition cancels algebraically, and skipping it is
// both faster and numerically safer near saturated predictions.
func BCESigmoidDelta(pred, target *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkLossShapes(pred, target); err != nil {
		return nil, err
	}
	diff, err := pred.Sub(target)
	if err != nil {
		return nil, err
	}
	n := float32(pred.Shape().NumElements())
	return diff.Scale(1 / n), nil
}

// CCELoss returns the categorical cross-entropy -sum(target*log(pred+eps))
// as a shape-[1] tensor. Predictions are expected to be a probability
// distribution, i.e. softmax output.
func CCELoss(pred, target *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkLossShapes(pred, target); err != nil {
		return nil, err
	}
	p, y := pred.Data(), target.Data()
	var sum float64
	for i := range p {
		sum += float64(y[i]) * math.Log(float64(p[i])+epsilon)
	}
	return tensor.New([]float32{float32(-sum)}, tensor.Shape{1})
}

// CCESoftmaxDelta returns pred-target, the fused gradient of CCE loss
// through a softmax output. It is only valid paired with softmax, where
// the softmax Jacobian collapses the chain rule to this difference.
func CCESoftmaxDelta(pred, target *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkLossShapes(pred, target); err != nil {
		return nil, err
	}
	return pred.Sub(target)
}
