package nn

import (
	"fmt"

	"github.com/warp-ml/warp/internal/tensor"
)

// Linear implements the affine transform y = x·W + b.
//
// The weight matrix has shape [in_features, out_features] so the input
// multiplies it directly, and the bias is a separate [out_features]
// vector broadcast across the input rows. NewLinearNoBias provides the
// bias-trick variant: no bias tensor, with the caller appending a
// constant-1 column to the input and the weight gaining a matching row.
//
// Forward caches its input: the backward pass needs it to compute
// dL/dW = inputᵀ · outputGrad.
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *tensor.Tensor // [in_features, out_features]
	bias        *tensor.Tensor // [out_features], nil for the no-bias variant
	input       *tensor.Tensor // last forward input, Empty before the first call
}

// initTensor fills a shape from the injected source, mapped from [0,1)
// to [-1,1) so initial weights straddle zero.
func initTensor(shape tensor.Shape, src FloatSource) *tensor.Tensor {
	data := make([]float32, shape.NumElements())
	for i := range data {
		data[i] = 2*src.Float32() - 1
	}
	t, err := tensor.New(data, shape)
	if err != nil {
		panic(err) // shapes are built internally, rank is always valid
	}
	return t
}

// NewLinear creates a Linear layer with weight and bias initialized
// from the injected pseudo-random source.
func NewLinear(inFeatures, outFeatures int, src FloatSource) *Linear {
	l := NewLinearNoBias(inFeatures, outFeatures, src)
	l.bias = initTensor(tensor.Shape{outFeatures}, src)
	return l
}

// NewLinearNoBias creates a Linear layer without a bias tensor, for use
// with bias-trick inputs carrying a constant-1 column.
func NewLinearNoBias(inFeatures, outFeatures int, src FloatSource) *Linear {
	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      initTensor(tensor.Shape{inFeatures, outFeatures}, src),
		input:       tensor.Empty(),
	}
}

// InFeatures returns the input width.
func (l *Linear) InFeatures() int { return l.inFeatures }

// OutFeatures returns the output width.
func (l *Linear) OutFeatures() int { return l.outFeatures }

// Weight returns the weight tensor. It is the layer's live parameter:
// callers must treat it as read-only.
func (l *Linear) Weight() *tensor.Tensor { return l.weight }

// Bias returns the bias tensor, or nil for the no-bias variant.
func (l *Linear) Bias() *tensor.Tensor { return l.bias }

// Input returns the cached input from the most recent Forward call, or
// the Empty sentinel before the first call. Callers must not mutate it.
func (l *Linear) Input() *tensor.Tensor { return l.input }

// SetWeight replaces the weight tensor. The new weight must keep the
// configured [in_features, out_features] shape.
func (l *Linear) SetWeight(w *tensor.Tensor) error {
	if !w.Shape().Equal(l.weight.Shape()) {
		return fmt.Errorf("%w: weight %v, layer expects %v",
			tensor.ErrShapeMismatch, w.Shape(), l.weight.Shape())
	}
	l.weight = w.Clone()
	return nil
}

// Forward caches a copy of the input and returns input·W (+ bias).
// Fails with ErrShapeMismatch when the input's trailing dimension is
// not the layer's input width.
func (l *Linear) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	if input.Cols() != l.inFeatures {
		return nil, fmt.Errorf("%w: linear layer expects %d input features, got %d",
			tensor.ErrShapeMismatch, l.inFeatures, input.Cols())
	}
	l.input = input.Clone()

	out, err := input.MatMul(l.weight)
	if err != nil {
		return nil, err
	}
	if l.bias == nil {
		return out, nil
	}
	return addBias(out, l.bias)
}

// addBias adds the [out_features] bias vector to every row of out.
func addBias(out, bias *tensor.Tensor) (*tensor.Tensor, error) {
	if out.Rank() == 1 {
		return out.Add(bias)
	}
	sum := out.Clone()
	data, b := sum.Data(), bias.Data()
	cols := sum.Cols()
	for i := range data {
		data[i] += b[i%cols]
	}
	return sum, nil
}

// Backward propagates the gradient and applies the gradient-descent
// update. The input gradient is computed against the pre-update weight
// values, then the parameters are stepped in place:
//
//	inputGrad  = outputGrad · Wᵀ
//	weightGrad = inputᵀ · outputGrad
//	W         -= lr · weightGrad
//	b         -= lr · columnSums(outputGrad)
//
// The bias gradient is the incoming gradient itself (its local partial
// derivative is 1); the column sum is the aggregate over the batch rows
// and reduces to the gradient directly for a single-row batch.
func (l *Linear) Backward(outputGrad *tensor.Tensor, learningRate float32) (*tensor.Tensor, error) {
	weightT, err := l.weight.Transpose()
	if err != nil {
		return nil, err
	}
	inputGrad, err := outputGrad.MatMul(weightT)
	if err != nil {
		return nil, err
	}

	inputT, err := l.input.Transpose()
	if err != nil {
		return nil, err
	}
	weightGrad, err := inputT.MatMul(outputGrad)
	if err != nil {
		return nil, err
	}

	updated, err := l.weight.Sub(weightGrad.Scale(learningRate))
	if err != nil {
		return nil, err
	}
	// Step the owned buffer in place so previously handed-out views
	// stay current.
	copy(l.weight.Data(), updated.Data())

	if l.bias != nil {
		biasGrad := outputGrad
		if outputGrad.Rank() == 2 {
			biasGrad, err = outputGrad.SumDim(0)
			if err != nil {
				return nil, err
			}
		}
		updatedBias, err := l.bias.Sub(biasGrad.Scale(learningRate))
		if err != nil {
			return nil, err
		}
		copy(l.bias.Data(), updatedBias.Data())
	}

	return inputGrad, nil
}
