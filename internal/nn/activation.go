package nn

import (
	"math"

	"github.com/warp-ml/warp/internal/tensor"
)

// ActivationKind enumerates the supported activation functions. The set
// is closed: every kind is handled exhaustively at compile time instead
// of being looked up in a runtime registry.
type ActivationKind int

const (
	// Identity passes values through unchanged (derivative 1).
	Identity ActivationKind = iota
	// ReLU is max(0, x).
	ReLU
	// LeakyReLU is x for x > 0, otherwise leakySlope*x.
	LeakyReLU
	// Sigmoid is 1/(1+e^-x).
	Sigmoid
	// Tanh is the hyperbolic tangent.
	Tanh
	// Softmax normalizes each vector to a probability distribution. It
	// is a whole-vector function (per row for rank-2 inputs) and pairs
	// exclusively with the categorical cross-entropy shortcut gradient.
	Softmax
)

// leakySlope is the negative-side slope of LeakyReLU.
const leakySlope = 0.01

// String returns the kind's name.
func (k ActivationKind) String() string {
	switch k {
	case Identity:
		return "identity"
	case ReLU:
		return "relu"
	case LeakyReLU:
		return "leaky_relu"
	case Sigmoid:
		return "sigmoid"
	case Tanh:
		return "tanh"
	case Softmax:
		return "softmax"
	default:
		return "unknown"
	}
}

func sigmoid(x float32) float32 {
	return float32(1 / (1 + math.Exp(float64(-x))))
}

// activate applies the kind's forward function.
func activate(kind ActivationKind, t *tensor.Tensor) (*tensor.Tensor, error) {
	switch kind {
	case Identity:
		return t.Clone(), nil
	case ReLU:
		return t.ReLU(), nil
	case LeakyReLU:
		out := make([]float32, len(t.Data()))
		for i, v := range t.Data() {
			if v > 0 {
				out[i] = v
			} else {
				out[i] = leakySlope * v
			}
		}
		return tensor.New(out, t.Shape())
	case Sigmoid:
		out := make([]float32, len(t.Data()))
		for i, v := range t.Data() {
			out[i] = sigmoid(v)
		}
		return tensor.New(out, t.Shape())
	case Tanh:
		out := make([]float32, len(t.Data()))
		for i, v := range t.Data() {
			out[i] = float32(math.Tanh(float64(v)))
		}
		return tensor.New(out, t.Shape())
	case Softmax:
		return softmax(t)
	default:
		return t.Clone(), nil
	}
}

// derivative applies the kind's derivative function element-wise to the
// cached pre-activation values. Softmax has no element-wise derivative;
// its layer skips this entirely (see Activation.Backward).
func derivative(kind ActivationKind, t *tensor.Tensor) (*tensor.Tensor, error) {
	switch kind {
	case Identity:
		return tensor.Ones(t.Shape())
	case ReLU:
		return t.ReLUPrime(), nil
	case LeakyReLU:
		out := make([]float32, len(t.Data()))
		for i, v := range t.Data() {
			if v > 0 {
				out[i] = 1
			} else {
				out[i] = leakySlope
			}
		}
		return tensor.New(out, t.Shape())
	case Sigmoid:
		out := make([]float32, len(t.Data()))
		for i, v := range t.Data() {
			s := sigmoid(v)
			out[i] = s * (1 - s)
		}
		return tensor.New(out, t.Shape())
	case Tanh:
		out := make([]float32, len(t.Data()))
		for i, v := range t.Data() {
			th := float32(math.Tanh(float64(v)))
			out[i] = 1 - th*th
		}
		return tensor.New(out, t.Shape())
	default:
		return tensor.Ones(t.Shape())
	}
}

// softmax exponentiates each vector after subtracting its running max,
// then normalizes. The max subtraction keeps e^x finite for large
// inputs without changing the result. Rank-2 inputs are treated as a
// batch: each row is normalized independently.
func softmax(t *tensor.Tensor) (*tensor.Tensor, error) {
	rows, cols := t.Rows(), t.Cols()
	data := t.Data()
	out := make([]float32, len(data))

	for r := 0; r < rows; r++ {
		row := data[r*cols : (r+1)*cols]
		outRow := out[r*cols : (r+1)*cols]

		maxVal := row[0]
		for _, v := range row[1:] {
			if v > maxVal {
				maxVal = v
			}
		}

		var sum float32
		for i, v := range row {
			e := float32(math.Exp(float64(v - maxVal)))
			outRow[i] = e
			sum += e
		}
		for i := range outRow {
			outRow[i] /= sum
		}
	}
	return tensor.New(out, t.Shape())
}

// Activation is a layer applying one activation kind element-wise (or
// vector-wise, for Softmax). It has no learnable parameters; its only
// state is the cached pre-activation input from the last Forward call.
type Activation struct {
	kind  ActivationKind
	fused bool
	input *tensor.Tensor
}

// NewActivation creates an activation layer of the given kind.
//
// A Softmax layer is always fused: softmax output pairs with the
// categorical cross-entropy shortcut gradient, whose delta already
// folds in the softmax Jacobian.
func NewActivation(kind ActivationKind) *Activation {
	return &Activation{
		kind:  kind,
		fused: kind == Softmax,
		input: tensor.Empty(),
	}
}

// NewFusedActivation creates an activation layer whose Backward passes
// the incoming gradient through unchanged. Use it when the network's
// loss gradient is a fused delta that already contains this
// activation's derivative, such as Sigmoid with BCESigmoidDelta.
func NewFusedActivation(kind ActivationKind) *Activation {
	a := NewActivation(kind)
	a.fused = true
	return a
}

// Kind returns the layer's activation kind.
func (a *Activation) Kind() ActivationKind {
	return a.kind
}

// Input returns the cached pre-activation input from the most recent
// Forward call, or the Empty sentinel before the first call. Callers
// must not mutate it.
func (a *Activation) Input() *tensor.Tensor {
	return a.input
}

// Forward caches the pre-activation input and returns the activated
// values.
func (a *Activation) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	a.input = input.Clone()
	return activate(a.kind, input)
}

// Backward returns outputGrad multiplied element-wise with the
// activation derivative at the cached input. Fused layers skip the
// derivative step: the incoming gradient is already the combined delta.
func (a *Activation) Backward(outputGrad *tensor.Tensor, _ float32) (*tensor.Tensor, error) {
	if a.fused {
		return outputGrad, nil
	}
	prime, err := derivative(a.kind, a.input)
	if err != nil {
		return nil, err
	}
	return outputGrad.Mul(prime)
}
