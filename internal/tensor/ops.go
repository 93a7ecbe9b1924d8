package tensor

import (
	"fmt"
	"math"
)

// zip applies op pairwise. Both operands must have identical shapes.
func (t *Tensor) zip(other *Tensor, op func(a, b float32) float32) (*Tensor, error) {
	if !t.shape.Equal(other.shape) {
		return nil, fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, t.shape, other.shape)
	}
	if err := t.shape.validate(); err != nil {
		return nil, err
	}
	data := make([]float32, len(t.data))
	for i := range t.data {
		data[i] = op(t.data[i], other.data[i])
	}
	return &Tensor{data: data, shape: t.shape.Clone()}, nil
}

// apply maps op over every element.
func (t *Tensor) apply(op func(v float32) float32) *Tensor {
	data := make([]float32, len(t.data))
	for i := range t.data {
		data[i] = op(t.data[i])
	}
	return &Tensor{data: data, shape: t.shape.Clone()}
}

// Add returns the element-wise sum. Fails with ErrShapeMismatch unless
// the shapes are identical.
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	return t.zip(other, func(a, b float32) float32 { return a + b })
}

// Sub returns the element-wise difference.
func (t *Tensor) Sub(other *Tensor) (*Tensor, error) {
	return t.zip(other, func(a, b float32) float32 { return a - b })
}

// Mul returns the element-wise (Hadamard) product.
func (t *Tensor) Mul(other *Tensor) (*Tensor, error) {
	return t.zip(other, func(a, b float32) float32 { return a * b })
}

// Div returns the element-wise quotient. Division by zero is not
// guarded; avoiding zero divisors is the caller's responsibility.
func (t *Tensor) Div(other *Tensor) (*Tensor, error) {
	return t.zip(other, func(a, b float32) float32 { return a / b })
}

// Abs returns the element-wise absolute value.
func (t *Tensor) Abs() *Tensor {
	return t.apply(func(v float32) float32 {
		return float32(math.Abs(float64(v)))
	})
}

// Powf raises every element to the given exponent.
func (t *Tensor) Powf(exponent float32) *Tensor {
	return t.apply(func(v float32) float32 {
		return float32(math.Pow(float64(v), float64(exponent)))
	})
}

// Scale multiplies every element by a scalar.
func (t *Tensor) Scale(scalar float32) *Tensor {
	return t.apply(func(v float32) float32 { return v * scalar })
}

// Exp returns the element-wise natural exponential.
func (t *Tensor) Exp() *Tensor {
	return t.apply(func(v float32) float32 {
		return float32(math.Exp(float64(v)))
	})
}

// ReLU returns max(0, x) element-wise.
func (t *Tensor) ReLU() *Tensor {
	return t.apply(func(v float32) float32 {
		if v > 0 {
			return v
		}
		return 0
	})
}

// ReLUPrime returns the ReLU step derivative: 1 where x > 0, else 0.
// The derivative at exactly 0 is defined as 0 here.
func (t *Tensor) ReLUPrime() *Tensor {
	return t.apply(func(v float32) float32 {
		if v > 0 {
			return 1
		}
		return 0
	})
}
