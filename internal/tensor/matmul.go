package tensor

import "fmt"

// matmulDims normalizes both operands to matrices (a rank-1 left
// operand acts as a 1×n row, a rank-1 right operand as an n×1 column)
// and returns the m×k×n extents plus the result shape, which collapses
// back to rank 1 whenever a side of the product has no real matrix
// dimension: (1D,1D)→[1], (1D,2D)→[cols_b], (2D,1D)→[rows_a],
// (2D,2D)→[rows_a, cols_b].
func matmulDims(a, b *Tensor) (m, k, n int, out Shape, err error) {
	if err := a.shape.validate(); err != nil {
		return 0, 0, 0, nil, err
	}
	if err := b.shape.validate(); err != nil {
		return 0, 0, 0, nil, err
	}

	m, ka := 1, len(a.data)
	if a.Rank() == 2 {
		m, ka = a.shape[0], a.shape[1]
	}
	kb, n := len(b.data), 1
	if b.Rank() == 2 {
		kb, n = b.shape[0], b.shape[1]
	}
	if ka != kb {
		return 0, 0, 0, nil, fmt.Errorf("%w: inner dimensions %d and %d (shapes %v x %v)",
			ErrShapeMismatch, ka, kb, a.shape, b.shape)
	}

	switch {
	case a.Rank() == 1 && b.Rank() == 1:
		out = Shape{1}
	case a.Rank() == 1:
		out = Shape{n}
	case b.Rank() == 1:
		out = Shape{m}
	default:
		out = Shape{m, n}
	}
	return m, ka, n, out, nil
}

// MatMul returns the generalized dot product of t and other.
//
// The contraction loop sits between the output-row and output-column
// loops, so the inner loop streams sequentially over one row of the
// right operand and one row of the output. That keeps every memory
// access prefetch-friendly and leaves the inner accumulation in a form
// the compiler can vectorize, unlike the textbook row-column ordering
// which strides down the right operand's columns.
//
// Fails with ErrShapeMismatch when the inner dimensions disagree and
// ErrInvalidRank when either operand is outside rank 1-2.
func (t *Tensor) MatMul(other *Tensor) (*Tensor, error) {
	m, k, n, outShape, err := matmulDims(t, other)
	if err != nil {
		return nil, err
	}

	out := make([]float32, m*n)
	a, b := t.data, other.data
	for i := 0; i < m; i++ {
		outRow := out[i*n : (i+1)*n]
		for kk := 0; kk < k; kk++ {
			aik := a[i*k+kk]
			bRow := b[kk*n : (kk+1)*n]
			for j, bv := range bRow {
				outRow[j] += aik * bv
			}
		}
	}
	return &Tensor{data: out, shape: outShape}, nil
}

// MatMulNaive computes the same product with the textbook
// row/column/contraction loop ordering. It shares the shape rules of
// MatMul and exists as the reference the optimized ordering is
// cross-checked against; MatMul is the production path.
func (t *Tensor) MatMulNaive(other *Tensor) (*Tensor, error) {
	m, k, n, outShape, err := matmulDims(t, other)
	if err != nil {
		return nil, err
	}

	out := make([]float32, m*n)
	a, b := t.data, other.data
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum float32
			for kk := 0; kk < k; kk++ {
				sum += a[i*k+kk] * b[kk*n+j]
			}
			out[i*n+j] = sum
		}
	}
	return &Tensor{data: out, shape: outShape}, nil
}
