// Copyright 2026 Warp ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/warp-ml/warp/internal/tensor"
)

// Type aliases for public API

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} is a 2×3 matrix, Shape{4} is a length-4 vector.
type Shape = tensor.Shape

// Tensor is a rank-1 or rank-2 float32 tensor backed by a flat,
// row-major buffer.
//
// Tensors are value containers, not computation graphs: every
// operation returns a new tensor and an explicit error.
//
// Example:
//
//	a, _ := tensor.New([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	b, _ := a.Transpose()
//	c, _ := a.MatMul(b) // 2×2
type Tensor = tensor.Tensor

// Sentinel errors. Every failing operation wraps exactly one of these.
var (
	// ErrShapeMismatch reports operands whose dimensions disagree.
	ErrShapeMismatch = tensor.ErrShapeMismatch

	// ErrInvalidRank reports a shape outside the supported rank-1/rank-2 range.
	ErrInvalidRank = tensor.ErrInvalidRank

	// ErrInconsistentData reports a data buffer whose length does not
	// match its shape, or ragged row input.
	ErrInconsistentData = tensor.ErrInconsistentData
)

// Creation functions

// New creates a tensor from a flat row-major buffer and a shape.
// The data slice is copied.
//
// Example:
//
//	x, err := tensor.New([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
func New(data []float32, shape Shape) (*Tensor, error) {
	return tensor.New(data, shape)
}

// Empty creates a tensor with no elements and an empty shape.
// Arithmetic on an empty tensor fails with ErrInvalidRank.
func Empty() *Tensor {
	return tensor.Empty()
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x, err := tensor.Zeros(tensor.Shape{2, 3})
func Zeros(shape Shape) (*Tensor, error) {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) (*Tensor, error) {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x, err := tensor.Full(tensor.Shape{2, 3}, 3.14)
func Full(shape Shape, value float32) (*Tensor, error) {
	return tensor.Full(shape, value)
}

// FromRows creates a rank-2 tensor from a slice of equally sized rows.
// Ragged input fails with ErrInconsistentData.
//
// Example:
//
//	x, err := tensor.FromRows([][]float32{{1, 2}, {3, 4}})
func FromRows(rows [][]float32) (*Tensor, error) {
	return tensor.FromRows(rows)
}
