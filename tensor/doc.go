// Copyright 2026 Warp ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides flat-buffer tensor operations for the Warp ML framework.
//
// # Overview
//
// Tensors are the fundamental data structure in Warp. This package provides:
//   - Rank-1 and rank-2 float32 tensors backed by a single flat slice
//   - Pure element-wise and matrix operations (inputs are never mutated)
//   - Explicit error returns for every shape violation
//
// # Basic Usage
//
//	import "github.com/warp-ml/warp/tensor"
//
//	func main() {
//	    x, _ := tensor.New([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
//	    y, _ := tensor.Ones(tensor.Shape{2, 2})
//
//	    z, _ := x.Add(y)
//	    w, _ := x.MatMul(y)
//	    _ = z
//	    _ = w
//	}
//
// # Shapes
//
// A Shape lists the tensor's dimensions. Only rank-1 and rank-2 shapes
// are supported; higher ranks return ErrInvalidRank. Rank-1 tensors are
// treated as row vectors (shape {n} behaves as 1×n) wherever a matrix
// interpretation is needed.
//
// # Error Handling
//
// Operations never panic on bad input. Every failure wraps one of the
// package sentinels, so callers can branch with errors.Is:
//
//	if _, err := a.Add(b); errors.Is(err, tensor.ErrShapeMismatch) {
//	    // dimensions disagree
//	}
//
// # Purity
//
// All operations allocate a fresh result and leave their receivers
// untouched. The only way to observe mutation is through the slice
// returned by Data, which is a live view used by the training loop for
// in-place parameter updates.
package tensor
