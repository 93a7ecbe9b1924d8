package tensor

import "errors"

// Error kinds for tensor operations. All fallible operations return one
// of these sentinels, wrapped with operation context; callers match
// with errors.Is.
var (
	// ErrShapeMismatch signals structurally incompatible operand shapes:
	// differing shapes for an element-wise operation, or disagreeing
	// inner dimensions for a matrix multiplication.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrInvalidRank signals a tensor outside the supported rank range
	// of 1-2, or an unsupported reduction dimension.
	ErrInvalidRank = errors.New("tensor: only rank-1 and rank-2 tensors are supported")

	// ErrInconsistentData signals a flat buffer whose length does not
	// equal the element count declared by the shape.
	ErrInconsistentData = errors.New("tensor: data length does not match shape")
)
