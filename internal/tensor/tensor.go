package tensor

import (
	"fmt"
	"strings"
)

// Tensor is a rank-1 or rank-2 container of 32-bit floats stored in a
// single contiguous row-major buffer: element (row, col) of a matrix
// lives at data[row*cols+col].
//
// A Tensor exclusively owns its buffer. Operations are pure: they read
// their operands and allocate a fresh result, so values can be shared
// freely between calls without aliasing surprises.
//
// Example:
//
//	a, _ := tensor.New([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
//	b, _ := tensor.Ones(tensor.Shape{2, 2})
//	sum, _ := a.Add(b)
type Tensor struct {
	data  []float32
	shape Shape
}

// New constructs a tensor from a flat buffer and a shape. The data is
// copied, never retained.
//
// Returns ErrInvalidRank for a shape outside rank 1-2 and
// ErrInconsistentData when len(data) != shape.NumElements().
func New(data []float32, shape Shape) (*Tensor, error) {
	if err := shape.validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, got %d",
			ErrInconsistentData, shape, shape.NumElements(), len(data))
	}
	owned := make([]float32, len(data))
	copy(owned, data)
	return &Tensor{data: owned, shape: shape.Clone()}, nil
}

// Empty returns the zero-length placeholder tensor (shape []). It is
// only a pre-first-forward cache sentinel inside layers; passing it to
// arithmetic yields ErrInvalidRank.
func Empty() *Tensor {
	return &Tensor{data: nil, shape: Shape{}}
}

// Data returns the tensor's flat buffer. Callers must treat the slice
// as read-only; it is the tensor's owned storage, not a copy.
func (t *Tensor) Data() []float32 {
	return t.data
}

// Shape returns the tensor's shape. The returned slice is the tensor's
// own metadata and must not be modified.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return t.shape.Rank()
}

// Rows returns the row count under the row-vector interpretation:
// a rank-1 tensor is a single 1×n row.
func (t *Tensor) Rows() int {
	if t.Rank() == 2 {
		return t.shape[0]
	}
	return 1
}

// Cols returns the column count under the row-vector interpretation.
func (t *Tensor) Cols() int {
	if t.Rank() == 2 {
		return t.shape[1]
	}
	return len(t.data)
}

// At returns element (row, col) of a rank-2 tensor, or element col of a
// rank-1 tensor (row must be 0).
func (t *Tensor) At(row, col int) float32 {
	return t.data[row*t.Cols()+col]
}

// IsEmpty reports whether the tensor is the Empty placeholder.
func (t *Tensor) IsEmpty() bool {
	return t.shape.Rank() == 0
}

// Clone returns a deep copy.
func (t *Tensor) Clone() *Tensor {
	data := make([]float32, len(t.data))
	copy(data, t.data)
	return &Tensor{data: data, shape: t.shape.Clone()}
}

// String renders a rank-2 tensor as aligned rows between pipes and
// falls back to the plain slice form for anything else:
//
//	|  1.0000,   2.0000|
//	|  3.0000,   4.0000|
func (t *Tensor) String() string {
	if t.Rank() != 2 {
		return fmt.Sprintf("%v", t.data)
	}

	rows, cols := t.shape[0], t.shape[1]
	var b strings.Builder
	for row := 0; row < rows; row++ {
		b.WriteString("  |")
		for col := 0; col < cols; col++ {
			fmt.Fprintf(&b, "%8.4f", t.data[row*cols+col])
			if col < cols-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("|\n")
	}
	return b.String()
}
