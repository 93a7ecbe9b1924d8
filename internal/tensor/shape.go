package tensor

import "fmt"

// Shape represents the dimensions of a tensor: a single entry for a
// vector, two entries (rows, cols) for a matrix.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements implied by the shape.
// The empty shape (used by the Empty sentinel) has zero elements.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String renders the shape as [r c].
func (s Shape) String() string {
	return fmt.Sprintf("%v", []int(s))
}

// validate checks the rank-1/rank-2 restriction and that every
// dimension is non-negative.
func (s Shape) validate() error {
	if len(s) == 0 || len(s) > 2 {
		return fmt.Errorf("%w: got rank %d", ErrInvalidRank, len(s))
	}
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: negative dimension %d at index %d", ErrInvalidRank, dim, i)
		}
	}
	return nil
}
