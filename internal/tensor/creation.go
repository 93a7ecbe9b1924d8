package tensor

import "fmt"

// Zeros creates a tensor of the given shape filled with 0.
func Zeros(shape Shape) (*Tensor, error) {
	if err := shape.validate(); err != nil {
		return nil, err
	}
	return &Tensor{data: make([]float32, shape.NumElements()), shape: shape.Clone()}, nil
}

// Ones creates a tensor of the given shape filled with 1.
func Ones(shape Shape) (*Tensor, error) {
	return Full(shape, 1)
}

// Full creates a tensor of the given shape filled with value.
func Full(shape Shape, value float32) (*Tensor, error) {
	t, err := Zeros(shape)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = value
	}
	return t, nil
}

// FromRows creates a rank-2 tensor from a slice of equally sized rows.
// Ragged input yields ErrInconsistentData.
func FromRows(rows [][]float32) (*Tensor, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInconsistentData)
	}
	cols := len(rows[0])
	data := make([]float32, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d elements, want %d",
				ErrInconsistentData, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return &Tensor{data: data, shape: Shape{len(rows), cols}}, nil
}
