package tensor

import "fmt"

// Sum returns the grand sum of all elements as a shape-[1] tensor.
func (t *Tensor) Sum() *Tensor {
	var sum float32
	for _, v := range t.data {
		sum += v
	}
	return &Tensor{data: []float32{sum}, shape: Shape{1}}
}

// SumDim reduces a rank-2 tensor along the given dimension:
// dim 0 produces column sums (shape [cols]), dim 1 produces row sums
// (shape [rows]). A rank-1 tensor falls back to the grand sum for
// either dimension. Other dimensions fail with ErrInvalidRank.
func (t *Tensor) SumDim(dim int) (*Tensor, error) {
	if dim != 0 && dim != 1 {
		return nil, fmt.Errorf("%w: reduction dimension %d", ErrInvalidRank, dim)
	}
	if err := t.shape.validate(); err != nil {
		return nil, err
	}
	if t.Rank() == 1 {
		return t.Sum(), nil
	}

	rows, cols := t.shape[0], t.shape[1]
	if dim == 0 {
		data := make([]float32, cols)
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				data[col] += t.data[row*cols+col]
			}
		}
		return &Tensor{data: data, shape: Shape{cols}}, nil
	}

	data := make([]float32, rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			data[row] += t.data[row*cols+col]
		}
	}
	return &Tensor{data: data, shape: Shape{rows}}, nil
}
