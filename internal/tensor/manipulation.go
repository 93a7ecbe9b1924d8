package tensor

// Transpose returns the matrix transpose.
//
// For a rank-2 [r, c] tensor the result is [c, r] with element (i, j)
// moved to (j, i). A rank-1 tensor is returned as an unchanged copy:
// with no column dimension to move to, there is nothing to transpose.
// Anything outside rank 1-2 fails with ErrInvalidRank.
func (t *Tensor) Transpose() (*Tensor, error) {
	if err := t.shape.validate(); err != nil {
		return nil, err
	}
	if t.Rank() == 1 {
		return t.Clone(), nil
	}

	rows, cols := t.shape[0], t.shape[1]
	data := make([]float32, len(t.data))
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			data[col*rows+row] = t.data[row*cols+col]
		}
	}
	return &Tensor{data: data, shape: Shape{cols, rows}}, nil
}
