// Copyright 2026 Warp ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp-ml/warp/tensor"
)

func TestPublicAPIRoundTrip(t *testing.T) {
	a, err := tensor.New([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)

	at, err := a.Transpose()
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 2}, at.Shape())

	prod, err := a.MatMul(at)
	require.NoError(t, err)
	assert.Equal(t, []float32{14, 32, 32, 77}, prod.Data())
}

func TestPublicFactories(t *testing.T) {
	z, err := tensor.Zeros(tensor.Shape{2, 2})
	require.NoError(t, err)
	o, err := tensor.Ones(tensor.Shape{2, 2})
	require.NoError(t, err)

	sum, err := z.Add(o)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 1, 1, 1}, sum.Data())

	f, err := tensor.Full(tensor.Shape{3}, 2.5)
	require.NoError(t, err)
	assert.Equal(t, []float32{2.5, 2.5, 2.5}, f.Data())

	rows, err := tensor.FromRows([][]float32{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2}, rows.Shape())
}

func TestPublicSentinels(t *testing.T) {
	a, err := tensor.New([]float32{1, 2}, tensor.Shape{2})
	require.NoError(t, err)
	b, err := tensor.New([]float32{1, 2, 3}, tensor.Shape{3})
	require.NoError(t, err)

	_, err = a.Add(b)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = tensor.New([]float32{1}, tensor.Shape{1, 1, 1})
	assert.ErrorIs(t, err, tensor.ErrInvalidRank)

	_, err = tensor.FromRows([][]float32{{1, 2}, {3}})
	assert.ErrorIs(t, err, tensor.ErrInconsistentData)

	assert.True(t, tensor.Empty().IsEmpty())
}
