package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp-ml/warp/internal/tensor"
)

func TestL1Loss(t *testing.T) {
	// (|2-1| + |4-5|) / 2 = 1
	pred := tensorOf(t, []float32{2, 4}, tensor.Shape{2, 1})
	actual := tensorOf(t, []float32{1, 5}, tensor.Shape{2, 1})

	loss, err := L1Loss(pred, actual)
	require.NoError(t, err)
	assert.Equal(t, []float32{1}, loss.Data())
}

func TestMSELoss(t *testing.T) {
	// ((2-1)^2 + (4-6)^2) / 2 = 2.5
	pred := tensorOf(t, []float32{2, 4}, tensor.Shape{2, 1})
	actual := tensorOf(t, []float32{1, 6}, tensor.Shape{2, 1})

	loss, err := MSELoss(pred, actual)
	require.NoError(t, err)
	assert.Equal(t, []float32{2.5}, loss.Data())
}

func TestMSELossIdenticalIsZero(t *testing.T) {
	pred := tensorOf(t, []float32{1, 2, 3}, tensor.Shape{3, 1})

	loss, err := MSELoss(pred, pred.Clone())
	require.NoError(t, err)
	assert.Equal(t, []float32{0}, loss.Data())
}

func TestMSEGradient(t *testing.T) {
	pred := tensorOf(t, []float32{2, 4}, tensor.Shape{2})
	actual := tensorOf(t, []float32{1, 6}, tensor.Shape{2})

	grad, err := MSEGradient(pred, actual)
	require.NoError(t, err)
	// 2/n * (pred-target), n = 2
	assert.Equal(t, []float32{1, -2}, grad.Data())
}

func TestLossShapeMismatch(t *testing.T) {
	pred := tensorOf(t, []float32{1, 2, 3}, tensor.Shape{3, 1})
	actual := tensorOf(t, []float32{1, 2}, tensor.Shape{2, 1})

	for name, fn := range map[string]func(p, a *tensor.Tensor) (*tensor.Tensor, error){
		"l1":        L1Loss,
		"mse":       MSELoss,
		"mse_grad":  MSEGradient,
		"bce":       BCELoss,
		"bce_grad":  BCEGradient,
		"bce_delta": BCESigmoidDelta,
		"cce":       CCELoss,
		"cce_delta": CCESoftmaxDelta,
	} {
		_, err := fn(pred, actual)
		assert.ErrorIs(t, err, tensor.ErrShapeMismatch, name)
	}
}

func TestBCELoss(t *testing.T) {
	pred := tensorOf(t, []float32{0.8, 0.2}, tensor.Shape{2})
	target := tensorOf(t, []float32{1, 0}, tensor.Shape{2})

	loss, err := BCELoss(pred, target)
	require.NoError(t, err)
	// Both terms contribute -log(0.8).
	assert.InDelta(t, -math.Log(0.8), loss.Data()[0], 1e-6)
}

// The epsilon keeps a saturated wrong prediction finite instead of
// producing -Inf.
func TestBCELossSaturated(t *testing.T) {
	pred := tensorOf(t, []float32{0, 1}, tensor.Shape{2})
	target := tensorOf(t, []float32{1, 0}, tensor.Shape{2})

	loss, err := BCELoss(pred, target)
	require.NoError(t, err)
	assert.False(t, math.IsInf(float64(loss.Data()[0]), 0))
	assert.False(t, math.IsNaN(float64(loss.Data()[0])))
}

func TestBCEGradient(t *testing.T) {
	pred := tensorOf(t, []float32{0.8, 0.2}, tensor.Shape{2})
	target := tensorOf(t, []float32{1, 0}, tensor.Shape{2})

	grad, err := BCEGradient(pred, target)
	require.NoError(t, err)
	// (pred-target)/(pred*(1-pred)+eps) = ±0.2/0.16
	assert.InDelta(t, -1.25, grad.Data()[0], 1e-5)
	assert.InDelta(t, 1.25, grad.Data()[1], 1e-5)
}

func TestBCESigmoidDelta(t *testing.T) {
	pred := tensorOf(t, []float32{0.8, 0.2}, tensor.Shape{2})
	target := tensorOf(t, []float32{1, 0}, tensor.Shape{2})

	delta, err := BCESigmoidDelta(pred, target)
	require.NoError(t, err)
	assert.InDelta(t, -0.1, delta.Data()[0], 1e-6)
	assert.InDelta(t, 0.1, delta.Data()[1], 1e-6)
}

func TestCCELoss(t *testing.T) {
	pred := tensorOf(t, []float32{0.7, 0.2, 0.1}, tensor.Shape{3})
	target := tensorOf(t, []float32{1, 0, 0}, tensor.Shape{3})

	loss, err := CCELoss(pred, target)
	require.NoError(t, err)
	assert.InDelta(t, -math.Log(0.7), loss.Data()[0], 1e-6)
}

func TestCCESoftmaxDelta(t *testing.T) {
	pred := tensorOf(t, []float32{0.7, 0.2, 0.1}, tensor.Shape{3})
	target := tensorOf(t, []float32{1, 0, 0}, tensor.Shape{3})

	delta, err := CCESoftmaxDelta(pred, target)
	require.NoError(t, err)
	assert.InDelta(t, -0.3, delta.Data()[0], 1e-6)
	assert.InDelta(t, 0.2, delta.Data()[1], 1e-6)
	assert.InDelta(t, 0.1, delta.Data()[2], 1e-6)
}
