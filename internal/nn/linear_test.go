package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp-ml/warp/internal/tensor"
)

// constSource always yields the same value; with 0.75 every initialized
// parameter becomes 2*0.75-1 = 0.5.
type constSource struct{ v float32 }

func (s constSource) Float32() float32 { return s.v }

func TestNewLinearInit(t *testing.T) {
	l := NewLinear(2, 3, constSource{0.75})

	assert.Equal(t, 2, l.InFeatures())
	assert.Equal(t, 3, l.OutFeatures())
	assert.True(t, l.Weight().Shape().Equal(tensor.Shape{2, 3}))
	assert.True(t, l.Bias().Shape().Equal(tensor.Shape{3}))
	for _, v := range l.Weight().Data() {
		assert.Equal(t, float32(0.5), v)
	}
	assert.True(t, l.Input().IsEmpty())
}

func TestNewLinearNoBias(t *testing.T) {
	l := NewLinearNoBias(4, 2, constSource{0.75})
	assert.Nil(t, l.Bias())
}

func TestLinearForward(t *testing.T) {
	l := NewLinearNoBias(2, 2, constSource{0.5})
	require.NoError(t, l.SetWeight(tensorOf(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})))

	out, err := l.Forward(tensorOf(t, []float32{1, 2}, tensor.Shape{1, 2}))
	require.NoError(t, err)
	// [1 2] . [[1 2][3 4]] = [7 10]
	assert.Equal(t, []float32{7, 10}, out.Data())
	assert.True(t, out.Shape().Equal(tensor.Shape{1, 2}))
}

func TestLinearForwardWithBias(t *testing.T) {
	l := NewLinear(2, 2, constSource{0.75}) // weight all 0.5, bias all 0.5

	out, err := l.Forward(tensorOf(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2}))
	require.NoError(t, err)
	// row1: 0.5+1.0+0.5 = 2, row2: 1.5+2.0+0.5 = 4
	assert.Equal(t, []float32{2, 2, 4, 4}, out.Data())
}

func TestLinearForwardCachesInput(t *testing.T) {
	l := NewLinearNoBias(2, 1, constSource{0.75})
	in := tensorOf(t, []float32{3, 4}, tensor.Shape{1, 2})

	_, err := l.Forward(in)
	require.NoError(t, err)
	assert.Equal(t, in.Data(), l.Input().Data())
	assert.NotSame(t, in, l.Input())
}

func TestLinearForwardShapeMismatch(t *testing.T) {
	l := NewLinearNoBias(3, 1, constSource{0.75})

	_, err := l.Forward(tensorOf(t, []float32{1, 2}, tensor.Shape{1, 2}))
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestSetWeightShapeMismatch(t *testing.T) {
	l := NewLinearNoBias(2, 1, constSource{0.75})

	err := l.SetWeight(tensorOf(t, []float32{1, 2, 3}, tensor.Shape{3, 1}))
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

// Hand-computed single step: checks the gradient order of operations,
// in particular that the input gradient uses the pre-update weights.
func TestLinearBackwardStep(t *testing.T) {
	l := NewLinearNoBias(2, 1, constSource{0.75})
	require.NoError(t, l.SetWeight(tensorOf(t, []float32{1, 1}, tensor.Shape{2, 1})))

	_, err := l.Forward(tensorOf(t, []float32{1, 2}, tensor.Shape{1, 2}))
	require.NoError(t, err)

	grad := tensorOf(t, []float32{0.5}, tensor.Shape{1, 1})
	inputGrad, err := l.Backward(grad, 0.1)
	require.NoError(t, err)

	// inputGrad = grad . W^T with W still [[1],[1]]
	assert.Equal(t, []float32{0.5, 0.5}, inputGrad.Data())
	// weightGrad = input^T . grad = [[0.5],[1.0]]; W -= 0.1*weightGrad
	assert.InDelta(t, 0.95, l.Weight().Data()[0], 1e-6)
	assert.InDelta(t, 0.90, l.Weight().Data()[1], 1e-6)
}

func TestLinearBackwardUpdatesBias(t *testing.T) {
	l := NewLinear(2, 1, constSource{0.75}) // weight [[0.5],[0.5]], bias [0.5]

	_, err := l.Forward(tensorOf(t, []float32{1, 1, 2, 2}, tensor.Shape{2, 2}))
	require.NoError(t, err)

	grad := tensorOf(t, []float32{1, 1}, tensor.Shape{2, 1})
	inputGrad, err := l.Backward(grad, 0.1)
	require.NoError(t, err)

	// Pre-update W^T = [[0.5, 0.5]], so every input gradient entry is 0.5.
	assert.Equal(t, []float32{0.5, 0.5, 0.5, 0.5}, inputGrad.Data())
	// weightGrad = [[3],[3]] -> weights 0.5-0.3
	assert.InDelta(t, 0.2, l.Weight().Data()[0], 1e-6)
	assert.InDelta(t, 0.2, l.Weight().Data()[1], 1e-6)
	// bias gradient is the column sum of the output gradient: 2
	assert.InDelta(t, 0.3, l.Bias().Data()[0], 1e-6)
}

// The parameter buffer is stepped in place: views handed out before the
// update observe the new values.
func TestLinearBackwardUpdatesInPlace(t *testing.T) {
	l := NewLinearNoBias(1, 1, constSource{0.75})
	view := l.Weight().Data()
	before := view[0]

	_, err := l.Forward(tensorOf(t, []float32{2}, tensor.Shape{1, 1}))
	require.NoError(t, err)
	_, err = l.Backward(tensorOf(t, []float32{1}, tensor.Shape{1, 1}), 0.1)
	require.NoError(t, err)

	assert.InDelta(t, before-0.2, view[0], 1e-6)
}
