package mathfn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numgo-ml/numgo/tensor"
)

func TestFloat64Kernels(t *testing.T) {
	x, err := tensor.FromSlice([]float64{0, math.Pi / 2, math.Pi}, tensor.Shape{3})
	require.NoError(t, err)

	s, err := tensor.Eval(Sin[float64](x.View()))
	require.NoError(t, err)
	assert.InDelta(t, 0, s.At(0), 1e-15)
	assert.InDelta(t, 1, s.At(1), 1e-15)
	assert.InDelta(t, 0, s.At(2), 1e-15)

	c, err := tensor.Eval(Cos[float64](x.View()))
	require.NoError(t, err)
	assert.InDelta(t, 1, c.At(0), 1e-15)
	assert.InDelta(t, -1, c.At(2), 1e-15)

	// sin*sin + cos*cos = 1 elementwise.
	ss, err := tensor.Mul[float64](s.View(), s.View())
	require.NoError(t, err)
	cc, err := tensor.Mul[float64](c.View(), c.View())
	require.NoError(t, err)
	one, err := tensor.Add(ss, cc)
	require.NoError(t, err)
	res, err := tensor.Eval(one)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 1, res.At(i), 1e-15)
	}
}

func TestFloat32Kernels(t *testing.T) {
	x, err := tensor.FromSlice([]float32{1, 4, 9}, tensor.Shape{3})
	require.NoError(t, err)

	r, err := tensor.Eval(Sqrt[float32](x.View()))
	require.NoError(t, err)
	assert.InDelta(t, 1, r.At(0), 1e-6)
	assert.InDelta(t, 2, r.At(1), 1e-6)
	assert.InDelta(t, 3, r.At(2), 1e-6)

	e, err := tensor.Eval(Exp[float32](x.View()))
	require.NoError(t, err)
	assert.InDelta(t, float32(math.E), e.At(0), 1e-5)
}

func TestExpLogRoundTrip(t *testing.T) {
	x, err := tensor.Linspace(0.5, 4.0, 8)
	require.NoError(t, err)

	y, err := tensor.Eval(Log[float64](Exp[float64](x.View())))
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		assert.InDelta(t, x.At(i), y.At(i), 1e-12)
	}
}

func TestPowAbsTan(t *testing.T) {
	x, err := tensor.FromSlice([]float64{-2, 3}, tensor.Shape{2})
	require.NoError(t, err)

	p, err := tensor.Eval(Pow[float64](x.View(), 2))
	require.NoError(t, err)
	assert.InDelta(t, 4, p.At(0), 1e-12)
	assert.InDelta(t, 9, p.At(1), 1e-12)

	a, err := tensor.Eval(Abs[float64](x.View()))
	require.NoError(t, err)
	assert.InDelta(t, 2, a.At(0), 1e-12)

	tn, err := tensor.Eval(Tan[float64](tensor.MulScalar[float64](x.View(), 0)))
	require.NoError(t, err)
	assert.InDelta(t, 0, tn.At(0), 1e-15)
}

func TestClamp(t *testing.T) {
	x, err := tensor.FromSlice([]float64{-5, 0.5, 5}, tensor.Shape{3})
	require.NoError(t, err)

	c, err := tensor.Eval(Clamp[float64](x.View(), 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.At(0))
	assert.Equal(t, 0.5, c.At(1))
	assert.Equal(t, 1.0, c.At(2))
}

func TestLazyUntilEval(t *testing.T) {
	x, err := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2})
	require.NoError(t, err)

	e := Sqrt[float64](x.View())
	x.SetAt(16, 1)

	y, err := tensor.Eval(e)
	require.NoError(t, err)
	assert.InDelta(t, 4, y.At(1), 1e-12, "expression must read post-mutation data")
}
