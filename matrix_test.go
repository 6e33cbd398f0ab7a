package damage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityMatrix(t *testing.T) {
	m := IdentityMatrix()
	assert.True(t, m.IsIdentity())

	x, y := m.TransformPoint(3, 7)
	assert.Equal(t, Scalar(3), x)
	assert.Equal(t, Scalar(7), y)
}

func TestTranslateMatrix(t *testing.T) {
	x, y := TranslateMatrix(10, 20).TransformPoint(1, 2)
	assert.Equal(t, Scalar(11), x)
	assert.Equal(t, Scalar(22), y)
}

func TestScaleMatrix(t *testing.T) {
	x, y := ScaleMatrix(2, 3).TransformPoint(4, 5)
	assert.Equal(t, Scalar(8), x)
	assert.Equal(t, Scalar(15), y)
}

func TestMatrixSetScale(t *testing.T) {
	m := IdentityMatrix()
	m.SetScaleX(2)
	m.SetScaleY(0.5)

	x, y := m.TransformPoint(10, 10)
	assert.Equal(t, Scalar(20), x)
	assert.Equal(t, Scalar(5), y)
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// Translate then scale locally: point is scaled before translation.
	m := TranslateMatrix(10, 10).Multiply(ScaleMatrix(2, 2))

	x, y := m.TransformPoint(3, 4)
	assert.Equal(t, Scalar(16), x)
	assert.Equal(t, Scalar(18), y)
}

func TestMatrixMapRect(t *testing.T) {
	t.Run("translate", func(t *testing.T) {
		got := TranslateMatrix(10, 20).MapRect(MakeXYWH(0, 0, 5, 5))
		assert.Equal(t, MakeLTRB(10, 20, 15, 25), got)
	})

	t.Run("scale", func(t *testing.T) {
		got := ScaleMatrix(2, 3).MapRect(MakeXYWH(1, 1, 2, 2))
		assert.Equal(t, MakeLTRB(2, 3, 6, 9), got)
	})

	t.Run("negative scale renormalizes", func(t *testing.T) {
		got := ScaleMatrix(-1, 1).MapRect(MakeXYWH(0, 0, 10, 5))
		assert.Equal(t, MakeLTRB(-10, 0, 0, 5), got)
	})
}

func TestMatrixNearlyEqual(t *testing.T) {
	a := TranslateMatrix(10, 20)

	b := a
	b.C += Epsilon / 2
	assert.True(t, a.NearlyEqual(b))

	c := a
	c.C += 0.01
	assert.False(t, a.NearlyEqual(c))
}
