package tabulated

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrayFunction(t *testing.T) {
	f, err := NewArrayFunction(0, 4, 5)
	assert.Nil(t, err)
	assert.EqualValues(t, 5, f.PointsCount())
	assert.EqualValues(t, 5+spareCapacity, len(f.points))

	for i := 0; i < 5; i++ {
		p, err := f.Point(i)
		assert.Nil(t, err)
		assert.InDelta(t, float64(i), p.X, 1e-12)
		assert.EqualValues(t, 0, p.Y)
	}

	assert.EqualValues(t, 0, f.LeftDomainBorder())
	assert.EqualValues(t, 4, f.RightDomainBorder())
	assert.Equal(t, KindArray, f.Kind())
}

func TestArrayFunctionWithValues(t *testing.T) {
	f, err := NewArrayFunctionWithValues(0, 3, []float64{1, 4, 9, 16})
	assert.Nil(t, err)

	y, err := f.PointY(3)
	assert.Nil(t, err)
	assert.EqualValues(t, 16, y)

	_, err = NewArrayFunctionWithValues(0, 3, []float64{1})
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = NewArrayFunctionWithValues(3, 0, []float64{1, 2})
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestArrayFunctionGrowth(t *testing.T) {
	f, err := NewArrayFunction(0, 1, 2)
	assert.Nil(t, err)

	for i := 2; i < 40; i++ {
		assert.Nil(t, f.AddPoint(NewPoint(float64(i), float64(i*i))))
	}

	assert.EqualValues(t, 40, f.PointsCount())
	assert.True(t, len(f.points) >= 40)

	// inserted in the middle
	assert.Nil(t, f.AddPoint(NewPoint(0.5, 7)))

	p, err := f.Point(1)
	assert.Nil(t, err)
	assert.Equal(t, NewPoint(0.5, 7), p)

	p, err = f.Point(2)
	assert.Nil(t, err)
	assert.EqualValues(t, 1, p.X)
}

func TestArrayFunctionAddDuplicate(t *testing.T) {
	f, err := NewArrayFunctionFromPoints([]Point{{0, 0}, {1, 1}, {2, 4}})
	assert.Nil(t, err)

	err = f.AddPoint(NewPoint(1+1e-11, 5))
	assert.True(t, errors.Is(err, ErrOrderViolation))
	assert.EqualValues(t, 3, f.PointsCount())

	err = f.AddPoint(NewPoint(math.NaN(), 5))
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestArrayFunctionDelete(t *testing.T) {
	f, err := NewArrayFunctionFromPoints([]Point{{0, 0}, {1, 1}, {2, 4}})
	assert.Nil(t, err)

	err = f.DeletePoint(3)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))

	assert.Nil(t, f.DeletePoint(1))
	assert.Equal(t, []Point{{0, 0}, {2, 4}}, Collect(f))

	err = f.DeletePoint(0)
	assert.True(t, errors.Is(err, ErrState))
	assert.Equal(t, []Point{{0, 0}, {2, 4}}, Collect(f))
}

func TestArrayFunctionSetPoint(t *testing.T) {
	f, err := NewArrayFunctionFromPoints([]Point{{0, 0}, {1, 1}, {2, 4}})
	assert.Nil(t, err)

	assert.Nil(t, f.SetPoint(1, NewPoint(1.5, 2)))
	assert.True(t, errors.Is(f.SetPoint(1, NewPoint(2, 2)), ErrOrderViolation))
	assert.True(t, errors.Is(f.SetPointX(1, 0), ErrOrderViolation))
	assert.True(t, errors.Is(f.SetPointX(5, 0), ErrIndexOutOfRange))

	// boundary indices only look at one neighbour
	assert.Nil(t, f.SetPointX(0, -10))
	assert.Nil(t, f.SetPointX(2, 10))
	assert.Nil(t, f.SetPointY(1, -1))

	assert.Equal(t, []Point{{-10, 0}, {1.5, -1}, {10, 4}}, Collect(f))
}

func TestArrayFunctionClone(t *testing.T) {
	f, err := NewArrayFunctionFromPoints([]Point{{0, 0}, {1, 1}, {2, 4}})
	assert.Nil(t, err)

	c := f.Clone()
	assert.True(t, f.Equal(c))
	assert.Equal(t, KindArray, c.Kind())

	assert.Nil(t, c.SetPointY(0, 100))
	assert.False(t, f.Equal(c))

	y, _ := f.PointY(0)
	assert.EqualValues(t, 0, y)
}

func TestArrayFunctionString(t *testing.T) {
	f, err := NewArrayFunctionFromPoints([]Point{{0, 0}, {1, 1}})
	assert.Nil(t, err)
	assert.Equal(t, "{(0.00; 0.00), (1.00; 1.00)}", f.String())
}
