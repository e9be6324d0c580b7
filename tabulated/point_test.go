package tabulated

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointEqual(t *testing.T) {
	p := NewPoint(1, 2)

	assert.True(t, p.Equal(Point{X: 1 + 1e-11, Y: 2 - 1e-11}))
	assert.False(t, p.Equal(Point{X: 1 + 1e-9, Y: 2}))
	assert.False(t, p.Equal(Point{X: 1, Y: 2.5}))
}

func TestPointHash(t *testing.T) {
	assert.EqualValues(t, NewPoint(1.5, -3).Hash(), NewPoint(1.5, -3).Hash())
	assert.EqualValues(t, NewPoint(1.5, -3).Hash(), NewPoint(1.5+1e-11, -3).Hash())
	assert.NotEqualValues(t, NewPoint(1.5, -3).Hash(), NewPoint(-3, 1.5).Hash())
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "(1.00; -2.50)", NewPoint(1, -2.5).String())
}

func TestOrdered(t *testing.T) {
	assert.True(t, ordered(0, 1))
	assert.False(t, ordered(1, 0))
	assert.False(t, ordered(1, 1+1e-11))
	assert.True(t, sameX(1, 1+1e-11))
}
