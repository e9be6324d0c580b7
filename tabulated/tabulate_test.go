package tabulated

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type parabola struct{}

func (parabola) LeftDomainBorder() float64  { return math.Inf(-1) }
func (parabola) RightDomainBorder() float64 { return math.Inf(1) }
func (parabola) Evaluate(x float64) float64 { return x * x }

type reciprocal struct{}

func (reciprocal) LeftDomainBorder() float64  { return math.Inf(-1) }
func (reciprocal) RightDomainBorder() float64 { return math.Inf(1) }

func (reciprocal) Evaluate(x float64) float64 {
	if x == 0 {
		return math.NaN()
	}

	return 1 / x
}

func TestTabulate(t *testing.T) {
	f, err := Tabulate(parabola{}, 0, 4, 5)
	assert.Nil(t, err)
	assert.Equal(t, KindArray, f.Kind())
	assert.Equal(t, []Point{{0, 0}, {1, 1}, {2, 4}, {3, 9}, {4, 16}}, Collect(f))

	l, err := TabulateKind(KindLinkedList, parabola{}, 0, 4, 5)
	assert.Nil(t, err)
	assert.Equal(t, KindLinkedList, l.Kind())
	assert.True(t, f.Equal(l))
}

func TestTabulateErrors(t *testing.T) {
	_, err := Tabulate(nil, 0, 1, 2)
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = Tabulate(reciprocal{}, -1, 1, 3)
	assert.True(t, errors.Is(err, ErrValidation))

	inner, err := Tabulate(parabola{}, 0, 1, 3)
	assert.Nil(t, err)

	_, err = Tabulate(inner, -1, 1, 3)
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = TabulateKind("nope", parabola{}, 0, 1, 3)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestRegistryTabulate(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.SetDefaultFactory(LinkedListFactory{}))

	f, err := r.Tabulate(parabola{}, -1, 1, 3)
	assert.Nil(t, err)
	assert.Equal(t, KindLinkedList, f.Kind())
	assert.Equal(t, []Point{{-1, 1}, {0, 0}, {1, 1}}, Collect(f))
}
