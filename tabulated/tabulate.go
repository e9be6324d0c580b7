package tabulated

import (
	"fmt"
	"math"
)

// Tabulate samples f at count evenly spaced points of [left, right] using
// the default factory.
func Tabulate(f Function, left, right float64, count int) (TabulatedFunction, error) {
	return tabulate(std.DefaultFactory(), f, left, right, count)
}

func TabulateKind(kind Kind, f Function, left, right float64, count int) (TabulatedFunction, error) {
	factory, err := std.Factory(kind)
	if err != nil {
		return nil, err
	}

	return tabulate(factory, f, left, right, count)
}

func (r *Registry) Tabulate(f Function, left, right float64, count int) (TabulatedFunction, error) {
	return tabulate(r.DefaultFactory(), f, left, right, count)
}

func tabulate(factory Factory, f Function, left, right float64, count int) (TabulatedFunction, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil function", ErrValidation)
	}

	if left < f.LeftDomainBorder() || right > f.RightDomainBorder() {
		return nil, fmt.Errorf("%w: [%v, %v] leaves the domain [%v, %v]", ErrValidation,
			left, right, f.LeftDomainBorder(), f.RightDomainBorder())
	}

	tf, err := createFromBounds(factory, left, right, count)
	if err != nil {
		return nil, err
	}

	for i := 0; i < count; i++ {
		x, err := tf.PointX(i)
		if err != nil {
			return nil, err
		}

		y := f.Evaluate(x)
		if math.IsNaN(y) {
			return nil, fmt.Errorf("%w: function undefined at x=%v", ErrValidation, x)
		}

		if err = tf.SetPointY(i, y); err != nil {
			return nil, err
		}
	}

	return tf, nil
}
