package functions

import (
	"fmt"
	"math"

	"github.com/sgostarter/libtabulated/tabulated"
)

const integrateEpsilon = 1e-12

// Integrate applies the trapezoid rule to f over [left, right] with the given
// step; the last slice is shortened to end exactly at right.
func Integrate(f tabulated.Function, left, right, step float64) (float64, error) {
	if f == nil {
		return 0, fmt.Errorf("%w: nil function", tabulated.ErrValidation)
	}

	if math.IsInf(left, 0) || math.IsInf(right, 0) {
		return 0, fmt.Errorf("%w: bounds [%v, %v] are not finite", tabulated.ErrValidation, left, right)
	}

	if !(left < right) {
		return 0, fmt.Errorf("%w: left bound %v must be less than right bound %v", tabulated.ErrValidation, left, right)
	}

	if !(step > 0) || math.IsInf(step, 1) {
		return 0, fmt.Errorf("%w: step %v must be positive", tabulated.ErrValidation, step)
	}

	if left < f.LeftDomainBorder() {
		return 0, fmt.Errorf("%w: left bound %v is below the domain border %v",
			tabulated.ErrValidation, left, f.LeftDomainBorder())
	}

	if right > f.RightDomainBorder() {
		return 0, fmt.Errorf("%w: right bound %v is above the domain border %v",
			tabulated.ErrValidation, right, f.RightDomainBorder())
	}

	value := func(x float64) (float64, error) {
		v := f.Evaluate(x)
		if math.IsNaN(v) {
			return 0, fmt.Errorf("%w: function undefined at x=%v", tabulated.ErrValidation, x)
		}

		return v, nil
	}

	fx, err := value(left)
	if err != nil {
		return 0, err
	}

	if _, err = value(right); err != nil {
		return 0, err
	}

	var integral float64

	for x := left; x < right-integrateEpsilon; {
		next := math.Min(x+step, right)

		fNext, err := value(next)
		if err != nil {
			return 0, err
		}

		integral += (fx + fNext) * (next - x) / 2
		x, fx = next, fNext
	}

	return integral, nil
}
