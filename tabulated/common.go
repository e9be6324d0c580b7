package tabulated

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

const minPointsCount = 2

func checkBounds(left, right float64) error {
	if !isFinite(left) || !isFinite(right) {
		return fmt.Errorf("%w: bounds [%v, %v] are not finite", ErrValidation, left, right)
	}

	if !(left < right) {
		return fmt.Errorf("%w: left bound %v must be less than right bound %v", ErrValidation, left, right)
	}

	return nil
}

func checkCount(count int) error {
	if count < minPointsCount {
		return fmt.Errorf("%w: points count %d is less than %d", ErrValidation, count, minPointsCount)
	}

	return nil
}

// gridPoints lays count points evenly over [left, right] with y = 0.
func gridPoints(left, right float64, count int) ([]Point, error) {
	if err := checkBounds(left, right); err != nil {
		return nil, err
	}

	if err := checkCount(count); err != nil {
		return nil, err
	}

	step := (right - left) / float64(count-1)
	if step < Epsilon {
		return nil, fmt.Errorf("%w: [%v, %v] too narrow for %d points", ErrValidation, left, right, count)
	}

	points := make([]Point, count)
	for i := range points {
		points[i].X = left + float64(i)*step
	}

	points[count-1].X = right

	return points, nil
}

func valuesPoints(left, right float64, values []float64) ([]Point, error) {
	points, err := gridPoints(left, right, len(values))
	if err != nil {
		return nil, err
	}

	for i, v := range values {
		points[i].Y = v
	}

	return points, nil
}

// CheckPoints validates an explicit point set: at least two points, finite x
// values, strictly increasing x.
func CheckPoints(points []Point) error {
	if err := checkCount(len(points)); err != nil {
		return err
	}

	for i, p := range points {
		if !isFinite(p.X) {
			return fmt.Errorf("%w: x of point %d is %v", ErrValidation, i, p.X)
		}

		if i > 0 && !ordered(points[i-1].X, p.X) {
			return fmt.Errorf("%w: x of point %d (%v) does not follow %v", ErrOrderViolation, i, p.X, points[i-1].X)
		}
	}

	return nil
}

// checkNeighbours validates a new x for index against the existing
// neighbours. prev/next are nil at the domain edges.
func checkNeighbours(index int, x float64, prev, next *Point) error {
	if !isFinite(x) {
		return fmt.Errorf("%w: x %v is not finite", ErrValidation, x)
	}

	if prev != nil && !ordered(prev.X, x) {
		return fmt.Errorf("%w: x %v at index %d must exceed %v", ErrOrderViolation, x, index, prev.X)
	}

	if next != nil && !ordered(x, next.X) {
		return fmt.Errorf("%w: x %v at index %d must stay below %v", ErrOrderViolation, x, index, next.X)
	}

	return nil
}

func isNil(f TabulatedFunction) bool {
	switch v := f.(type) {
	case nil:
		return true
	case *ArrayFunction:
		return v == nil
	case *LinkedListFunction:
		return v == nil
	}

	return false
}

// Equal compares two tabulated functions point by point regardless of backend.
// A nil function, typed or not, only equals another nil one. Functions from
// other packages must not be typed nils.
func Equal(a, b TabulatedFunction) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}

	if a.PointsCount() != b.PointsCount() {
		return false
	}

	next, stop := iter.Pull(b.Points())
	defer stop()

	for p := range a.Points() {
		o, ok := next()
		if !ok || !p.Equal(o) {
			return false
		}
	}

	return true
}

// Hash combines the count with every point hash. XOR keeps it independent of
// the backend and of traversal order.
func Hash(f TabulatedFunction) uint64 {
	h := uint64(f.PointsCount())

	for p := range f.Points() {
		h ^= p.Hash()
	}

	return h
}

func Collect(f TabulatedFunction) []Point {
	return slices.Collect(f.Points())
}

func format(f TabulatedFunction) string {
	var sb strings.Builder

	sb.WriteString("{")

	first := true

	for p := range f.Points() {
		if !first {
			sb.WriteString(", ")
		}

		first = false

		sb.WriteString(p.String())
	}

	sb.WriteString("}")

	return sb.String()
}
