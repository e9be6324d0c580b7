package tabulated

import (
	"fmt"
	"iter"
	"math"
)

const spareCapacity = 10

// ArrayFunction keeps its points in a contiguous buffer with spare capacity;
// the buffer doubles when an insertion overflows it.
type ArrayFunction struct {
	points []Point
	count  int
}

func NewArrayFunction(left, right float64, count int) (*ArrayFunction, error) {
	points, err := gridPoints(left, right, count)
	if err != nil {
		return nil, err
	}

	return newArrayFunction(points), nil
}

func NewArrayFunctionWithValues(left, right float64, values []float64) (*ArrayFunction, error) {
	points, err := valuesPoints(left, right, values)
	if err != nil {
		return nil, err
	}

	return newArrayFunction(points), nil
}

func NewArrayFunctionFromPoints(points []Point) (*ArrayFunction, error) {
	if err := CheckPoints(points); err != nil {
		return nil, err
	}

	return newArrayFunction(points), nil
}

func newArrayFunction(points []Point) *ArrayFunction {
	buf := make([]Point, len(points)+spareCapacity)
	copy(buf, points)

	return &ArrayFunction{
		points: buf,
		count:  len(points),
	}
}

func (f *ArrayFunction) Kind() Kind {
	return KindArray
}

func (f *ArrayFunction) LeftDomainBorder() float64 {
	return f.points[0].X
}

func (f *ArrayFunction) RightDomainBorder() float64 {
	return f.points[f.count-1].X
}

func (f *ArrayFunction) Evaluate(x float64) float64 {
	// NaN fails both comparisons
	if !(x >= f.LeftDomainBorder() && x <= f.RightDomainBorder()) {
		return math.NaN()
	}

	for i := 0; i < f.count; i++ {
		if sameX(f.points[i].X, x) {
			return f.points[i].Y
		}
	}

	i := 0
	for i < f.count && f.points[i].X < x {
		i++
	}

	switch i {
	case 0:
		return f.points[0].Y
	case f.count:
		return f.points[f.count-1].Y
	}

	return interpolate(f.points[i-1], f.points[i], x)
}

func (f *ArrayFunction) PointsCount() int {
	return f.count
}

func (f *ArrayFunction) checkIndex(index int) error {
	if index < 0 || index >= f.count {
		return indexError(index, f.count)
	}

	return nil
}

func (f *ArrayFunction) Point(index int) (Point, error) {
	if err := f.checkIndex(index); err != nil {
		return Point{}, err
	}

	return f.points[index], nil
}

func (f *ArrayFunction) PointX(index int) (float64, error) {
	if err := f.checkIndex(index); err != nil {
		return 0, err
	}

	return f.points[index].X, nil
}

func (f *ArrayFunction) PointY(index int) (float64, error) {
	if err := f.checkIndex(index); err != nil {
		return 0, err
	}

	return f.points[index].Y, nil
}

func (f *ArrayFunction) neighbours(index int) (prev, next *Point) {
	if index > 0 {
		prev = &f.points[index-1]
	}

	if index < f.count-1 {
		next = &f.points[index+1]
	}

	return
}

func (f *ArrayFunction) SetPoint(index int, p Point) error {
	if err := f.checkIndex(index); err != nil {
		return err
	}

	prev, next := f.neighbours(index)
	if err := checkNeighbours(index, p.X, prev, next); err != nil {
		return err
	}

	f.points[index] = p

	return nil
}

func (f *ArrayFunction) SetPointX(index int, x float64) error {
	if err := f.checkIndex(index); err != nil {
		return err
	}

	prev, next := f.neighbours(index)
	if err := checkNeighbours(index, x, prev, next); err != nil {
		return err
	}

	f.points[index].X = x

	return nil
}

func (f *ArrayFunction) SetPointY(index int, y float64) error {
	if err := f.checkIndex(index); err != nil {
		return err
	}

	f.points[index].Y = y

	return nil
}

func (f *ArrayFunction) AddPoint(p Point) error {
	if !isFinite(p.X) {
		return fmt.Errorf("%w: x %v is not finite", ErrValidation, p.X)
	}

	for i := 0; i < f.count; i++ {
		if sameX(f.points[i].X, p.X) {
			return fmt.Errorf("%w: x %v duplicates point %d", ErrOrderViolation, p.X, i)
		}
	}

	i := 0
	for i < f.count && f.points[i].X < p.X {
		i++
	}

	if f.count == len(f.points) {
		buf := make([]Point, 2*len(f.points))
		copy(buf, f.points[:f.count])
		f.points = buf
	}

	copy(f.points[i+1:f.count+1], f.points[i:f.count])
	f.points[i] = p
	f.count++

	return nil
}

func (f *ArrayFunction) DeletePoint(index int) error {
	if f.count <= minPointsCount {
		return fmt.Errorf("%w: cannot delete from %d points", ErrState, f.count)
	}

	if err := f.checkIndex(index); err != nil {
		return err
	}

	copy(f.points[index:f.count-1], f.points[index+1:f.count])
	f.count--
	f.points[f.count] = Point{}

	return nil
}

func (f *ArrayFunction) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		points := f.points[:f.count]

		for _, p := range points {
			if !yield(p) {
				return
			}
		}
	}
}

func (f *ArrayFunction) Equal(other TabulatedFunction) bool {
	if o, ok := other.(*ArrayFunction); ok {
		if o == nil {
			return false
		}

		if f == o {
			return true
		}

		if f.count != o.count {
			return false
		}

		for i := 0; i < f.count; i++ {
			if !f.points[i].Equal(o.points[i]) {
				return false
			}
		}

		return true
	}

	return Equal(f, other)
}

func (f *ArrayFunction) Hash() uint64 {
	return Hash(f)
}

func (f *ArrayFunction) Clone() TabulatedFunction {
	buf := make([]Point, len(f.points))
	copy(buf, f.points[:f.count])

	return &ArrayFunction{
		points: buf,
		count:  f.count,
	}
}

func (f *ArrayFunction) String() string {
	return format(f)
}
