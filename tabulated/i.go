package tabulated

import "iter"

// Function is the collaborator contract shared with elementary functions,
// combinators and the integrator. Evaluate returns NaN outside the domain.
type Function interface {
	LeftDomainBorder() float64
	RightDomainBorder() float64
	Evaluate(x float64) float64
}

// TabulatedFunction is a finite sample set with strictly increasing x values
// and at least two points. Every mutation either commits fully or returns an
// error and leaves the function untouched.
//
// Implementations are not safe for concurrent use. The linked list backend
// updates its access cursor on reads, so even concurrent readers need
// external synchronization.
type TabulatedFunction interface {
	Function

	Kind() Kind

	PointsCount() int
	Point(index int) (Point, error)
	PointX(index int) (float64, error)
	PointY(index int) (float64, error)

	SetPoint(index int, p Point) error
	SetPointX(index int, x float64) error
	SetPointY(index int, y float64) error

	AddPoint(p Point) error
	DeletePoint(index int) error

	// Points yields copies of the points in order. Each iteration starts
	// from the state current at that moment; mutating the function while
	// iterating is not supported.
	Points() iter.Seq[Point]

	Equal(other TabulatedFunction) bool
	Hash() uint64
	Clone() TabulatedFunction
	String() string
}

// Factory creates tabulated functions of a single backend kind.
type Factory interface {
	FromBoundsAndCount(left, right float64, count int) (TabulatedFunction, error)
	FromBoundsAndValues(left, right float64, values []float64) (TabulatedFunction, error)
	FromPoints(points []Point) (TabulatedFunction, error)
}

// Validator is implemented by factories that can be incomplete, such as
// FactoryFuncs with a missing strategy.
type Validator interface {
	Validate() error
}
