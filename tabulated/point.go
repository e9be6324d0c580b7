package tabulated

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Epsilon is the tolerance used for point equality, duplicate detection and
// exact-sample matching in evaluation.
const Epsilon = 1e-10

const hashScale = 1e8

// Point is a single (x, y) sample. It is a value type: every accessor of a
// tabulated function hands out copies.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Equal(o Point) bool {
	return math.Abs(p.X-o.X) < Epsilon && math.Abs(p.Y-o.Y) < Epsilon
}

// Hash is derived from both coordinates rounded to 1e-8, so points that are
// Equal hash alike unless they straddle a rounding boundary.
func (p Point) Hash() uint64 {
	var buf [16]byte

	binary.LittleEndian.PutUint64(buf[:8], uint64(int64(math.Round(p.X*hashScale))))
	binary.LittleEndian.PutUint64(buf[8:], uint64(int64(math.Round(p.Y*hashScale))))

	return xxhash.Sum64(buf[:])
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f; %.2f)", p.X, p.Y)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ordered reports whether b lies strictly after a, ties within Epsilon excluded.
func ordered(a, b float64) bool {
	return b-a >= Epsilon
}

func sameX(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func interpolate(left, right Point, x float64) float64 {
	return left.Y + (right.Y-left.Y)*(x-left.X)/(right.X-left.X)
}
