package functions

import (
	"math"

	"github.com/sgostarter/libtabulated/tabulated"
)

type domain interface {
	LeftDomainBorder() float64
	RightDomainBorder() float64
}

func outside(d domain, x float64) bool {
	return x < d.LeftDomainBorder() || x > d.RightDomainBorder()
}

type shiftImpl struct {
	f              tabulated.Function
	shiftX, shiftY float64
}

// Shift returns x -> f(x + shiftX) + shiftY.
func Shift(f tabulated.Function, shiftX, shiftY float64) tabulated.Function {
	return &shiftImpl{f: f, shiftX: shiftX, shiftY: shiftY}
}

func (impl *shiftImpl) LeftDomainBorder() float64 {
	return impl.f.LeftDomainBorder() - impl.shiftX
}

func (impl *shiftImpl) RightDomainBorder() float64 {
	return impl.f.RightDomainBorder() - impl.shiftX
}

func (impl *shiftImpl) Evaluate(x float64) float64 {
	if outside(impl, x) {
		return math.NaN()
	}

	return impl.f.Evaluate(x+impl.shiftX) + impl.shiftY
}

type scaleImpl struct {
	f              tabulated.Function
	scaleX, scaleY float64
}

// Scale returns x -> f(x * scaleX) * scaleY. A zero scaleX spreads the domain
// over the whole real line.
func Scale(f tabulated.Function, scaleX, scaleY float64) tabulated.Function {
	return &scaleImpl{f: f, scaleX: scaleX, scaleY: scaleY}
}

func (impl *scaleImpl) LeftDomainBorder() float64 {
	switch {
	case impl.scaleX > 0:
		return impl.f.LeftDomainBorder() / impl.scaleX
	case impl.scaleX < 0:
		return impl.f.RightDomainBorder() / impl.scaleX
	}

	return math.Inf(-1)
}

func (impl *scaleImpl) RightDomainBorder() float64 {
	switch {
	case impl.scaleX > 0:
		return impl.f.RightDomainBorder() / impl.scaleX
	case impl.scaleX < 0:
		return impl.f.LeftDomainBorder() / impl.scaleX
	}

	return math.Inf(1)
}

func (impl *scaleImpl) Evaluate(x float64) float64 {
	if outside(impl, x) {
		return math.NaN()
	}

	return impl.f.Evaluate(x*impl.scaleX) * impl.scaleY
}

type powerImpl struct {
	f     tabulated.Function
	power float64
}

func Power(f tabulated.Function, power float64) tabulated.Function {
	return &powerImpl{f: f, power: power}
}

func (impl *powerImpl) LeftDomainBorder() float64 {
	return impl.f.LeftDomainBorder()
}

func (impl *powerImpl) RightDomainBorder() float64 {
	return impl.f.RightDomainBorder()
}

func (impl *powerImpl) Evaluate(x float64) float64 {
	if outside(impl, x) {
		return math.NaN()
	}

	return math.Pow(impl.f.Evaluate(x), impl.power)
}

// pair is the domain intersection shared by Sum and Mult.
type pair struct {
	f1, f2 tabulated.Function
}

func (p pair) LeftDomainBorder() float64 {
	return math.Max(p.f1.LeftDomainBorder(), p.f2.LeftDomainBorder())
}

func (p pair) RightDomainBorder() float64 {
	return math.Min(p.f1.RightDomainBorder(), p.f2.RightDomainBorder())
}

func (p pair) values(x float64) (float64, float64, bool) {
	if outside(p, x) {
		return 0, 0, false
	}

	v1, v2 := p.f1.Evaluate(x), p.f2.Evaluate(x)
	if math.IsNaN(v1) || math.IsNaN(v2) {
		return 0, 0, false
	}

	return v1, v2, true
}

type sumImpl struct {
	pair
}

func Sum(f1, f2 tabulated.Function) tabulated.Function {
	return sumImpl{pair{f1: f1, f2: f2}}
}

func (impl sumImpl) Evaluate(x float64) float64 {
	v1, v2, ok := impl.values(x)
	if !ok {
		return math.NaN()
	}

	return v1 + v2
}

type multImpl struct {
	pair
}

func Mult(f1, f2 tabulated.Function) tabulated.Function {
	return multImpl{pair{f1: f1, f2: f2}}
}

func (impl multImpl) Evaluate(x float64) float64 {
	v1, v2, ok := impl.values(x)
	if !ok {
		return math.NaN()
	}

	return v1 * v2
}

type compositionImpl struct {
	outer, inner tabulated.Function
}

// Composition returns x -> outer(inner(x)) over the domain of inner; values of
// inner outside the domain of outer are undefined.
func Composition(outer, inner tabulated.Function) tabulated.Function {
	return &compositionImpl{outer: outer, inner: inner}
}

func (impl *compositionImpl) LeftDomainBorder() float64 {
	return impl.inner.LeftDomainBorder()
}

func (impl *compositionImpl) RightDomainBorder() float64 {
	return impl.inner.RightDomainBorder()
}

func (impl *compositionImpl) Evaluate(x float64) float64 {
	if outside(impl, x) {
		return math.NaN()
	}

	v := impl.inner.Evaluate(x)
	if math.IsNaN(v) || outside(impl.outer, v) {
		return math.NaN()
	}

	return impl.outer.Evaluate(v)
}

// Opposite returns -f.
func Opposite(f tabulated.Function) tabulated.Function {
	return Scale(f, 1, -1)
}

// Inverse mirrors f around the y axis: x -> f(-x).
func Inverse(f tabulated.Function) tabulated.Function {
	return Scale(f, -1, 1)
}
