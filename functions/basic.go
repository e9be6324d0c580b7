package functions

import (
	"math"

	"github.com/sgostarter/libtabulated/tabulated"
)

// whole is embedded by functions defined on the entire real line.
type whole struct{}

func (whole) LeftDomainBorder() float64 {
	return math.Inf(-1)
}

func (whole) RightDomainBorder() float64 {
	return math.Inf(1)
}

type expImpl struct {
	whole
}

func Exp() tabulated.Function {
	return expImpl{}
}

func (expImpl) Evaluate(x float64) float64 {
	return math.Exp(x)
}

type logImpl struct {
	base float64
}

// Log is the logarithm to base, defined on [0, +Inf). A base that is not
// positive or equals 1 makes it undefined everywhere.
func Log(base float64) tabulated.Function {
	return logImpl{base: base}
}

func (impl logImpl) LeftDomainBorder() float64 {
	return 0
}

func (impl logImpl) RightDomainBorder() float64 {
	return math.Inf(1)
}

func (impl logImpl) Evaluate(x float64) float64 {
	if x < 0 || impl.base <= 0 || impl.base == 1 || math.IsNaN(impl.base) {
		return math.NaN()
	}

	return math.Log(x) / math.Log(impl.base)
}

type sinImpl struct {
	whole
}

func Sin() tabulated.Function {
	return sinImpl{}
}

func (sinImpl) Evaluate(x float64) float64 {
	return math.Sin(x)
}

type cosImpl struct {
	whole
}

func Cos() tabulated.Function {
	return cosImpl{}
}

func (cosImpl) Evaluate(x float64) float64 {
	return math.Cos(x)
}

type tanImpl struct {
	whole
}

// Tan is undefined within tabulated.Epsilon of pi/2 + k*pi.
func Tan() tabulated.Function {
	return tanImpl{}
}

func (tanImpl) Evaluate(x float64) float64 {
	if math.Abs(math.Abs(math.Mod(x, math.Pi))-math.Pi/2) < tabulated.Epsilon {
		return math.NaN()
	}

	return math.Tan(x)
}
