package tabulated

import (
	"fmt"
)

// Kind names a backend. It doubles as the type tag of the tagged text
// format, so it may only contain codec word characters and must not start
// like a number.
type Kind string

const (
	KindArray      Kind = "array"
	KindLinkedList Kind = "linkedlist"
)

func (k Kind) String() string {
	return string(k)
}

func IsWordChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}

	switch c {
	case '.', '-', '_', '$', '[', ']':
		return true
	}

	return false
}

func (k Kind) Validate() error {
	if k == "" {
		return fmt.Errorf("%w: empty backend kind", ErrConfiguration)
	}

	switch c := k[0]; {
	case c >= '0' && c <= '9', c == '-', c == '.':
		return fmt.Errorf("%w: backend kind %q starts like a number", ErrConfiguration, string(k))
	}

	for _, c := range k {
		if !IsWordChar(c) {
			return fmt.Errorf("%w: backend kind %q contains %q", ErrConfiguration, string(k), c)
		}
	}

	return nil
}

type ArrayFactory struct{}

func (ArrayFactory) FromBoundsAndCount(left, right float64, count int) (TabulatedFunction, error) {
	f, err := NewArrayFunction(left, right, count)
	if err != nil {
		return nil, err
	}

	return f, nil
}

func (ArrayFactory) FromBoundsAndValues(left, right float64, values []float64) (TabulatedFunction, error) {
	f, err := NewArrayFunctionWithValues(left, right, values)
	if err != nil {
		return nil, err
	}

	return f, nil
}

func (ArrayFactory) FromPoints(points []Point) (TabulatedFunction, error) {
	f, err := NewArrayFunctionFromPoints(points)
	if err != nil {
		return nil, err
	}

	return f, nil
}

type LinkedListFactory struct{}

func (LinkedListFactory) FromBoundsAndCount(left, right float64, count int) (TabulatedFunction, error) {
	f, err := NewLinkedListFunction(left, right, count)
	if err != nil {
		return nil, err
	}

	return f, nil
}

func (LinkedListFactory) FromBoundsAndValues(left, right float64, values []float64) (TabulatedFunction, error) {
	f, err := NewLinkedListFunctionWithValues(left, right, values)
	if err != nil {
		return nil, err
	}

	return f, nil
}

func (LinkedListFactory) FromPoints(points []Point) (TabulatedFunction, error) {
	f, err := NewLinkedListFunctionFromPoints(points)
	if err != nil {
		return nil, err
	}

	return f, nil
}

// FactoryFuncs assembles a Factory from plain functions, for backends that
// live outside this package. A nil field is a missing strategy.
type FactoryFuncs struct {
	BoundsAndCount  func(left, right float64, count int) (TabulatedFunction, error)
	BoundsAndValues func(left, right float64, values []float64) (TabulatedFunction, error)
	Points          func(points []Point) (TabulatedFunction, error)
}

func (ff FactoryFuncs) Validate() error {
	var missing []string

	if ff.BoundsAndCount == nil {
		missing = append(missing, "FromBoundsAndCount")
	}

	if ff.BoundsAndValues == nil {
		missing = append(missing, "FromBoundsAndValues")
	}

	if ff.Points == nil {
		missing = append(missing, "FromPoints")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: factory misses %v", ErrConfiguration, missing)
	}

	return nil
}

func (ff FactoryFuncs) FromBoundsAndCount(left, right float64, count int) (TabulatedFunction, error) {
	if ff.BoundsAndCount == nil {
		return nil, fmt.Errorf("%w: factory misses FromBoundsAndCount", ErrConfiguration)
	}

	return ff.BoundsAndCount(left, right, count)
}

func (ff FactoryFuncs) FromBoundsAndValues(left, right float64, values []float64) (TabulatedFunction, error) {
	if ff.BoundsAndValues == nil {
		return nil, fmt.Errorf("%w: factory misses FromBoundsAndValues", ErrConfiguration)
	}

	return ff.BoundsAndValues(left, right, values)
}

func (ff FactoryFuncs) FromPoints(points []Point) (TabulatedFunction, error) {
	if ff.Points == nil {
		return nil, fmt.Errorf("%w: factory misses FromPoints", ErrConfiguration)
	}

	return ff.Points(points)
}

func ValidateFactory(factory Factory) error {
	if factory == nil {
		return fmt.Errorf("%w: nil factory", ErrConfiguration)
	}

	if v, ok := factory.(Validator); ok {
		return v.Validate()
	}

	return nil
}
