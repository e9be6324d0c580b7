package tabulated

import (
	"fmt"
	"slices"
	"sync"

	"github.com/sgostarter/i/commerr"
)

// Registry maps backend kinds to factories and holds the default factory
// used by unqualified creation calls.
type Registry struct {
	lock           sync.RWMutex
	factories      map[Kind]Factory
	defaultFactory Factory
}

// NewRegistry returns a registry holding the array and linked list backends,
// with the array factory as default.
func NewRegistry() *Registry {
	return &Registry{
		factories: map[Kind]Factory{
			KindArray:      ArrayFactory{},
			KindLinkedList: LinkedListFactory{},
		},
		defaultFactory: ArrayFactory{},
	}
}

func (r *Registry) Register(kind Kind, factory Factory) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	if err := ValidateFactory(factory); err != nil {
		return err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	r.factories[kind] = factory

	return nil
}

func (r *Registry) Factory(kind Kind) (Factory, error) {
	r.lock.RLock()
	factory, ok := r.factories[kind]
	r.lock.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: backend %q: %w", ErrConfiguration, string(kind), commerr.ErrNotFound)
	}

	if err := ValidateFactory(factory); err != nil {
		return nil, fmt.Errorf("backend %q: %w", string(kind), err)
	}

	return factory, nil
}

func (r *Registry) Kinds() []Kind {
	r.lock.RLock()
	defer r.lock.RUnlock()

	kinds := make([]Kind, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}

	slices.Sort(kinds)

	return kinds
}

// SetDefaultFactory replaces the default factory. Functions created earlier
// are not affected.
func (r *Registry) SetDefaultFactory(factory Factory) error {
	if err := ValidateFactory(factory); err != nil {
		return err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	r.defaultFactory = factory

	return nil
}

func (r *Registry) DefaultFactory() Factory {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return r.defaultFactory
}

func (r *Registry) Create(left, right float64, count int) (TabulatedFunction, error) {
	return createFromBounds(r.DefaultFactory(), left, right, count)
}

func (r *Registry) CreateWithValues(left, right float64, values []float64) (TabulatedFunction, error) {
	return createFromValues(r.DefaultFactory(), left, right, values)
}

func (r *Registry) CreateFromPoints(points []Point) (TabulatedFunction, error) {
	return createFromPoints(r.DefaultFactory(), points)
}

func (r *Registry) CreateKind(kind Kind, left, right float64, count int) (TabulatedFunction, error) {
	factory, err := r.Factory(kind)
	if err != nil {
		return nil, err
	}

	return createFromBounds(factory, left, right, count)
}

func (r *Registry) CreateKindWithValues(kind Kind, left, right float64, values []float64) (TabulatedFunction, error) {
	factory, err := r.Factory(kind)
	if err != nil {
		return nil, err
	}

	return createFromValues(factory, left, right, values)
}

func (r *Registry) CreateKindFromPoints(kind Kind, points []Point) (TabulatedFunction, error) {
	factory, err := r.Factory(kind)
	if err != nil {
		return nil, err
	}

	return createFromPoints(factory, points)
}

func createFromBounds(factory Factory, left, right float64, count int) (TabulatedFunction, error) {
	if err := ValidateFactory(factory); err != nil {
		return nil, err
	}

	if err := checkBounds(left, right); err != nil {
		return nil, err
	}

	if err := checkCount(count); err != nil {
		return nil, err
	}

	return factory.FromBoundsAndCount(left, right, count)
}

func createFromValues(factory Factory, left, right float64, values []float64) (TabulatedFunction, error) {
	if err := ValidateFactory(factory); err != nil {
		return nil, err
	}

	if err := checkBounds(left, right); err != nil {
		return nil, err
	}

	if err := checkCount(len(values)); err != nil {
		return nil, err
	}

	return factory.FromBoundsAndValues(left, right, values)
}

func createFromPoints(factory Factory, points []Point) (TabulatedFunction, error) {
	if err := ValidateFactory(factory); err != nil {
		return nil, err
	}

	if err := CheckPoints(points); err != nil {
		return nil, err
	}

	return factory.FromPoints(points)
}

//
//
//

var std = NewRegistry()

// StdRegistry returns the process-wide registry behind the package-level
// helpers.
func StdRegistry() *Registry {
	return std
}

func Register(kind Kind, factory Factory) error {
	return std.Register(kind, factory)
}

func LookupFactory(kind Kind) (Factory, error) {
	return std.Factory(kind)
}

func Kinds() []Kind {
	return std.Kinds()
}

func SetDefaultFactory(factory Factory) error {
	return std.SetDefaultFactory(factory)
}

func DefaultFactory() Factory {
	return std.DefaultFactory()
}

func Create(left, right float64, count int) (TabulatedFunction, error) {
	return std.Create(left, right, count)
}

func CreateWithValues(left, right float64, values []float64) (TabulatedFunction, error) {
	return std.CreateWithValues(left, right, values)
}

func CreateFromPoints(points []Point) (TabulatedFunction, error) {
	return std.CreateFromPoints(points)
}

func CreateKind(kind Kind, left, right float64, count int) (TabulatedFunction, error) {
	return std.CreateKind(kind, left, right, count)
}

func CreateKindWithValues(kind Kind, left, right float64, values []float64) (TabulatedFunction, error) {
	return std.CreateKindWithValues(kind, left, right, values)
}

func CreateKindFromPoints(kind Kind, points []Point) (TabulatedFunction, error) {
	return std.CreateKindFromPoints(kind, points)
}
