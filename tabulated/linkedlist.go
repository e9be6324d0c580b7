package tabulated

import (
	"fmt"
	"iter"
	"math"
)

const (
	noNode   = -1
	sentinel = 0
)

type listNode struct {
	point Point
	prev  int
	next  int
}

type cursor struct {
	node  int
	index int
}

func (c *cursor) clear() {
	c.node = noNode
	c.index = -1
}

func (c *cursor) valid() bool {
	return c.node != noNode
}

// LinkedListFunction keeps its points in a circular doubly linked list. Nodes
// live in an arena addressed by slot index; slot 0 is the sentinel whose next
// is the first point and whose prev is the last. Released slots are recycled
// through a free list.
//
// Index access goes through a single-slot cursor caching the last position
// touched. Any insertion or deletion clears it.
type LinkedListFunction struct {
	nodes  []listNode
	free   []int
	count  int
	cursor cursor
}

func NewLinkedListFunction(left, right float64, count int) (*LinkedListFunction, error) {
	points, err := gridPoints(left, right, count)
	if err != nil {
		return nil, err
	}

	return newLinkedListFunction(points), nil
}

func NewLinkedListFunctionWithValues(left, right float64, values []float64) (*LinkedListFunction, error) {
	points, err := valuesPoints(left, right, values)
	if err != nil {
		return nil, err
	}

	return newLinkedListFunction(points), nil
}

func NewLinkedListFunctionFromPoints(points []Point) (*LinkedListFunction, error) {
	if err := CheckPoints(points); err != nil {
		return nil, err
	}

	return newLinkedListFunction(points), nil
}

func newLinkedListFunction(points []Point) *LinkedListFunction {
	f := &LinkedListFunction{
		nodes: make([]listNode, 1, len(points)+1),
	}

	f.nodes[sentinel] = listNode{prev: sentinel, next: sentinel}
	f.cursor.clear()

	for _, p := range points {
		f.linkBefore(sentinel, f.alloc(p))
	}

	return f
}

func (f *LinkedListFunction) alloc(p Point) int {
	if n := len(f.free); n > 0 {
		slot := f.free[n-1]
		f.free = f.free[:n-1]
		f.nodes[slot] = listNode{point: p, prev: noNode, next: noNode}

		return slot
	}

	f.nodes = append(f.nodes, listNode{point: p, prev: noNode, next: noNode})

	return len(f.nodes) - 1
}

func (f *LinkedListFunction) release(slot int) {
	f.nodes[slot] = listNode{prev: noNode, next: noNode}
	f.free = append(f.free, slot)
}

// linkBefore links the detached node slot in front of at.
func (f *LinkedListFunction) linkBefore(at, slot int) {
	prev := f.nodes[at].prev

	f.nodes[slot].prev = prev
	f.nodes[slot].next = at
	f.nodes[prev].next = slot
	f.nodes[at].prev = slot

	f.count++
	f.cursor.clear()
}

func (f *LinkedListFunction) unlink(slot int) {
	prev, next := f.nodes[slot].prev, f.nodes[slot].next

	f.nodes[prev].next = next
	f.nodes[next].prev = prev

	f.count--
	f.cursor.clear()
	f.release(slot)
}

func (f *LinkedListFunction) first() int {
	return f.nodes[sentinel].next
}

func (f *LinkedListFunction) last() int {
	return f.nodes[sentinel].prev
}

func (f *LinkedListFunction) walk(from, fromIndex, index int) int {
	for ; fromIndex < index; fromIndex++ {
		from = f.nodes[from].next
	}

	for ; fromIndex > index; fromIndex-- {
		from = f.nodes[from].prev
	}

	return from
}

func (f *LinkedListFunction) remember(node, index int) int {
	f.cursor.node = node
	f.cursor.index = index

	return node
}

// nodeAt resolves index to a slot. A neighbour of the cursor is one step
// away and the edges are direct; everything else walks from whichever of
// the first node, the last node or the cursor is nearest.
func (f *LinkedListFunction) nodeAt(index int) (int, error) {
	if index < 0 || index >= f.count {
		return noNode, indexError(index, f.count)
	}

	if f.cursor.valid() {
		switch index - f.cursor.index {
		case 0:
			return f.cursor.node, nil
		case 1:
			return f.remember(f.nodes[f.cursor.node].next, index), nil
		case -1:
			return f.remember(f.nodes[f.cursor.node].prev, index), nil
		}
	}

	if index == 0 {
		return f.remember(f.first(), 0), nil
	}

	if index == f.count-1 {
		return f.remember(f.last(), index), nil
	}

	from, fromIndex := f.first(), 0

	if f.count-1-index < index {
		from, fromIndex = f.last(), f.count-1
	}

	if f.cursor.valid() && abs(index-f.cursor.index) < abs(index-fromIndex) {
		from, fromIndex = f.cursor.node, f.cursor.index
	}

	return f.remember(f.walk(from, fromIndex, index), index), nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func (f *LinkedListFunction) Kind() Kind {
	return KindLinkedList
}

func (f *LinkedListFunction) LeftDomainBorder() float64 {
	return f.nodes[f.first()].point.X
}

func (f *LinkedListFunction) RightDomainBorder() float64 {
	return f.nodes[f.last()].point.X
}

func (f *LinkedListFunction) Evaluate(x float64) float64 {
	left, right := f.LeftDomainBorder(), f.RightDomainBorder()

	if !(x >= left && x <= right) {
		return math.NaN()
	}

	if sameX(x, left) {
		return f.nodes[f.first()].point.Y
	}

	if sameX(x, right) {
		return f.nodes[f.last()].point.Y
	}

	node := f.first()
	for node != sentinel && f.nodes[node].point.X < x {
		if sameX(f.nodes[node].point.X, x) {
			return f.nodes[node].point.Y
		}

		node = f.nodes[node].next
	}

	if sameX(f.nodes[node].point.X, x) {
		return f.nodes[node].point.Y
	}

	return interpolate(f.nodes[f.nodes[node].prev].point, f.nodes[node].point, x)
}

func (f *LinkedListFunction) PointsCount() int {
	return f.count
}

func (f *LinkedListFunction) Point(index int) (Point, error) {
	node, err := f.nodeAt(index)
	if err != nil {
		return Point{}, err
	}

	return f.nodes[node].point, nil
}

func (f *LinkedListFunction) PointX(index int) (float64, error) {
	node, err := f.nodeAt(index)
	if err != nil {
		return 0, err
	}

	return f.nodes[node].point.X, nil
}

func (f *LinkedListFunction) PointY(index int) (float64, error) {
	node, err := f.nodeAt(index)
	if err != nil {
		return 0, err
	}

	return f.nodes[node].point.Y, nil
}

func (f *LinkedListFunction) neighbours(node, index int) (prev, next *Point) {
	if index > 0 {
		prev = &f.nodes[f.nodes[node].prev].point
	}

	if index < f.count-1 {
		next = &f.nodes[f.nodes[node].next].point
	}

	return
}

func (f *LinkedListFunction) SetPoint(index int, p Point) error {
	node, err := f.nodeAt(index)
	if err != nil {
		return err
	}

	prev, next := f.neighbours(node, index)
	if err = checkNeighbours(index, p.X, prev, next); err != nil {
		return err
	}

	f.nodes[node].point = p

	return nil
}

func (f *LinkedListFunction) SetPointX(index int, x float64) error {
	node, err := f.nodeAt(index)
	if err != nil {
		return err
	}

	prev, next := f.neighbours(node, index)
	if err = checkNeighbours(index, x, prev, next); err != nil {
		return err
	}

	f.nodes[node].point.X = x

	return nil
}

func (f *LinkedListFunction) SetPointY(index int, y float64) error {
	node, err := f.nodeAt(index)
	if err != nil {
		return err
	}

	f.nodes[node].point.Y = y

	return nil
}

// AddPoint links p at the right place. Points clearly outside the domain are
// linked at the edge directly; anything else is found by scanning from the
// first node.
func (f *LinkedListFunction) AddPoint(p Point) error {
	if !isFinite(p.X) {
		return fmt.Errorf("%w: x %v is not finite", ErrValidation, p.X)
	}

	if ordered(p.X, f.LeftDomainBorder()) {
		f.linkBefore(f.first(), f.alloc(p))

		return nil
	}

	if ordered(f.RightDomainBorder(), p.X) {
		f.linkBefore(sentinel, f.alloc(p))

		return nil
	}

	node := f.first()
	for index := 0; node != sentinel; index++ {
		if sameX(f.nodes[node].point.X, p.X) {
			return fmt.Errorf("%w: x %v duplicates point %d", ErrOrderViolation, p.X, index)
		}

		if f.nodes[node].point.X > p.X {
			break
		}

		node = f.nodes[node].next
	}

	f.linkBefore(node, f.alloc(p))

	return nil
}

func (f *LinkedListFunction) DeletePoint(index int) error {
	if f.count <= minPointsCount {
		return fmt.Errorf("%w: cannot delete from %d points", ErrState, f.count)
	}

	node, err := f.nodeAt(index)
	if err != nil {
		return err
	}

	f.unlink(node)

	return nil
}

// PointsRange copies count consecutive points starting at start.
func (f *LinkedListFunction) PointsRange(start, count int) ([]Point, error) {
	if start < 0 || count < 0 || start+count > f.count {
		return nil, fmt.Errorf("%w: range [%d, %d) not in [0, %d)", ErrIndexOutOfRange, start, start+count, f.count)
	}

	points := make([]Point, 0, count)
	if count == 0 {
		return points, nil
	}

	node, err := f.nodeAt(start)
	if err != nil {
		return nil, err
	}

	for i := 0; i < count; i++ {
		points = append(points, f.nodes[node].point)
		node = f.nodes[node].next
	}

	return points, nil
}

func (f *LinkedListFunction) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for node := f.first(); node != sentinel; node = f.nodes[node].next {
			if !yield(f.nodes[node].point) {
				return
			}
		}
	}
}

func (f *LinkedListFunction) Equal(other TabulatedFunction) bool {
	if o, ok := other.(*LinkedListFunction); ok {
		if o == nil {
			return false
		}

		if f == o {
			return true
		}

		if f.count != o.count {
			return false
		}

		a, b := f.first(), o.first()
		for a != sentinel && b != sentinel {
			if !f.nodes[a].point.Equal(o.nodes[b].point) {
				return false
			}

			a, b = f.nodes[a].next, o.nodes[b].next
		}

		return a == sentinel && b == sentinel
	}

	return Equal(f, other)
}

func (f *LinkedListFunction) Hash() uint64 {
	return Hash(f)
}

// Clone copies the points into a fresh, compacted arena.
func (f *LinkedListFunction) Clone() TabulatedFunction {
	return newLinkedListFunction(Collect(f))
}

func (f *LinkedListFunction) String() string {
	return format(f)
}
