package stream

import "github.com/ib-77/lazystream/pkg/stream/cell"

// FlatMapIterator yields the elements of the inner stream fn derives from
// each outer element, draining one inner stream before pulling the next
// outer element. Outer elements whose inner stream is empty are skipped
// while probing, so HasNext stays truthful. Like FilterIterator it is
// duplicated with Clone.
type FlatMapIterator[T, U any] struct {
	outer Iterator[T]
	fn    func(T) Stream[U]

	inner  cell.Cell[Iterator[U]]
	ready  bool
	primed bool
}

func (it *FlatMapIterator[T, U]) refill() {
	it.primed = true
	it.ready = false

	if it.inner.Constructed() && it.inner.Get().HasNext() {
		it.ready = true
		return
	}

	for it.outer.HasNext() {
		it.inner.Store(it.fn(it.outer.Next()).Iterator())
		if it.inner.Get().HasNext() {
			it.ready = true
			return
		}
	}

	if it.inner.Constructed() {
		it.inner.Destruct()
	}
}

func (it *FlatMapIterator[T, U]) HasNext() bool {
	if !it.primed {
		it.refill()
	}
	return it.ready
}

// EstimateRemaining reports the outer estimate only. Fan-out is unknown until
// an inner stream is derived, so the value is approximate.
func (it *FlatMapIterator[T, U]) EstimateRemaining() int {
	return it.outer.EstimateRemaining()
}

func (it *FlatMapIterator[T, U]) Next() U {
	if !it.HasNext() {
		exhausted("flat map")
	}
	x := it.inner.Get().Next()
	it.refill()
	return x
}

// Clone duplicates the outer iterator and the inner iterator in progress.
func (it *FlatMapIterator[T, U]) Clone() (Iterator[U], bool) {
	outer, ok := Clone(it.outer)
	if !ok {
		return nil, false
	}
	cp := &FlatMapIterator[T, U]{outer: outer, fn: it.fn, ready: it.ready, primed: it.primed}
	if it.inner.Constructed() {
		inner, ok := Clone(it.inner.Get())
		if !ok {
			return nil, false
		}
		cp.inner.Construct(inner)
	}
	return cp, true
}
