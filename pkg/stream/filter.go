package stream

import "github.com/ib-77/lazystream/pkg/stream/cell"

// FilterIterator yields the upstream elements that match accepts.
//
// To answer HasNext it has to pull ahead until it finds a match, so the match
// is buffered in current until Next claims it. The buffer is filled on the
// first probe, not at construction, so chaining never pulls. Use Clone, not a
// struct copy, to duplicate it: a struct copy shares the upstream.
type FilterIterator[T any] struct {
	upstream Iterator[T]
	match    func(T) bool

	current cell.Cell[T]
	ready   bool
	primed  bool
}

func (it *FilterIterator[T]) refill() {
	it.primed = true
	it.ready = false

	for it.upstream.HasNext() {
		x := it.upstream.Next()
		if it.match(x) {
			it.current.Store(x)
			it.ready = true
			return
		}
	}

	if it.current.Constructed() {
		it.current.Destruct()
	}
}

func (it *FilterIterator[T]) HasNext() bool {
	if !it.primed {
		it.refill()
	}
	return it.ready
}

// EstimateRemaining passes the upstream estimate through. It is an
// approximation: it counts elements the predicate may still reject.
func (it *FilterIterator[T]) EstimateRemaining() int {
	return it.upstream.EstimateRemaining()
}

func (it *FilterIterator[T]) Next() T {
	if !it.HasNext() {
		exhausted("filter")
	}
	x := it.current.Get()
	it.refill()
	return x
}

// Clone duplicates the upstream and copies the buffered match, if any.
func (it *FilterIterator[T]) Clone() (Iterator[T], bool) {
	up, ok := Clone(it.upstream)
	if !ok {
		return nil, false
	}
	return &FilterIterator[T]{
		upstream: up,
		match:    it.match,
		current:  it.current,
		ready:    it.ready,
		primed:   it.primed,
	}, true
}
