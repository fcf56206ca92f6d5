package stream

// LimitIterator yields at most n upstream elements and never pulls more.
type LimitIterator[T any] struct {
	upstream Iterator[T]
	n        int
	consumed int
}

func (it *LimitIterator[T]) HasNext() bool {
	return it.consumed < it.n && it.upstream.HasNext()
}

func (it *LimitIterator[T]) EstimateRemaining() int {
	left := max(it.n-it.consumed, 0)
	return min(it.upstream.EstimateRemaining(), left)
}

func (it *LimitIterator[T]) Next() T {
	if it.consumed >= it.n {
		exhausted("limit")
	}
	it.consumed++
	return it.upstream.Next()
}

func (it *LimitIterator[T]) Clone() (Iterator[T], bool) {
	up, ok := Clone(it.upstream)
	if !ok {
		return nil, false
	}
	return &LimitIterator[T]{upstream: up, n: it.n, consumed: it.consumed}, true
}
