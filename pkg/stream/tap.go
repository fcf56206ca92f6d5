package stream

// TapIterator hands every upstream element to observe before returning it.
type TapIterator[T any] struct {
	upstream Iterator[T]
	observe  func(T)
}

func (it *TapIterator[T]) HasNext() bool {
	return it.upstream.HasNext()
}

func (it *TapIterator[T]) EstimateRemaining() int {
	return it.upstream.EstimateRemaining()
}

func (it *TapIterator[T]) Next() T {
	x := it.upstream.Next()
	it.observe(x)
	return x
}

func (it *TapIterator[T]) Clone() (Iterator[T], bool) {
	up, ok := Clone(it.upstream)
	if !ok {
		return nil, false
	}
	return &TapIterator[T]{upstream: up, observe: it.observe}, true
}
