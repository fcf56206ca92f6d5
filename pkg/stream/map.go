package stream

// MapIterator applies fn to every upstream element.
type MapIterator[T, U any] struct {
	upstream Iterator[T]
	fn       func(T) U
}

func (it *MapIterator[T, U]) HasNext() bool {
	return it.upstream.HasNext()
}

func (it *MapIterator[T, U]) EstimateRemaining() int {
	return it.upstream.EstimateRemaining()
}

func (it *MapIterator[T, U]) Next() U {
	return it.fn(it.upstream.Next())
}

func (it *MapIterator[T, U]) Clone() (Iterator[U], bool) {
	up, ok := Clone(it.upstream)
	if !ok {
		return nil, false
	}
	return &MapIterator[T, U]{upstream: up, fn: it.fn}, true
}
