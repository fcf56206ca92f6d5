package stream

// Stream wraps one Iterator and offers chaining and terminal operations.
// A Stream is single-pass: once a terminal has run, it is spent.
type Stream[T any] struct {
	it Iterator[T]
}

// New wraps an existing iterator. A nil iterator yields an empty stream.
func New[T any](it Iterator[T]) Stream[T] {
	return Stream[T]{it: it}
}

// Iterator returns the wrapped iterator.
func (s Stream[T]) Iterator() Iterator[T] {
	if s.it == nil {
		return EmptyIterator[T]{}
	}
	return s.it
}

// Filter keeps the elements for which match returns true.
func (s Stream[T]) Filter(match func(T) bool) Stream[T] {
	return Stream[T]{it: &FilterIterator[T]{upstream: s.Iterator(), match: match}}
}

// Tap calls observe with every element as it is pulled and passes it on unchanged.
func (s Stream[T]) Tap(observe func(T)) Stream[T] {
	return Stream[T]{it: &TapIterator[T]{upstream: s.Iterator(), observe: observe}}
}

// Limit caps the stream at n elements. n <= 0 gives an exhausted stream.
func (s Stream[T]) Limit(n int) Stream[T] {
	return Stream[T]{it: &LimitIterator[T]{upstream: s.Iterator(), n: n}}
}

// Map transforms each element with fn.
func Map[T, U any](s Stream[T], fn func(T) U) Stream[U] {
	return Stream[U]{it: &MapIterator[T, U]{upstream: s.Iterator(), fn: fn}}
}

// FlatMap replaces each element with the stream fn derives from it. Every
// inner stream is drained before the next outer element is pulled.
func FlatMap[T, U any](s Stream[T], fn func(T) Stream[U]) Stream[U] {
	return Stream[U]{it: &FlatMapIterator[T, U]{outer: s.Iterator(), fn: fn}}
}
