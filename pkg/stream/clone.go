package stream

// Cloner is implemented by iterators that can be duplicated mid-traversal.
// The clone and the original advance independently from the same position.
// Clone reports false when some iterator in the chain cannot be duplicated,
// such as a channel or sequence source.
type Cloner[T any] interface {
	Clone() (Iterator[T], bool)
}

// Clone duplicates it when it implements Cloner.
func Clone[T any](it Iterator[T]) (Iterator[T], bool) {
	c, ok := it.(Cloner[T])
	if !ok {
		return nil, false
	}
	return c.Clone()
}

// Clone returns an independent copy of s positioned where s is. Buffered
// lookahead values are copied along with their presence flags.
func (s Stream[T]) Clone() (Stream[T], bool) {
	it, ok := Clone(s.Iterator())
	if !ok {
		return Stream[T]{}, false
	}
	return Stream[T]{it: it}, true
}
