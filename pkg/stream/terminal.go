package stream

import "iter"

// Appender is an ordered container that accepts elements at its end.
type Appender[T any] interface {
	Append(T)
}

// Sink drains the stream and discards every element.
func (s Stream[T]) Sink() {
	it := s.Iterator()
	for it.HasNext() {
		it.Next()
	}
}

// ForEach calls fn with every element, in order.
func (s Stream[T]) ForEach(fn func(T)) {
	it := s.Iterator()
	for it.HasNext() {
		fn(it.Next())
	}
}

// Reduce folds the stream from the left. The element is passed before the
// accumulator: accu = fn(element, accu).
func Reduce[T, A any](s Stream[T], fn func(T, A) A, accu A) A {
	it := s.Iterator()
	for it.HasNext() {
		accu = fn(it.Next(), accu)
	}
	return accu
}

// AllMatch reports whether match holds for every element. It stops at the
// first element that fails and is true for an empty stream.
func (s Stream[T]) AllMatch(match func(T) bool) bool {
	it := s.Iterator()
	for it.HasNext() {
		if !match(it.Next()) {
			return false
		}
	}
	return true
}

// AnyMatch reports whether match holds for some element. It stops at the
// first element that passes and is false for an empty stream.
func (s Stream[T]) AnyMatch(match func(T) bool) bool {
	it := s.Iterator()
	for it.HasNext() {
		if match(it.Next()) {
			return true
		}
	}
	return false
}

// FirstMatch returns the first element for which match holds.
func (s Stream[T]) FirstMatch(match func(T) bool) (T, bool) {
	it := s.Iterator()
	for it.HasNext() {
		if x := it.Next(); match(x) {
			return x, true
		}
	}
	var zero T
	return zero, false
}

// Count drains the stream and returns the number of elements.
func (s Stream[T]) Count() int {
	it := s.Iterator()
	n := 0
	for it.HasNext() {
		it.Next()
		n++
	}
	return n
}

// CountIf drains the stream and returns the number of elements match accepts.
func (s Stream[T]) CountIf(match func(T) bool) int {
	it := s.Iterator()
	n := 0
	for it.HasNext() {
		if match(it.Next()) {
			n++
		}
	}
	return n
}

// EmplaceInto appends every element to *dst, in stream order.
func (s Stream[T]) EmplaceInto(dst *[]T) {
	it := s.Iterator()
	for it.HasNext() {
		*dst = append(*dst, it.Next())
	}
}

// AppendTo appends every element to c, in stream order.
func (s Stream[T]) AppendTo(c Appender[T]) {
	it := s.Iterator()
	for it.HasNext() {
		c.Append(it.Next())
	}
}

// Collect drains the stream into a new slice.
func (s Stream[T]) Collect() []T {
	out := make([]T, 0, max(s.Iterator().EstimateRemaining(), 0))
	s.EmplaceInto(&out)
	return out
}

// Seq exposes the remaining elements to a for-range loop. Breaking out of the
// loop stops pulling; the elements not yet pulled stay in the stream.
func (s Stream[T]) Seq() iter.Seq[T] {
	it := s.Iterator()
	return func(yield func(T) bool) {
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}
