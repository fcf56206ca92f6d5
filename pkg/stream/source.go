package stream

import (
	"iter"

	"github.com/ib-77/lazystream/pkg/stream/cell"
)

// VectorIterator walks an index-backed sequence.
type VectorIterator[T any] struct {
	items []T
	pos   int
}

func (it *VectorIterator[T]) HasNext() bool {
	return it.pos < len(it.items)
}

func (it *VectorIterator[T]) EstimateRemaining() int {
	return len(it.items) - it.pos
}

func (it *VectorIterator[T]) Next() T {
	if it.pos >= len(it.items) {
		exhausted("vector")
	}
	v := it.items[it.pos]
	it.pos++
	return v
}

func (it *VectorIterator[T]) Clone() (Iterator[T], bool) {
	return &VectorIterator[T]{items: it.items, pos: it.pos}, true
}

// FromSlice creates a stream over the elements of s. The slice is read, never
// written, and must not be modified while the stream is traversed.
func FromSlice[T any](s []T) Stream[T] {
	return Stream[T]{it: &VectorIterator[T]{items: s}}
}

// FromRange creates a stream over s[begin:end]. Bounds are checked the way
// slicing checks them.
func FromRange[T any](s []T, begin, end int) Stream[T] {
	return FromSlice(s[begin:end:end])
}

// Of creates a stream over the given values. Use Of(arr[:]...) for arrays.
func Of[T any](values ...T) Stream[T] {
	return FromSlice(values)
}

// EmptyIterator never has a next element.
type EmptyIterator[T any] struct{}

func (EmptyIterator[T]) HasNext() bool {
	return false
}

func (EmptyIterator[T]) EstimateRemaining() int {
	return 0
}

func (EmptyIterator[T]) Next() T {
	exhausted("empty sequence")
	var zero T
	return zero
}

func (it EmptyIterator[T]) Clone() (Iterator[T], bool) {
	return it, true
}

// Empty creates a stream of T that yields nothing.
func Empty[T any]() Stream[T] {
	return Stream[T]{it: EmptyIterator[T]{}}
}

// ChanIterator receives from a channel until it is closed. HasNext blocks
// while the channel is open and empty.
type ChanIterator[T any] struct {
	ch     <-chan T
	next   cell.Cell[T]
	closed bool
}

func (it *ChanIterator[T]) HasNext() bool {
	if it.next.Constructed() {
		return true
	}
	if it.closed {
		return false
	}

	v, ok := <-it.ch
	if !ok {
		it.closed = true
		return false
	}
	it.next.Construct(v)
	return true
}

func (it *ChanIterator[T]) EstimateRemaining() int {
	n := len(it.ch)
	if it.next.Constructed() {
		n++
	}
	return n
}

func (it *ChanIterator[T]) Next() T {
	if !it.HasNext() {
		exhausted("channel")
	}
	return it.next.Take()
}

// FromChan creates a stream that pulls from ch until ch is closed.
func FromChan[T any](ch <-chan T) Stream[T] {
	return Stream[T]{it: &ChanIterator[T]{ch: ch}}
}

// SeqIterator pulls from a range-over-func sequence.
type SeqIterator[T any] struct {
	seq      iter.Seq[T]
	pull     func() (T, bool)
	stop     func()
	buffered cell.Cell[T]
	done     bool
}

func (it *SeqIterator[T]) HasNext() bool {
	if it.buffered.Constructed() {
		return true
	}
	if it.done {
		return false
	}
	if it.pull == nil {
		it.pull, it.stop = iter.Pull(it.seq)
	}

	v, ok := it.pull()
	if !ok {
		it.Stop()
		return false
	}
	it.buffered.Construct(v)
	return true
}

// EstimateRemaining is 1 while an element is buffered and 0 otherwise; a
// sequence does not know its length.
func (it *SeqIterator[T]) EstimateRemaining() int {
	if it.buffered.Constructed() {
		return 1
	}
	return 0
}

func (it *SeqIterator[T]) Next() T {
	if !it.HasNext() {
		exhausted("sequence")
	}
	return it.buffered.Take()
}

// Stop releases the underlying pull. It is safe to call more than once.
func (it *SeqIterator[T]) Stop() {
	it.done = true
	if it.stop != nil {
		it.stop()
	}
}

// FromSeq creates a stream over seq. The returned stop func must be called
// when the stream is abandoned before it is exhausted.
func FromSeq[T any](seq iter.Seq[T]) (Stream[T], func()) {
	it := &SeqIterator[T]{seq: seq}
	return Stream[T]{it: it}, it.Stop
}
