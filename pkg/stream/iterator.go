package stream

// Iterator is the pull protocol every source and adapter implements.
type Iterator[T any] interface {
	// HasNext reports whether Next may be called. It does not consume
	// anything from the caller's point of view.
	HasNext() bool
	// Next returns the current element and advances. It is valid only right
	// after HasNext returned true.
	Next() T
	// EstimateRemaining is a best-effort count of the elements left. It is
	// exact for index-backed sources and only an approximation once Filter or
	// FlatMap is in the chain.
	EstimateRemaining() int
}
