// Package stream is a lazily-evaluated, pull-based sequence engine.
//
// A Stream[T] wraps exactly one Iterator[T]. Chaining calls compose new
// adapters around that iterator and perform no iteration; only terminal
// operations pull elements, and each stream is traversed at most once.
//
// Sources:
// - FromSlice/FromRange/Of: finite, index-backed streams
// - Empty: a stream that never yields
// - FromChan/FromSeq: pull from a channel or a range-over-func sequence
//
// Adapters:
// - Map/FlatMap: type-changing transforms (free functions)
// - Filter/Tap/Limit: methods returning a stream of the same element type
//
// Terminals:
// - Sink/ForEach/Reduce: drain the stream
// - AllMatch/AnyMatch/FirstMatch: short-circuit on the deciding element
// - Count/CountIf/Collect/EmplaceInto/AppendTo/Seq
//
// Clone duplicates a stream mid-traversal when every iterator in its chain
// implements Cloner; channel and sequence sources do not.
//
// Calling Next on an exhausted iterator panics with a *SequenceError that
// matches ErrEmptySequenceAccess. Use Catch at a boundary to turn it into an
// error.
package stream
