// Package cell provides Cell[T], a single-slot holder for zero or one value
// of an arbitrary type with an explicit construct/destruct lifecycle.
//
// Lookahead adapters use it to buffer the next element without ever treating
// the zero value of T as a real element.
//
// Key operations:
// - Construct: bring a value into an empty cell
// - Get/Ref: read the live value (by copy or by pointer)
// - Set/Store: assign over a live value, or construct-or-assign
// - Destruct: release the live value and return the cell to empty
package cell
