package stream

import (
	"errors"
	"fmt"
)

// ErrEmptySequenceAccess is matched by every panic raised when Next is called
// on an iterator whose HasNext is false.
var ErrEmptySequenceAccess = errors.New("stream: empty sequence access")

// SequenceError is the panic value of Next on an exhausted iterator.
type SequenceError struct {
	// Source names the iterator kind that was over-pulled.
	Source string
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("%s: next called on exhausted %s", ErrEmptySequenceAccess, e.Source)
}

func (e *SequenceError) Unwrap() error {
	return ErrEmptySequenceAccess
}

func exhausted(source string) {
	panic(&SequenceError{Source: source})
}

// Catch runs fn and returns the EmptySequenceAccess it aborted with, if any.
// Any other panic is propagated unchanged.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok && errors.Is(e, ErrEmptySequenceAccess) {
			err = e
			return
		}
		panic(r)
	}()

	fn()
	return nil
}
