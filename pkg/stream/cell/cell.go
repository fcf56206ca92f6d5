package cell

import "errors"

var (
	// ErrOccupied is the panic value of Construct on a cell that already holds a value.
	ErrOccupied = errors.New("cell: construct on occupied cell")
	// ErrVacant is the panic value of Get, Ref, Set and Destruct on an empty cell.
	ErrVacant = errors.New("cell: access to vacant cell")
)

// Cell holds zero or one live value of T. The zero Cell is empty.
//
// A Cell is copied by value together with its owner, so a copy carries the
// same live value and the same presence flag.
type Cell[T any] struct {
	value T
	live  bool
}

// Of returns a cell that already holds v.
func Of[T any](v T) Cell[T] {
	return Cell[T]{value: v, live: true}
}

// Construct brings v into the empty cell.
func (c *Cell[T]) Construct(v T) {
	if c.live {
		panic(ErrOccupied)
	}
	c.value = v
	c.live = true
}

// Get returns a copy of the live value.
func (c *Cell[T]) Get() T {
	if !c.live {
		panic(ErrVacant)
	}
	return c.value
}

// Ref returns a pointer to the live value. The pointer is valid until the
// next Destruct.
func (c *Cell[T]) Ref() *T {
	if !c.live {
		panic(ErrVacant)
	}
	return &c.value
}

// Set assigns v over the live value.
func (c *Cell[T]) Set(v T) {
	if !c.live {
		panic(ErrVacant)
	}
	c.value = v
}

// Store constructs v on first use and assigns over the live value after that.
func (c *Cell[T]) Store(v T) {
	if c.live {
		c.value = v
		return
	}
	c.Construct(v)
}

// Destruct ends the life of the held value.
func (c *Cell[T]) Destruct() {
	if !c.live {
		panic(ErrVacant)
	}
	var zero T
	c.value = zero
	c.live = false
}

// Take returns the live value and leaves the cell empty.
func (c *Cell[T]) Take() T {
	v := c.Get()
	c.Destruct()
	return v
}

func (c *Cell[T]) Constructed() bool {
	return c.live
}
