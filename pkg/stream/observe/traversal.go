package observe

import (
	"time"

	"github.com/google/uuid"
)

// Traversal describes one run of an observed stream.
type Traversal struct {
	id        uuid.UUID
	name      string
	startedAt time.Time
	pulled    int
	exhausted bool
}

func newTraversal(name string) *Traversal {
	return &Traversal{
		id:        uuid.New(),
		name:      name,
		startedAt: time.Now().UTC(),
	}
}

func (t *Traversal) ID() uuid.UUID {
	return t.id
}

func (t *Traversal) Name() string {
	return t.name
}

// StartedAt is the time the stream was wrapped (UTC).
func (t *Traversal) StartedAt() time.Time {
	return t.startedAt
}

// Pulled is the number of elements pulled so far.
func (t *Traversal) Pulled() int {
	return t.pulled
}

// Exhausted reports whether the stream reported no next element.
func (t *Traversal) Exhausted() bool {
	return t.exhausted
}
