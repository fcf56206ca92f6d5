package observe

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/ib-77/lazystream/pkg/stream"
)

type loggedIterator[T any] struct {
	upstream  stream.Iterator[T]
	log       zerolog.Logger
	traversal *Traversal
}

// Logged wraps s so that every pulled element is logged at debug level and
// exhaustion is logged once at info level. The returned Traversal tracks the
// run and carries the id found in the traversal field of every line.
func Logged[T any](s stream.Stream[T], log zerolog.Logger, name string) (stream.Stream[T], *Traversal) {
	tr := newTraversal(name)
	it := &loggedIterator[T]{
		upstream: s.Iterator(),
		log: log.With().
			Str(FieldPipeline, name).
			Str(FieldTraversal, tr.id.String()).
			Logger(),
		traversal: tr,
	}
	return stream.New[T](it), tr
}

func (it *loggedIterator[T]) HasNext() bool {
	ok := it.upstream.HasNext()
	if !ok && !it.traversal.exhausted {
		it.traversal.exhausted = true
		it.log.Info().
			Int(FieldElements, it.traversal.pulled).
			Dur(FieldElapsed, time.Since(it.traversal.startedAt)).
			Msg("stream exhausted")
	}
	return ok
}

func (it *loggedIterator[T]) EstimateRemaining() int {
	return it.upstream.EstimateRemaining()
}

func (it *loggedIterator[T]) Next() T {
	x := it.upstream.Next()
	it.log.Debug().
		Int(FieldIndex, it.traversal.pulled).
		Interface(FieldElement, x).
		Msg("pulled")
	it.traversal.pulled++
	return x
}
