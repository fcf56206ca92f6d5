package observe

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ib-77/lazystream/pkg/stream"
)

// Metrics holds the instruments the stream wrappers record to.
type Metrics struct {
	elements     metric.Int64Counter
	traversals   metric.Int64Counter
	accessErrors metric.Int64Counter
}

// NewMetrics creates the stream instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	elements, err := meter.Int64Counter("stream.elements",
		metric.WithDescription("Elements pulled through observed streams"),
		metric.WithUnit("{element}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.elements counter: %w", err)
	}

	traversals, err := meter.Int64Counter("stream.traversals",
		metric.WithDescription("Observed streams traversed to exhaustion"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.traversals counter: %w", err)
	}

	accessErrors, err := meter.Int64Counter("stream.access_errors",
		metric.WithDescription("Terminals aborted by a pull on an exhausted stream"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.access_errors counter: %w", err)
	}

	return &Metrics{
		elements:     elements,
		traversals:   traversals,
		accessErrors: accessErrors,
	}, nil
}

func pipelineAttr(name string) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String(FieldPipeline, name))
}

type countedIterator[T any] struct {
	ctx      context.Context
	upstream stream.Iterator[T]
	metrics  *Metrics
	attrs    metric.MeasurementOption
	finished bool
}

// Counted wraps s so that every pulled element adds one to stream.elements
// and exhaustion adds one to stream.traversals, both tagged with name. A nil
// m returns s unchanged.
func Counted[T any](ctx context.Context, s stream.Stream[T], m *Metrics, name string) stream.Stream[T] {
	if m == nil {
		return s
	}
	return stream.New[T](&countedIterator[T]{
		ctx:      ctx,
		upstream: s.Iterator(),
		metrics:  m,
		attrs:    pipelineAttr(name),
	})
}

func (it *countedIterator[T]) HasNext() bool {
	ok := it.upstream.HasNext()
	if !ok && !it.finished {
		it.finished = true
		it.metrics.traversals.Add(it.ctx, 1, it.attrs)
	}
	return ok
}

func (it *countedIterator[T]) EstimateRemaining() int {
	return it.upstream.EstimateRemaining()
}

func (it *countedIterator[T]) Next() T {
	x := it.upstream.Next()
	it.metrics.elements.Add(it.ctx, 1, it.attrs)
	return x
}
