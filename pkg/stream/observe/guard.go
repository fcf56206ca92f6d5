package observe

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ib-77/lazystream/pkg/stream"
)

// Guard runs terminal and returns the empty sequence access that aborted it,
// if any. The failure is logged at error level and, when m is not nil,
// counted in stream.access_errors. Other panics propagate.
func Guard(ctx context.Context, log zerolog.Logger, m *Metrics, name string, terminal func()) error {
	err := stream.Catch(terminal)
	if err == nil {
		return nil
	}

	log.Error().Err(err).Str(FieldPipeline, name).Msg("stream terminal aborted")
	if m != nil {
		m.accessErrors.Add(ctx, 1, pipelineAttr(name))
	}
	return err
}
