// Package observe attaches logging and metrics to a stream without changing
// what it yields.
//
// Every wrapper here is itself an adapter: it pulls from the wrapped stream,
// records what it saw and passes elements on unchanged. Nothing is recorded
// until a terminal drives the stream.
//
// Key operations:
// - Logged: zerolog line per pulled element, one summary line on exhaustion
// - Counted: OpenTelemetry element and traversal counters
// - Guard: run a terminal, turn an empty sequence access into a logged error
// - NewLogger: build a zerolog.Logger from LogConfig
package observe
