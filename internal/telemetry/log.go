// Package telemetry carries the executor's ambient logging and metrics:
// concerns spec.md's Non-goals exclude as an outer surface but which the
// teacher and the rest of the retrieval pack always carry internally.
package telemetry

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the package-wide structured logger. Callers that want a
// silent executor (tests, benchmarks comparing pure CPU cost) can swap it
// for zerolog.Nop().
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()

// ChunkEvent logs a single chunk-level trace event. field and chunk
// identify the leaf and chunk under evaluation; kind is a short event name:
// the executor emits "index-hit", "scan", or "cancelled". Invariant
// violations and other errors are logged through Error instead.
func ChunkEvent(field string, chunk int, kind string) {
	Logger.Debug().Str("field", field).Int("chunk", chunk).Str("event", kind).Msg("predicate chunk event")
}

// Error logs an executor-level error with its field context.
func Error(field string, err error) {
	Logger.Error().Str("field", field).Err(err).Msg("predicate execution error")
}
