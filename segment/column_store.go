// Package segment defines the external collaborator contracts the executor
// consumes: a column store, a scalar index registry, and the scalar indexes
// themselves. It also ships an in-memory reference implementation used by
// tests, examples, and the predicate-bench CLI.
package segment

import "github.com/scigolib/predicate/expr"

// ColumnStore is the append-only, per-field sequence of fixed-size chunks
// that the executor scans when no scalar index covers a chunk.
type ColumnStore interface {
	// NumChunks returns the number of chunks currently allocated for field.
	NumChunks(field string) int
	// ChunkSize returns the segment-wide chunk width.
	ChunkSize() int
	// AckedRows returns the number of rows acknowledged as visible to
	// readers for field.
	AckedRows(field string) int
	// Chunk returns chunk i of field as a slice of Values, one per row slot
	// in the chunk (including any not-yet-populated tail rows, which
	// callers must not read past AckedRows). Undefined for i >= NumChunks.
	Chunk(field string, i int) ([]expr.Value, error)
}
