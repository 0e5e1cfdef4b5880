package segment

// Snapshot captures (num_chunks, N, B) exactly once at the start of an
// execute call. Readers must use these values throughout the call; the
// ingester may advance any of them concurrently, but those changes must
// never become visible mid-execution.
type Snapshot struct {
	NumChunks int
	Acked     int
	Barrier   int
}

// Capture samples (NumChunks, AckedRows, Barrier) for field from store and
// reg exactly once. This is the single point where the executor crosses
// from "borrowed mutable segment" to "immutable snapshot"; the executor
// calls it once per referenced field at Execute entry and uses the result
// for the whole call.
func Capture(store ColumnStore, reg IndexRegistry, field string) Snapshot {
	return Snapshot{
		NumChunks: store.NumChunks(field),
		Acked:     store.AckedRows(field),
		Barrier:   reg.Barrier(field),
	}
}

// LogicalLen returns the number of populated rows in chunk i given this
// snapshot and the segment's chunk_size. The last chunk may be physically
// chunkSize wide but logically shorter.
func (s Snapshot) LogicalLen(chunkSize, i int) int {
	if i < 0 || i >= s.NumChunks {
		return 0
	}
	remaining := s.Acked - i*chunkSize
	if remaining < 0 {
		remaining = 0
	}
	if remaining > chunkSize {
		remaining = chunkSize
	}
	return remaining
}
