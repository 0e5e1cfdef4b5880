package bitset

// Chunked is an ordered sequence of per-chunk bitsets, all of the same
// width, aligned with a column store's chunk layout.
type Chunked []*Bitset

// NumChunks returns the number of chunks.
func (c Chunked) NumChunks() int {
	return len(c)
}

// EqualTo reports whether two chunked bitsets have identical shape and bits.
// Intended for tests.
func (c Chunked) EqualTo(other Chunked) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i].Len() != other[i].Len() {
			return false
		}
		for j := 0; j < c[i].Len(); j++ {
			if c[i].Get(j) != other[i].Get(j) {
				return false
			}
		}
	}
	return true
}
