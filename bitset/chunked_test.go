package bitset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChunkedEqualTo(t *testing.T) {
	a := Chunked{New(4), New(4)}
	a[0].Set(1, true)
	b := Chunked{New(4), New(4)}
	b[0].Set(1, true)
	require.True(t, a.EqualTo(b))

	b[1].Set(2, true)
	require.False(t, a.EqualTo(b))

	require.Equal(t, 2, a.NumChunks())
}

func TestChunkedDifferentLength(t *testing.T) {
	a := Chunked{New(4)}
	b := Chunked{New(4), New(4)}
	require.False(t, a.EqualTo(b))
}
