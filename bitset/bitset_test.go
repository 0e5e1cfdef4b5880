package bitset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetGet(t *testing.T) {
	b := New(10)
	require.Equal(t, 10, b.Len())
	for i := 0; i < 10; i++ {
		require.False(t, b.Get(i))
	}
	b.Set(3, true)
	b.Set(9, true)
	require.True(t, b.Get(3))
	require.True(t, b.Get(9))
	require.False(t, b.Get(4))
	b.Set(3, false)
	require.False(t, b.Get(3))
}

func TestFlip(t *testing.T) {
	tests := []struct {
		name  string
		width int
	}{
		{"zero width", 0},
		{"sub word", 5},
		{"exact word", 64},
		{"multi word", 130},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.width)
			b.Set(0, true)
			b.Flip()
			for i := 0; i < tt.width; i++ {
				want := i != 0
				require.Equal(t, want, b.Get(i), "bit %d", i)
			}
			require.True(t, b.IsZeroBeyond(tt.width))
		})
	}
}

func TestBooleanOps(t *testing.T) {
	a := New(8)
	b := New(8)
	a.Set(0, true)
	a.Set(1, true)
	b.Set(1, true)
	b.Set(2, true)

	and := a.Clone()
	require.NoError(t, and.And(b))
	require.True(t, and.Get(1))
	require.False(t, and.Get(0))
	require.False(t, and.Get(2))

	or := a.Clone()
	require.NoError(t, or.Or(b))
	require.True(t, or.Get(0))
	require.True(t, or.Get(1))
	require.True(t, or.Get(2))

	xor := a.Clone()
	require.NoError(t, xor.Xor(b))
	require.True(t, xor.Get(0))
	require.False(t, xor.Get(1))
	require.True(t, xor.Get(2))

	andNot := a.Clone()
	require.NoError(t, andNot.AndNot(b))
	require.True(t, andNot.Get(0))
	require.False(t, andNot.Get(1))
	require.False(t, andNot.Get(2))
}

func TestShapeMismatch(t *testing.T) {
	a := New(8)
	b := New(4)
	err := a.And(b)
	require.Error(t, err)
	var shapeErr *ErrShapeMismatch
	require.ErrorAs(t, err, &shapeErr)
	require.Equal(t, 8, shapeErr.Left)
	require.Equal(t, 4, shapeErr.Right)
}

func TestBooleanLaws(t *testing.T) {
	const width = 37
	mkRandomish := func() *Bitset {
		b := New(width)
		for i := 0; i < width; i++ {
			b.Set(i, (i*7+3)%5 == 0)
		}
		return b
	}
	e := mkRandomish()

	// Not(Not(E)) == E
	notNot := e.Clone()
	notNot.Flip()
	notNot.Flip()
	require.True(t, Chunked{e}.EqualTo(Chunked{notNot}))

	// And(E, E) == E, Or(E, E) == E
	andSelf := e.Clone()
	require.NoError(t, andSelf.And(e.Clone()))
	require.True(t, Chunked{e}.EqualTo(Chunked{andSelf}))

	orSelf := e.Clone()
	require.NoError(t, orSelf.Or(e.Clone()))
	require.True(t, Chunked{e}.EqualTo(Chunked{orSelf}))

	// Xor(E, E) == 0
	xorSelf := e.Clone()
	require.NoError(t, xorSelf.Xor(e.Clone()))
	require.Equal(t, 0, xorSelf.Count())

	// AndNot(E, E) == 0
	andNotSelf := e.Clone()
	require.NoError(t, andNotSelf.AndNot(e.Clone()))
	require.Equal(t, 0, andNotSelf.Count())

	// AndNot(E, 0) == E
	zero := New(width)
	andNotZero := e.Clone()
	require.NoError(t, andNotZero.AndNot(zero))
	require.True(t, Chunked{e}.EqualTo(Chunked{andNotZero}))
}

func TestCount(t *testing.T) {
	b := New(16)
	b.Set(0, true)
	b.Set(15, true)
	b.Set(8, true)
	require.Equal(t, 3, b.Count())
}
