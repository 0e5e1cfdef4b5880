package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticSchema(t *testing.T) {
	s := NewStaticSchema(map[string]Type{
		"age": Int32,
		"tag": Int64,
	}, []string{"age", "tag"})

	typ, ok := s.FieldType("age")
	require.True(t, ok)
	require.Equal(t, Int32, typ)

	_, ok = s.FieldType("missing")
	require.False(t, ok)

	off, ok := s.Offset("tag")
	require.True(t, ok)
	require.Equal(t, 1, off)

	_, ok = s.Offset("missing")
	require.False(t, ok)
}
