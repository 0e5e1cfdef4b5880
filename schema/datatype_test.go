package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		t    Type
		want string
	}{
		{Bool, "bool"},
		{Int8, "int8"},
		{Int16, "int16"},
		{Int32, "int32"},
		{Int64, "int64"},
		{Float32, "float32"},
		{Float64, "float64"},
		{Type(99), "type(99)"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.t.String())
	}
}

func TestIsFloat(t *testing.T) {
	require.True(t, Float32.IsFloat())
	require.True(t, Float64.IsFloat())
	require.False(t, Int32.IsFloat())
	require.False(t, Bool.IsFloat())
}
