package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestOptionsOverride(t *testing.T) {
	c := Default(WithChunkParallelism(4), WithCancelPollEvery(8), WithSmallTermLinearThreshold(0))
	require.Equal(t, 4, c.ChunkParallelism)
	require.Equal(t, 8, c.CancelPollEvery)
	require.Equal(t, 0, c.SmallTermLinearThreshold)
	require.NoError(t, c.Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []Config{
		{ChunkParallelism: 0, CancelPollEvery: 1, SmallTermLinearThreshold: 4},
		{ChunkParallelism: 1, CancelPollEvery: 0, SmallTermLinearThreshold: 4},
		{ChunkParallelism: 1, CancelPollEvery: 1, SmallTermLinearThreshold: -1},
	}
	for _, c := range tests {
		require.Error(t, c.Validate())
	}
}
