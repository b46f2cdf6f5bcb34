package transtable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sharedmap/transtable"
)

func TestIdentity(t *testing.T) {
	tt := transtable.Identity(5)
	require.EqualValues(t, 5, tt.Len())
	for v := uint64(0); v < 5; v++ {
		require.Equal(t, v, tt.ToParent(v))
		local, ok, err := tt.ToChild(v)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, v, local)
	}
}

func TestAddOrderAndFinalize(t *testing.T) {
	tt := transtable.New(10)
	tt.Add(7)
	tt.Add(3)
	tt.Add(9)

	require.EqualValues(t, 3, tt.Len())
	require.EqualValues(t, 7, tt.ToParent(0))
	require.EqualValues(t, 3, tt.ToParent(1))
	require.EqualValues(t, 9, tt.ToParent(2))

	_, _, err := tt.ToChild(7)
	require.ErrorIs(t, err, transtable.ErrNotFinalized)

	tt.Finalize()
	local, ok, err := tt.ToChild(3)
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 1, local)

	_, ok, err = tt.ToChild(4)
	require.NoError(t, err)
	require.False(t, ok)
}
