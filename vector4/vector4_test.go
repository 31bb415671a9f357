package vector4

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestV_At(t *testing.T) {
	v := New(1, 2, 3, 4)
	for i := 0; i < 4; i++ {
		require.Equal(t, float32(i+1), v.At(i))
	}
	require.Panics(t, func() { v.At(4) })
}

func TestZero(t *testing.T) {
	require.Equal(t, New(0, 0, 0, 0), Zero())
}
