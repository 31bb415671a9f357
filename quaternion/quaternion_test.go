package quaternion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const epsilon = 1e-5

func TestQ_New(t *testing.T) {
	t.Run("Quarter Turn About Y", func(t *testing.T) {
		q := New(0, math.Pi/2, 0)
		require.InDelta(t, 0, q.X, 1e-3)
		require.InDelta(t, 0.7071, q.Y, 1e-3)
		require.InDelta(t, 0, q.Z, 1e-3)
		require.InDelta(t, 0.7071, q.W, 1e-3)
	})

	t.Run("Zero Angles", func(t *testing.T) {
		require.Equal(t, Identity(), New(0, 0, 0))
	})

	t.Run("Unit Length", func(t *testing.T) {
		for _, angles := range [][3]float32{
			{0.3, 0, 0},
			{0, -1.2, 0.4},
			{2.1, 0.7, -0.5},
		} {
			q := New(angles[0], angles[1], angles[2])
			require.InDelta(t, 1, q.Length(), epsilon)
		}
	})
}

func TestQ_Multiply(t *testing.T) {
	t.Run("Identity", func(t *testing.T) {
		q := New(0.3, -0.8, 1.1)
		r := Identity().Multiply(q)
		require.InDelta(t, q.X, r.X, epsilon)
		require.InDelta(t, q.Y, r.Y, epsilon)
		require.InDelta(t, q.Z, r.Z, epsilon)
		require.InDelta(t, q.W, r.W, epsilon)
	})

	t.Run("Same Axis Composes Angles", func(t *testing.T) {
		a := New(0.3, 0, 0)
		b := New(0.5, 0, 0)
		want := New(0.8, 0, 0)
		got := a.Multiply(b)
		require.InDelta(t, want.X, got.X, epsilon)
		require.InDelta(t, want.Y, got.Y, epsilon)
		require.InDelta(t, want.Z, got.Z, epsilon)
		require.InDelta(t, want.W, got.W, epsilon)
	})
}

func TestQ_Normalize(t *testing.T) {
	t.Run("Unit Length", func(t *testing.T) {
		q := Q{X: 1, Y: 2, Z: 3, W: 4}
		require.InDelta(t, 1, q.Normalize().Length(), epsilon)
	})

	t.Run("Preserves Direction", func(t *testing.T) {
		q := Q{X: 0, Y: 2, Z: 0, W: 2}
		n := q.Normalize()
		require.InDelta(t, 0.7071, n.Y, 1e-3)
		require.InDelta(t, 0.7071, n.W, 1e-3)
	})

	t.Run("Zero Quaternion", func(t *testing.T) {
		require.Equal(t, Identity(), Q{}.Normalize())
	})
}
