package vector2i

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestV_Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  V
		want V
	}{
		{"Add", New(0, 5).Add(New(-6, 4)), New(-6, 9)},
		{"Subtract", New(0, 5).Subtract(New(-6, 4)), New(6, 1)},
		{"Scale", New(0, 5).Scale(3), New(0, 15)},
		{"MulComponents", New(0, 5).MulComponents(New(3, 2)), New(0, 10)},
		{"Divide", New(12, 5).Divide(3), New(4, 1)},
		{"Negate", New(12, 0).Negate(), New(-12, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.got)
		})
	}
}

func TestV_At(t *testing.T) {
	v := New(12, 0)
	require.Equal(t, 12, v.At(0))
	require.Equal(t, 0, v.At(1))
	require.Panics(t, func() { v.At(2) })
}

func TestBarycentric(t *testing.T) {
	v0 := New(0, 0)
	v1 := New(0, 10)
	v2 := New(10, 0)

	b, ok := Barycentric(New(2, 2), v0, v1, v2)
	require.True(t, ok)
	require.InDelta(t, 0.6, b.X, 1e-5)
	require.InDelta(t, 0.2, b.Y, 1e-5)
	require.InDelta(t, 0.2, b.Z, 1e-5)

	// collapsed triangle
	_, ok = Barycentric(New(1, 1), New(0, 0), New(5, 5), New(10, 10))
	require.False(t, ok)
}

func TestBBox3(t *testing.T) {
	lo, hi := BBox3(New(3, -1), New(-2, 7), New(0, 0))
	require.Equal(t, New(-2, -1), lo)
	require.Equal(t, New(3, 7), hi)
}
