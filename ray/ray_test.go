package ray

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vecmath/vector3"
)

func TestR_Accessors(t *testing.T) {
	origin := vector3.New(1, 2, 3)
	direction := vector3.New(0, 0, -4)

	r := New(origin, direction, 0.5)
	require.Equal(t, origin, r.Origin())
	require.Equal(t, direction, r.Direction())
	require.Equal(t, float32(0.5), r.Time())
}

func TestR_PointAt(t *testing.T) {
	r := New(vector3.New(1, 0, 0), vector3.New(0, 2, 0), 0)

	require.Equal(t, vector3.New(1, 0, 0), r.PointAt(0))
	require.Equal(t, vector3.New(1, 2, 0), r.PointAt(1))
	require.Equal(t, vector3.New(1, -1, 0), r.PointAt(-0.5))
}
