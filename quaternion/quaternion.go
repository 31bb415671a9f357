// Package quaternion provides a single-precision rotation quaternion.
package quaternion

import (
	"math"

	"vecmath/vector3"
)

// Q represents a rotation quaternion
type Q struct {
	X float32
	Y float32
	Z float32
	W float32
}

// New returns a quaternion rotating by the given angles (in radians)
// around the X, Y and Z axes, in that order.
func New(xAngle, yAngle, zAngle float32) Q {
	x2 := float64(xAngle) / 2
	y2 := float64(yAngle) / 2
	z2 := float64(zAngle) / 2

	sinX2, cosX2 := math.Sincos(x2)
	sinY2, cosY2 := math.Sincos(y2)
	sinZ2, cosZ2 := math.Sincos(z2)

	return Q{
		X: float32(sinX2*cosY2*cosZ2 - cosX2*sinY2*sinZ2),
		Y: float32(cosX2*sinY2*cosZ2 + sinX2*cosY2*sinZ2),
		Z: float32(cosX2*cosY2*sinZ2 - sinX2*sinY2*cosZ2),
		W: float32(cosX2*cosY2*cosZ2 + sinX2*sinY2*sinZ2),
	}
}

// Identity returns the identity quaternion
func Identity() Q {
	return Q{W: 1}
}

// Multiply returns the Hamilton product of two quaternions. Applying the
// result rotates by other first, then by q.
func (q Q) Multiply(other Q) Q {
	qv := vector3.New(q.X, q.Y, q.Z)
	rv := vector3.New(other.X, other.Y, other.Z)

	v := qv.Cross(rv).Add(qv.Scale(other.W)).Add(rv.Scale(q.W))
	w := q.W*other.W - qv.Dot(rv)

	return Q{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// Dot returns the dot product of two quaternions
func (q Q) Dot(other Q) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Length returns the length of the quaternion
func (q Q) Length() float32 {
	return float32(math.Sqrt(float64(q.Dot(q))))
}

// Normalize returns the unit quaternion with the same orientation.
// The zero quaternion normalizes to the identity.
func (q Q) Normalize() Q {
	length := q.Length()
	if length == 0 {
		return Identity()
	}
	return Q{
		X: q.X / length,
		Y: q.Y / length,
		Z: q.Z / length,
		W: q.W / length,
	}
}
