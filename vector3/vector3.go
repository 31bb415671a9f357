// Package vector3 provides a single-precision 3D vector and its operations.
package vector3

import (
	"math"
	"math/rand"

	"vecmath/vector4"
)

// V represents a 3D vector
type V struct {
	X float32
	Y float32
	Z float32
}

// New returns a vector with the given components
func New(x, y, z float32) V {
	return V{X: x, Y: y, Z: z}
}

// Zero returns the vector (0, 0, 0)
func Zero() V {
	return V{}
}

// One returns the vector (1, 1, 1)
func One() V {
	return V{X: 1, Y: 1, Z: 1}
}

// Up returns the vector (0, 1, 0)
func Up() V {
	return V{Y: 1}
}

// Forward returns the vector (0, 0, 1)
func Forward() V {
	return V{Z: 1}
}

// Left returns the vector (1, 0, 0)
func Left() V {
	return V{X: 1}
}

// At returns component i of the vector, mapping 0, 1, 2 to X, Y, Z.
// It panics for any other index.
func (v V) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("vector3: invalid index")
}

// Add returns the sum of two vectors
func (v V) Add(other V) V {
	return V{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Subtract returns the difference between two vectors
func (v V) Subtract(other V) V {
	return V{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Scale multiplies all components of the vector by a scalar
func (v V) Scale(scalar float32) V {
	return V{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
	}
}

// MulComponents returns the component-wise product of two vectors
func (v V) MulComponents(other V) V {
	return V{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Divide divides all components of the vector by a scalar
func (v V) Divide(scalar float32) V {
	return V{
		X: v.X / scalar,
		Y: v.Y / scalar,
		Z: v.Z / scalar,
	}
}

// Negate returns the vector with all components negated
func (v V) Negate() V {
	return V{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Cross returns the cross product of two vectors
func (v V) Cross(other V) V {
	return V{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Dot returns the dot product of two vectors
func (v V) Dot(other V) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// LengthSquared returns the squared length of the vector
func (v V) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the length of the vector
func (v V) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSquared())))
}

// Normalize returns the normalized vector. The zero vector normalizes
// to the zero vector.
func (v V) Normalize() V {
	length := v.Length()
	if length == 0 {
		return V{}
	}
	return V{
		X: v.X / length,
		Y: v.Y / length,
		Z: v.Z / length,
	}
}

// R returns the X component when the vector holds a color
func (v V) R() float32 {
	return v.X
}

// G returns the Y component when the vector holds a color
func (v V) G() float32 {
	return v.Y
}

// B returns the Z component when the vector holds a color
func (v V) B() float32 {
	return v.Z
}

// ToVector4 lifts the vector into homogeneous coordinates with the given w
func (v V) ToVector4(w float32) vector4.V {
	return vector4.New(v.X, v.Y, v.Z, w)
}

// Reflect returns v reflected about the normal n
func Reflect(v, n V) V {
	return v.Subtract(n.Scale(2 * v.Dot(n)))
}

// Barycentric returns the barycentric coordinates of point inside the
// triangle v0, v1, v2. A degenerate triangle yields non-finite components.
func Barycentric(point, v0, v1, v2 V) V {
	vec0 := v1.Subtract(v0)
	vec1 := v2.Subtract(v0)
	vec2 := point.Subtract(v0)
	d00 := vec0.Dot(vec0)
	d01 := vec0.Dot(vec1)
	d11 := vec1.Dot(vec1)
	d20 := vec2.Dot(vec0)
	d21 := vec2.Dot(vec1)
	denom := d00*d11 - d01*d01

	v := (d11*d20 - d01*d21) / denom
	w := (d00*d21 - d01*d20) / denom
	u := 1 - v - w

	return V{X: u, Y: v, Z: w}
}

// RandomInUnitSphere returns a point sampled inside the unit sphere
func RandomInUnitSphere() V {
	for {
		p := New(rand.Float32(), rand.Float32(), rand.Float32()).Scale(2).Subtract(One())
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomInUnitDisk returns a point sampled inside the unit disk on the
// XY plane
func RandomInUnitDisk() V {
	for {
		p := New(rand.Float32(), rand.Float32(), 0).Scale(2).Subtract(V{X: 1, Y: 1})
		if p.Dot(p) < 1 {
			return p
		}
	}
}
