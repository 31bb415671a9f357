// Package vector2i provides an integer 2D vector and the raster helpers
// built on it.
package vector2i

import "vecmath/vector3"

// V represents a 2D vector of integers
type V struct {
	X int
	Y int
}

// New returns a vector with the given components
func New(x, y int) V {
	return V{X: x, Y: y}
}

// At returns component i of the vector, mapping 0, 1 to X, Y.
// It panics for any other index.
func (v V) At(i int) int {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic("vector2i: invalid index")
}

// Add returns the sum of two vectors
func (v V) Add(other V) V {
	return V{X: v.X + other.X, Y: v.Y + other.Y}
}

// Subtract returns the difference between two vectors
func (v V) Subtract(other V) V {
	return V{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale multiplies all components of the vector by a scalar
func (v V) Scale(scalar int) V {
	return V{X: v.X * scalar, Y: v.Y * scalar}
}

// MulComponents returns the component-wise product of two vectors
func (v V) MulComponents(other V) V {
	return V{X: v.X * other.X, Y: v.Y * other.Y}
}

// Divide divides all components of the vector by a scalar using
// integer division
func (v V) Divide(scalar int) V {
	return V{X: v.X / scalar, Y: v.Y / scalar}
}

// Negate returns the vector with all components negated
func (v V) Negate() V {
	return V{X: -v.X, Y: -v.Y}
}

// Barycentric returns the barycentric coordinates of point relative to
// the triangle v0, v1, v2. It returns false when the triangle is
// degenerate or wound the wrong way.
func Barycentric(point, v0, v1, v2 V) (vector3.V, bool) {
	x := vector3.New(float32(v2.X-v0.X), float32(v1.X-v0.X), float32(v0.X-point.X))
	y := vector3.New(float32(v2.Y-v0.Y), float32(v1.Y-v0.Y), float32(v0.Y-point.Y))

	u := x.Cross(y)

	if u.Z < 1 {
		return vector3.V{}, false
	}

	return vector3.New(1-(u.X+u.Y)/u.Z, u.Y/u.Z, u.X/u.Z), true
}

// BBox3 returns the bounding box of the points v0, v1, v2 as its minimum
// and maximum corners.
func BBox3(v0, v1, v2 V) (V, V) {
	minX := min(v0.X, min(v1.X, v2.X))
	maxX := max(v0.X, max(v1.X, v2.X))
	minY := min(v0.Y, min(v1.Y, v2.Y))
	maxY := max(v0.Y, max(v1.Y, v2.Y))

	return New(minX, minY), New(maxX, maxY)
}
