// Package vector4 provides a single-precision 4D vector used for
// homogeneous coordinates.
package vector4

// V represents a 4D vector
type V struct {
	X float32
	Y float32
	Z float32
	W float32
}

// New returns a vector with the given components
func New(x, y, z, w float32) V {
	return V{X: x, Y: y, Z: z, W: w}
}

// Zero returns the vector (0, 0, 0, 0)
func Zero() V {
	return V{}
}

// At returns component i of the vector, mapping 0..3 to X, Y, Z, W.
// It panics for any other index.
func (v V) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic("vector4: invalid index")
}
