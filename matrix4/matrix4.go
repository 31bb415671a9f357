// Package matrix4 provides a single-precision 4x4 transform matrix.
//
// The matrix is stored row-major: element (r, c) lives at index r*4+c and
// translation occupies column 3. Vectors are column vectors multiplied on
// the right, so in a product the rightmost factor applies to a point first:
// Scale(...).Multiply(Rotation(q)).Multiply(Translation(...)) translates,
// then rotates, then scales.
package matrix4

import (
	"math"

	"vecmath/quaternion"
	"vecmath/vector3"
	"vecmath/vector4"
)

// M represents a 4x4 matrix
type M [16]float32

// Zero returns a matrix with all values set to 0
func Zero() M {
	return M{}
}

// Identity returns an identity matrix
func Identity() M {
	return M{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at row r, column c. It panics when either
// index is outside 0..3.
func (m M) At(r, c int) float32 {
	if r < 0 || r > 3 || c < 0 || c > 3 {
		panic("matrix4: invalid index")
	}
	return m[r*4+c]
}

// Row returns row r of the matrix. It panics when r is outside 0..3.
func (m M) Row(r int) [4]float32 {
	if r < 0 || r > 3 {
		panic("matrix4: invalid index")
	}
	return [4]float32{m[r*4], m[r*4+1], m[r*4+2], m[r*4+3]}
}

// Translation returns a matrix translating along the x, y and z axes
func Translation(x, y, z float32) M {
	return M{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// Scale returns a matrix scaling along the x, y and z axes
func Scale(x, y, z float32) M {
	return M{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Rotation returns the rotation matrix for a quaternion. The quaternion
// is normalized before conversion, so it need not be unit length.
func Rotation(q quaternion.Q) M {
	q = q.Normalize()

	qx2 := q.X * q.X
	qy2 := q.Y * q.Y
	qz2 := q.Z * q.Z
	qxqy := q.X * q.Y
	qxqz := q.X * q.Z
	qyqz := q.Y * q.Z
	qwqx := q.W * q.X
	qwqy := q.W * q.Y
	qwqz := q.W * q.Z

	return M{
		1 - 2*(qy2+qz2), 2 * (qxqy - qwqz), 2 * (qxqz + qwqy), 0,
		2 * (qxqy + qwqz), 1 - 2*(qx2+qz2), 2 * (qyqz - qwqx), 0,
		2 * (qxqz - qwqy), 2 * (qyqz + qwqx), 1 - 2*(qx2+qy2), 0,
		0, 0, 0, 1,
	}
}

// LookAt returns a view matrix looking from position towards look
func LookAt(position, look, up vector3.V) M {
	// forward runs from look back towards the eye
	forward := position.Subtract(look).Normalize()
	left := forward.Cross(up.Normalize()).Normalize()
	newUp := forward.Cross(left)

	return M{
		left.X, newUp.X, forward.X, -left.Dot(position),
		left.Y, newUp.Y, forward.Y, -newUp.Dot(position),
		left.Z, newUp.Z, forward.Z, -forward.Dot(position),
		0, 0, 0, 1,
	}
}

// Ortho returns an orthographic projection matrix
func Ortho(left, right, bottom, top, near, far float32) M {
	return M{
		2 / (right - left), 0, 0, -(right + left) / (right - left),
		0, 2 / (top - bottom), 0, -(top + bottom) / (top - bottom),
		0, 0, -2 / (far - near), -(far + near) / (far - near),
		0, 0, 0, 1,
	}
}

// Perspective returns a perspective projection matrix for a vertical
// field of view in degrees and an aspect ratio (width / height). The
// result needs the homogeneous divide, so apply it via TransformVector4.
func Perspective(fov, aspect, near, far float32) M {
	s := float32(math.Tan(float64(fov) / 2 * math.Pi / 180))

	m := Zero()
	m[0] = 1 / (s * aspect)
	m[5] = 1 / s
	m[10] = -far / (far - near)
	m[11] = -far * near / (far - near)
	m[14] = -1
	return m
}

// Multiply returns the product of two matrices
func (m M) Multiply(other M) M {
	result := M{}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				result[i*4+j] += m[i*4+k] * other[k*4+j]
			}
		}
	}
	return result
}

// Transform applies the matrix to a point, treating it as homogeneous
// with w=1 and truncating the result
func (m M) Transform(v vector3.V) vector3.V {
	x := m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]
	y := m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]
	z := m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]
	return vector3.V{X: x, Y: y, Z: z}
}

// TransformDirection applies the matrix to a direction, treating it as
// homogeneous with w=0 so translation has no effect
func (m M) TransformDirection(v vector3.V) vector3.V {
	x := m[0]*v.X + m[1]*v.Y + m[2]*v.Z
	y := m[4]*v.X + m[5]*v.Y + m[6]*v.Z
	z := m[8]*v.X + m[9]*v.Y + m[10]*v.Z
	return vector3.V{X: x, Y: y, Z: z}
}

// TransformVector4 applies the matrix to a homogeneous vector
func (m M) TransformVector4(v vector4.V) vector4.V {
	x := m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W
	y := m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W
	z := m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W
	w := m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W
	return vector4.New(x, y, z, w)
}
