// Package ray provides a ray value type for tracing and picking.
package ray

import "vecmath/vector3"

// R represents a ray cast from an origin along a direction at a moment
// in time. The direction is stored as given and need not be unit length.
type R struct {
	origin    vector3.V
	direction vector3.V
	time      float32
}

// New returns a ray with the given origin, direction and time
func New(origin, direction vector3.V, time float32) R {
	return R{origin: origin, direction: direction, time: time}
}

// Origin returns the origin of the ray
func (r R) Origin() vector3.V {
	return r.origin
}

// Direction returns the direction of the ray
func (r R) Direction() vector3.V {
	return r.direction
}

// Time returns the time the ray was cast
func (r R) Time() float32 {
	return r.time
}

// PointAt returns the point at parameter t along the ray
func (r R) PointAt(t float32) vector3.V {
	return r.origin.Add(r.direction.Scale(t))
}
