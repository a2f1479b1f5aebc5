package gamemath

import "math"

// Vec3 is a point or direction in world space. Z is up.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// PlanarDistance is the distance between v and o ignoring Z.
func (v Vec3) PlanarDistance(o Vec3) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Normalize returns v scaled to unit length, or the zero vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Down is the direction of the ground ray.
var Down = Vec3{Z: -1}

// HeadingVectors returns the planar forward and right axes for a heading in degrees.
// Heading 0 faces +Y and positive headings turn counter-clockwise.
func HeadingVectors(heading float64) (forward, right Vec3) {
	rad := heading * math.Pi / 180
	sin, cos := math.Sincos(rad)
	forward = Vec3{X: -sin, Y: cos}
	right = Vec3{X: cos, Y: sin}
	return
}
