package photons2d

import "math"

// Vector2 is an immutable 2D point or direction. The polar view (Angle, Len)
// is derived on demand so values can be shared across goroutines freely.
type Vector2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec builds a vector from cartesian components.
func Vec(x, y float64) Vector2 { return Vector2{x, y} }

// Polar builds a vector from an angle in radians and a magnitude.
func Polar(angle, magnitude float64) Vector2 {
	s, c := math.Sincos(angle)
	return Vector2{magnitude * c, magnitude * s}
}

// Vector functions
func (a Vector2) Add(b Vector2) Vector2   { return Vector2{a.X + b.X, a.Y + b.Y} }
func (a Vector2) Sub(b Vector2) Vector2   { return Vector2{a.X - b.X, a.Y - b.Y} }
func (v Vector2) Mul(s float64) Vector2   { return Vector2{v.X * s, v.Y * s} }
func (v Vector2) Div(s float64) Vector2   { return Vector2{v.X / s, v.Y / s} }
func (v Vector2) Opposite() Vector2       { return Vector2{-v.X, -v.Y} }
func (a Vector2) Dot(b Vector2) float64   { return a.X*b.X + a.Y*b.Y }
func (a Vector2) Cross(b Vector2) float64 { return a.X*b.Y - b.X*a.Y }

// Perp returns the vector rotated by -90°, i.e. (y, -x).
func (v Vector2) Perp() Vector2 { return Vector2{v.Y, -v.X} }

// Len returns the Euclidean length of the vector.
func (v Vector2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Angle returns the direction in radians in (-π, π]; the zero vector has angle 0.
func (v Vector2) Angle() float64 {
	a := math.Atan2(v.Y, v.X)
	if math.IsNaN(a) {
		return 0
	}
	return a
}

// Norm returns a unit-length version of the vector.
// If the vector is zero, it returns the input unchanged.
func (v Vector2) Norm() Vector2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector2{v.X / l, v.Y / l}
}

// Rotate returns the vector rotated counter-clockwise by angle radians.
func (v Vector2) Rotate(angle float64) Vector2 {
	s, c := math.Sincos(angle)
	return Vector2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// AngleBetween returns the unsigned angle in [0, π] between a and b.
func (a Vector2) AngleBetween(b Vector2) float64 {
	d := a.Len() * b.Len()
	if d == 0 {
		return 0
	}
	c := a.Dot(b) / d
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c)
}
