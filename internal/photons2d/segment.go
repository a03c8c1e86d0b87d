package photons2d

// Segment is a scene wall. A photon hitting it is diffused, reflected,
// transmitted or absorbed with the stored probabilities (absorb = 1 - sum).
type Segment struct {
	P1, P2   Vector2
	Normal   Vector2 // perpendicular of P2-P1, not unit length
	Diffuse  float64
	Reflect  float64
	Transmit float64

	// cached implicit line A*x + B*y = C
	a, b, c float64
}

// NewSegment builds a wall between p1 and p2. Coefficients are clamped to
// [0,1]; if they sum past 1 the wall falls back to fully diffuse.
func NewSegment(p1, p2 Vector2, diffuse, reflect, transmit float64) *Segment {
	s := &Segment{P1: p1, P2: p2}
	if diffuse+reflect+transmit > 1 {
		logger.Warningf("segment %v-%v: coefficients d=%g r=%g t=%g sum past 1, using diffuse", p1, p2, diffuse, reflect, transmit)
		s.Diffuse, s.Reflect, s.Transmit = 1, 0, 0
	} else {
		s.Diffuse, s.Reflect, s.Transmit = clamp01(diffuse), clamp01(reflect), clamp01(transmit)
	}
	s.Normal = p2.Sub(p1).Perp()
	s.a = p2.Y - p1.Y
	s.b = p1.X - p2.X
	s.c = s.a*p1.X + s.b*p1.Y
	return s
}

// Absorb returns the implied absorption probability.
func (s *Segment) Absorb() float64 {
	return 1 - s.Diffuse - s.Reflect - s.Transmit
}

// Len returns the wall length.
func (s *Segment) Len() float64 { return s.P2.Sub(s.P1).Len() }

// boundary returns the four fully absorbing walls enclosing a w×h world.
func boundary(w, h float64) []*Segment {
	return []*Segment{
		NewSegment(Vec(0, 0), Vec(w, 0), 0, 0, 0),
		NewSegment(Vec(w, 0), Vec(w, h), 0, 0, 0),
		NewSegment(Vec(w, h), Vec(0, h), 0, 0, 0),
		NewSegment(Vec(0, h), Vec(0, 0), 0, 0, 0),
	}
}
