package photons2d

import "testing"

func TestNewSegmentOverfullCoefficientsFallBackToDiffuse(t *testing.T) {
	for _, c := range [][3]float64{{0.5, 0.5, 0.5}, {1, 0.01, 0}, {0, 0, 1.5}, {0.9, 0.2, 0}} {
		s := NewSegment(Vec(0, 0), Vec(1, 0), c[0], c[1], c[2])
		if s.Diffuse != 1 || s.Reflect != 0 || s.Transmit != 0 {
			t.Fatalf("coefficients %v: got (%g, %g, %g), want (1, 0, 0)", c, s.Diffuse, s.Reflect, s.Transmit)
		}
	}
}

func TestNewSegmentKeepsValidCoefficients(t *testing.T) {
	s := NewSegment(Vec(0, 0), Vec(2, 0), 0.2, 0.3, 0.1)
	if s.Diffuse != 0.2 || s.Reflect != 0.3 || s.Transmit != 0.1 {
		t.Fatalf("coefficients changed: %+v", s)
	}
	if !approxEqual(s.Absorb(), 0.4, 1e-12) {
		t.Fatalf("absorb = %g", s.Absorb())
	}
	if s.Normal != Vec(0, -2) {
		t.Fatalf("normal = %+v, want perpendicular of P2-P1", s.Normal)
	}
	if s.Len() != 2 {
		t.Fatalf("len = %g", s.Len())
	}
	neg := NewSegment(Vec(0, 0), Vec(1, 1), -0.5, 0.5, 0)
	if neg.Diffuse != 0 || neg.Reflect != 0.5 {
		t.Fatalf("negative coefficient not clamped: %+v", neg)
	}
}

func TestBoundaryIsClosedAndAbsorbing(t *testing.T) {
	walls := boundary(10, 5)
	if len(walls) != 4 {
		t.Fatalf("want 4 walls, got %d", len(walls))
	}
	for i, s := range walls {
		if s.Absorb() != 1 {
			t.Fatalf("wall %d not fully absorbing: %+v", i, s)
		}
		next := walls[(i+1)%4]
		if s.P2 != next.P1 {
			t.Fatalf("wall %d does not connect to wall %d", i, (i+1)%4)
		}
	}
}
