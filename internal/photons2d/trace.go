package photons2d

import (
	"math"
	"math/rand"
)

// pathStats summarises one traced photon.
type pathStats struct {
	Segments int     // straight pieces deposited
	Length   float64 // total distance traveled
	End      Outcome
}

// TraceRay follows one photon from origin along direction until it is
// absorbed, depositing color along every straight piece of its path.
// Safe for concurrent use as long as the scene is not being mutated.
func (w *World) TraceRay(rng *rand.Rand, origin, direction Vector2, c Color) {
	w.trace(rng, origin, direction, c)
}

func (w *World) trace(rng *rand.Rand, origin, direction Vector2, c Color) pathStats {
	var st pathStats
	d := direction.Norm()
	if d.X == 0 && d.Y == 0 {
		d = Polar(2*math.Pi*rng.Float64(), 1)
	}
	p := origin
	var last *Segment

	for {
		hit, t := w.nearestHit(p, d, last)
		if hit == nil {
			// cannot happen inside the closed boundary unless the ray
			// started outside it; drop the photon
			logger.Debugf("ray from %v dir %v hit nothing", p, d)
			w.tally.add(Escaped)
			st.End = Escaped
			return st
		}

		q := p.Add(d.Mul(t))
		w.acc.depositSegment(p.X, p.Y, q.X, q.Y, c)
		st.Segments++
		st.Length += t
		p, last = q, hit

		out := sampleOutcome(hit, rng.Float64())
		w.tally.add(out)
		switch out {
		case Diffused:
			d = Polar(2*math.Pi*rng.Float64(), 1)
		case Reflected:
			d = reflect2(d, hit.Normal)
		case Transmitted:
			// straight through
		default:
			st.End = Absorbed
			return st
		}

		if w.MaxBounces > 0 && st.Segments >= w.MaxBounces {
			w.tally.add(BounceLimit)
			st.End = BounceLimit
			return st
		}
	}
}

// nearestHit returns the closest wall crossed by the half-line p + t*d,
// t >= 0, ignoring skip (the wall the ray is leaving).
func (w *World) nearestHit(p, d Vector2, skip *Segment) (*Segment, float64) {
	// ray line: rA*x + rB*y = rC
	rA, rB := d.Y, -d.X
	rC := rA*p.X + rB*p.Y

	best := math.Inf(1)
	var hit *Segment
	for _, s := range w.segments {
		if s == skip {
			continue
		}
		s1 := rA*s.P1.X + rB*s.P1.Y
		s2 := rA*s.P2.X + rB*s.P2.Y
		// endpoints on the same side, and neither or both on the line
		if (s1 > rC) == (s2 > rC) && (s1 == rC) == (s2 == rC) {
			continue
		}
		den := s.a*d.X + s.b*d.Y
		if den == 0 {
			continue
		}
		t := (s.c - s.a*p.X - s.b*p.Y) / den
		if t >= 0 && t < best {
			best, hit = t, s
		}
	}
	return hit, best
}

// sampleOutcome partitions u in fixed order: diffuse, reflect, transmit,
// then absorb.
func sampleOutcome(s *Segment, u float64) Outcome {
	if u < s.Diffuse {
		return Diffused
	}
	u -= s.Diffuse
	if u < s.Reflect {
		return Reflected
	}
	u -= s.Reflect
	if u < s.Transmit {
		return Transmitted
	}
	return Absorbed
}

// reflect2 mirrors the unit direction in about the wall with normal n. The
// outgoing angle is measured from -n, on the side picked by the sign of
// in × n.
func reflect2(in, n Vector2) Vector2 {
	a := n.Opposite().Angle() + sgn(in.Cross(n))*in.AngleBetween(n)
	return Polar(a, 1)
}
