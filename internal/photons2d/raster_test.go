package photons2d

import (
	"math"
	"testing"
)

func columnSum(a *Accumulator, x int) float64 {
	s := 0.0
	for y := 0; y < a.Height; y++ {
		s += a.At(x, y, ChCoverage)
	}
	return s
}

func rowSum(a *Accumulator, y int) float64 {
	s := 0.0
	for x := 0; x < a.Width; x++ {
		s += a.At(x, y, ChCoverage)
	}
	return s
}

func TestDepositColumnWeight(t *testing.T) {
	a := NewAccumulator(64, 64)
	a.depositSegment(10, 10.3, 30, 17.7, RGB(1, 1, 1))
	br := 0.5 * math.Hypot(20, 7.4) / 20
	for x := 11; x <= 29; x++ {
		if s := columnSum(a, x); !approxEqual(s, br, 1e-12) {
			t.Fatalf("column %d: got %.15g, want %.15g", x, s, br)
		}
	}
	for _, x := range []int{10, 30} {
		if s := columnSum(a, x); !approxEqual(s, br/2, 1e-12) {
			t.Fatalf("endpoint column %d: got %.15g, want %.15g", x, s, br/2)
		}
	}
	if s := columnSum(a, 9) + columnSum(a, 31); s != 0 {
		t.Fatalf("weight outside the segment: %g", s)
	}
}

func TestDepositSteepRowWeight(t *testing.T) {
	a := NewAccumulator(64, 64)
	a.depositSegment(5.2, 10, 9.1, 40, RGB(1, 1, 1))
	br := 0.5 * math.Hypot(3.9, 30) / 30
	for y := 11; y <= 39; y++ {
		if s := rowSum(a, y); !approxEqual(s, br, 1e-12) {
			t.Fatalf("row %d: got %.15g, want %.15g", y, s, br)
		}
	}
}

func TestDepositTotalIsHalfLength(t *testing.T) {
	for _, ang := range []float64{0, 0.4, math.Pi / 4, 1.0, math.Pi / 2, 2.7, -0.4, -2} {
		a := NewAccumulator(64, 64)
		p := Vec(32.37, 31.81)
		q := p.Add(Polar(ang, 20))
		a.depositSegment(p.X, p.Y, q.X, q.Y, RGB(1, 1, 1))
		if s := a.Sum(ChCoverage); !approxEqual(s, 10, 1e-9) {
			t.Fatalf("angle %g: total weight %.12g, want 10", ang, s)
		}
	}
}

func TestDepositColorAndDegenerate(t *testing.T) {
	a := NewAccumulator(16, 16)
	a.depositSegment(5, 5, 5, 5, RGB(1, 1, 1))
	if s := a.Sum(ChCoverage); s != 0 {
		t.Fatalf("zero-length segment deposited %g", s)
	}
	a.depositSegment(1, 1, math.NaN(), 3, RGB(1, 1, 1))
	if s := a.Sum(ChCoverage); s != 0 {
		t.Fatalf("NaN segment deposited %g", s)
	}

	a.depositSegment(2, 3, 12, 8, Color{0.5, 0.25, 2, 1})
	cov := a.Sum(ChCoverage)
	if cov <= 0 {
		t.Fatal("nothing deposited")
	}
	if !approxEqual(a.Sum(ChR), 0.5*cov, 1e-12) || !approxEqual(a.Sum(ChG), 0.25*cov, 1e-12) || !approxEqual(a.Sum(ChB), 2*cov, 1e-12) {
		t.Fatalf("channels not proportional to color: r=%g g=%g b=%g cov=%g", a.Sum(ChR), a.Sum(ChG), a.Sum(ChB), cov)
	}
}

func TestDepositClipsToBuffer(t *testing.T) {
	a := NewAccumulator(64, 16)
	a.depositSegment(-10, 5.5, 200, 5.5, RGB(1, 1, 1))
	// only the 64 visible columns receive their 0.5 each
	if s := a.Sum(ChCoverage); !approxEqual(s, 32, 1e-9) {
		t.Fatalf("clipped total %g, want 32", s)
	}
	if a.At(0, 5, ChCoverage) != 0.25 || a.At(63, 6, ChCoverage) != 0.25 {
		t.Fatalf("edge pixels: %g %g", a.At(0, 5, ChCoverage), a.At(63, 6, ChCoverage))
	}
}

func TestAccumulatorReset(t *testing.T) {
	a := NewAccumulator(8, 8)
	a.depositSegment(0, 0, 7, 7, RGB(1, 0, 0))
	a.Reset()
	for c := 0; c < Channels; c++ {
		if s := a.Sum(c); s != 0 {
			t.Fatalf("channel %d not cleared: %g", c, s)
		}
	}
}
