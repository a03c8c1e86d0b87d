package photons2d

import (
	"math"
	"testing"
)

func TestNewLightValidation(t *testing.T) {
	if _, err := NewLight(Vec(1, 1), RGB(1, 1, 1), nil); err == nil {
		t.Fatal("expected error for missing policy")
	}
	if _, err := NewLight(Vec(math.NaN(), 1), RGB(1, 1, 1), Omnidirectional{}); err == nil {
		t.Fatal("expected error for non-finite position")
	}
	l, err := NewLight(Vec(1, 1), Color{-1, 2, 0.5, 1}, NaturalDirectional{Direction: 1})
	if err != nil {
		t.Fatal(err)
	}
	if l.Color.R != 0 || l.Color.G != 2 {
		t.Fatalf("color not floored at zero: %+v", l.Color)
	}
	if n := l.Policy.(NaturalDirectional); n.Spread != NaturalSpread {
		t.Fatalf("spread default not applied: %g", n.Spread)
	}
}

func TestOmnidirectionalEmitsUnitDirections(t *testing.T) {
	l, _ := NewLight(Vec(0, 0), RGB(1, 1, 1), Omnidirectional{})
	rng := NewRand(3)
	dirs := l.Emit(rng, 4000, nil)
	if len(dirs) != 4000 || l.Emitted() != 4000 {
		t.Fatalf("emitted %d dirs, counter %d", len(dirs), l.Emitted())
	}
	var quad [4]int
	for _, d := range dirs {
		if math.Abs(d.Len()-1) > 1e-12 {
			t.Fatalf("direction not unit: %g", d.Len())
		}
		q := 0
		if d.X < 0 {
			q |= 1
		}
		if d.Y < 0 {
			q |= 2
		}
		quad[q]++
	}
	for q, n := range quad {
		if n < 800 || n > 1200 {
			t.Fatalf("quadrant %d got %d of 4000 rays", q, n)
		}
	}
}

func TestDirectionalAbsoluteEmitsNothing(t *testing.T) {
	l, _ := NewLight(Vec(0, 0), RGB(1, 1, 1), DirectionalAbsolute{Direction: 1})
	dirs := l.Emit(NewRand(1), 10, nil)
	if len(dirs) != 0 || l.Emitted() != 0 {
		t.Fatalf("absolute light emitted %d rays (counter %d)", len(dirs), l.Emitted())
	}
}

func TestNaturalDirectionalConcentratesAroundDirection(t *testing.T) {
	const dir = 0.3
	l, _ := NewLight(Vec(0, 0), RGB(1, 1, 1), NaturalDirectional{Direction: dir, Spread: 100})
	nominal := Polar(dir, 1)
	dirs := l.Emit(NewRand(5), 10000, nil)
	near, left := 0, 0
	for _, d := range dirs {
		if nominal.AngleBetween(d) < 0.01 {
			near++
		}
		if nominal.Cross(d) > 0 {
			left++
		}
	}
	if near < 9000 {
		t.Fatalf("only %d of 10000 rays within 0.01 rad of the nominal direction", near)
	}
	// the coin flip puts the tail on both sides
	if left == 0 || left == len(dirs) {
		t.Fatalf("tail only on one side: %d", left)
	}
}
