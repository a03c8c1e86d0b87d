package photons2d

import (
	"math"
	"testing"
)

func TestNewWorldDefaults(t *testing.T) {
	w := NewWorld(20, 10)
	if len(w.Segments()) != 4 || len(w.Lights()) != 0 || w.LightCount() != 0 {
		t.Fatalf("segments=%d lights=%d", len(w.Segments()), len(w.Lights()))
	}
	if w.Exposure() != DefaultExposure {
		t.Fatalf("exposure=%g", w.Exposure())
	}
	if w.Buffer().Width != 20 || w.Buffer().Height != 10 {
		t.Fatalf("buffer %dx%d", w.Buffer().Width, w.Buffer().Height)
	}
}

func TestExposureFloor(t *testing.T) {
	w := NewWorld(4, 4)
	w.SetExposure(10)
	w.AdjustExposure(-3)
	if w.Exposure() != 7 {
		t.Fatalf("exposure=%g", w.Exposure())
	}
	w.AdjustExposure(-100)
	if w.Exposure() != 0 {
		t.Fatalf("exposure went negative: %g", w.Exposure())
	}
	w.SetExposure(-1)
	if w.Exposure() != 0 {
		t.Fatalf("SetExposure(-1) = %g", w.Exposure())
	}
	w.SetExposure(math.NaN())
	if w.Exposure() != 0 {
		t.Fatalf("SetExposure(NaN) = %g", w.Exposure())
	}
}

func TestAddLightOutsideWorld(t *testing.T) {
	w := NewWorld(10, 10)
	l, _ := NewLight(Vec(11, 5), RGB(1, 1, 1), Omnidirectional{})
	if err := w.AddLight(l); err == nil {
		t.Fatal("expected error for light outside the world")
	}
	if w.LightCount() != 0 {
		t.Fatalf("rejected light was added")
	}
	edge, _ := NewLight(Vec(10, 0), RGB(1, 1, 1), Omnidirectional{})
	if err := w.AddLight(edge); err != nil {
		t.Fatalf("light on the boundary rejected: %v", err)
	}
}

func TestAddSegmentResetsAccumulation(t *testing.T) {
	w := litWorld(t)
	rng := NewRand(1)
	for i := 0; i < 50; i++ {
		w.Tick(rng)
	}
	if w.RayCount() != 50 || w.Buffer().Sum(ChCoverage) == 0 {
		t.Fatalf("no accumulation: rays=%d", w.RayCount())
	}
	w.AddSegment(NewSegment(Vec(1, 1), Vec(2, 2), 1, 0, 0))
	if w.RayCount() != 0 || w.Buffer().Sum(ChCoverage) != 0 {
		t.Fatalf("mutation kept state: rays=%d cov=%g", w.RayCount(), w.Buffer().Sum(ChCoverage))
	}
	if len(w.Segments()) != 6 {
		t.Fatalf("segments=%d", len(w.Segments()))
	}
}

func TestTallyCounts(t *testing.T) {
	w := litWorld(t)
	rng := NewRand(5)
	for i := 0; i < 200; i++ {
		w.Tick(rng)
	}
	c := w.Tally().Counts()
	if c["absorbed"] != 200 {
		t.Fatalf("every ray should end absorbed: %v", c)
	}
	if len(c) != int(numOutcomes) {
		t.Fatalf("counts has %d keys", len(c))
	}
	if Outcome(99).String() == "" {
		t.Fatal("unknown outcome has no name")
	}
}
