package photons2d

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync/atomic"
	"time"
)

// World is the scene plus its radiance buffer. The four walls enclosing
// [0,Width]×[0,Height] are always present and absorb everything, so every
// ray terminates.
type World struct {
	Width, Height int
	MaxBounces    int // 0 = unlimited

	segments   []*Segment
	lights     []*LightSource
	lightCount atomic.Int32 // mirrors len(lights) for the unpaused render path

	acc      *Accumulator
	rays     atomic.Int64
	exposure atomic.Uint64 // float64 bits
	tally    Tally
	gate     *gate
}

// NewWorld allocates a zeroed width×height world with its boundary walls.
func NewWorld(width, height int) *World {
	w := &World{
		Width:    width,
		Height:   height,
		acc:      NewAccumulator(width, height),
		segments: boundary(float64(width), float64(height)),
		gate:     newGate(),
	}
	w.SetExposure(DefaultExposure)
	logger.Debugf("Created world %dx%d", width, height)
	return w
}

// mutate is the only way the scene lists change: pause every emitter,
// clear the accumulated state, apply fn, resume.
func (w *World) mutate(fn func()) {
	w.gate.pause()
	defer w.gate.resume()
	w.reset()
	fn()
	w.lightCount.Store(int32(len(w.lights)))
}

func (w *World) reset() {
	w.acc.Reset()
	w.rays.Store(0)
	w.tally.reset()
	for _, l := range w.lights {
		l.emitted.Store(0)
	}
}

// AddSegment adds a wall and restarts accumulation.
func (w *World) AddSegment(s *Segment) {
	w.mutate(func() { w.segments = append(w.segments, s) })
	logger.Infof("Added segment %v-%v (d=%g r=%g t=%g)", s.P1, s.P2, s.Diffuse, s.Reflect, s.Transmit)
}

// AddLight adds a light and restarts accumulation. The light must sit
// inside the world.
func (w *World) AddLight(l *LightSource) error {
	p := l.Position
	if p.X < 0 || p.X > float64(w.Width) || p.Y < 0 || p.Y > float64(w.Height) {
		return fmt.Errorf("light at %v is outside the %dx%d world", p, w.Width, w.Height)
	}
	w.mutate(func() { w.lights = append(w.lights, l) })
	logger.Infof("Added %s light at %v", l.Policy.Kind(), p)
	return nil
}

// Segments returns a copy of the wall list, boundary first. Not safe to
// call concurrently with AddSegment.
func (w *World) Segments() []*Segment {
	return append([]*Segment(nil), w.segments...)
}

// Lights returns a copy of the light list. Not safe to call concurrently
// with AddLight.
func (w *World) Lights() []*LightSource {
	return append([]*LightSource(nil), w.lights...)
}

// LightCount is safe to call at any time.
func (w *World) LightCount() int { return int(w.lightCount.Load()) }

// RayCount returns the per-light ray budgets granted since the last reset.
func (w *World) RayCount() int64 { return w.rays.Load() }

// Buffer exposes the accumulation buffer.
func (w *World) Buffer() *Accumulator { return w.acc }

// Tally exposes the interaction counters.
func (w *World) Tally() *Tally { return &w.tally }

func (w *World) Exposure() float64 { return math.Float64frombits(w.exposure.Load()) }

// SetExposure sets the tone-mapping gain, floored at 0.
func (w *World) SetExposure(e float64) {
	if e < 0 || math.IsNaN(e) {
		e = 0
	}
	w.exposure.Store(math.Float64bits(e))
}

// AdjustExposure applies one mouse-wheel style delta, floored at 0.
func (w *World) AdjustExposure(delta float64) {
	for {
		old := w.exposure.Load()
		e := math.Float64frombits(old) + delta
		if e < 0 || math.IsNaN(e) {
			e = 0
		}
		if w.exposure.CompareAndSwap(old, math.Float64bits(e)) {
			return
		}
	}
}

// PauseAll blocks until no emitter is mid-tick; no tick runs until the
// matching ResumeAll.
func (w *World) PauseAll() { w.gate.pause() }

// ResumeAll releases one PauseAll.
func (w *World) ResumeAll() { w.gate.resume() }

// Paused reports whether at least one pause is outstanding.
func (w *World) Paused() bool { return w.gate.paused() }

// tick grants every light a budget of one ray and traces what it emits.
// The ray counter advances by the budget, not by the rays produced, so a
// light that emits nothing still takes its share of the normalisation and
// adding it leaves the image unchanged. dirs is scratch space reused across
// ticks. Callers hold the gate.
func (w *World) tick(rng *rand.Rand, dirs []Vector2) []Vector2 {
	for _, l := range w.lights {
		dirs = l.Emit(rng, 1, dirs[:0])
		for _, d := range dirs {
			w.trace(rng, l.Position, d, l.Color)
		}
		w.rays.Add(1)
	}
	return dirs
}

// Tick runs one tick on the calling goroutine. It blocks while the world is
// paused, so it must not be called between PauseAll and ResumeAll on the
// same goroutine.
func (w *World) Tick(rng *rand.Rand) {
	w.gate.enter(context.Background())
	w.tick(rng, nil)
	w.gate.leave()
}

// TickFor ticks repeatedly on the calling goroutine for d and returns the
// number of ticks run.
func (w *World) TickFor(rng *rand.Rand, d time.Duration) int {
	var dirs []Vector2
	n := 0
	start := time.Now()
	for time.Since(start) < d {
		w.gate.enter(context.Background())
		dirs = w.tick(rng, dirs)
		w.gate.leave()
		n++
	}
	return n
}
