package photons2d

import (
	"math"
	"sync/atomic"
)

// Accumulator is the shared radiance buffer: Width*Height pixels of
// (R, G, B, coverage) float64 sums stored as bit patterns. Adds are
// lock-free CAS loops and reads are atomic loads, so emitters and the
// render pool share it without locks. Values only grow until Reset.
type Accumulator struct {
	Width, Height int
	buf           []uint64 // flat: (y*Width + x)*Channels + c
}

// NewAccumulator allocates a zeroed w×h buffer.
func NewAccumulator(w, h int) *Accumulator {
	if w <= 0 || h <= 0 {
		panic("accumulator dimensions must be positive")
	}
	return &Accumulator{Width: w, Height: h, buf: make([]uint64, w*h*Channels)}
}

// Flat buffer index helper (c ∈ {ChR,ChG,ChB,ChCoverage}).
func (a *Accumulator) idx(x, y, c int) int {
	return (y*a.Width+x)*Channels + c
}

func addFloat(p *uint64, v float64) {
	for {
		old := atomic.LoadUint64(p)
		if atomic.CompareAndSwapUint64(p, old, math.Float64bits(math.Float64frombits(old)+v)) {
			return
		}
	}
}

// plot adds weight w of color c at pixel (x, y). Out-of-range pixels are
// dropped.
func (a *Accumulator) plot(x, y int, w float64, c Color) {
	if x < 0 || x >= a.Width || y < 0 || y >= a.Height || w == 0 {
		return
	}
	base := a.idx(x, y, ChR)
	addFloat(&a.buf[base+ChR], w*c.R)
	addFloat(&a.buf[base+ChG], w*c.G)
	addFloat(&a.buf[base+ChB], w*c.B)
	addFloat(&a.buf[base+ChCoverage], w)
}

// At returns one channel of one pixel.
func (a *Accumulator) At(x, y, c int) float64 {
	return math.Float64frombits(atomic.LoadUint64(&a.buf[a.idx(x, y, c)]))
}

// Pixel returns all four channels of a pixel.
func (a *Accumulator) Pixel(x, y int) [Channels]float64 {
	var px [Channels]float64
	base := a.idx(x, y, ChR)
	for c := range px {
		px[c] = math.Float64frombits(atomic.LoadUint64(&a.buf[base+c]))
	}
	return px
}

// Sum totals a channel over the whole buffer.
func (a *Accumulator) Sum(c int) float64 {
	s := 0.0
	for i := c; i < len(a.buf); i += Channels {
		s += math.Float64frombits(atomic.LoadUint64(&a.buf[i]))
	}
	return s
}

// Reset zeroes the buffer. Callers must have paused every emitter.
func (a *Accumulator) Reset() {
	for i := range a.buf {
		atomic.StoreUint64(&a.buf[i], 0)
	}
}

// load reads the i-th raw value of the flat buffer.
func (a *Accumulator) load(i int) float64 {
	return math.Float64frombits(atomic.LoadUint64(&a.buf[i]))
}
