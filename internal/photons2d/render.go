package photons2d

import (
	"errors"
	"fmt"
	"image"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrRendererClosed is returned by Render after Close.
var ErrRendererClosed = errors.New("renderer closed")

// ToneMap selects how normalized radiance becomes display bytes.
type ToneMap uint8

const (
	// HuePreserving divides the color by its peak channel and moves the
	// peak into alpha, so saturated light keeps its hue.
	HuePreserving ToneMap = iota
	// Clamp clamps every channel independently; alpha is the coverage.
	Clamp
)

// ParseToneMap maps a config name to a ToneMap.
func ParseToneMap(s string) (ToneMap, error) {
	switch s {
	case "", "hue", "hue-preserving":
		return HuePreserving, nil
	case "clamp":
		return Clamp, nil
	}
	return HuePreserving, fmt.Errorf("unknown tone map %q", s)
}

// Renderer tone-maps a World's buffer on a fixed pool of goroutines. Render
// never pauses emission: it reads the live buffer, so a frame may mix
// slightly different ray counts.
type Renderer struct {
	world   *World
	workers int
	ToneMap ToneMap

	tasks  chan func()
	wg     sync.WaitGroup
	closed atomic.Bool
}

// NewRenderer starts workers pool goroutines (one per CPU when <= 0).
func NewRenderer(w *World, workers int) *Renderer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	r := &Renderer{world: w, workers: workers, tasks: make(chan func(), workers)}
	r.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer r.wg.Done()
			for task := range r.tasks {
				task()
			}
		}()
	}
	return r
}

// Close stops the pool. Close is safe to call multiple times, but not
// concurrently with Render.
func (r *Renderer) Close() {
	if !r.closed.CompareAndSwap(false, true) {
		return
	}
	close(r.tasks)
	r.wg.Wait()
}

// Frame renders into a newly allocated image.
func (r *Renderer) Frame() (*image.NRGBA, error) {
	img := image.NewNRGBA(image.Rect(0, 0, r.world.Width, r.world.Height))
	if err := r.Render(img); err != nil {
		return nil, err
	}
	return img, nil
}

// Render tone-maps the whole buffer into dst, one contiguous chunk of pixels
// per worker, and returns when every chunk is done.
func (r *Renderer) Render(dst *image.NRGBA) error {
	if r.closed.Load() {
		return ErrRendererClosed
	}
	w, h := r.world.Width, r.world.Height
	if dst.Rect.Dx() != w || dst.Rect.Dy() != h || dst.Stride != 4*w {
		return fmt.Errorf("render target is %v stride %d, want %dx%d", dst.Rect, dst.Stride, w, h)
	}

	scale := 0.0
	if rays := r.world.RayCount(); rays > 0 {
		scale = r.world.Exposure() * float64(r.world.LightCount()) / float64(rays)
	}

	total := w * h
	chunks := r.workers
	if chunks > total {
		chunks = total
	}
	per, rem := total/chunks, total%chunks

	var done sync.WaitGroup
	done.Add(chunks)
	start := 0
	for i := 0; i < chunks; i++ {
		n := per
		if i < rem {
			n++
		}
		from, to := start, start+n
		start = to
		r.tasks <- func() {
			defer done.Done()
			r.toneMapRange(dst.Pix, from, to, scale)
		}
	}
	done.Wait()
	return nil
}

// toneMapRange converts pixels [from, to) of the flat buffer into pix.
func (r *Renderer) toneMapRange(pix []uint8, from, to int, scale float64) {
	acc := r.world.acc
	for i := from; i < to; i++ {
		base := i * Channels
		var v [Channels]float64
		for c := 0; c < Channels; c++ {
			v[c] = clamp01(acc.load(base+c) * scale)
		}
		out := toneMap(v, r.ToneMap)
		p := pix[i*4 : i*4+4 : i*4+4]
		p[0] = uint8(255 * out[0])
		p[1] = uint8(255 * out[1])
		p[2] = uint8(255 * out[2])
		p[3] = uint8(255 * out[3])
	}
}

// toneMap maps normalized, clamped (R, G, B, coverage) to display values in [0,1].
func toneMap(v [Channels]float64, op ToneMap) [Channels]float64 {
	if op == Clamp {
		return v
	}
	if v[ChR] == 0 && v[ChG] == 0 && v[ChB] == 0 {
		return [Channels]float64{0, 0, 0, v[ChCoverage]}
	}
	peak := v[ChR]
	if v[ChG] > peak {
		peak = v[ChG]
	}
	if v[ChB] > peak {
		peak = v[ChB]
	}
	return [Channels]float64{v[ChR] / peak, v[ChG] / peak, v[ChB] / peak, peak}
}
