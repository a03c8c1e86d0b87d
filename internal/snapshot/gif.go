package snapshot

import (
	"errors"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"
	"sync"
)

// Recorder collects frames for an animated GIF. Frames are quantized to
// the Plan9 palette with Floyd-Steinberg dithering as they arrive, so the
// caller may reuse its frame buffer. Safe for concurrent use.
type Recorder struct {
	// Delay between frames in 100ths of a second (5 => 20 fps).
	Delay int
	// MaxFrames > 0 caps the recording; later frames are dropped.
	MaxFrames int

	mu  sync.Mutex
	out gif.GIF
}

// NewRecorder returns a looping recorder.
func NewRecorder(delay, maxFrames int) *Recorder {
	if delay <= 0 {
		delay = 5
	}
	return &Recorder{Delay: delay, MaxFrames: maxFrames}
}

// Add appends one frame and reports whether it was kept. Transparent
// pixels are flattened onto black first.
func (r *Recorder) Add(frame image.Image) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.MaxFrames > 0 && len(r.out.Image) >= r.MaxFrames {
		return false
	}
	flat := flatten(frame)
	rect := flat.Bounds()
	p := image.NewPaletted(rect, palette.Plan9)
	draw.FloydSteinberg.Draw(p, rect, flat, image.Point{})
	r.out.Image = append(r.out.Image, p)
	r.out.Delay = append(r.out.Delay, r.Delay)
	if len(r.out.Image)%100 == 0 {
		logger.Debugf("GIF: %d frames recorded", len(r.out.Image))
	}
	return true
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.out.Image)
}

// Save writes the recording to path.
func (r *Recorder) Save(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.out.Image) == 0 {
		return errors.New("no frames recorded")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := gif.EncodeAll(f, &r.out); err != nil {
		return err
	}
	logger.Infof("Saved %d-frame GIF to %s", len(r.out.Image), path)
	return nil
}
