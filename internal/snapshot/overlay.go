package snapshot

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/lukaszgryglicki/photons2d/internal/photons2d"
)

// Overlay draws the scene geometry over a rendered frame: walls as thin
// lines tinted by their dominant interaction, lights as small discs in
// their own color. The frame is first flattened onto black. The boundary
// walls are skipped.
func Overlay(frame image.Image, w *photons2d.World) (image.Image, error) {
	dc := gg.NewContextForImage(flatten(frame))
	defer dc.Close()
	dc.SetLineWidth(1)
	for i, s := range w.Segments() {
		if i < 4 {
			continue
		}
		r, g, bl := segmentTint(s)
		dc.SetRGBA(r, g, bl, 0.8)
		dc.DrawLine(s.P1.X, s.P1.Y, s.P2.X, s.P2.Y)
		if err := dc.Stroke(); err != nil {
			return nil, err
		}
	}
	for _, l := range w.Lights() {
		c := l.Color
		peak := max(c.R, c.G, c.B, 1)
		dc.SetRGBA(c.R/peak, c.G/peak, c.B/peak, 1)
		dc.DrawCircle(l.Position.X, l.Position.Y, 3)
		if err := dc.Fill(); err != nil {
			return nil, err
		}
	}
	return dc.Image(), nil
}

// segmentTint: diffuse white, mirror cyan, transmissive yellow, absorber grey.
func segmentTint(s *photons2d.Segment) (r, g, b float64) {
	switch {
	case s.Diffuse >= s.Reflect && s.Diffuse >= s.Transmit && s.Diffuse > 0:
		return 1, 1, 1
	case s.Reflect >= s.Transmit && s.Reflect > 0:
		return 0, 1, 1
	case s.Transmit > 0:
		return 1, 1, 0
	}
	return 0.5, 0.5, 0.5
}
