package photons2d

// Color is a linear per-photon energy weight. Channels are unbounded and
// non-negative; it is not a display color.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a,omitempty"`
}

// RGB returns an opaque Color.
func RGB(r, g, b float64) Color { return Color{r, g, b, 1} }

// clamp0 floors each channel at zero (negative energy is meaningless).
func (c Color) clamp0() Color {
	cl := func(x float64) float64 {
		if x < 0 || !isFinite(x) {
			return 0
		}
		return x
	}
	return Color{cl(c.R), cl(c.G), cl(c.B), cl(c.A)}
}

// Scale multiplies the color channels (not alpha) by s.
func (c Color) Scale(s float64) Color { return Color{c.R * s, c.G * s, c.B * s, c.A} }

// Sum returns R+G+B.
func (c Color) Sum() float64 { return c.R + c.G + c.B }
