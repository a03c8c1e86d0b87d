package photons2d

import (
	"errors"
	"math"
	"math/rand"
	"sync/atomic"
)

// EmissionPolicy decides the directions of the rays a light emits. The set
// of policies is closed: Omnidirectional, DirectionalAbsolute and
// NaturalDirectional.
type EmissionPolicy interface {
	// emit appends up to budget unit directions to dst.
	emit(rng *rand.Rand, budget int, dst []Vector2) []Vector2
	Kind() string
}

// Omnidirectional emits uniformly over [0, 2π).
type Omnidirectional struct{}

func (Omnidirectional) Kind() string { return "omni" }

func (Omnidirectional) emit(rng *rand.Rand, budget int, dst []Vector2) []Vector2 {
	for i := 0; i < budget; i++ {
		dst = append(dst, Polar(2*math.Pi*rng.Float64(), 1))
	}
	return dst
}

// DirectionalAbsolute carries a nominal direction but emits nothing.
type DirectionalAbsolute struct {
	Direction float64 // radians
}

func (DirectionalAbsolute) Kind() string { return "absolute" }

func (DirectionalAbsolute) emit(_ *rand.Rand, _ int, dst []Vector2) []Vector2 { return dst }

// NaturalDirectional concentrates rays around Direction with a long tail:
// offset = ±u^Spread/(u-1) for uniform u.
type NaturalDirectional struct {
	Direction float64 // radians
	Spread    float64
}

func (NaturalDirectional) Kind() string { return "natural" }

func (n NaturalDirectional) emit(rng *rand.Rand, budget int, dst []Vector2) []Vector2 {
	for i := 0; i < budget; i++ {
		dst = append(dst, Polar(n.Direction+naturalOffset(rng, n.Spread), 1))
	}
	return dst
}

// naturalOffset warps one uniform variate into an angular offset; a fair
// coin picks the side.
func naturalOffset(rng *rand.Rand, spread float64) float64 {
	u := rng.Float64()
	off := math.Pow(u, spread) / (u - 1)
	if rng.Intn(2) == 0 {
		off = -off
	}
	return off
}

// LightSource is a point light with a fixed color and an emission policy.
type LightSource struct {
	Position Vector2
	Color    Color
	Policy   EmissionPolicy

	emitted atomic.Int64
}

// NewLight validates and constructs a light. Colors are floored at zero;
// a NaturalDirectional policy without a spread gets NaturalSpread.
func NewLight(pos Vector2, color Color, policy EmissionPolicy) (*LightSource, error) {
	if policy == nil {
		return nil, errors.New("light needs an emission policy")
	}
	if !isFinite(pos.X) || !isFinite(pos.Y) {
		return nil, errors.New("light position must be finite")
	}
	if n, ok := policy.(NaturalDirectional); ok && n.Spread <= 0 {
		n.Spread = NaturalSpread
		policy = n
	}
	l := &LightSource{Position: pos, Color: color.clamp0(), Policy: policy}
	logger.Debugf("Created %s light at %v color=%+v", policy.Kind(), pos, l.Color)
	return l, nil
}

// Emit appends the directions of up to budget rays to dst and bumps the
// light's emitted counter by the number actually produced.
func (l *LightSource) Emit(rng *rand.Rand, budget int, dst []Vector2) []Vector2 {
	n := len(dst)
	dst = l.Policy.emit(rng, budget, dst)
	if k := len(dst) - n; k > 0 {
		l.emitted.Add(int64(k))
	}
	return dst
}

// Emitted returns the number of rays emitted since the last scene reset.
func (l *LightSource) Emitted() int64 { return l.emitted.Load() }
