package photons2d

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
)

// ErrInvalidConfig wraps every validation failure of a scene file.
var ErrInvalidConfig = errors.New("invalid scene config")

type SegmentCfg struct {
	P1       Vector2 `json:"p1"`
	P2       Vector2 `json:"p2"`
	Diffuse  float64 `json:"diffuse"`
	Reflect  float64 `json:"reflect"`
	Transmit float64 `json:"transmit"`
}

type LightCfg struct {
	Kind         string  `json:"kind"` // omni | absolute | natural
	Position     Vector2 `json:"position"`
	Color        Color   `json:"color"`
	DirectionDeg float64 `json:"directionDeg,omitempty"`
	Spread       float64 `json:"spread,omitempty"`
}

type Config struct {
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	Exposure   *float64     `json:"exposure,omitempty"` // nil = DefaultExposure; 0 is a valid gain
	Workers    int          `json:"workers,omitempty"`
	Seed       int64        `json:"seed,omitempty"`
	MaxBounces int          `json:"maxBounces,omitempty"`
	ToneMap    string       `json:"toneMap,omitempty"`
	Segments   []SegmentCfg `json:"segments,omitempty"`
	Lights     []LightCfg   `json:"lights"`
}

// DefaultConfig is the classic three-light box: red, green and blue
// omnidirectional lights among four diffuse walls.
func DefaultConfig() *Config {
	exposure := float64(DefaultExposure)
	return &Config{
		Width:    WorldWidth,
		Height:   WorldHeight,
		Exposure: &exposure,
		Segments: []SegmentCfg{
			{P1: Vec(400, 200), P2: Vec(500, 100), Diffuse: 1},
			{P1: Vec(700, 200), P2: Vec(900, 300), Diffuse: 1},
			{P1: Vec(100, 500), P2: Vec(200, 300), Diffuse: 1},
			{P1: Vec(430, 500), P2: Vec(570, 500), Diffuse: 1},
		},
		Lights: []LightCfg{
			{Kind: "omni", Position: Vec(400, 386), Color: RGB(1, 0, 0)},
			{Kind: "omni", Position: Vec(600, 386), Color: RGB(0, 1, 0)},
			{Kind: "omni", Position: Vec(500, 214), Color: RGB(0, 0, 1)},
		},
	}
}

// Policy builds the emission policy named by Kind.
func (lc LightCfg) Policy() (EmissionPolicy, error) {
	dir := lc.DirectionDeg * math.Pi / 180
	switch strings.ToLower(lc.Kind) {
	case "", "omni", "omnidirectional":
		return Omnidirectional{}, nil
	case "absolute", "directional-absolute":
		return DirectionalAbsolute{Direction: dir}, nil
	case "natural", "natural-directional":
		return NaturalDirectional{Direction: dir, Spread: lc.Spread}, nil
	}
	return nil, fmt.Errorf("%w: unknown light kind %q", ErrInvalidConfig, lc.Kind)
}

// Build validates and constructs the runtime light.
func (lc LightCfg) Build() (*LightSource, error) {
	p, err := lc.Policy()
	if err != nil {
		return nil, err
	}
	c := lc.Color
	if c.A == 0 {
		c.A = 1
	}
	return NewLight(lc.Position, c, p)
}

// Build constructs the runtime segment. Invalid coefficients are corrected,
// not rejected.
func (sc SegmentCfg) Build() *Segment {
	return NewSegment(sc.P1, sc.P2, sc.Diffuse, sc.Reflect, sc.Transmit)
}

// ParseConfig decodes a scene and fills defaults.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	// Defaults / validation
	if cfg.Width == 0 {
		cfg.Width = WorldWidth
	}
	if cfg.Height == 0 {
		cfg.Height = WorldHeight
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, fmt.Errorf("%w: world size %dx%d", ErrInvalidConfig, cfg.Width, cfg.Height)
	}
	if cfg.Exposure == nil {
		exposure := float64(DefaultExposure)
		cfg.Exposure = &exposure
	}
	if cfg.MaxBounces < 0 {
		cfg.MaxBounces = MaxBounces
	}
	if _, err := ParseToneMap(cfg.ToneMap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if len(cfg.Lights) == 0 {
		return nil, fmt.Errorf("%w: config has no lights", ErrInvalidConfig)
	}
	return &cfg, nil
}

// LoadConfig reads a scene file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debugf("Loaded config from %s: size=(%d, %d), segments=%d, lights=%d, exposure=%g",
		path, cfg.Width, cfg.Height, len(cfg.Segments), len(cfg.Lights), *cfg.Exposure)
	return cfg, nil
}

// Build constructs the world described by the config. No emitter is
// running yet, so the per-mutation pauses are uncontended.
func (cfg *Config) Build() (*World, error) {
	w := NewWorld(cfg.Width, cfg.Height)
	if cfg.Exposure != nil {
		w.SetExposure(*cfg.Exposure)
	}
	w.MaxBounces = cfg.MaxBounces
	for _, sc := range cfg.Segments {
		w.AddSegment(sc.Build())
	}
	for i, lc := range cfg.Lights {
		l, err := lc.Build()
		if err != nil {
			return nil, fmt.Errorf("light #%d: %w", i, err)
		}
		if err := w.AddLight(l); err != nil {
			return nil, fmt.Errorf("%w: light #%d: %v", ErrInvalidConfig, i, err)
		}
	}
	return w, nil
}
