package photons2d

import "time"

// Channel indices for readability.
const (
	ChR        = 0
	ChG        = 1
	ChB        = 2
	ChCoverage = 3
	Channels   = 4

	WorldWidth      = 1000
	WorldHeight     = 600
	DefaultExposure = 500
	NaturalSpread   = 100 // NaturalDirectional spread when the scene leaves it unset
	MaxBounces      = 0   // 0 = trace until absorbed
	SceneFile       = "scenes/photons2d.json"
	SnapshotDir     = "PhotonBox Screenshots"
	FPS             = 60
	BenchDuration   = 2 * time.Second

	// per-worker seed mixing
	goldenGamma = 0x9e3779b97f4a7c15
)
