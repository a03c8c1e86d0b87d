package photons2d

import plog "github.com/lukaszgryglicki/photons2d/internal/log"

var (
	logger = plog.New("photons2d")

	// Compile time checks for the closed set of emission policies.
	_ EmissionPolicy = Omnidirectional{}
	_ EmissionPolicy = DirectionalAbsolute{}
	_ EmissionPolicy = NaturalDirectional{}
)
