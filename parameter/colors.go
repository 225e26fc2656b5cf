package parameter

import "github.com/lixenwraith/globe/geo"

// Display palette. Land/water dot colors live in package geo since they
// are baked into the generated records.
var (
	// Background is the deep-space backdrop
	Background = geo.RGB{R: 1, G: 4, B: 9}

	// BorderColor is the coastline stroke, blended at BorderAlpha
	BorderColor = geo.RGB{R: 0, G: 255, B: 222}

	// NightTint is the terminator overlay color
	NightTint = geo.RGB{R: 0, G: 3, B: 10}

	// Marker colors by location source
	MarkerGPS = geo.RGB{R: 0, G: 255, B: 231}
	MarkerIP  = geo.RGB{R: 255, G: 195, B: 0}

	// Sun glow layers, innermost first
	SunCore = geo.RGB{R: 255, G: 255, B: 222}
	SunHalo = geo.RGB{R: 255, G: 191, B: 69}

	// Moon body and halo
	MoonBody = geo.RGB{R: 178, G: 178, B: 204}
	MoonHalo = geo.RGB{R: 171, G: 186, B: 204}

	// HUD colors
	HUDAccent = geo.RGB{R: 0, G: 255, B: 231}
	HUDAmber  = geo.RGB{R: 255, G: 195, B: 0}
	HUDDim    = geo.RGB{R: 42, G: 64, B: 96}
	HUDText   = geo.RGB{R: 160, G: 196, B: 224}
)

// BorderAlpha is the coastline blend opacity
const BorderAlpha = 0.32
