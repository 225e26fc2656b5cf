package parameter

import "time"

// Render loop timing
const (
	// FramePeriod is the fixed render tick; all per-tick rate constants
	// (AutoRotateStep, MomentumDecay, MoonOrbitStep) are tuned against it
	FramePeriod = 16 * time.Millisecond

	// HUDRefreshEvery throttles stats panel recomputation in ticks
	HUDRefreshEvery = 30
)

// Projection
const (
	// FOVDegrees is the vertical field of view of the perspective
	// projection
	FOVDegrees = 45.0

	// CellAspect doubles horizontal extent since terminal cells are
	// roughly twice as tall as wide
	CellAspect = 2.0

	// DepthEpsilon rejects samples that project behind the camera
	DepthEpsilon = 0.05
)

// Day/night terminator
const (
	// TerminatorBands is the latitude band count of the shading shell
	TerminatorBands = 48

	// TerminatorGain scales the sun-normal dot product before clamping
	TerminatorGain = 1.5

	// TerminatorMaxAlpha caps night darkness so the night side stays
	// readable
	TerminatorMaxAlpha = 0.75
)

// Sun direction in world space, normalized at use
var SunDirection = [3]float64{11.0, 3.0, 5.0}

// Marker
const (
	// MarkerRadius lifts the marker off the border shell
	MarkerRadius = 1.02

	// MarkerDepthMin hides the marker once it rotates past the limb onto
	// the far hemisphere
	MarkerDepthMin = 0.05

	// Pulse ring oscillators: two independent sines so the rings never
	// sync up visually
	MarkerPulseFreq1  = 2.5
	MarkerPulseFreq2  = 1.75
	MarkerPulsePhase2 = 1.0
)

// Moon
const (
	MoonOrbitRadius = 2.0
	MoonOrbitStep   = 0.004
	MoonBobFreq     = 0.2
	MoonBobAmp      = 0.3
	MoonRadius      = 0.06
)
