package parameter

// Camera and input tuning
const (
	// ZoomMin and ZoomMax clamp camera distance; below ZoomMin the dot
	// shell fills the viewport, beyond ZoomMax the globe is a speck
	ZoomMin = 1.3
	ZoomMax = 5.5

	// ZoomDefault is the startup camera distance
	ZoomDefault = 2.9

	// ZoomStep is distance change per wheel notch
	ZoomStep = 0.15

	// PitchLimit clamps pitch in degrees; at 90 the yaw axis degenerates
	PitchLimit = 89.0

	// DragYawFactor converts horizontal drag cells to yaw radians
	DragYawFactor = 0.005

	// DragPitchFactor converts vertical drag cells to pitch degrees
	DragPitchFactor = 0.3

	// AutoRotateStep is yaw radians added per tick while not dragging
	AutoRotateStep = 0.004

	// MomentumDecay multiplies residual drag velocity each tick
	MomentumDecay = 0.93

	// StarDecay pulls the decoupled star frame toward rest each tick
	// when star-drag coupling is disabled
	StarDecay = 0.96
)

// LOD selection thresholds on camera distance
const (
	LODHighMax = 1.8 // distance <  1.8 → high
	LODMedMax  = 3.2 // distance <  3.2 → med, else low
)
