package engine

import (
	"math"

	"github.com/lixenwraith/globe/parameter"
	"github.com/lixenwraith/globe/vmath"
)

// RotationDir selects the idle auto-rotation direction
type RotationDir int

const (
	DirWestEast RotationDir = iota
	DirEastWest
	DirStopped
)

// String returns the display name
func (d RotationDir) String() string {
	switch d {
	case DirEastWest:
		return "east-west"
	case DirStopped:
		return "stopped"
	default:
		return "west-east"
	}
}

// CameraState is the orbital camera. Yaw is radians, pitch is degrees;
// the mixed units come from drag mapping horizontal cells to radians and
// vertical cells to degrees with separate factors. Mutated only on the
// render goroutine.
type CameraState struct {
	Zoom  float64 // distance from origin, clamped [ZoomMin, ZoomMax]
	Yaw   float64
	Pitch float64 // clamped [-PitchLimit, PitchLimit]

	// Residual drag velocity feeding momentum after release
	VelYaw   float64
	VelPitch float64

	Dragging bool
}

// NewCameraState returns a camera at the startup distance
func NewCameraState() CameraState {
	return CameraState{Zoom: parameter.ZoomDefault}
}

// Tick applies auto-rotation and momentum for one frame. While dragging,
// the input handler owns yaw/pitch directly and this is a no-op.
func (c *CameraState) Tick(dir RotationDir) {
	if c.Dragging {
		return
	}
	switch dir {
	case DirWestEast:
		c.Yaw += parameter.AutoRotateStep
	case DirEastWest:
		c.Yaw -= parameter.AutoRotateStep
	}
	c.VelYaw *= parameter.MomentumDecay
	c.VelPitch *= parameter.MomentumDecay
	c.Yaw += c.VelYaw
	c.Pitch = vmath.Clamp(c.Pitch+c.VelPitch, -parameter.PitchLimit, parameter.PitchLimit)
}

// StartDrag begins a drag gesture, killing any residual momentum
func (c *CameraState) StartDrag() {
	c.Dragging = true
	c.VelYaw = 0
	c.VelPitch = 0
}

// DragBy applies a drag delta in cells. The per-frame delta is also
// retained as velocity so releasing mid-swipe hands the motion to
// momentum.
func (c *CameraState) DragBy(dx, dy int) {
	c.Yaw += float64(dx) * parameter.DragYawFactor
	c.Pitch = vmath.Clamp(c.Pitch+float64(dy)*parameter.DragPitchFactor,
		-parameter.PitchLimit, parameter.PitchLimit)
	c.VelYaw = float64(dx) * parameter.DragYawFactor
	c.VelPitch = float64(dy) * parameter.DragPitchFactor
}

// EndDrag releases the gesture; the last DragBy delta remains as the
// momentum seed
func (c *CameraState) EndDrag() {
	c.Dragging = false
}

// ZoomBy moves the camera by wheel notches, positive zooming in
func (c *CameraState) ZoomBy(notches float64) {
	c.Zoom = vmath.Clamp(c.Zoom-notches*parameter.ZoomStep,
		parameter.ZoomMin, parameter.ZoomMax)
}

// Recenter points the camera at a geographic coordinate, used when the
// location marker arrives
func (c *CameraState) Recenter(lat, lng float64) {
	c.Yaw = -vmath.Radians(lng+180.0) + math.Pi
	c.Pitch = vmath.Clamp(-lat*0.5, -parameter.PitchLimit, parameter.PitchLimit)
	c.VelYaw = 0
	c.VelPitch = 0
}
