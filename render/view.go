package render

import (
	"math"

	"github.com/lixenwraith/globe/parameter"
	"github.com/lixenwraith/globe/vmath"
)

// MarkerView is the marker state the frame needs for drawing
type MarkerView struct {
	Active   bool
	Lat, Lng float64
	Color    RGB
}

// View is everything the draw passes need for one frame, assembled by
// the engine's per-tick update. Pitch is in degrees, yaw in radians,
// matching the camera state they are copied from.
type View struct {
	Width, Height int

	Yaw   float64
	Pitch float64
	Zoom  float64

	// Star frame follows the globe when coupling is on, decays toward
	// rest otherwise
	StarYaw   float64
	StarPitch float64

	SunEnabled  bool
	MoonEnabled bool
	MoonAngle   float64

	// Now is elapsed seconds, driving the state-free pulse animation
	Now float64

	LOD    LOD
	Marker MarkerView
}

// ToCameraSpace rotates a model-space point into camera space by the
// current yaw then pitch. The same transform orients geometry, the
// marker visibility test, and (applied to the sun vector) the
// terminator, so they can never drift apart.
func ToCameraSpace(v vmath.Vec3, yaw, pitchDeg float64) vmath.Vec3 {
	return vmath.RotateX(vmath.RotateY(v, yaw), -vmath.Radians(pitchDeg))
}

// Frame is the per-tick rasterization state: the composited cell buffer
// plus a depth buffer over the globe viewport
type Frame struct {
	Buf   *Buffer
	View  View
	zbuf  []float64
	focal float64
}

// NewFrame prepares a frame over the buffer for the given view
func NewFrame(buf *Buffer, view View) *Frame {
	f := &Frame{Buf: buf, View: view}
	size := view.Width * view.Height
	f.zbuf = make([]float64, size)
	for i := range f.zbuf {
		f.zbuf[i] = math.Inf(1)
	}
	// Vertical FOV fixed; focal length in cells follows terminal height
	f.focal = float64(view.Height) / 2.0 / math.Tan(vmath.Radians(parameter.FOVDegrees/2))
	return f
}

// Project maps a camera-space point to cell coordinates and its distance
// from the camera. ok is false behind the camera.
func (f *Frame) Project(p vmath.Vec3) (x, y int, depth float64, ok bool) {
	depth = f.View.Zoom - p.Z
	if depth < parameter.DepthEpsilon {
		return 0, 0, 0, false
	}
	s := f.focal / depth
	fx := float64(f.View.Width)/2.0 + p.X*s*parameter.CellAspect
	fy := float64(f.View.Height)/2.0 - p.Y*s
	return int(fx), int(fy), depth, true
}

// PlotDepth writes an opaque cell if it wins the depth test. The write
// claims the whole cell, wiping any star glyph drawn there earlier:
// foreground runes have no depth of their own, so surface fragments must
// occlude them explicitly.
func (f *Frame) PlotDepth(x, y int, depth float64, c RGB) {
	if x < 0 || x >= f.View.Width || y < 0 || y >= f.View.Height {
		return
	}
	idx := y*f.View.Width + x
	if depth >= f.zbuf[idx] {
		return
	}
	f.zbuf[idx] = depth
	f.Buf.SetCell(x, y, c)
}

// BlendDepth alpha-blends if the fragment is not behind what is already
// plotted; it does not claim the cell's depth, so translucent overlays
// stack without occluding
func (f *Frame) BlendDepth(x, y int, depth float64, c RGB, alpha float64) {
	if x < 0 || x >= f.View.Width || y < 0 || y >= f.View.Height {
		return
	}
	idx := y*f.View.Width + x
	if depth > f.zbuf[idx]+depthBias {
		return
	}
	f.Buf.BlendBg(x, y, c, alpha)
}

// depthBias keeps coplanar overlay fragments (borders over dots,
// terminator over both) from being rejected by their own base surface
const depthBias = 0.02
