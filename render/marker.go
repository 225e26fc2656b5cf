package render

import (
	"math"

	"github.com/lixenwraith/globe/parameter"
	"github.com/lixenwraith/globe/vmath"
)

// Pulse ring base radii in world units, sized for cell resolution
const (
	markerRing1 = 0.07
	markerRing2 = 0.12
)

// MarkerVisible reports whether the marker's camera-space depth
// component keeps it on the near hemisphere
func MarkerVisible(lat, lng, yaw, pitchDeg float64) bool {
	pos := vmath.LatLonToXYZ(lat, lng, parameter.MarkerRadius)
	cam := ToCameraSpace(pos, yaw, pitchDeg)
	return cam.Z >= parameter.MarkerDepthMin
}

// DrawMarker renders the location marker: a bright core cell plus two
// concentric pulse rings whose scale and opacity oscillate on
// independent sines of elapsed time. The animation is a pure function of
// the clock; there is no per-frame ring state to update.
func DrawMarker(f *Frame) {
	m := f.View.Marker
	if !m.Active {
		return
	}
	pos := vmath.LatLonToXYZ(m.Lat, m.Lng, parameter.MarkerRadius)
	cam := ToCameraSpace(pos, f.View.Yaw, f.View.Pitch)
	if cam.Z < parameter.MarkerDepthMin {
		return
	}
	cx, cy, depth, ok := f.Project(cam)
	if !ok {
		return
	}

	p1 := math.Sin(f.View.Now * parameter.MarkerPulseFreq1)
	p2 := math.Sin(f.View.Now*parameter.MarkerPulseFreq2 + parameter.MarkerPulsePhase2)

	// Core
	f.PlotDepth(cx, cy, depth-depthBias, m.Color)
	f.Buf.SetFg(cx, cy, '◉', RGB{R: 255, G: 255, B: 255})

	s := f.focal / depth
	r1 := markerRing1 * (1 + 0.45*p1) * s
	a1 := 0.5 + 0.35*math.Abs(p1)
	r2 := markerRing2 * (1 + 0.3*p2) * s
	a2 := 0.2 + 0.2*math.Abs(p2)
	drawRing(f, cx, cy, r1, m.Color, a1, depth)
	drawRing(f, cx, cy, r2, m.Color, a2, depth)
}

// drawRing strokes a screen-space circle by angular stepping; step count
// scales with radius so large rings stay closed
func drawRing(f *Frame, cx, cy int, radius float64, c RGB, alpha, depth float64) {
	if radius < 0.5 {
		return
	}
	steps := int(radius*8) + 8
	for i := 0; i < steps; i++ {
		ang := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(math.Round(math.Cos(ang)*radius*parameter.CellAspect))
		y := cy + int(math.Round(math.Sin(ang)*radius))
		f.BlendDepth(x, y, depth, c, alpha)
	}
}
