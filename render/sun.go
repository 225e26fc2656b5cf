package render

import (
	"math"

	"github.com/lixenwraith/globe/parameter"
	"github.com/lixenwraith/globe/vmath"
)

// sunSprite is the fixed camera-space position of the glow sprite; the
// lighting direction itself is parameter.SunDirection
var sunSprite = vmath.Vec3{X: 5.5, Y: 1.5, Z: 2.5}

// DrawSun paints the layered additive sun glow. The sprite lives in
// camera space, not model space, so it never rotates with the globe.
func DrawSun(f *Frame) {
	if !f.View.SunEnabled {
		return
	}
	cx, cy, _, ok := f.Project(sunSprite)
	if !ok {
		return
	}
	depth := f.View.Zoom - sunSprite.Z
	s := f.focal / depth
	layers := []struct {
		radius    float64 // world units
		color     RGB
		intensity float64
	}{
		{0.12, parameter.SunCore, 0.9},
		{0.22, parameter.SunHalo, 0.3},
		{0.38, parameter.SunHalo, 0.12},
		{0.60, parameter.SunHalo, 0.05},
	}
	maxR := layers[len(layers)-1].radius * s
	minX := cx - int(maxR*parameter.CellAspect) - 1
	maxX := cx + int(maxR*parameter.CellAspect) + 1
	minY := cy - int(maxR) - 1
	maxY := cy + int(maxR) + 1
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float64(x-cx) / parameter.CellAspect
			dy := float64(y - cy)
			r := math.Sqrt(dx*dx+dy*dy) / s
			for _, l := range layers {
				if r <= l.radius {
					f.Buf.AddBg(x, y, l.color, l.intensity)
				}
			}
		}
	}
}
