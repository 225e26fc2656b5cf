package render

import (
	"math"

	"github.com/lixenwraith/globe/parameter"
	"github.com/lixenwraith/globe/vmath"
)

// MoonPosition returns the camera-space moon center for an orbit angle:
// circular parametric motion in the XZ plane with a slow vertical bob
func MoonPosition(angle float64) vmath.Vec3 {
	return vmath.Vec3{
		X: math.Cos(angle) * parameter.MoonOrbitRadius,
		Y: math.Sin(angle*parameter.MoonBobFreq) * parameter.MoonBobAmp,
		Z: math.Sin(angle) * parameter.MoonOrbitRadius,
	}
}

// DrawMoon renders the orbiting moon as a small lit disc with a halo,
// shaded by the fixed sun direction
func DrawMoon(f *Frame) {
	if !f.View.MoonEnabled {
		return
	}
	center := MoonPosition(f.View.MoonAngle)
	cx, cy, depth, ok := f.Project(center)
	if !ok {
		return
	}
	sun := SunDirection()
	s := f.focal / depth
	rCells := parameter.MoonRadius * s
	if rCells < 0.5 {
		f.PlotDepth(cx, cy, depth, parameter.MoonBody)
		return
	}
	glowR := rCells * 1.8
	minX := cx - int(glowR*parameter.CellAspect) - 1
	maxX := cx + int(glowR*parameter.CellAspect) + 1
	minY := cy - int(glowR) - 1
	maxY := cy + int(glowR) + 1
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			nx := float64(x-cx) / parameter.CellAspect / rCells
			ny := float64(cy-y) / rCells
			distSq := nx*nx + ny*ny
			if distSq <= 1.0 {
				// Lambert shading off the visible hemisphere normal
				nz := math.Sqrt(1.0 - distSq)
				lit := vmath.V3Dot(vmath.Vec3{X: nx, Y: ny, Z: nz}, sun)
				if lit < 0.08 {
					lit = 0.08
				}
				f.PlotDepth(x, y, depth, Scale(parameter.MoonBody, lit))
			} else if distSq <= 3.24 {
				fall := math.Exp(-(math.Sqrt(distSq) - 1.0) * 3.0)
				f.Buf.AddBg(x, y, parameter.MoonHalo, fall*0.06)
			}
		}
	}
}
