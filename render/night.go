package render

import (
	"math"

	"github.com/lixenwraith/globe/geo"
	"github.com/lixenwraith/globe/parameter"
	"github.com/lixenwraith/globe/vmath"
)

// SunDirection returns the normalized world-space sun vector
func SunDirection() vmath.Vec3 {
	return vmath.V3Normalize(vmath.Vec3{
		X: parameter.SunDirection[0],
		Y: parameter.SunDirection[1],
		Z: parameter.SunDirection[2],
	})
}

// TerminatorAlpha computes night-side darkness for a surface normal
// against the sun direction expressed in the globe's local frame:
// clamp(-dot * gain, 0, max). Zero on the lit hemisphere, ramping to the
// cap once the normal faces fully away.
func TerminatorAlpha(normal, lightLocal vmath.Vec3) float64 {
	return vmath.Clamp(-vmath.V3Dot(normal, lightLocal)*parameter.TerminatorGain,
		0, parameter.TerminatorMaxAlpha)
}

// DrawTerminator overlays day/night shading. The shading shell is a
// sphere of TerminatorBands latitude bands; each band vertex's normal is
// dotted with the sun vector rotated into the local frame by the same
// yaw/pitch transform the geometry uses, so the boundary stays glued to
// the globe as it spins.
func DrawTerminator(f *Frame) {
	if !f.View.SunEnabled {
		return
	}
	lightLocal := ToCameraSpace(SunDirection(), f.View.Yaw, f.View.Pitch)

	n := parameter.TerminatorBands
	for i := 0; i < n; i++ {
		lat0 := math.Pi * (-0.5 + float64(i)/float64(n))
		lat1 := math.Pi * (-0.5 + float64(i+1)/float64(n))
		z0, zr0 := math.Sin(lat0)*geo.SphereRadius, math.Cos(lat0)*geo.SphereRadius
		z1, zr1 := math.Sin(lat1)*geo.SphereRadius, math.Cos(lat1)*geo.SphereRadius
		for j := 0; j <= n; j++ {
			ang := 2 * math.Pi * float64(j) / float64(n)
			c, s := math.Cos(ang), math.Sin(ang)
			for _, row := range [2][2]float64{{z0, zr0}, {z1, zr1}} {
				v := vmath.Vec3{X: c * row[1], Y: s * row[1], Z: row[0]}
				alpha := TerminatorAlpha(v, lightLocal)
				if alpha <= 0 {
					continue
				}
				pc := ToCameraSpace(v, f.View.Yaw, f.View.Pitch)
				x, y, depth, ok := f.Project(pc)
				if !ok {
					continue
				}
				f.BlendDepth(x, y, depth, parameter.NightTint, alpha)
			}
		}
	}
}
