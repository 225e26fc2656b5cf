package render

import (
	"math"

	"github.com/lixenwraith/globe/geo"
	"github.com/lixenwraith/globe/parameter"
)

// DrawDots renders the active LOD dot field with depth testing so the
// near hemisphere occludes the far one
func DrawDots(f *Frame, dots *PointBuffer) {
	if dots == nil {
		return
	}
	for i := range dots.pos {
		p := ToCameraSpace(dots.pos[i], f.View.Yaw, f.View.Pitch)
		x, y, depth, ok := f.Project(p)
		if !ok {
			continue
		}
		f.PlotDepth(x, y, depth, dots.color[i])
	}
}

// DrawBorders strokes the coastline segments over the dot field. Each
// segment is short (≤1.5° of arc) so linear interpolation between the
// projected endpoints is indistinguishable from the true arc.
func DrawBorders(f *Frame, borders *LineBuffer) {
	if borders == nil {
		return
	}
	for i := range borders.a {
		a := ToCameraSpace(borders.a[i], f.View.Yaw, f.View.Pitch)
		b := ToCameraSpace(borders.b[i], f.View.Yaw, f.View.Pitch)
		ax, ay, ad, okA := f.Project(a)
		bx, by, bd, okB := f.Project(b)
		if !okA || !okB {
			continue
		}
		steps := maxI(absI(bx-ax), absI(by-ay)) + 1
		for s := 0; s <= steps; s++ {
			t := float64(s) / float64(steps)
			x := ax + int(math.Round(float64(bx-ax)*t))
			y := ay + int(math.Round(float64(by-ay)*t))
			d := ad + (bd-ad)*t
			f.BlendDepth(x, y, d, parameter.BorderColor, parameter.BorderAlpha)
		}
	}
}

// DrawAtmosphere adds a faint rim glow just outside the globe disc. The
// disc radius in cells follows directly from the projection of a point
// at distance Zoom.
func DrawAtmosphere(f *Frame) {
	cx := float64(f.View.Width) / 2.0
	cy := float64(f.View.Height) / 2.0
	discR := f.focal * geo.SphereRadius / f.View.Zoom
	layers := []struct {
		scale     float64
		intensity float64
	}{
		{1.04, 0.07},
		{1.12, 0.03},
		{1.25, 0.015},
	}
	halo := RGB{R: 0, G: 60, B: 190}
	for y := 0; y < f.View.Height; y++ {
		for x := 0; x < f.View.Width; x++ {
			dx := (float64(x) - cx) / parameter.CellAspect
			dy := float64(y) - cy
			r := math.Sqrt(dx*dx + dy*dy)
			if r <= discR {
				continue
			}
			for _, l := range layers {
				if r <= discR*l.scale {
					f.Buf.AddBg(x, y, halo, l.intensity)
				}
			}
		}
	}
}

func absI(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxI(a, b int) int {
	if a > b {
		return a
	}
	return b
}
