package render

import (
	"github.com/lixenwraith/globe/geo"
	"github.com/lixenwraith/globe/vmath"
)

// PointBuffer is a renderer-resident point array: positions and colors
// packed into flat slices the draw passes iterate without touching the
// source records again.
type PointBuffer struct {
	pos   []vmath.Vec3
	color []RGB
}

// Count returns the number of points
func (p *PointBuffer) Count() int {
	return len(p.pos)
}

func newPointBuffer(n int) *PointBuffer {
	return &PointBuffer{
		pos:   make([]vmath.Vec3, 0, n),
		color: make([]RGB, 0, n),
	}
}

// LineBuffer is a renderer-resident segment array
type LineBuffer struct {
	a, b []vmath.Vec3
}

// Count returns the number of segments
func (l *LineBuffer) Count() int {
	return len(l.a)
}

// Scene holds the uploaded geometry. Built exactly once per session from
// the worker's bundle, on the render goroutine; afterwards the bundle
// records are never read again.
type Scene struct {
	DotsLow  *PointBuffer
	DotsMed  *PointBuffer
	DotsHigh *PointBuffer
	Borders  *LineBuffer
	Stars    *PointBuffer
}

// Upload converts a geometry bundle into renderer-resident buffers. This
// is the terminal-backend equivalent of a GPU buffer upload and must run
// on the goroutine that owns the screen.
func Upload(bundle *geo.GeometryBundle) *Scene {
	return &Scene{
		DotsLow:  uploadDots(bundle.DotsLow),
		DotsMed:  uploadDots(bundle.DotsMed),
		DotsHigh: uploadDots(bundle.DotsHigh),
		Borders:  uploadBorders(bundle.Borders),
		Stars:    uploadStars(bundle.Stars),
	}
}

func uploadDots(dots []geo.DotRecord) *PointBuffer {
	pb := newPointBuffer(len(dots))
	for i := range dots {
		pb.pos = append(pb.pos, dots[i].Pos)
		pb.color = append(pb.color, dots[i].Color)
	}
	return pb
}

func uploadStars(stars []geo.StarRecord) *PointBuffer {
	pb := newPointBuffer(len(stars))
	for i := range stars {
		pb.pos = append(pb.pos, stars[i].Pos)
		pb.color = append(pb.color, stars[i].Color)
	}
	return pb
}

func uploadBorders(segs []geo.BorderSegment) *LineBuffer {
	lb := &LineBuffer{
		a: make([]vmath.Vec3, 0, len(segs)),
		b: make([]vmath.Vec3, 0, len(segs)),
	}
	for i := range segs {
		lb.a = append(lb.a, segs[i].A)
		lb.b = append(lb.b, segs[i].B)
	}
	return lb
}

// Dots returns the point buffer for a LOD
func (s *Scene) Dots(lod LOD) *PointBuffer {
	switch lod {
	case LODHigh:
		return s.DotsHigh
	case LODMed:
		return s.DotsMed
	default:
		return s.DotsLow
	}
}
