package geo

import (
	"github.com/lixenwraith/globe/vmath"
)

// Border extraction parameters
const (
	// BorderRes is the scan resolution in degrees; coarser than the high
	// LOD dot field since borders only trace mask discontinuities
	BorderRes = 1.5

	// BorderRadius lifts segments slightly off the dot shell so lines do
	// not z-fight with the dots underneath
	BorderRadius = SphereRadius + 0.005
)

// BorderSegment is a single 2-point coastline line segment
type BorderSegment struct {
	A, B vmath.Vec3
}

// ExtractBorders scans the mask on a 1.5° grid and emits a segment
// wherever a sample's mask cell disagrees with the adjacent cell one
// bucket east (wrapping at ±180) or one bucket south (clamping at the
// pole). The comparison is between adjacent 1° cells, not between scan
// samples: the 1.5° stride may land two samples in non-neighboring
// buckets, and a coastline in the skipped bucket must still be found. An
// east flip produces a meridian-aligned segment, a south flip a
// parallel-aligned one. When the mask is uniform the result is a single
// degenerate segment so consumers never see an empty buffer.
func ExtractBorders(mask *LandMask) []BorderSegment {
	var segs []BorderSegment
	nLat := scanSteps(-88.0, 89.0, BorderRes)
	nLng := scanSteps(-180.0, 179.0, BorderRes)
	for i := 0; i < nLat; i++ {
		lat := -88.0 + float64(i)*BorderRes
		for j := 0; j < nLng; j++ {
			lng := -180.0 + float64(j)*BorderRes
			li, la := Buckets(lat, lng)
			east := (li + 1) % MaskWidth
			south := minInt(MaskHeight-1, la+1)
			cur := mask.At(li, la)
			// East flip: border runs along the meridian
			if cur != mask.At(east, la) {
				segs = append(segs, BorderSegment{
					A: vmath.LatLonToXYZ(lat, lng, BorderRadius),
					B: vmath.LatLonToXYZ(lat+BorderRes, lng, BorderRadius),
				})
			}
			// South flip: border runs along the parallel
			if cur != mask.At(li, south) {
				segs = append(segs, BorderSegment{
					A: vmath.LatLonToXYZ(lat, lng, BorderRadius),
					B: vmath.LatLonToXYZ(lat, lng+BorderRes, BorderRadius),
				})
			}
		}
	}
	if len(segs) == 0 {
		return []BorderSegment{{}}
	}
	return segs
}

// scanSteps counts grid values start+k*step strictly below stop
func scanSteps(start, stop, step float64) int {
	n := 0
	for v := start; v < stop; v += step {
		n++
	}
	return n
}
