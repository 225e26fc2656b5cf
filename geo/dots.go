package geo

import (
	"math"

	"github.com/lixenwraith/globe/vmath"
)

// SphereRadius is the unit globe radius all geometry is generated against
const SphereRadius = 1.0

// Dot field angular resolutions in degrees per sample
const (
	ResLow  = 3.0
	ResMed  = 2.0
	ResHigh = 1.2
)

// DotRecord is one sampled point of the globe surface
type DotRecord struct {
	Pos   vmath.Vec3
	Color RGB
}

// DotCount returns the deterministic sample count for a resolution:
// ceil(360/res) longitude columns by ceil(181/res) latitude rows
func DotCount(res float64) int {
	return int(math.Ceil(360.0/res)) * int(math.Ceil(181.0/res))
}

// GenerateDots samples the mask at angular resolution res, latitude rows
// outer over [-90,90], longitude inner over [-180,180). Each sample is
// projected to the unit sphere and colored by classification. The output
// length always equals DotCount(res).
func GenerateDots(mask *LandMask, res float64) []DotRecord {
	nLat := int(math.Ceil(181.0 / res))
	nLng := int(math.Ceil(360.0 / res))
	dots := make([]DotRecord, 0, nLat*nLng)
	for i := 0; i < nLat; i++ {
		lat := -90.0 + float64(i)*res
		for j := 0; j < nLng; j++ {
			lng := -180.0 + float64(j)*res
			color := WaterColor
			if mask.Lookup(lat, lng) {
				color = LandColor
			}
			dots = append(dots, DotRecord{
				Pos:   vmath.LatLonToXYZ(lat, lng, SphereRadius),
				Color: color,
			})
		}
	}
	return dots
}
