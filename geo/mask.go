package geo

import (
	"math"
)

// Land mask grid dimensions: one cell per whole degree
const (
	MaskWidth  = 360 // longitude buckets
	MaskHeight = 180 // latitude buckets
)

// LandMask classifies each 1°x1° cell as land or water. Index 0 on the
// latitude axis is the northernmost row (lat 89..90).
type LandMask struct {
	cells [MaskWidth * MaskHeight]bool
}

// At reports whether the cell at (lngBucket, latBucket) is land
func (m *LandMask) At(li, la int) bool {
	return m.cells[li*MaskHeight+la]
}

func (m *LandMask) set(li, la int) {
	m.cells[li*MaskHeight+la] = true
}

// Buckets converts a geographic coordinate to mask cell indices using the
// canonical bucket mapping shared by every sampler
func Buckets(lat, lng float64) (li, la int) {
	li = int(math.Mod(lng+180.0, 360.0)) % MaskWidth
	if li < 0 {
		li += MaskWidth
	}
	la = clampInt(int(89.0-lat), 0, MaskHeight-1)
	return li, la
}

// Lookup reports the land classification for a geographic coordinate
func (m *LandMask) Lookup(lat, lng float64) bool {
	li, la := Buckets(lat, lng)
	return m.At(li, la)
}

// BuildLandMask rasterizes the polygon table into a land mask. For each
// polygon only cells inside its bounding box are tested; the cell center
// (lng+0.5, lat+0.5) is run through an even-odd ray cast against the
// ring. First polygon wins: a cell already marked land is never retested,
// so overlapping rings cannot flip earlier classifications.
func BuildLandMask(polys []Polygon) (*LandMask, error) {
	mask := &LandMask{}
	for i := range polys {
		p := &polys[i]
		if err := p.Validate(); err != nil {
			return nil, err
		}
		lngLo := maxInt(-180, int(p.MinLng))
		lngHi := minInt(180, int(p.MaxLng)+1)
		latLo := maxInt(-90, int(p.MinLat))
		latHi := minInt(90, int(p.MaxLat)+1)
		for lng := lngLo; lng < lngHi; lng++ {
			for lat := latLo; lat < latHi; lat++ {
				li := (lng + 180) % MaskWidth
				la := clampInt(89-lat, 0, MaskHeight-1)
				if mask.At(li, la) {
					continue
				}
				if pointInRing(float64(lng)+0.5, float64(lat)+0.5, p.Ring) {
					mask.set(li, la)
				}
			}
		}
	}
	return mask, nil
}

// pointInRing is the even-odd ray-casting test. The epsilon in the slope
// denominator keeps horizontal edges from dividing by zero; it matches
// the classification the dot field was tuned against.
func pointInRing(x, y float64, ring []LatLng) bool {
	inside := false
	ox, oy := ring[len(ring)-1].Lng, ring[len(ring)-1].Lat
	for _, v := range ring {
		cx, cy := v.Lng, v.Lat
		if (cy > y) != (oy > y) && x < (ox-cx)*(y-cy)/(oy-cy+1e-12)+cx {
			inside = !inside
		}
		ox, oy = cx, cy
	}
	return inside
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
