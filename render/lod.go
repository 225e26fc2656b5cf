package render

import (
	"github.com/lixenwraith/globe/parameter"
)

// LOD is the active dot-field level of detail
type LOD int

const (
	LODLow LOD = iota
	LODMed
	LODHigh
)

// String returns the HUD display name
func (l LOD) String() string {
	switch l {
	case LODHigh:
		return "HIGH"
	case LODMed:
		return "MED"
	default:
		return "LOW"
	}
}

// SelectLOD picks detail by camera distance: closer cameras see fewer
// dots per cell, so density must rise to keep the shell solid
func SelectLOD(distance float64) LOD {
	switch {
	case distance < parameter.LODHighMax:
		return LODHigh
	case distance < parameter.LODMedMax:
		return LODMed
	default:
		return LODLow
	}
}
