package geo

// RGB is a truecolor triple. Geometry records carry their final display
// color so the render side never reclassifies land/water per frame.
type RGB struct {
	R, G, B uint8
}

// Dot palette: exactly two values, picked by mask classification
var (
	LandColor  = RGB{R: 0, G: 255, B: 231}
	WaterColor = RGB{R: 0, G: 51, B: 187}
)
