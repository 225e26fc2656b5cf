package geo

// GeometryBundle is the complete geometry payload produced once per
// session. It is handed from the worker to the render side by ownership
// transfer and never mutated afterward.
type GeometryBundle struct {
	DotsLow  []DotRecord
	DotsMed  []DotRecord
	DotsHigh []DotRecord
	Borders  []BorderSegment
	Stars    []StarRecord
}
