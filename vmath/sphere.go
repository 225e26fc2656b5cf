package vmath

import (
	"math"
)

// LatLonToXYZ maps geographic coordinates (degrees) onto a sphere of
// radius r. The mapping places lat=90 at +Y and lng=-180 at theta=0:
//
//	phi   = radians(90 - lat)
//	theta = radians(lng + 180)
//	p     = (-sin(phi)*cos(theta), cos(phi), sin(phi)*sin(theta)) * r
//
// Every generator and the marker placement use this one mapping; mixing
// conventions shows up as mirrored continents.
func LatLonToXYZ(lat, lng, r float64) Vec3 {
	phi := (90.0 - lat) * math.Pi / 180.0
	theta := (lng + 180.0) * math.Pi / 180.0
	sinPhi := math.Sin(phi)
	return Vec3{
		X: -r * sinPhi * math.Cos(theta),
		Y: r * math.Cos(phi),
		Z: r * sinPhi * math.Sin(theta),
	}
}

// RotateY rotates v around the Y axis by angle radians
func RotateY(v Vec3, angle float64) Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{
		X: v.X*c - v.Z*s,
		Y: v.Y,
		Z: v.X*s + v.Z*c,
	}
}

// RotateX rotates v around the X axis by angle radians
func RotateX(v Vec3, angle float64) Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{
		X: v.X,
		Y: v.Y*c - v.Z*s,
		Z: v.Y*s + v.Z*c,
	}
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
