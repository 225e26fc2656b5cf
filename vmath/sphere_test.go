package vmath

import (
	"math"
	"testing"
)

func v3Near(a, b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

// TestLatLonToXYZ verifies the canonical sphere mapping at the poles and
// the reference meridians
func TestLatLonToXYZ(t *testing.T) {
	cases := []struct {
		lat, lng float64
		want     Vec3
	}{
		{90, 0, Vec3{Y: 1}},
		{-90, 0, Vec3{Y: -1}},
		{0, 0, Vec3{X: 1}},
		{0, -90, Vec3{Z: 1}},
		{0, 90, Vec3{Z: -1}},
		{0, 180, Vec3{X: -1}},
	}
	for _, c := range cases {
		got := LatLonToXYZ(c.lat, c.lng, 1.0)
		if !v3Near(got, c.want, 1e-12) {
			t.Errorf("LatLonToXYZ(%.0f,%.0f) = %v, expected %v", c.lat, c.lng, got, c.want)
		}
	}

	// Radius scales linearly
	got := LatLonToXYZ(90, 0, 2.5)
	if !v3Near(got, Vec3{Y: 2.5}, 1e-12) {
		t.Errorf("Expected scaled pole, got %v", got)
	}
}

// TestLatLonToXYZOnSphere verifies every mapped point sits on the sphere
func TestLatLonToXYZOnSphere(t *testing.T) {
	for lat := -90.0; lat <= 90; lat += 15 {
		for lng := -180.0; lng < 180; lng += 15 {
			p := LatLonToXYZ(lat, lng, 1.0)
			if math.Abs(V3Mag(p)-1.0) > 1e-12 {
				t.Fatalf("(%.0f,%.0f) off the unit sphere: %f", lat, lng, V3Mag(p))
			}
		}
	}
}

// TestRotations verifies quarter turns about each axis
func TestRotations(t *testing.T) {
	x := Vec3{X: 1}
	got := RotateY(x, math.Pi/2)
	if !v3Near(got, Vec3{Z: 1}, 1e-12) {
		t.Errorf("RotateY(x, 90°) = %v, expected +Z", got)
	}

	y := Vec3{Y: 1}
	got = RotateX(y, math.Pi/2)
	if !v3Near(got, Vec3{Z: 1}, 1e-12) {
		t.Errorf("RotateX(y, 90°) = %v, expected +Z", got)
	}

	// Rotations preserve magnitude
	p := Vec3{X: 0.3, Y: -0.5, Z: 0.8}
	if math.Abs(V3Mag(RotateY(RotateX(p, 1.1), -0.7))-V3Mag(p)) > 1e-12 {
		t.Error("Expected rotation to preserve magnitude")
	}
}

// TestClamp verifies the envelope helper
func TestClamp(t *testing.T) {
	if Clamp(5, 0, 1) != 1 {
		t.Error("Expected clamp to upper bound")
	}
	if Clamp(-5, 0, 1) != 0 {
		t.Error("Expected clamp to lower bound")
	}
	if Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Expected in-range value unchanged")
	}
}
