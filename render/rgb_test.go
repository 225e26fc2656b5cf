package render

import (
	"testing"
)

// TestBlend verifies alpha blending endpoints and midpoint
func TestBlend(t *testing.T) {
	dst := RGB{R: 0, G: 0, B: 0}
	src := RGB{R: 200, G: 100, B: 50}

	if got := Blend(dst, src, 0); got != dst {
		t.Errorf("Blend alpha 0: expected %v, got %v", dst, got)
	}
	if got := Blend(dst, src, 1); got != src {
		t.Errorf("Blend alpha 1: expected %v, got %v", src, got)
	}

	mid := Blend(dst, src, 0.5)
	if mid.R != 100 || mid.G != 50 || mid.B != 25 {
		t.Errorf("Blend alpha 0.5: got %v", mid)
	}
}

// TestAddSaturates verifies additive blending clamps at white
func TestAddSaturates(t *testing.T) {
	got := Add(RGB{R: 200, G: 200, B: 200}, RGB{R: 100, G: 100, B: 100})
	if got != (RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("Expected saturation at 255, got %v", got)
	}
}

// TestAddScaled verifies intensity scaling
func TestAddScaled(t *testing.T) {
	got := AddScaled(RGB{R: 10, G: 10, B: 10}, RGB{R: 100, G: 200, B: 50}, 0.5)
	if got.R != 60 || got.G != 110 || got.B != 35 {
		t.Errorf("AddScaled 0.5: got %v", got)
	}
}

// TestLerp verifies endpoint and midpoint interpolation
func TestLerp(t *testing.T) {
	a := RGB{R: 0, G: 100, B: 200}
	b := RGB{R: 100, G: 0, B: 200}
	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp t=0: got %v", got)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp t=1: got %v", got)
	}
	mid := Lerp(a, b, 0.5)
	if mid.R != 50 || mid.G != 50 || mid.B != 200 {
		t.Errorf("Lerp t=0.5: got %v", mid)
	}
}
