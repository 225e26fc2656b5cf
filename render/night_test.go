package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/globe/parameter"
	"github.com/lixenwraith/globe/vmath"
)

// TestSunDirection verifies normalization of the fixed sun vector
func TestSunDirection(t *testing.T) {
	s := SunDirection()
	if math.Abs(vmath.V3Mag(s)-1.0) > 1e-12 {
		t.Errorf("Expected unit sun direction, got magnitude %f", vmath.V3Mag(s))
	}
	if s.X <= 0 {
		t.Error("Expected sun toward positive X")
	}
}

// TestTerminatorAlpha verifies the night-shade ramp: zero on the day
// side, ramping on the night side, clamped at the maximum
func TestTerminatorAlpha(t *testing.T) {
	light := vmath.Vec3{X: 1}

	day := TerminatorAlpha(vmath.Vec3{X: 1}, light)
	if day != 0 {
		t.Errorf("Expected zero shade facing the sun, got %f", day)
	}

	terminator := TerminatorAlpha(vmath.Vec3{Z: 1}, light)
	if terminator != 0 {
		t.Errorf("Expected zero shade at the terminator, got %f", terminator)
	}

	night := TerminatorAlpha(vmath.Vec3{X: -1}, light)
	if night != parameter.TerminatorMaxAlpha {
		t.Errorf("Expected max shade %f on the night side, got %f",
			parameter.TerminatorMaxAlpha, night)
	}

	// Partial shade just past the terminator: -dot*gain below the clamp
	dusk := TerminatorAlpha(vmath.Vec3{X: -0.3, Z: math.Sqrt(1 - 0.09)}, light)
	want := 0.3 * parameter.TerminatorGain
	if math.Abs(dusk-want) > 1e-12 {
		t.Errorf("Expected dusk shade %f, got %f", want, dusk)
	}
}
