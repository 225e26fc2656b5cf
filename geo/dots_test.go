package geo

import (
	"math"
	"testing"

	"github.com/lixenwraith/globe/vmath"
)

// TestDotCount verifies the grid sizes for each resolution tier
func TestDotCount(t *testing.T) {
	cases := []struct {
		res   float64
		count int
	}{
		{ResLow, 7320},
		{ResMed, 16380},
		{ResHigh, 45300},
	}
	for _, c := range cases {
		if got := DotCount(c.res); got != c.count {
			t.Errorf("DotCount(%.1f) = %d, expected %d", c.res, got, c.count)
		}
	}
}

// TestGenerateDots verifies count, radius, and palette of the dot field
func TestGenerateDots(t *testing.T) {
	mask, err := BuildLandMask(Continents)
	if err != nil {
		t.Fatalf("BuildLandMask: %v", err)
	}

	dots := GenerateDots(mask, ResLow)
	if len(dots) != DotCount(ResLow) {
		t.Fatalf("Expected %d dots, got %d", DotCount(ResLow), len(dots))
	}

	land, water := 0, 0
	for i := range dots {
		r := vmath.V3Mag(dots[i].Pos)
		if math.Abs(r-SphereRadius) > 1e-9 {
			t.Fatalf("Dot %d at radius %f, expected %f", i, r, SphereRadius)
		}
		switch dots[i].Color {
		case LandColor:
			land++
		case WaterColor:
			water++
		default:
			t.Fatalf("Dot %d has color %v outside the two-color palette", i, dots[i].Color)
		}
	}
	if land == 0 || water == 0 {
		t.Errorf("Expected both land (%d) and water (%d) dots", land, water)
	}
	// Earth is mostly ocean; a land majority means the classification broke
	if land > water {
		t.Errorf("Expected more water than land, got land=%d water=%d", land, water)
	}
}

// TestGenerateDotsDeterminism verifies identical output across runs
func TestGenerateDotsDeterminism(t *testing.T) {
	mask, err := BuildLandMask(Continents)
	if err != nil {
		t.Fatalf("BuildLandMask: %v", err)
	}

	a := GenerateDots(mask, ResMed)
	b := GenerateDots(mask, ResMed)
	if len(a) != len(b) {
		t.Fatalf("Run lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Dot %d differs across runs", i)
		}
	}
}
