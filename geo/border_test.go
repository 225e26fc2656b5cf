package geo

import (
	"math"
	"testing"

	"github.com/lixenwraith/globe/vmath"
)

// TestExtractBorders verifies segments sit on the raised border shell
func TestExtractBorders(t *testing.T) {
	mask, err := BuildLandMask(Continents)
	if err != nil {
		t.Fatalf("BuildLandMask: %v", err)
	}

	segs := ExtractBorders(mask)
	if len(segs) == 0 {
		t.Fatal("Expected border segments for the continent table")
	}

	for i := range segs {
		for _, p := range []vmath.Vec3{segs[i].A, segs[i].B} {
			r := vmath.V3Mag(p)
			if math.Abs(r-BorderRadius) > 1e-6 {
				t.Fatalf("Segment %d endpoint at radius %f, expected %f", i, r, BorderRadius)
			}
		}
	}
}

// TestExtractBordersEmpty verifies the all-water placeholder
func TestExtractBordersEmpty(t *testing.T) {
	segs := ExtractBorders(&LandMask{})
	if len(segs) != 1 {
		t.Fatalf("Expected single placeholder segment for empty mask, got %d", len(segs))
	}
	zero := vmath.Vec3{}
	if segs[0].A != zero || segs[0].B != zero {
		t.Error("Expected degenerate placeholder segment")
	}
}

// TestExtractBordersNarrowStripe verifies coastline detection for land
// confined to a single 1° longitude bucket. The 1.5° scan stride never
// samples inside that bucket, so the extractor must compare adjacent
// mask cells rather than adjacent samples to see the discontinuity.
func TestExtractBordersNarrowStripe(t *testing.T) {
	mask := &LandMask{}
	for la := 80; la <= 89; la++ {
		mask.set(2, la)
	}

	segs := ExtractBorders(mask)
	if len(segs) == 1 && segs[0].A == (vmath.Vec3{}) && segs[0].B == (vmath.Vec3{}) {
		t.Fatal("Expected coastline segments for the land stripe, got the empty-mask placeholder")
	}
	for i := range segs {
		if segs[i].A == segs[i].B {
			t.Errorf("Segment %d is degenerate", i)
		}
	}
}

// TestExtractBordersDeterminism verifies identical output across runs
func TestExtractBordersDeterminism(t *testing.T) {
	mask, err := BuildLandMask(Continents)
	if err != nil {
		t.Fatalf("BuildLandMask: %v", err)
	}

	a := ExtractBorders(mask)
	b := ExtractBorders(mask)
	if len(a) != len(b) {
		t.Fatalf("Run lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Segment %d differs across runs", i)
		}
	}
}
