package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/globe/geo"
	"github.com/lixenwraith/globe/parameter"
	"github.com/lixenwraith/globe/vmath"
)

func testView(w, h int) View {
	return View{Width: w, Height: h, Zoom: parameter.ZoomDefault}
}

// TestProjectCenter verifies the origin lands at screen center with
// depth equal to the camera distance
func TestProjectCenter(t *testing.T) {
	buf := NewBuffer(80, 40, parameter.Background)
	f := NewFrame(buf, testView(80, 40))

	x, y, depth, ok := f.Project(vmath.Vec3{})
	if !ok {
		t.Fatal("Expected origin to project")
	}
	if x != 40 || y != 20 {
		t.Errorf("Expected origin at (40,20), got (%d,%d)", x, y)
	}
	if math.Abs(depth-parameter.ZoomDefault) > 1e-12 {
		t.Errorf("Expected depth %f, got %f", parameter.ZoomDefault, depth)
	}
}

// TestProjectBehindCamera verifies points past the near plane are
// rejected
func TestProjectBehindCamera(t *testing.T) {
	buf := NewBuffer(80, 40, parameter.Background)
	f := NewFrame(buf, testView(80, 40))

	if _, _, _, ok := f.Project(vmath.Vec3{Z: parameter.ZoomDefault}); ok {
		t.Error("Expected point at the camera to be rejected")
	}
	if _, _, _, ok := f.Project(vmath.Vec3{Z: parameter.ZoomDefault + 1}); ok {
		t.Error("Expected point behind the camera to be rejected")
	}
}

// TestProjectAspect verifies the horizontal cell-aspect doubling: equal
// model offsets cover twice as many columns as rows
func TestProjectAspect(t *testing.T) {
	buf := NewBuffer(200, 100, parameter.Background)
	f := NewFrame(buf, testView(200, 100))

	x1, _, _, ok1 := f.Project(vmath.Vec3{X: 0.5})
	_, y2, _, ok2 := f.Project(vmath.Vec3{Y: 0.5})
	if !ok1 || !ok2 {
		t.Fatal("Expected both points to project")
	}
	dx := x1 - 100
	dy := 50 - y2
	// Cell truncation allows one column of slack
	if diff := dx - 2*dy; diff < -2 || diff > 2 {
		t.Errorf("Expected horizontal offset about twice vertical, got dx=%d dy=%d", dx, dy)
	}
}

// TestDepthTest verifies near fragments win and far fragments lose
func TestDepthTest(t *testing.T) {
	buf := NewBuffer(10, 10, parameter.Background)
	f := NewFrame(buf, testView(10, 10))

	near := RGB{R: 10, G: 20, B: 30}
	far := RGB{R: 200, G: 200, B: 200}

	f.PlotDepth(5, 5, 2.0, near)
	f.PlotDepth(5, 5, 3.0, far)
	if got := buf.BgAt(5, 5); got != near {
		t.Errorf("Expected near fragment to survive, got %v", got)
	}

	f.PlotDepth(5, 5, 1.0, far)
	if got := buf.BgAt(5, 5); got != far {
		t.Errorf("Expected nearer fragment to overwrite, got %v", got)
	}
}

// TestBlendDepthBias verifies coplanar overlays blend instead of being
// rejected by their own base surface
func TestBlendDepthBias(t *testing.T) {
	buf := NewBuffer(10, 10, parameter.Background)
	f := NewFrame(buf, testView(10, 10))

	base := RGB{R: 100, G: 100, B: 100}
	f.PlotDepth(5, 5, 2.0, base)

	// Same depth: must blend
	f.BlendDepth(5, 5, 2.0, RGB{R: 255, G: 255, B: 255}, 0.5)
	if got := buf.BgAt(5, 5); got == base {
		t.Error("Expected coplanar overlay to blend")
	}

	// Clearly behind: must be rejected
	before := buf.BgAt(4, 4)
	f.PlotDepth(4, 4, 2.0, base)
	f.BlendDepth(4, 4, 2.5, RGB{R: 255, G: 255, B: 255}, 0.5)
	if got := buf.BgAt(4, 4); got != base {
		t.Errorf("Expected occluded overlay rejected, got %v (was %v)", got, before)
	}
}

// TestDotsOccludeStars verifies a star glyph behind the globe does not
// survive on top of a dot drawn into the same cell
func TestDotsOccludeStars(t *testing.T) {
	buf := NewBuffer(80, 40, parameter.Background)
	f := NewFrame(buf, testView(80, 40))

	stars := &PointBuffer{
		pos:   []vmath.Vec3{{Z: -10}},
		color: []RGB{{R: 200, G: 210, B: 255}},
	}
	dots := &PointBuffer{
		pos:   []vmath.Vec3{{Z: 1}},
		color: []RGB{geo.WaterColor},
	}

	DrawStars(f, stars)
	if buf.cells[20*80+40].Rune == ' ' || buf.cells[20*80+40].Rune == 0 {
		t.Fatal("Expected a star glyph at screen center before the dot pass")
	}

	DrawDots(f, dots)
	cell := buf.cells[20*80+40]
	if cell.Rune != ' ' {
		t.Errorf("Expected dot to wipe the star glyph, cell still shows %q", cell.Rune)
	}
	if cell.Bg != geo.WaterColor {
		t.Errorf("Expected dot color %v, got %v", geo.WaterColor, cell.Bg)
	}
}

// TestToCameraSpaceIdentity verifies the zero-rotation transform
func TestToCameraSpaceIdentity(t *testing.T) {
	p := vmath.Vec3{X: 0.3, Y: -0.2, Z: 0.9}
	got := ToCameraSpace(p, 0, 0)
	if math.Abs(got.X-p.X) > 1e-12 || math.Abs(got.Y-p.Y) > 1e-12 || math.Abs(got.Z-p.Z) > 1e-12 {
		t.Errorf("Expected identity at zero angles, got %v", got)
	}
}

// TestToCameraSpacePitch verifies negative pitch tilts the north pole
// toward the camera, which is what recentering on a northern latitude
// produces
func TestToCameraSpacePitch(t *testing.T) {
	north := vmath.Vec3{Y: 1}
	got := ToCameraSpace(north, 0, -45)
	if got.Z <= 0 {
		t.Errorf("Expected north pole toward camera under negative pitch, got %v", got)
	}
	if got.Y >= 1 {
		t.Errorf("Expected pole to drop below zenith, got %v", got)
	}
}
