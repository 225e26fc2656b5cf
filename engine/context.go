package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/globe/geo"
	"github.com/lixenwraith/globe/parameter"
	"github.com/lixenwraith/globe/render"
)

// MarkerState is the optional located position shown on the globe
type MarkerState struct {
	Lat, Lng float64
	Source   string // "ip" or "gps"
	Active   bool
}

// SoundPlayer is the audio feedback hook; nil disables sound
type SoundPlayer interface {
	PlayLock()
	PlayError()
}

// GlobeContext owns everything the render goroutine touches: the screen,
// the cell buffer, camera/marker state, the uploaded scene, and the task
// queue other goroutines post onto. No field may be accessed from
// outside the render goroutine; cross-thread input arrives via the
// UploadGate, SetMarker tasks, and the event channel.
type GlobeContext struct {
	Screen tcell.Screen
	Buf    *render.Buffer

	Camera CameraState
	Marker MarkerState

	// Display toggles
	Rotation     RotationDir
	SunEnabled   bool
	MoonEnabled  bool
	StarCoupling bool
	HUDVisible   bool

	MoonAngle float64

	// Star frame, mirroring the camera while StarCoupling is on
	starYaw   float64
	starPitch float64

	lastMouseX int
	lastMouseY int

	// Scene is nil until the gate fires the upload
	scene *render.Scene
	gate  *UploadGate

	// Loading overlay state
	overlayPct  int
	overlayMsg  string
	overlayFade float64

	// tasks is the render goroutine's queue; drained at the top of each
	// tick so posted work always runs with screen affinity
	tasks chan func()

	Location *render.LocationInfo
	Sound    SoundPlayer

	start      time.Time
	frameCount int
	fpsWindow  time.Time
	fps        int

	// Stats are recomputed every HUDRefreshEvery ticks, not per frame
	tick       int
	hudStats   render.Stats
	hudCurrent bool

	width, height int
}

// New creates the globe context over an initialized screen
func New(screen tcell.Screen) *GlobeContext {
	w, h := screen.Size()
	g := &GlobeContext{
		Screen:       screen,
		Buf:          render.NewBuffer(w, h, parameter.Background),
		Camera:       NewCameraState(),
		Rotation:     DirWestEast,
		SunEnabled:   true,
		MoonEnabled:  false,
		StarCoupling: true,
		HUDVisible:   true,
		overlayMsg:   "Building globe data…",
		overlayFade:  1.0,
		tasks:        make(chan func(), 32),
		start:        time.Now(),
		fpsWindow:    time.Now(),
		width:        w,
		height:       h,
	}
	g.gate = NewUploadGate(g.PostTask, g.uploadScene, g.onUploadReady)
	g.gate.ContextReady()
	return g
}

// Gate exposes the upload rendezvous for the pipeline consumer
func (g *GlobeContext) Gate() *UploadGate {
	return g.gate
}

// PostTask schedules work onto the render goroutine. Safe from any
// goroutine; drops are impossible short of a stalled render loop with a
// full queue, in which case the post blocks.
func (g *GlobeContext) PostTask(task func()) {
	g.tasks <- task
}

// uploadScene converts the bundle into renderer-resident buffers. Runs
// on the render goroutine via the gate's posted task.
func (g *GlobeContext) uploadScene(bundle *geo.GeometryBundle) {
	g.scene = render.Upload(bundle)
}

// onUploadReady starts the overlay fade-out
func (g *GlobeContext) onUploadReady() {
	g.overlayPct = 100
	g.overlayMsg = "Ready"
}

// SetProgress updates the loading overlay. Render goroutine only; the
// pipeline consumer forwards progress events through the main loop.
func (g *GlobeContext) SetProgress(pct int, msg string) {
	if pct < g.overlayPct {
		pct = g.overlayPct
	}
	g.overlayPct = pct
	g.overlayMsg = msg
}

// SetMarker stores the located position and recenters the camera on it.
// Render goroutine only; external callers go through PostTask.
func (g *GlobeContext) SetMarker(lat, lng float64, source string) {
	g.Marker = MarkerState{Lat: lat, Lng: lng, Source: source, Active: true}
	g.Camera.Recenter(lat, lng)
	if g.Sound != nil {
		g.Sound.PlayLock()
	}
}

// Uploaded reports whether the scene is resident
func (g *GlobeContext) Uploaded() bool {
	return g.scene != nil
}

// Snapshot returns the read-only display stats
func (g *GlobeContext) Snapshot() render.Stats {
	s := render.Stats{
		LOD:  render.SelectLOD(g.Camera.Zoom).String(),
		Zoom: g.Camera.Zoom,
		FPS:  g.fps,
	}
	if g.scene != nil {
		s.DotCount = g.scene.Dots(render.SelectLOD(g.Camera.Zoom)).Count()
		s.BorderCount = g.scene.Borders.Count()
	}
	return s
}
