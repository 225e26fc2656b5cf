package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/globe/parameter"
	"github.com/lixenwraith/globe/render"
)

// overlayFadeStep drains the loading overlay in about a third of a
// second at the fixed tick rate
const overlayFadeStep = 0.05

// HandleEvent processes one terminal event. Returns false when the
// event requests shutdown.
func (g *GlobeContext) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		g.width, g.height = w, h
		g.Buf.Resize(w, h)
		g.Screen.Sync()

	case *tcell.EventMouse:
		g.handleMouse(ev)

	case *tcell.EventKey:
		return g.handleKey(ev)
	}
	return true
}

func (g *GlobeContext) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		g.Camera.ZoomBy(1)
	case buttons&tcell.WheelDown != 0:
		g.Camera.ZoomBy(-1)
	case buttons&tcell.Button1 != 0:
		if !g.Camera.Dragging {
			g.Camera.StartDrag()
		} else {
			g.Camera.DragBy(x-g.lastMouseX, y-g.lastMouseY)
		}
		g.lastMouseX, g.lastMouseY = x, y
	default:
		if g.Camera.Dragging {
			g.Camera.EndDrag()
		}
	}
}

func (g *GlobeContext) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}
	switch ev.Rune() {
	case 'q', 'Q':
		return false
	case 'r', 'R':
		g.Rotation = (g.Rotation + 1) % 3
	case 's', 'S':
		g.SunEnabled = !g.SunEnabled
	case 'm', 'M':
		g.MoonEnabled = !g.MoonEnabled
	case 'b', 'B':
		g.StarCoupling = !g.StarCoupling
	case 'h', 'H':
		g.HUDVisible = !g.HUDVisible
	}
	return true
}

// Update advances all per-tick state: posted tasks, camera motion, the
// decoupled star frame, the moon orbit, and the overlay fade
func (g *GlobeContext) Update() {
	g.tick++
	g.drainTasks()

	g.Camera.Tick(g.Rotation)

	// Coupled stars mirror the globe frame; uncoupled they relax back to
	// rest with their own slower decay
	if g.StarCoupling {
		g.starYaw = g.Camera.Yaw
		g.starPitch = g.Camera.Pitch
	} else {
		g.starYaw *= parameter.StarDecay
		g.starPitch *= parameter.StarDecay
	}

	if g.MoonEnabled {
		g.MoonAngle += parameter.MoonOrbitStep
	}

	if g.overlayPct >= 100 && g.Uploaded() && g.overlayFade > 0 {
		g.overlayFade -= overlayFadeStep
		if g.overlayFade < 0 {
			g.overlayFade = 0
		}
	}
}

func (g *GlobeContext) drainTasks() {
	for {
		select {
		case task := <-g.tasks:
			task()
		default:
			return
		}
	}
}

// Draw composes one frame into the buffer and flushes it to the screen
func (g *GlobeContext) Draw() {
	g.Buf.Clear()

	view := render.View{
		Width:       g.width,
		Height:      g.height,
		Yaw:         g.Camera.Yaw,
		Pitch:       g.Camera.Pitch,
		Zoom:        g.Camera.Zoom,
		StarYaw:     g.starYaw,
		StarPitch:   g.starPitch,
		SunEnabled:  g.SunEnabled,
		MoonEnabled: g.MoonEnabled,
		MoonAngle:   g.MoonAngle,
		Now:         time.Since(g.start).Seconds(),
		LOD:         render.SelectLOD(g.Camera.Zoom),
	}
	if g.Marker.Active {
		view.Marker = render.MarkerView{
			Active: true,
			Lat:    g.Marker.Lat,
			Lng:    g.Marker.Lng,
			Color:  markerColor(g.Marker.Source),
		}
	}

	if g.scene != nil {
		f := render.NewFrame(g.Buf, view)
		render.DrawStars(f, g.scene.Stars)
		if g.SunEnabled {
			render.DrawSun(f)
		}
		render.DrawAtmosphere(f)
		render.DrawDots(f, g.scene.Dots(view.LOD))
		render.DrawBorders(f, g.scene.Borders)
		if g.SunEnabled {
			render.DrawTerminator(f)
		}
		render.DrawMarker(f)
		if g.MoonEnabled {
			render.DrawMoon(f)
		}
		if g.HUDVisible {
			if !g.hudCurrent || g.tick%parameter.HUDRefreshEvery == 0 {
				g.hudStats = g.Snapshot()
				g.hudCurrent = true
			}
			render.DrawHUD(g.Buf, g.hudStats, g.Location)
		}
	}

	if g.overlayFade > 0 {
		render.DrawLoadingOverlay(g.Buf, g.overlayPct, g.overlayMsg, g.overlayFade)
	}

	g.Buf.Flush(g.Screen)
	g.tickFPS()
}

func markerColor(source string) render.RGB {
	if source == "gps" {
		return parameter.MarkerGPS
	}
	return parameter.MarkerIP
}

func (g *GlobeContext) tickFPS() {
	g.frameCount++
	if since := time.Since(g.fpsWindow); since >= time.Second {
		g.fps = g.frameCount
		g.frameCount = 0
		g.fpsWindow = time.Now()
	}
}
