package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/globe/audio"
	"github.com/lixenwraith/globe/engine"
	"github.com/lixenwraith/globe/geo"
	"github.com/lixenwraith/globe/location"
	"github.com/lixenwraith/globe/parameter"
	"github.com/lixenwraith/globe/pipeline"
	"github.com/lixenwraith/globe/render"
)

func main() {
	rotation := flag.String("rotation", "west-east", "idle rotation: west-east, east-west, stopped")
	moon := flag.Bool("moon", false, "start with the moon orbit enabled")
	sound := flag.Bool("sound", true, "enable audio feedback")
	noLocate := flag.Bool("no-locate", false, "skip the IP location lookup")
	flag.Parse()

	if err := run(*rotation, *moon, *sound, *noLocate); err != nil {
		fmt.Fprintf(os.Stderr, "globe: %v\n", err)
		os.Exit(1)
	}
}

func run(rotation string, moon, sound, noLocate bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	g := engine.New(screen)
	g.MoonEnabled = moon
	switch rotation {
	case "east-west":
		g.Rotation = engine.DirEastWest
	case "stopped":
		g.Rotation = engine.DirStopped
	}

	var sm *audio.SoundManager
	if sound {
		sm = audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Audio is decorative; run silent on headless terminals
			log.Printf("audio init failed, continuing without sound: %v", err)
			sm = nil
		} else {
			defer sm.Cleanup()
			g.Sound = sm
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	builder := pipeline.New(geo.Continents)
	builder.Start()

	var locCh <-chan location.Result
	if !noLocate {
		locCh = location.ResolveAsync(ctx)
	}

	inputCh := startInputReader(screen)

	ticker := time.NewTicker(parameter.FramePeriod)
	defer ticker.Stop()

	progressCh := builder.Progress()
	resultCh := builder.Result()

	for {
		select {
		case <-ticker.C:
			g.Update()
			g.Draw()

		case ev, ok := <-inputCh:
			if !ok {
				return nil
			}
			if !g.HandleEvent(ev) {
				return nil
			}

		case p, ok := <-progressCh:
			if !ok {
				progressCh = nil
				continue
			}
			g.SetProgress(p.Percent, p.Message)

		case res, ok := <-resultCh:
			if !ok {
				resultCh = nil
				continue
			}
			if res.Err != nil {
				return fmt.Errorf("geometry generation: %w", res.Err)
			}
			g.Gate().BundleReady(res.Bundle)

		case loc, ok := <-locCh:
			if !ok {
				locCh = nil
				continue
			}
			applyLocation(g, loc)
			locCh = nil
		}
	}
}

// applyLocation stores the resolved position for the HUD and drops the
// marker, recentering the camera on it
func applyLocation(g *engine.GlobeContext, loc location.Result) {
	g.Location = &render.LocationInfo{
		IP:      loc.IP,
		ISP:     loc.ISP,
		City:    loc.City,
		Region:  loc.Region,
		Country: loc.Country,
		Lat:     loc.Lat,
		Lng:     loc.Lng,
		Source:  loc.Source,
	}
	g.SetMarker(loc.Lat, loc.Lng, loc.Source)
	if loc.Source == "default" && g.Sound != nil {
		g.Sound.PlayError()
	}
}

// startInputReader drains terminal events on a dedicated goroutine so
// the fixed-tick loop never blocks on PollEvent
func startInputReader(screen tcell.Screen) chan tcell.Event {
	ch := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(ch)
				return
			}
			ch <- ev
		}
	}()
	return ch
}
