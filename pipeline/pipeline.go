// Package pipeline runs the globe geometry generators on a background
// goroutine, streaming progress while the render loop stays interactive.
// It touches no terminal or render state; the only outputs are the
// progress channel and a single result.
package pipeline

import (
	"fmt"

	"github.com/lixenwraith/globe/geo"
)

// Progress is one generation status event. Percent is monotonically
// non-decreasing over a run and ends at 100 on success.
type Progress struct {
	Percent int
	Message string
}

// Result carries either the finished bundle or the error that killed the
// run, never both. A failed run delivers no partial geometry.
type Result struct {
	Bundle *geo.GeometryBundle
	Err    error
}

// Builder generates the geometry bundle for one session
type Builder struct {
	polys    []geo.Polygon
	progress chan Progress
	result   chan Result
	lastPct  int
}

// New creates a builder over the given polygon table
func New(polys []geo.Polygon) *Builder {
	return &Builder{
		polys: polys,
		// Buffered beyond the stage count so emits never block even if
		// the consumer stops draining mid-run
		progress: make(chan Progress, 16),
		result:   make(chan Result, 1),
	}
}

// Progress returns the status stream. Closed when the run finishes.
func (b *Builder) Progress() <-chan Progress {
	return b.progress
}

// Result returns the one-shot delivery channel
func (b *Builder) Result() <-chan Result {
	return b.result
}

// Start launches the generation goroutine. Call once.
func (b *Builder) Start() {
	go b.run()
}

func (b *Builder) run() {
	defer close(b.progress)
	defer close(b.result)

	b.emit(5, "Building land mask…")
	mask, err := geo.BuildLandMask(b.polys)
	if err != nil {
		b.result <- Result{Err: fmt.Errorf("land mask: %w", err)}
		return
	}
	b.emit(30, "Land mask done")

	b.emit(32, "Generating dot field (low LOD)…")
	dotsLow := geo.GenerateDots(mask, geo.ResLow)
	b.emit(45, "Generating dot field (medium LOD)…")
	dotsMed := geo.GenerateDots(mask, geo.ResMed)
	b.emit(58, "Generating dot field (high LOD)…")
	dotsHigh := geo.GenerateDots(mask, geo.ResHigh)
	b.emit(70, "Dot fields ready")

	b.emit(72, "Building country borders…")
	borders := geo.ExtractBorders(mask)
	b.emit(87, "Borders ready")

	b.emit(89, "Building star field…")
	stars := geo.GenerateStars()
	b.emit(95, "All arrays ready — uploading…")

	b.emit(100, "Globe data ready")
	b.result <- Result{Bundle: &geo.GeometryBundle{
		DotsLow:  dotsLow,
		DotsMed:  dotsMed,
		DotsHigh: dotsHigh,
		Borders:  borders,
		Stars:    stars,
	}}
}

// emit sends a progress event, clamping percent so the stream can never
// go backward even if the schedule constants are edited out of order
func (b *Builder) emit(pct int, msg string) {
	if pct < b.lastPct {
		pct = b.lastPct
	}
	if pct > 100 {
		pct = 100
	}
	b.lastPct = pct
	select {
	case b.progress <- Progress{Percent: pct, Message: msg}:
	default:
	}
}
