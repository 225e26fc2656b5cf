package pipeline

import (
	"testing"
	"time"

	"github.com/lixenwraith/globe/geo"
)

// TestPipelineSuccess drains a full run and checks the progress contract
// and the single bundle delivery
func TestPipelineSuccess(t *testing.T) {
	b := New(geo.Continents)
	b.Start()

	last := -1
	final := -1
	for p := range b.Progress() {
		if p.Percent < last {
			t.Errorf("Progress went backward: %d after %d", p.Percent, last)
		}
		if p.Message == "" {
			t.Error("Expected non-empty progress message")
		}
		last = p.Percent
		final = p.Percent
	}
	if final != 100 {
		t.Errorf("Expected progress to end at 100, got %d", final)
	}

	res, ok := <-b.Result()
	if !ok {
		t.Fatal("Expected a result before channel close")
	}
	if res.Err != nil {
		t.Fatalf("Expected success, got error: %v", res.Err)
	}
	bundle := res.Bundle
	if bundle == nil {
		t.Fatal("Expected a bundle on success")
	}

	if len(bundle.DotsLow) != geo.DotCount(geo.ResLow) {
		t.Errorf("Low LOD: expected %d dots, got %d", geo.DotCount(geo.ResLow), len(bundle.DotsLow))
	}
	if len(bundle.DotsMed) != geo.DotCount(geo.ResMed) {
		t.Errorf("Medium LOD: expected %d dots, got %d", geo.DotCount(geo.ResMed), len(bundle.DotsMed))
	}
	if len(bundle.DotsHigh) != geo.DotCount(geo.ResHigh) {
		t.Errorf("High LOD: expected %d dots, got %d", geo.DotCount(geo.ResHigh), len(bundle.DotsHigh))
	}
	if len(bundle.Borders) == 0 {
		t.Error("Expected border segments")
	}
	if len(bundle.Stars) != geo.StarCount {
		t.Errorf("Expected %d stars, got %d", geo.StarCount, len(bundle.Stars))
	}

	// Exactly one result, then close
	if _, ok := <-b.Result(); ok {
		t.Error("Expected result channel closed after the single delivery")
	}
}

// TestPipelineSchedule verifies the stage labels and percentages match
// the loading overlay's expected sequence
func TestPipelineSchedule(t *testing.T) {
	want := []Progress{
		{5, "Building land mask…"},
		{30, "Land mask done"},
		{32, "Generating dot field (low LOD)…"},
		{45, "Generating dot field (medium LOD)…"},
		{58, "Generating dot field (high LOD)…"},
		{70, "Dot fields ready"},
		{72, "Building country borders…"},
		{87, "Borders ready"},
		{89, "Building star field…"},
		{95, "All arrays ready — uploading…"},
		{100, "Globe data ready"},
	}

	b := New(geo.Continents)
	b.Start()

	var got []Progress
	for p := range b.Progress() {
		got = append(got, p)
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d progress events, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Event %d: expected %d %q, got %d %q",
				i, want[i].Percent, want[i].Message, got[i].Percent, got[i].Message)
		}
	}
	<-b.Result()
}

// TestPipelineError verifies a malformed polygon aborts the run with no
// partial bundle
func TestPipelineError(t *testing.T) {
	bad := []geo.Polygon{
		{
			Name:   "bad",
			MinLng: 0, MaxLng: 10,
			MinLat: 0, MaxLat: 10,
			Ring:   []geo.LatLng{{Lng: 0, Lat: 0}, {Lng: 10, Lat: 0}, {Lng: 0, Lat: 0}},
		},
	}
	b := New(bad)
	b.Start()

	select {
	case res := <-b.Result():
		if res.Err == nil {
			t.Fatal("Expected an error for the malformed polygon")
		}
		if res.Bundle != nil {
			t.Error("Expected no bundle on failure")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Pipeline did not deliver a result")
	}
}
