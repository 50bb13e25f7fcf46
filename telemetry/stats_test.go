package telemetry

import (
	"math"
	"testing"
)

func TestComputeKnownSamples(t *testing.T) {
	samples := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	ws := Compute(samples)

	if ws.Frames != 10 {
		t.Errorf("Frames = %d, want 10", ws.Frames)
	}
	if math.Abs(ws.MeanMs-5.5) > 1e-9 {
		t.Errorf("MeanMs = %v, want 5.5", ws.MeanMs)
	}
	if ws.P50Ms < 5 || ws.P50Ms > 6 {
		t.Errorf("P50Ms = %v, want within [5, 6]", ws.P50Ms)
	}
	if ws.P95Ms < 9 || ws.P95Ms > 10 {
		t.Errorf("P95Ms = %v, want within [9, 10]", ws.P95Ms)
	}
	if ws.MaxMs != 10 {
		t.Errorf("MaxMs = %v, want 10", ws.MaxMs)
	}
}

func TestComputeSingleSample(t *testing.T) {
	ws := Compute([]float64{16.6})

	if ws.Frames != 1 {
		t.Errorf("Frames = %d, want 1", ws.Frames)
	}
	if ws.MeanMs != 16.6 || ws.P50Ms != 16.6 || ws.P95Ms != 16.6 || ws.MaxMs != 16.6 {
		t.Errorf("single sample stats = %+v, want all 16.6", ws)
	}
}

func TestComputeEmpty(t *testing.T) {
	ws := Compute(nil)
	if ws.Frames != 0 || ws.MeanMs != 0 || ws.P95Ms != 0 {
		t.Errorf("empty stats = %+v, want zero", ws)
	}
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	samples := []float64{3, 1, 2}
	Compute(samples)
	if samples[0] != 3 || samples[1] != 1 || samples[2] != 2 {
		t.Errorf("input mutated: %v", samples)
	}
}

func TestFrameWindowEmitsOnElapse(t *testing.T) {
	// Slightly under 60 frames' worth so float accumulation of 1/60
	// cannot straddle the boundary.
	w := NewFrameWindow(0.99)

	dt := 1.0 / 60
	for i := 0; i < 59; i++ {
		if _, done := w.Add(int32(i), dt); done {
			t.Fatalf("window closed early at frame %d", i)
		}
	}

	stats, done := w.Add(59, dt)
	if !done {
		t.Fatal("window did not close after one second of frames")
	}
	if stats.Frames != 60 {
		t.Errorf("Frames = %d, want 60", stats.Frames)
	}
	if stats.Frame != 59 {
		t.Errorf("Frame = %d, want 59", stats.Frame)
	}
	if math.Abs(stats.MeanMs-dt*1000) > 1e-6 {
		t.Errorf("MeanMs = %v, want %v", stats.MeanMs, dt*1000)
	}
}

func TestFrameWindowRestarts(t *testing.T) {
	w := NewFrameWindow(0.99)

	for i := 0; i < 60; i++ {
		w.Add(int32(i), 1.0/60)
	}

	// The next frame starts a fresh window.
	if _, done := w.Add(60, 1.0/60); done {
		t.Error("window closed again immediately after emitting")
	}
}

func TestFrameWindowIgnoresBadDeltas(t *testing.T) {
	w := NewFrameWindow(1.0)

	w.Add(0, 0)
	w.Add(1, -5)
	stats, done := w.Add(2, 2.0)

	if !done {
		t.Fatal("window did not close")
	}
	if stats.Frames != 1 {
		t.Errorf("Frames = %d, want 1 (zero and negative deltas dropped)", stats.Frames)
	}
}

func TestAddSampleFixedCadence(t *testing.T) {
	w := NewFrameWindow(4.99)

	// A fixed-timestep run at 60 TPS: the window advances by the tick
	// interval while each recorded sample is only the 50µs of tick work.
	tickDT := 1.0 / 60
	work := 50e-6

	var stats WindowStats
	var done bool
	for i := 1; i <= 300; i++ {
		stats, done = w.AddSample(int32(i), tickDT, work)
		if done && i < 300 {
			t.Fatalf("window closed early at tick %d", i)
		}
	}

	if !done {
		t.Fatal("window did not close after ~5s of ticks at 60 TPS")
	}
	if stats.Frames != 300 {
		t.Errorf("Frames = %d, want 300", stats.Frames)
	}
	if math.Abs(stats.MeanMs-0.05) > 1e-6 {
		t.Errorf("MeanMs = %v, want 0.05 (the measured tick work)", stats.MeanMs)
	}
}

func TestNewFrameWindowBadLength(t *testing.T) {
	w := NewFrameWindow(0)
	if w.windowSec != 5 {
		t.Errorf("windowSec = %v, want the 5s fallback", w.windowSec)
	}
}
