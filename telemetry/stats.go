package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats is one frames.csv row: frame-time statistics over a window.
type WindowStats struct {
	Frame   int32   `csv:"frame"`
	Seconds float64 `csv:"window_sec"`
	Frames  int     `csv:"frames"`
	MeanMs  float64 `csv:"mean_ms"`
	P50Ms   float64 `csv:"p50_ms"`
	P95Ms   float64 `csv:"p95_ms"`
	MaxMs   float64 `csv:"max_ms"`
}

// FrameWindow accumulates frame durations until a window elapses.
type FrameWindow struct {
	windowSec float64
	elapsed   float64
	samples   []float64 // milliseconds
}

// NewFrameWindow creates a window of the given length in seconds.
func NewFrameWindow(windowSec float64) *FrameWindow {
	if windowSec <= 0 {
		windowSec = 5
	}
	return &FrameWindow{windowSec: windowSec}
}

// Add records one frame of dt seconds. It returns stats and true when the
// window has elapsed; the window then restarts.
func (w *FrameWindow) Add(frame int32, dt float64) (WindowStats, bool) {
	return w.AddSample(frame, dt, dt)
}

// AddSample advances the window by advance seconds while recording sample
// seconds as the frame duration. Fixed-timestep runs tick on a steady
// cadence but spend far less wall time inside each tick, so the two differ
// there; for a real-time loop both are the frame delta.
func (w *FrameWindow) AddSample(frame int32, advance, sample float64) (WindowStats, bool) {
	if sample > 0 {
		w.samples = append(w.samples, sample*1000)
	}
	if advance > 0 {
		w.elapsed += advance
	}
	if w.elapsed < w.windowSec {
		return WindowStats{}, false
	}

	stats := Compute(w.samples)
	stats.Frame = frame
	stats.Seconds = w.elapsed

	w.samples = w.samples[:0]
	w.elapsed = 0
	return stats, true
}

// Compute summarizes a set of frame durations in milliseconds.
func Compute(samples []float64) WindowStats {
	ws := WindowStats{Frames: len(samples)}
	if len(samples) == 0 {
		return ws
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	ws.MeanMs = stat.Mean(sorted, nil)
	ws.P50Ms = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	ws.P95Ms = stat.Quantile(0.95, stat.Empirical, sorted, nil)
	ws.MaxMs = sorted[len(sorted)-1]
	return ws
}
