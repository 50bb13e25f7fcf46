// Package telemetry collects frame timing statistics and writes them out.
package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for the per-frame step.
const (
	PhaseInput    = "input"
	PhaseReport   = "report"
	PhaseRig      = "rig"
	PhaseRotation = "rotation"
	PhaseRender   = "render"
)

// PerfSample holds timing data for a single frame.
type PerfSample struct {
	FrameDuration time.Duration
	Phases        map[string]time.Duration
}

// PerfCollector tracks per-phase timings over a rolling window of frames.
type PerfCollector struct {
	windowSize  int
	samples     []PerfSample
	writeIndex  int
	sampleCount int

	currentPhases map[string]time.Duration
	frameStart    time.Time
	phaseStart    time.Time
	lastPhase     string
}

// NewPerfCollector creates a collector averaging over windowSize frames.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartFrame begins timing a new frame.
func (p *PerfCollector) StartFrame() {
	p.frameStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a phase, closing the previous one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndFrame closes the current frame and records the sample.
func (p *PerfCollector) EndFrame() {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}

	p.samples[p.writeIndex] = PerfSample{
		FrameDuration: now.Sub(p.frameStart),
		Phases:        p.currentPhases,
	}
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// SampleCount returns the number of frames currently in the window.
func (p *PerfCollector) SampleCount() int {
	return p.sampleCount
}

// AvgFrame returns the mean frame duration over the window.
func (p *PerfCollector) AvgFrame() time.Duration {
	if p.sampleCount == 0 {
		return 0
	}
	var total time.Duration
	for i := 0; i < p.sampleCount; i++ {
		total += p.samples[i].FrameDuration
	}
	return total / time.Duration(p.sampleCount)
}

// AvgPhase returns the mean duration of the named phase over the window.
func (p *PerfCollector) AvgPhase(phase string) time.Duration {
	if p.sampleCount == 0 {
		return 0
	}
	var total time.Duration
	for i := 0; i < p.sampleCount; i++ {
		total += p.samples[i].Phases[phase]
	}
	return total / time.Duration(p.sampleCount)
}

// Record converts the current window into a CSV record.
func (p *PerfCollector) Record(frame int32) PerfRecord {
	return PerfRecord{
		Frame:      frame,
		Samples:    p.sampleCount,
		FrameUs:    p.AvgFrame().Microseconds(),
		InputUs:    p.AvgPhase(PhaseInput).Microseconds(),
		ReportUs:   p.AvgPhase(PhaseReport).Microseconds(),
		RigUs:      p.AvgPhase(PhaseRig).Microseconds(),
		RotationUs: p.AvgPhase(PhaseRotation).Microseconds(),
		RenderUs:   p.AvgPhase(PhaseRender).Microseconds(),
	}
}

// PerfRecord is one perf.csv row: mean phase timings over a window.
type PerfRecord struct {
	Frame      int32 `csv:"frame"`
	Samples    int   `csv:"samples"`
	FrameUs    int64 `csv:"frame_us"`
	InputUs    int64 `csv:"input_us"`
	ReportUs   int64 `csv:"report_us"`
	RigUs      int64 `csv:"rig_us"`
	RotationUs int64 `csv:"rotation_us"`
	RenderUs   int64 `csv:"render_us"`
}

// Log writes the current window averages to the structured log.
func (p *PerfCollector) Log(log *slog.Logger, frame int32) {
	if log == nil || p.sampleCount == 0 {
		return
	}
	log.Info("perf window",
		"frame", frame,
		"samples", p.sampleCount,
		"avg_frame", p.AvgFrame().Round(time.Microsecond).String(),
		"input", p.AvgPhase(PhaseInput).Round(time.Microsecond).String(),
		"report", p.AvgPhase(PhaseReport).Round(time.Microsecond).String(),
		"rig", p.AvgPhase(PhaseRig).Round(time.Microsecond).String(),
		"rotation", p.AvgPhase(PhaseRotation).Round(time.Microsecond).String(),
		"render", p.AvgPhase(PhaseRender).Round(time.Microsecond).String(),
	)
}
