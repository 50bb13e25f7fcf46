package game

import (
	"log/slog"
	"time"

	"github.com/mlange-42/ark-tools/app"

	"github.com/pthm-cable/turntable/config"
	"github.com/pthm-cable/turntable/systems"
	"github.com/pthm-cable/turntable/telemetry"
)

// Headless runs the scene without a window, using the ark-tools scheduler
// with a fixed timestep. Useful for soak runs and collecting frame stats
// on machines without a display.
type Headless struct {
	tool     *app.App
	reporter *systems.Reporter

	window *telemetry.FrameWindow
	output *telemetry.OutputManager

	dt   float64 // fixed timestep, 1 / TPS
	tick int32
}

// NewHeadless builds the headless runner: same scene, same systems,
// no rendering and no keyboard.
func NewHeadless(opts Options) *Headless {
	cfg := config.Cfg()

	tool := app.New(64)
	tool.TPS = float64(cfg.Screen.TargetFPS)

	h := &Headless{tool: tool, dt: float64(cfg.Derived.DT32)}

	spawnScene(&tool.World, opts)

	h.reporter = systems.NewReporter(watchedKeys(cfg.Input.WatchedKeys), slog.Default())

	tool.AddSystem(&systems.SpinSystem{DT: cfg.Derived.DT32})
	tool.AddSystem(&systems.ReportSystem{Reporter: h.reporter})

	windowSec := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		windowSec = opts.StatsWindowSec
	}
	h.window = telemetry.NewFrameWindow(windowSec)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output directory, CSV output disabled", "error", err)
	} else {
		h.output = output
		if err := h.output.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config snapshot", "error", err)
		}
	}

	tool.Initialize()
	return h
}

// Step advances the world by one fixed tick and folds the measured wall
// time into the stats window. The window advances by the tick interval, not
// the measured time; ticks take microseconds of work, and counting only
// those would keep a wall-clock window open near forever.
func (h *Headless) Step() {
	start := time.Now()
	h.tool.Update()
	h.tick++

	elapsed := time.Since(start).Seconds()
	stats, done := h.window.AddSample(h.tick, h.dt, elapsed)
	if !done {
		return
	}

	slog.Info("frame window",
		"frame", stats.Frame,
		"frames", stats.Frames,
		"mean_ms", stats.MeanMs,
		"p95_ms", stats.P95Ms,
	)
	if err := h.output.WriteFrames(stats); err != nil {
		slog.Error("failed to write frame stats", "error", err)
	}
}

// Tick returns the number of simulated ticks so far.
func (h *Headless) Tick() int32 {
	return h.tick
}

// Finalize shuts down the systems and closes output files.
func (h *Headless) Finalize() {
	h.tool.Finalize()
	if err := h.output.Close(); err != nil {
		slog.Error("failed to close output files", "error", err)
	}
}
