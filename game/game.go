package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/turntable/components"
	"github.com/pthm-cable/turntable/config"
	"github.com/pthm-cable/turntable/systems"
	"github.com/pthm-cable/turntable/telemetry"
)

// Options configures a game instance.
type Options struct {
	SpinOverride   float64 // camera turns per second, 0 = use config
	StatsWindowSec float64 // 0 = use config
	OutputDir      string  // empty = CSV output disabled
	StepsPerUpdate int
}

// Game holds the scene world and the per-frame systems.
type Game struct {
	world *ecs.World

	transformMap *ecs.Map1[components.Transform]
	cameraMap    *ecs.Map1[components.Camera]
	rigMap       *ecs.Map1[components.CameraRig]

	shapeFilter *ecs.Filter2[components.Transform, components.Shape]
	lightFilter *ecs.Filter2[components.Transform, components.PointLight]

	cameraEntity ecs.Entity

	rotation *systems.Rotation
	reporter *systems.Reporter
	rig      *systems.Rig
	watched  []systems.WatchedKey

	perf   *telemetry.PerfCollector
	window *telemetry.FrameWindow
	output *telemetry.OutputManager

	tick           int32
	lastPerfLog    int32
	paused         bool
	stepsPerUpdate int
	showPanel      bool
}

// NewGameWithOptions creates the game, spawns the scene, and wires the
// per-frame systems. The scene exists before the first Update call.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	g := &Game{
		world:        &world,
		transformMap: ecs.NewMap1[components.Transform](&world),
		cameraMap:    ecs.NewMap1[components.Camera](&world),
		rigMap:       ecs.NewMap1[components.CameraRig](&world),
		shapeFilter:  ecs.NewFilter2[components.Transform, components.Shape](&world),
		lightFilter:  ecs.NewFilter2[components.Transform, components.PointLight](&world),

		stepsPerUpdate: max(1, opts.StepsPerUpdate),
	}

	g.cameraEntity = spawnScene(&world, opts)

	g.rotation = systems.NewRotation(&world)
	g.rig = systems.NewRig(&world)
	g.watched = watchedKeys(cfg.Input.WatchedKeys)
	g.reporter = systems.NewReporter(g.watched, slog.Default())

	windowSec := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		windowSec = opts.StatsWindowSec
	}
	g.perf = telemetry.NewPerfCollector(cfg.Screen.TargetFPS)
	g.window = telemetry.NewFrameWindow(windowSec)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output directory, CSV output disabled", "error", err)
	} else {
		g.output = output
		if err := g.output.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config snapshot", "error", err)
		}
	}

	return g
}

// Update runs one frame of input handling and simulation.
// Draw closes the perf frame that Update opens.
func (g *Game) Update() {
	dt := systems.SanitizeDelta(rl.GetFrameTime())

	g.perf.StartFrame()
	g.perf.StartPhase(telemetry.PhaseInput)
	g.handleControlKeys()
	in := g.pollRigInput()

	g.perf.StartPhase(telemetry.PhaseReport)
	g.reporter.Observe(g.pollWatched())

	if !g.paused {
		g.perf.StartPhase(telemetry.PhaseRig)
		g.rig.Step(dt, in)

		g.perf.StartPhase(telemetry.PhaseRotation)
		for i := 0; i < g.stepsPerUpdate; i++ {
			g.rotation.Step(dt)
		}
		g.tick++
	}

	g.recordTelemetry(float64(dt))

	if g.shouldLogPerf(config.Cfg().Telemetry.PerfLogInterval) {
		g.logPerfStats()
	}
}

// shouldLogPerf reports whether a perf dump is due: one every interval
// simulated frames. Zero disables it; pausing does not retrigger the dump
// for the same frame.
func (g *Game) shouldLogPerf(interval int) bool {
	if interval <= 0 || g.tick == 0 {
		return false
	}
	if g.tick-g.lastPerfLog < int32(interval) {
		return false
	}
	g.lastPerfLog = g.tick
	return true
}

// recordTelemetry folds this frame into the stats window and flushes CSV
// records when the window elapses.
func (g *Game) recordTelemetry(dt float64) {
	stats, done := g.window.Add(g.tick, dt)
	if !done {
		return
	}

	slog.Debug("frame window",
		"frame", stats.Frame,
		"frames", stats.Frames,
		"mean_ms", stats.MeanMs,
		"p95_ms", stats.P95Ms,
	)

	if err := g.output.WriteFrames(stats); err != nil {
		slog.Error("failed to write frame stats", "error", err)
	}
	if err := g.output.WritePerf(g.perf.Record(g.tick)); err != nil {
		slog.Error("failed to write perf stats", "error", err)
	}
}

// Tick returns the number of simulated frames so far.
func (g *Game) Tick() int32 {
	return g.tick
}

// Unload releases the game's resources.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output files", "error", err)
	}
}
