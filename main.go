package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/turntable/config"
	"github.com/pthm-cable/turntable/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics at a fixed timestep")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited)")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	spin := flag.Float64("spin", 0, "Camera turns per second (0 = use config)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Rotation steps per update call")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := game.Options{
		SpinOverride:   *spin,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
		StepsPerUpdate: *stepsPerUpdate,
	}

	if *headless {
		h := game.NewHeadless(opts)
		defer h.Finalize()

		slog.Info("starting headless run",
			"tps", cfg.Screen.TargetFPS,
			"stats_window", *statsWindow,
			"max_frames", *maxFrames,
		)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

		ticker := time.NewTicker(time.Second / time.Duration(cfg.Screen.TargetFPS))
		defer ticker.Stop()

		for {
			select {
			case <-sigChan:
				slog.Info("shutdown signal received", "frame", h.Tick())
				return
			case <-ticker.C:
				h.Step()
				if *maxFrames > 0 && int(h.Tick()) >= *maxFrames {
					slog.Info("max frames reached", "frame", h.Tick())
					return
				}
			}
		}
	}

	// Graphical mode
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Turntable")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.NewGameWithOptions(opts)
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxFrames > 0 && int(g.Tick()) >= *maxFrames {
			break
		}
	}
}
