package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/turntable/systems"
)

// keyCodes maps config key names to raylib key codes.
var keyCodes = map[string]int32{
	"left":  rl.KeyLeft,
	"right": rl.KeyRight,
	"up":    rl.KeyUp,
	"down":  rl.KeyDown,
	"space": rl.KeySpace,
	"enter": rl.KeyEnter,
}

// watchedKeys resolves config key names, skipping unknown ones.
func watchedKeys(names []string) []systems.WatchedKey {
	keys := make([]systems.WatchedKey, 0, len(names))
	for _, name := range names {
		code, ok := keyCodes[name]
		if !ok {
			slog.Warn("unknown watched key in config", "key", name)
			continue
		}
		keys = append(keys, systems.WatchedKey{Code: code, Name: name})
	}
	return keys
}

// handleControlKeys processes window and run control keys.
func (g *Game) handleControlKeys() {
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.showPanel = !g.showPanel
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}
}

// pollWatched samples the watched keys into an immutable snapshot.
func (g *Game) pollWatched() systems.KeySnapshot {
	down := make([]bool, len(g.watched))
	for i, k := range g.watched {
		down[i] = rl.IsKeyDown(k.Code)
	}
	return systems.KeySnapshot{Down: down}
}

// pollRigInput gathers one frame of camera rig input.
func (g *Game) pollRigInput() systems.RigInput {
	return systems.RigInput{
		Forward:  rl.IsKeyDown(rl.KeyW),
		Backward: rl.IsKeyDown(rl.KeyS),
		Left:     rl.IsKeyDown(rl.KeyA),
		Right:    rl.IsKeyDown(rl.KeyD),
		YawCW:    rl.IsKeyDown(rl.KeyQ),
		YawCCW:   rl.IsKeyDown(rl.KeyE),
		Zoom:     rl.GetMouseWheelMove(),
	}
}
