package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/turntable/config"
)

// drawOverlay renders the HUD and, when toggled, the control panel.
func (g *Game) drawOverlay() {
	rl.DrawFPS(10, 10)
	rl.DrawText(fmt.Sprintf("frame %d", g.tick), 10, 34, 10, rl.Gray)
	if g.paused {
		rl.DrawText("PAUSED", 10, 48, 10, rl.Orange)
	}

	if !g.showPanel {
		rl.DrawText("TAB: controls  SPACE: pause  WASD/QE: move  wheel: zoom", 10, 62, 10, rl.DarkGray)
		return
	}

	panelX := float32(10)
	panelY := float32(80)

	rl.DrawRectangle(int32(panelX)-4, int32(panelY)-4, 228, 132, rl.NewColor(0, 0, 0, 140))
	rl.DrawText("Camera", int32(panelX), int32(panelY), 14, rl.RayWhite)
	panelY += 22

	cam := g.cameraMap.Get(g.cameraEntity)
	rig := g.rigMap.Get(g.cameraEntity)

	rl.DrawText(fmt.Sprintf("zoom %.2f", cam.Scale), int32(panelX), int32(panelY), 10, rl.LightGray)
	panelY += 14
	newScale := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: 200, Height: 16},
		fmt.Sprintf("%.1f", rig.MinScale), fmt.Sprintf("%.1f", rig.MaxScale),
		cam.Scale, rig.MinScale, rig.MaxScale,
	)
	if newScale != cam.Scale {
		cam.Scale = newScale
		rig.TargetScale = newScale
	}
	panelY += 26

	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 96, Height: 24}, pauseLabel(g.paused)) {
		g.paused = !g.paused
	}
	if gui.Button(rl.Rectangle{X: panelX + 104, Y: panelY, Width: 96, Height: 24}, "Reset view") {
		g.resetView()
	}
}

func pauseLabel(paused bool) string {
	if paused {
		return "Resume"
	}
	return "Pause"
}

// resetView restores the camera transform and zoom to the configured start.
func (g *Game) resetView() {
	cfg := config.Cfg()

	tr := g.transformMap.Get(g.cameraEntity)
	cam := g.cameraMap.Get(g.cameraEntity)
	rig := g.rigMap.Get(g.cameraEntity)

	tr.Position = vec3(cfg.Camera.Position)
	tr.LookAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	cam.Scale = float32(cfg.Camera.Scale)

	rig.TargetPos = tr.Position
	rig.TargetOrient = tr.Orientation
	rig.TargetScale = cam.Scale
}
