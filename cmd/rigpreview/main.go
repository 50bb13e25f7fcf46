// Camera rig preview tool - top-down orbit visualization with sliders.
//
// Usage: go run ./cmd/rigpreview
package main

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/turntable/components"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 640
	panelWidth   = windowWidth - previewSize - 30
)

// RigParams holds the orbit parameters under preview.
type RigParams struct {
	TurnsPerSec float32
	Radius      float32
	Height      float32
	Smoothing   float32
	InPlace     bool
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Camera Rig Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	params := RigParams{
		TurnsPerSec: 0.3,
		Radius:      7.07, // sqrt(5^2 + 5^2), the default XZ distance
		Height:      5.0,
		Smoothing:   8.0,
	}

	tr := components.TransformAt(mgl32.Vec3{params.Radius, params.Height, 0})
	tr.LookAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

	paused := false
	var trail []mgl32.Vec3

	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()
		if rl.IsKeyPressed(rl.KeySpace) {
			paused = !paused
		}

		if !paused {
			angle := params.TurnsPerSec * 2 * math.Pi * dt
			if params.InPlace {
				tr.YawInPlace(angle)
			} else {
				tr.YawAboutOrigin(angle)
			}
			trail = append(trail, tr.Position)
			if len(trail) > 240 {
				trail = trail[1:]
			}
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(24, 26, 32, 255))

		drawTopDown(tr, trail, params)
		drawPanel(&params, &tr, &trail)

		if paused {
			rl.DrawText("PAUSED", 15, previewSize+25, 16, rl.Orange)
		}
		rl.DrawText("SPACE: pause", 15, previewSize+45, 14, rl.DarkGray)

		rl.EndDrawing()
	}
}

// drawTopDown projects the rig onto the XZ plane, world origin at center.
func drawTopDown(tr components.Transform, trail []mgl32.Vec3, params RigParams) {
	center := rl.Vector2{X: previewSize / 2, Y: previewSize / 2}
	scale := float32(previewSize) / (2.2 * max(params.Radius, 1))

	project := func(p mgl32.Vec3) rl.Vector2 {
		return rl.Vector2{X: center.X + p.X()*scale, Y: center.Y + p.Z()*scale}
	}

	rl.DrawRectangleLines(10, 10, previewSize-20, previewSize-20, rl.DarkGray)
	rl.DrawCircleV(center, 4, rl.Gray)

	// Cube footprints at the four corners
	for _, sx := range []float32{1, -1} {
		for _, sz := range []float32{1, -1} {
			p := project(mgl32.Vec3{sx * 1.5, 0, sz * 1.5})
			half := 0.5 * scale
			rl.DrawRectangleLines(int32(p.X-half), int32(p.Y-half), int32(half*2), int32(half*2), rl.Beige)
		}
	}

	for i := 1; i < len(trail); i++ {
		rl.DrawLineV(project(trail[i-1]), project(trail[i]), rl.NewColor(80, 100, 160, 200))
	}

	// Camera position and look direction
	pos := project(tr.Position)
	fwd := tr.Forward()
	tip := project(tr.Position.Add(mgl32.Vec3{fwd.X(), 0, fwd.Z()}.Mul(2)))
	rl.DrawCircleV(pos, 6, rl.SkyBlue)
	rl.DrawLineV(pos, tip, rl.SkyBlue)
}

func drawPanel(params *RigParams, tr *components.Transform, trail *[]mgl32.Vec3) {
	panelX := float32(previewSize + 20)
	panelY := float32(10)

	rl.DrawText("Rig Parameters", int32(panelX), int32(panelY), 20, rl.RayWhite)
	panelY += 35

	prevRadius, prevHeight := params.Radius, params.Height

	panelY = slider(panelX, panelY, "Turns per second", &params.TurnsPerSec, 0, 2)
	panelY = slider(panelX, panelY, "Orbit radius", &params.Radius, 1, 15)
	panelY = slider(panelX, panelY, "Camera height", &params.Height, 0, 12)
	panelY = slider(panelX, panelY, "Smoothing", &params.Smoothing, 1, 20)

	if params.Radius != prevRadius || params.Height != prevHeight {
		reseat(tr, params.Radius, params.Height)
	}

	label := "Mode: orbit origin"
	if params.InPlace {
		label = "Mode: turn in place"
	}
	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 180, Height: 26}, label) {
		params.InPlace = !params.InPlace
	}
	panelY += 36

	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 180, Height: 26}, "Reset") {
		*tr = components.TransformAt(mgl32.Vec3{params.Radius, params.Height, 0})
		tr.LookAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
		*trail = nil
	}
	panelY += 44

	fwd := tr.Forward()
	rl.DrawText(fmt.Sprintf("pos  %5.2f %5.2f %5.2f", tr.Position.X(), tr.Position.Y(), tr.Position.Z()),
		int32(panelX), int32(panelY), 14, rl.Gray)
	rl.DrawText(fmt.Sprintf("fwd  %5.2f %5.2f %5.2f", fwd.X(), fwd.Y(), fwd.Z()),
		int32(panelX), int32(panelY)+18, 14, rl.Gray)
	rl.DrawText(fmt.Sprintf("dist %5.2f", tr.Position.Len()),
		int32(panelX), int32(panelY)+36, 14, rl.Gray)
}

// reseat moves the transform to the given orbit radius and height while
// keeping its current angular phase, then faces it back at the origin.
func reseat(tr *components.Transform, radius, height float32) {
	flat := mgl32.Vec3{tr.Position.X(), 0, tr.Position.Z()}
	dir := mgl32.Vec3{1, 0, 0}
	if l := flat.Len(); l > 1e-6 {
		dir = flat.Mul(1 / l)
	}
	tr.Position = dir.Mul(radius).Add(mgl32.Vec3{0, height, 0})
	tr.LookAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
}

func slider(x, y float32, label string, value *float32, min, max float32) float32 {
	rl.DrawText(label, int32(x), int32(y), 14, rl.Gray)
	y += 18
	newVal := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: float32(panelWidth - 80), Height: 20},
		fmt.Sprintf("%.1f", min), fmt.Sprintf("%.1f", max),
		*value, min, max,
	)
	rl.DrawText(fmt.Sprintf("%.2f", *value), int32(x+float32(panelWidth-70)), int32(y+2), 16, rl.DarkGray)
	*value = newVal
	return y + 35
}
