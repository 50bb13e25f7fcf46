package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/turntable/components"
	"github.com/pthm-cable/turntable/telemetry"
)

// Draw renders the scene and the overlay, closing the perf frame
// opened by Update.
func (g *Game) Draw() {
	g.perf.StartPhase(telemetry.PhaseRender)

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(24, 26, 32, 255))

	rl.BeginMode3D(g.camera3D())

	tint := g.lightTint()

	query := g.shapeFilter.Query()
	for query.Next() {
		tr, shape := query.Get()
		pos := rlVec(tr.Position)
		col := shaded(shape.Color, tint)
		switch shape.Kind {
		case components.ShapePlane:
			rl.DrawPlane(pos, rl.Vector2{X: shape.Size.X(), Y: shape.Size.Z()}, col)
		case components.ShapeCube:
			rl.DrawCubeV(pos, rlVec(shape.Size), col)
			rl.DrawCubeWiresV(pos, rlVec(shape.Size), rl.NewColor(40, 40, 48, 255))
		}
	}

	// Light marker
	lq := g.lightFilter.Query()
	for lq.Next() {
		tr, light := lq.Get()
		rl.DrawSphere(rlVec(tr.Position), 0.15, rl.NewColor(light.Color[0], light.Color[1], light.Color[2], 255))
	}

	rl.DrawGrid(10, 1.0)
	rl.EndMode3D()

	g.drawOverlay()

	rl.EndDrawing()
	g.perf.EndFrame()
}

// camera3D builds the raylib camera from the camera entity. For an
// orthographic projection Fovy is the vertical view size in world units.
func (g *Game) camera3D() rl.Camera3D {
	tr := g.transformMap.Get(g.cameraEntity)
	cam := g.cameraMap.Get(g.cameraEntity)

	target := tr.Position.Add(tr.Forward())
	return rl.Camera3D{
		Position:   rlVec(tr.Position),
		Target:     rlVec(target),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       cam.Scale * cam.VerticalExtent,
		Projection: rl.CameraOrthographic,
	}
}

// lightTint derives a flat shading factor from the point light intensity.
// There is no real lighting pass; the light only tints the scene.
func (g *Game) lightTint() float32 {
	tint := float32(1)
	lq := g.lightFilter.Query()
	for lq.Next() {
		_, light := lq.Get()
		if light.Intensity < tint {
			tint = light.Intensity
		}
	}
	if tint < 0.2 {
		tint = 0.2
	}
	return tint
}

func shaded(c [3]uint8, tint float32) rl.Color {
	return rl.NewColor(
		uint8(float32(c[0])*tint),
		uint8(float32(c[1])*tint),
		uint8(float32(c[2])*tint),
		255,
	)
}

func rlVec(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}
