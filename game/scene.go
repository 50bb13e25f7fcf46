package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/turntable/components"
	"github.com/pthm-cable/turntable/config"
)

// spawnScene creates the initial object set: one orthographic camera
// looking at the origin, a ground plane, four cubes at the horizontal
// corners, and a point light. Returns the camera entity. Runs exactly once,
// before the first frame.
func spawnScene(world *ecs.World, opts Options) ecs.Entity {
	cfg := config.Cfg()

	camMapper := ecs.NewMap4[components.Transform, components.Camera, components.CameraRig, components.Spin](world)
	shapeMapper := ecs.NewMap2[components.Transform, components.Shape](world)
	lightMapper := ecs.NewMap2[components.Transform, components.PointLight](world)

	// Camera: offset position, looking at the origin, tagged with its spin.
	camTr := components.TransformAt(vec3(cfg.Camera.Position))
	camTr.LookAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	cam := components.Camera{
		Scale:          float32(cfg.Camera.Scale),
		VerticalExtent: float32(cfg.Camera.VerticalExtent),
	}
	rig := components.CameraRig{
		MoveSlope:    float32(cfg.Rig.MoveSensitivity[0]),
		MoveBias:     float32(cfg.Rig.MoveSensitivity[1]),
		YawRate:      float32(cfg.Rig.YawRate),
		ZoomStep:     float32(cfg.Rig.ZoomStep),
		MinScale:     float32(cfg.Rig.MinScale),
		MaxScale:     float32(cfg.Rig.MaxScale),
		Smoothing:    float32(cfg.Rig.Smoothing),
		ManualHold:   float32(cfg.Rig.ManualHold),
		TargetPos:    camTr.Position,
		TargetOrient: camTr.Orientation,
		TargetScale:  float32(cfg.Camera.Scale),
	}
	turns := float32(cfg.Camera.Spin)
	if opts.SpinOverride > 0 {
		turns = float32(opts.SpinOverride)
	}
	spin := components.Spin{TurnsPerSec: turns, InPlace: !cfg.Camera.Orbit}
	camera := camMapper.NewEntity(&camTr, &cam, &rig, &spin)

	// Ground plane, centered on the origin.
	planeTr := components.NewTransform()
	planeSize := float32(cfg.Scene.PlaneSize)
	plane := components.Shape{
		Kind:  components.ShapePlane,
		Size:  mgl32.Vec3{planeSize, 0, planeSize},
		Color: cfg.Scene.PlaneColor,
	}
	shapeMapper.NewEntity(&planeTr, &plane)

	// Four cubes at the horizontal corners, resting on the plane.
	size := float32(cfg.Scene.CubeSize)
	half := size / 2
	spacing := float32(cfg.Scene.CubeSpacing)
	for _, sx := range []float32{1, -1} {
		for _, sz := range []float32{1, -1} {
			cubeTr := components.TransformAt(mgl32.Vec3{sx * spacing, half, sz * spacing})
			cube := components.Shape{
				Kind:  components.ShapeCube,
				Size:  mgl32.Vec3{size, size, size},
				Color: cfg.Scene.CubeColor,
			}
			shapeMapper.NewEntity(&cubeTr, &cube)
		}
	}

	// Point light.
	lightTr := components.TransformAt(vec3(cfg.Scene.LightPosition))
	light := components.PointLight{
		Color:     cfg.Scene.LightColor,
		Intensity: float32(cfg.Scene.LightIntensity),
		Radius:    float32(cfg.Scene.LightRadius),
	}
	lightMapper.NewEntity(&lightTr, &light)

	return camera
}

func vec3(v [3]float64) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
