package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/turntable/components"
	"github.com/pthm-cable/turntable/config"
)

func testScene(t *testing.T, opts Options) (*ecs.World, ecs.Entity) {
	t.Helper()
	config.MustInit("")
	world := ecs.NewWorld()
	camera := spawnScene(&world, opts)
	return &world, camera
}

func TestSpawnSceneCamera(t *testing.T) {
	world, camera := testScene(t, Options{})

	trMap := ecs.NewMap1[components.Transform](world)
	camMap := ecs.NewMap1[components.Camera](world)
	spinMap := ecs.NewMap1[components.Spin](world)
	rigMap := ecs.NewMap1[components.CameraRig](world)

	require.True(t, trMap.HasAll(camera))
	require.True(t, camMap.HasAll(camera))
	require.True(t, spinMap.HasAll(camera))
	require.True(t, rigMap.HasAll(camera))

	tr := trMap.Get(camera)
	assert.Equal(t, mgl32.Vec3{5, 5, 5}, tr.Position)

	// The camera faces the origin.
	want := tr.Position.Mul(-1).Normalize()
	assert.InDelta(t, 0, tr.Forward().Sub(want).Len(), 1e-4)

	cam := camMap.Get(camera)
	assert.InDelta(t, 3.0, cam.Scale, 1e-6)
	assert.InDelta(t, 2.0, cam.VerticalExtent, 1e-6)

	spin := spinMap.Get(camera)
	assert.InDelta(t, 0.3, spin.TurnsPerSec, 1e-6)
	assert.False(t, spin.InPlace, "default config orbits the origin")

	rig := rigMap.Get(camera)
	assert.Equal(t, tr.Position, rig.TargetPos)
	assert.InDelta(t, 3.0, rig.TargetScale, 1e-6)
}

func TestSpawnSceneShapes(t *testing.T) {
	world, _ := testScene(t, Options{})

	filter := ecs.NewFilter2[components.Transform, components.Shape](world)

	var planes, cubes int
	cubePositions := map[mgl32.Vec3]bool{}

	query := filter.Query()
	for query.Next() {
		tr, shape := query.Get()
		switch shape.Kind {
		case components.ShapePlane:
			planes++
			assert.Equal(t, mgl32.Vec3{}, tr.Position, "plane sits on the origin")
			assert.InDelta(t, 5.0, shape.Size.X(), 1e-6)
		case components.ShapeCube:
			cubes++
			cubePositions[tr.Position] = true
			assert.InDelta(t, 0.5, tr.Position.Y(), 1e-6, "cubes rest on the plane")
		}
	}

	assert.Equal(t, 1, planes)
	assert.Equal(t, 4, cubes)

	for _, want := range []mgl32.Vec3{
		{1.5, 0.5, 1.5},
		{1.5, 0.5, -1.5},
		{-1.5, 0.5, 1.5},
		{-1.5, 0.5, -1.5},
	} {
		assert.True(t, cubePositions[want], "missing cube at %v", want)
	}
}

func TestSpawnSceneLight(t *testing.T) {
	world, _ := testScene(t, Options{})

	filter := ecs.NewFilter2[components.Transform, components.PointLight](world)

	var lights int
	query := filter.Query()
	for query.Next() {
		tr, light := query.Get()
		lights++
		assert.Equal(t, mgl32.Vec3{3, 8, 5}, tr.Position)
		assert.InDelta(t, 1.0, light.Intensity, 1e-6)
	}
	assert.Equal(t, 1, lights)
}

func TestSpawnSceneSpinOverride(t *testing.T) {
	world, camera := testScene(t, Options{SpinOverride: 1.25})

	spinMap := ecs.NewMap1[components.Spin](world)
	assert.InDelta(t, 1.25, spinMap.Get(camera).TurnsPerSec, 1e-6)
}

func TestWatchedKeysResolution(t *testing.T) {
	keys := watchedKeys([]string{"left", "right", "bogus"})

	require.Len(t, keys, 2, "unknown names are skipped")
	assert.Equal(t, "left", keys[0].Name)
	assert.Equal(t, "right", keys[1].Name)
}
