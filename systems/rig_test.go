package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/turntable/components"
)

func rigWorld(t *testing.T) (*ecs.World, ecs.Entity, *Rig) {
	t.Helper()
	world := ecs.NewWorld()
	mapper := ecs.NewMap3[components.Transform, components.Camera, components.CameraRig](&world)

	tr := components.TransformAt(mgl32.Vec3{5, 5, 5})
	tr.LookAt(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	cam := components.Camera{Scale: 3, VerticalExtent: 2}
	rig := components.CameraRig{
		MoveSlope:    0.4,
		MoveBias:     0.1,
		YawRate:      0.3,
		ZoomStep:     0.1,
		MinScale:     0.5,
		MaxScale:     10,
		Smoothing:    8,
		ManualHold:   1.5,
		TargetPos:    tr.Position,
		TargetOrient: tr.Orientation,
		TargetScale:  cam.Scale,
	}
	entity := mapper.NewEntity(&tr, &cam, &rig)

	return &world, entity, NewRig(&world)
}

const stepDT = float32(1.0 / 60)

func TestStepNoInputIsStable(t *testing.T) {
	world, entity, rig := rigWorld(t)
	trMap := ecs.NewMap1[components.Transform](world)
	manualMap := ecs.NewMap1[components.ManualControl](world)

	before := *trMap.Get(entity)
	for i := 0; i < 120; i++ {
		rig.Step(stepDT, RigInput{})
	}

	if after := *trMap.Get(entity); before != after {
		t.Errorf("idle rig moved the camera: %+v -> %+v", before, after)
	}
	if manualMap.HasAll(entity) {
		t.Error("idle rig tagged the camera as manually controlled")
	}
}

func TestStepInputTagsManualControl(t *testing.T) {
	world, entity, rig := rigWorld(t)
	manualMap := ecs.NewMap1[components.ManualControl](world)

	rig.Step(stepDT, RigInput{Forward: true})

	if !manualMap.HasAll(entity) {
		t.Fatal("input did not tag the camera as manually controlled")
	}
	if hold := manualMap.Get(entity).Hold; math.Abs(float64(hold-1.5)) > 1e-5 {
		t.Errorf("hold = %v, want 1.5", hold)
	}
}

func TestManualControlExpires(t *testing.T) {
	world, entity, rig := rigWorld(t)
	manualMap := ecs.NewMap1[components.ManualControl](world)

	rig.Step(stepDT, RigInput{Forward: true})

	// Hold is 1.5s; at 60 steps per second it expires within 91 idle steps.
	for i := 0; i < 91; i++ {
		rig.Step(stepDT, RigInput{})
	}

	if manualMap.HasAll(entity) {
		t.Error("manual control still active after the hold elapsed")
	}
}

func TestInputRefreshesHold(t *testing.T) {
	world, entity, rig := rigWorld(t)
	manualMap := ecs.NewMap1[components.ManualControl](world)

	rig.Step(stepDT, RigInput{Forward: true})
	for i := 0; i < 60; i++ {
		rig.Step(stepDT, RigInput{})
	}
	rig.Step(stepDT, RigInput{Forward: true})

	if hold := manualMap.Get(entity).Hold; math.Abs(float64(hold-1.5)) > 1e-5 {
		t.Errorf("hold after fresh input = %v, want 1.5", hold)
	}
}

func TestZoomMovesTargetScale(t *testing.T) {
	world, entity, rig := rigWorld(t)
	rigMap := ecs.NewMap1[components.CameraRig](world)

	rig.Step(stepDT, RigInput{Zoom: 1})

	// One notch in shrinks the target scale by the zoom step.
	want := float32(3 * 0.9)
	if got := rigMap.Get(entity).TargetScale; math.Abs(float64(got-want)) > 1e-4 {
		t.Errorf("TargetScale = %v, want %v", got, want)
	}
}

func TestZoomClampsToScaleRange(t *testing.T) {
	world, entity, rig := rigWorld(t)
	rigMap := ecs.NewMap1[components.CameraRig](world)

	for i := 0; i < 300; i++ {
		rig.Step(stepDT, RigInput{Zoom: 1})
	}
	if got := rigMap.Get(entity).TargetScale; got < 0.5 {
		t.Errorf("TargetScale = %v, below the 0.5 floor", got)
	}

	for i := 0; i < 300; i++ {
		rig.Step(stepDT, RigInput{Zoom: -1})
	}
	if got := rigMap.Get(entity).TargetScale; got > 10 {
		t.Errorf("TargetScale = %v, above the 10 ceiling", got)
	}
}

func TestScaleConvergesToTarget(t *testing.T) {
	world, entity, rig := rigWorld(t)
	camMap := ecs.NewMap1[components.Camera](world)
	rigMap := ecs.NewMap1[components.CameraRig](world)

	rig.Step(stepDT, RigInput{Zoom: 2})
	target := rigMap.Get(entity).TargetScale

	// Easing with smoothing 8 crosses the snap threshold well inside the
	// 1.5s manual hold.
	for i := 0; i < 80; i++ {
		rig.Step(stepDT, RigInput{})
	}

	if got := camMap.Get(entity).Scale; got != target {
		t.Errorf("Scale = %v, want exactly %v after convergence", got, target)
	}
}

func TestPanMovesTargetPosition(t *testing.T) {
	world, entity, rig := rigWorld(t)
	rigMap := ecs.NewMap1[components.CameraRig](world)

	start := rigMap.Get(entity).TargetPos
	rig.Step(stepDT, RigInput{Forward: true})
	moved := rigMap.Get(entity).TargetPos

	delta := moved.Sub(start)
	if delta.Len() == 0 {
		t.Fatal("forward input did not move the target")
	}
	// Panning stays in the ground plane.
	if delta.Y() != 0 {
		t.Errorf("pan changed height by %v, want 0", delta.Y())
	}
}

func TestYawPreservesTargetRadius(t *testing.T) {
	world, entity, rig := rigWorld(t)
	rigMap := ecs.NewMap1[components.CameraRig](world)

	radius := rigMap.Get(entity).TargetPos.Len()
	for i := 0; i < 120; i++ {
		rig.Step(stepDT, RigInput{YawCW: true})
	}

	if got := rigMap.Get(entity).TargetPos.Len(); math.Abs(float64(got-radius)) > 1e-2 {
		t.Errorf("target radius = %v, want %v", got, radius)
	}
}

func TestDisabledRigIgnoresInput(t *testing.T) {
	world, entity, rig := rigWorld(t)
	rigMap := ecs.NewMap1[components.CameraRig](world)
	manualMap := ecs.NewMap1[components.ManualControl](world)

	rigMap.Get(entity).Disabled = true
	before := rigMap.Get(entity).TargetPos

	rig.Step(stepDT, RigInput{Forward: true, Zoom: 1})

	if got := rigMap.Get(entity).TargetPos; got != before {
		t.Errorf("disabled rig moved the target: %v -> %v", before, got)
	}
	if manualMap.HasAll(entity) {
		t.Error("disabled rig tagged the camera as manually controlled")
	}
}
