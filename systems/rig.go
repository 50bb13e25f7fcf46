package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/turntable/components"
)

// RigInput is one frame of camera control input, gathered by the host loop.
type RigInput struct {
	Forward, Backward bool
	Left, Right       bool
	YawCW, YawCCW     bool
	Zoom              float32 // wheel notches this frame, positive = zoom in
}

func (in RigInput) active() bool {
	return in.Forward || in.Backward || in.Left || in.Right ||
		in.YawCW || in.YawCCW || in.Zoom != 0
}

// Rig steers camera entities: input moves a target transform, the actual
// transform eases toward it, and manual input pauses the automatic spin by
// tagging the entity with ManualControl.
type Rig struct {
	filter    *ecs.Filter3[components.Transform, components.Camera, components.CameraRig]
	rigMap    *ecs.Map1[components.CameraRig]
	manualMap *ecs.Map1[components.ManualControl]

	// scratch for deferred structural changes; the world is locked
	// while a query is open
	mark  []ecs.Entity
	clear []ecs.Entity
}

// NewRig creates the rig system for the given world.
func NewRig(world *ecs.World) *Rig {
	return &Rig{
		filter:    ecs.NewFilter3[components.Transform, components.Camera, components.CameraRig](world),
		rigMap:    ecs.NewMap1[components.CameraRig](world),
		manualMap: ecs.NewMap1[components.ManualControl](world),
	}
}

// Step processes one frame of rig input with an elapsed time of dt seconds.
func (r *Rig) Step(dt float32, in RigInput) {
	dt = SanitizeDelta(dt)
	if dt == 0 {
		return
	}

	r.mark = r.mark[:0]
	r.clear = r.clear[:0]

	query := r.filter.Query()
	for query.Next() {
		tr, cam, rig := query.Get()
		if rig.Disabled {
			continue
		}
		entity := query.Entity()
		manual := r.manualMap.HasAll(entity)

		// While the spin owns the camera, the target trails the actual
		// transform so manual input always starts from where we are.
		if !manual {
			rig.TargetPos = tr.Position
			rig.TargetOrient = tr.Orientation
			rig.TargetScale = cam.Scale
		}

		moved := in.active()
		if moved {
			r.applyInput(tr, rig, in, dt)
			r.mark = append(r.mark, entity)
		}

		approach(tr, cam, rig, dt)

		if manual && !moved {
			mc := r.manualMap.Get(entity)
			mc.Hold -= dt
			if mc.Hold <= 0 {
				r.clear = append(r.clear, entity)
			}
		}
	}

	for _, e := range r.mark {
		if r.manualMap.HasAll(e) {
			r.manualMap.Get(e).Hold = r.holdFor(e)
		} else {
			r.manualMap.Add(e, &components.ManualControl{Hold: r.holdFor(e)})
		}
	}
	for _, e := range r.clear {
		r.manualMap.Remove(e)
	}
}

// applyInput moves the rig targets according to one frame of input.
func (r *Rig) applyInput(tr *components.Transform, rig *components.CameraRig, in RigInput, dt float32) {
	// Pan in the camera's ground-plane frame, faster when higher up.
	sens := (rig.MoveSlope*tr.Position.Y() + rig.MoveBias) * dt
	fwd := flatten(tr.Forward())
	right := flatten(tr.Right())

	if in.Forward {
		rig.TargetPos = rig.TargetPos.Add(fwd.Mul(sens))
	}
	if in.Backward {
		rig.TargetPos = rig.TargetPos.Sub(fwd.Mul(sens))
	}
	if in.Right {
		rig.TargetPos = rig.TargetPos.Add(right.Mul(sens))
	}
	if in.Left {
		rig.TargetPos = rig.TargetPos.Sub(right.Mul(sens))
	}

	var yaw float32
	if in.YawCCW {
		yaw += rig.YawRate * dt
	}
	if in.YawCW {
		yaw -= rig.YawRate * dt
	}
	if yaw != 0 {
		rot := mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0})
		rig.TargetOrient = rot.Mul(rig.TargetOrient).Normalize()
		rig.TargetPos = rot.Rotate(rig.TargetPos)
	}

	if in.Zoom != 0 {
		rig.TargetScale = clamp(rig.TargetScale*(1-in.Zoom*rig.ZoomStep), rig.MinScale, rig.MaxScale)
	}
}

// approach eases the actual transform toward the rig targets and snaps when
// the remaining distance is below the visible threshold.
func approach(tr *components.Transform, cam *components.Camera, rig *components.CameraRig, dt float32) {
	alpha := 1 - float32(math.Exp(float64(-rig.Smoothing*dt)))

	delta := rig.TargetPos.Sub(tr.Position)
	if delta.Len() > 0.005 {
		tr.Position = tr.Position.Add(delta.Mul(alpha))
	} else {
		tr.Position = rig.TargetPos
	}

	if abs32(tr.Orientation.Dot(rig.TargetOrient)) < 0.99999 {
		tr.Orientation = mgl32.QuatSlerp(tr.Orientation, rig.TargetOrient, alpha).Normalize()
	} else {
		tr.Orientation = rig.TargetOrient
	}

	if abs32(rig.TargetScale-cam.Scale) > 0.001 {
		cam.Scale += (rig.TargetScale - cam.Scale) * alpha
	} else {
		cam.Scale = rig.TargetScale
	}
}

func (r *Rig) holdFor(e ecs.Entity) float32 {
	rig := r.rigMap.Get(e)
	if rig == nil {
		return 0
	}
	return rig.ManualHold
}

func flatten(v mgl32.Vec3) mgl32.Vec3 {
	v[1] = 0
	if l := v.Len(); l > 1e-6 {
		return v.Mul(1 / l)
	}
	return mgl32.Vec3{}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
