package components

import "github.com/go-gl/mathgl/mgl32"

// Transform represents an entity's position and orientation in 3D space.
// Orientation is kept a unit quaternion; every mutation re-normalizes.
type Transform struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
	Scale       mgl32.Vec3
}

// NewTransform creates an identity transform at the origin.
func NewTransform() Transform {
	return Transform{
		Orientation: mgl32.QuatIdent(),
		Scale:       mgl32.Vec3{1, 1, 1},
	}
}

// TransformAt creates an identity transform at the given position.
func TransformAt(pos mgl32.Vec3) Transform {
	t := NewTransform()
	t.Position = pos
	return t
}

// LookAt orients the transform so its forward axis (-Z) points at target.
func (t *Transform) LookAt(target, up mgl32.Vec3) {
	t.Orientation = mgl32.QuatLookAtV(t.Position, target, up).Normalize()
}

// Forward returns the world-space forward direction (-Z rotated by the orientation).
func (t *Transform) Forward() mgl32.Vec3 {
	return t.Orientation.Rotate(mgl32.Vec3{0, 0, -1})
}

// Right returns the world-space right direction.
func (t *Transform) Right() mgl32.Vec3 {
	return t.Orientation.Rotate(mgl32.Vec3{1, 0, 0})
}

// YawInPlace composes a rotation of angle radians about the world Y axis
// onto the current orientation. Position and scale are untouched.
func (t *Transform) YawInPlace(angle float32) {
	rot := mgl32.QuatRotate(angle, mgl32.Vec3{0, 1, 0})
	t.Orientation = rot.Mul(t.Orientation).Normalize()
}

// YawAboutOrigin rotates the transform about the world Y axis anchored at
// the world origin: the position revolves and the orientation composes the
// same rotation, so whatever the entity was facing stays in view.
func (t *Transform) YawAboutOrigin(angle float32) {
	rot := mgl32.QuatRotate(angle, mgl32.Vec3{0, 1, 0})
	t.Orientation = rot.Mul(t.Orientation).Normalize()
	t.Position = rot.Rotate(t.Position)
}
