// Package components defines ECS components for the demo scene.
package components

import "github.com/go-gl/mathgl/mgl32"

// Spin marks an entity that revolves around the world Y axis.
// TurnsPerSec is in full rotations per second; the value is fixed at spawn.
type Spin struct {
	TurnsPerSec float32
	InPlace     bool // rotate about the entity's own pivot instead of the world origin
}

// Camera holds the orthographic projection parameters.
// The vertical world-space view size is Scale * VerticalExtent.
type Camera struct {
	Scale          float32
	VerticalExtent float32
}

// ShapeKind selects the mesh a Shape entity renders with.
type ShapeKind uint8

const (
	ShapePlane ShapeKind = iota
	ShapeCube
)

// Shape describes a static renderable object.
type Shape struct {
	Kind  ShapeKind
	Size  mgl32.Vec3
	Color [3]uint8
}

// PointLight holds a simple point light placed in the scene.
type PointLight struct {
	Color     [3]uint8
	Intensity float32
	Radius    float32 // falloff distance
}

// CameraRig holds the interactive camera control state. Input moves the
// target transform; the rig system eases the actual transform toward it.
type CameraRig struct {
	MoveSlope  float32 // pan speed = MoveSlope*height + MoveBias
	MoveBias   float32
	YawRate    float32 // radians per second for manual yaw
	ZoomStep   float32 // scale change per wheel notch
	MinScale   float32
	MaxScale   float32
	Smoothing  float32 // exponential approach rate toward the target
	ManualHold float32 // seconds the spin pauses after manual input
	Disabled   bool

	TargetPos    mgl32.Vec3
	TargetOrient mgl32.Quat
	TargetScale  float32
}

// ManualControl tags an entity whose automatic spin is paused while the
// user is steering it. Hold counts down to removal.
type ManualControl struct {
	Hold float32
}
