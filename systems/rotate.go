// Package systems provides the per-frame systems for the demo scene.
package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/turntable/components"
)

// SanitizeDelta clamps malformed frame deltas to zero. Negative and
// non-finite values must never reach the rotation math, where they would
// poison the orientation state.
func SanitizeDelta(dt float32) float32 {
	f := float64(dt)
	if math.IsNaN(f) || math.IsInf(f, 0) || dt < 0 {
		return 0
	}
	return dt
}

// Rotation advances every entity carrying Transform+Spin by a world-Y
// rotation proportional to elapsed time. Entities under manual control
// are skipped until the hold expires.
type Rotation struct {
	filter *ecs.Filter2[components.Transform, components.Spin]
}

// NewRotation creates the rotation system for the given world.
func NewRotation(world *ecs.World) *Rotation {
	return &Rotation{
		filter: ecs.NewFilter2[components.Transform, components.Spin](world).
			Without(ecs.C[components.ManualControl]()),
	}
}

// Step applies spin for an elapsed time of dt seconds. A zero (or clamped)
// delta leaves every orientation bit-unchanged.
func (s *Rotation) Step(dt float32) {
	dt = SanitizeDelta(dt)
	if dt == 0 {
		return
	}

	query := s.filter.Query()
	for query.Next() {
		tr, spin := query.Get()
		angle := spin.TurnsPerSec * 2 * math.Pi * dt
		if spin.InPlace {
			tr.YawInPlace(angle)
		} else {
			tr.YawAboutOrigin(angle)
		}
	}
}
