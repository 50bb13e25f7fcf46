package systems

import "github.com/mlange-42/ark/ecs"

// SpinSystem adapts Rotation to the ark-tools scheduler, which drives
// headless runs with a fixed timestep instead of measured frame time.
type SpinSystem struct {
	DT float32

	rotation *Rotation
}

func (s *SpinSystem) Initialize(w *ecs.World) {
	s.rotation = NewRotation(w)
}

func (s *SpinSystem) Update(w *ecs.World) {
	s.rotation.Step(s.DT)
}

func (s *SpinSystem) Finalize(w *ecs.World) {}

// ReportSystem feeds the input reporter one snapshot per tick. Source is
// injected so headless runs (no keyboard) can supply empty snapshots.
type ReportSystem struct {
	Reporter *Reporter
	Source   func() KeySnapshot
}

func (s *ReportSystem) Initialize(w *ecs.World) {}

func (s *ReportSystem) Update(w *ecs.World) {
	if s.Reporter == nil {
		return
	}
	var snap KeySnapshot
	if s.Source != nil {
		snap = s.Source()
	}
	s.Reporter.Observe(snap)
}

func (s *ReportSystem) Finalize(w *ecs.World) {}
