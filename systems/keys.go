package systems

import "log/slog"

// WatchedKey names a key the reporter observes. Code is the host key code,
// opaque to this package; Name appears in the emitted log lines.
type WatchedKey struct {
	Code int32
	Name string
}

// KeySnapshot is a point-in-time record of the watched keys, indexed in
// the same order the reporter was configured with. It is produced once per
// frame by the host loop and never mutated here.
type KeySnapshot struct {
	Down []bool
}

// IsDown reports whether the watched key at index i is held.
func (s KeySnapshot) IsDown(i int) bool {
	return i < len(s.Down) && s.Down[i]
}

// KeyEvent records a single edge transition of a watched key.
type KeyEvent struct {
	Key     string
	Pressed bool // true = just pressed, false = just released
}

// Reporter emits one log event per rising or falling edge of each watched
// key. A key held across frames produces no further events.
type Reporter struct {
	keys   []WatchedKey
	prev   []bool
	log    *slog.Logger
	events []KeyEvent // reused across frames
}

// NewReporter creates a reporter for the given keys. All keys start in the
// released state, so a key already held on the first frame counts as a press.
func NewReporter(keys []WatchedKey, log *slog.Logger) *Reporter {
	if log == nil {
		log = slog.Default()
	}
	return &Reporter{
		keys: keys,
		prev: make([]bool, len(keys)),
		log:  log,
	}
}

// Observe compares the snapshot against the previous frame and logs every
// transition. The returned slice is valid until the next call.
func (r *Reporter) Observe(snap KeySnapshot) []KeyEvent {
	events := r.events[:0]
	for i, k := range r.keys {
		down := snap.IsDown(i)
		switch {
		case down && !r.prev[i]:
			r.log.Info("key just pressed", "key", k.Name)
			events = append(events, KeyEvent{Key: k.Name, Pressed: true})
		case !down && r.prev[i]:
			r.log.Info("key just released", "key", k.Name)
			events = append(events, KeyEvent{Key: k.Name, Pressed: false})
		}
		r.prev[i] = down
	}
	r.events = events
	return events
}
