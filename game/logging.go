package game

import (
	"fmt"
	"io"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/turntable/telemetry"
)

// logWriter is the destination for log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log message.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// logPerfStats logs a human-readable phase timing breakdown.
func (g *Game) logPerfStats() {
	total := g.perf.AvgFrame()
	Logf("=== Perf @ frame %d | FPS: %d ===", g.tick, rl.GetFPS())
	Logf("Avg frame time: %s", total.Round(time.Microsecond))

	for _, phase := range []string{
		telemetry.PhaseInput,
		telemetry.PhaseReport,
		telemetry.PhaseRig,
		telemetry.PhaseRotation,
		telemetry.PhaseRender,
	} {
		avg := g.perf.AvgPhase(phase)
		pct := float64(0)
		if total > 0 {
			pct = float64(avg) / float64(total) * 100
		}
		Logf("  %-10s %10s  %5.1f%%", phase, avg.Round(time.Microsecond), pct)
	}
	Logf("")
}
