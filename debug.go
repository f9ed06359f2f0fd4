package starfield

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugStats holds per-frame timing and culling metrics.
// Only populated when the renderer's debug mode is on.
type debugStats struct {
	advanceTime time.Duration
	emitTime    time.Duration
	frame       FrameStats
}

// debugOutput is where debug lines go. Tests swap it out.
var debugOutput io.Writer = os.Stderr

// debugLog prints timing and culling stats.
func debugLog(stats debugStats) {
	total := stats.advanceTime + stats.emitTime
	_, _ = fmt.Fprintf(debugOutput,
		"[starfield] advance: %v | cull+emit: %v | total: %v\n",
		stats.advanceTime, stats.emitTime, total)
	_, _ = fmt.Fprintf(debugOutput,
		"[starfield] drawn: %d | hidden: %d | culled: %d\n",
		stats.frame.Drawn, stats.frame.Hidden, stats.frame.Culled)
}

// warnf prints a prefixed warning.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(debugOutput, "[starfield] "+format+"\n", args...)
}

// SetDebugOutput redirects debug lines and warnings. Nil restores stderr.
func SetDebugOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	debugOutput = w
}
