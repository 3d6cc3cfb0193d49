package motion

import (
	"fmt"
	"io"
	"os"
	"time"
)

// globalDebug mirrors the debug flag of the most recently created Player (or
// the last SetDebugMode call) so that resolvers, which lack a Player pointer,
// can check it cheaply. Multiple Players with differing debug modes reflect
// whichever set it last.
var globalDebug bool

// debugOut receives debug lines. Tests swap it for a buffer.
var debugOut io.Writer = os.Stderr

// debugf prints a [motion] line when debug mode is on.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[motion] "+format+"\n", args...)
}

// debugStats holds per-frame scheduler metrics.
// Only populated when debug mode is on.
type debugStats struct {
	frame    uint64
	bindings int
	updated  int
	tickTime time.Duration
}

// debugLog prints frame stats to the debug writer.
func debugLog(stats debugStats) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(debugOut,
		"[motion] frame %d | callbacks: %d | updated: %d | tick: %v\n",
		stats.frame, stats.bindings, stats.updated, stats.tickTime)
}
