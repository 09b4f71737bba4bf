// Package trace captures textual stack snapshots for failure diagnostics.
//
// It is the only place the library touches the runtime's call stack; callers
// treat the snapshot as an opaque string and never parse it.
package trace

import (
	"fmt"
	"runtime"
	"strings"
)

// maxDepth bounds a snapshot; deeper frames are dropped.
const maxDepth = 64

// Capture returns a snapshot of the calling goroutine's stack, one frame per
// "function\n\tfile:line" pair, innermost first. skip omits that many extra
// frames beyond Capture itself; runtime-internal frames are elided.
//
// Called from a deferred recover handler, the snapshot includes the frames
// that were unwinding when the fault was raised.
func Capture(skip int) string {
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if f.Function != "" && !strings.HasPrefix(f.Function, "runtime.") {
			fmt.Fprintf(&b, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		}
		if !more {
			break
		}
	}
	return b.String()
}
