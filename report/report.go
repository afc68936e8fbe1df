// Package report defines the progress sink injected into long-running
// drivers (e.g. the meson spectroscopy loop).
//
// The sink is fire-and-forget by contract: it is never read back, and its
// absence or failure must never affect numeric results. Drivers therefore
// accept a Reporter value and write human-readable lines to it without
// checking for errors.
package report

import (
	"fmt"
	"io"
)

// Reporter accepts human-readable progress lines from a driver.
// Implementations must be safe to call with a trailing newline absent;
// they decide framing themselves.
type Reporter interface {
	// Printf formats and emits one progress message.
	Printf(format string, args ...any)
}

// Discard is a Reporter that drops every message. Pass it when no
// progress output is wanted; it is the zero-cost default.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Printf(string, ...any) {}

// NewWriter adapts an io.Writer into a Reporter. Each Printf call emits
// one newline-terminated line. Write errors are ignored: the sink is
// fire-and-forget and must not disturb the caller.
func NewWriter(w io.Writer) Reporter {
	return &writerReporter{w: w}
}

type writerReporter struct {
	w io.Writer
}

func (r *writerReporter) Printf(format string, args ...any) {
	if r.w == nil {
		return
	}
	_, _ = fmt.Fprintf(r.w, format+"\n", args...)
}
