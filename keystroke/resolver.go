// Package keystroke turns an ordered stream of HID keyboard reports into
// readable text.
//
// A Resolver maintains the cross-report state a single decode run needs
// (Caps-Lock, the output buffers) and produces two views of the stream: a
// marker view showing the raw keystrokes with [CAPS] annotations at lock
// transitions, and a resolved view with case fully applied.
package keystroke

import (
	"fmt"

	"github.com/m31r0n/usb2text/hid"
)

// CapsMarker is the token inlined into the marker view when the first
// character lands after Caps-Lock toggles on.
const CapsMarker = "[CAPS]"

// ReportError wraps a decode failure with the 1-based position of the
// offending report in the stream.
type ReportError struct {
	Index int
	Err   error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("report %d: %v", e.Index, e.Err)
}

func (e *ReportError) Unwrap() error { return e.Err }

// Resolver consumes reports strictly in arrival order and accumulates both
// output views. It is single-run: state is not resettable, so each decode
// run needs a fresh Resolver. Not safe for concurrent use.
type Resolver struct {
	capsLock bool
	markCaps bool // emit CapsMarker before the next character
	marked   []string
	resolved []rune
	count    int
}

// NewResolver returns a Resolver with Caps-Lock off and empty buffers.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Count returns the number of reports fed so far, including a trailing
// malformed one.
func (r *Resolver) Count() int { return r.count }

// Feed processes a single report. On a malformed report it returns a
// *ReportError carrying the report's 1-based stream position; everything
// accumulated before it stays readable via Marked and Resolved.
func (r *Resolver) Feed(report hid.Report) error {
	r.count++
	ev, err := hid.Decode(report)
	if err != nil {
		return &ReportError{Index: r.count, Err: err}
	}

	switch ev.Kind {
	case hid.EventCapsToggle:
		r.capsLock = !r.capsLock
		r.markCaps = r.capsLock
	case hid.EventBackspace:
		if n := len(r.marked); n > 0 {
			r.marked = r.marked[:n-1]
		}
		if n := len(r.resolved); n > 0 {
			r.resolved = r.resolved[:n-1]
		}
	case hid.EventChar:
		if r.markCaps {
			r.marked = append(r.marked, CapsMarker)
			r.markCaps = false
		}
		r.marked = append(r.marked, string(ev.Base))
		r.resolved = append(r.resolved, r.resolveChar(ev, report.Shift()))
	case hid.EventNoop:
	}
	return nil
}

// resolveChar applies case and shift semantics to one character event.
// Letters uppercase when exactly one of Shift and Caps-Lock holds; Shift and
// Caps-Lock both held cancel out, as on a physical keyboard. Symbols and
// digits answer to Shift alone.
func (r *Resolver) resolveChar(ev hid.KeyEvent, shift bool) rune {
	if ev.Base >= 'a' && ev.Base <= 'z' {
		if shift != r.capsLock {
			return ev.Shifted
		}
		return ev.Base
	}
	if shift {
		return ev.Shifted
	}
	return ev.Base
}

// Process feeds every report in order, halting at the first malformed one.
// The input is consumed exactly once; reports are never reordered.
func (r *Resolver) Process(reports [][]byte) error {
	for _, rep := range reports {
		if err := r.Feed(rep); err != nil {
			return err
		}
	}
	return nil
}

// Marked renders the marker view: the raw keystrokes as typed, with
// CapsMarker inlined where Caps-Lock runs begin.
func (r *Resolver) Marked() string {
	var out []byte
	for _, tok := range r.marked {
		out = append(out, tok...)
	}
	return string(out)
}

// Resolved renders the final human-readable view with case applied.
func (r *Resolver) Resolved() string {
	return string(r.resolved)
}
