// Package hid decodes USB HID boot-protocol keyboard reports into logical
// key events.
package hid

import "fmt"

// ReportSize is the fixed length of a boot-protocol keyboard report.
const ReportSize = 8

// Report is one raw boot-protocol keyboard report.
//
// Report layout (8 bytes):
//
//	Byte 0: Modifiers (8 bits)
//	Byte 1: Reserved
//	Bytes 2-7: Key usage code slots (0x00 = slot empty)
//
// Only the primary slot (byte 2) is interpreted; boot-protocol captures
// encode one key per report.
type Report []byte

// MalformedReportError reports a packet whose length is not ReportSize.
type MalformedReportError struct {
	Len int
}

func (e *MalformedReportError) Error() string {
	return fmt.Sprintf("malformed HID report: %d bytes, want %d", e.Len, ReportSize)
}

// Modifiers returns the modifier bitmask byte.
func (r Report) Modifiers() uint8 {
	if len(r) < 1 {
		return 0
	}
	return r[0]
}

// Shift reports whether either Shift bit is held in this report.
func (r Report) Shift() bool {
	return r.Modifiers()&ShiftMask != 0
}

// Key returns the usage code in the primary key slot.
func (r Report) Key() uint8 {
	if len(r) < 3 {
		return 0
	}
	return r[2]
}

// EventKind discriminates the logical key events a report can decode to.
type EventKind uint8

const (
	// EventNoop means the report presses nothing renderable: an all-zero
	// release report, a modifier-only report, or an unmapped usage code.
	EventNoop EventKind = iota
	// EventChar is a printable character key press.
	EventChar
	// EventBackspace removes the most recent character.
	EventBackspace
	// EventCapsToggle flips the persistent Caps-Lock state.
	EventCapsToggle
)

// KeyEvent is the logical event decoded from a single report. For EventChar,
// Base carries the unshifted character and Shifted the character produced
// with Shift held; shift state itself stays on the Report (see Shift) because
// applying it needs the stream's Caps-Lock state.
type KeyEvent struct {
	Kind    EventKind
	Base    rune
	Shifted rune
}

// Decode maps one report to its logical key event. It is stateless: each
// report is interpreted relative to no other report.
func Decode(r Report) (KeyEvent, error) {
	if len(r) != ReportSize {
		return KeyEvent{}, &MalformedReportError{Len: len(r)}
	}
	switch code := r.Key(); code {
	case 0x00:
		return KeyEvent{Kind: EventNoop}, nil
	case KeyBackspace:
		return KeyEvent{Kind: EventBackspace}, nil
	case KeyCapsLock:
		return KeyEvent{Kind: EventCapsToggle}, nil
	default:
		chars, ok := KeyChars[code]
		if !ok {
			// Unknown key, not a malformed report.
			return KeyEvent{Kind: EventNoop}, nil
		}
		return KeyEvent{Kind: EventChar, Base: chars[0], Shifted: chars[1]}, nil
	}
}
