package hid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m31r0n/usb2text/hid"
)

func report(mod, key uint8) hid.Report {
	b := make([]byte, hid.ReportSize)
	b[0] = mod
	b[2] = key
	return b
}

func TestDecode(t *testing.T) {
	type testCase struct {
		name     string
		report   hid.Report
		expected hid.KeyEvent
	}

	cases := []testCase{
		{
			name:     "letter",
			report:   report(0, hid.KeyA),
			expected: hid.KeyEvent{Kind: hid.EventChar, Base: 'a', Shifted: 'A'},
		},
		{
			name:     "letter with shift held decodes the same",
			report:   report(hid.ModLeftShift, hid.KeyZ),
			expected: hid.KeyEvent{Kind: hid.EventChar, Base: 'z', Shifted: 'Z'},
		},
		{
			name:     "digit",
			report:   report(0, hid.Key1),
			expected: hid.KeyEvent{Kind: hid.EventChar, Base: '1', Shifted: '!'},
		},
		{
			name:     "enter maps to newline",
			report:   report(0, hid.KeyEnter),
			expected: hid.KeyEvent{Kind: hid.EventChar, Base: '\n', Shifted: '\n'},
		},
		{
			name:     "tab maps to tab character",
			report:   report(0, hid.KeyTab),
			expected: hid.KeyEvent{Kind: hid.EventChar, Base: '\t', Shifted: '\t'},
		},
		{
			name:     "backspace",
			report:   report(0, hid.KeyBackspace),
			expected: hid.KeyEvent{Kind: hid.EventBackspace},
		},
		{
			name:     "caps lock",
			report:   report(0, hid.KeyCapsLock),
			expected: hid.KeyEvent{Kind: hid.EventCapsToggle},
		},
		{
			name:     "release report",
			report:   report(0, 0x00),
			expected: hid.KeyEvent{Kind: hid.EventNoop},
		},
		{
			name:     "modifier-only report",
			report:   report(hid.ModLeftShift|hid.ModLeftCtrl, 0x00),
			expected: hid.KeyEvent{Kind: hid.EventNoop},
		},
		{
			name:     "unmapped key is ignored",
			report:   report(0, hid.KeyF5),
			expected: hid.KeyEvent{Kind: hid.EventNoop},
		},
		{
			name:     "escape is ignored",
			report:   report(0, hid.KeyEscape),
			expected: hid.KeyEvent{Kind: hid.EventNoop},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev, err := hid.Decode(tc.report)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, ev)
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	type testCase struct {
		name   string
		report hid.Report
	}

	cases := []testCase{
		{name: "empty", report: hid.Report{}},
		{name: "short", report: hid.Report{0x00, 0x00, 0x04, 0x00, 0x00}},
		{name: "long", report: make(hid.Report, 9)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hid.Decode(tc.report)
			var merr *hid.MalformedReportError
			assert.ErrorAs(t, err, &merr)
			assert.Equal(t, len(tc.report), merr.Len)
		})
	}
}

func TestDecodeIsStateless(t *testing.T) {
	rep := report(hid.ModRightShift, hid.KeyQ)
	first, err := hid.Decode(rep)
	assert.NoError(t, err)
	second, err := hid.Decode(rep)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReportShift(t *testing.T) {
	type testCase struct {
		name     string
		mod      uint8
		expected bool
	}

	cases := []testCase{
		{name: "no modifiers", mod: 0x00, expected: false},
		{name: "left shift", mod: hid.ModLeftShift, expected: true},
		{name: "right shift", mod: hid.ModRightShift, expected: true},
		{name: "both shifts", mod: hid.ModLeftShift | hid.ModRightShift, expected: true},
		{name: "ctrl only", mod: hid.ModLeftCtrl, expected: false},
		{name: "alt and gui", mod: hid.ModLeftAlt | hid.ModRightGUI, expected: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, report(tc.mod, hid.KeyA).Shift())
		})
	}
}
