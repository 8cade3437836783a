package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// RawLogger dumps raw HID report bytes with optional file output.
type RawLogger interface {
	Log(index int, data []byte)
}

// rawLogger implements RawLogger with thread-safe output.
type rawLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewRaw creates a new RawLogger. If writer is nil, returns a no-op logger.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w}
}

// Log emits a single line per report: its 1-based stream index, length and
// hex dump.
func (r *rawLogger) Log(index int, data []byte) {
	if len(data) == 0 || r.w == nil {
		return
	}

	var hexbuf bytes.Buffer
	const hexdigits = "0123456789abcdef"
	for i, b := range data {
		if i > 0 {
			hexbuf.WriteByte(' ')
		}
		hexbuf.WriteByte(hexdigits[b>>4])
		hexbuf.WriteByte(hexdigits[b&0x0f])
	}

	line := fmt.Sprintf("report %d: %d bytes, hex: %s\n", index, len(data), hexbuf.String())

	r.mu.Lock()
	_, _ = r.w.Write([]byte(line))
	r.mu.Unlock()
}
