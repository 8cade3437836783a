package cmd_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m31r0n/usb2text/internal/cmd"
	"github.com/m31r0n/usb2text/internal/log"
	"github.com/m31r0n/usb2text/keystroke"
)

func writeInput(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reports.txt")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func runDecode(t *testing.T, d *cmd.Decode) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := cmd.DecodeInto(d, context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)), log.NewRaw(nil), &out)
	return out.String(), err
}

func TestDecodeRun(t *testing.T) {
	// "hi", Shift held on the 'h'.
	input := writeInput(t, ""+
		"02:00:0b:00:00:00:00:00\n"+
		"00:00:00:00:00:00:00:00\n"+
		"00:00:0c:00:00:00:00:00\n"+
		"00:00:00:00:00:00:00:00\n")
	outFile := filepath.Join(t.TempDir(), "keys.txt")

	out, err := runDecode(t, &cmd.Decode{Input: input, Output: outFile})
	require.NoError(t, err)

	assert.Contains(t, out, "=== HID with [CAPS] Markers ===")
	assert.Contains(t, out, "=== Resolved Text ===")
	assert.Contains(t, out, "Hi")

	saved, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, "Hi\n", string(saved))
}

func TestDecodeSkipsUnparsableLines(t *testing.T) {
	input := writeInput(t, ""+
		"garbage line\n"+
		"00:00:04:00:00:00:00:00\n")

	out, err := runDecode(t, &cmd.Decode{Input: input})
	require.NoError(t, err)
	assert.Contains(t, out, "a")
}

func TestDecodeMalformedReportKeepsPartialOutput(t *testing.T) {
	input := writeInput(t, ""+
		"00:00:04:00:00:00:00:00\n"+
		"00:00:05:00:00:00:00:00\n"+
		"00:00:06\n"+
		"00:00:07:00:00:00:00:00\n")

	out, err := runDecode(t, &cmd.Decode{Input: input})

	var rerr *keystroke.ReportError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, 3, rerr.Index)
	// The two reports before the malformed one are still rendered.
	assert.Contains(t, out, "ab")
	assert.NotContains(t, out, "abd")
}

func TestDecodeReportsReadFailure(t *testing.T) {
	// A line beyond bufio.Scanner's token limit aborts the read mid-stream.
	input := writeInput(t, ""+
		"00:00:04:00:00:00:00:00\n"+
		strings.Repeat("a", 128*1024)+"\n")

	out, err := runDecode(t, &cmd.Decode{Input: input})
	assert.ErrorContains(t, err, "reading input")
	// Whatever decoded before the failure is still rendered.
	assert.Contains(t, out, "a")
}
