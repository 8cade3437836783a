// Package capture feeds hex-encoded HID report lines to the decoder from
// stdin, plain text files, or pcap captures via tshark.
package capture

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Source yields trimmed, non-empty payload lines from a capture input.
// Close must be called once the stream is drained; for pcap inputs it also
// reaps the tshark child process.
type Source struct {
	scanner *bufio.Scanner
	closer  io.Closer
	cmd     *exec.Cmd
	line    string
}

// IsPcap reports whether path looks like a pcap/pcapng capture.
func IsPcap(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pcap", ".pcapng":
		return true
	}
	return false
}

// Open prepares a line source for input, which is "-" for stdin, a pcap
// path (streamed through tshark using field, auto-detected when empty), or
// a text file of hex lines.
func Open(ctx context.Context, input, field string, logger *slog.Logger) (*Source, error) {
	if input == "-" {
		return &Source{scanner: bufio.NewScanner(os.Stdin)}, nil
	}
	if _, err := os.Stat(input); err != nil {
		return nil, fmt.Errorf("input %q: %w", input, err)
	}
	if IsPcap(input) {
		if field == "" {
			detected, err := DetectField(ctx, input, logger)
			if err != nil {
				return nil, err
			}
			field = detected
		}
		return openTshark(ctx, input, field)
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	return &Source{scanner: bufio.NewScanner(f), closer: f}, nil
}

func openTshark(ctx context.Context, path, field string) (*Source, error) {
	if _, err := exec.LookPath("tshark"); err != nil {
		return nil, fmt.Errorf("tshark not found in PATH: %w", err)
	}
	cmd := exec.CommandContext(ctx, "tshark", tsharkArgs(path, field)...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting tshark: %w", err)
	}
	return &Source{scanner: bufio.NewScanner(stdout), cmd: cmd}, nil
}

// Scan advances to the next non-empty line. It returns false at end of
// stream; Err distinguishes a clean end from a read failure.
func (s *Source) Scan() bool {
	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" {
			continue
		}
		s.line = line
		return true
	}
	return false
}

// Text returns the line found by the last successful Scan.
func (s *Source) Text() string { return s.line }

// Err returns the first error encountered while reading.
func (s *Source) Err() error { return s.scanner.Err() }

// Close releases the underlying file or tshark process. The child is killed
// before reaping: a consumer that halts mid-stream leaves tshark blocked on
// a full stdout pipe, and waiting on it directly would never return.
func (s *Source) Close() error {
	var err error
	if s.closer != nil {
		err = s.closer.Close()
	}
	if s.cmd != nil {
		_ = s.cmd.Process.Kill()
		_ = s.cmd.Wait()
	}
	return err
}
