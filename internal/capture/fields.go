package capture

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// CandidateFields are the tshark fields that may carry HID payloads,
// tried in order during auto-detection.
var CandidateFields = []string{"usbhid.data", "usb.capdata", "hid.data"}

// ErrNoHIDField means none of the candidate fields produced payload data.
var ErrNoHIDField = errors.New("no HID data field detected in capture")

func tsharkArgs(path, field string) []string {
	return []string{
		"-r", path,
		"-Y", fmt.Sprintf("usb.transfer_type==1 && %s", field),
		"-T", "fields",
		"-e", field,
	}
}

// DetectField probes a capture file with tshark and returns the first
// candidate field that yields non-zero HID payload lines.
func DetectField(ctx context.Context, path string, logger *slog.Logger) (string, error) {
	if _, err := exec.LookPath("tshark"); err != nil {
		return "", fmt.Errorf("tshark not found in PATH: %w", err)
	}
	for _, field := range CandidateFields {
		cmd := exec.CommandContext(ctx, "tshark", tsharkArgs(path, field)...)
		out, err := cmd.Output()
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			logger.Debug("tshark probe failed", "field", field, "error", err)
			continue
		}
		for _, line := range strings.Split(string(out), "\n") {
			// A line that is only zeros and colons is an empty payload.
			if strings.Trim(strings.TrimSpace(line), "0:") != "" {
				logger.Info("using HID field", "field", field)
				return field, nil
			}
		}
	}
	return "", ErrNoHIDField
}
