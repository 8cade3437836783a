package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/m31r0n/usb2text/internal/capture"
	"github.com/m31r0n/usb2text/internal/log"
	"github.com/m31r0n/usb2text/keystroke"
)

// progressInterval is how many reports pass between progress log lines.
const progressInterval = 1000

// Decode reads HID reports from a capture and prints both keystroke views.
type Decode struct {
	Input  string `arg:"" name:"input" help:"pcap/pcapng capture, text file with hex reports, or '-' for stdin"`
	Output string `help:"Write the resolved text to a file" short:"o" type:"path"`
	Field  string `help:"Capture field carrying the HID payload (skips auto-detection)" env:"USB2TEXT_FIELD"`
}

// Run is called by Kong when the decode command is executed.
func (d *Decode) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return d.decode(ctx, logger, rawLogger, os.Stdout)
}

func (d *Decode) decode(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger, out io.Writer) error {
	logger.Info("starting decode", "input", d.Input)

	if d.Input == "-" && term.IsTerminal(int(os.Stdin.Fd())) {
		logger.Warn("reading hex reports from a terminal; end input with Ctrl-D")
	}

	src, err := capture.Open(ctx, d.Input, d.Field, logger)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	res := keystroke.NewResolver()
	var feedErr error
	for src.Scan() {
		rep, err := capture.ParseReport(src.Text())
		if err != nil {
			logger.Debug("skipping unparsable line", "line", src.Text(), "error", err)
			continue
		}
		rawLogger.Log(res.Count()+1, rep)
		if err := res.Feed(rep); err != nil {
			feedErr = err
			break
		}
		if res.Count()%progressInterval == 0 {
			logger.Info("processed reports", "count", res.Count())
		}
	}
	if err := src.Err(); err != nil {
		rerr := fmt.Errorf("reading input: %w", err)
		if feedErr == nil {
			feedErr = rerr
		} else {
			feedErr = errors.Join(feedErr, rerr)
		}
	}
	logger.Info("completed processing", "reports", res.Count())

	// Partial output is still shown when the stream fails mid-way.
	fmt.Fprintf(out, "\n=== HID with [CAPS] Markers ===\n\n%s\n", res.Marked())
	fmt.Fprintf(out, "\n=== Resolved Text ===\n\n%s\n", res.Resolved())

	if d.Output != "" {
		if err := os.WriteFile(d.Output, []byte(res.Resolved()+"\n"), 0o644); err != nil {
			werr := fmt.Errorf("writing %s: %w", d.Output, err)
			if feedErr == nil {
				return werr
			}
			return errors.Join(feedErr, werr)
		}
		logger.Info("saved resolved text", "file", d.Output)
	}
	return feedErr
}
