// Package voice captures a spoken query by running an external
// speech-to-text command such as termux-speech-to-text.
package voice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ErrNoCommand is returned when no capture command is configured
var ErrNoCommand = errors.New("no voice capture command configured")

// Result is the outcome of one capture. Query is only meaningful when Err is nil.
type Result struct {
	Query string
	Err   error
}

// OK reports whether the capture succeeded
func (r Result) OK() bool {
	return r.Err == nil
}

// Capturer runs a speech-to-text command and reads the recognized text from its stdout
type Capturer struct {
	Command string
	Args    []string
	Timeout time.Duration
}

// NewCapturer creates a capturer from a command line such as "termux-speech-to-text -e"
func NewCapturer(commandLine string, timeout time.Duration) *Capturer {
	fields := strings.Fields(commandLine)
	c := &Capturer{Timeout: timeout}
	if len(fields) > 0 {
		c.Command = fields[0]
		c.Args = fields[1:]
	}
	return c
}

// Capture runs the command once. It never panics and never blocks past the
// timeout; every failure is reported through Result.Err.
func (c *Capturer) Capture(ctx context.Context) Result {
	if c.Command == "" {
		return Result{Err: ErrNoCommand}
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.Command, c.Args...)
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{Err: fmt.Errorf("%s: %w", c.Command, ctxErr)}
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{Err: fmt.Errorf("%s exited with code %d: %s",
				c.Command, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))}
		}
		return Result{Err: fmt.Errorf("run %s: %w", c.Command, err)}
	}

	return Result{Query: strings.TrimSpace(stdout.String())}
}
