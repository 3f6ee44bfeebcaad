// Package sysexec wraps external command invocation behind a capability
// interface so maintenance tasks can be exercised against scripted
// outcomes without touching the real package manager or log tools.
package sysexec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"
)

// commandTimeout is the maximum time to wait for any wrapped tool.
// Package operations can legitimately take minutes on slow disks.
const commandTimeout = 15 * time.Minute

// Runner abstracts subprocess invocation and PATH probing.
type Runner interface {
	// Run executes a command, streaming its output to the configured writers.
	Run(ctx context.Context, name string, args ...string) error

	// Output executes a command and returns its captured stdout.
	Output(ctx context.Context, name string, args ...string) (string, error)

	// LookPath reports where a tool lives on PATH, or an error if absent.
	LookPath(name string) (string, error)
}

// SystemRunner executes commands on the host.
type SystemRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewSystemRunner returns a Runner wired to the process's own streams.
func NewSystemRunner() *SystemRunner {
	return &SystemRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r *SystemRunner) Run(ctx context.Context, name string, args ...string) error {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Stdin = os.Stdin
	if err := cmd.Run(); err != nil {
		return wrapExitError(ctx, name, err, nil)
	}
	return nil
}

func (r *SystemRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return string(out), wrapExitError(ctx, name, err, []byte(stderr.String()))
	}
	return string(out), nil
}

func (r *SystemRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// ExitError carries the exit code of a failed command so callers can
// distinguish "tool signalled a condition" from "tool blew up".
type ExitError struct {
	Name string
	Code int
	Msg  string
}

func (e *ExitError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s failed (exit code %d): %s", e.Name, e.Code, e.Msg)
	}
	return fmt.Sprintf("%s failed (exit code %d)", e.Name, e.Code)
}

// ExitCode extracts the exit code from an error returned by a Runner.
// Returns -1 when the error carries no exit code.
func ExitCode(err error) int {
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return -1
}

// wrapExitError translates exec failures into human-readable errors,
// truncating captured stderr at a valid UTF-8 boundary.
func wrapExitError(ctx context.Context, name string, err error, output []byte) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%s timed out after %s", name, commandTimeout)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		msg := strings.TrimSpace(string(output))
		if msg == "" {
			msg = strings.TrimSpace(string(exitErr.Stderr))
		}
		if len(msg) > 200 {
			msg = msg[:200]
			for len(msg) > 0 && !utf8.ValidString(msg) {
				msg = msg[:len(msg)-1]
			}
			msg += "..."
		}
		return &ExitError{Name: name, Code: exitErr.ExitCode(), Msg: msg}
	}

	return fmt.Errorf("%s: %w", name, err)
}
