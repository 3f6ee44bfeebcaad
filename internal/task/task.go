// Package task defines the maintenance task model: the registry,
// per-task outcomes, the privilege gate, and the confirm-then-act guard
// every destructive operation goes through.
package task

import (
	"context"
	"fmt"

	"github.com/lakshaymaurya-felt/archmole/internal/config"
	"github.com/lakshaymaurya-felt/archmole/internal/console"
	"github.com/lakshaymaurya-felt/archmole/internal/core"
	"github.com/lakshaymaurya-felt/archmole/internal/sysexec"
)

// Status classifies how a task invocation ended.
type Status int

const (
	// StatusSucceeded means the task ran to completion (including the
	// "nothing to do" case).
	StatusSucceeded Status = iota

	// StatusDeclined means the user answered no at the confirmation gate;
	// no side effects were performed.
	StatusDeclined

	// StatusSkipped means a precondition other than privilege was unmet
	// (optional component absent).
	StatusSkipped

	// StatusNoPrivilege means the task needs elevation the process lacks.
	StatusNoPrivilege

	// StatusFailed means the wrapped tool or filesystem operation failed.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSucceeded:
		return "succeeded"
	case StatusDeclined:
		return "declined"
	case StatusSkipped:
		return "skipped"
	case StatusNoPrivilege:
		return "missing privilege"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of one task invocation. Produced by Run,
// consumed immediately by reporting, never persisted.
type Outcome struct {
	Status    Status
	Message   string
	Reclaimed int64
}

func Succeedf(format string, a ...any) Outcome {
	return Outcome{Status: StatusSucceeded, Message: fmt.Sprintf(format, a...)}
}

func Declinedf(format string, a ...any) Outcome {
	return Outcome{Status: StatusDeclined, Message: fmt.Sprintf(format, a...)}
}

func Skipf(format string, a ...any) Outcome {
	return Outcome{Status: StatusSkipped, Message: fmt.Sprintf(format, a...)}
}

func Failf(format string, a ...any) Outcome {
	return Outcome{Status: StatusFailed, Message: fmt.Sprintf(format, a...)}
}

// Env carries the injected capabilities a task body may use. IsRoot is a
// function so tests can simulate either privilege level.
type Env struct {
	Runner  sysexec.Runner
	Console *console.Console
	Config  *config.Config
	IsRoot  func() bool
}

// Task is one registered maintenance operation. Tasks are registered
// statically at startup and never mutated.
type Task struct {
	// Name is the stable identity; it doubles as the CLI flag.
	Name string

	// Title is the menu label.
	Title string

	// Description is the one-line menu/help description.
	Description string

	// NeedsRoot marks tasks touching system-owned paths or package state.
	NeedsRoot bool

	// Destructive marks tasks whose mutations sit behind a confirmation.
	Destructive bool

	Run func(ctx context.Context, env *Env) Outcome
}

// Guard runs action only after an affirmative confirmation. A decline is
// a no-op by construction: action is never invoked and (false, nil) is
// returned.
func Guard(c *console.Console, prompt string, action func() error) (bool, error) {
	if !c.Confirm(prompt) {
		return false, nil
	}
	return true, action()
}

// Report prints a task outcome color-tagged by severity.
func Report(c *console.Console, t Task, o Outcome) {
	msg := o.Message
	if o.Reclaimed > 0 {
		msg = fmt.Sprintf("%s (%s reclaimed)", msg, core.FormatSize(o.Reclaimed))
	}
	switch o.Status {
	case StatusSucceeded:
		c.Successf("%s: %s", t.Title, msg)
	case StatusDeclined, StatusSkipped:
		c.Infof("%s: %s", t.Title, msg)
	case StatusNoPrivilege:
		c.Warnf("%s: %s", t.Title, msg)
	case StatusFailed:
		c.Errorf("%s: %s", t.Title, msg)
	}
}
