package task

import (
	"context"
	"fmt"
)

// Registry is the fixed, ordered set of maintenance tasks. Registration
// order is the canonical execution order for run-all and must match the
// displayed menu order.
type Registry struct {
	tasks []Task
}

func NewRegistry(tasks ...Task) *Registry {
	return &Registry{tasks: tasks}
}

// Tasks returns the tasks in registration order.
func (r *Registry) Tasks() []Task {
	return r.tasks
}

// Len returns the number of registered tasks.
func (r *Registry) Len() int {
	return len(r.tasks)
}

// Lookup finds a task by its stable name.
func (r *Registry) Lookup(name string) (Task, bool) {
	for _, t := range r.tasks {
		if t.Name == name {
			return t, true
		}
	}
	return Task{}, false
}

// Dispatch runs one task through the privilege gate. A privilege miss
// aborts the task, never the process.
func Dispatch(ctx context.Context, t Task, env *Env) Outcome {
	if t.NeedsRoot && !env.IsRoot() {
		return Outcome{
			Status:  StatusNoPrivilege,
			Message: "requires elevated privileges — re-run with sudo",
		}
	}
	return t.Run(ctx, env)
}

// RunAll executes every registered task in order behind one aggregate
// confirmation. A decline skips the entire sequence; no task runs.
func (r *Registry) RunAll(ctx context.Context, env *Env) []Outcome {
	prompt := fmt.Sprintf("Run all %d maintenance tasks?", len(r.tasks))
	if !env.Console.Confirm(prompt) {
		env.Console.Infof("run all: declined, nothing done")
		return nil
	}

	outcomes := make([]Outcome, 0, len(r.tasks))
	for _, t := range r.tasks {
		env.Console.Header(t.Title)
		o := Dispatch(ctx, t, env)
		Report(env.Console, t, o)
		outcomes = append(outcomes, o)
	}
	return outcomes
}
