// Package menu implements the interactive dispatcher: a numbered menu
// over the task registry, selection resolution, and the loop that runs
// one task per iteration until the user exits.
package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/lakshaymaurya-felt/archmole/internal/task"
)

// Kind classifies a resolved selection.
type Kind int

const (
	KindTask Kind = iota
	KindAll
	KindExit
)

// Selection is the resolved intent for one menu iteration.
type Selection struct {
	Kind Kind
	Task task.Task
}

// Resolve maps one input token to a selection. The numbering is derived
// from registration order: 1..n are tasks, n+1 is run-all, 0 exits.
func Resolve(token string, reg *task.Registry) (Selection, error) {
	token = strings.TrimSpace(token)
	switch token {
	case "0", "q":
		return Selection{Kind: KindExit}, nil
	case fmt.Sprint(reg.Len() + 1):
		return Selection{Kind: KindAll}, nil
	}
	for i, t := range reg.Tasks() {
		if token == fmt.Sprint(i+1) || token == t.Name {
			return Selection{Kind: KindTask, Task: t}, nil
		}
	}
	return Selection{}, fmt.Errorf("unknown option %q", token)
}

// Render returns the deterministic numbered menu text.
func Render(reg *task.Registry) string {
	var b strings.Builder
	b.WriteString("\n  Arch system maintenance\n")
	b.WriteString("  " + strings.Repeat("─", 48) + "\n")
	for i, t := range reg.Tasks() {
		root := "      "
		if t.NeedsRoot {
			root = "[root]"
		}
		fmt.Fprintf(&b, "   %d) %-20s %s %s\n", i+1, t.Title, root, t.Description)
	}
	fmt.Fprintf(&b, "   %d) %-20s        Run every task in order\n", reg.Len()+1, "Run all")
	fmt.Fprintf(&b, "   0) %-20s        Leave the menu\n", "Exit")
	return b.String()
}

// Loop drives the read-eval menu loop until an exit selection or EOF.
// interactive selects the full-screen picker; piped input gets the plain
// line-oriented fallback. Unrecognized input re-displays the menu, it
// never exits and never alters external state.
func Loop(ctx context.Context, reg *task.Registry, env *task.Env, interactive bool) {
	for {
		var sel Selection
		var ok bool
		if interactive {
			sel, ok = pickInteractive(reg, env)
		} else {
			sel, ok = pickPlain(reg, env)
		}
		if !ok {
			return
		}

		switch sel.Kind {
		case KindExit:
			return
		case KindAll:
			reg.RunAll(ctx, env)
		case KindTask:
			env.Console.Header(sel.Task.Title)
			o := task.Dispatch(ctx, sel.Task, env)
			task.Report(env.Console, sel.Task, o)
		}

		env.Console.Printf("\n  Press Enter to continue ")
		if _, more := env.Console.ReadLine(); !more {
			return
		}
	}
}

// pickPlain prints the menu and reads one token. Returns ok=false on EOF.
func pickPlain(reg *task.Registry, env *task.Env) (Selection, bool) {
	for {
		env.Console.Printf("%s", Render(reg))
		env.Console.Printf("\n  Select an option: ")
		line, more := env.Console.ReadLine()
		if !more {
			return Selection{}, false
		}
		sel, err := Resolve(line, reg)
		if err != nil {
			env.Console.Errorf("%v — enter a number from the menu", err)
			continue
		}
		return sel, true
	}
}
