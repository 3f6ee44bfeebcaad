package clean

import (
	"context"
	"strings"

	"github.com/lakshaymaurya-felt/archmole/internal/sysexec"
	"github.com/lakshaymaurya-felt/archmole/internal/task"
)

// runOrphans removes packages with no remaining reverse dependency that
// were not explicitly installed. The whole set is removed as one
// privileged operation, never one by one.
func runOrphans(ctx context.Context, env *task.Env) task.Outcome {
	out, err := env.Runner.Output(ctx, "pacman", "-Qdtq")
	if err != nil {
		// pacman -Qdtq exits 1 with empty output when nothing matches.
		if sysexec.ExitCode(err) == 1 && strings.TrimSpace(out) == "" {
			return task.Succeedf("no orphaned packages found")
		}
		return task.Failf("cannot query orphaned packages: %v", err)
	}

	orphans := strings.Fields(out)
	if len(orphans) == 0 {
		return task.Succeedf("no orphaned packages found")
	}

	env.Console.Infof("found %d orphaned package(s):", len(orphans))
	for _, p := range orphans {
		env.Console.Printf("      %s\n", p)
	}

	proceeded, err := task.Guard(env.Console, "Remove all listed packages?", func() error {
		args := append([]string{"-Rns", "--noconfirm"}, orphans...)
		return env.Runner.Run(ctx, "pacman", args...)
	})
	if err != nil {
		return task.Failf("orphan removal failed: %v", err)
	}
	if !proceeded {
		return task.Declinedf("orphan removal declined, nothing removed")
	}
	return task.Succeedf("removed %d orphaned package(s)", len(orphans))
}
