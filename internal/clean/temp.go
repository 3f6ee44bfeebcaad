package clean

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/lakshaymaurya-felt/archmole/internal/core"
	"github.com/lakshaymaurya-felt/archmole/internal/task"
)

// runTemp sweeps old temp files, vacuums the system journal, and drops
// partial package downloads. Every sub-step is best-effort: one failure
// must not abort the remaining sub-steps.
func runTemp(ctx context.Context, env *task.Env) task.Outcome {
	proceeded := env.Console.Confirm("Delete old temp files, vacuum the journal, and drop partial downloads?")
	if !proceeded {
		return task.Declinedf("temp cleanup declined")
	}

	var freed int64

	for _, policy := range env.Config.TempDirs {
		age := time.Duration(policy.MaxAgeDays) * 24 * time.Hour
		n, bytes := core.RemoveOlderThan(policy.Path, age)
		freed += bytes
		env.Console.Infof("%s: removed %d file(s) older than %dd (%s)",
			policy.Path, n, policy.MaxAgeDays, core.FormatSize(bytes))
	}

	vacuumArgs := []string{
		"--vacuum-time=" + env.Config.JournalMaxAge,
		"--vacuum-size=" + env.Config.JournalMaxSize,
	}
	if err := env.Runner.Run(ctx, "journalctl", vacuumArgs...); err != nil {
		env.Console.Warnf("journal vacuum failed: %v", err)
	} else {
		env.Console.Infof("journal vacuumed to %s / %s", env.Config.JournalMaxAge, env.Config.JournalMaxSize)
	}

	// Interrupted downloads leave *.part files in the package cache.
	parts, _ := filepath.Glob(filepath.Join(env.Config.CacheDir, "*.part"))
	var dropped int
	for _, p := range parts {
		info, statErr := os.Stat(p)
		if statErr != nil {
			continue
		}
		if rmErr := os.Remove(p); rmErr != nil {
			env.Console.Warnf("cannot remove %s: %v", p, rmErr)
			continue
		}
		dropped++
		freed += info.Size()
	}
	if dropped > 0 {
		env.Console.Infof("removed %d partial download(s)", dropped)
	}

	o := task.Succeedf("temp cleanup complete")
	o.Reclaimed = freed
	return o
}
