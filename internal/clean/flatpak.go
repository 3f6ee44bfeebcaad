package clean

import (
	"context"
	"path/filepath"

	"github.com/lakshaymaurya-felt/archmole/internal/core"
	"github.com/lakshaymaurya-felt/archmole/internal/task"
)

// runFlatpak removes unused Flatpak runtimes and apps, then sweeps the
// per-app cache directories. Flatpak is an optional component: when
// absent the task reports and succeeds.
func runFlatpak(ctx context.Context, env *task.Env) task.Outcome {
	if _, err := env.Runner.LookPath("flatpak"); err != nil {
		return task.Succeedf("flatpak not installed, skipping")
	}

	var freed int64
	proceeded, err := task.Guard(env.Console, "Remove unused Flatpak runtimes and apps?", func() error {
		if runErr := env.Runner.Run(ctx, "flatpak", "uninstall", "--unused", "-y"); runErr != nil {
			return runErr
		}
		freed = sweepFlatpakAppCaches(env)
		return nil
	})
	if err != nil {
		return task.Failf("flatpak cleanup failed: %v", err)
	}
	if !proceeded {
		return task.Declinedf("flatpak cleanup declined")
	}

	o := task.Succeedf("unused Flatpak data removed")
	o.Reclaimed = freed
	return o
}

// sweepFlatpakAppCaches clears the cache directory each installed app
// keeps under ~/.var/app. Best-effort: unreadable entries are reported
// and skipped.
func sweepFlatpakAppCaches(env *task.Env) int64 {
	home, err := core.InvokerHome()
	if err != nil {
		return 0
	}

	caches, _ := filepath.Glob(filepath.Join(home, ".var", "app", "*", "cache"))
	var freed int64
	for _, dir := range caches {
		n, clearErr := core.ClearDir(dir)
		freed += n
		if clearErr != nil {
			env.Console.Warnf("partially cleared %s: %v", dir, clearErr)
		}
	}
	if len(caches) > 0 {
		env.Console.Infof("cleared %d app cache director(ies) (%s)", len(caches), core.FormatSize(freed))
	}
	return freed
}
