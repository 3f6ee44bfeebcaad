package clean

import (
	"context"
	"strconv"

	"github.com/lakshaymaurya-felt/archmole/internal/core"
	"github.com/lakshaymaurya-felt/archmole/internal/task"
)

// runCache trims the package cache to the configured number of retained
// versions (non-destructive policy, no prompt), then offers to purge all
// cached versions of packages that are no longer installed.
func runCache(ctx context.Context, env *task.Env) task.Outcome {
	dir := env.Config.CacheDir
	before, err := core.DirSize(dir)
	if err != nil {
		return task.Failf("cannot measure package cache at %s: %v", dir, err)
	}

	env.Console.Infof("trimming cache, keeping %d most recent versions per package", env.Config.CacheKeep)
	if err := env.Runner.Run(ctx, "paccache", "-r", "-k", strconv.Itoa(env.Config.CacheKeep)); err != nil {
		return task.Failf("retention trim failed: %v", err)
	}

	afterTrim, _ := core.DirSize(dir)
	trimFreed := before - afterTrim
	if trimFreed > 0 {
		env.Console.Successf("retention trim freed %s", core.FormatSize(trimFreed))
	} else {
		env.Console.Infof("retention trim: no significant space freed")
	}

	// Purging every cached version of uninstalled packages is the
	// destructive half; it only runs on explicit confirmation. The trim
	// above already committed and is reported on its own either way.
	proceeded, err := task.Guard(env.Console, "Purge all cached versions of uninstalled packages?", func() error {
		return env.Runner.Run(ctx, "paccache", "-r", "-u", "-k", "0")
	})
	if err != nil {
		return task.Failf("uninstalled-package purge failed: %v", err)
	}
	if !proceeded {
		o := task.Declinedf("purge declined; retention trim already applied")
		if trimFreed > 0 {
			o.Reclaimed = trimFreed
		}
		return o
	}

	after, _ := core.DirSize(dir)
	freed := before - after
	if freed <= 0 {
		return task.Succeedf("no significant space freed")
	}
	o := task.Succeedf("cache cleanup complete")
	o.Reclaimed = freed
	return o
}
