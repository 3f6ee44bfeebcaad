package clean

import (
	"context"
	"os"

	"github.com/lakshaymaurya-felt/archmole/internal/core"
	"github.com/lakshaymaurya-felt/archmole/internal/task"
)

// runUserCache measures each tracked user cache directory and clears the
// contents (never the directory itself) of those strictly above the
// configured threshold. Under sudo the original user's home is targeted,
// not root's.
func runUserCache(ctx context.Context, env *task.Env) task.Outcome {
	home, err := core.InvokerHome()
	if err != nil {
		return task.Failf("%v", err)
	}

	limit := env.Config.UserCacheLimit

	type candidate struct {
		path string
		size int64
	}
	var oversized []candidate
	var unmeasured int
	for _, dir := range env.Config.ResolveUserCacheDirs(home) {
		if _, statErr := os.Stat(dir); statErr != nil {
			continue
		}
		size, sizeErr := core.DirSize(dir)
		if sizeErr != nil {
			unmeasured++
			env.Console.Warnf("cannot measure %s: %v", dir, sizeErr)
			continue
		}
		if size > limit {
			oversized = append(oversized, candidate{path: dir, size: size})
		} else {
			env.Console.Infof("%s is %s, within the %s limit", dir, core.FormatSize(size), core.FormatSize(limit))
		}
	}

	if len(oversized) == 0 {
		if unmeasured > 0 {
			return task.Succeedf("no measurable user cache above the %s limit (%d unmeasurable)",
				core.FormatSize(limit), unmeasured)
		}
		return task.Succeedf("all user caches within the %s limit", core.FormatSize(limit))
	}

	env.Console.Infof("%d cache director(ies) above the %s limit:", len(oversized), core.FormatSize(limit))
	for _, c := range oversized {
		env.Console.Printf("      %s  %s\n", core.FormatSize(c.size), c.path)
	}

	var freed int64
	var failures int
	proceeded, _ := task.Guard(env.Console, "Clear the listed cache directories?", func() error {
		for _, c := range oversized {
			n, clearErr := core.ClearDir(c.path)
			freed += n
			if clearErr != nil {
				failures++
				env.Console.Warnf("partially cleared %s: %v", c.path, clearErr)
			}
		}
		return nil
	})
	if !proceeded {
		return task.Declinedf("clearing declined, caches untouched")
	}

	o := task.Succeedf("cleared %d cache director(ies)", len(oversized))
	if failures > 0 {
		o = task.Succeedf("cleared %d cache director(ies), %d with leftover entries", len(oversized), failures)
	}
	o.Reclaimed = freed
	return o
}
