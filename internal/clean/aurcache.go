package clean

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/lakshaymaurya-felt/archmole/internal/config"
	"github.com/lakshaymaurya-felt/archmole/internal/core"
	"github.com/lakshaymaurya-felt/archmole/internal/task"
)

// runAURCache invokes each recognized AUR helper's own cache-clearing
// subcommand. A helper that is absent, or present without a cache
// directory, is skipped silently — not an error.
func runAURCache(ctx context.Context, env *task.Env) task.Outcome {
	home, err := core.InvokerHome()
	if err != nil {
		return task.Failf("%v", err)
	}

	var present []config.AURHelper
	for _, h := range config.AURHelpers() {
		if _, lookErr := env.Runner.LookPath(h.Name); lookErr != nil {
			continue
		}
		if _, statErr := os.Stat(filepath.Join(home, h.CacheDir)); statErr != nil {
			continue
		}
		present = append(present, h)
	}

	if len(present) == 0 {
		return task.Succeedf("no AUR helper caches found")
	}

	names := make([]string, 0, len(present))
	for _, h := range present {
		names = append(names, h.Name)
	}

	var failures []string
	proceeded, _ := task.Guard(env.Console, "Clear caches for "+strings.Join(names, ", ")+"?", func() error {
		for _, h := range present {
			if runErr := env.Runner.Run(ctx, h.Name, h.CleanArgs...); runErr != nil {
				failures = append(failures, h.Name)
				env.Console.Warnf("%s cache clean failed: %v", h.Name, runErr)
			}
		}
		return nil
	})
	if !proceeded {
		return task.Declinedf("cache clean declined")
	}
	if len(failures) == len(present) {
		return task.Failf("every helper cache clean failed")
	}
	return task.Succeedf("cleared caches for %d helper(s)", len(present)-len(failures))
}
