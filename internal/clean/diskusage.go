package clean

import (
	"context"

	"github.com/shirou/gopsutil/v4/disk"

	"github.com/lakshaymaurya-felt/archmole/internal/core"
	"github.com/lakshaymaurya-felt/archmole/internal/task"
)

// runDiskUsage prints the size of every tracked location. Read-only: an
// unmeasurable location degrades to a placeholder row, it never fails
// the report.
func runDiskUsage(ctx context.Context, env *task.Env) task.Outcome {
	home, err := core.InvokerHome()
	if err != nil {
		return task.Failf("%v", err)
	}

	if usage, usageErr := disk.UsageWithContext(ctx, "/"); usageErr == nil {
		env.Console.Infof("filesystem /: %s used of %s (%.1f%%)",
			core.FormatSize(int64(usage.Used)), core.FormatSize(int64(usage.Total)), usage.UsedPercent)
	}

	for _, loc := range env.Config.TrackedLocations(home) {
		size, sizeErr := core.DirSize(loc.Path)
		if sizeErr != nil {
			env.Console.Printf("  %-18s %10s  %s\n", loc.Name, "N/A", loc.Path)
			continue
		}
		env.Console.Printf("  %-18s %10s  %s\n", loc.Name, core.FormatSize(size), loc.Path)
	}

	return task.Succeedf("disk usage reported")
}
