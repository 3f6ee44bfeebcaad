// Package clean implements the maintenance task bodies: thin wrappers
// over pacman, paccache, journalctl, flatpak, and the AUR helpers, plus
// the filesystem sweeps that need no external tool.
package clean

import "github.com/lakshaymaurya-felt/archmole/internal/task"

// Tasks returns the full maintenance registry in canonical execution
// order. This order is also the menu order; renumbering entries changes
// the user-facing numbering, so append only.
func Tasks() []task.Task {
	return []task.Task{
		{
			Name:        "cache",
			Title:       "Package cache",
			Description: "Trim cached package versions and purge uninstalled ones",
			NeedsRoot:   true,
			Destructive: true,
			Run:         runCache,
		},
		{
			Name:        "orphans",
			Title:       "Orphaned packages",
			Description: "Remove packages no longer required by anything",
			NeedsRoot:   true,
			Destructive: true,
			Run:         runOrphans,
		},
		{
			Name:        "configs",
			Title:       "Config backups",
			Description: "Delete stale .pacnew/.pacsave/.pacorig files",
			Destructive: true,
			Run:         runConfigs,
		},
		{
			Name:        "user-cache",
			Title:       "User caches",
			Description: "Clear oversized user cache directories",
			Destructive: true,
			Run:         runUserCache,
		},
		{
			Name:        "aur-cache",
			Title:       "AUR helper caches",
			Description: "Clear yay/paru build caches via the helpers themselves",
			Destructive: true,
			Run:         runAURCache,
		},
		{
			Name:        "temp",
			Title:       "Temp files and logs",
			Description: "Sweep old temp files, vacuum the journal, drop partial downloads",
			NeedsRoot:   true,
			Destructive: true,
			Run:         runTemp,
		},
		{
			Name:        "flatpak",
			Title:       "Flatpak",
			Description: "Remove unused Flatpak runtimes and apps",
			Destructive: true,
			Run:         runFlatpak,
		},
		{
			Name:        "disk-usage",
			Title:       "Disk usage",
			Description: "Report the size of every tracked location",
			Run:         runDiskUsage,
		},
	}
}
