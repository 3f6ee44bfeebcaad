package clean

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lakshaymaurya-felt/archmole/internal/task"
)

// backupSuffixes are the package-manager conflict/backup variants left
// behind next to their originals after upgrades.
var backupSuffixes = []string{".pacnew", ".pacsave", ".pacorig"}

func isConfigBackup(name string) bool {
	for _, suffix := range backupSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
		// Numbered rotations like resolv.conf.pacsave.1.
		if i := strings.LastIndex(name, suffix+"."); i >= 0 {
			rest := name[i+len(suffix)+1:]
			if rest != "" && strings.Trim(rest, "0123456789") == "" {
				return true
			}
		}
	}
	return false
}

// findConfigBackups walks the scan roots, skipping unreadable subtrees.
// Read access may be unprivileged; whatever is visible is reported.
func findConfigBackups(roots []string) []string {
	var found []string
	for _, root := range roots {
		_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() && p != root {
					return fs.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() && isConfigBackup(d.Name()) {
				found = append(found, p)
			}
			return nil
		})
	}
	return found
}

// runConfigs deletes stale config backup variants. Per-file deletion
// failures are surfaced individually, not swallowed.
func runConfigs(ctx context.Context, env *task.Env) task.Outcome {
	backups := findConfigBackups(env.Config.ConfigScanRoots)
	if len(backups) == 0 {
		return task.Succeedf("no stale config backups found")
	}

	env.Console.Infof("found %d stale config backup(s):", len(backups))
	for _, p := range backups {
		env.Console.Printf("      %s\n", p)
	}

	var failed int
	proceeded, _ := task.Guard(env.Console, "Delete all listed files?", func() error {
		for _, p := range backups {
			if err := os.Remove(p); err != nil {
				failed++
				env.Console.Errorf("cannot delete %s: %v", p, err)
			}
		}
		return nil
	})
	if !proceeded {
		return task.Declinedf("deletion declined, %d file(s) kept", len(backups))
	}
	if failed > 0 {
		return task.Failf("deleted %d of %d file(s); %d failed", len(backups)-failed, len(backups), failed)
	}
	return task.Succeedf("deleted %d config backup(s)", len(backups))
}
