package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// DirSize returns the total size of all regular files under path.
// Unreadable subtrees are skipped rather than failing the measurement;
// only a missing or unstatable root is an error.
func DirSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if !info.IsDir() {
		return info.Size(), nil
	}

	var total int64
	walkErr := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// An unreadable root makes the whole measurement invalid;
			// reporting it as 0 bytes would claim an empty directory.
			if p == path {
				return err
			}
			// Permission denied or vanished entry below the root — skip,
			// don't fail.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			if fi, infoErr := d.Info(); infoErr == nil {
				total += fi.Size()
			}
		}
		return nil
	})
	if walkErr != nil {
		return total, walkErr
	}
	return total, nil
}

// ClearDir removes the contents of dir while keeping the directory itself.
// Returns the bytes reclaimed. Per-entry failures are collected and
// returned joined; entries that could be removed are still removed.
func ClearDir(dir string) (int64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	var freed int64
	var errs []error
	for _, e := range entries {
		p := filepath.Join(dir, e.Name())
		size, _ := DirSize(p)
		if rmErr := os.RemoveAll(p); rmErr != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p, rmErr))
			continue
		}
		freed += size
	}
	return freed, errors.Join(errs...)
}

// RemoveOlderThan deletes regular files under dir whose modification time
// is older than maxAge. Subdirectories are descended into but never
// removed. Returns the number of files deleted and bytes reclaimed;
// individual failures are skipped.
func RemoveOlderThan(dir string, maxAge time.Duration) (int, int64) {
	cutoff := time.Now().Add(-maxAge)

	var removed int
	var freed int64
	_ = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() && p != dir {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		fi, infoErr := d.Info()
		if infoErr != nil || fi.ModTime().After(cutoff) {
			return nil
		}
		if rmErr := os.Remove(p); rmErr == nil {
			removed++
			freed += fi.Size()
		}
		return nil
	})
	return removed, freed
}

// FormatSize returns a human-readable byte count.
func FormatSize(bytes int64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
		tb = gb * 1024
	)
	switch {
	case bytes >= tb:
		return fmt.Sprintf("%.1f TB", float64(bytes)/float64(tb))
	case bytes >= gb:
		return fmt.Sprintf("%.1f GB", float64(bytes)/float64(gb))
	case bytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(mb))
	case bytes >= kb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(kb))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
