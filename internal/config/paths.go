package config

import "path/filepath"

// TrackedLocation is one row of the disk-usage report.
type TrackedLocation struct {
	// Name is the human-readable label.
	Name string

	// Path is the filesystem location to measure.
	Path string

	// RequiresRoot indicates the location is usually unreadable without
	// elevation; an unmeasurable row degrades to a placeholder.
	RequiresRoot bool
}

// TrackedLocations returns the locations the disk-usage report measures,
// with home-relative entries resolved against the invoking user's home.
func (c *Config) TrackedLocations(home string) []TrackedLocation {
	return []TrackedLocation{
		{Name: "Package cache", Path: c.CacheDir},
		{Name: "System journal", Path: "/var/log/journal", RequiresRoot: true},
		{Name: "User cache", Path: filepath.Join(home, ".cache")},
		{Name: "Trash", Path: filepath.Join(home, ".local", "share", "Trash")},
		{Name: "Temp files", Path: "/tmp"},
		{Name: "Persistent temp", Path: "/var/tmp"},
		{Name: "Flatpak (system)", Path: "/var/lib/flatpak"},
		{Name: "Flatpak (user)", Path: filepath.Join(home, ".local", "share", "flatpak")},
	}
}

// AURHelper describes a third-party package helper whose cache the
// aur-cache task can clear via the helper's own subcommand.
type AURHelper struct {
	Name      string
	CacheDir  string   // relative to home
	CleanArgs []string // helper's cache-clearing subcommand
}

// AURHelpers returns the recognized third-party helpers in probe order.
func AURHelpers() []AURHelper {
	return []AURHelper{
		{Name: "yay", CacheDir: ".cache/yay", CleanArgs: []string{"-Sc", "--aur", "--noconfirm"}},
		{Name: "paru", CacheDir: ".cache/paru", CleanArgs: []string{"-Sc", "--noconfirm"}},
	}
}
