// Package config holds the tunable policy knobs and the tracked-path
// tables. Defaults are compiled in; an optional YAML file can override
// them per machine.
package config

import (
	"errors"
	"path/filepath"

	"github.com/spf13/viper"
)

const mib = 1024 * 1024

// Config is the resolved maintenance policy for one invocation.
type Config struct {
	// CacheKeep is how many cached versions of each package survive the
	// retention trim unconditionally.
	CacheKeep int

	// CacheDir is the package manager's download cache.
	CacheDir string

	// UserCacheLimit is the size a tracked user cache directory must
	// strictly exceed before its contents are cleared.
	UserCacheLimit int64

	// TempDirs are the temp locations swept by the temp task, each with
	// its own age threshold in days.
	TempDirs []TempDirPolicy

	// JournalMaxAge and JournalMaxSize bound the system journal
	// (journalctl --vacuum-time / --vacuum-size).
	JournalMaxAge  string
	JournalMaxSize string

	// ConfigScanRoots are walked for stale package-manager config
	// backups (*.pacnew, *.pacsave, *.pacorig).
	ConfigScanRoots []string

	// UserCacheDirs are home-relative cache directories measured against
	// UserCacheLimit.
	UserCacheDirs []string
}

// TempDirPolicy pairs a temp directory with its retention age.
type TempDirPolicy struct {
	Path       string
	MaxAgeDays int
}

// Default returns the compiled-in policy.
func Default() *Config {
	return &Config{
		CacheKeep:      2,
		CacheDir:       "/var/cache/pacman/pkg",
		UserCacheLimit: 100 * mib,
		TempDirs: []TempDirPolicy{
			{Path: "/tmp", MaxAgeDays: 7},
			{Path: "/var/tmp", MaxAgeDays: 30},
		},
		JournalMaxAge:   "2weeks",
		JournalMaxSize:  "100M",
		ConfigScanRoots: []string{"/etc"},
		UserCacheDirs:   []string{".cache", ".local/share/Trash", ".thumbnails"},
	}
}

// Load resolves the policy from defaults plus an optional config file in
// /etc/archmole or ~/.config/archmole. A missing file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/archmole")
	v.AddConfigPath("$HOME/.config/archmole")

	def := Default()
	v.SetDefault("cache.keep", def.CacheKeep)
	v.SetDefault("cache.dir", def.CacheDir)
	v.SetDefault("user_cache.limit_mb", def.UserCacheLimit/mib)
	v.SetDefault("user_cache.dirs", def.UserCacheDirs)
	v.SetDefault("temp.tmp_max_age_days", def.TempDirs[0].MaxAgeDays)
	v.SetDefault("temp.var_tmp_max_age_days", def.TempDirs[1].MaxAgeDays)
	v.SetDefault("journal.max_age", def.JournalMaxAge)
	v.SetDefault("journal.max_size", def.JournalMaxSize)
	v.SetDefault("configs.roots", def.ConfigScanRoots)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		CacheKeep:      v.GetInt("cache.keep"),
		CacheDir:       v.GetString("cache.dir"),
		UserCacheLimit: v.GetInt64("user_cache.limit_mb") * mib,
		TempDirs: []TempDirPolicy{
			{Path: "/tmp", MaxAgeDays: v.GetInt("temp.tmp_max_age_days")},
			{Path: "/var/tmp", MaxAgeDays: v.GetInt("temp.var_tmp_max_age_days")},
		},
		JournalMaxAge:   v.GetString("journal.max_age"),
		JournalMaxSize:  v.GetString("journal.max_size"),
		ConfigScanRoots: v.GetStringSlice("configs.roots"),
		UserCacheDirs:   v.GetStringSlice("user_cache.dirs"),
	}, nil
}

// ResolveUserCacheDirs returns the absolute tracked user cache
// directories for the given home.
func (c *Config) ResolveUserCacheDirs(home string) []string {
	dirs := make([]string, 0, len(c.UserCacheDirs))
	for _, d := range c.UserCacheDirs {
		dirs = append(dirs, filepath.Join(home, d))
	}
	return dirs
}
