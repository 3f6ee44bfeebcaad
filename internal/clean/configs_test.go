package clean

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshaymaurya-felt/archmole/internal/task"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestConfigBackupNameMatching(t *testing.T) {
	assert.True(t, isConfigBackup("pacman.conf.pacnew"))
	assert.True(t, isConfigBackup("resolv.conf.pacsave"))
	assert.True(t, isConfigBackup("shells.pacorig"))
	assert.True(t, isConfigBackup("resolv.conf.pacsave.1"))
	assert.False(t, isConfigBackup("pacman.conf"))
	assert.False(t, isConfigBackup("notes-about-pacnew.txt"))
}

func TestConfigsEmptySetShowsNoPrompt(t *testing.T) {
	r := newFakeRunner()
	env, out := newTestEnv(t, "", r)
	env.Config.ConfigScanRoots = []string{t.TempDir()}

	o := runConfigs(context.Background(), env)

	assert.Equal(t, task.StatusSucceeded, o.Status)
	assert.Contains(t, o.Message, "no stale config backups")
	assert.NotContains(t, out.String(), "[y/N]")
}

func TestConfigsDeclineKeepsFiles(t *testing.T) {
	root := t.TempDir()
	stale := filepath.Join(root, "sub", "app.conf.pacnew")
	touch(t, stale)

	r := newFakeRunner()
	env, out := newTestEnv(t, "n\n", r)
	env.Config.ConfigScanRoots = []string{root}

	o := runConfigs(context.Background(), env)

	assert.Equal(t, task.StatusDeclined, o.Status)
	assert.FileExists(t, stale)
	assert.Contains(t, out.String(), stale)
}

func TestConfigsDeletesFullSetOnConfirm(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "a.pacnew")
	b := filepath.Join(root, "etc", "b.pacsave")
	keep := filepath.Join(root, "etc", "b.conf")
	touch(t, a)
	touch(t, b)
	touch(t, keep)

	r := newFakeRunner()
	env, _ := newTestEnv(t, "y\n", r)
	env.Config.ConfigScanRoots = []string{root}

	o := runConfigs(context.Background(), env)

	assert.Equal(t, task.StatusSucceeded, o.Status)
	assert.NoFileExists(t, a)
	assert.NoFileExists(t, b)
	assert.FileExists(t, keep)
}
