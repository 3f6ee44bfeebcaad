package clean

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshaymaurya-felt/archmole/internal/task"
)

func TestDiskUsageUnmeasurableRowDegradesToPlaceholder(t *testing.T) {
	r := newFakeRunner()
	env, out := newTestEnv(t, "", r)

	cache := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cache, "pkg"), make([]byte, 2048), 0o644))
	env.Config.CacheDir = cache

	// The fresh test home has no Trash directory, so that row is
	// unmeasurable while the cache row has a real size.
	o := runDiskUsage(context.Background(), env)

	assert.Equal(t, task.StatusSucceeded, o.Status, "one bad row must not fail the report")
	s := out.String()
	assert.Contains(t, s, "N/A")
	assert.Contains(t, s, "2.0 KB")
	assert.Contains(t, s, "Package cache")
	assert.Contains(t, s, "Trash")
}

func TestDiskUsagePermissionDeniedRowShowsPlaceholder(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	r := newFakeRunner()
	env, out := newTestEnv(t, "", r)

	locked := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.MkdirAll(locked, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(locked, "pkg"), make([]byte, 4096), 0o644))
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })
	env.Config.CacheDir = locked

	o := runDiskUsage(context.Background(), env)
	assert.Equal(t, task.StatusSucceeded, o.Status)

	var found bool
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.Contains(line, "Package cache") {
			found = true
			assert.Contains(t, line, "N/A", "a permission-denied location must not render a size")
		}
	}
	assert.True(t, found)
}

func TestDiskUsageIsReadOnly(t *testing.T) {
	r := newFakeRunner()
	env, _ := newTestEnv(t, "", r)

	cache := t.TempDir()
	blob := filepath.Join(cache, "pkg")
	require.NoError(t, os.WriteFile(blob, make([]byte, 10), 0o644))
	env.Config.CacheDir = cache

	_ = runDiskUsage(context.Background(), env)

	assert.FileExists(t, blob)
	assert.Empty(t, r.calls, "the report never invokes external tools")
}
