package clean

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/lakshaymaurya-felt/archmole/internal/config"
	"github.com/lakshaymaurya-felt/archmole/internal/console"
	"github.com/lakshaymaurya-felt/archmole/internal/task"
)

// fakeRunner scripts subprocess outcomes keyed by the full command line.
type fakeRunner struct {
	calls   []string
	outputs map[string]string
	errs    map[string]error
	missing map[string]bool
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		outputs: map[string]string{},
		errs:    map[string]error{},
		missing: map[string]bool{},
	}
}

func cmdline(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	k := cmdline(name, args)
	f.calls = append(f.calls, k)
	return f.errs[k]
}

func (f *fakeRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	k := cmdline(name, args)
	f.calls = append(f.calls, k)
	return f.outputs[k], f.errs[k]
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.missing[name] {
		return "", exec.ErrNotFound
	}
	return "/usr/bin/" + name, nil
}

func (f *fakeRunner) called(prefix string) bool {
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

// newTestEnv builds an Env with scripted confirmation input and an
// isolated home directory.
func newTestEnv(t *testing.T, input string, r *fakeRunner) (*task.Env, *bytes.Buffer) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SUDO_USER", "")

	var out bytes.Buffer
	return &task.Env{
		Runner:  r,
		Console: console.New(strings.NewReader(input), &out),
		Config:  config.Default(),
		IsRoot:  func() bool { return true },
	}, &out
}
