package menu

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshaymaurya-felt/archmole/internal/config"
	"github.com/lakshaymaurya-felt/archmole/internal/console"
	"github.com/lakshaymaurya-felt/archmole/internal/task"
)

func testRegistry(ran *[]string) *task.Registry {
	mk := func(name string) task.Task {
		return task.Task{
			Name:        name,
			Title:       strings.ToUpper(name[:1]) + name[1:],
			Description: "test task " + name,
			Run: func(ctx context.Context, env *task.Env) task.Outcome {
				if ran != nil {
					*ran = append(*ran, name)
				}
				return task.Succeedf("ok")
			},
		}
	}
	return task.NewRegistry(mk("alpha"), mk("beta"), mk("gamma"))
}

func testLoopEnv(input string) (*task.Env, *bytes.Buffer) {
	var out bytes.Buffer
	return &task.Env{
		Console: console.New(strings.NewReader(input), &out),
		Config:  config.Default(),
		IsRoot:  func() bool { return true },
	}, &out
}

func TestResolve(t *testing.T) {
	reg := testRegistry(nil)

	tests := []struct {
		token string
		kind  Kind
		name  string
	}{
		{"1", KindTask, "alpha"},
		{"3", KindTask, "gamma"},
		{"beta", KindTask, "beta"},
		{" 2 ", KindTask, "beta"},
		{"4", KindAll, ""},
		{"0", KindExit, ""},
		{"q", KindExit, ""},
	}
	for _, tt := range tests {
		sel, err := Resolve(tt.token, reg)
		require.NoError(t, err, "token %q", tt.token)
		assert.Equal(t, tt.kind, sel.Kind, "token %q", tt.token)
		if tt.name != "" {
			assert.Equal(t, tt.name, sel.Task.Name)
		}
	}
}

func TestResolveUnknownToken(t *testing.T) {
	reg := testRegistry(nil)
	for _, token := range []string{"", "x", "99", "-1", "all tasks"} {
		_, err := Resolve(token, reg)
		assert.Error(t, err, "token %q", token)
	}
}

func TestRenderIsDeterministicAndOrdered(t *testing.T) {
	reg := testRegistry(nil)

	first := Render(reg)
	assert.Equal(t, first, Render(reg))

	// Menu numbering follows registration order.
	aIdx := strings.Index(first, "1) Alpha")
	bIdx := strings.Index(first, "2) Beta")
	gIdx := strings.Index(first, "3) Gamma")
	allIdx := strings.Index(first, "4) Run all")
	exitIdx := strings.Index(first, "0) Exit")
	require.True(t, aIdx >= 0 && bIdx >= 0 && gIdx >= 0 && allIdx >= 0 && exitIdx >= 0, "menu: %s", first)
	assert.True(t, aIdx < bIdx && bIdx < gIdx && gIdx < allIdx && allIdx < exitIdx)
}

func TestLoopInvalidInputRedisplaysWithoutExecuting(t *testing.T) {
	var ran []string
	reg := testRegistry(&ran)

	// Two bad tokens, then exit. Nothing should run, nothing should crash.
	env, out := testLoopEnv("bogus\nbogus\n0\n")
	Loop(context.Background(), reg, env, false)

	assert.Empty(t, ran)
	assert.Equal(t, 2, strings.Count(out.String(), "unknown option"))
	assert.GreaterOrEqual(t, strings.Count(out.String(), "1) Alpha"), 3,
		"menu is re-displayed after each invalid token")
}

func TestLoopRunsSelectedTaskThenReprompts(t *testing.T) {
	var ran []string
	reg := testRegistry(&ran)

	// Select task 2, press enter at the footer, then exit.
	env, out := testLoopEnv("2\n\n0\n")
	Loop(context.Background(), reg, env, false)

	assert.Equal(t, []string{"beta"}, ran)
	assert.Contains(t, out.String(), "Press Enter to continue")
}

func TestLoopRunAllDeclinedPerformsNothing(t *testing.T) {
	var ran []string
	reg := testRegistry(&ran)

	// Choose run-all, decline the aggregate gate, footer, exit.
	env, _ := testLoopEnv("4\nn\n\n0\n")
	Loop(context.Background(), reg, env, false)

	assert.Empty(t, ran, "a declined aggregate gate runs zero constituent tasks")
}

func TestLoopEOFExits(t *testing.T) {
	reg := testRegistry(nil)
	env, _ := testLoopEnv("")
	Loop(context.Background(), reg, env, false) // must return, not hang or panic
}
