package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/archmole/internal/clean"
	"github.com/lakshaymaurya-felt/archmole/internal/config"
	"github.com/lakshaymaurya-felt/archmole/internal/console"
	"github.com/lakshaymaurya-felt/archmole/internal/core"
	"github.com/lakshaymaurya-felt/archmole/internal/menu"
	"github.com/lakshaymaurya-felt/archmole/internal/sysexec"
	"github.com/lakshaymaurya-felt/archmole/internal/task"
)

var (
	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
	rootCmd.Version = fmt.Sprintf("%s (%s) built %s", appVersion, appCommit, appDate)
}

var rootCmd = &cobra.Command{
	Use:   "am",
	Short: "Clean and maintain your Arch Linux system",
	Long: `ArchMole - Clean and maintain your Arch Linux system.

An Arch Linux sibling of WinMole. Interactive maintenance toolkit for
package cache trimming, orphan removal, stale config backups, user and
AUR helper caches, temp/journal cleanup, and Flatpak leftovers.

Without flags, an interactive menu is shown. Each flag runs exactly one
task and exits.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// One flag per registered task; the registry defines the canonical order.
	for _, t := range clean.Tasks() {
		rootCmd.Flags().Bool(t.Name, false, t.Description)
	}
	rootCmd.Flags().Bool("all", false, "Run every maintenance task in order")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%v\nRun 'am --help' for available options", err)
	})
}

func run(cmd *cobra.Command, args []string) error {
	con := console.NewTerminal()
	cfg := loadConfig(con)

	env := &task.Env{
		Runner:  sysexec.NewSystemRunner(),
		Console: con,
		Config:  cfg,
		IsRoot:  core.IsRoot,
	}
	reg := task.NewRegistry(clean.Tasks()...)
	ctx := cmd.Context()

	var selected []string
	for _, t := range reg.Tasks() {
		if on, _ := cmd.Flags().GetBool(t.Name); on {
			selected = append(selected, t.Name)
		}
	}
	all, _ := cmd.Flags().GetBool("all")

	if len(selected)+boolToInt(all) > 1 {
		return fmt.Errorf("choose exactly one operation\nRun 'am --help' for available options")
	}

	// Missing core tools are an advisory, never a hard stop. CLI mode
	// warns and proceeds; interactive mode additionally asks once.
	missing := missingTools(env.Runner)
	if len(missing) > 0 {
		con.Warnf("missing tools: %s — dependent tasks will fail", strings.Join(missing, ", "))
	}

	// Command-line mode: one flag, one invocation, then exit.
	if all {
		reg.RunAll(ctx, env)
		return nil
	}
	if len(selected) == 1 {
		t, _ := reg.Lookup(selected[0])
		con.Header(t.Title)
		o := task.Dispatch(ctx, t, env)
		task.Report(con, t, o)
		if o.Status == task.StatusNoPrivilege || o.Status == task.StatusFailed {
			os.Exit(1)
		}
		return nil
	}

	// Interactive mode.
	if len(missing) > 0 && !con.Confirm("Continue anyway?") {
		return nil
	}
	catchInterrupt(con)

	interactive := isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
	menu.Loop(ctx, reg, env, interactive)
	return nil
}

// loadConfig resolves the maintenance policy, falling back to the
// compiled defaults when the config file is unreadable or malformed.
func loadConfig(con *console.Console) *config.Config {
	cfg, err := config.Load()
	if err != nil {
		con.Warnf("config file ignored: %v", err)
		return config.Default()
	}
	return cfg
}

// missingTools probes PATH for the core tools most tasks wrap.
func missingTools(runner sysexec.Runner) []string {
	var missing []string
	for _, tool := range []string{"pacman", "paccache", "journalctl"} {
		if _, err := runner.LookPath(tool); err != nil {
			missing = append(missing, tool)
		}
	}
	return missing
}

// catchInterrupt keeps the menu loop alive across Ctrl-C. The running
// subprocess receives the terminal's SIGINT itself; its failure surfaces
// as a normal task failure and the loop continues.
func catchInterrupt(con *console.Console) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	go func() {
		for range ch {
			con.Warnf("interrupted — partial changes may remain")
		}
	}()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
