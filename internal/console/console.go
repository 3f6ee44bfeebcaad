// Package console owns the interactive surface: severity-tagged output,
// the confirmation gate, and prompt rendering. Reader and writer are
// injected so gates can be scripted in tests.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#6b7280"}
)

const (
	IconOK      = "✓"
	IconWarning = "!"
	IconError   = "✗"
	IconBullet  = "•"
	IconArrow   = "→"
)

// ─── Console ─────────────────────────────────────────────────────────────────

// Console reads answers from in and writes styled output to out.
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	styled bool
}

// New returns an unstyled Console over the given streams. Used by tests
// and by non-terminal invocations.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

// NewTerminal returns a Console over stdin/stdout, styled when stdout is
// a terminal.
func NewTerminal() *Console {
	c := New(os.Stdin, os.Stdout)
	c.styled = isatty.IsTerminal(os.Stdout.Fd())
	return c
}

// Out exposes the underlying writer for subprocess streaming.
func (c *Console) Out() io.Writer {
	return c.out
}

func (c *Console) render(color lipgloss.AdaptiveColor, s string) string {
	if !c.styled {
		return s
	}
	return lipgloss.NewStyle().Foreground(color).Render(s)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Header prints a section title with a muted underline.
func (c *Console) Header(title string) {
	fmt.Fprintln(c.out)
	if c.styled {
		title = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Render(title)
	}
	fmt.Fprintln(c.out, "  "+title)
	fmt.Fprintln(c.out, "  "+c.render(ColorMuted, strings.Repeat("─", 48)))
}

func (c *Console) Infof(format string, a ...any) {
	fmt.Fprintf(c.out, "  %s %s\n", c.render(ColorMuted, IconBullet), fmt.Sprintf(format, a...))
}

func (c *Console) Successf(format string, a ...any) {
	fmt.Fprintf(c.out, "  %s %s\n", c.render(ColorSuccess, IconOK), fmt.Sprintf(format, a...))
}

func (c *Console) Warnf(format string, a ...any) {
	fmt.Fprintf(c.out, "  %s %s\n", c.render(ColorWarning, IconWarning), fmt.Sprintf(format, a...))
}

func (c *Console) Errorf(format string, a ...any) {
	fmt.Fprintf(c.out, "  %s %s\n", c.render(ColorError, IconError), fmt.Sprintf(format, a...))
}

// ─── Confirmation gate ───────────────────────────────────────────────────────

// Confirm prompts for a yes/no answer and returns true only for an
// explicit case-insensitive "y" or "yes". Empty input, EOF, and anything
// else decline. There are no retries and no default-yes path.
func (c *Console) Confirm(prompt string) bool {
	fmt.Fprintf(c.out, "  %s %s [y/N] ", c.render(ColorWarning, IconArrow), prompt)
	if !c.in.Scan() {
		fmt.Fprintln(c.out)
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(c.in.Text()))
	return answer == "y" || answer == "yes"
}

// ReadLine returns one line of input, or false on EOF. Used for the
// press-enter footer and the plain menu loop.
func (c *Console) ReadLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}
