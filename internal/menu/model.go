package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/archmole/internal/console"
	"github.com/lakshaymaurya-felt/archmole/internal/task"
)

// ─── Keymap ──────────────────────────────────────────────────────────────────

type keymap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var keys = keymap{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Select: key.NewBinding(key.WithKeys("enter")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

// ─── Model ───────────────────────────────────────────────────────────────────

// entry is one menu row; task is nil for the run-all and exit rows.
type entry struct {
	label string
	desc  string
	root  bool
	sel   Selection
}

// Model is the bubbletea model for the main menu. It collects exactly
// one Selection and quits; task execution happens outside the TUI so
// nested confirmations stay plain blocking reads.
type Model struct {
	entries []entry
	cursor  int
	choice  *Selection
	width   int
}

// NewModel builds the menu model from the registry, in registration
// order, followed by run-all and exit.
func NewModel(reg *task.Registry) Model {
	var entries []entry
	for _, t := range reg.Tasks() {
		entries = append(entries, entry{
			label: t.Title,
			desc:  t.Description,
			root:  t.NeedsRoot,
			sel:   Selection{Kind: KindTask, Task: t},
		})
	}
	entries = append(entries,
		entry{label: "Run all", desc: "Run every task in order", sel: Selection{Kind: KindAll}},
		entry{label: "Exit", desc: "Leave the menu", sel: Selection{Kind: KindExit}},
	)
	return Model{entries: entries, width: 80}
}

// Choice returns the collected selection, or nil if the program was
// aborted.
func (m Model) Choice() *Selection {
	return m.choice
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			sel := Selection{Kind: KindExit}
			m.choice = &sel
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}

		case key.Matches(msg, keys.Select):
			sel := m.entries[m.cursor].sel
			m.choice = &sel
			return m, tea.Quit

		default:
			// Digit shortcuts mirror the plain menu numbering:
			// 1..n tasks, n+1 run-all, 0 exit.
			if s := msg.String(); len(s) == 1 && s >= "0" && s <= "9" {
				if idx, ok := m.digitIndex(s); ok {
					sel := m.entries[idx].sel
					m.choice = &sel
					return m, tea.Quit
				}
			}
		}
	}

	return m, nil
}

// digitIndex maps a digit key to an entry index, or ok=false for digits
// beyond the menu range.
func (m Model) digitIndex(digit string) (int, bool) {
	if digit == "0" {
		return len(m.entries) - 1, true // exit row
	}
	n := int(digit[0] - '0')
	if n >= 1 && n <= len(m.entries)-1 {
		return n - 1, true
	}
	return 0, false
}

// ─── View ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(console.ColorPrimary).
		Render("  Arch system maintenance")

	var rows []string
	for i, e := range m.entries {
		num := i + 1
		if e.sel.Kind == KindExit {
			num = 0
		}

		cursor := "  "
		labelStyle := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = lipgloss.NewStyle().Foreground(console.ColorPrimary).Bold(true).Render("» ")
			labelStyle = labelStyle.Bold(true).Foreground(console.ColorPrimary)
		}

		rootTag := "      "
		if e.root {
			rootTag = lipgloss.NewStyle().Foreground(console.ColorWarning).Render("[root]")
		}

		desc := lipgloss.NewStyle().Foreground(console.ColorMuted).Render(e.desc)
		rows = append(rows, fmt.Sprintf(" %s%d) %s %s  %s",
			cursor, num, labelStyle.Render(fmt.Sprintf("%-20s", e.label)), rootTag, desc))
	}

	hints := lipgloss.NewStyle().
		Foreground(console.ColorMuted).
		Italic(true).
		Render("  ↑↓ navigate · Enter select · 0-9 jump · q quit")

	return "\n" + title + "\n\n" + strings.Join(rows, "\n") + "\n\n" + hints + "\n"
}

// pickInteractive runs the full-screen picker and returns the selection.
// On a TUI failure it falls back to the plain prompt.
func pickInteractive(reg *task.Registry, env *task.Env) (Selection, bool) {
	p := tea.NewProgram(NewModel(reg))
	res, err := p.Run()
	if err != nil {
		return pickPlain(reg, env)
	}
	m, ok := res.(Model)
	if !ok || m.Choice() == nil {
		return Selection{Kind: KindExit}, true
	}
	return *m.Choice(), true
}
