// Package tui is an interactive terminal keypad for a calculator engine.
package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/calcute"
)

// Model is a Bubble Tea model wrapping one engine. Typed characters are mapped
// with calcute.EventForRune; arrow keys move the keypad focus and space presses
// the focused key.
type Model struct {
	engine *calcute.Engine
	last   calcute.Update
	rows   [][]button
	row    int
	col    int
	log    *slog.Logger
}

// New creates a model around e. decimal is the separator shown on the point
// key and should match the engine's locale.
func New(e *calcute.Engine, decimal rune, log *slog.Logger) *Model {
	if log == nil {
		log = slog.Default()
	}
	rows := layout(decimal)
	// Start on "=".
	return &Model{
		engine: e,
		rows:   rows,
		row:    len(rows) - 2,
		col:    3,
		log:    log,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch k.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		return m, tea.Quit
	case tea.KeyUp:
		m.move(-1, 0)
	case tea.KeyDown:
		m.move(1, 0)
	case tea.KeyLeft:
		m.move(0, -1)
	case tea.KeyRight:
		m.move(0, 1)
	case tea.KeySpace:
		m.press(calcute.EventForTag(m.rows[m.row][m.col].tag))
	case tea.KeyEnter:
		m.press(calcute.Equals)
	case tea.KeyBackspace, tea.KeyDelete:
		m.press(calcute.DeleteLast)
	case tea.KeyEsc:
		m.press(calcute.ClearAll)
	case tea.KeyRunes:
		for _, r := range k.Runes {
			if r == 'q' {
				return m, tea.Quit
			}
			m.press(calcute.EventForRune(r))
		}
	}
	return m, nil
}

// press sends ev to the engine and records the result.
func (m *Model) press(ev calcute.Event) {
	m.last = m.engine.Handle(ev)
	if m.last.Failure != calcute.NoFailure {
		m.log.Debug("showing failure", slog.String("event", ev.String()), slog.String("failure", m.last.Failure.String()))
	}
}

// move shifts the keypad focus, clamping to the keypad edges.
func (m *Model) move(dr, dc int) {
	m.row = clamp(m.row+dr, 0, len(m.rows)-1)
	m.col = clamp(m.col+dc, 0, len(m.rows[m.row])-1)
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Text returns the text currently displayed.
func (m *Model) Text() string {
	return m.last.Text
}

// View implements tea.Model.
func (m *Model) View() string {
	text := m.last.Text
	if m.last.Failure != calcute.NoFailure {
		text = failureStyle.Render(text)
	}
	if text == "" {
		text = "0"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		displayStyle.Render(text),
		renderKeypad(m.rows, m.row, m.col, m.last.PointArmed),
		helpStyle.Render("arrows+space press · enter = · esc C · q quit"),
	) + "\n"
}
