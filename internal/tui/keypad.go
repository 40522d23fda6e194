package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/calcute"
)

// button is one key of the on-screen keypad.
type button struct {
	label string
	tag   int
}

// layout returns the keypad rows. The point key shows the locale separator.
func layout(decimal rune) [][]button {
	return [][]button{
		{{"C", calcute.TagClearAll}, {"⌫", calcute.TagDeleteLast}, {"÷", calcute.TagDivide}, {"×", calcute.TagMultiply}},
		{{"7", 7}, {"8", 8}, {"9", 9}, {"-", calcute.TagSubtract}},
		{{"4", 4}, {"5", 5}, {"6", 6}, {"+", calcute.TagAdd}},
		{{"1", 1}, {"2", 2}, {"3", 3}, {"=", calcute.TagEquals}},
		{{"0", 0}, {string(decimal), calcute.TagPoint}},
	}
}

const keyWidth = 5

var (
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("212")).
			Width(4*keyWidth + 3).
			Align(lipgloss.Right).
			Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	keyStyle = lipgloss.NewStyle().
			Width(keyWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("205"))
	operatorKeyStyle = keyStyle.Background(lipgloss.Color("170"))
	armedKeyStyle    = keyStyle.Background(lipgloss.Color("218")).Foreground(lipgloss.Color("235"))
	focusedKeyStyle  = keyStyle.Reverse(true)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// renderKeypad draws the keypad with the focused key at row, col.
func renderKeypad(rows [][]button, row, col int, armed bool) string {
	lines := make([]string, 0, len(rows))
	for i, r := range rows {
		keys := make([]string, 0, len(r))
		for j, b := range r {
			st := keyStyle
			switch {
			case i == row && j == col:
				st = focusedKeyStyle
			case b.tag == calcute.TagPoint && armed:
				st = armedKeyStyle
			case b.tag >= calcute.TagClearAll:
				st = operatorKeyStyle
			}
			keys = append(keys, st.Render(b.label))
		}
		lines = append(lines, strings.Join(keys, " "))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
