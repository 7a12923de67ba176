// Package menu implements the drop-down Options menu of the game.
package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/germanamz/guess/cmd/guess/internal/msgs"
	"github.com/germanamz/guess/cmd/guess/internal/styles"
	"github.com/mattn/go-runewidth"
)

const title = "Options"

type item struct {
	label     string
	accel     string
	action    msgs.MenuAction
	separator bool
}

var defaultItems = []item{
	{label: "How to Play", accel: "h", action: msgs.ActionHowToPlay},
	{label: "Send Feedback", accel: "f", action: msgs.ActionSendFeedback},
	{separator: true},
	{label: "Restart Game", accel: "r", action: msgs.ActionRestart},
	{label: "Exit", accel: "x", action: msgs.ActionExit},
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
	Close:  key.NewBinding(key.WithKeys("esc", "ctrl+o", "f10"), key.WithHelp("esc", "close")),
}

// Model is the Options menu. It only reacts to input while open.
type Model struct {
	items  []item
	cursor int
	open   bool
}

// New returns a closed menu.
func New() Model {
	return Model{items: defaultItems}
}

// Open reports whether the menu is showing.
func (m Model) Open() bool { return m.open }

// Show opens the menu with the cursor on the first entry.
func (m *Model) Show() {
	m.open = true
	m.cursor = 0
}

// Hide closes the menu.
func (m *Model) Hide() {
	m.open = false
}

// Selected returns the action under the cursor.
func (m Model) Selected() msgs.MenuAction {
	return m.items[m.cursor].action
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.open {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Close):
		m.open = false
		return m, func() tea.Msg { return msgs.MenuClosedMsg{} }
	case key.Matches(keyMsg, keys.Up):
		m.move(-1)
		return m, nil
	case key.Matches(keyMsg, keys.Down):
		m.move(1)
		return m, nil
	case key.Matches(keyMsg, keys.Select):
		return m.choose(m.cursor)
	}

	if keyMsg.Type == tea.KeyRunes && len(keyMsg.Runes) == 1 {
		accel := strings.ToLower(string(keyMsg.Runes))
		for i, it := range m.items {
			if !it.separator && it.accel == accel {
				return m.choose(i)
			}
		}
	}

	return m, nil
}

func (m Model) choose(idx int) (Model, tea.Cmd) {
	m.cursor = idx
	m.open = false
	action := m.items[idx].action
	return m, func() tea.Msg { return msgs.MenuSelectMsg{Action: action} }
}

// move steps the cursor by delta, wrapping around and skipping separators.
func (m *Model) move(delta int) {
	n := len(m.items)
	for i := 1; i <= n; i++ {
		next := ((m.cursor+delta*i)%n + n) % n
		if !m.items[next].separator {
			m.cursor = next
			return
		}
	}
}

func (m Model) View() string {
	if !m.open {
		return ""
	}

	labelWidth := 0
	for _, it := range m.items {
		labelWidth = max(labelWidth, runewidth.StringWidth(it.label))
	}
	rowWidth := labelWidth + 6

	var sb strings.Builder
	sb.WriteString(styles.MenuTitleStyle.Render(title))

	for i, it := range m.items {
		sb.WriteString("\n")
		if it.separator {
			sb.WriteString(styles.MenuSepStyle.Render(strings.Repeat("─", rowWidth)))
			continue
		}

		label := runewidth.FillRight(it.label, labelWidth)
		accel := styles.MenuAccelStyle.Render("  " + it.accel)
		if i == m.cursor {
			sb.WriteString(styles.MenuCurStyle.Render("› "+label) + accel)
		} else {
			sb.WriteString(styles.MenuItemStyle.Render("  "+label) + accel)
		}
	}

	return styles.MenuBorder.Render(sb.String())
}
