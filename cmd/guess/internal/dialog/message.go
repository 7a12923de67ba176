package dialog

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/germanamz/guess/cmd/guess/internal/msgs"
	"github.com/germanamz/guess/cmd/guess/internal/styles"
)

var dismissKey = key.NewBinding(key.WithKeys("enter", "esc", " "), key.WithHelp("enter", "ok"))

// Message is a blocking message box with a single OK button.
type Message struct {
	title   string
	body    string
	isError bool
	width   int
}

// NewMessage returns a message box sized for a terminal termWidth columns wide.
func NewMessage(title, body string, termWidth int) Message {
	return Message{title: title, body: body, width: fitWidth(termWidth)}
}

// NewError returns a message box drawn with the error border.
func NewError(title, body string, termWidth int) Message {
	m := NewMessage(title, body, termWidth)
	m.isError = true
	return m
}

// Title returns the dialog title.
func (m Message) Title() string { return m.title }

// Body returns the dialog text.
func (m Message) Body() string { return m.body }

func (m Message) Init() tea.Cmd { return nil }

func (m Message) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, dismissKey) {
		return m, func() tea.Msg { return msgs.DialogClosedMsg{} }
	}
	return m, nil
}

func (m Message) View() string {
	border := styles.DialogBorder
	if m.isError {
		border = styles.DialogErrorBorder
	}

	inner := m.width - borderFrameW
	body := lipgloss.NewStyle().Width(inner).Render(m.body)
	button := lipgloss.PlaceHorizontal(inner, lipgloss.Center, styles.DialogButtonStyle.Render("[ OK ]"))

	return border.Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.DialogTitleStyle.Render(m.title),
		"",
		body,
		"",
		button,
	))
}
