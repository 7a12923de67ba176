package dialog

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/germanamz/guess/cmd/guess/internal/msgs"
	"github.com/germanamz/guess/cmd/guess/internal/styles"
)

const feedbackLines = 6

// Feedback is the Send Feedback dialog: a multi-line text field followed by
// an OK/Cancel confirmation.
type Feedback struct {
	form  *huh.Form
	text  *string
	send  *bool
	width int
}

// NewFeedback builds the feedback form sized for a terminal termWidth columns wide.
func NewFeedback(termWidth int) Feedback {
	text := new(string)
	send := new(bool)
	*send = true

	width := fitWidth(termWidth)

	form := huh.NewForm(huh.NewGroup(
		huh.NewText().
			Title("Enter your feedback").
			Lines(feedbackLines).
			CharLimit(0).
			Value(text),
		huh.NewConfirm().
			Title("Send feedback?").
			Affirmative("OK").
			Negative("Cancel").
			Value(send),
	)).
		WithWidth(width - borderFrameW).
		WithShowHelp(false)

	form.SubmitCmd = func() tea.Msg {
		if !*send {
			return msgs.FeedbackCancelledMsg{}
		}
		return msgs.FeedbackSubmitMsg{Text: *text}
	}
	form.CancelCmd = func() tea.Msg { return msgs.FeedbackCancelledMsg{} }

	return Feedback{form: form, text: text, send: send, width: width}
}

// Text returns what has been typed so far.
func (m Feedback) Text() string { return *m.text }

func (m Feedback) Init() tea.Cmd { return m.form.Init() }

func (m Feedback) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, func() tea.Msg { return msgs.FeedbackCancelledMsg{} }
	}

	updated, cmd := m.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.form = f
	}
	return m, cmd
}

func (m Feedback) View() string {
	return styles.DialogBorder.Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.DialogTitleStyle.Render("Send Feedback"),
		"",
		m.form.View(),
		styles.DimStyle.Render("tab: next · alt+enter: new line · esc: cancel"),
	))
}
