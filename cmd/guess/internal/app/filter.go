package app

import tea "github.com/charmbracelet/bubbletea"

// FilterStaleInput is a tea.WithFilter callback that suppresses key messages
// while the guess field is disabled (during the post-startup drain window).
// This keeps late-arriving terminal escape sequence fragments (e.g. OSC 11
// background-color replies) out of the field. Ctrl+C is always allowed
// through so the user can exit.
func FilterStaleInput(m tea.Model, msg tea.Msg) tea.Msg {
	app, ok := m.(Model)
	if !ok || app.InputEnabled() {
		return msg
	}

	if keyMsg, isKey := msg.(tea.KeyMsg); isKey && keyMsg.Type != tea.KeyCtrlC {
		return nil
	}

	return msg
}
