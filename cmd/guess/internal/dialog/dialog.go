// Package dialog provides the modal dialogs of the game: plain message boxes
// (alerts, notices, instructions) and the feedback form. While a dialog is
// open it receives every key press; it reports its result to the app with a
// message from the msgs package.
package dialog

import (
	tea "github.com/charmbracelet/bubbletea"
)

const (
	minWidth     = 30
	maxWidth     = 64
	borderFrameW = 6 // border (2) + horizontal padding (4)
)

// Model is an open modal dialog.
type Model interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Model, tea.Cmd)
	View() string
}

// fitWidth clamps the dialog's outer width to the terminal width.
func fitWidth(termWidth int) int {
	if termWidth <= 0 {
		return maxWidth
	}
	return max(min(termWidth-4, maxWidth), minWidth)
}
