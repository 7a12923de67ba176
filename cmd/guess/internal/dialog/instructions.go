package dialog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// InstructionsMarkdown returns the How to Play text.
func InstructionsMarkdown(rangeMax int) string {
	return fmt.Sprintf(`1. Enter a number between 1 and %d in the text field.
2. Press Enter to submit your guess.
3. If your guess is too low or too high, you will receive feedback.
4. Keep guessing until you find the correct number.
5. Your score will be displayed and updated after each guess.
6. You can restart the game or exit from the **Options** menu (Ctrl+O).
`, rangeMax)
}

// NewInstructions returns the How to Play dialog.
func NewInstructions(rangeMax, termWidth int) Message {
	m := NewMessage("Instructions", "", termWidth)
	m.body = renderMarkdown(InstructionsMarkdown(rangeMax), m.width-borderFrameW)
	return m
}

// renderMarkdown converts markdown text to terminal-formatted output, falling
// back to the raw text when no renderer can be built.
func renderMarkdown(text string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
