// Package app implements the root Bubble Tea model of the game: the title
// bar, the guess field and labels, the Options menu, and the modal dialogs.
// All gameplay decisions are delegated to a Game; this package only renders
// the Outcome it returns.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/germanamz/guess/cmd/guess/internal/dialog"
	"github.com/germanamz/guess/cmd/guess/internal/menu"
	"github.com/germanamz/guess/cmd/guess/internal/msgs"
	"github.com/germanamz/guess/cmd/guess/internal/styles"
	"github.com/germanamz/guess/pkg/game"
)

const (
	inputWidth = 10
	drainDelay = 200 * time.Millisecond

	msgTooLow              = "Too low! Try again."
	msgTooHigh             = "Too high! Try again."
	msgCorrectFmt          = "Correct! You guessed the number in %d attempts."
	msgInvalidFmt          = "Please enter a valid number between 1 and %d."
	msgFeedbackSaved       = "Feedback submitted successfully."
	msgFeedbackSaveFailure = "Error saving feedback."
)

// Game is the gameplay state the shell drives.
type Game interface {
	SubmitGuess(raw string) game.Outcome
	Reset()
	Score() int
	RangeMax() int
}

// targeter is implemented by games that expose their secret for debug logging.
type targeter interface {
	Target() int
}

// FeedbackWriter persists one feedback submission.
type FeedbackWriter interface {
	Append(text string) error
}

// Options tunes the shell.
type Options struct {
	Title  string
	Logger *slog.Logger
}

// Model is the root bubbletea model.
type Model struct {
	game     Game
	feedback FeedbackWriter
	log      *slog.Logger
	title    string

	input   textinput.Model
	enabled bool
	menu    menu.Model
	dialog  dialog.Model
	help    help.Model
	keys    keyMap

	result  string
	correct bool
	width   int
	height  int
}

// New creates the shell around an already started game.
func New(g Game, fb FeedbackWriter, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("1-%d", g.RangeMax())
	ti.CharLimit = 0
	ti.Width = inputWidth
	ti.Prompt = ""
	// Don't focus yet: the terminal may still be sending OSC responses that
	// bubbletea misinterprets as key events. Focus happens on InitDrainMsg.

	return Model{
		game:     g,
		feedback: fb,
		log:      log,
		title:    opts.Title,
		input:    ti,
		menu:     menu.New(),
		help:     help.New(),
		keys:     defaultKeys,
	}
}

// InputEnabled reports whether the guess field accepts keys yet.
func (m Model) InputEnabled() bool { return m.enabled }

// Result returns the text of the result label.
func (m Model) Result() string { return m.result }

// ScoreLabel returns the text of the score label.
func (m Model) ScoreLabel() string { return fmt.Sprintf("Score: %d", m.game.Score()) }

// Dialog returns the open dialog, or nil.
func (m Model) Dialog() dialog.Model { return m.dialog }

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.title),
		tea.Tick(drainDelay, func(time.Time) tea.Msg { return msgs.InitDrainMsg{} }),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case msgs.InitDrainMsg:
		m.enabled = true
		return m, m.input.Focus()

	case msgs.MenuSelectMsg:
		return m.handleMenu(msg.Action)

	case msgs.MenuClosedMsg:
		return m, nil

	case msgs.DialogClosedMsg, msgs.FeedbackCancelledMsg:
		m.dialog = nil
		return m, m.input.Focus()

	case msgs.FeedbackSubmitMsg:
		m.dialog = nil
		return m, m.saveFeedback(msg.Text)

	case msgs.FeedbackSavedMsg:
		if msg.Err != nil {
			m.log.Error("feedback not saved", "error", msg.Err)
			return m.openDialog(dialog.NewError("Error", msgFeedbackSaveFailure, m.width))
		}
		m.log.Info("feedback saved")
		return m.openDialog(dialog.NewMessage("Thank you", msgFeedbackSaved, m.width))
	}

	// Delegate to active sub-component.
	if m.dialog != nil {
		var cmd tea.Cmd
		m.dialog, cmd = m.dialog.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.log.Info("exit", "reason", "interrupt")
		return m, tea.Quit
	}

	// Modal dialogs take every key.
	if m.dialog != nil {
		var cmd tea.Cmd
		m.dialog, cmd = m.dialog.Update(msg)
		return m, cmd
	}

	if m.menu.Open() {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}

	if key.Matches(msg, m.keys.Menu) {
		m.menu.Show()
		return m, nil
	}

	if !m.enabled {
		return m, nil
	}

	if key.Matches(msg, m.keys.Submit) {
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	raw := m.input.Value()
	out := m.game.SubmitGuess(raw)
	m.log.Debug("guess", "input", raw, "outcome", out.String(), "score", m.game.Score())

	switch out.Kind {
	case game.Invalid:
		body := fmt.Sprintf(msgInvalidFmt, m.game.RangeMax())
		return m.openDialog(dialog.NewMessage("Invalid guess", body, m.width))
	case game.TooLow:
		m.result, m.correct = msgTooLow, false
	case game.TooHigh:
		m.result, m.correct = msgTooHigh, false
	case game.Correct:
		m.result, m.correct = fmt.Sprintf(msgCorrectFmt, out.Attempts), true
		m.log.Info("round won", "attempts", out.Attempts)
	}

	m.input.Reset()
	return m, nil
}

func (m Model) handleMenu(action msgs.MenuAction) (tea.Model, tea.Cmd) {
	m.menu.Hide()
	m.log.Debug("menu", "action", action.String())

	switch action {
	case msgs.ActionHowToPlay:
		return m.openDialog(dialog.NewInstructions(m.game.RangeMax(), m.width))
	case msgs.ActionSendFeedback:
		return m.openDialog(dialog.NewFeedback(m.width))
	case msgs.ActionRestart:
		m.game.Reset()
		m.result, m.correct = "", false
		m.input.Reset()
		m.log.Info("game restarted")
		if t, ok := m.game.(targeter); ok {
			m.log.Debug("round started", "target", t.Target())
		}
		return m, nil
	case msgs.ActionExit:
		m.log.Info("exit", "reason", "menu")
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) openDialog(d dialog.Model) (tea.Model, tea.Cmd) {
	m.menu.Hide()
	m.input.Blur()
	m.dialog = d
	return m, d.Init()
}

func (m Model) saveFeedback(text string) tea.Cmd {
	fb := m.feedback
	return func() tea.Msg {
		return msgs.FeedbackSavedMsg{Err: fb.Append(text)}
	}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.dialog != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.dialog.View())
	}

	titleBar := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.TitleStyle.Render(m.title),
		styles.MenuHintStyle.Render("   Options: ctrl+o"),
	)

	parts := []string{titleBar}
	if m.menu.Open() {
		parts = append(parts, m.menu.View())
	}

	border := styles.FocusedBorder
	if !m.enabled {
		border = styles.DisabledBorder
	}

	resultStyle := styles.ResultStyle
	if m.correct {
		resultStyle = styles.CorrectStyle
	}

	parts = append(parts,
		styles.SectionMargin.Render(styles.PromptStyle.Render(fmt.Sprintf("Guess a number between 1 and %d", m.game.RangeMax()))),
		lipgloss.JoinHorizontal(lipgloss.Center,
			border.Width(inputWidth+2).Render(m.input.View()),
			"  ",
			styles.ButtonStyle.Render("[ Submit Guess ]"),
		),
		resultStyle.Render(m.result),
		styles.ScoreStyle.Render(m.ScoreLabel()),
		styles.SectionMargin.Render(m.help.View(m.keys)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
