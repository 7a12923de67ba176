package app

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/germanamz/guess/cmd/guess/internal/dialog"
	"github.com/germanamz/guess/cmd/guess/internal/msgs"
	"github.com/germanamz/guess/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeedback struct {
	entries []string
	err     error
}

func (f *fakeFeedback) Append(text string) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, text)
	return nil
}

func newTestModel(t *testing.T, target int) (Model, *game.Session, *fakeFeedback) {
	t.Helper()
	g, err := game.NewWithTarget(target, game.DefaultRangeMax)
	require.NoError(t, err)
	fb := &fakeFeedback{}

	m := New(g, fb, Options{Title: "Guess the Number Game"})
	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = step(t, m, msgs.InitDrainMsg{})
	return m, g, fb
}

// step feeds msg to the model and returns the updated model, dropping the command.
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := update(t, m, msg)
	return next
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated, cmd
}

// runCmd executes cmd, giving up after timeout so timer-driven commands
// (cursor blinks, ticks) do not stall the test.
func runCmd(cmd tea.Cmd, timeout time.Duration) (tea.Msg, bool) {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg, true
	case <-time.After(timeout):
		return nil, false
	}
}

// pump runs cmd and feeds every resulting message back into the model,
// expanding batches and sequences, until no immediate work is left.
func pump(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	cmdType := reflect.TypeOf(tea.Cmd(nil))
	queue := []tea.Cmd{cmd}

	for i := 0; len(queue) > 0 && i < 500; i++ {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}

		msg, ok := runCmd(c, 20*time.Millisecond)
		if !ok || msg == nil {
			continue
		}

		if v := reflect.ValueOf(msg); v.Kind() == reflect.Slice && v.Type().Elem() == cmdType {
			for j := range v.Len() {
				queue = append(queue, v.Index(j).Interface().(tea.Cmd))
			}
			continue
		}

		var next tea.Cmd
		m, next = update(t, m, msg)
		queue = append(queue, next)
	}

	return m
}

// press feeds a key and pumps the commands it produces.
func press(t *testing.T, m Model, k tea.KeyMsg) Model {
	t.Helper()
	m, cmd := update(t, m, k)
	return pump(t, m, cmd)
}

// guess types text into the field and presses Enter.
func guess(t *testing.T, m Model, text string) (Model, tea.Cmd) {
	t.Helper()
	if text != "" {
		m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	}
	return update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestView_BeforeResize(t *testing.T) {
	g, err := game.NewWithTarget(5, game.DefaultRangeMax)
	require.NoError(t, err)

	m := New(g, &fakeFeedback{}, Options{})

	assert.Equal(t, "Loading...", m.View())
	assert.False(t, m.InputEnabled())
}

func TestView_Layout(t *testing.T) {
	m, _, _ := newTestModel(t, 50)

	view := m.View()

	assert.Contains(t, view, "Guess the Number Game")
	assert.Contains(t, view, "Guess a number between 1 and 100")
	assert.Contains(t, view, "[ Submit Guess ]")
	assert.Contains(t, view, "Score: 0")
}

func TestSubmit_Scenario(t *testing.T) {
	m, g, _ := newTestModel(t, 50)

	m, _ = guess(t, m, "10")
	assert.Equal(t, "Too low! Try again.", m.Result())
	assert.Equal(t, "Score: 1", m.ScoreLabel())

	m, _ = guess(t, m, "90")
	assert.Equal(t, "Too high! Try again.", m.Result())
	assert.Equal(t, "Score: 2", m.ScoreLabel())

	m, _ = guess(t, m, "50")
	assert.Equal(t, "Correct! You guessed the number in 3 attempts.", m.Result())
	assert.Equal(t, "Score: 0", m.ScoreLabel())
	assert.Equal(t, 50, g.Target())

	view := m.View()
	assert.Contains(t, view, "Correct! You guessed the number in 3 attempts.")
	assert.Contains(t, view, "Score: 0")
}

func TestSubmit_ClearsFieldAfterLegalGuess(t *testing.T) {
	m, _, _ := newTestModel(t, 50)

	m, _ = guess(t, m, "10")

	assert.Empty(t, m.input.Value())
}

func TestSubmit_InvalidOpensAlert(t *testing.T) {
	for _, input := range []string{"abc", "", "3.5", "0", "101", "-5"} {
		t.Run(input, func(t *testing.T) {
			m, g, _ := newTestModel(t, 50)
			m, _ = guess(t, m, "20")

			m, _ = guess(t, m, input)

			require.NotNil(t, m.Dialog())
			msg, ok := m.Dialog().(dialog.Message)
			require.True(t, ok)
			assert.Equal(t, "Please enter a valid number between 1 and 100.", msg.Body())
			assert.Contains(t, m.View(), "Please enter a valid number between 1 and 100.")
			assert.Equal(t, 1, g.Score())
			assert.Equal(t, "Too low! Try again.", m.Result())
			assert.Equal(t, input, m.input.Value())
		})
	}
}

func TestDialog_BlocksGameInput(t *testing.T) {
	m, g, _ := newTestModel(t, 50)
	m, _ = guess(t, m, "x")
	require.NotNil(t, m.Dialog())

	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("5")})

	assert.Equal(t, "x", m.input.Value())
	assert.Equal(t, 0, g.Score())
}

func TestDialog_Dismiss(t *testing.T) {
	m, _, _ := newTestModel(t, 50)
	m, _ = guess(t, m, "nope")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	closed := cmd()
	assert.Equal(t, msgs.DialogClosedMsg{}, closed)

	m = step(t, m, closed)
	assert.Nil(t, m.Dialog())
	assert.Contains(t, m.View(), "Score: 0")
}

func TestMenu_OpenAndRestart(t *testing.T) {
	m, g, _ := newTestModel(t, 50)
	m, _ = guess(t, m, "10")
	m, _ = guess(t, m, "20")
	require.Equal(t, "Score: 2", m.ScoreLabel())

	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	require.True(t, m.menu.Open())
	assert.Contains(t, m.View(), "Restart Game")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)
	m = step(t, m, cmd())

	assert.False(t, m.menu.Open())
	assert.Equal(t, "Score: 0", m.ScoreLabel())
	assert.Empty(t, m.Result())
	assert.Empty(t, m.input.Value())
	assert.Equal(t, 0, g.Score())
	assert.GreaterOrEqual(t, g.Target(), 1)
	assert.LessOrEqual(t, g.Target(), 100)
}

func TestMenu_KeysDoNotReachInput(t *testing.T) {
	m, _, _ := newTestModel(t, 50)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})

	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})

	assert.Empty(t, m.input.Value())
	assert.True(t, m.menu.Open())
}

func TestMenu_Exit(t *testing.T) {
	m, _, _ := newTestModel(t, 50)

	_, cmd := update(t, m, msgs.MenuSelectMsg{Action: msgs.ActionExit})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestCtrlCQuits(t *testing.T) {
	m, _, _ := newTestModel(t, 50)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestMenu_HowToPlay(t *testing.T) {
	m, _, _ := newTestModel(t, 50)

	m = step(t, m, msgs.MenuSelectMsg{Action: msgs.ActionHowToPlay})

	msg, ok := m.Dialog().(dialog.Message)
	require.True(t, ok)
	assert.Equal(t, "Instructions", msg.Title())
}

func TestFeedback_SubmitSaves(t *testing.T) {
	m, g, fb := newTestModel(t, 50)
	m, _ = guess(t, m, "10")

	m = step(t, m, msgs.MenuSelectMsg{Action: msgs.ActionSendFeedback})
	_, isFeedback := m.Dialog().(dialog.Feedback)
	require.True(t, isFeedback)

	m, cmd := update(t, m, msgs.FeedbackSubmitMsg{Text: "fun little game"})
	assert.Nil(t, m.Dialog())
	require.NotNil(t, cmd)

	m = step(t, m, cmd())

	assert.Equal(t, []string{"fun little game"}, fb.entries)
	msg, ok := m.Dialog().(dialog.Message)
	require.True(t, ok)
	assert.Equal(t, "Feedback submitted successfully.", msg.Body())
	assert.Equal(t, 1, g.Score())
}

func TestFeedback_SaveFailure(t *testing.T) {
	m, g, fb := newTestModel(t, 50)
	fb.err = errors.New("disk full")
	m, _ = guess(t, m, "70")

	m, cmd := update(t, m, msgs.FeedbackSubmitMsg{Text: "lost"})
	require.NotNil(t, cmd)
	m = step(t, m, cmd())

	msg, ok := m.Dialog().(dialog.Message)
	require.True(t, ok)
	assert.Equal(t, "Error saving feedback.", msg.Body())
	assert.Equal(t, 1, g.Score())
	assert.Equal(t, "Too high! Try again.", m.Result())
}

func TestFeedback_Cancel(t *testing.T) {
	m, _, fb := newTestModel(t, 50)
	m = step(t, m, msgs.MenuSelectMsg{Action: msgs.ActionSendFeedback})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	m = step(t, m, cmd())

	assert.Nil(t, m.Dialog())
	assert.Empty(t, fb.entries)
}

func TestFilterStaleInput(t *testing.T) {
	g, err := game.NewWithTarget(5, game.DefaultRangeMax)
	require.NoError(t, err)
	m := New(g, &fakeFeedback{}, Options{})

	key := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("]11;rgb")}
	assert.Nil(t, FilterStaleInput(m, key))
	assert.Equal(t, tea.KeyMsg{Type: tea.KeyCtrlC}, FilterStaleInput(m, tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.Equal(t, msgs.InitDrainMsg{}, FilterStaleInput(m, msgs.InitDrainMsg{}))

	m = step(t, m, msgs.InitDrainMsg{})
	assert.Equal(t, key, FilterStaleInput(m, key))
}

func TestKeysIgnoredBeforeDrain(t *testing.T) {
	g, err := game.NewWithTarget(5, game.DefaultRangeMax)
	require.NoError(t, err)
	m := New(g, &fakeFeedback{}, Options{})

	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("5")})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 0, g.Score())
	assert.Empty(t, m.Result())
}

func TestFeedback_FormDrivenByKeys(t *testing.T) {
	m, g, fb := newTestModel(t, 50)
	m, _ = guess(t, m, "10")

	m, cmd := update(t, m, msgs.MenuSelectMsg{Action: msgs.ActionSendFeedback})
	m = pump(t, m, cmd)
	_, isFeedback := m.Dialog().(dialog.Feedback)
	require.True(t, isFeedback)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("great game")})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"great game"}, fb.entries)
	msg, ok := m.Dialog().(dialog.Message)
	require.True(t, ok)
	assert.Equal(t, "Feedback submitted successfully.", msg.Body())
	assert.Contains(t, m.View(), "Feedback submitted successfully.")
	assert.Equal(t, 1, g.Score())
}

func TestRestart_LogsNewTarget(t *testing.T) {
	g, err := game.NewWithTarget(50, game.DefaultRangeMax)
	require.NoError(t, err)
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := New(g, &fakeFeedback{}, Options{Logger: log})
	m = step(t, m, msgs.MenuSelectMsg{Action: msgs.ActionRestart})

	assert.Contains(t, buf.String(), "round started")
	assert.Contains(t, buf.String(), fmt.Sprintf("target=%d", g.Target()))
	assert.Equal(t, "Score: 0", m.ScoreLabel())
}
