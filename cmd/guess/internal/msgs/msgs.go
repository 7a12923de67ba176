package msgs

// MenuAction identifies an entry of the Options menu.
type MenuAction int

const (
	ActionHowToPlay MenuAction = iota
	ActionSendFeedback
	ActionRestart
	ActionExit
)

func (a MenuAction) String() string {
	switch a {
	case ActionHowToPlay:
		return "how_to_play"
	case ActionSendFeedback:
		return "send_feedback"
	case ActionRestart:
		return "restart"
	case ActionExit:
		return "exit"
	default:
		return "unknown"
	}
}

// --- Menu → app messages ---

// MenuSelectMsg is emitted when the user picks a menu entry.
type MenuSelectMsg struct {
	Action MenuAction
}

// MenuClosedMsg is emitted when the menu is dismissed without a choice.
type MenuClosedMsg struct{}

// --- Dialog → app messages ---

// DialogClosedMsg is emitted when a message dialog is acknowledged.
type DialogClosedMsg struct{}

// FeedbackSubmitMsg carries the text confirmed in the feedback dialog.
type FeedbackSubmitMsg struct {
	Text string
}

// FeedbackCancelledMsg is emitted when the feedback dialog is cancelled.
type FeedbackCancelledMsg struct{}

// --- Internal messages ---

// FeedbackSavedMsg reports the result of appending feedback to the log.
type FeedbackSavedMsg struct {
	Err error
}

// InitDrainMsg fires after a short delay so that stale terminal responses
// (e.g. OSC 11 background-color replies) are discarded before focusing input.
type InitDrainMsg struct{}
