package game

import "fmt"

// Kind identifies the result of a single guess submission.
type Kind int

const (
	// Invalid means the input was not an integer in range. The zero value.
	Invalid Kind = iota
	// TooLow means the guess was below the target.
	TooLow
	// TooHigh means the guess was above the target.
	TooHigh
	// Correct means the guess matched the target.
	Correct
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case TooLow:
		return "too_low"
	case TooHigh:
		return "too_high"
	case Correct:
		return "correct"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Outcome is the tagged result of SubmitGuess. Attempts is only set when
// Kind is Correct and counts the winning guess itself.
type Outcome struct {
	Kind     Kind
	Attempts int
}

func (o Outcome) String() string {
	if o.Kind == Correct {
		return fmt.Sprintf("correct(%d)", o.Attempts)
	}
	return o.Kind.String()
}
