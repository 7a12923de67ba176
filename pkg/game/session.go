package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
)

// DefaultRangeMax is the upper bound of the guessing range when none is given.
const DefaultRangeMax = 100

const minGuess = 1

var (
	// ErrInvalidRange is returned when the range upper bound is below 1.
	ErrInvalidRange = errors.New("game: range max must be at least 1")
	// ErrTargetOutOfRange is returned by NewWithTarget for a target outside [1, rangeMax].
	ErrTargetOutOfRange = errors.New("game: target out of range")
)

// Option configures a Session.
type Option func(*Session)

// WithRangeMax sets the inclusive upper bound of the guessing range.
func WithRangeMax(n int) Option {
	return func(s *Session) { s.rangeMax = n }
}

// WithRand sets the random source used to draw targets.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// Session holds the state of one game. It is not safe for concurrent use;
// the UI event loop is its only caller.
type Session struct {
	rangeMax int
	target   int
	score    int
	rng      *rand.Rand
}

// New creates a Session and draws its first target.
func New(opts ...Option) (*Session, error) {
	s := &Session{rangeMax: DefaultRangeMax}
	for _, o := range opts {
		o(s)
	}

	if s.rangeMax < minGuess {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRange, s.rangeMax)
	}

	if s.rng == nil {
		s.rng = newRand()
	}

	s.Reset()

	return s, nil
}

// NewWithTarget creates a Session with a fixed first target. Later calls to
// Reset draw from the default random source.
func NewWithTarget(target, rangeMax int) (*Session, error) {
	if rangeMax < minGuess {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRange, rangeMax)
	}
	if target < minGuess || target > rangeMax {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrTargetOutOfRange, target, minGuess, rangeMax)
	}

	return &Session{
		rangeMax: rangeMax,
		target:   target,
		rng:      newRand(),
	}, nil
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // game target, not a secret
}

// Reset draws a new target and zeroes the score.
func (s *Session) Reset() {
	s.target = s.rng.IntN(s.rangeMax) + minGuess
	s.score = 0
}

// SubmitGuess evaluates raw as a guess. Unparseable input, including any
// surrounding whitespace, or an out-of-range value yields an Invalid outcome
// and leaves the session untouched. Every legal
// guess costs one attempt; a correct guess reports the attempts including
// itself and starts the count over without changing the target.
func (s *Session) SubmitGuess(raw string) Outcome {
	guess, err := strconv.Atoi(raw)
	if err != nil || guess < minGuess || guess > s.rangeMax {
		return Outcome{Kind: Invalid}
	}

	s.score++

	switch {
	case guess < s.target:
		return Outcome{Kind: TooLow}
	case guess > s.target:
		return Outcome{Kind: TooHigh}
	}

	attempts := s.score
	s.score = 0

	return Outcome{Kind: Correct, Attempts: attempts}
}

// Score returns the number of attempts made in the current round.
func (s *Session) Score() int { return s.score }

// RangeMax returns the inclusive upper bound of the guessing range.
func (s *Session) RangeMax() int { return s.rangeMax }

// Target returns the current secret.
func (s *Session) Target() int { return s.target }
