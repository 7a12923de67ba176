// Package game implements the number-guessing session: a secret target drawn
// uniformly from [1, RangeMax] and an attempt counter for the current round.
//
// A Session has no I/O and no dependency on any UI toolkit. The presentation
// layer calls [Session.SubmitGuess] with the raw text the user typed and
// renders the returned [Outcome]; invalid input is reported as an Outcome, never
// as an error.
package game
