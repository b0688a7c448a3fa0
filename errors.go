package wordlego

import (
	"errors"
	"fmt"
)

var (
	// ErrNoGuaranteedWin is the recoverable outcome of a search that
	// proved no guess sequence identifies every remaining candidate
	// within the budget. It is an expected result, not a failure of
	// the invocation.
	ErrNoGuaranteedWin = errors.New("no strategy can guarantee a win within the remaining guesses")

	// ErrBudgetExhausted is returned when the remaining guess budget is
	// zero or negative before the search starts.
	ErrBudgetExhausted = errors.New("guess budget exhausted")

	// ErrNoCandidates is returned when a prior (guess, feedback) pair
	// leaves no consistent candidate.
	ErrNoCandidates = errors.New("no candidates remain consistent with the feedback")
)

// ErrWordNotFound indicates a prior guess that is not part of the
// current candidate vocabulary.
type ErrWordNotFound struct {
	Word string
}

func (e *ErrWordNotFound) Error() string {
	return fmt.Sprintf("word %q not in current vocabulary", e.Word)
}
