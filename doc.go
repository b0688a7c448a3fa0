// Package wordlego computes an optimal guessing strategy for a
// five-letter word-elimination game: given zero or more prior
// (guess, feedback) pairs it returns the next guess that minimizes the
// expected number of further guesses, under the policy that every guess
// is itself still consistent with all feedback so far.
//
// Basic usage:
//
//	v, err := vocab.ReadFile("wordle-answers-alphabetical.txt")
//	if err != nil { ... }
//
//	solver, err := wordlego.New(ctx, v)
//	if err != nil { ... }
//
//	if err := solver.Apply(ctx, "crane", "_yg__"); err != nil { ... }
//
//	rec, err := solver.Solve(ctx)
//	switch {
//	case errors.Is(err, wordlego.ErrNoGuaranteedWin):
//	    // no strategy can win from here
//	case err != nil:
//	    // invocation failed
//	default:
//	    fmt.Println("play:", rec.Word)
//	}
//
// The search is exhaustive over the live candidate set and runs on a
// fixed pool of workers; see the search and table packages for the
// kernel and the precomputed compatibility table it branches on.
package wordlego
