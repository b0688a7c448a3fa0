package search

import (
	"github.com/hupe1980/wordlego/core"
	"github.com/hupe1980/wordlego/table"
)

// Kernel is the per-worker state of the expected-value search: the
// shared read-only compatibility table plus one scratch buffer per
// recursion depth. Buffer d is written by the candidate evaluation at
// depth d and read by the recursion at depth d+1; the traversal is
// stack-disciplined, so only one candidate chain touches a given
// depth's buffer at a time.
type Kernel struct {
	table   *table.Table
	budget  int
	scratch [][]core.WordID
}

// NewKernel creates a kernel for the given guess budget. The scratch
// buffers are allocated once, each sized to the full vocabulary, and
// reused for the kernel's whole lifetime.
func NewKernel(t *table.Table, budget int) *Kernel {
	scratch := make([][]core.WordID, budget)
	for d := range scratch {
		scratch[d] = make([]core.WordID, t.Len())
	}
	return &Kernel{
		table:   t,
		budget:  budget,
		scratch: scratch,
	}
}

// Budget returns the kernel's total guess budget.
func (k *Kernel) Budget() int {
	return k.budget
}

// Candidate evaluates playing w at the given depth against the working
// set. It returns the expected number of guesses needed from here
// (including this one), or ok=false if some feedback outcome of w
// cannot be solved within the remaining budget.
//
// The expected value is the probability-weighted average over the
// outcomes of w, assuming a uniform prior over the working set.
// Outcomes are iterated in ascending pattern order and the division
// happens once at the end, so the floating-point accumulation order is
// fixed and repeat runs reproduce identical values.
func (k *Kernel) Candidate(depth int, w core.WordID, working []core.WordID) (float64, bool) {
	next := k.scratch[depth]
	sum := 0.0
	for _, o := range k.table.Outcomes(w) {
		n := 0
		for _, a := range working {
			if o.Members.Contains(uint32(a)) {
				next[n] = a
				n++
			}
		}
		if n == 0 {
			// Pattern cannot occur for this working set.
			continue
		}

		var cost float64
		if next[0] == w {
			// The all-exact outcome collapses to the guess itself.
			cost = 1
		} else {
			expected, ok := k.minimize(depth+1, next[:n])
			if !ok {
				// One losing branch condemns the whole candidate.
				return 0, false
			}
			cost = 1 + expected
		}
		sum += float64(n) * cost
	}
	return sum / float64(len(working)), true
}

// minimize returns the minimum expected guess count over all candidates
// in the working set, or ok=false if no candidate guarantees a win
// within the remaining budget. Ties keep the first minimum found;
// working sets are always in vocabulary order, so ties break on the
// lowest word index at every level.
func (k *Kernel) minimize(depth int, working []core.WordID) (float64, bool) {
	if depth == k.budget {
		// Budget exhausted.
		return 0, false
	}
	if len(working) == 1 {
		// Guess the sole remaining candidate.
		return 1, true
	}

	best := 0.0
	found := false
	for _, w := range working {
		expected, ok := k.Candidate(depth, w, working)
		if !ok {
			continue
		}
		if !found || expected < best {
			best = expected
			found = true
		}
	}
	return best, found
}

// Minimize is the exported entry point of the recursion, used by tests
// and by callers that want the value of a mid-game position rather than
// a first-guess recommendation.
func (k *Kernel) Minimize(depth int, working []core.WordID) (float64, bool) {
	return k.minimize(depth, working)
}
