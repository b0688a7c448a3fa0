package table

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/wordlego/core"
	"github.com/hupe1980/wordlego/feedback"
	"github.com/hupe1980/wordlego/vocab"
)

// Outcome is one observable feedback pattern for a guess, together with
// the set of answers that produce it.
type Outcome struct {
	Pattern core.Pattern
	Members *roaring.Bitmap
}

// Table maps every (guess, pattern) pair to the answers consistent with
// that feedback. It is immutable after Build and safe to share
// read-only across goroutines.
type Table struct {
	numWords int
	outcomes [][]Outcome
}

// Build computes the full compatibility table for v and trims it.
func Build(v *vocab.Vocabulary) *Table {
	n := v.Len()
	t := &Table{
		numWords: n,
		outcomes: make([][]Outcome, n),
	}

	var byPattern [core.NumPatterns]*roaring.Bitmap
	for g := 0; g < n; g++ {
		guess := v.Word(core.WordID(g))
		for a := 0; a < n; a++ {
			p := feedback.Encode(guess, v.Word(core.WordID(a)))
			if byPattern[p] == nil {
				byPattern[p] = roaring.New()
			}
			byPattern[p].Add(uint32(a))
		}
		t.outcomes[g] = trim(byPattern[:])
		for p := range byPattern {
			byPattern[p] = nil
		}
	}

	return t
}

// trim collects the non-empty patterns as a dense list in ascending
// pattern order. Skipping unobservable patterns saves branches in the
// search and changes no result.
func trim(byPattern []*roaring.Bitmap) []Outcome {
	var outcomes []Outcome
	for p, members := range byPattern {
		if members != nil && !members.IsEmpty() {
			outcomes = append(outcomes, Outcome{
				Pattern: core.Pattern(p),
				Members: members,
			})
		}
	}
	return outcomes
}

// Len returns the number of words the table was built over.
func (t *Table) Len() int {
	return t.numWords
}

// Outcomes returns the trimmed outcome list for a guess, in ascending
// pattern order. Callers must not modify it.
func (t *Table) Outcomes(g core.WordID) []Outcome {
	return t.outcomes[g]
}

// Members returns the answer set for a (guess, pattern) pair, or false
// if that pattern can never be observed for the guess.
func (t *Table) Members(g core.WordID, p core.Pattern) (*roaring.Bitmap, bool) {
	for _, o := range t.outcomes[g] {
		if o.Pattern == p {
			return o.Members, true
		}
		if o.Pattern > p {
			break
		}
	}
	return nil, false
}
