package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/wordlego/core"
	"github.com/hupe1980/wordlego/table"
	"github.com/hupe1980/wordlego/vocab"
)

func buildTable(t *testing.T, words ...string) (*vocab.Vocabulary, *table.Table) {
	t.Helper()
	v, err := vocab.New(words)
	require.NoError(t, err)
	return v, table.Build(v)
}

func fullSet(v *vocab.Vocabulary) []core.WordID {
	working := make([]core.WordID, v.Len())
	for i := range working {
		working[i] = core.WordID(i)
	}
	return working
}

func TestMinimizeSingleCandidate(t *testing.T) {
	_, tbl := buildTable(t, "abcde")
	k := NewKernel(tbl, 6)

	// One word left: exactly one guess, whatever the remaining budget.
	for depth := 0; depth < 6; depth++ {
		expected, ok := k.Minimize(depth, []core.WordID{0})
		require.True(t, ok)
		assert.Equal(t, 1.0, expected)
	}
}

func TestMinimizeBudgetExhausted(t *testing.T) {
	v, tbl := buildTable(t, "abcde", "fghij")
	k := NewKernel(tbl, 3)

	_, ok := k.Minimize(3, fullSet(v))
	assert.False(t, ok)
}

func TestCandidateTwoWords(t *testing.T) {
	v, tbl := buildTable(t, "abcde", "fghij")
	k := NewKernel(tbl, 6)

	// Guessing either word resolves one branch immediately (probability
	// 1/2, cost 1) and leaves a single word in the other (cost 2).
	for w := 0; w < 2; w++ {
		expected, ok := k.Candidate(0, core.WordID(w), fullSet(v))
		require.True(t, ok)
		assert.Equal(t, 1.5, expected)
	}
}

func TestCandidateBranchAndBound(t *testing.T) {
	v, tbl := buildTable(t, "abcde", "fghij", "fghik")
	k := NewKernel(tbl, 2)

	// Guessing "abcde" first leaves {fghij, fghik} with one guess of
	// budget left: the all-miss branch cannot be finished, so the
	// candidate as a whole is discarded.
	w, _ := v.Lookup("abcde")
	_, ok := k.Candidate(0, w, fullSet(v))
	assert.False(t, ok)

	// "fghij" splits the other two words apart immediately and stays
	// solvable within the same budget.
	w, _ = v.Lookup("fghij")
	expected, ok := k.Candidate(0, w, fullSet(v))
	require.True(t, ok)
	assert.InDelta(t, 5.0/3.0, expected, 1e-12)
}

func TestPartitionSubsetMonotone(t *testing.T) {
	_, tbl := buildTable(t, "abcde", "abcdf", "abcdg", "fghij")

	// Partitioning a strict subset of the vocabulary, the way the
	// kernel does per outcome, only ever yields members of that subset.
	working := []core.WordID{0, 1, 3}
	inWorking := map[core.WordID]bool{0: true, 1: true, 3: true}

	for _, w := range working {
		for _, o := range tbl.Outcomes(w) {
			for _, a := range working {
				if o.Members.Contains(uint32(a)) {
					assert.True(t, inWorking[a])
				}
			}
		}
	}

	// And the kernel solves the restricted position.
	k := NewKernel(tbl, 6)
	expected, ok := k.Minimize(0, working)
	require.True(t, ok)
	assert.Greater(t, expected, 1.0)
}

func TestMinimizeDeterministic(t *testing.T) {
	v, tbl := buildTable(t, "crane", "caber", "llama", "abcde", "fghij")

	first, ok := NewKernel(tbl, 6).Minimize(0, fullSet(v))
	require.True(t, ok)
	second, ok := NewKernel(tbl, 6).Minimize(0, fullSet(v))
	require.True(t, ok)

	// Bit-identical, not merely close: accumulation order is fixed.
	assert.Equal(t, first, second)
}
