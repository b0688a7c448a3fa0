package wordlego

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/wordlego/blobstore"
	"github.com/hupe1980/wordlego/resultlog"
	"github.com/hupe1980/wordlego/vocab"
)

func newSolver(t *testing.T, words []string, optFns ...Option) *Solver {
	t.Helper()
	v, err := vocab.New(words)
	require.NoError(t, err)
	s, err := New(context.Background(), v, optFns...)
	require.NoError(t, err)
	return s
}

func TestSolveSingleWord(t *testing.T) {
	s := newSolver(t, []string{"abcde"})

	rec, err := s.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abcde", rec.Word)
	assert.Equal(t, 1.0, rec.Expected)
}

func TestSolveTwoWords(t *testing.T) {
	var sink resultlog.MemoryLog
	s := newSolver(t, []string{"abcde", "fghij"}, WithResultSink(&sink), WithWorkers(1))

	rec, err := s.Solve(context.Background())
	require.NoError(t, err)

	// Either word resolves one branch in 1 guess and the other in 2.
	assert.Equal(t, 1.5, rec.Expected)
	assert.Equal(t, "abcde", rec.Word, "equal values break ties on the lower index")

	require.Len(t, sink.Records, 2)
	for _, r := range sink.Records {
		assert.Equal(t, 1.5, r.Expected)
	}
}

func TestApplyCollapsesToSingleCandidate(t *testing.T) {
	s := newSolver(t, []string{"abcde", "fghij", "fghik"})

	// All-miss feedback on "abcde" leaves {fghij, fghik}; the exact
	// pattern on "fghij" then leaves it alone.
	require.NoError(t, s.Apply(context.Background(), "abcde", "_____"))
	require.NoError(t, s.Apply(context.Background(), "fghij", "ggggg"))
	require.Equal(t, 1, s.Candidates().Len())

	rec, err := s.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fghij", rec.Word)
	assert.Equal(t, 1.0, rec.Expected)
}

func TestApplyErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("WordNotFound", func(t *testing.T) {
		s := newSolver(t, []string{"abcde", "fghij"})
		err := s.Apply(ctx, "zzzzz", "_____")
		var nf *ErrWordNotFound
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "zzzzz", nf.Word)
	})

	t.Run("MalformedPattern", func(t *testing.T) {
		s := newSolver(t, []string{"abcde", "fghij"})
		assert.Error(t, s.Apply(ctx, "abcde", "gg"))
		assert.Error(t, s.Apply(ctx, "abcde", "ggggx"))
	})

	t.Run("EmptyCandidates", func(t *testing.T) {
		s := newSolver(t, []string{"abcde", "fghij"})
		// "abcde" can never score a lone 'y' on 'a' in this vocabulary.
		err := s.Apply(ctx, "abcde", "y____")
		require.ErrorIs(t, err, ErrNoCandidates)
	})
}

func TestSolveBudgetExhausted(t *testing.T) {
	s := newSolver(t, []string{"abcde", "fghij"}, WithMaxGuesses(1))

	require.NoError(t, s.Apply(context.Background(), "abcde", "_____"))
	_, err := s.Solve(context.Background())
	require.ErrorIs(t, err, ErrBudgetExhausted)
}

func TestSolveNoGuaranteedWin(t *testing.T) {
	// Three mutually indistinguishable-by-elimination words and a budget
	// of one: no single guess identifies every candidate.
	s := newSolver(t, []string{"abcde", "fghij", "fghik"}, WithMaxGuesses(1))

	_, err := s.Solve(context.Background())
	require.ErrorIs(t, err, ErrNoGuaranteedWin)
}

func TestSolveIdempotent(t *testing.T) {
	words := []string{"crane", "caber", "llama", "abcde", "fghij", "fghik"}

	run := func(workers int) *Recommendation {
		s := newSolver(t, words, WithWorkers(workers))
		rec, err := s.Solve(context.Background())
		require.NoError(t, err)
		return rec
	}

	first := run(1)
	for _, workers := range []int{1, 2, 7} {
		rec := run(workers)
		assert.Equal(t, first.Word, rec.Word)
		// Bit-identical: accumulation order is fixed by design.
		assert.Equal(t, first.Expected, rec.Expected)
	}
}

func TestNewErrors(t *testing.T) {
	ctx := context.Background()

	empty, err := vocab.New(nil)
	require.NoError(t, err)
	_, err = New(ctx, empty)
	require.ErrorIs(t, err, ErrNoCandidates)

	v, err := vocab.New([]string{"abcde"})
	require.NoError(t, err)
	_, err = New(ctx, v, WithMaxGuesses(0))
	require.ErrorIs(t, err, ErrBudgetExhausted)
}

func TestSnapshotStoreReuse(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	words := []string{"abcde", "fghij", "crane"}

	v, err := vocab.New(words)
	require.NoError(t, err)

	// First construction builds and saves the snapshot.
	s1, err := New(ctx, v, WithSnapshotStore(store, "table.snap"))
	require.NoError(t, err)

	data, err := blobstore.ReadAll(ctx, store, "table.snap")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// Second construction loads it and solves identically.
	s2, err := New(ctx, v, WithSnapshotStore(store, "table.snap"))
	require.NoError(t, err)

	r1, err := s1.Solve(ctx)
	require.NoError(t, err)
	r2, err := s2.Solve(ctx)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)

	// A different vocabulary rejects the cached snapshot and rebuilds.
	v2, err := vocab.New([]string{"fghij", "abcde", "crane"})
	require.NoError(t, err)
	s3, err := New(ctx, v2, WithSnapshotStore(store, "table.snap"))
	require.NoError(t, err)
	_, err = s3.Solve(ctx)
	require.NoError(t, err)
}
