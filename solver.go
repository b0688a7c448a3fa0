package wordlego

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hupe1980/wordlego/blobstore"
	"github.com/hupe1980/wordlego/core"
	"github.com/hupe1980/wordlego/feedback"
	"github.com/hupe1980/wordlego/search"
	"github.com/hupe1980/wordlego/table"
	"github.com/hupe1980/wordlego/vocab"
)

// Recommendation is the result of a search: the best next guess and the
// expected number of further guesses it commits to, this one included.
type Recommendation struct {
	Word     string
	WordID   core.WordID
	Expected float64
}

// Solver holds the live candidate vocabulary, its compatibility table
// and the remaining guess budget. Apply prunes the state by one prior
// (guess, feedback) pair; Solve searches for the best next guess.
//
// A Solver is not safe for concurrent use; Solve itself fans out over
// an internal worker pool.
type Solver struct {
	opts    options
	logger  *Logger
	vocab   *vocab.Vocabulary
	table   *table.Table
	applied int
}

// New creates a Solver over the given vocabulary.
func New(ctx context.Context, v *vocab.Vocabulary, optFns ...Option) (*Solver, error) {
	opts := applyOptions(optFns)

	if v.Len() == 0 {
		return nil, ErrNoCandidates
	}
	if opts.maxGuesses <= 0 {
		return nil, ErrBudgetExhausted
	}

	s := &Solver{
		opts:   opts,
		logger: opts.logger,
		vocab:  v,
	}

	tbl, fromSnapshot, err := s.loadOrBuildTable(ctx)
	if err != nil {
		return nil, err
	}
	s.table = tbl
	s.logger.LogBuild(ctx, v.Len(), fromSnapshot)

	return s, nil
}

// loadOrBuildTable resolves the compatibility table for the current
// (full) vocabulary, preferring a cached snapshot when one is
// configured. Snapshot problems are never fatal: a stale or corrupt
// snapshot falls back to a fresh build.
func (s *Solver) loadOrBuildTable(ctx context.Context) (*table.Table, bool, error) {
	store := s.opts.snapshotStore
	if store == nil {
		return table.Build(s.vocab), false, nil
	}

	fingerprint := s.vocab.Fingerprint()
	if rc, err := store.Open(ctx, s.opts.snapshotName); err == nil {
		tbl, err := table.Load(rc, fingerprint)
		rc.Close()
		if err == nil {
			return tbl, true, nil
		}
		s.logger.WarnContext(ctx, "snapshot unusable, rebuilding", "error", err)
	} else if !errors.Is(err, blobstore.ErrNotFound) {
		return nil, false, err
	}

	tbl := table.Build(s.vocab)

	wc, err := store.Create(ctx, s.opts.snapshotName)
	if err != nil {
		return nil, false, err
	}
	if err := tbl.Save(wc, fingerprint, s.opts.snapshotCompression); err != nil {
		wc.Close()
		return nil, false, err
	}
	if err := wc.Close(); err != nil {
		return nil, false, err
	}

	return tbl, false, nil
}

// Applied returns the number of prior guesses applied so far.
func (s *Solver) Applied() int {
	return s.applied
}

// Budget returns the remaining guess budget.
func (s *Solver) Budget() int {
	return s.opts.maxGuesses - s.applied
}

// Candidates returns the live candidate vocabulary.
func (s *Solver) Candidates() *vocab.Vocabulary {
	return s.vocab
}

// Apply prunes the candidate set by one prior (guess, feedback) pair
// and decrements the remaining budget. The guess must be part of the
// current vocabulary and the feedback must leave at least one
// candidate; violations are fatal input errors.
func (s *Solver) Apply(ctx context.Context, guess, pattern string) error {
	err := s.apply(guess, pattern)
	s.logger.LogApply(ctx, guess, pattern, s.vocab.Len(), s.Budget(), err)
	return err
}

func (s *Solver) apply(guess, pattern string) error {
	g, ok := s.vocab.Lookup(guess)
	if !ok {
		return &ErrWordNotFound{Word: guess}
	}

	p, err := feedback.Parse(pattern)
	if err != nil {
		return err
	}

	members, ok := s.table.Members(g, p)
	if !ok {
		return fmt.Errorf("%w: guess %q with pattern %q", ErrNoCandidates, guess, pattern)
	}

	words := make([]string, 0, members.GetCardinality())
	for it := members.Iterator(); it.HasNext(); {
		words = append(words, s.vocab.Word(core.WordID(it.Next())))
	}

	pruned, err := vocab.New(words)
	if err != nil {
		return err
	}

	// Rebuild over the pruned list: indices are dense again and the
	// smaller table keeps the recursion branching tight.
	s.vocab = pruned
	s.table = table.Build(pruned)
	s.applied++
	return nil
}

// Solve runs the exhaustive first-guess search and returns the best
// recommendation. ErrNoGuaranteedWin reports the clean informational
// outcome that no candidate wins within the remaining budget.
func (s *Solver) Solve(ctx context.Context) (*Recommendation, error) {
	budget := s.Budget()
	if budget <= 0 {
		return nil, ErrBudgetExhausted
	}

	n := s.vocab.Len()
	working := make([]core.WordID, n)
	for i := range working {
		working[i] = core.WordID(i)
	}

	workers := s.opts.workers
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	logger := s.logger.WithWords(n).WithWorkers(workers)
	logger.InfoContext(ctx, "search started", "budget", budget)

	var (
		mu        sync.Mutex
		best      *Recommendation
		evaluated int
	)
	progress := rate.NewLimiter(rate.Limit(1), 1)

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < n; start += chunk {
		start := start
		end := min(start+chunk, n)

		g.Go(func() error {
			kernel := search.NewKernel(s.table, budget)
			for w := core.WordID(start); w < core.WordID(end); w++ {
				if err := ctx.Err(); err != nil {
					return err
				}

				expected, ok := kernel.Candidate(0, w, working)

				mu.Lock()
				evaluated++
				if progress.Allow() {
					logger.DebugContext(ctx, "search progress", "evaluated", evaluated)
				}
				if !ok {
					mu.Unlock()
					continue
				}
				err := s.opts.sink.Record(expected, s.vocab.Word(w))
				if best == nil || expected < best.Expected || (expected == best.Expected && w < best.WordID) {
					best = &Recommendation{
						Word:     s.vocab.Word(w),
						WordID:   w,
						Expected: expected,
					}
				}
				mu.Unlock()
				if err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if best == nil {
		s.logger.LogSolve(ctx, nil, ErrNoGuaranteedWin)
		return nil, ErrNoGuaranteedWin
	}
	s.logger.LogSolve(ctx, best, nil)
	return best, nil
}
