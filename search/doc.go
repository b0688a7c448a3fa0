// Package search implements the recursive expected-value minimizer.
//
// A Kernel evaluates candidate guesses over a working set of answers
// still consistent with prior feedback. Candidates are drawn only from
// the working set itself, never from the full vocabulary: a guess that
// is already known to be wrong is never played. The recursion is
// branch-and-bound: as soon as one feedback outcome of a candidate has
// no guaranteed continuation within the remaining guess budget, the
// whole candidate is discarded without evaluating its other outcomes.
//
// A Kernel is not safe for concurrent use. Each worker of the parallel
// dispatcher owns one, with private per-depth scratch buffers that are
// overwritten destructively on every call.
package search
