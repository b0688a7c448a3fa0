// Package table precomputes guess/feedback compatibility for a whole
// vocabulary.
//
// For every guess g and pattern p, the table holds the set of answers a
// with feedback.Encode(g, a) == p, as a roaring bitmap over word
// indices. Patterns that can never be observed for a guess are trimmed;
// the survivors are stored per guess as a dense list in ascending
// pattern order, which fixes the floating-point accumulation order of
// the search.
//
// Building costs O(V² · 5). For interactive sessions the table can be
// persisted as a compressed snapshot (see snapshot.go) keyed by the
// vocabulary fingerprint, so repeat invocations skip the rebuild.
package table
