// Package resultlog records one (expected value, word) line per
// evaluated top-level candidate. Records are written incrementally
// while the search runs; once it completes the log is rewritten sorted
// ascending by expected value.
package resultlog
