// Package vocab holds the immutable, ordered word list for one solver
// invocation. The position of a word in the list is its core.WordID;
// that ordering is canonical and doubles as the tie-break order of the
// search.
package vocab
