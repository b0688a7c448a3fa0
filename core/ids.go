package core

// WordID is the dense index of a word within one vocabulary.
// It is strictly 32-bit and is the canonical ordering for iteration
// and tie-breaking everywhere in the engine.
type WordID uint32

// Pattern is the discretized feedback of one guess against one answer,
// encoded in base 3: digit i (weight 3^i) describes position i.
type Pattern uint16

const (
	// WordLen is the fixed word length of the game.
	WordLen = 5

	// NumPatterns is the number of possible feedback patterns, 3^WordLen.
	NumPatterns = 243
)

// Per-position feedback digits.
const (
	DigitMiss    = 0 // letter does not occur (or all its occurrences are claimed)
	DigitPresent = 1 // letter occurs elsewhere
	DigitExact   = 2 // letter is in the right position
)

// AllExact is the pattern in which every position is an exact match,
// i.e. the guess equals the answer.
const AllExact Pattern = NumPatterns - 1
