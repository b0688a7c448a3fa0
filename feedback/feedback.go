package feedback

import (
	"fmt"

	"github.com/hupe1980/wordlego/core"
)

// shift holds the base-3 digit weights, shift[i] = 3^i.
var shift = func() [core.WordLen]int {
	var s [core.WordLen]int
	s[0] = 1
	for i := 1; i < core.WordLen; i++ {
		s[i] = s[i-1] * 3
	}
	return s
}()

// ErrInvalidPattern indicates a pattern string that cannot be parsed.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidPattern struct {
	Input string
	cause error
}

func (e *ErrInvalidPattern) Error() string {
	return fmt.Sprintf("invalid feedback pattern %q", e.Input)
}

func (e *ErrInvalidPattern) Unwrap() error { return e.cause }

// Encode computes the feedback pattern for guess against answer.
//
// Pass 1 claims exact matches and counts the unmatched answer letters.
// Pass 2 grants present-elsewhere credit left to right while unclaimed
// occurrences of the guessed letter remain. Both words must have length
// core.WordLen and consist of lowercase ASCII letters; the vocabulary
// layer enforces this before any encoding happens.
func Encode(guess, answer string) core.Pattern {
	var left [26]int8
	pattern := 0
	for i := 0; i < core.WordLen; i++ {
		if guess[i] == answer[i] {
			pattern += shift[i] * core.DigitExact
		} else {
			left[answer[i]-'a']++
		}
	}
	for i := 0; i < core.WordLen; i++ {
		if guess[i] != answer[i] {
			if c := guess[i] - 'a'; left[c] > 0 {
				pattern += shift[i] * core.DigitPresent
				left[c]--
			}
		}
	}
	return core.Pattern(pattern)
}

// Parse converts the string form of a pattern into its integer encoding.
func Parse(s string) (core.Pattern, error) {
	if len(s) != core.WordLen {
		return 0, &ErrInvalidPattern{
			Input: s,
			cause: fmt.Errorf("length %d, want %d", len(s), core.WordLen),
		}
	}
	pattern := 0
	for i := 0; i < core.WordLen; i++ {
		switch s[i] {
		case 'g':
			pattern += shift[i] * core.DigitExact
		case 'y':
			pattern += shift[i] * core.DigitPresent
		case '_':
		default:
			return 0, &ErrInvalidPattern{
				Input: s,
				cause: fmt.Errorf("unknown symbol %q at position %d", s[i], i),
			}
		}
	}
	return core.Pattern(pattern), nil
}

// Format renders a pattern in its string form. It is the inverse of Parse.
func Format(p core.Pattern) string {
	buf := make([]byte, core.WordLen)
	v := int(p)
	for i := 0; i < core.WordLen; i++ {
		switch v % 3 {
		case core.DigitExact:
			buf[i] = 'g'
		case core.DigitPresent:
			buf[i] = 'y'
		default:
			buf[i] = '_'
		}
		v /= 3
	}
	return string(buf)
}
