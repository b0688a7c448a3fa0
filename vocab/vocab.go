package vocab

import (
	"bufio"
	"fmt"
	"hash/crc32"
	"io"
	"os"

	"github.com/hupe1980/wordlego/core"
)

// ErrInvalidWord indicates a word that cannot join a vocabulary.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidWord struct {
	Word  string
	cause error
}

func (e *ErrInvalidWord) Error() string {
	return fmt.Sprintf("invalid word %q", e.Word)
}

func (e *ErrInvalidWord) Unwrap() error { return e.cause }

// Vocabulary is an immutable, ordered list of legal answer/guess words.
// It is read-only after construction and safe to share across goroutines.
type Vocabulary struct {
	words []string
	index map[string]core.WordID
}

// New builds a vocabulary from words, preserving order. Words must be
// lowercase ASCII of length core.WordLen and unique.
func New(words []string) (*Vocabulary, error) {
	v := &Vocabulary{
		words: make([]string, 0, len(words)),
		index: make(map[string]core.WordID, len(words)),
	}
	for _, w := range words {
		if err := validate(w); err != nil {
			return nil, err
		}
		if _, ok := v.index[w]; ok {
			return nil, &ErrInvalidWord{Word: w, cause: fmt.Errorf("duplicate entry")}
		}
		v.index[w] = core.WordID(len(v.words))
		v.words = append(v.words, w)
	}
	return v, nil
}

func validate(w string) error {
	if len(w) != core.WordLen {
		return &ErrInvalidWord{Word: w, cause: fmt.Errorf("length %d, want %d", len(w), core.WordLen)}
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return &ErrInvalidWord{Word: w, cause: fmt.Errorf("non-lowercase letter at position %d", i)}
		}
	}
	return nil
}

// Read builds a vocabulary from a whitespace-separated word list.
func Read(r io.Reader) (*Vocabulary, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	var words []string
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return New(words)
}

// ReadFile builds a vocabulary from the word list file at path.
func ReadFile(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Len returns the number of words.
func (v *Vocabulary) Len() int {
	return len(v.words)
}

// Word returns the word at the given index.
func (v *Vocabulary) Word(id core.WordID) string {
	return v.words[id]
}

// Words returns the underlying word list. Callers must not modify it.
func (v *Vocabulary) Words() []string {
	return v.words
}

// Lookup returns the index of w, if present.
func (v *Vocabulary) Lookup(w string) (core.WordID, bool) {
	id, ok := v.index[w]
	return id, ok
}

// Fingerprint returns a CRC32 over the ordered word list. Two
// vocabularies with the same fingerprint produce the same
// compatibility table, which makes the fingerprint suitable as a
// snapshot cache key.
func (v *Vocabulary) Fingerprint() uint32 {
	h := crc32.NewIEEE()
	for _, w := range v.words {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	return h.Sum32()
}
