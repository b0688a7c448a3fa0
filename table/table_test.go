package table

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/wordlego/core"
	"github.com/hupe1980/wordlego/feedback"
	"github.com/hupe1980/wordlego/vocab"
)

func testVocab(t *testing.T, words ...string) *vocab.Vocabulary {
	t.Helper()
	v, err := vocab.New(words)
	require.NoError(t, err)
	return v
}

func TestBuildSelfConsistent(t *testing.T) {
	v := testVocab(t, "abcde", "fghij", "crane", "caber", "llama")
	tbl := Build(v)

	// Every (guess, answer) pair must find answer in the member set of
	// the pattern it encodes to.
	for g := 0; g < v.Len(); g++ {
		for a := 0; a < v.Len(); a++ {
			p := feedback.Encode(v.Word(core.WordID(g)), v.Word(core.WordID(a)))
			members, ok := tbl.Members(core.WordID(g), p)
			require.True(t, ok, "guess %d pattern %d trimmed away", g, p)
			assert.True(t, members.Contains(uint32(a)))
		}
	}
}

func TestBuildPartitions(t *testing.T) {
	v := testVocab(t, "abcde", "fghij", "crane")
	tbl := Build(v)

	// The outcome member sets of one guess partition the vocabulary:
	// disjoint, and their cardinalities sum to V.
	for g := 0; g < v.Len(); g++ {
		total := uint64(0)
		seen := make(map[uint32]bool)
		for _, o := range tbl.Outcomes(core.WordID(g)) {
			require.False(t, o.Members.IsEmpty(), "trim must drop empty patterns")
			total += o.Members.GetCardinality()
			for it := o.Members.Iterator(); it.HasNext(); {
				a := it.Next()
				assert.False(t, seen[a], "answer %d in two patterns of guess %d", a, g)
				seen[a] = true
			}
		}
		assert.Equal(t, uint64(v.Len()), total)
	}
}

func TestOutcomesOrdered(t *testing.T) {
	v := testVocab(t, "abcde", "abcdf", "fghij")
	tbl := Build(v)

	for g := 0; g < v.Len(); g++ {
		outcomes := tbl.Outcomes(core.WordID(g))
		for i := 1; i < len(outcomes); i++ {
			assert.Less(t, outcomes[i-1].Pattern, outcomes[i].Pattern)
		}
	}
}

func TestMembersTrimmed(t *testing.T) {
	v := testVocab(t, "abcde", "fghij")
	tbl := Build(v)

	// "abcde" vs "fghij" share no letters: only all-miss and all-exact
	// patterns can be observed for either guess.
	g, _ := v.Lookup("abcde")
	assert.Len(t, tbl.Outcomes(g), 2)

	_, ok := tbl.Members(g, core.Pattern(1))
	assert.False(t, ok)
}

func TestSnapshotRoundTrip(t *testing.T) {
	v := testVocab(t, "abcde", "fghij", "crane", "caber")
	tbl := Build(v)

	for _, compression := range []Compression{CompressionNone, CompressionZstd, CompressionLZ4} {
		var buf bytes.Buffer
		require.NoError(t, tbl.Save(&buf, v.Fingerprint(), compression))

		loaded, err := Load(&buf, v.Fingerprint())
		require.NoError(t, err)

		require.Equal(t, tbl.Len(), loaded.Len())
		for g := 0; g < tbl.Len(); g++ {
			want := tbl.Outcomes(core.WordID(g))
			got := loaded.Outcomes(core.WordID(g))
			require.Equal(t, len(want), len(got))
			for i := range want {
				assert.Equal(t, want[i].Pattern, got[i].Pattern)
				assert.True(t, want[i].Members.Equals(got[i].Members))
			}
		}
	}
}

func TestSnapshotFingerprintMismatch(t *testing.T) {
	v := testVocab(t, "abcde", "fghij")
	tbl := Build(v)

	var buf bytes.Buffer
	require.NoError(t, tbl.Save(&buf, v.Fingerprint(), CompressionZstd))

	_, err := Load(&buf, v.Fingerprint()+1)
	var mismatch *ErrSnapshotMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, v.Fingerprint(), mismatch.Got)
}

func TestSnapshotCorrupt(t *testing.T) {
	v := testVocab(t, "abcde", "fghij")
	tbl := Build(v)

	var buf bytes.Buffer
	require.NoError(t, tbl.Save(&buf, v.Fingerprint(), CompressionNone))

	data := buf.Bytes()
	data[len(data)-1] ^= 0xff
	_, err := Load(bytes.NewReader(data), v.Fingerprint())
	require.ErrorIs(t, err, ErrSnapshotCorrupt)

	_, err = Load(bytes.NewReader([]byte("nope")), v.Fingerprint())
	require.ErrorIs(t, err, ErrSnapshotCorrupt)
}
