package index

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/lexmatch/internal/matching"
	"github.com/standardbeagle/lexmatch/internal/types"
)

func compiledPhrase(t *testing.T, lemma, derivedLemma string) *types.SearchPhrase {
	t.Helper()
	phrase := types.NewSearchPhrase(lemma)
	phrase.AddToken(&types.SearchPhraseToken{
		Lemma:         lemma,
		DerivedLemma:  derivedLemma,
		MatchingReprs: types.MatchingReprs{Direct: []string{lemma}},
	})
	m := matching.NewMatcher(1, matching.NewDerivationStrategy())
	require.NoError(t, m.Compile(phrase))
	return phrase
}

func TestPhraseIndex_DerivedLemmaKey(t *testing.T) {
	ix := NewPhraseIndex()
	decision := compiledPhrase(t, "decision", "decide")
	ix.Add(decision)

	byLemma := ix.Lookup("decision")
	require.Len(t, byLemma, 1)
	assert.Equal(t, RootLemmaMatchType, byLemma[0].MatchType)

	byDerived := ix.Lookup("decide")
	require.Len(t, byDerived, 1)
	assert.Same(t, decision, byDerived[0].Phrase)
	assert.Equal(t, matching.DerivationLabel, byDerived[0].MatchType)
	assert.Equal(t, 0, byDerived[0].Depth)

	assert.Empty(t, ix.Lookup("decisive"))
	assert.Equal(t, 1, ix.Len())
}

func TestPhraseIndex_NoExtraKeyWhenDerivedEqualsLemma(t *testing.T) {
	ix := NewPhraseIndex()
	ix.Add(compiledPhrase(t, "card", "card"))

	entries := ix.Lookup("card")
	require.Len(t, entries, 1)
	assert.Equal(t, RootLemmaMatchType, entries[0].MatchType)
}

func TestPhraseIndex_Candidates(t *testing.T) {
	ix := NewPhraseIndex()
	decision := compiledPhrase(t, "decision", "decide")
	verdict := compiledPhrase(t, "decide", "decide")
	ix.Add(decision)
	ix.Add(verdict)

	got := ix.Candidates([]string{"decide", "decision", "unknown"})
	require.Len(t, got, 2)
	assert.Same(t, decision, got[0])
	assert.Same(t, verdict, got[1])
}

func TestPhraseIndex_ConcurrentReads(t *testing.T) {
	ix := NewPhraseIndex()
	ix.Add(compiledPhrase(t, "decision", "decide"))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(t, ix.Lookup("decide"), 1)
		}()
	}
	wg.Wait()
}
