package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lmerrors "github.com/standardbeagle/lexmatch/internal/errors"
)

func TestRepresentations_AbsentVersusEmpty(t *testing.T) {
	absent := Absent()
	assert.False(t, absent.IsPresent())
	assert.Nil(t, absent.Values())

	var zero Representations
	assert.Equal(t, absent, zero, "zero value must be absent")

	empty := Present()
	assert.True(t, empty.IsPresent())
	assert.Equal(t, 0, empty.Len())

	reprs := MatchingReprs{Direct: []string{"x"}, Derivation: empty}
	err := reprs.Validate("token", 0)
	var contract *lmerrors.ContractError
	require.True(t, errors.As(err, &contract))
	assert.Contains(t, contract.Violation, "present but empty")
}

func TestRepresentations_PresentCopiesInput(t *testing.T) {
	in := []string{"decide"}
	r := Present(in...)
	in[0] = "changed"
	assert.Equal(t, []string{"decide"}, r.Values())
}

func TestMatchingReprs_DerivationOrDirect(t *testing.T) {
	withDerivation := MatchingReprs{Direct: []string{"decision"}, Derivation: Present("decide")}
	assert.Equal(t, []string{"decide"}, withDerivation.DerivationOrDirect())
	assert.True(t, withDerivation.HasDerivation())

	withoutDerivation := MatchingReprs{Direct: []string{"decision"}}
	assert.Equal(t, []string{"decision"}, withoutDerivation.DerivationOrDirect())
	assert.False(t, withoutDerivation.HasDerivation())
}

func TestMatchingReprs_ValidateEmptyDirect(t *testing.T) {
	err := MatchingReprs{}.Validate("subword", 2)
	var contract *lmerrors.ContractError
	require.True(t, errors.As(err, &contract))
	assert.Equal(t, "subword", contract.Unit)
	assert.Equal(t, 2, contract.Index)
}

func TestDocument_AddTokenAssignsOwnership(t *testing.T) {
	doc := NewDocument("doc")
	first := doc.AddToken(&Token{Text: "credit", MatchingReprs: MatchingReprs{Direct: []string{"credit"}}})
	second := doc.AddToken(&Token{
		Text:          "cards",
		MatchingReprs: MatchingReprs{Direct: []string{"card"}},
		Subwords:      []*Subword{{Text: "card", MatchingReprs: MatchingReprs{Direct: []string{"card"}}}},
	})

	assert.Equal(t, 0, first.Index)
	assert.Equal(t, 1, second.Index)
	assert.Same(t, doc, second.Doc())
	assert.Equal(t, 1, second.Subwords[0].ContainingTokenIndex)
	assert.Same(t, first, doc.Token(0))
	assert.Nil(t, doc.Token(5))
	assert.Nil(t, doc.Token(-1))
	assert.NoError(t, doc.Validate())
}

func TestDocument_AddMultiword(t *testing.T) {
	doc := NewDocument("doc")
	for _, w := range []string{"my", "credit", "cards"} {
		doc.AddToken(&Token{Text: w, MatchingReprs: MatchingReprs{Direct: []string{w}}})
	}

	tests := []struct {
		name    string
		anchor  int
		indexes []int
		wantErr bool
	}{
		{name: "valid span", anchor: 2, indexes: []int{1, 2}},
		{name: "single token", anchor: 2, indexes: []int{2}, wantErr: true},
		{name: "out of range", anchor: 2, indexes: []int{2, 3}, wantErr: true},
		{name: "not contiguous", anchor: 2, indexes: []int{0, 2}, wantErr: true},
		{name: "bad anchor", anchor: 7, indexes: []int{1, 2}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := &MultiwordSpan{TokenIndexes: tt.indexes, MatchingReprs: MatchingReprs{Direct: []string{"credit card"}}}
			err := doc.AddMultiword(tt.anchor, span)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "credit cards", span.Text)
			assert.Equal(t, 1, span.First())
			assert.Equal(t, 2, span.Last())
		})
	}

	spans := doc.MultiwordsAt(2)
	require.Len(t, spans, 1)
	assert.Empty(t, doc.MultiwordsAt(0))
}

func TestSearchPhrase_Lifecycle(t *testing.T) {
	phrase := NewSearchPhrase("decision")
	root := phrase.AddToken(&SearchPhraseToken{Lemma: "decision", DerivedLemma: "decide",
		MatchingReprs: MatchingReprs{Direct: []string{"decision"}}})

	require.NoError(t, phrase.Validate())
	assert.Same(t, root, phrase.Root())
	assert.Same(t, phrase, root.Phrase())

	require.NoError(t, phrase.AddWordInformation("decide", "derivation", 0))
	require.NoError(t, phrase.AddWordInformation("decide", "derivation", 0))
	assert.Len(t, phrase.WordInformation(), 1, "re-registration must not duplicate")

	phrase.Freeze()
	assert.True(t, phrase.IsFrozen())
	err := phrase.AddWordInformation("decisive", "derivation", 0)
	assert.ErrorIs(t, err, lmerrors.ErrPhraseFrozen)
	assert.Len(t, phrase.WordInformation(), 1)
}

func TestSearchPhrase_WordInformationOwnership(t *testing.T) {
	phrase := NewSearchPhrase("p")
	phrase.AddToken(&SearchPhraseToken{Lemma: "a", MatchingReprs: MatchingReprs{Direct: []string{"a"}}})

	require.NoError(t, phrase.AddWordInformation("decide", "derivation", 0))
	require.NoError(t, phrase.AddWordInformation("decide", "ontology", 2))
	assert.Equal(t, []WordInformation{{Word: "decide", MatchType: "derivation", Depth: 0}},
		phrase.WordInformation(), "a later strategy must not take over the entry")

	require.NoError(t, phrase.AddWordInformation("decide", "derivation", 1))
	assert.Equal(t, []WordInformation{{Word: "decide", MatchType: "derivation", Depth: 1}},
		phrase.WordInformation(), "the owning strategy may update its entry")
}

func TestSearchPhrase_WordInformationSorted(t *testing.T) {
	phrase := NewSearchPhrase("p")
	phrase.AddToken(&SearchPhraseToken{Lemma: "a", MatchingReprs: MatchingReprs{Direct: []string{"a"}}})
	require.NoError(t, phrase.AddWordInformation("zeta", "derivation", 0))
	require.NoError(t, phrase.AddWordInformation("alpha", "derivation", 0))

	words := phrase.WordInformation()
	require.Len(t, words, 2)
	assert.Equal(t, "alpha", words[0].Word)
	assert.Equal(t, "zeta", words[1].Word)
}

func TestSearchPhrase_ValidateRoot(t *testing.T) {
	phrase := NewSearchPhrase("empty")
	var contract *lmerrors.ContractError
	require.True(t, errors.As(phrase.Validate(), &contract))
	assert.Equal(t, "search_phrase", contract.Unit)
}

func TestSearchPhraseToken_IsMultiword(t *testing.T) {
	assert.True(t, (&SearchPhraseToken{Lemma: "credit card"}).IsMultiword())
	assert.False(t, (&SearchPhraseToken{Lemma: "decision"}).IsMultiword())
	assert.False(t, (&SearchPhraseToken{Lemma: " decision "}).IsMultiword())
}
