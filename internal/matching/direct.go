package matching

import (
	"strings"

	"github.com/standardbeagle/lexmatch/internal/types"
)

// DirectLabel tags matches of the direct strategy
const DirectLabel = "direct"

// DirectStrategy matches units whose direct representations are equal
type DirectStrategy struct {
	BaseStrategy
}

// NewDirectStrategy creates a direct strategy
func NewDirectStrategy() *DirectStrategy {
	return &DirectStrategy{}
}

// Label returns DirectLabel
func (s *DirectStrategy) Label() string {
	return DirectLabel
}

func (s *DirectStrategy) MatchToken(phrase *types.SearchPhrase, spToken *types.SearchPhraseToken,
	docToken *types.Token) *WordMatch {
	spWord, docWord, ok := firstCommon(spToken.Direct, docToken.Direct)
	if !ok {
		return nil
	}
	return tokenMatch(DirectLabel, spToken, spWord, docToken, docWord, directExplanation(spToken))
}

func (s *DirectStrategy) MatchMultiwords(phrase *types.SearchPhrase, spToken *types.SearchPhraseToken,
	docToken *types.Token, spans []*types.MultiwordSpan) *WordMatch {
	if !spToken.IsMultiword() {
		return nil
	}
	for _, span := range spans {
		spWord, docWord, ok := firstCommon(spToken.Direct, span.Direct)
		if !ok {
			continue
		}
		if m := spanMatch(DirectLabel, spToken, spWord, docToken, span, docWord, directExplanation(spToken)); m != nil {
			return m
		}
	}
	return nil
}

func (s *DirectStrategy) MatchSubword(phrase *types.SearchPhrase, spToken *types.SearchPhraseToken,
	docToken *types.Token, subword *types.Subword) *WordMatch {
	spWord, docWord, ok := firstCommon(spToken.Direct, subword.Direct)
	if !ok {
		return nil
	}
	return subwordMatch(DirectLabel, spToken, spWord, docToken, subword, docWord, directExplanation(spToken))
}

func directExplanation(spToken *types.SearchPhraseToken) string {
	return "Matches " + strings.ToUpper(spToken.Lemma) + " directly."
}
