package matching

import (
	"github.com/standardbeagle/lexmatch/internal/types"
)

// WordMatchingStrategy is one matching theory. Every entry point returns nil
// for "no match"; none of them modify the document or search phrase.
// ExtendIndex is called once per search phrase during compilation and is the
// only operation allowed to mutate the phrase.
//
// Implementations hold no per-call state and are safe for concurrent use
// once compilation has finished.
type WordMatchingStrategy interface {
	// Label tags every WordMatch and index entry the strategy produces
	Label() string

	MatchToken(phrase *types.SearchPhrase, spToken *types.SearchPhraseToken,
		docToken *types.Token) *WordMatch

	// MatchMultiwords compares against the spans anchored at docToken,
	// in the order supplied
	MatchMultiwords(phrase *types.SearchPhrase, spToken *types.SearchPhraseToken,
		docToken *types.Token, spans []*types.MultiwordSpan) *WordMatch

	MatchSubword(phrase *types.SearchPhrase, spToken *types.SearchPhraseToken,
		docToken *types.Token, subword *types.Subword) *WordMatch

	ExtendIndex(phrase *types.SearchPhrase) error
}

// BaseStrategy provides "no match" defaults for strategies that only
// implement some of the entry points
type BaseStrategy struct{}

func (BaseStrategy) MatchToken(*types.SearchPhrase, *types.SearchPhraseToken, *types.Token) *WordMatch {
	return nil
}

func (BaseStrategy) MatchMultiwords(*types.SearchPhrase, *types.SearchPhraseToken, *types.Token,
	[]*types.MultiwordSpan) *WordMatch {
	return nil
}

func (BaseStrategy) MatchSubword(*types.SearchPhrase, *types.SearchPhraseToken, *types.Token,
	*types.Subword) *WordMatch {
	return nil
}

func (BaseStrategy) ExtendIndex(*types.SearchPhrase) error {
	return nil
}
