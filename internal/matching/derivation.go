package matching

import (
	"strings"

	"github.com/standardbeagle/lexmatch/internal/debug"
	"github.com/standardbeagle/lexmatch/internal/types"
)

// DerivationLabel tags matches and index entries of the derivation strategy
const DerivationLabel = "derivation"

// DerivationStrategy matches words that share a morphological root even
// though their surface forms differ, e.g. "decision" and "decide".
//
// Each side of a comparison uses its derivation representations when the
// annotation pipeline supplied them and its direct representations otherwise.
// A comparison where neither side has derivation representations is left to
// other strategies.
type DerivationStrategy struct {
	BaseStrategy
}

// NewDerivationStrategy creates a derivation strategy
func NewDerivationStrategy() *DerivationStrategy {
	return &DerivationStrategy{}
}

// Label returns DerivationLabel
func (s *DerivationStrategy) Label() string {
	return DerivationLabel
}

// MatchToken compares a search phrase token with a single document token
func (s *DerivationStrategy) MatchToken(phrase *types.SearchPhrase, spToken *types.SearchPhraseToken,
	docToken *types.Token) *WordMatch {
	if !spToken.HasDerivation() && !docToken.HasDerivation() {
		return nil
	}

	spWord, docWord, ok := firstCommon(spToken.DerivationOrDirect(), docToken.DerivationOrDirect())
	if !ok {
		return nil
	}

	debug.LogMatch("derivation token match %q ~ %q at token %d\n", spWord, docWord, docToken.Index)
	return tokenMatch(DerivationLabel, spToken, spWord, docToken, docWord, derivationExplanation(spToken))
}

// MatchMultiwords compares a multi-word search phrase token with the spans
// anchored at docToken. The search phrase side always compares its direct
// representations; each span uses derivation-or-direct.
func (s *DerivationStrategy) MatchMultiwords(phrase *types.SearchPhrase, spToken *types.SearchPhraseToken,
	docToken *types.Token, spans []*types.MultiwordSpan) *WordMatch {
	if !spToken.IsMultiword() {
		return nil
	}
	if !spToken.HasDerivation() && !anySpanHasDerivation(spans) {
		return nil
	}

	for _, spWord := range spToken.Direct {
		for _, span := range spans {
			for _, docWord := range span.DerivationOrDirect() {
				if spWord != docWord {
					continue
				}
				m := spanMatch(DerivationLabel, spToken, spWord, docToken, span, docWord, derivationExplanation(spToken))
				if m == nil {
					continue
				}
				debug.LogMatch("derivation multiword match %q at tokens %d-%d\n", spWord, span.First(), span.Last())
				return m
			}
		}
	}
	return nil
}

// MatchSubword compares a search phrase token with one subword of docToken
func (s *DerivationStrategy) MatchSubword(phrase *types.SearchPhrase, spToken *types.SearchPhraseToken,
	docToken *types.Token, subword *types.Subword) *WordMatch {
	if !spToken.HasDerivation() && !subword.HasDerivation() {
		return nil
	}

	spWord, docWord, ok := firstCommon(spToken.DerivationOrDirect(), subword.DerivationOrDirect())
	if !ok {
		return nil
	}

	debug.LogMatch("derivation subword match %q ~ %q at subword %d of token %d\n",
		spWord, docWord, subword.Index, docToken.Index)
	return subwordMatch(DerivationLabel, spToken, spWord, docToken, subword, docWord, derivationExplanation(spToken))
}

// ExtendIndex registers the root token's derived lemma as an index key when
// it differs from the plain lemma
func (s *DerivationStrategy) ExtendIndex(phrase *types.SearchPhrase) error {
	root := phrase.Root()
	if root == nil || root.DerivedLemma == root.Lemma {
		return nil
	}
	debug.LogCompile("phrase %q: derived lemma %q\n", phrase.Label, root.DerivedLemma)
	return phrase.AddWordInformation(root.DerivedLemma, DerivationLabel, 0)
}

func anySpanHasDerivation(spans []*types.MultiwordSpan) bool {
	for _, span := range spans {
		if span.HasDerivation() {
			return true
		}
	}
	return false
}

func derivationExplanation(spToken *types.SearchPhraseToken) string {
	return "Has a common stem with " + strings.ToUpper(spToken.Lemma) + "."
}
