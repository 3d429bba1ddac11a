package matching

import (
	"fmt"

	"github.com/standardbeagle/lexmatch/internal/types"
)

// WordMatch records one successful equivalence between a search phrase token
// and a document unit. The matched unit is a single token when First and Last
// are the same token and DocumentSubword is nil, a multiword span when they
// differ, and a subword when DocumentSubword is set.
//
// A WordMatch references units owned by the document and search phrase and
// must not outlive them. It is never modified after construction.
type WordMatch struct {
	SearchPhraseToken *types.SearchPhraseToken
	SearchPhraseWord  string

	DocumentToken      *types.Token
	FirstDocumentToken *types.Token
	LastDocumentToken  *types.Token
	DocumentSubword    *types.Subword
	DocumentWord       string

	MatchType   string
	Explanation string
}

// IsMultiword reports whether the match covers a multiword span
func (m *WordMatch) IsMultiword() bool {
	return m.FirstDocumentToken != m.LastDocumentToken
}

// IsSubword reports whether the match targets a subword
func (m *WordMatch) IsSubword() bool {
	return m.DocumentSubword != nil
}

// String returns a human-readable representation of a WordMatch
func (m *WordMatch) String() string {
	unit := fmt.Sprintf("token %d", m.DocumentToken.Index)
	switch {
	case m.IsSubword():
		unit = fmt.Sprintf("subword %d of token %d", m.DocumentSubword.Index, m.DocumentToken.Index)
	case m.IsMultiword():
		unit = fmt.Sprintf("tokens %d-%d", m.FirstDocumentToken.Index, m.LastDocumentToken.Index)
	}
	return fmt.Sprintf("WordMatch{%s: %q ~ %q at %s}", m.MatchType, m.SearchPhraseWord, m.DocumentWord, unit)
}

// tokenMatch builds a match against a single document token
func tokenMatch(label string, spToken *types.SearchPhraseToken, spWord string,
	docToken *types.Token, docWord, explanation string) *WordMatch {
	return &WordMatch{
		SearchPhraseToken:  spToken,
		SearchPhraseWord:   spWord,
		DocumentToken:      docToken,
		FirstDocumentToken: docToken,
		LastDocumentToken:  docToken,
		DocumentWord:       docWord,
		MatchType:          label,
		Explanation:        explanation,
	}
}

// subwordMatch builds a match against a subword of docToken
func subwordMatch(label string, spToken *types.SearchPhraseToken, spWord string,
	docToken *types.Token, subword *types.Subword, docWord, explanation string) *WordMatch {
	m := tokenMatch(label, spToken, spWord, docToken, docWord, explanation)
	m.DocumentSubword = subword
	return m
}

// spanMatch builds a match covering a multiword span. It returns nil when
// the span boundaries cannot be resolved through docToken's document.
func spanMatch(label string, spToken *types.SearchPhraseToken, spWord string,
	docToken *types.Token, span *types.MultiwordSpan, docWord, explanation string) *WordMatch {
	doc := docToken.Doc()
	if doc == nil {
		return nil
	}
	first, last := doc.Token(span.First()), doc.Token(span.Last())
	if first == nil || last == nil {
		return nil
	}
	m := tokenMatch(label, spToken, spWord, docToken, docWord, explanation)
	m.FirstDocumentToken = first
	m.LastDocumentToken = last
	return m
}

// firstCommon returns the first equal pair, scanning spReprs in the outer
// loop and docReprs in the inner loop.
func firstCommon(spReprs, docReprs []string) (string, string, bool) {
	for _, spWord := range spReprs {
		for _, docWord := range docReprs {
			if spWord == docWord {
				return spWord, docWord, true
			}
		}
	}
	return "", "", false
}
