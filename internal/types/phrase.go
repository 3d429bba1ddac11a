package types

import (
	"sort"
	"strings"

	lmerrors "github.com/standardbeagle/lexmatch/internal/errors"
)

// SearchPhrase is a compiled search pattern. It has a two-phase lifecycle:
// during compilation strategies may register word information; after
// Freeze the phrase is read-only and safe to share between goroutines.
type SearchPhrase struct {
	Label     string
	Tokens    []*SearchPhraseToken
	RootIndex int

	words  map[string]WordInformation
	frozen bool
}

// SearchPhraseToken is a node of a compiled search phrase.
// Lemma may be several space-joined words.
type SearchPhraseToken struct {
	Index        int
	Text         string
	Lemma        string
	DerivedLemma string
	MatchingReprs

	phrase *SearchPhrase
}

// WordInformation is an additional index key for a search phrase's root token
type WordInformation struct {
	Word      string
	MatchType string
	Depth     int
}

// NewSearchPhrase creates an empty phrase in the compile phase
func NewSearchPhrase(label string) *SearchPhrase {
	return &SearchPhrase{
		Label: label,
		words: make(map[string]WordInformation),
	}
}

// AddToken appends a token, assigning its index and owning phrase
func (p *SearchPhrase) AddToken(t *SearchPhraseToken) *SearchPhraseToken {
	t.Index = len(p.Tokens)
	t.phrase = p
	p.Tokens = append(p.Tokens, t)
	return t
}

// Root returns the root token, nil when RootIndex is out of range
func (p *SearchPhrase) Root() *SearchPhraseToken {
	if p.RootIndex < 0 || p.RootIndex >= len(p.Tokens) {
		return nil
	}
	return p.Tokens[p.RootIndex]
}

// AddWordInformation registers word as an index key for the phrase.
// The first match type registered for a word owns the entry: the same match
// type registering again replaces it, a different one is ignored.
func (p *SearchPhrase) AddWordInformation(word, matchType string, depth int) error {
	if p.frozen {
		return lmerrors.NewPhraseFrozenError(p.Label, word)
	}
	if existing, ok := p.words[word]; ok && existing.MatchType != matchType {
		return nil
	}
	p.words[word] = WordInformation{Word: word, MatchType: matchType, Depth: depth}
	return nil
}

// WordInformation returns the registered entries sorted by word
func (p *SearchPhrase) WordInformation() []WordInformation {
	out := make([]WordInformation, 0, len(p.words))
	for _, wi := range p.words {
		out = append(out, wi)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Word < out[j].Word })
	return out
}

// Freeze ends the compile phase
func (p *SearchPhrase) Freeze() {
	p.frozen = true
}

// IsFrozen reports whether the phrase is in the matching phase
func (p *SearchPhrase) IsFrozen() bool {
	return p.frozen
}

// Validate checks the root index and every token's representation invariants
func (p *SearchPhrase) Validate() error {
	if p.Root() == nil {
		return lmerrors.NewContractError("search_phrase", p.RootIndex, "root token index out of range")
	}
	var errs []error
	for _, t := range p.Tokens {
		errs = append(errs, t.Validate("search_phrase_token", t.Index))
	}
	return lmerrors.NewMultiError(errs).ErrorOrNil()
}

// Phrase returns the owning phrase, nil for a detached token
func (t *SearchPhraseToken) Phrase() *SearchPhrase {
	return t.phrase
}

// IsMultiword reports whether the lemma consists of more than one word
func (t *SearchPhraseToken) IsMultiword() bool {
	return len(strings.Fields(t.Lemma)) > 1
}
