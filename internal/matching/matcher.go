package matching

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/lexmatch/internal/debug"
	"github.com/standardbeagle/lexmatch/internal/types"
)

var (
	// ErrPhraseNotCompiled is returned when matching a phrase that was never compiled
	ErrPhraseNotCompiled = errors.New("search phrase not compiled")

	// ErrNoStrategies is returned when a matcher has no registered strategies
	ErrNoStrategies = errors.New("no word matching strategies registered")
)

// Matcher runs an ordered list of strategies over documents. For each
// (search phrase token, document unit) pair the first strategy in
// registration order that returns a match wins.
type Matcher struct {
	strategies []WordMatchingStrategy
	workers    int
}

// NewMatcher creates a matcher. workers bounds the number of phrases matched
// concurrently by MatchDocument; values below 1 mean runtime.NumCPU().
func NewMatcher(workers int, strategies ...WordMatchingStrategy) *Matcher {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Matcher{
		strategies: strategies,
		workers:    workers,
	}
}

// Strategies returns the registered strategies in priority order
func (m *Matcher) Strategies() []WordMatchingStrategy {
	return m.strategies
}

// Compile validates the phrase, lets every strategy extend its index and
// freezes it. Compile must finish before the phrase is matched.
func (m *Matcher) Compile(phrase *types.SearchPhrase) error {
	if len(m.strategies) == 0 {
		return ErrNoStrategies
	}
	if err := phrase.Validate(); err != nil {
		return fmt.Errorf("compile %q: %w", phrase.Label, err)
	}
	for _, s := range m.strategies {
		if err := s.ExtendIndex(phrase); err != nil {
			return fmt.Errorf("compile %q: %s strategy: %w", phrase.Label, s.Label(), err)
		}
	}
	phrase.Freeze()
	debug.LogCompile("phrase %q compiled with %d index entries\n", phrase.Label, len(phrase.WordInformation()))
	return nil
}

// MatchPair matches spToken against docToken. Multiword spans anchored at
// docToken are tried first, then the token itself, then its subwords.
func (m *Matcher) MatchPair(phrase *types.SearchPhrase, spToken *types.SearchPhraseToken,
	docToken *types.Token) *WordMatch {
	if doc := docToken.Doc(); doc != nil {
		if spans := doc.MultiwordsAt(docToken.Index); len(spans) > 0 {
			for _, s := range m.strategies {
				if wm := s.MatchMultiwords(phrase, spToken, docToken, spans); wm != nil {
					return wm
				}
			}
		}
	}

	for _, s := range m.strategies {
		if wm := s.MatchToken(phrase, spToken, docToken); wm != nil {
			return wm
		}
	}

	for _, subword := range docToken.Subwords {
		for _, s := range m.strategies {
			if wm := s.MatchSubword(phrase, spToken, docToken, subword); wm != nil {
				return wm
			}
		}
	}
	return nil
}

// MatchPhrase returns every match of phrase in doc, ordered by search phrase
// token index and then document token index
func (m *Matcher) MatchPhrase(phrase *types.SearchPhrase, doc *types.Document) ([]*WordMatch, error) {
	if !phrase.IsFrozen() {
		return nil, fmt.Errorf("%q: %w", phrase.Label, ErrPhraseNotCompiled)
	}
	var matches []*WordMatch
	for _, spToken := range phrase.Tokens {
		for _, docToken := range doc.Tokens {
			if wm := m.MatchPair(phrase, spToken, docToken); wm != nil {
				matches = append(matches, wm)
			}
		}
	}
	return matches, nil
}

// PhraseMatches groups the matches of one search phrase
type PhraseMatches struct {
	Phrase  *types.SearchPhrase
	Matches []*WordMatch
}

// MatchDocument matches every phrase against doc using up to workers
// goroutines. Results are returned in phrase input order. Cancellation is
// checked before each phrase starts.
func (m *Matcher) MatchDocument(ctx context.Context, doc *types.Document,
	phrases []*types.SearchPhrase) ([]PhraseMatches, error) {
	if len(m.strategies) == 0 {
		return nil, ErrNoStrategies
	}

	results := make([]PhraseMatches, len(phrases))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)

	for i, phrase := range phrases {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			matches, err := m.MatchPhrase(phrase, doc)
			if err != nil {
				return err
			}
			results[i] = PhraseMatches{Phrase: phrase, Matches: matches}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	debug.LogMatch("document %q matched against %d phrases\n", doc.Label, len(phrases))
	return results, nil
}
