// Package index maps words to the compiled search phrases whose root token
// can match them, so a document token only needs to be compared against
// candidate phrases instead of every registered phrase.
package index

import (
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/standardbeagle/lexmatch/internal/debug"
	"github.com/standardbeagle/lexmatch/internal/types"
)

// RootLemmaMatchType tags the entry every phrase gets for its root lemma
const RootLemmaMatchType = "direct"

// Entry is one index key contributed for a search phrase
type Entry struct {
	Word      string
	Phrase    *types.SearchPhrase
	MatchType string
	Depth     int
}

// PhraseIndex is a thread-safe word → phrase lookup. Keys are bucketed by
// xxhash; each entry keeps its word so colliding buckets are filtered on read.
type PhraseIndex struct {
	mu      sync.RWMutex
	buckets map[uint64][]Entry
	phrases int
}

// NewPhraseIndex creates an empty index
func NewPhraseIndex() *PhraseIndex {
	return &PhraseIndex{
		buckets: make(map[uint64][]Entry),
	}
}

// Add registers the root lemma and all word information of a compiled phrase
func (ix *PhraseIndex) Add(phrase *types.SearchPhrase) {
	root := phrase.Root()
	if root == nil {
		return
	}

	entries := []Entry{{Word: root.Lemma, Phrase: phrase, MatchType: RootLemmaMatchType}}
	for _, wi := range phrase.WordInformation() {
		entries = append(entries, Entry{Word: wi.Word, Phrase: phrase, MatchType: wi.MatchType, Depth: wi.Depth})
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()
	for _, e := range entries {
		key := xxhash.Sum64String(e.Word)
		ix.buckets[key] = append(ix.buckets[key], e)
	}
	ix.phrases++
	debug.LogIndex("indexed phrase %q under %d keys\n", phrase.Label, len(entries))
}

// Lookup returns the entries registered for word in insertion order
func (ix *PhraseIndex) Lookup(word string) []Entry {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	bucket := ix.buckets[xxhash.Sum64String(word)]
	var out []Entry
	for _, e := range bucket {
		if e.Word == word {
			out = append(out, e)
		}
	}
	return out
}

// Candidates returns the distinct phrases reachable from any of words, in
// order of first appearance
func (ix *PhraseIndex) Candidates(words []string) []*types.SearchPhrase {
	seen := make(map[*types.SearchPhrase]bool)
	var out []*types.SearchPhrase
	for _, w := range words {
		for _, e := range ix.Lookup(w) {
			if !seen[e.Phrase] {
				seen[e.Phrase] = true
				out = append(out, e.Phrase)
			}
		}
	}
	return out
}

// Len returns the number of indexed phrases
func (ix *PhraseIndex) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.phrases
}
