package semantic

import (
	"strings"

	"github.com/surgebase/porter2"
)

// Stemmer reduces words to a porter2 stem. It is the fallback source of
// derivation representations for words the derivation lexicon does not know,
// so "authenticate" and "authentication" share the representation "authent".
type Stemmer struct {
	enabled    bool
	minLength  int
	exclusions map[string]bool // Words to never stem
	cache      *LRUCache
}

// NewStemmer creates a new stemmer. cacheSize <= 0 uses the cache default.
func NewStemmer(enabled bool, minLength int, exclusions []string, cacheSize int) *Stemmer {
	if minLength < 0 {
		minLength = 3
	}

	excluded := make(map[string]bool, len(exclusions))
	for _, w := range exclusions {
		excluded[strings.ToLower(w)] = true
	}

	return &Stemmer{
		enabled:    enabled,
		minLength:  minLength,
		exclusions: excluded,
		cache:      NewLRUCache(cacheSize),
	}
}

// IsEnabled checks if stemming is enabled
func (s *Stemmer) IsEnabled() bool {
	return s.enabled
}

// Stem returns the stem of a word, or the original word if stemming is disabled/excluded
func (s *Stemmer) Stem(word string) string {
	if !s.enabled {
		return word
	}

	if s.IsExcluded(word) {
		return word
	}

	if len(word) < s.minLength {
		return word
	}

	if stem, ok := s.cache.Get(word); ok {
		return stem
	}
	stem := porter2.Stem(word)
	s.cache.Set(word, stem)
	return stem
}

// IsExcluded checks if a word is in the exclusion list
func (s *Stemmer) IsExcluded(word string) bool {
	return s.exclusions[strings.ToLower(word)]
}
