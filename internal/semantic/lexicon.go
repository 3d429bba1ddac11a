package semantic

import (
	"strings"
	"sync"
)

// DerivationLexicon maps words to the root of their derivational family,
// e.g. "decision", "decisive" and "decide" all map to "decide".
type DerivationLexicon struct {
	mu    sync.RWMutex
	roots map[string]string
}

// NewDerivationLexicon creates an empty lexicon
func NewDerivationLexicon() *DerivationLexicon {
	return &DerivationLexicon{
		roots: make(map[string]string),
	}
}

// AddFamily registers root and its members. Words are lowercased. A word
// already registered under another family keeps its first root.
func (l *DerivationLexicon) AddFamily(root string, members ...string) {
	root = strings.ToLower(root)

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, w := range append([]string{root}, members...) {
		w = strings.ToLower(w)
		if _, exists := l.roots[w]; !exists {
			l.roots[w] = root
		}
	}
}

// Root returns the family root for word
func (l *DerivationLexicon) Root(word string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	root, ok := l.roots[strings.ToLower(word)]
	return root, ok
}

// Size returns the number of known words
func (l *DerivationLexicon) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.roots)
}
