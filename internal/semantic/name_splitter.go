package semantic

import (
	"strings"
	"sync"
	"unicode"
)

// CompoundSplitter splits compound words into subword parts.
// Supports hyphenated ("credit-card"), underscored, slashed and case-joined
// ("CreditCard") compounds. A word without any boundary yields no parts.
//
// Thread-safe: results are cached in a sync.Map with FIFO eviction
type CompoundSplitter struct {
	cache sync.Map

	cacheKeys []string
	maxSize   int
	mu        sync.Mutex
}

// NewCompoundSplitter creates a splitter caching up to cacheSize words
func NewCompoundSplitter(cacheSize int) *CompoundSplitter {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	return &CompoundSplitter{
		cacheKeys: make([]string, 0, cacheSize),
		maxSize:   cacheSize,
	}
}

func isCompoundSeparator(ch rune) bool {
	return ch == '-' || ch == '_' || ch == '/'
}

// Split returns the lowercased parts of word, or nil when word is not a
// compound (fewer than two parts). The returned slice belongs to the caller.
func (cs *CompoundSplitter) Split(word string) []string {
	if word == "" {
		return nil
	}
	if cached, ok := cs.cache.Load(word); ok {
		return cloneParts(cached.([]string))
	}

	runes := []rune(word)
	buf := make([]rune, 0, len(runes))
	var parts []string
	flush := func() {
		if len(buf) > 0 {
			parts = append(parts, strings.ToLower(string(buf)))
			buf = buf[:0]
		}
	}

	for i, ch := range runes {
		if isCompoundSeparator(ch) {
			flush()
			continue
		}
		if i > 0 {
			prev := runes[i-1]
			// lowercase to uppercase transition
			if unicode.IsLower(prev) && unicode.IsUpper(ch) {
				flush()
			}
			// end of an acronym: "HTTPServer" -> "http", "server"
			if i > 1 && unicode.IsUpper(prev) && unicode.IsLower(ch) && unicode.IsUpper(runes[i-2]) && len(buf) > 0 {
				last := buf[len(buf)-1]
				buf = buf[:len(buf)-1]
				flush()
				buf = append(buf, last)
			}
		}
		buf = append(buf, ch)
	}
	flush()

	if len(parts) < 2 {
		parts = nil
	}
	cs.store(word, parts)
	return cloneParts(parts)
}

func cloneParts(parts []string) []string {
	if parts == nil {
		return nil
	}
	out := make([]string, len(parts))
	copy(out, parts)
	return out
}

func (cs *CompoundSplitter) store(word string, parts []string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if len(cs.cacheKeys) >= cs.maxSize {
		oldest := cs.cacheKeys[0]
		cs.cache.Delete(oldest)
		cs.cacheKeys = cs.cacheKeys[1:]
	}
	cs.cache.Store(word, parts)
	cs.cacheKeys = append(cs.cacheKeys, word)
}
