package semantic

import (
	"strings"

	"github.com/standardbeagle/lexmatch/internal/types"
)

// Annotator computes matching representations for units that arrive without
// them. It is a small reference substitute for a full linguistic pipeline:
// direct forms are lowercased lemma and text, derivation forms come from the
// lexicon and fall back to porter2 stems.
type Annotator struct {
	lexicon *DerivationLexicon
	stemmer *Stemmer
}

// NewAnnotator creates an annotator. Either argument may be nil.
func NewAnnotator(lexicon *DerivationLexicon, stemmer *Stemmer) *Annotator {
	return &Annotator{
		lexicon: lexicon,
		stemmer: stemmer,
	}
}

// Annotate returns the representation sets and derived lemma for a unit.
// Derivation representations are present only when the derived form
// differs from the lemma.
func (a *Annotator) Annotate(text, lemma string) (types.MatchingReprs, string) {
	lemma = Normalize(lemma)
	if lemma == "" {
		lemma = Normalize(text)
	}

	direct := []string{lemma}
	if t := Normalize(text); t != "" && t != lemma {
		direct = append(direct, t)
	}

	derived := a.derive(lemma)
	if derived == lemma {
		return types.MatchingReprs{Direct: direct}, lemma
	}
	return types.MatchingReprs{Direct: direct, Derivation: types.Present(derived)}, derived
}

// derive maps every word of lemma through the lexicon, stemming words the
// lexicon does not know
func (a *Annotator) derive(lemma string) string {
	words := strings.Fields(lemma)
	for i, w := range words {
		if a.lexicon != nil {
			if root, ok := a.lexicon.Root(w); ok {
				words[i] = root
				continue
			}
		}
		if a.stemmer != nil && a.stemmer.IsEnabled() {
			words[i] = a.stemmer.Stem(w)
		}
	}
	return strings.Join(words, " ")
}

// Normalize lowercases s and collapses runs of whitespace to single spaces
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
