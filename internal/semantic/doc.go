// Package semantic produces the matching representations of words.
//
// # Components
//
// Stemmer: Reduces words to their root forms using the Porter2 algorithm,
// enabling derivation matches between word forms without a lexicon entry
// (e.g., "authenticate" and "authentication").
//
// DerivationLexicon: Maps the members of a word family to its root
// ("decision" and "decisive" to "decide"). Lexicon roots take precedence
// over stems.
//
// Annotator: Combines both to compute the direct and derivation
// representation sets of a token, subword, span or search phrase token.
//
// CompoundSplitter: Splits compound tokens into subword parts.
//
// # Performance
//
// Stemmer and CompoundSplitter results are cached (LRU and FIFO
// respectively). All components are safe for concurrent use once built.
//
// # Example
//
//	lexicon := semantic.NewDerivationLexicon()
//	lexicon.AddFamily("decide", "decision", "decisive")
//	annotator := semantic.NewAnnotator(lexicon, semantic.NewStemmer(true, 3, nil, 0))
//	reprs, derived := annotator.Annotate("decisions", "decision")
//	// reprs.Direct = [decision decisions], reprs.Derivation = [decide], derived = "decide"
package semantic
