// Package fixture loads annotated documents, search phrases and derivation
// lexicon families from TOML files.
//
// Units may carry explicit representation sets; units without a direct set
// are annotated with semantic.Annotator. A sample file:
//
//	[lexicon]
//	decide = ["decision", "decisive"]
//
//	[[document]]
//	label = "memo"
//	[[document.tokens]]
//	text = "decided"
//	lemma = "decide"
//	[[document.multiwords]]
//	anchor = 1
//	tokens = [0, 1]
//
//	[[phrase]]
//	label = "decision"
//	[[phrase.tokens]]
//	lemma = "decision"
package fixture

import (
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/standardbeagle/lexmatch/internal/debug"
	lmerrors "github.com/standardbeagle/lexmatch/internal/errors"
	"github.com/standardbeagle/lexmatch/internal/semantic"
	"github.com/standardbeagle/lexmatch/internal/types"
)

// File is the decoded form of one fixture file
type File struct {
	Lexicon   map[string][]string `toml:"lexicon"`
	Documents []DocumentSpec      `toml:"document"`
	Phrases   []PhraseSpec        `toml:"phrase"`
}

// UnitSpec holds the fields shared by every annotatable unit. A nil
// Derivation means absent; an empty list is rejected by validation.
type UnitSpec struct {
	Text         string    `toml:"text"`
	Lemma        string    `toml:"lemma"`
	DerivedLemma string    `toml:"derived_lemma"`
	Direct       []string  `toml:"direct"`
	Derivation   *[]string `toml:"derivation"`
}

// TokenSpec describes one document token. With Split set and no explicit
// subwords, a compound text ("credit-card", "CreditCard") is split into
// annotated subwords.
type TokenSpec struct {
	UnitSpec
	Split    bool       `toml:"split"`
	Subwords []UnitSpec `toml:"subwords"`
}

type MultiwordSpec struct {
	UnitSpec
	Anchor int   `toml:"anchor"`
	Tokens []int `toml:"tokens"`
}

type DocumentSpec struct {
	Label      string          `toml:"label"`
	Tokens     []TokenSpec     `toml:"tokens"`
	Multiwords []MultiwordSpec `toml:"multiwords"`
}

type PhraseSpec struct {
	Label  string     `toml:"label"`
	Root   int        `toml:"root"`
	Tokens []UnitSpec `toml:"tokens"`
}

// Corpus is the result of loading one or more fixture files
type Corpus struct {
	Documents []*types.Document
	Phrases   []*types.SearchPhrase
}

// Decode parses fixture TOML
func Decode(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Loader builds documents and phrases from fixture files
type Loader struct {
	lexicon   *semantic.DerivationLexicon
	annotator *semantic.Annotator
	splitter  *semantic.CompoundSplitter
}

// NewLoader creates a loader that annotates with lexicon and stemmer.
// Lexicon sections of loaded files are added to lexicon.
func NewLoader(lexicon *semantic.DerivationLexicon, stemmer *semantic.Stemmer) *Loader {
	if lexicon == nil {
		lexicon = semantic.NewDerivationLexicon()
	}
	return &Loader{
		lexicon:   lexicon,
		annotator: semantic.NewAnnotator(lexicon, stemmer),
		splitter:  semantic.NewCompoundSplitter(semantic.DefaultCacheSize),
	}
}

// LoadFiles reads every path. All lexicon sections are registered before
// any unit is annotated, so a family defined in one file applies to all.
func (l *Loader) LoadFiles(paths []string) (*Corpus, error) {
	files := make([]*File, len(paths))
	var errs []error
	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, lmerrors.NewFixtureError("read", path, err))
			continue
		}
		f, err := Decode(data)
		if err != nil {
			errs = append(errs, lmerrors.NewFixtureError("decode", path, err))
			continue
		}
		files[i] = f
		l.addLexicon(f.Lexicon)
	}
	if err := lmerrors.NewMultiError(errs).ErrorOrNil(); err != nil {
		return nil, err
	}

	corpus := &Corpus{}
	for i, f := range files {
		if err := l.build(f, corpus); err != nil {
			errs = append(errs, lmerrors.NewFixtureError("build", paths[i], err))
		}
	}
	if err := lmerrors.NewMultiError(errs).ErrorOrNil(); err != nil {
		return nil, err
	}

	debug.LogFixture("loaded %d documents and %d phrases from %d files\n",
		len(corpus.Documents), len(corpus.Phrases), len(paths))
	return corpus, nil
}

// Build converts an already decoded file
func (l *Loader) Build(f *File) (*Corpus, error) {
	l.addLexicon(f.Lexicon)
	corpus := &Corpus{}
	if err := l.build(f, corpus); err != nil {
		return nil, err
	}
	return corpus, nil
}

func (l *Loader) addLexicon(families map[string][]string) {
	roots := make([]string, 0, len(families))
	for root := range families {
		roots = append(roots, root)
	}
	sort.Strings(roots)
	for _, root := range roots {
		l.lexicon.AddFamily(root, families[root]...)
	}
}

func (l *Loader) build(f *File, corpus *Corpus) error {
	for _, ds := range f.Documents {
		doc, err := l.buildDocument(ds)
		if err != nil {
			return err
		}
		corpus.Documents = append(corpus.Documents, doc)
	}
	for _, ps := range f.Phrases {
		corpus.Phrases = append(corpus.Phrases, l.buildPhrase(ps))
	}
	return nil
}

func (l *Loader) buildDocument(ds DocumentSpec) (*types.Document, error) {
	doc := types.NewDocument(ds.Label)
	for _, ts := range ds.Tokens {
		tok := &types.Token{}
		tok.Text, tok.Lemma, tok.DerivedLemma, tok.MatchingReprs = l.unit(ts.UnitSpec)
		subwords := ts.Subwords
		if ts.Split && len(subwords) == 0 {
			for _, part := range l.splitter.Split(tok.Text) {
				subwords = append(subwords, UnitSpec{Text: part})
			}
		}
		for _, ss := range subwords {
			sw := &types.Subword{}
			sw.Text, sw.Lemma, sw.DerivedLemma, sw.MatchingReprs = l.unit(ss)
			tok.Subwords = append(tok.Subwords, sw)
		}
		doc.AddToken(tok)
	}

	for _, ms := range ds.Multiwords {
		us := ms.UnitSpec
		if us.Text == "" {
			us.Text = joinTokens(doc, ms.Tokens, func(t *types.Token) string { return t.Text })
		}
		if us.Lemma == "" {
			us.Lemma = joinTokens(doc, ms.Tokens, func(t *types.Token) string { return t.Lemma })
		}
		span := &types.MultiwordSpan{TokenIndexes: ms.Tokens}
		span.Text, span.Lemma, _, span.MatchingReprs = l.unit(us)
		if err := doc.AddMultiword(ms.Anchor, span); err != nil {
			return nil, err
		}
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func (l *Loader) buildPhrase(ps PhraseSpec) *types.SearchPhrase {
	phrase := types.NewSearchPhrase(ps.Label)
	phrase.RootIndex = ps.Root
	for _, us := range ps.Tokens {
		tok := &types.SearchPhraseToken{}
		tok.Text, tok.Lemma, tok.DerivedLemma, tok.MatchingReprs = l.unit(us)
		phrase.AddToken(tok)
	}
	if phrase.Label == "" && phrase.Root() != nil {
		phrase.Label = phrase.Root().Lemma
	}
	return phrase
}

// unit resolves text, lemma, derived lemma and representations of a unit
func (l *Loader) unit(us UnitSpec) (string, string, string, types.MatchingReprs) {
	text, lemma := us.Text, semantic.Normalize(us.Lemma)
	if text == "" {
		text = us.Lemma
	}
	if lemma == "" {
		lemma = semantic.Normalize(text)
	}

	if len(us.Direct) == 0 {
		reprs, derived := l.annotator.Annotate(text, lemma)
		if us.DerivedLemma != "" {
			derived = semantic.Normalize(us.DerivedLemma)
		}
		return text, lemma, derived, reprs
	}

	reprs := types.MatchingReprs{Direct: us.Direct}
	derived := lemma
	if us.Derivation != nil {
		reprs.Derivation = types.Present(*us.Derivation...)
		if len(*us.Derivation) > 0 {
			derived = (*us.Derivation)[0]
		}
	}
	if us.DerivedLemma != "" {
		derived = semantic.Normalize(us.DerivedLemma)
	}
	return text, lemma, derived, reprs
}

func joinTokens(doc *types.Document, indexes []int, field func(*types.Token) string) string {
	words := make([]string, 0, len(indexes))
	for _, idx := range indexes {
		if t := doc.Token(idx); t != nil {
			words = append(words, field(t))
		}
	}
	return strings.Join(words, " ")
}
