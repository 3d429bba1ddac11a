package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/standardbeagle/lexmatch/internal/debug"
	"github.com/standardbeagle/lexmatch/internal/index"
	"github.com/standardbeagle/lexmatch/internal/matching"
	"github.com/standardbeagle/lexmatch/internal/types"

	"github.com/urfave/cli/v2"
)

// matchOutput is the JSON shape of one reported match
type matchOutput struct {
	Document         string `json:"document"`
	Phrase           string `json:"phrase"`
	PhraseTokenIndex int    `json:"phrase_token_index"`
	SearchPhraseWord string `json:"search_phrase_word"`
	DocumentWord     string `json:"document_word"`
	FirstTokenIndex  int    `json:"first_token_index"`
	LastTokenIndex   int    `json:"last_token_index"`
	SubwordIndex     *int   `json:"subword_index,omitempty"`
	DocumentText     string `json:"document_text"`
	MatchType        string `json:"match_type"`
	Explanation      string `json:"explanation"`
}

func matchCommand(c *cli.Context) error {
	jsonOutput := c.Bool("json")
	if jsonOutput {
		// Keep stdout machine-readable
		debug.SetQuietMode(true)
	}

	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}
	corpus, err := loadCorpus(cfg)
	if err != nil {
		return err
	}
	m, err := compileAll(cfg, corpus)
	if err != nil {
		return err
	}

	ix := index.NewPhraseIndex()
	for _, phrase := range corpus.Phrases {
		ix.Add(phrase)
	}

	var outputs []matchOutput
	for _, doc := range corpus.Documents {
		phrases := corpus.Phrases
		if !c.Bool("all-phrases") {
			phrases = inCorpusOrder(corpus.Phrases, ix.Candidates(documentWords(doc)))
		}

		results, err := m.MatchDocument(c.Context, doc, phrases)
		if err != nil {
			return err
		}
		for _, pm := range results {
			for _, wm := range pm.Matches {
				outputs = append(outputs, toOutput(doc, pm.Phrase, wm))
			}
		}
	}

	if jsonOutput {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		if outputs == nil {
			outputs = []matchOutput{}
		}
		return enc.Encode(outputs)
	}

	if len(outputs) == 0 {
		fmt.Fprintln(c.App.Writer, "No matches found")
		return nil
	}
	for _, o := range outputs {
		fmt.Fprintf(c.App.Writer, "%s\t%s\t%q\t[%s] %s\n", o.Document, o.Phrase, o.DocumentText, o.MatchType, o.Explanation)
	}
	return nil
}

// documentWords collects every form a phrase index key could match
func documentWords(doc *types.Document) []string {
	seen := make(map[string]bool)
	var words []string
	add := func(ws ...string) {
		for _, w := range ws {
			if w != "" && !seen[w] {
				seen[w] = true
				words = append(words, w)
			}
		}
	}
	addReprs := func(r types.MatchingReprs) {
		add(r.Direct...)
		add(r.Derivation.Values()...)
	}

	for _, t := range doc.Tokens {
		add(t.Lemma, t.DerivedLemma)
		addReprs(t.MatchingReprs)
		for _, sw := range t.Subwords {
			add(sw.Lemma, sw.DerivedLemma)
			addReprs(sw.MatchingReprs)
		}
		for _, span := range doc.MultiwordsAt(t.Index) {
			add(span.Lemma)
			addReprs(span.MatchingReprs)
		}
	}
	sort.Strings(words)
	return words
}

// inCorpusOrder keeps the phrases of all that appear in candidates
func inCorpusOrder(all, candidates []*types.SearchPhrase) []*types.SearchPhrase {
	keep := make(map[*types.SearchPhrase]bool, len(candidates))
	for _, p := range candidates {
		keep[p] = true
	}
	out := make([]*types.SearchPhrase, 0, len(candidates))
	for _, p := range all {
		if keep[p] {
			out = append(out, p)
		}
	}
	return out
}

func toOutput(doc *types.Document, phrase *types.SearchPhrase, wm *matching.WordMatch) matchOutput {
	o := matchOutput{
		Document:         doc.Label,
		Phrase:           phrase.Label,
		PhraseTokenIndex: wm.SearchPhraseToken.Index,
		SearchPhraseWord: wm.SearchPhraseWord,
		DocumentWord:     wm.DocumentWord,
		FirstTokenIndex:  wm.FirstDocumentToken.Index,
		LastTokenIndex:   wm.LastDocumentToken.Index,
		MatchType:        wm.MatchType,
		Explanation:      wm.Explanation,
	}

	if wm.IsSubword() {
		idx := wm.DocumentSubword.Index
		o.SubwordIndex = &idx
		o.DocumentText = wm.DocumentSubword.Text
		return o
	}

	words := make([]string, 0, o.LastTokenIndex-o.FirstTokenIndex+1)
	for i := o.FirstTokenIndex; i <= o.LastTokenIndex; i++ {
		words = append(words, doc.Token(i).Text)
	}
	o.DocumentText = strings.Join(words, " ")
	return o
}
