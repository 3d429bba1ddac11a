package types

import (
	"fmt"
	"strings"

	lmerrors "github.com/standardbeagle/lexmatch/internal/errors"
)

// Document is a parsed, annotated text. It is built once by the parser and
// read-only while matching, so one document can be matched against many
// search phrases concurrently.
type Document struct {
	Label  string
	Tokens []*Token

	multiwords map[int][]*MultiwordSpan // anchor token index → spans
}

// Token is a node of the parsed document
type Token struct {
	Index        int
	Text         string
	Lemma        string
	DerivedLemma string
	MatchingReprs

	Subwords []*Subword

	doc *Document
}

// MultiwordSpan is a contiguous run of at least two document tokens
// treated as one unit, e.g. a compound noun.
type MultiwordSpan struct {
	TokenIndexes []int
	Text         string
	Lemma        string
	MatchingReprs
}

// Subword is a morpheme-level unit owned by a document token
type Subword struct {
	Index                int
	ContainingTokenIndex int
	Text                 string
	Lemma                string
	DerivedLemma         string
	MatchingReprs
}

// NewDocument creates an empty document
func NewDocument(label string) *Document {
	return &Document{
		Label:      label,
		multiwords: make(map[int][]*MultiwordSpan),
	}
}

// AddToken appends a token, assigning its index and owning document
func (d *Document) AddToken(t *Token) *Token {
	t.Index = len(d.Tokens)
	t.doc = d
	for i, sw := range t.Subwords {
		sw.Index = i
		sw.ContainingTokenIndex = t.Index
	}
	d.Tokens = append(d.Tokens, t)
	return t
}

// Token resolves a token index, returning nil when out of range
func (d *Document) Token(i int) *Token {
	if i < 0 || i >= len(d.Tokens) {
		return nil
	}
	return d.Tokens[i]
}

// Len returns the number of tokens
func (d *Document) Len() int {
	return len(d.Tokens)
}

// AddMultiword anchors a multiword span at the token with index anchor.
// The span must cover at least two contiguous, in-range tokens.
func (d *Document) AddMultiword(anchor int, span *MultiwordSpan) error {
	if d.Token(anchor) == nil {
		return lmerrors.NewContractError("multiword", anchor, "anchor token out of range")
	}
	if len(span.TokenIndexes) < 2 {
		return lmerrors.NewContractError("multiword", anchor, "span covers fewer than two tokens")
	}
	for i, idx := range span.TokenIndexes {
		if d.Token(idx) == nil {
			return lmerrors.NewContractError("multiword", anchor, fmt.Sprintf("token index %d out of range", idx))
		}
		if i > 0 && idx != span.TokenIndexes[i-1]+1 {
			return lmerrors.NewContractError("multiword", anchor, "span is not contiguous")
		}
	}
	if span.Text == "" {
		span.Text = d.joinText(span.TokenIndexes)
	}
	d.multiwords[anchor] = append(d.multiwords[anchor], span)
	return nil
}

// MultiwordsAt returns the spans anchored at token index i in insertion order
func (d *Document) MultiwordsAt(i int) []*MultiwordSpan {
	return d.multiwords[i]
}

// Validate checks every unit's representation invariants
func (d *Document) Validate() error {
	var errs []error
	for _, t := range d.Tokens {
		errs = append(errs, t.Validate("token", t.Index))
		for _, sw := range t.Subwords {
			errs = append(errs, sw.Validate("subword", sw.Index))
		}
	}
	for anchor, spans := range d.multiwords {
		for _, span := range spans {
			errs = append(errs, span.Validate("multiword", anchor))
		}
	}
	return lmerrors.NewMultiError(errs).ErrorOrNil()
}

func (d *Document) joinText(indexes []int) string {
	words := make([]string, 0, len(indexes))
	for _, idx := range indexes {
		words = append(words, d.Tokens[idx].Text)
	}
	return strings.Join(words, " ")
}

// Doc returns the owning document, nil for a detached token
func (t *Token) Doc() *Document {
	return t.doc
}

// First returns the index of the span's first token
func (s *MultiwordSpan) First() int {
	return s.TokenIndexes[0]
}

// Last returns the index of the span's last token
func (s *MultiwordSpan) Last() int {
	return s.TokenIndexes[len(s.TokenIndexes)-1]
}
