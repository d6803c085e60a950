// Package detect contains the sentence level quality checks: passive voice
// constructions and weak conditional modal verbs.
//
// Both checks are pure functions over the token annotations produced by the
// segmenter. They never fail: a sentence without usable annotations simply
// does not match.
package detect

import (
	"strings"

	sent "github.com/revelaction/srslint/sentence"
)

// Dependency labels marking a passive construction, as emitted by
// spacy/stanza style parsers.
const (
	DepPassiveSubject = "nsubjpass"
	DepPassiveAux     = "auxpass"
)

// Passive reports whether the sentence contains a passive voice
// construction: at least one token with the passive subject relation or the
// passive auxiliary relation. Either signal alone is sufficient, favoring
// recall over precision.
func Passive(s sent.Sentence) bool {
	for _, t := range s.Tokens {
		if t.Dep == DepPassiveSubject || t.Dep == DepPassiveAux {
			return true
		}
	}

	return false
}

// PassiveTokens returns the tokens carrying a passive relation, in sentence
// order. Used to highlight the trigger words in rendered output.
func PassiveTokens(s sent.Sentence) []sent.Token {
	var tokens []sent.Token
	for _, t := range s.Tokens {
		if t.Dep == DepPassiveSubject || t.Dep == DepPassiveAux {
			tokens = append(tokens, t)
		}
	}

	return tokens
}

// ModalDetector matches tokens against a closed vocabulary of weak
// conditional modal verbs (could, might, should, would by default).
// The vocabulary is injected so it can be tuned per corpus.
type ModalDetector struct {
	vocabulary map[string]bool
}

// NewModalDetector creates a detector for the given modal vocabulary.
// Matching is case-insensitive on the whole token surface text, never on
// substrings or lemmas: "would" matches, "wouldn't" tokenized as a single
// token does not.
func NewModalDetector(words []string) *ModalDetector {
	vocab := make(map[string]bool, len(words))
	for _, w := range words {
		vocab[strings.ToLower(w)] = true
	}

	return &ModalDetector{vocabulary: vocab}
}

// Detect reports whether any token of the sentence is a vocabulary modal.
func (d *ModalDetector) Detect(s sent.Sentence) bool {
	for _, t := range s.Tokens {
		if d.vocabulary[strings.ToLower(t.Text)] {
			return true
		}
	}

	return false
}

// Modals returns the distinct matched surface forms in sentence order.
func (d *ModalDetector) Modals(s sent.Sentence) []string {
	var modals []string

TOKEN:
	for _, t := range s.Tokens {
		if !d.vocabulary[strings.ToLower(t.Text)] {
			continue
		}

		for _, m := range modals {
			if m == t.Text {
				continue TOKEN
			}
		}

		modals = append(modals, t.Text)
	}

	return modals
}

// ModalTokens returns the tokens whose surface text is a vocabulary modal.
func (d *ModalDetector) ModalTokens(s sent.Sentence) []sent.Token {
	var tokens []sent.Token
	for _, t := range s.Tokens {
		if d.vocabulary[strings.ToLower(t.Text)] {
			tokens = append(tokens, t)
		}
	}

	return tokens
}

// Annotated reports whether the sentence carries usable dependency
// annotations. A sentence with no tokens, or where every token has an empty
// dependency label, came from a degraded parse and is treated as an anomaly
// by the analyzer.
func Annotated(s sent.Sentence) bool {
	if len(s.Tokens) == 0 {
		return false
	}

	for _, t := range s.Tokens {
		if t.Dep != "" {
			return true
		}
	}

	return false
}
