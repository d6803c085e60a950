package sentence

import "strings"

// Doc is one SRS document: its ordered sentences plus metadata.
// A Doc lives for one analysis pass only, it is never persisted.
type Doc struct {
	Id int

	Title string

	Sentences []Sentence `json:"sentences"`
}

// Sentence is an ordered sequence of tokens plus the original sentence text.
type Sentence struct {
	Id int `json:"id"`

	// The original text of the sentence as found in the document.
	Text string `json:"text"`

	Tokens []Token `json:"tokens"`
}

// Token represents a word of the sentence, with POS and metadata.
type Token struct {
	Id         int    `json:"id"`
	Head       int    `json:"head"`
	SentenceId int    `json:"sent"`
	Pos        string `json:"pos"`
	Dep        string `json:"dep"`

	// A string containing detailed POS data
	Tag string `json:"tag"`

	// the index of the start character of the token in the original doc (set by spacy, stanza)
	Idx int `json:"idx"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`
}

// Words returns the number of whitespace separated words of the original
// sentence text. Used to filter headings and fragments too short to be a
// real requirement sentence.
func (s Sentence) Words() int {
	return len(strings.Fields(s.Text))
}
