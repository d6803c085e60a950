package analyze

// Finding is one flagged sentence within a document.
type Finding struct {
	// Position is the 1-based index of the sentence among the counted
	// sentences of the document.
	Position int `json:"position"`

	Text string `json:"text"`

	// Modals holds the matched surface forms for conditional findings.
	Modals []string `json:"modals,omitempty"`
}

// Suggestion is a successful active voice rewrite of a passive sentence.
type Suggestion struct {
	Position  int    `json:"position"`
	Original  string `json:"original"`
	Rewritten string `json:"rewritten"`
}

// Anomaly records a sentence the detectors could not judge, typically
// because the parse produced no dependency annotations. The sentence is
// counted as neither passive nor conditional.
type Anomaly struct {
	Position int    `json:"position"`
	Reason   string `json:"reason"`
}

// DocReport is the analysis result of one document.
type DocReport struct {
	Title string `json:"title"`

	TotalSentences int `json:"total_sentences"`
	PassiveCount   int `json:"passive_count"`
	ModalCount     int `json:"modal_count"`

	// Flagged sentences, in document order.
	Passives     []Finding `json:"passive_sentences,omitempty"`
	Conditionals []Finding `json:"conditional_sentences,omitempty"`

	// Suggestions holds only the sentences that were successfully
	// rewritten; sentences whose rewrite failed are simply absent.
	Suggestions []Suggestion `json:"suggestions,omitempty"`

	Anomalies []Anomaly `json:"anomalies,omitempty"`
}
