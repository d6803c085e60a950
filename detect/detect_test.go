package detect

import (
	"reflect"
	"testing"

	sent "github.com/revelaction/srslint/sentence"
)

// mkSentence builds an annotated sentence from (text, dep) pairs.
func mkSentence(words ...[2]string) sent.Sentence {
	s := sent.Sentence{}
	idx := 0
	texts := []string{}
	for i, w := range words {
		s.Tokens = append(s.Tokens, sent.Token{
			Id:    i,
			Index: i,
			Idx:   idx,
			Text:  w[0],
			Dep:   w[1],
		})
		idx += len(w[0]) + 1
		texts = append(texts, w[0])
	}
	for _, t := range texts {
		s.Text += t + " "
	}
	return s
}

func TestPassive(t *testing.T) {
	tests := []struct {
		name     string
		sentence sent.Sentence
		want     bool
	}{
		{
			name: "passive subject and auxiliary",
			sentence: mkSentence(
				[2]string{"The", "det"},
				[2]string{"task", "nsubjpass"},
				[2]string{"is", "auxpass"},
				[2]string{"completed", "ROOT"},
				[2]string{"by", "agent"},
				[2]string{"the", "det"},
				[2]string{"system", "pobj"},
			),
			want: true,
		},
		{
			name: "active voice",
			sentence: mkSentence(
				[2]string{"The", "det"},
				[2]string{"system", "nsubj"},
				[2]string{"completes", "ROOT"},
				[2]string{"the", "det"},
				[2]string{"task", "dobj"},
			),
			want: false,
		},
		{
			name: "passive subject alone is sufficient",
			sentence: mkSentence(
				[2]string{"task", "nsubjpass"},
				[2]string{"completed", "ROOT"},
			),
			want: true,
		},
		{
			name: "passive auxiliary alone is sufficient",
			sentence: mkSentence(
				[2]string{"is", "auxpass"},
				[2]string{"completed", "ROOT"},
			),
			want: true,
		},
		{
			name:     "empty sentence",
			sentence: sent.Sentence{},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Passive(tt.sentence); got != tt.want {
				t.Errorf("Passive() = %v, want %v", got, tt.want)
			}
			// idempotent
			if got := Passive(tt.sentence); got != tt.want {
				t.Errorf("Passive() second call = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPassiveTokens(t *testing.T) {
	s := mkSentence(
		[2]string{"The", "det"},
		[2]string{"task", "nsubjpass"},
		[2]string{"is", "auxpass"},
		[2]string{"completed", "ROOT"},
	)

	tokens := PassiveTokens(s)
	if len(tokens) != 2 {
		t.Fatalf("expected 2 passive tokens, got %d", len(tokens))
	}
	if tokens[0].Text != "task" || tokens[1].Text != "is" {
		t.Errorf("unexpected passive tokens: %v", tokens)
	}
}

func TestModalDetect(t *testing.T) {
	d := NewModalDetector([]string{"could", "might", "should", "would"})

	tests := []struct {
		name     string
		sentence sent.Sentence
		want     bool
	}{
		{
			name: "should matches",
			sentence: mkSentence(
				[2]string{"The", "det"},
				[2]string{"system", "nsubj"},
				[2]string{"should", "aux"},
				[2]string{"allow", "ROOT"},
				[2]string{"login", "dobj"},
			),
			want: true,
		},
		{
			name: "case insensitive",
			sentence: mkSentence(
				[2]string{"Would", "aux"},
				[2]string{"work", "ROOT"},
			),
			want: true,
		},
		{
			name: "no substring match inside longer word",
			sentence: mkSentence(
				[2]string{"wouldn't", "aux"},
				[2]string{"work", "ROOT"},
			),
			want: false,
		},
		{
			name: "contracted negation tokenized apart",
			sentence: mkSentence(
				[2]string{"would", "aux"},
				[2]string{"n't", "neg"},
				[2]string{"work", "ROOT"},
			),
			want: true,
		},
		{
			name: "shall is not in the vocabulary",
			sentence: mkSentence(
				[2]string{"The", "det"},
				[2]string{"system", "nsubj"},
				[2]string{"shall", "aux"},
				[2]string{"allow", "ROOT"},
			),
			want: false,
		},
		{
			name:     "empty sentence",
			sentence: sent.Sentence{},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.sentence); got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModalDetectCustomVocabulary(t *testing.T) {
	d := NewModalDetector([]string{"may"})

	s := mkSentence(
		[2]string{"should", "aux"},
		[2]string{"may", "aux"},
	)

	if !d.Detect(s) {
		t.Error("expected custom vocabulary to match 'may'")
	}

	modals := d.Modals(s)
	if !reflect.DeepEqual(modals, []string{"may"}) {
		t.Errorf("Modals() = %v, want [may]", modals)
	}
}

func TestModalsDeduplicates(t *testing.T) {
	d := NewModalDetector([]string{"could", "might", "should", "would"})

	s := mkSentence(
		[2]string{"should", "aux"},
		[2]string{"work", "ROOT"},
		[2]string{"should", "aux"},
		[2]string{"could", "aux"},
	)

	modals := d.Modals(s)
	if !reflect.DeepEqual(modals, []string{"should", "could"}) {
		t.Errorf("Modals() = %v, want [should could]", modals)
	}
}

func TestAnnotated(t *testing.T) {
	tests := []struct {
		name     string
		sentence sent.Sentence
		want     bool
	}{
		{
			name:     "no tokens",
			sentence: sent.Sentence{Text: "some text"},
			want:     false,
		},
		{
			name: "all dependency labels missing",
			sentence: mkSentence(
				[2]string{"the", ""},
				[2]string{"system", ""},
			),
			want: false,
		},
		{
			name: "annotated",
			sentence: mkSentence(
				[2]string{"the", "det"},
				[2]string{"system", "nsubj"},
			),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Annotated(tt.sentence); got != tt.want {
				t.Errorf("Annotated() = %v, want %v", got, tt.want)
			}
		})
	}
}
