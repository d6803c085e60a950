// Package render presents a corpus report on a terminal, either as colored
// text or as JSON.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/srslint/corpus"
	sent "github.com/revelaction/srslint/sentence"
)

var (
	Red       = "\033[1;31m"
	Green     = "\033[1;32m"
	Yellow    = "\033[0;33m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

// maxFindings is the number of detailed findings shown per smell.
const maxFindings = 5

// Renderer presents a corpus report.
type Renderer interface {
	Render(rep corpus.Report) error
}

// TextRenderer writes the report as a human readable summary: aggregate
// header, one table row per document, detailed findings and rewrite
// suggestions.
type TextRenderer struct {
	W io.Writer

	HasColor bool
}

var _ Renderer = (*TextRenderer)(nil)

// NewTextRenderer creates a TextRenderer writing to w.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{W: w, HasColor: true}
}

func (r *TextRenderer) Render(rep corpus.Report) error {
	rule := strings.Repeat("=", 78)

	fmt.Fprintln(r.W, rule)
	fmt.Fprintln(r.W, "SRS QUALITY REPORT (passive voice, conditional modals)")
	fmt.Fprintf(r.W, "Documents analyzed:  %d\n", len(rep.Docs))
	fmt.Fprintf(r.W, "Sentences scanned:   %d\n", rep.TotalSentences())
	fmt.Fprintf(r.W, "Passive sentences:   %s | Conditional modals: %s\n",
		r.color(Red, fmt.Sprintf("%d", rep.TotalPassive())),
		r.color(Yellow256, fmt.Sprintf("%d", rep.TotalModal())))
	fmt.Fprintln(r.W, rule)

	r.table(rep)
	r.fileErrors(rep)
	r.findings(rep)
	r.suggestions(rep)

	fmt.Fprintln(r.W, rule)
	return nil
}

func (r *TextRenderer) table(rep corpus.Report) {
	nameWidth := len("document")
	for _, d := range rep.Docs {
		if len(d.Title) > nameWidth {
			nameWidth = len(d.Title)
		}
	}

	fmt.Fprintf(r.W, "\n%-*s %10s %9s %7s %12s\n", nameWidth, "document", "sentences", "passive", "modal", "suggestions")
	for _, d := range rep.Docs {
		fmt.Fprintf(r.W, "%-*s %10d %9d %7d %12d\n",
			nameWidth, d.Title, d.TotalSentences, d.PassiveCount, d.ModalCount, len(d.Suggestions))
	}
}

func (r *TextRenderer) fileErrors(rep corpus.Report) {
	if len(rep.Errors) == 0 {
		return
	}

	fmt.Fprintln(r.W)
	for _, fe := range rep.Errors {
		fmt.Fprintf(r.W, "%s %s: %s\n", r.color(Red, "skipped"), fe.Name, fe.Err)
	}
}

func (r *TextRenderer) findings(rep corpus.Report) {
	fmt.Fprintf(r.W, "\nPassive voice sentences (first %d):\n", maxFindings)
	shown := 0
	for _, d := range rep.Docs {
		for _, f := range d.Passives {
			if shown == maxFindings {
				break
			}
			fmt.Fprintf(r.W, "[%s-S%d] %s\n", r.title(d.Title), f.Position, f.Text)
			shown++
		}
	}

	fmt.Fprintf(r.W, "\nConditional modal sentences (first %d):\n", maxFindings)
	shown = 0
	for _, d := range rep.Docs {
		for _, f := range d.Conditionals {
			if shown == maxFindings {
				break
			}
			fmt.Fprintf(r.W, "[%s-S%d] %s (%s)\n",
				r.title(d.Title), f.Position, f.Text, strings.Join(f.Modals, ", "))
			shown++
		}
	}
}

func (r *TextRenderer) suggestions(rep corpus.Report) {
	count := 0
	for _, d := range rep.Docs {
		count += len(d.Suggestions)
	}
	if count == 0 {
		return
	}

	fmt.Fprintln(r.W, "\nRewrite suggestions:")
	for _, d := range rep.Docs {
		for _, s := range d.Suggestions {
			fmt.Fprintf(r.W, "[%s-S%d]\n", r.title(d.Title), s.Position)
			fmt.Fprintf(r.W, "  - %s\n", s.Original)
			fmt.Fprintf(r.W, "  + %s\n", r.color(Green256, s.Rewritten))
		}
	}
}

func (r *TextRenderer) color(code, s string) string {
	if !r.HasColor {
		return s
	}
	return code + s + Off
}

func (r *TextRenderer) title(s string) string {
	return r.color(Grey256, s)
}

// Sentence renders the token sequence of a sentence, highlighting the
// matched tokens. Token spacing is reconstructed from the Idx offsets the
// parser recorded, so multi token words are not rendered twice.
func (r *TextRenderer) Sentence(sentence sent.Sentence, matches []sent.Token) string {
	var str strings.Builder
	var lastIdx, lastLen int

	for i, token := range sentence.Tokens {
		l := len([]rune(token.Text))
		if i == 0 {
			str.WriteString(r.colorToken(token, matches))
			lastIdx = token.Idx
			lastLen = l
			continue
		}

		diff := token.Idx - lastIdx
		if diff > 0 {
			if gap := diff - lastLen; gap > 0 {
				str.WriteString(strings.Repeat(" ", gap))
			}
			str.WriteString(r.colorToken(token, matches))
		}

		lastIdx = token.Idx
		lastLen = l
	}

	return strings.ReplaceAll(str.String(), "\n", " ")
}

func (r *TextRenderer) colorToken(token sent.Token, matches []sent.Token) string {
	if !r.HasColor {
		return token.Text
	}

	for _, mt := range matches {
		if mt.Index == token.Index {
			return Green256 + token.Text + Off
		}
	}

	return token.Text
}
