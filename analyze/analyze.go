// Package analyze runs both quality detectors over every sentence of one
// document and accumulates the per document report.
package analyze

import (
	"context"

	"github.com/revelaction/srslint/detect"
	"github.com/revelaction/srslint/logger"
	"github.com/revelaction/srslint/rewrite"
	"github.com/revelaction/srslint/segment"
)

// DefaultMinWords is the minimum number of words a sentence needs to be
// counted. Shorter fragments are usually headings or list markers, not
// requirement sentences.
const DefaultMinWords = 3

// Analyzer analyzes one document at a time. It is safe for concurrent use
// as long as the injected collaborators are.
type Analyzer struct {
	Segmenter segment.Segmenter

	// Rewriter is optional. When nil, passive sentences produce no
	// rewrite suggestions.
	Rewriter rewrite.Rewriter

	Modal *detect.ModalDetector

	// MinWords filters sentences shorter than this many words before
	// counting. Zero disables the filter.
	MinWords int

	Log logger.Logger
}

// New creates an Analyzer with the default sentence length filter.
func New(seg segment.Segmenter, rew rewrite.Rewriter, modal *detect.ModalDetector, log logger.Logger) *Analyzer {
	return &Analyzer{
		Segmenter: seg,
		Rewriter:  rew,
		Modal:     modal,
		MinWords:  DefaultMinWords,
		Log:       log,
	}
}

// Analyze segments the text and applies both detectors to every sentence in
// document order. An empty text yields an empty report. The only error
// returned is a whole document segmentation failure; every per sentence
// problem is contained and converted into report data.
func (a *Analyzer) Analyze(ctx context.Context, title, text string) (DocReport, error) {
	report := DocReport{Title: title}

	if text == "" {
		return report, nil
	}

	sentences, err := a.Segmenter.Segment(ctx, text)
	if err != nil {
		return report, err
	}

	for _, s := range sentences {
		if a.MinWords > 0 && s.Words() < a.MinWords {
			continue
		}

		report.TotalSentences++

		if !detect.Annotated(s) {
			a.Log.Warn(ctx, "detection anomaly in %s sentence %d: no dependency annotations", title, s.Id)
			report.Anomalies = append(report.Anomalies, Anomaly{
				Position: report.TotalSentences,
				Reason:   "no dependency annotations",
			})
			continue
		}

		if detect.Passive(s) {
			report.PassiveCount++
			report.Passives = append(report.Passives, Finding{
				Position: report.TotalSentences,
				Text:     s.Text,
			})

			a.suggest(ctx, &report, s.Text)
		}

		if a.Modal.Detect(s) {
			report.ModalCount++
			report.Conditionals = append(report.Conditionals, Finding{
				Position: report.TotalSentences,
				Text:     s.Text,
				Modals:   a.Modal.Modals(s),
			})
		}
	}

	return report, nil
}

// suggest asks the rewriter for an active voice form of the sentence. A
// failed call marks the sentence as having no suggestion; counts are never
// affected by rewrite outcomes.
func (a *Analyzer) suggest(ctx context.Context, report *DocReport, text string) {
	if a.Rewriter == nil {
		return
	}

	rewritten, err := a.Rewriter.Rewrite(ctx, text)
	if err != nil {
		a.Log.Warn(ctx, "no suggestion for %s sentence %d (%s): %v",
			report.Title, report.TotalSentences, rewrite.Reason(err), err)
		return
	}

	report.Suggestions = append(report.Suggestions, Suggestion{
		Position:  report.TotalSentences,
		Original:  text,
		Rewritten: rewritten,
	})
}
