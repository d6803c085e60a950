// Package segment defines the boundary to the linguistic backend that splits
// raw text into sentences annotated with POS tags and dependency labels.
//
// The detection logic only ever sees the Segmenter interface, so the backend
// (a spacy daemon, a stanza daemon, a fake in tests) can be swapped without
// touching it.
package segment

import (
	"context"
	"fmt"

	sent "github.com/revelaction/srslint/sentence"
)

// Segmenter splits raw document text into ordered, token annotated
// sentences.
type Segmenter interface {
	Segment(ctx context.Context, text string) ([]sent.Sentence, error)
}

// Error wraps any failure of the segmentation backend. The corpus processor
// recovers from it by skipping the offending document.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("segmentation failed: %v", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
