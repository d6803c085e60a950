// Package corpus iterates over all SRS documents of an input folder and
// assembles the corpus wide report.
package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/revelaction/srslint/analyze"
	"github.com/revelaction/srslint/logger"
)

// Ext is the recognized document file extension.
const Ext = ".txt"

// FileError records a document that could not be processed. The run
// continues with the remaining files.
type FileError struct {
	Name string `json:"name"`
	Err  string `json:"error"`
}

// Report is the corpus wide result: one DocReport per successfully
// processed file, in lexicographic filename order.
type Report struct {
	Docs   []analyze.DocReport `json:"docs"`
	Errors []FileError         `json:"errors,omitempty"`
}

// TotalSentences returns the number of sentences scanned across all docs.
func (r Report) TotalSentences() int {
	n := 0
	for _, d := range r.Docs {
		n += d.TotalSentences
	}
	return n
}

// TotalPassive returns the number of passive sentences across all docs.
func (r Report) TotalPassive() int {
	n := 0
	for _, d := range r.Docs {
		n += d.PassiveCount
	}
	return n
}

// TotalModal returns the number of conditional modal sentences across all
// docs.
func (r Report) TotalModal() int {
	n := 0
	for _, d := range r.Docs {
		n += d.ModalCount
	}
	return n
}

// Processor runs the analyzer over every matching file of a folder.
type Processor struct {
	Analyzer *analyze.Analyzer

	// Workers is the number of files analyzed concurrently. Values below
	// two keep the reference sequential behavior.
	Workers int

	Log logger.Logger
}

// NewProcessor creates a sequential Processor.
func NewProcessor(a *analyze.Analyzer, log logger.Logger) *Processor {
	return &Processor{
		Analyzer: a,
		Workers:  1,
		Log:      log,
	}
}

// Process analyzes every *.txt file of dir in lexicographic filename order.
// cb, when not nil, is called once per file before it is analyzed.
//
// A file that cannot be read or segmented is recorded in Report.Errors and
// skipped. A folder with zero matching files yields an empty Report. Only
// an unreadable folder is an error: no meaningful partial result exists
// then.
func (p *Processor) Process(ctx context.Context, dir string, cb func(current, total int, name string)) (Report, error) {
	names, err := listDocs(dir)
	if err != nil {
		return Report{}, err
	}

	if p.Workers > 1 {
		return p.processParallel(ctx, dir, names, cb)
	}

	report := Report{}
	for i, name := range names {
		if cb != nil {
			cb(i+1, len(names), name)
		}

		doc, ferr := p.processFile(ctx, dir, name)
		if ferr != nil {
			report.Errors = append(report.Errors, *ferr)
			continue
		}

		report.Docs = append(report.Docs, doc)
	}

	return report, nil
}

// processParallel fans the files out over a bounded number of goroutines.
// Results are collected per input index, so the filename order of the
// report is identical to the sequential run.
func (p *Processor) processParallel(ctx context.Context, dir string, names []string, cb func(current, total int, name string)) (Report, error) {
	type slot struct {
		doc  analyze.DocReport
		ferr *FileError
	}

	slots := make([]slot, len(names))
	sem := make(chan struct{}, p.Workers)

	var wg sync.WaitGroup
	var mu sync.Mutex
	done := 0

	for i, name := range names {
		sem <- struct{}{}
		wg.Add(1)

		go func(i int, name string) {
			defer wg.Done()
			defer func() { <-sem }()

			if cb != nil {
				mu.Lock()
				done++
				cb(done, len(names), name)
				mu.Unlock()
			}

			doc, ferr := p.processFile(ctx, dir, name)
			slots[i] = slot{doc: doc, ferr: ferr}
		}(i, name)
	}

	wg.Wait()

	report := Report{}
	for _, s := range slots {
		if s.ferr != nil {
			report.Errors = append(report.Errors, *s.ferr)
			continue
		}

		report.Docs = append(report.Docs, s.doc)
	}

	return report, nil
}

func (p *Processor) processFile(ctx context.Context, dir, name string) (analyze.DocReport, *FileError) {
	text, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		p.Log.Warn(ctx, "skipping %s: %v", name, err)
		return analyze.DocReport{}, &FileError{Name: name, Err: err.Error()}
	}

	doc, err := p.Analyzer.Analyze(ctx, name, string(text))
	if err != nil {
		p.Log.Warn(ctx, "skipping %s: %v", name, err)
		return analyze.DocReport{}, &FileError{Name: name, Err: err.Error()}
	}

	return doc, nil
}

// listDocs returns the matching filenames of dir, sorted lexicographically
// to make the report order deterministic.
func listDocs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("input folder not readable: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.ToLower(filepath.Ext(e.Name())) == Ext {
			names = append(names, e.Name())
		}
	}

	sort.Strings(names)
	return names, nil
}
