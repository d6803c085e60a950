package corpus

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/revelaction/srslint/analyze"
	"github.com/revelaction/srslint/logger"
)

// settleDelay is how long a freshly created file gets to be fully
// written before it is read.
var settleDelay = 500 * time.Millisecond

// DocHandler receives the report of one freshly analyzed document.
type DocHandler func(ctx context.Context, doc analyze.DocReport)

// Watcher monitors the input folder and analyzes *.txt files as they
// appear.
type Watcher struct {
	dir      string
	analyzer *analyze.Analyzer
	handler  DocHandler
	log      logger.Logger
	watcher  *fsnotify.Watcher
	wg       sync.WaitGroup
}

// NewWatcher creates a Watcher for dir, delivering each result to handler.
func NewWatcher(dir string, a *analyze.Analyzer, handler DocHandler, log logger.Logger) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &Watcher{
		dir:      dir,
		analyzer: a,
		handler:  handler,
		log:      log,
		watcher:  watcher,
	}, nil
}

// Start blocks, analyzing new files until the context is canceled.
func (w *Watcher) Start(ctx context.Context) error {
	w.log.Info(ctx, "watching %s for new %s files", w.dir, Ext)

	for {
		select {
		case <-ctx.Done():
			w.wg.Wait()
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}

			if strings.ToLower(filepath.Ext(event.Name)) != Ext {
				w.log.Debug(ctx, "ignoring %s", event.Name)
				continue
			}

			w.log.Info(ctx, "new document: %s", event.Name)

			w.wg.Add(1)
			go func(path string) {
				defer w.wg.Done()
				// small delay so the file is fully written, off the
				// event loop to keep later events flowing
				time.Sleep(settleDelay)
				w.analyzeFile(ctx, path)
			}(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.log.Error(ctx, "watcher error: %v", err)
		}
	}
}

// Stop closes the underlying filesystem watcher.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func (w *Watcher) analyzeFile(ctx context.Context, path string) {
	name := filepath.Base(path)

	p := Processor{Analyzer: w.analyzer, Log: w.log}
	doc, ferr := p.processFile(ctx, filepath.Dir(path), name)
	if ferr != nil {
		w.log.Error(ctx, "failed to analyze %s: %s", name, ferr.Err)
		return
	}

	w.handler(ctx, doc)
}
