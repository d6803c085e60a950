package corpus

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/revelaction/srslint/analyze"
	"github.com/revelaction/srslint/detect"
	"github.com/revelaction/srslint/logger"
)

// Shutdown must not abandon analyses already picked up from the event
// loop: Start only returns after every spawned analysis delivered its
// report to the handler.
func TestWatcherDrainsOnCancel(t *testing.T) {
	orig := settleDelay
	settleDelay = 50 * time.Millisecond
	defer func() { settleDelay = orig }()

	dir := t.TempDir()

	var mu sync.Mutex
	var titles []string
	handler := func(ctx context.Context, doc analyze.DocReport) {
		mu.Lock()
		defer mu.Unlock()
		titles = append(titles, doc.Title)
	}

	modal := detect.NewModalDetector([]string{"could", "might", "should", "would"})
	a := analyze.New(lineSegmenter{}, nil, modal, logger.New(io.Discard, "error"))

	w, err := NewWatcher(dir, a, handler, logger.New(io.Discard, "error"))
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- w.Start(ctx)
	}()

	writeFile(t, dir, "new.txt", "the report PASSIVE by the system\n")
	writeFile(t, dir, "notes.md", "ignored format\n")

	// let the create event reach the loop, then cancel before the
	// settle delay has elapsed
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Start() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Start() did not return after cancel")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(titles) != 1 || titles[0] != "new.txt" {
		t.Errorf("handled docs = %v, want [new.txt]", titles)
	}
}
