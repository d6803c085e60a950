package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/revelaction/srslint/analyze"
	"github.com/revelaction/srslint/config"
	"github.com/revelaction/srslint/corpus"
	"github.com/revelaction/srslint/logger"
	"github.com/revelaction/srslint/render"
)

func watchCommand(opts WatchOptions, ui UI) error {
	ctx := context.Background()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(ui.Err, cfg.Logging.Level)

	analyzer, err := newAnalyzer(cfg, true, log)
	if err != nil {
		return err
	}

	var r render.Renderer
	if opts.JSON {
		r = render.NewJSONRenderer(ui.Out)
	} else {
		tr := render.NewTextRenderer(ui.Out)
		tr.HasColor = !opts.NoColor
		r = tr
	}

	handler := func(ctx context.Context, doc analyze.DocReport) {
		if err := r.Render(corpus.Report{Docs: []analyze.DocReport{doc}}); err != nil {
			log.Error(ctx, "render failed: %v", err)
		}
	}

	w, err := corpus.NewWatcher(cfg.Input.Dir, analyzer, handler, log)
	if err != nil {
		return err
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- w.Start(ctx)
	}()

	select {
	case <-sigChan:
		log.Info(ctx, "shutdown signal received")
		cancel()
		// Start drains in-flight analyses before it returns.
		err = <-errChan
	case err = <-errChan:
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
