package main

import (
	"context"

	"github.com/gosuri/uiprogress"

	"github.com/revelaction/srslint/config"
	"github.com/revelaction/srslint/corpus"
	"github.com/revelaction/srslint/logger"
	"github.com/revelaction/srslint/render"
)

func checkCommand(opts CheckOptions, ui UI) error {
	ctx := context.Background()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(ui.Err, cfg.Logging.Level)

	analyzer, err := newAnalyzer(cfg, !opts.NoRewrite, log)
	if err != nil {
		return err
	}

	processor := corpus.NewProcessor(analyzer, log)
	processor.Workers = cfg.Performance.MaxConcurrent

	var bar *uiprogress.Bar
	cb := func(current, total int, name string) {
		if bar == nil {
			uiprogress.Start()
			bar = uiprogress.AddBar(total)
			bar.AppendCompleted()
			bar.PrependElapsed()
		}
		bar.Incr()
	}
	if opts.NoProgress || opts.JSON {
		cb = nil
	}

	report, err := processor.Process(ctx, cfg.Input.Dir, cb)
	if bar != nil {
		uiprogress.Stop()
	}
	if err != nil {
		return err
	}

	if opts.JSON {
		return render.NewJSONRenderer(ui.Out).Render(report)
	}

	r := render.NewTextRenderer(ui.Out)
	r.HasColor = !opts.NoColor
	return r.Render(report)
}
