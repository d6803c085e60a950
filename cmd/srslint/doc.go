package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/revelaction/srslint/config"
	"github.com/revelaction/srslint/detect"
	"github.com/revelaction/srslint/logger"
	"github.com/revelaction/srslint/render"
	sent "github.com/revelaction/srslint/sentence"
)

// docCommand analyzes one file and prints every counted sentence with its
// flags and the full token annotation table.
func docCommand(opts DocOptions, path string, ui UI) error {
	ctx := context.Background()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	log := logger.New(ui.Err, cfg.Logging.Level)

	// single document, no rewrites: keep the command fast and offline
	analyzer, err := newAnalyzer(cfg, false, log)
	if err != nil {
		return err
	}

	text, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	sentences, err := analyzer.Segmenter.Segment(ctx, string(text))
	if err != nil {
		return err
	}

	r := render.NewTextRenderer(ui.Out)
	r.HasColor = !opts.NoColor

	title := filepath.Base(path)
	for _, s := range sentences {
		if analyzer.MinWords > 0 && s.Words() < analyzer.MinWords {
			continue
		}

		var flags []string
		var matched []sent.Token
		if detect.Passive(s) {
			flags = append(flags, "passive")
			matched = append(matched, detect.PassiveTokens(s)...)
		}
		if analyzer.Modal.Detect(s) {
			flags = append(flags, "modal")
			matched = append(matched, analyzer.Modal.ModalTokens(s)...)
		}

		prefix := fmt.Sprintf("✍  %s-%d ", title, s.Id)
		if len(flags) > 0 {
			prefix += fmt.Sprintf("[%s] ", strings.Join(flags, ","))
		}
		fmt.Fprintf(ui.Out, "%s%s\n", prefix, r.Sentence(s, matched))

		for _, token := range s.Tokens {
			fmt.Fprintf(ui.Out, "%20q %15q %8s %6d %6d %10s %s\n",
				token.Text, token.Lemma, token.Pos, token.Id, token.Head, token.Dep, token.Tag)
		}
		fmt.Fprintln(ui.Out)
	}

	return nil
}
