package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/srslint/config"
	"github.com/revelaction/srslint/detect"
	"github.com/revelaction/srslint/logger"
	"github.com/revelaction/srslint/render"
	sent "github.com/revelaction/srslint/sentence"
)

// queryCommand presents a REPL: every line typed is segmented and run
// through both detectors, and the annotated result is printed.
func queryCommand(opts QueryOptions, ui UI) error {
	ctx := context.Background()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	log := logger.New(ui.Err, cfg.Logging.Level)

	analyzer, err := newAnalyzer(cfg, false, log)
	if err != nil {
		return err
	}

	r := render.NewTextRenderer(ui.Out)
	r.HasColor = !opts.NoColor

	fmt.Fprintln(ui.Out, "🔑 Ctrl+X: Toggle color, type quit to exit")

	history := []string{}

	for {
		in := prompt.Input("      ✍  ", completer,
			prompt.OptionTitle("srslint query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					r.HasColor = !r.HasColor
					fmt.Fprintf(ui.Out, "Color set to %t\n", r.HasColor)
				}}),
		)

		if in == "quit" {
			return nil
		}

		if strings.TrimSpace(in) == "" {
			continue
		}

		history = append(history, in)

		sentences, err := analyzer.Segmenter.Segment(ctx, in)
		if err != nil {
			fmt.Fprintf(ui.Out, "segmentation failed: %v\n", err)
			continue
		}

		for _, s := range sentences {
			printDetection(r, analyzer.Modal, s, ui)
		}
	}
}

func printDetection(r *render.TextRenderer, modal *detect.ModalDetector, s sent.Sentence, ui UI) {
	var flags []string
	var matched []sent.Token

	if detect.Passive(s) {
		flags = append(flags, "passive")
		matched = append(matched, detect.PassiveTokens(s)...)
	}
	if modal.Detect(s) {
		flags = append(flags, "modal: "+strings.Join(modal.Modals(s), ", "))
		matched = append(matched, modal.ModalTokens(s)...)
	}

	verdict := "clean"
	if len(flags) > 0 {
		verdict = strings.Join(flags, " | ")
	}

	fmt.Fprintf(ui.Out, "[%-40s] ✍  %s\n", verdict, r.Sentence(s, matched))
}

func completer(d prompt.Document) []prompt.Suggest {
	s := []prompt.Suggest{
		{Text: "quit", Description: "Exit query mode"},
	}
	return prompt.FilterHasPrefix(s, d.GetWordBeforeCursor(), true)
}
