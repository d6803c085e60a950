package main

import (
	"time"

	"github.com/revelaction/srslint/analyze"
	"github.com/revelaction/srslint/config"
	"github.com/revelaction/srslint/detect"
	"github.com/revelaction/srslint/logger"
	"github.com/revelaction/srslint/rewrite"
	"github.com/revelaction/srslint/rewrite/gemini"
	"github.com/revelaction/srslint/segment/spacyd"
)

// newAnalyzer assembles the document analyzer from the configuration.
// withRewrite additionally gates the rewriter, so commands can honor a
// -no-rewrite flag without touching the config.
func newAnalyzer(cfg *config.Config, withRewrite bool, log logger.Logger) (*analyze.Analyzer, error) {
	seg := spacyd.NewClient(cfg.Segmenter.URL, time.Duration(cfg.Segmenter.TimeoutSeconds)*time.Second)

	var rew rewrite.Rewriter
	if cfg.Rewrite.Enabled && withRewrite {
		g, err := gemini.New(cfg.Rewrite.APIKeys, cfg.Rewrite.Model, time.Duration(cfg.Rewrite.TimeoutSeconds)*time.Second)
		if err != nil {
			return nil, err
		}
		rew = g
	}

	a := analyze.New(seg, rew, detect.NewModalDetector(cfg.Modals), log)
	a.MinWords = *cfg.Input.MinSentenceWords

	return a, nil
}
