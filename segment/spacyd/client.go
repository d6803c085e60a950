// Package spacyd implements the segment.Segmenter interface against a
// spacy-style HTTP annotation daemon.
//
// The daemon takes the raw text and returns one JSON object per sentence
// with the same token fields that spacy and stanza dumps use:
//
//	POST <url>  {"text": "..."}
//	200 OK      {"sentences": [{"id": 0, "text": "...", "tokens": [...]}]}
package spacyd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/revelaction/srslint/segment"
	sent "github.com/revelaction/srslint/sentence"
)

type Client struct {
	url        string
	httpClient *http.Client
}

var _ segment.Segmenter = (*Client)(nil)

// NewClient creates a client for the annotation daemon at url.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type parseRequest struct {
	Text string `json:"text"`
}

type parseResponse struct {
	Sentences []sent.Sentence `json:"sentences"`
}

// Segment sends the text to the daemon and decodes the annotated sentences.
// Sentence ids and per-token sentence ids are normalized to the position in
// the returned slice, so downstream code can rely on them.
func (c *Client) Segment(ctx context.Context, text string) ([]sent.Sentence, error) {
	body, err := json.Marshal(parseRequest{Text: text})
	if err != nil {
		return nil, &segment.Error{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, &segment.Error{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &segment.Error{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &segment.Error{Err: fmt.Errorf("daemon returned %d: %s", resp.StatusCode, string(b))}
	}

	var parsed parseResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &segment.Error{Err: fmt.Errorf("JSON decoding error: %w", err)}
	}

	for i := range parsed.Sentences {
		parsed.Sentences[i].Id = i
		for j := range parsed.Sentences[i].Tokens {
			parsed.Sentences[i].Tokens[j].SentenceId = i
		}
	}

	return parsed.Sentences, nil
}
