// Package gemini implements the rewrite.Rewriter interface on top of the
// Gemini generative API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/revelaction/srslint/rewrite"
)

const promptTemplate = `Rewrite the following sentence into active voice. Keep the meaning unchanged. Return only the rewritten sentence, without quotes or explanations.

Sentence: %s`

// Client rotates through the supplied Gemini API keys when one of them hits
// its quota. Each call is bounded by the configured timeout. A single Client
// is shared across corpus workers, so the rotation index is guarded.
type Client struct {
	apiKeys []string
	model   string
	timeout time.Duration

	mu         sync.Mutex
	currentKey int
}

var _ rewrite.Rewriter = (*Client)(nil)

// New creates a Client. At least one API key is required.
func New(apiKeys []string, model string, timeout time.Duration) (*Client, error) {
	if len(apiKeys) == 0 {
		return nil, errors.New("gemini: at least one API key is required")
	}

	return &Client{
		apiKeys: apiKeys,
		model:   model,
		timeout: timeout,
	}, nil
}

// Rewrite sends the sentence to Gemini and returns the completion text.
// On a quota rejection the next key is tried; every key exhausted surfaces
// as rewrite.ErrQuota.
func (c *Client) Rewrite(ctx context.Context, sentence string) (string, error) {
	if strings.TrimSpace(sentence) == "" {
		return "", fmt.Errorf("gemini: empty sentence")
	}

	prompt := fmt.Sprintf(promptTemplate, sentence)

	attempts := len(c.apiKeys)
	var lastErr error

	for range attempts {
		text, err := c.generate(ctx, c.key(), prompt)
		if err == nil {
			return text, nil
		}

		lastErr = err
		if !errors.Is(err, rewrite.ErrQuota) {
			return "", err
		}

		c.rotateKey()
	}

	return "", lastErr
}

func (c *Client) generate(ctx context.Context, key, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := genai.NewClient(callCtx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("%w: create client: %v", rewrite.ErrTransport, err)
	}

	result, err := client.Models.GenerateContent(callCtx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classify(err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: no candidates", rewrite.ErrMalformed)
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		text += part.Text
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: empty completion", rewrite.ErrMalformed)
	}

	return text, nil
}

// classify maps an API error onto the closed rewrite error taxonomy.
// The genai SDK does not expose typed errors for these cases, so matching
// is on status codes and markers present in the error text.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", rewrite.ErrTransport, err)
	}

	msg := err.Error()

	switch {
	case strings.Contains(msg, "429"),
		strings.Contains(msg, "quota"),
		strings.Contains(msg, "RESOURCE_EXHAUSTED"):
		return fmt.Errorf("%w: %v", rewrite.ErrQuota, err)

	case strings.Contains(msg, "401"),
		strings.Contains(msg, "403"),
		strings.Contains(msg, "API key"),
		strings.Contains(msg, "PERMISSION_DENIED"),
		strings.Contains(msg, "UNAUTHENTICATED"):
		return fmt.Errorf("%w: %v", rewrite.ErrAuth, err)
	}

	return fmt.Errorf("%w: %v", rewrite.ErrTransport, err)
}

func (c *Client) key() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apiKeys[c.currentKey]
}

func (c *Client) rotateKey() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
}
