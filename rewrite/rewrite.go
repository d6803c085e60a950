// Package rewrite defines the contract to the generative service that turns
// a passive sentence into active voice.
package rewrite

import (
	"context"
	"errors"
)

// Rewriter requests an active voice rewrite of one sentence. The returned
// text is the service's response taken verbatim; no attempt is made to
// verify the rewrite is actually active voice.
//
// Failures are classified into the sentinel errors below via errors.Is.
// None of them is fatal to an analysis run: the caller records the sentence
// as having no suggestion and moves on.
type Rewriter interface {
	Rewrite(ctx context.Context, sentence string) (string, error)
}

var (
	// ErrTransport covers network failures and timeouts.
	ErrTransport = errors.New("rewrite: transport failure")

	// ErrAuth covers rejected or missing credentials.
	ErrAuth = errors.New("rewrite: authentication failure")

	// ErrQuota covers rate limit and quota rejections.
	ErrQuota = errors.New("rewrite: quota exhausted")

	// ErrMalformed covers empty or undecodable responses.
	ErrMalformed = errors.New("rewrite: malformed response")
)

// Reason returns the short failure reason for a classified rewrite error,
// for report entries and logs.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrAuth):
		return "auth"
	case errors.Is(err, ErrQuota):
		return "quota"
	case errors.Is(err, ErrMalformed):
		return "malformed response"
	case errors.Is(err, ErrTransport):
		return "transport"
	default:
		return "unknown"
	}
}
