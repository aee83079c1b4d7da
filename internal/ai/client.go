// Package ai implements the external generation backend: it prompts a
// text-generation provider for taglines in JSON, falls back to a secondary
// model when the primary is unavailable, and sanitizes what comes back.
package ai

import (
	"context"
	"errors"
)

// Provider and generation failures. Completer implementations wrap provider
// errors with exactly one of the provider sentinels so callers can use
// errors.Is without knowing which SDK produced them.
var (
	// ErrNotConfigured means no provider credential is available. No call
	// is attempted.
	ErrNotConfigured = errors.New("ai: provider credential not configured")

	ErrInvalidCredentials = errors.New("ai: invalid provider credentials")
	ErrQuotaExceeded      = errors.New("ai: provider quota exhausted")
	ErrRateLimited        = errors.New("ai: provider rate limit hit")

	// ErrModelUnavailable covers both "model does not exist" and "no access
	// to this model". It is the default trigger for the model fallback.
	ErrModelUnavailable = errors.New("ai: model unavailable")

	// ErrProvider is any other provider or transport failure.
	ErrProvider = errors.New("ai: provider request failed")

	// ErrGenerationFailed means the provider answered but the output was
	// empty, unparsable, or missing fields after sanitization.
	ErrGenerationFailed = errors.New("ai: generation produced no usable output")
)

// Completion is a single structured-completion request.
type Completion struct {
	Model  string
	System string
	Prompt string

	// JSON asks the provider to constrain output to a JSON object.
	JSON bool
}

// Completer is the provider collaborator: given a model, a system
// instruction and a user prompt it returns the generated text.
//
// Implementations must be safe to call concurrently and must wrap provider
// failures with one of the sentinel errors above.
type Completer interface {
	Complete(ctx context.Context, c Completion) (string, error)
}
