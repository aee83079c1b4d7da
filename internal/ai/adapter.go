package ai

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nyashahama/tagline-studio-backend/internal/metrics"
	"github.com/nyashahama/tagline-studio-backend/internal/tagline"
)

// Adapter is the external generation backend. It satisfies
// tagline.Generator.
type Adapter struct {
	completer Completer
	chain     Chain
	logger    *slog.Logger
}

// NewAdapter wires a Completer to a model chain. completer may be nil when
// no credential is configured; Generate then fails fast with
// ErrNotConfigured instead of attempting a call.
func NewAdapter(completer Completer, chain Chain, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{
		completer: completer,
		chain:     chain,
		logger:    logger,
	}
}

// Generate prompts the provider, falling back through the model chain, and
// returns the sanitized result. It blocks for the duration of the outbound
// call(s); callers wanting a deadline must set one on ctx.
func (a *Adapter) Generate(ctx context.Context, req tagline.Request) (tagline.Result, error) {
	if a.completer == nil {
		return tagline.Result{}, ErrNotConfigured
	}

	prompt := buildPrompt(req)
	raw, err := a.chain.run(ctx, a.logger, func(ctx context.Context, model string) (string, error) {
		return a.completer.Complete(ctx, Completion{
			Model:  model,
			System: systemPrompt,
			Prompt: prompt,
			JSON:   true,
		})
	})
	if err != nil {
		return tagline.Result{}, err
	}

	result, err := ParseOutput(raw)
	if err != nil {
		a.logger.Warn("ai: unusable model output", "error", err)
		return tagline.Result{}, err
	}
	return result, nil
}

// ─── USER-FACING MESSAGES ─────────────────────────────────────────────────────

const (
	MsgNotConfigured      = "Server is missing its AI provider API key. Set OPENAI_API_KEY and restart."
	MsgInvalidCredentials = "The AI provider rejected the API key. Check that OPENAI_API_KEY is valid."
	MsgQuotaExceeded      = "The AI provider quota has been exhausted. Check your plan and billing details."
	MsgRateLimited        = "The AI provider is rate limiting requests. Please wait a moment and try again."
	MsgGenerationFailed   = "Failed to generate taglines. Please try again."
)

// UserMessage maps an adapter error to the message shown to the caller.
// Provider categories are checked in the order credentials, quota, rate
// limit; everything else gets the generic message. Raw provider detail is
// never included.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrNotConfigured):
		return MsgNotConfigured
	case errors.Is(err, ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, ErrQuotaExceeded):
		return MsgQuotaExceeded
	case errors.Is(err, ErrRateLimited):
		return MsgRateLimited
	default:
		return MsgGenerationFailed
	}
}

// Describe returns the metrics outcome label for err.
func Describe(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, ErrNotConfigured):
		return metrics.OutcomeNotConfigured
	case errors.Is(err, ErrInvalidCredentials):
		return metrics.OutcomeAuth
	case errors.Is(err, ErrQuotaExceeded):
		return metrics.OutcomeQuota
	case errors.Is(err, ErrRateLimited):
		return metrics.OutcomeRateLimited
	default:
		return metrics.OutcomeGenerationError
	}
}

var _ tagline.Generator = (*Adapter)(nil)
