package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nyashahama/tagline-studio-backend/internal/metrics"
)

// Attempt is one step of a model fallback chain.
type Attempt struct {
	Model string

	// FallbackOn reports whether an error from this model should move the
	// chain on to the next attempt. A nil FallbackOn never falls back.
	FallbackOn func(error) bool
}

// Chain is an ordered list of models tried in sequence until one succeeds,
// an error does not qualify for fallback, or the list is exhausted.
type Chain []Attempt

// DefaultChain tries primary and falls back once to fallback when the
// primary model is unavailable or access to it is forbidden. An empty
// fallback (or one equal to primary) yields a single-step chain.
func DefaultChain(primary, fallback string) Chain {
	chain := Chain{{Model: primary, FallbackOn: IsModelUnavailable}}
	if fallback != "" && fallback != primary {
		chain = append(chain, Attempt{Model: fallback})
	}
	return chain
}

// IsModelUnavailable is the fallback trigger used by DefaultChain.
func IsModelUnavailable(err error) bool {
	return errors.Is(err, ErrModelUnavailable)
}

// run calls fn for each attempt in order. It returns the first success, or
// the error that stopped the chain.
func (c Chain) run(ctx context.Context, logger *slog.Logger, fn func(ctx context.Context, model string) (string, error)) (string, error) {
	if len(c) == 0 {
		return "", fmt.Errorf("%w: no models configured", ErrNotConfigured)
	}

	var lastErr error
	for i, attempt := range c {
		out, err := fn(ctx, attempt.Model)
		if err == nil {
			return out, nil
		}
		lastErr = err

		last := i == len(c)-1
		if last || attempt.FallbackOn == nil || !attempt.FallbackOn(err) {
			return "", err
		}

		next := c[i+1].Model
		logger.Warn("ai: model failed, falling back",
			"model", attempt.Model,
			"fallback", next,
			"error", err,
		)
		metrics.ModelFallbackTotal.WithLabelValues(attempt.Model, next).Inc()
	}
	return "", lastErr
}
