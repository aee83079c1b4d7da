package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// OpenAICompleter is the Completer backed by the OpenAI chat completions API,
// or any OpenAI-compatible endpoint when a base URL is given.
type OpenAICompleter struct {
	client      openai.Client
	temperature float64
}

// OpenAIConfig configures NewOpenAICompleter.
type OpenAIConfig struct {
	APIKey string

	// BaseURL overrides the API endpoint (e.g. an OpenAI-compatible proxy).
	// Empty means the SDK default.
	BaseURL string

	// Temperature is sent when > 0; otherwise the provider default applies.
	Temperature float64
}

// NewOpenAICompleter returns a Completer that talks to OpenAI.
// It returns ErrNotConfigured when no API key is provided.
//
// SDK-level retries are disabled: the only retry this service performs is
// the model fallback in Chain.
func NewOpenAICompleter(cfg OpenAIConfig) (*OpenAICompleter, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAICompleter{
		client:      openai.NewClient(opts...),
		temperature: cfg.Temperature,
	}, nil
}

// Complete sends one chat completion and returns the first choice's content.
func (o *OpenAICompleter) Complete(ctx context.Context, c Completion) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.System),
			openai.UserMessage(c.Prompt),
		},
	}
	if c.JSON {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}
	if o.temperature > 0 {
		params.Temperature = openai.Float(o.temperature)
	}

	completion, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", classifyOpenAIError(err)
	}

	if len(completion.Choices) == 0 {
		return "", nil
	}
	return completion.Choices[0].Message.Content, nil
}

// classifyOpenAIError wraps err with the matching provider sentinel.
func classifyOpenAIError(err error) error {
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %w", ErrProvider, err)
	}
	kind := classifyProviderError(apiErr.StatusCode, apiErr.Code, apiErr.Type, apiErr.Message)
	return fmt.Errorf("%w: %w", kind, err)
}

// classifyProviderError maps an OpenAI-style error envelope to a sentinel.
// Quota exhaustion is reported with status 429 too, so it is checked before
// the generic rate limit.
func classifyProviderError(status int, code, typ, message string) error {
	code = strings.ToLower(code)
	typ = strings.ToLower(typ)
	message = strings.ToLower(message)

	switch {
	case status == http.StatusUnauthorized || code == "invalid_api_key" || typ == "authentication_error":
		return ErrInvalidCredentials
	case code == "insufficient_quota" || typ == "insufficient_quota" || strings.Contains(message, "exceeded your current quota"):
		return ErrQuotaExceeded
	case status == http.StatusTooManyRequests || code == "rate_limit_exceeded" || typ == "rate_limit_error":
		return ErrRateLimited
	case status == http.StatusNotFound || status == http.StatusForbidden || code == "model_not_found":
		return ErrModelUnavailable
	default:
		return ErrProvider
	}
}
