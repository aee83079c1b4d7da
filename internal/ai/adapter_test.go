package ai_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/nyashahama/tagline-studio-backend/internal/ai"
	"github.com/nyashahama/tagline-studio-backend/internal/metrics"
	"github.com/nyashahama/tagline-studio-backend/internal/tagline"
)

// ─── STUBS ────────────────────────────────────────────────────────────────────

// stubCompleter answers per model. Models missing from responses/errs
// return an empty string.
type stubCompleter struct {
	mu        sync.Mutex
	responses map[string]string
	errs      map[string]error
	calls     []ai.Completion
}

func (s *stubCompleter) Complete(_ context.Context, c ai.Completion) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, c)
	if err := s.errs[c.Model]; err != nil {
		return "", err
	}
	return s.responses[c.Model], nil
}

func (s *stubCompleter) models() []string {
	out := make([]string, 0, len(s.calls))
	for _, c := range s.calls {
		out = append(out, c.Model)
	}
	return out
}

// discardLogger returns a *slog.Logger that silently drops all log output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const goodOutput = `{"taglines":["1) \"Ignite every lap, every time!\"  ","Own race day","Fuel the grid","Speed, bottled","Born on the apex"],"metaDescription":"A racing-inspired energy drink."}`

func racingRequest(t *testing.T) tagline.Request {
	t.Helper()
	req, err := tagline.NewRequest("A racing-inspired energy drink for weekend drivers who crave speed.", "Bold", "Motorsport fans")
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	return req
}

func providerErr(kind error, detail string) error {
	return fmt.Errorf("%w: %s", kind, detail)
}

// ─── Adapter.Generate ─────────────────────────────────────────────────────────

func TestAdapter_Success(t *testing.T) {
	stub := &stubCompleter{responses: map[string]string{"primary": goodOutput}}
	adapter := ai.NewAdapter(stub, ai.DefaultChain("primary", "fallback"), discardLogger())

	res, err := adapter.Generate(context.Background(), racingRequest(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Taglines) != 5 {
		t.Fatalf("expected 5 taglines, got %d", len(res.Taglines))
	}
	if res.Taglines[0] != "Ignite every lap, every time!" {
		t.Errorf("first tagline not sanitized: %q", res.Taglines[0])
	}
	if res.MetaDescription != "A racing-inspired energy drink." {
		t.Errorf("meta = %q", res.MetaDescription)
	}

	if got := stub.models(); len(got) != 1 || got[0] != "primary" {
		t.Errorf("expected only primary to be called, got %v", got)
	}
	call := stub.calls[0]
	if !call.JSON {
		t.Error("expected JSON output to be requested")
	}
	for _, want := range []string{"weekend drivers who crave speed", "Tone: Bold", "Audience: Motorsport fans"} {
		if !strings.Contains(call.Prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, call.Prompt)
		}
	}
	for _, want := range []string{"exactly 5 taglines", "160 characters", `"metaDescription"`} {
		if !strings.Contains(call.System, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}

func TestAdapter_NilCompleter_NotConfigured(t *testing.T) {
	adapter := ai.NewAdapter(nil, ai.DefaultChain("primary", "fallback"), discardLogger())

	_, err := adapter.Generate(context.Background(), racingRequest(t))
	if !errors.Is(err, ai.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestAdapter_ModelUnavailable_FallsBackOnce(t *testing.T) {
	before := testutil.ToFloat64(metrics.ModelFallbackTotal.WithLabelValues("primary-x", "fallback-x"))

	stub := &stubCompleter{
		errs:      map[string]error{"primary-x": providerErr(ai.ErrModelUnavailable, "model_not_found")},
		responses: map[string]string{"fallback-x": goodOutput},
	}
	adapter := ai.NewAdapter(stub, ai.DefaultChain("primary-x", "fallback-x"), discardLogger())

	res, err := adapter.Generate(context.Background(), racingRequest(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Taglines) == 0 {
		t.Error("expected taglines from fallback model")
	}
	if got := stub.models(); strings.Join(got, ",") != "primary-x,fallback-x" {
		t.Errorf("call order = %v", got)
	}

	after := testutil.ToFloat64(metrics.ModelFallbackTotal.WithLabelValues("primary-x", "fallback-x"))
	if after-before != 1 {
		t.Errorf("fallback counter moved by %v, want 1", after-before)
	}
}

func TestAdapter_OtherProviderErrors_DoNotFallBack(t *testing.T) {
	for _, kind := range []error{ai.ErrRateLimited, ai.ErrQuotaExceeded, ai.ErrInvalidCredentials, ai.ErrProvider} {
		t.Run(kind.Error(), func(t *testing.T) {
			stub := &stubCompleter{
				errs:      map[string]error{"primary": providerErr(kind, "boom")},
				responses: map[string]string{"fallback": goodOutput},
			}
			adapter := ai.NewAdapter(stub, ai.DefaultChain("primary", "fallback"), discardLogger())

			_, err := adapter.Generate(context.Background(), racingRequest(t))
			if !errors.Is(err, kind) {
				t.Fatalf("expected %v, got %v", kind, err)
			}
			if len(stub.calls) != 1 {
				t.Errorf("expected 1 call, got %d", len(stub.calls))
			}
		})
	}
}

func TestAdapter_FallbackAlsoFails_ReturnsFallbackError(t *testing.T) {
	stub := &stubCompleter{
		errs: map[string]error{
			"primary":  providerErr(ai.ErrModelUnavailable, "gone"),
			"fallback": providerErr(ai.ErrRateLimited, "slow down"),
		},
	}
	adapter := ai.NewAdapter(stub, ai.DefaultChain("primary", "fallback"), discardLogger())

	_, err := adapter.Generate(context.Background(), racingRequest(t))
	if !errors.Is(err, ai.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited from fallback, got %v", err)
	}
	if len(stub.calls) != 2 {
		t.Errorf("expected 2 calls, got %d", len(stub.calls))
	}
}

func TestAdapter_FallbackUnavailableToo_StopsAtEndOfChain(t *testing.T) {
	stub := &stubCompleter{
		errs: map[string]error{
			"primary":  providerErr(ai.ErrModelUnavailable, "gone"),
			"fallback": providerErr(ai.ErrModelUnavailable, "also gone"),
		},
	}
	adapter := ai.NewAdapter(stub, ai.DefaultChain("primary", "fallback"), discardLogger())

	_, err := adapter.Generate(context.Background(), racingRequest(t))
	if !errors.Is(err, ai.ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}
	if len(stub.calls) != 2 {
		t.Errorf("expected exactly 2 calls, got %d", len(stub.calls))
	}
}

func TestAdapter_UnusableOutput_GenerationFailed(t *testing.T) {
	for _, out := range []string{"", "no json here", `{"taglines":[],"metaDescription":"x"}`} {
		stub := &stubCompleter{responses: map[string]string{"primary": out}}
		adapter := ai.NewAdapter(stub, ai.DefaultChain("primary", ""), discardLogger())

		_, err := adapter.Generate(context.Background(), racingRequest(t))
		if !errors.Is(err, ai.ErrGenerationFailed) {
			t.Errorf("output=%q: expected ErrGenerationFailed, got %v", out, err)
		}
	}
}

// ─── Chain ────────────────────────────────────────────────────────────────────

func TestDefaultChain(t *testing.T) {
	if c := ai.DefaultChain("a", "b"); len(c) != 2 || c[0].Model != "a" || c[1].Model != "b" {
		t.Errorf("unexpected chain: %+v", c)
	}
	if c := ai.DefaultChain("a", ""); len(c) != 1 {
		t.Errorf("empty fallback should give one attempt, got %d", len(c))
	}
	if c := ai.DefaultChain("a", "a"); len(c) != 1 {
		t.Errorf("identical fallback should give one attempt, got %d", len(c))
	}
}

func TestChain_CustomTriggers(t *testing.T) {
	anyErr := func(error) bool { return true }
	chain := ai.Chain{
		{Model: "m1", FallbackOn: anyErr},
		{Model: "m2", FallbackOn: ai.IsModelUnavailable},
		{Model: "m3"},
	}
	stub := &stubCompleter{
		errs: map[string]error{
			"m1": providerErr(ai.ErrProvider, "timeout"),
			"m2": providerErr(ai.ErrModelUnavailable, "gone"),
		},
		responses: map[string]string{"m3": goodOutput},
	}
	adapter := ai.NewAdapter(stub, chain, discardLogger())

	if _, err := adapter.Generate(context.Background(), racingRequest(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := stub.models(); strings.Join(got, ",") != "m1,m2,m3" {
		t.Errorf("call order = %v", got)
	}
}

func TestChain_Empty_NotConfigured(t *testing.T) {
	adapter := ai.NewAdapter(&stubCompleter{}, nil, discardLogger())
	if _, err := adapter.Generate(context.Background(), racingRequest(t)); !errors.Is(err, ai.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

// ─── UserMessage ──────────────────────────────────────────────────────────────

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ai.ErrNotConfigured, ai.MsgNotConfigured},
		{providerErr(ai.ErrInvalidCredentials, "401"), ai.MsgInvalidCredentials},
		{providerErr(ai.ErrQuotaExceeded, "insufficient_quota"), ai.MsgQuotaExceeded},
		{providerErr(ai.ErrRateLimited, "429"), ai.MsgRateLimited},
		{providerErr(ai.ErrModelUnavailable, "404"), ai.MsgGenerationFailed},
		{providerErr(ai.ErrProvider, "connection reset"), ai.MsgGenerationFailed},
		{ai.ErrGenerationFailed, ai.MsgGenerationFailed},
		{errors.New("unexpected"), ai.MsgGenerationFailed},
	}
	for _, tt := range tests {
		if got := ai.UserMessage(tt.err); got != tt.want {
			t.Errorf("UserMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
	if ai.MsgRateLimited == ai.MsgGenerationFailed {
		t.Error("rate limit message must differ from the generic message")
	}
}

func TestUserMessage_Priority(t *testing.T) {
	// An error carrying several categories reports the highest-priority one.
	err := fmt.Errorf("%w / %w / %w", ai.ErrRateLimited, ai.ErrQuotaExceeded, ai.ErrInvalidCredentials)
	if got := ai.UserMessage(err); got != ai.MsgInvalidCredentials {
		t.Errorf("got %q, want credentials message", got)
	}
	err = fmt.Errorf("%w / %w", ai.ErrRateLimited, ai.ErrQuotaExceeded)
	if got := ai.UserMessage(err); got != ai.MsgQuotaExceeded {
		t.Errorf("got %q, want quota message", got)
	}
}

func TestDescribe(t *testing.T) {
	if got := ai.Describe(nil); got != metrics.OutcomeSuccess {
		t.Errorf("Describe(nil) = %q", got)
	}
	if got := ai.Describe(providerErr(ai.ErrRateLimited, "x")); got != metrics.OutcomeRateLimited {
		t.Errorf("Describe(rate limit) = %q", got)
	}
}
