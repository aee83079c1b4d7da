package ai

import (
	"errors"
	"net/http"
	"testing"
)

func TestClassifyProviderError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		code    string
		typ     string
		message string
		want    error
	}{
		{"401", http.StatusUnauthorized, "", "", "", ErrInvalidCredentials},
		{"invalid key code", http.StatusBadRequest, "invalid_api_key", "", "", ErrInvalidCredentials},
		{"quota code on 429", http.StatusTooManyRequests, "insufficient_quota", "insufficient_quota", "", ErrQuotaExceeded},
		{"quota message", http.StatusTooManyRequests, "", "", "You exceeded your current quota, please check your plan", ErrQuotaExceeded},
		{"plain 429", http.StatusTooManyRequests, "", "", "slow down", ErrRateLimited},
		{"rate limit code", http.StatusOK, "rate_limit_exceeded", "", "", ErrRateLimited},
		{"404", http.StatusNotFound, "", "", "", ErrModelUnavailable},
		{"403", http.StatusForbidden, "", "", "", ErrModelUnavailable},
		{"model_not_found code", http.StatusBadRequest, "model_not_found", "", "", ErrModelUnavailable},
		{"500", http.StatusInternalServerError, "", "server_error", "", ErrProvider},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyProviderError(tt.status, tt.code, tt.typ, tt.message)
			if !errors.Is(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyOpenAIError_TransportFailure(t *testing.T) {
	err := classifyOpenAIError(errors.New("dial tcp: connection refused"))
	if !errors.Is(err, ErrProvider) {
		t.Errorf("expected ErrProvider, got %v", err)
	}
}
