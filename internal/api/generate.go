package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/nyashahama/tagline-studio-backend/internal/ai"
	"github.com/nyashahama/tagline-studio-backend/internal/metrics"
	"github.com/nyashahama/tagline-studio-backend/internal/tagline"
)

// ─── POST /api/generate ───────────────────────────────────────────────────────
//
// Accepts a product description, tone and audience and returns five taglines
// plus a meta description from whichever backend is wired in. Unknown tone
// and audience values are coerced, never rejected.

const (
	msgInvalidJSON      = "Invalid JSON body."
	msgDescriptionShort = "Description must be at least 20 characters."
)

type generateRequest struct {
	Description string `json:"description"`
	Tone        string `json:"tone"`
	Audience    string `json:"audience"`
}

type generateResponse struct {
	Taglines        []string `json:"taglines"`
	MetaDescription string   `json:"metaDescription"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var body generateRequest
	if err := decode(w, r, &body); err != nil {
		metrics.GenerationTotal.WithLabelValues(s.cfg.Backend, metrics.OutcomeInvalidInput).Inc()
		respondErr(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	req, err := tagline.NewRequest(body.Description, body.Tone, body.Audience)
	if err != nil {
		metrics.GenerationTotal.WithLabelValues(s.cfg.Backend, metrics.OutcomeInvalidInput).Inc()
		respondErr(w, http.StatusBadRequest, msgDescriptionShort)
		return
	}

	// The outbound call runs to completion even if the client goes away.
	ctx := context.WithoutCancel(r.Context())

	start := time.Now()
	result, err := s.generator.Generate(ctx, req)
	metrics.GenerationDuration.WithLabelValues(s.cfg.Backend).Observe(time.Since(start).Seconds())
	metrics.GenerationTotal.WithLabelValues(s.cfg.Backend, ai.Describe(err)).Inc()

	if err != nil {
		s.respondGenerateErr(w, r, err)
		return
	}

	taglines := result.Taglines
	if taglines == nil {
		taglines = []string{}
	}
	respond(w, http.StatusOK, generateResponse{
		Taglines:        taglines,
		MetaDescription: result.MetaDescription,
	})
}

// respondGenerateErr logs the full error and writes only the mapped message.
// A missing credential is a server configuration problem (500); every
// provider or output failure is an upstream problem (502).
func (s *Server) respondGenerateErr(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadGateway
	if errors.Is(err, ai.ErrNotConfigured) {
		status = http.StatusInternalServerError
	}

	s.logger.Error("generate failed",
		"error", err,
		"category", ai.Describe(err),
		"backend", s.cfg.Backend,
		"request_id", middleware.GetReqID(r.Context()),
	)
	respondErr(w, status, ai.UserMessage(err))
}
