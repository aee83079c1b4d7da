// Package tagline holds the request/result types shared by both generation
// backends, the input validation rules, the string clamps, and the
// deterministic template generator.
//
// Nothing in this package performs I/O. Everything is safe for concurrent use.
package tagline

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"
)

// ─── CONSTANTS ────────────────────────────────────────────────────────────────

const (
	// MinDescriptionLength is the minimum trimmed description length, in
	// characters, accepted by NewRequest.
	MinDescriptionLength = 20

	MaxTaglines       = 5
	MaxTaglineWords   = 10
	MaxMetaLength     = 160
	maxMetaDescLength = 100
)

// ErrDescriptionTooShort is returned by NewRequest when the trimmed
// description is shorter than MinDescriptionLength.
var ErrDescriptionTooShort = errors.New("description must be at least 20 characters")

// ─── TONE ─────────────────────────────────────────────────────────────────────

// Tone is the stylistic voice used to pick modifiers and verbs.
type Tone string

const (
	ToneProfessional Tone = "Professional"
	TonePlayful      Tone = "Playful"
	TonePremium      Tone = "Premium"
	ToneBold         Tone = "Bold"
)

var tones = []Tone{ToneProfessional, TonePlayful, TonePremium, ToneBold}

// Tones returns every recognised tone in display order.
func Tones() []Tone {
	return append([]Tone(nil), tones...)
}

// ParseTone matches s case-insensitively against the known tones.
// Anything unrecognised, including the empty string, is Professional.
func ParseTone(s string) Tone {
	s = strings.TrimSpace(s)
	for _, t := range tones {
		if strings.EqualFold(s, string(t)) {
			return t
		}
	}
	return ToneProfessional
}

// ─── AUDIENCE ─────────────────────────────────────────────────────────────────

// Audience is the target reader segment used to pick nouns.
type Audience string

const (
	AudienceGeneral    Audience = "General"
	AudienceMotorsport Audience = "Motorsport fans"
	AudienceFinance    Audience = "Finance/banking"
	AudienceDevelopers Audience = "Developers"
)

var audiences = []Audience{AudienceGeneral, AudienceMotorsport, AudienceFinance, AudienceDevelopers}

// Audiences returns every recognised audience in display order.
func Audiences() []Audience {
	return append([]Audience(nil), audiences...)
}

// ParseAudience matches s case-insensitively against the known audiences.
// Anything unrecognised is General.
func ParseAudience(s string) Audience {
	s = strings.TrimSpace(s)
	for _, a := range audiences {
		if strings.EqualFold(s, string(a)) {
			return a
		}
	}
	return AudienceGeneral
}

// Label is the short phrase used at the end of a meta description,
// e.g. "Bold taglines for motorsport fans."
func (a Audience) Label() string {
	switch a {
	case AudienceMotorsport:
		return "motorsport fans"
	case AudienceFinance:
		return "finance and banking teams"
	case AudienceDevelopers:
		return "developers"
	default:
		return "a general audience"
	}
}

// ─── REQUEST / RESULT ─────────────────────────────────────────────────────────

// Request is a validated generation request. Build it with NewRequest.
type Request struct {
	Description string
	Tone        Tone
	Audience    Audience
}

// Result is what both backends return.
type Result struct {
	Taglines        []string `json:"taglines"`
	MetaDescription string   `json:"metaDescription"`
}

// NewRequest trims the description, coerces tone and audience to their
// nearest known value and enforces the minimum description length.
// An unknown tone or audience is never an error.
func NewRequest(description, tone, audience string) (Request, error) {
	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(description) < MinDescriptionLength {
		return Request{}, ErrDescriptionTooShort
	}
	return Request{
		Description: description,
		Tone:        ParseTone(tone),
		Audience:    ParseAudience(audience),
	}, nil
}

// Generator is the contract shared by the deterministic engine and the
// external adapter. Implementations must be safe to call concurrently.
type Generator interface {
	Generate(ctx context.Context, req Request) (Result, error)
}
