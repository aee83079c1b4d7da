package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/nyashahama/tagline-studio-backend/internal/tagline"
)

// quoteChars are stripped from both ends of a tagline along with whitespace.
const quoteChars = "\"'`“”‘’«»"

// listMarker matches a leading "1." / "2)" / "3-" / "4:" list marker.
var listMarker = regexp.MustCompile(`^\d+[.)\-:]\s*`)

// outputJSON is the shape the model is asked to produce. Fields are kept raw
// so a wrong type is treated as missing rather than failing the whole parse.
type outputJSON struct {
	Taglines        json.RawMessage `json:"taglines"`
	MetaDescription json.RawMessage `json:"metaDescription"`
}

// ParseOutput turns raw model text into a sanitized Result.
//
// The text is parsed as JSON directly; failing that, the substring between
// the first '{' and the last '}' is tried. Taglines are sanitized, empty ones
// dropped, and the list capped at five. The meta description is trimmed and
// clamped to 160 characters. No taglines or no meta description is
// ErrGenerationFailed.
func ParseOutput(raw string) (tagline.Result, error) {
	if strings.TrimSpace(raw) == "" {
		return tagline.Result{}, fmt.Errorf("%w: empty output", ErrGenerationFailed)
	}

	out, err := decodeOutput(raw)
	if err != nil {
		return tagline.Result{}, fmt.Errorf("%w: %w (raw: %.200s)", ErrGenerationFailed, err, raw)
	}

	taglines := make([]string, 0, tagline.MaxTaglines)
	for _, s := range rawStrings(out.Taglines) {
		if clean := SanitizeTagline(s); clean != "" {
			taglines = append(taglines, clean)
		}
		if len(taglines) == tagline.MaxTaglines {
			break
		}
	}

	var meta string
	if len(out.MetaDescription) > 0 {
		var s string
		if json.Unmarshal(out.MetaDescription, &s) == nil {
			meta = tagline.ClampChars(strings.TrimSpace(s), tagline.MaxMetaLength)
		}
	}

	switch {
	case len(taglines) == 0:
		return tagline.Result{}, fmt.Errorf("%w: no taglines in output", ErrGenerationFailed)
	case meta == "":
		return tagline.Result{}, fmt.Errorf("%w: no meta description in output", ErrGenerationFailed)
	}

	return tagline.Result{Taglines: taglines, MetaDescription: meta}, nil
}

func decodeOutput(raw string) (outputJSON, error) {
	var out outputJSON
	err := json.Unmarshal([]byte(raw), &out)
	if err == nil {
		return out, nil
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return outputJSON{}, fmt.Errorf("parse output JSON: %w", err)
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &out); err != nil {
		return outputJSON{}, fmt.Errorf("parse embedded JSON: %w", err)
	}
	return out, nil
}

// rawStrings returns the string elements of a JSON array, skipping anything
// that is not a string. A non-array yields nil.
func rawStrings(msg json.RawMessage) []string {
	var items []json.RawMessage
	if len(msg) == 0 || json.Unmarshal(msg, &items) != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if json.Unmarshal(item, &s) == nil {
			out = append(out, s)
		}
	}
	return out
}

// SanitizeTagline strips list numbering, wrapping quotes and stray
// whitespace from a model-written tagline and clamps it to ten words.
func SanitizeTagline(s string) string {
	s = strings.TrimLeft(s, " \t\r\n"+quoteChars)
	s = listMarker.ReplaceAllString(s, "")
	s = strings.Trim(s, " \t\r\n"+quoteChars)
	return tagline.ClampWords(tagline.CollapseSpace(s), tagline.MaxTaglineWords)
}
