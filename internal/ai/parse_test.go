package ai_test

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/nyashahama/tagline-studio-backend/internal/ai"
)

// ─── SanitizeTagline ──────────────────────────────────────────────────────────

func TestSanitizeTagline(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`1) "Ignite every lap, every time!"  `, "Ignite every lap, every time!"},
		{`  "Quoted tagline"`, "Quoted tagline"},
		{"2. Numbered with dot", "Numbered with dot"},
		{"3- Numbered with dash", "Numbered with dash"},
		{"4: Numbered with colon", "Numbered with colon"},
		{"10) Two digit marker", "Two digit marker"},
		{"“Curly quotes”", "Curly quotes"},
		{"'Single quotes'", "Single quotes"},
		{"Inner   whitespace\tcollapsed", "Inner whitespace collapsed"},
		{"24/7 support for every team", "24/7 support for every team"},
		{"one two three four five six seven eight nine ten eleven twelve", "one two three four five six seven eight nine ten"},
		{`  "  "  `, ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ai.SanitizeTagline(tt.in); got != tt.want {
			t.Errorf("SanitizeTagline(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// ─── ParseOutput ──────────────────────────────────────────────────────────────

func TestParseOutput_DirectJSON(t *testing.T) {
	raw := `{"taglines":["Fast","1. Faster","\"Fastest\""],"metaDescription":"  A fast drink.  "}`
	res, err := ai.ParseOutput(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Fast", "Faster", "Fastest"}
	if strings.Join(res.Taglines, "|") != strings.Join(want, "|") {
		t.Errorf("taglines = %q, want %q", res.Taglines, want)
	}
	if res.MetaDescription != "A fast drink." {
		t.Errorf("meta = %q", res.MetaDescription)
	}
}

func TestParseOutput_EmbeddedJSON(t *testing.T) {
	raw := "Sure! Here you go:\n```json\n{\"taglines\":[\"Built for speed\"],\"metaDescription\":\"Speed in a can.\"}\n```\nEnjoy."
	res, err := ai.ParseOutput(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Taglines) != 1 || res.Taglines[0] != "Built for speed" {
		t.Errorf("taglines = %q", res.Taglines)
	}
	if res.MetaDescription != "Speed in a can." {
		t.Errorf("meta = %q", res.MetaDescription)
	}
}

func TestParseOutput_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "   \n "},
		{"not json", "I cannot help with that."},
		{"broken braces", "{ not json }"},
		{"no taglines", `{"metaDescription":"Meta."}`},
		{"taglines all blank", `{"taglines":["  ","\"\"","1."],"metaDescription":"Meta."}`},
		{"taglines wrong type", `{"taglines":"one, two","metaDescription":"Meta."}`},
		{"missing meta", `{"taglines":["One"]}`},
		{"meta not a string", `{"taglines":["One"],"metaDescription":42}`},
		{"meta blank", `{"taglines":["One"],"metaDescription":"   "}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ai.ParseOutput(tt.raw)
			if !errors.Is(err, ai.ErrGenerationFailed) {
				t.Errorf("expected ErrGenerationFailed, got %v", err)
			}
		})
	}
}

func TestParseOutput_SkipsNonStringTaglines(t *testing.T) {
	res, err := ai.ParseOutput(`{"taglines":[1,"Real one",null,{"x":1},"Another"],"metaDescription":"Meta."}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Taglines) != 2 || res.Taglines[0] != "Real one" || res.Taglines[1] != "Another" {
		t.Errorf("taglines = %q", res.Taglines)
	}
}

func TestParseOutput_CapsAtFive(t *testing.T) {
	res, err := ai.ParseOutput(`{"taglines":["a","b","","c","d","e","f","g"],"metaDescription":"Meta."}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Join(res.Taglines, "") != "abcde" {
		t.Errorf("taglines = %q, want a..e", res.Taglines)
	}
}

func TestParseOutput_ClampsMetaAndWords(t *testing.T) {
	long := strings.Repeat("m", 400)
	raw := `{"taglines":["one two three four five six seven eight nine ten eleven"],"metaDescription":"` + long + `"}`
	res, err := ai.ParseOutput(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := utf8.RuneCountInString(res.MetaDescription); n != 160 {
		t.Errorf("meta has %d chars, want 160", n)
	}
	if !strings.HasSuffix(res.MetaDescription, "...") {
		t.Errorf("clamped meta should end in ellipsis: %q", res.MetaDescription)
	}
	if n := len(strings.Fields(res.Taglines[0])); n != 10 {
		t.Errorf("tagline has %d words, want 10", n)
	}
}
