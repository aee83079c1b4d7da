package tagline

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxAttempts bounds the generation loop when the word banks are too small
// to yield MaxTaglines distinct phrases.
const maxAttempts = 30

// words is one draw from the banks. Every attempt draws modifier, verb and
// noun in that order whether or not the template uses all three, so the
// stream position only depends on the attempt number.
type words struct {
	mod, verb, noun string
}

var templates = []func(w words) string{
	func(w words) string { return fmt.Sprintf("%s %s", upperFirst(w.mod), w.noun) },
	func(w words) string { return fmt.Sprintf("%s %s faster", upperFirst(w.verb), w.noun) },
	func(w words) string { return fmt.Sprintf("Built to %s %s", w.verb, w.noun) },
	func(w words) string { return fmt.Sprintf("%s energy for %s", upperFirst(w.mod), w.noun) },
	func(w words) string { return fmt.Sprintf("Where %s meets %s", w.noun, w.mod) },
	func(w words) string { return fmt.Sprintf("%s %s, the %s way", upperFirst(w.verb), w.noun, w.mod) },
	func(w words) string { return fmt.Sprintf("The %s choice for %s", w.mod, w.noun) },
	func(w words) string { return fmt.Sprintf("Made for %s. %s by nature.", w.noun, upperFirst(w.mod)) },
}

// Generate is the deterministic backend: identical inputs always produce an
// identical Result. It never fails; inputs are expected to have passed
// NewRequest already.
func Generate(description string, tone Tone, audience Audience) Result {
	r := NewRand(Seed(description, tone, audience))
	mods, verbs, nouns := modifiersFor(tone), verbsFor(tone), nounsFor(audience)

	seen := make(map[string]struct{}, MaxTaglines)
	taglines := make([]string, 0, MaxTaglines)

	for attempt := 0; attempt < maxAttempts && len(taglines) < MaxTaglines; attempt++ {
		w := words{
			mod:  pick(r, mods),
			verb: pick(r, verbs),
			noun: pick(r, nouns),
		}
		line := ClampWords(CollapseSpace(templates[attempt%len(templates)](w)), MaxTaglineWords)
		if line == "" {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		taglines = append(taglines, line)
	}

	return Result{
		Taglines:        taglines,
		MetaDescription: MetaDescription(description, tone, audience),
	}
}

// MetaDescription builds "{description}. {Tone} taglines for {label}." with
// the description capped at 100 characters and the whole string at 160.
func MetaDescription(description string, tone Tone, audience Audience) string {
	desc := strings.TrimSpace(description)
	desc = strings.TrimSuffix(desc, ".")
	desc = ClampChars(desc, maxMetaDescLength)
	meta := fmt.Sprintf("%s. %s taglines for %s.", desc, tone, audience.Label())
	return ClampChars(meta, MaxMetaLength)
}

// Engine adapts Generate to the Generator interface so the HTTP layer and
// the CLI can swap backends.
type Engine struct{}

// Generate implements Generator. The context is ignored; the engine never
// blocks.
func (Engine) Generate(_ context.Context, req Request) (Result, error) {
	return Generate(req.Description, req.Tone, req.Audience), nil
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
