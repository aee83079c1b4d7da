package tagline

// Word banks are fixed at compile time and never written after package
// initialisation, so concurrent readers need no locking. Callers outside the
// package only ever see copies.

var toneModifiers = map[Tone][]string{
	ToneProfessional: {"reliable", "proven", "trusted", "efficient", "precise", "smart", "dependable", "focused"},
	TonePlayful:      {"cheeky", "bright", "bouncy", "zesty", "joyful", "quirky", "fizzy", "sunny"},
	TonePremium:      {"refined", "elegant", "exquisite", "timeless", "curated", "luxurious", "signature", "polished"},
	ToneBold:         {"fearless", "relentless", "unstoppable", "raw", "electric", "daring", "fierce", "untamed"},
}

var toneVerbs = map[Tone][]string{
	ToneProfessional: {"streamline", "empower", "elevate", "simplify", "optimise", "deliver", "support", "strengthen"},
	TonePlayful:      {"spark", "brighten", "tickle", "jazz up", "light up", "shake up", "cheer", "wow"},
	TonePremium:      {"elevate", "indulge", "distinguish", "perfect", "enrich", "define", "grace", "celebrate"},
	ToneBold:         {"ignite", "dominate", "conquer", "unleash", "crush", "own", "charge", "outrun"},
}

var audienceNouns = map[Audience][]string{
	AudienceGeneral:    {"everyday life", "your routine", "every moment", "people everywhere", "your day", "modern living", "the everyday", "your world"},
	AudienceMotorsport: {"every lap", "race day", "the grid", "pit lane", "the podium", "track days", "every corner", "the checkered flag"},
	AudienceFinance:    {"your portfolio", "every transaction", "smart money", "your balance sheet", "market moves", "client trust", "compliance", "your returns"},
	AudienceDevelopers: {"your codebase", "every deploy", "clean code", "your pipeline", "shipping day", "the stack", "every commit", "your workflow"},
}

// Modifiers returns a copy of the modifier list for t.
func Modifiers(t Tone) []string {
	return append([]string(nil), modifiersFor(t)...)
}

// Verbs returns a copy of the verb list for t.
func Verbs(t Tone) []string {
	return append([]string(nil), verbsFor(t)...)
}

// Nouns returns a copy of the noun list for a.
func Nouns(a Audience) []string {
	return append([]string(nil), nounsFor(a)...)
}

func modifiersFor(t Tone) []string {
	if m, ok := toneModifiers[t]; ok {
		return m
	}
	return toneModifiers[ToneProfessional]
}

func verbsFor(t Tone) []string {
	if v, ok := toneVerbs[t]; ok {
		return v
	}
	return toneVerbs[ToneProfessional]
}

func nounsFor(a Audience) []string {
	if n, ok := audienceNouns[a]; ok {
		return n
	}
	return audienceNouns[AudienceGeneral]
}
