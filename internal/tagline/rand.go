package tagline

import "unicode/utf16"

// Seed derives the generator seed from the request inputs: the sum of the
// UTF-16 code units of "{description}-{tone}-{audience}". A zero sum would
// leave the generator in a degenerate state, so it becomes 1.
func Seed(description string, tone Tone, audience Audience) uint32 {
	key := description + "-" + string(tone) + "-" + string(audience)
	var sum uint32
	for _, u := range utf16.Encode([]rune(key)) {
		sum += uint32(u)
	}
	if sum == 0 {
		return 1
	}
	return sum
}

// Rand is a mulberry32 stream: an add-constant step followed by
// xorshift/multiply mixing over 32-bit state. The same seed always yields
// the same sequence. A Rand is not safe for concurrent use; each Generate
// call owns its own.
type Rand struct {
	state uint32
}

// NewRand returns a stream seeded with seed.
func NewRand(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Uint32 returns the next raw 32-bit value.
func (r *Rand) Uint32() uint32 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return t ^ t>>14
}

// Float64 returns the next value in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.Uint32()) / 4294967296
}

// pick returns list[floor(r*len(list))].
func pick(r *Rand, list []string) string {
	if len(list) == 0 {
		return ""
	}
	i := int(r.Float64() * float64(len(list)))
	if i >= len(list) {
		i = len(list) - 1
	}
	return list[i]
}
