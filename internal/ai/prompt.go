package ai

import (
	"fmt"
	"strings"

	"github.com/nyashahama/tagline-studio-backend/internal/tagline"
)

const systemPrompt = `You are a senior brand copywriter.
You write short, punchy marketing taglines and concise SEO meta descriptions.

Rules:
1. Write exactly 5 taglines.
2. Each tagline is at most 10 words.
3. No numbering, no quotes, no bullets, no emoji lists.
4. Every tagline must be distinct from the others.
5. Write one meta description of at most 160 characters.

Respond ONLY with a single JSON object, no markdown fences, no preamble:
{
  "taglines": ["...", "...", "...", "...", "..."],
  "metaDescription": "..."
}`

// buildPrompt renders the user message for one request.
func buildPrompt(req tagline.Request) string {
	var sb strings.Builder
	sb.WriteString("Write taglines for this product.\n\n")
	fmt.Fprintf(&sb, "Product description: %s\n", strings.TrimSpace(req.Description))
	fmt.Fprintf(&sb, "Tone: %s\n", req.Tone)
	fmt.Fprintf(&sb, "Audience: %s\n", req.Audience)
	return sb.String()
}
