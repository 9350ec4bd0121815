// Package summarize turns raw legal document text into a streamed
// plain-language summary.
package summarize

import (
	"context"
	"strings"

	"github.com/nilaydev/legalclause/internal/provider"
)

// MaxInputChars bounds the document text embedded in the prompt so the
// request stays inside provider token limits. Longer inputs are silently
// prefix-truncated.
const MaxInputChars = 30000

// Generator is the slice of the provider router the pipeline needs.
type Generator interface {
	Stream(ctx context.Context, req provider.Request) provider.Stream
}

type Summarizer struct {
	gen Generator
}

func New(gen Generator) *Summarizer {
	return &Summarizer{gen: gen}
}

const promptTemplate = `You are an expert legal simplifier. Your task is to summarize the provided legal document into a short, easy-to-read guide for a layperson.

**Goal:** Reduce the document to its absolute essentials. The user will NOT read a long output.

**Structure the output exactly as follows:**

# [Title of the Document/Scheme]

**🔍 What is this?**
[1-2 sentences explaining the core purpose.]

**👥 Who is it for?**
*   [Bullet points of eligibility or target audience]

**✅ Key Benefits / Obligations**
*   [Bullet points of what the user gets or must do]

**❌ Exclusions / Risks**
*   [Bullet points of who is excluded or what to watch out for]

**📝 How to Proceed**
*   [Simple steps to apply or comply]

**📅 Important Dates**
*   [Deadlines or timelines, if any]

**Rules:**
1.  **Be extremely concise.** Use short sentences.
2.  **No filler.** Do not say "The document states that...". Just state the fact.
3.  **No legal jargon.** Use plain English (e.g., use "agreement" instead of "indenture").
4.  **Skip procedural minutiae** (like internal office procedures) unless it affects the user directly.
5.  **Maximum Length:** Keep the total output under 400 words if possible, unless the document is massive and complex.

Legal Text to Simplify:
`

// Stream produces the summary as a lazy fragment sequence. The template is
// embedded in the user prompt; no system instruction, no history.
func (s *Summarizer) Stream(ctx context.Context, text string) provider.Stream {
	return s.gen.Stream(ctx, provider.Request{Prompt: BuildPrompt(text)})
}

// Summarize is the non-streaming wrapper.
func (s *Summarizer) Summarize(ctx context.Context, text string) string {
	return provider.Drain(s.Stream(ctx, text))
}

// BuildPrompt truncates the input to MaxInputChars and wraps it in the
// fixed simplifier template.
func BuildPrompt(text string) string {
	if len(text) > MaxInputChars {
		text = text[:MaxInputChars]
	}
	var b strings.Builder
	b.Grow(len(promptTemplate) + len(text))
	b.WriteString(promptTemplate)
	b.WriteString(text)
	return b.String()
}
