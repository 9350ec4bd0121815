// Package chat drives the turn-based legal assistant conversation.
package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/nilaydev/legalclause/internal/provider"
)

var ErrEmptyMessage = errors.New("message is required")

// corpusExcerptMax caps the reference text appended to the system
// instruction so the request stays inside provider context limits.
const corpusExcerptMax = 15000

// legalKeywords flag messages that should be answered with the constitution
// at hand. Matching is a case-insensitive substring check.
var legalKeywords = []string{
	"legal", "right", "law", "constitution", "article",
	"illegal", "allowed", "permit", "my right", "is it legal",
}

const baseSystemInstruction = `You are LegalClauseAI, a helpful legal assistant for Indian citizens.
Your goal is to simplify legal concepts and provide guidance.
If the user asks about their rights or whether something is legal, you MUST refer to the Indian Constitution.
Always provide the specific Article number if applicable.
Keep your answers concise, professional, and easy to understand for a layperson.`

// Generator is the slice of the provider router the pipeline needs.
type Generator interface {
	Stream(ctx context.Context, req provider.Request) provider.Stream
}

type Pipeline struct {
	gen    Generator
	corpus Corpus
}

func NewPipeline(gen Generator, corpus Corpus) *Pipeline {
	return &Pipeline{gen: gen, corpus: corpus}
}

// Stream answers a chat message with the caller-supplied history. Empty
// messages are rejected before any provider work happens.
func (p *Pipeline) Stream(ctx context.Context, message string, history []provider.Turn) (provider.Stream, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	return p.gen.Stream(ctx, provider.Request{
		Prompt:            message,
		History:           history,
		SystemInstruction: p.systemInstruction(message),
	}), nil
}

func (p *Pipeline) systemInstruction(message string) string {
	instruction := baseSystemInstruction
	if !IsLegalQuery(message) {
		return instruction
	}

	reference := p.corpus.Get()
	if reference == "" {
		return instruction
	}
	if len(reference) > corpusExcerptMax {
		reference = reference[:corpusExcerptMax]
	}
	return instruction + "\n\nREFERENCE MATERIAL (Constitution of India):\n" + reference
}

// IsLegalQuery reports whether the message matches the legal-intent
// keyword heuristics.
func IsLegalQuery(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range legalKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
