// Package learning synthesizes educational legal content through the
// provider router, instructing the model to answer in strict JSON and
// recovering the object when it wraps it in prose or markdown fences.
package learning

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/nilaydev/legalclause/internal/provider"
)

var ErrNoJSON = errors.New("no JSON object found in model response")

// MCQ is one multiple-choice question attached to a clause lesson.
type MCQ struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// ClauseLesson is the AI-generated study material for one clause.
type ClauseLesson struct {
	Explanation string `json:"explanation"`
	Example     string `json:"example"`
	MCQ         MCQ    `json:"mcq"`
}

// CaseEvaluation is the AI verdict on a user's case-study answer.
type CaseEvaluation struct {
	CorrectClause string `json:"correct_clause"`
	Reasoning     string `json:"reasoning"`
	Explanation   string `json:"explanation"`
}

// Completer is the non-streaming slice of the provider router.
type Completer interface {
	Complete(ctx context.Context, req provider.Request) (string, error)
}

type Service struct {
	gen Completer
}

func NewService(gen Completer) *Service {
	return &Service{gen: gen}
}

// ClauseContent generates the explanation/example/MCQ lesson for a clause.
func (s *Service) ClauseContent(ctx context.Context, law, itemID string) (ClauseLesson, error) {
	prompt := fmt.Sprintf(`Law: %s
Clause: %s
Text: %s

Provide:
1. A very simple explanation for a student.
2. A real-life example.
3. One MCQ with 4 options and the correct answer.

Format the response as JSON:
{
    "explanation": "...",
    "example": "...",
    "mcq": {
        "question": "...",
        "options": ["...", "...", "...", "..."],
        "answer": "..."
    }
}`, law, itemID, ClauseText(law, itemID))

	raw, err := s.completeJSON(ctx, prompt, "You are a legal educator. Return ONLY JSON.")
	if err != nil {
		return ClauseLesson{}, err
	}

	var lesson ClauseLesson
	if err := json.Unmarshal(raw, &lesson); err != nil {
		return ClauseLesson{}, fmt.Errorf("parse lesson JSON: %w", err)
	}
	return lesson, nil
}

// EvaluateCase grades the user's clause and reasoning for the scenario.
func (s *Service) EvaluateCase(ctx context.Context, scenario, userClause, userReasoning string) (CaseEvaluation, error) {
	prompt := fmt.Sprintf(`Scenario: %s
User's Answer (Clause): %s
User's Reasoning: %s

Evaluate the user's answer.
Provide:
1. The correct legal clause (Article/Section).
2. A short reasoning.
3. A simple explanation.

Format as JSON:
{
    "correct_clause": "...",
    "reasoning": "...",
    "explanation": "..."
}`, scenario, userClause, userReasoning)

	raw, err := s.completeJSON(ctx, prompt, "You are a legal evaluator. Return ONLY JSON.")
	if err != nil {
		return CaseEvaluation{}, err
	}

	var eval CaseEvaluation
	if err := json.Unmarshal(raw, &eval); err != nil {
		return CaseEvaluation{}, fmt.Errorf("parse evaluation JSON: %w", err)
	}
	return eval, nil
}

// ExamAnswer generates a structured exam-style markdown answer.
func (s *Service) ExamAnswer(ctx context.Context, law, topic, marks string) (string, error) {
	prompt := fmt.Sprintf(`Law: %s
Topic: %s
Marks: %s

Generate a structured exam-style answer.
Use headings like:
- Introduction
- Relevant Legal Provisions
- Key Points / Explanation
- Case Laws (if any)
- Conclusion

Keep the language simple but professional.`, law, topic, marks)

	return s.gen.Complete(ctx, provider.Request{
		Prompt:            prompt,
		SystemInstruction: "You are a law professor helping a student. Use markdown for headings.",
	})
}

func (s *Service) completeJSON(ctx context.Context, prompt, systemInstruction string) (json.RawMessage, error) {
	text, err := s.gen.Complete(ctx, provider.Request{
		Prompt:            prompt,
		SystemInstruction: systemInstruction,
	})
	if err != nil {
		return nil, err
	}
	return ExtractJSON(text)
}

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSON pulls the first brace-delimited object out of a model
// response, tolerating surrounding prose and markdown fences.
func ExtractJSON(text string) (json.RawMessage, error) {
	match := jsonObjectPattern.FindString(text)
	if match == "" {
		return nil, ErrNoJSON
	}
	return json.RawMessage(match), nil
}
