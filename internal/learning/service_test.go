package learning

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nilaydev/legalclause/internal/provider"
)

type fakeCompleter struct {
	response string
	err      error
	last     provider.Request
}

func (f *fakeCompleter) Complete(_ context.Context, req provider.Request) (string, error) {
	f.last = req
	return f.response, f.err
}

func TestClauseContentParsesFencedJSON(t *testing.T) {
	gen := &fakeCompleter{response: "Sure! Here is the lesson:\n```json\n" + `{
		"explanation": "Everyone is equal before the law.",
		"example": "A minister and a farmer get the same treatment in court.",
		"mcq": {
			"question": "Which article guarantees equality?",
			"options": ["Article 12", "Article 14", "Article 19", "Article 21"],
			"answer": "Article 14"
		}
	}` + "\n```"}
	svc := NewService(gen)

	lesson, err := svc.ClauseContent(context.Background(), "Constitution of India", "Article 14")
	if err != nil {
		t.Fatalf("ClauseContent() error = %v", err)
	}
	if lesson.Explanation != "Everyone is equal before the law." {
		t.Fatalf("Explanation = %q", lesson.Explanation)
	}
	if len(lesson.MCQ.Options) != 4 || lesson.MCQ.Answer != "Article 14" {
		t.Fatalf("MCQ = %+v", lesson.MCQ)
	}

	if !strings.Contains(gen.last.Prompt, "Article 14") {
		t.Fatalf("prompt missing clause ID")
	}
	if !strings.Contains(gen.last.Prompt, sampleTexts["Article 14"]) {
		t.Fatalf("prompt missing sample clause text")
	}
	if !strings.Contains(gen.last.SystemInstruction, "Return ONLY JSON") {
		t.Fatalf("system instruction = %q", gen.last.SystemInstruction)
	}
}

func TestClauseContentNoJSONErrors(t *testing.T) {
	svc := NewService(&fakeCompleter{response: "I cannot help with that."})
	if _, err := svc.ClauseContent(context.Background(), "IPC", "Section 300"); !errors.Is(err, ErrNoJSON) {
		t.Fatalf("ClauseContent() error = %v, want ErrNoJSON", err)
	}
}

func TestEvaluateCase(t *testing.T) {
	gen := &fakeCompleter{response: `{
		"correct_clause": "Article 22",
		"reasoning": "Arrested persons must be informed of the grounds of arrest.",
		"explanation": "The police must tell you why you are being arrested and let you consult a lawyer."
	}`}
	svc := NewService(gen)

	eval, err := svc.EvaluateCase(context.Background(), Scenario(), "Article 21", "liberty was taken")
	if err != nil {
		t.Fatalf("EvaluateCase() error = %v", err)
	}
	if eval.CorrectClause != "Article 22" {
		t.Fatalf("CorrectClause = %q", eval.CorrectClause)
	}
	if !strings.Contains(gen.last.Prompt, "Article 21") || !strings.Contains(gen.last.Prompt, "liberty was taken") {
		t.Fatalf("prompt missing user answer fields")
	}
}

func TestExamAnswerPassesThrough(t *testing.T) {
	gen := &fakeCompleter{response: "# Introduction\nTheft is defined in Section 378..."}
	svc := NewService(gen)

	answer, err := svc.ExamAnswer(context.Background(), "IPC", "Theft", "10")
	if err != nil {
		t.Fatalf("ExamAnswer() error = %v", err)
	}
	if !strings.HasPrefix(answer, "# Introduction") {
		t.Fatalf("answer = %q", answer)
	}
	if !strings.Contains(gen.last.Prompt, "Marks: 10") {
		t.Fatalf("prompt missing marks")
	}
}

func TestExtractJSON(t *testing.T) {
	raw, err := ExtractJSON(`noise {"a": {"b": 1}} trailing`)
	if err != nil {
		t.Fatalf("ExtractJSON() error = %v", err)
	}
	if string(raw) != `{"a": {"b": 1}}` {
		t.Fatalf("ExtractJSON() = %s", raw)
	}

	if _, err := ExtractJSON("no braces here"); !errors.Is(err, ErrNoJSON) {
		t.Fatalf("ExtractJSON(plain) error = %v, want ErrNoJSON", err)
	}
}

func TestDailyConceptRotates(t *testing.T) {
	day1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	day4 := day1.AddDate(0, 0, 3)

	if DailyConcept(day1) == DailyConcept(day2) {
		t.Fatalf("consecutive days should rotate concepts")
	}
	if DailyConcept(day1) != DailyConcept(day4) {
		t.Fatalf("rotation should wrap after %d days", len(dailyConcepts))
	}
}

func TestCatalogLookups(t *testing.T) {
	if len(Laws()) != 4 {
		t.Fatalf("Laws() len = %d, want 4", len(Laws()))
	}
	items := LawItems("CrPC")
	if len(items) != 2 || items[0].ID != "Section 41" {
		t.Fatalf("LawItems(CrPC) = %+v", items)
	}
	if LawItems("Maritime Law") != nil {
		t.Fatalf("unknown law should yield nil items")
	}
	if !strings.Contains(ClauseText("IPC", "Section 999"), "Section 999") {
		t.Fatalf("placeholder text should name the clause")
	}
}
