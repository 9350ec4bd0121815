package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGeminiStreamParsesSSE(t *testing.T) {
	var captured geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.RawQuery, "alt=sse") {
			t.Errorf("query = %q, want alt=sse", r.URL.RawQuery)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "text/event-stream")
		io.WriteString(w, `data: {"candidates":[{"content":{"parts":[{"text":"Hello"}]}}]}`+"\n\n")
		io.WriteString(w, `data: {"candidates":[]}`+"\n\n")
		io.WriteString(w, `data: {"candidates":[{"content":{"parts":[{"text":" world"}]}}]}`+"\n\n")
	}))
	defer server.Close()

	g := NewGemini("test-key", "gemini-2.0-flash-exp", time.Minute)
	g.baseURL = server.URL

	stream, err := g.Stream(context.Background(), Request{
		Prompt:            "hi",
		History:           []Turn{{Role: RoleUser, Content: "q"}, {Role: RoleAssistant, Content: "a"}},
		SystemInstruction: "persona",
	})
	if err != nil {
		t.Fatalf("Stream() error = %v", err)
	}

	if got := Drain(stream); got != "Hello world" {
		t.Fatalf("Drain() = %q, want Hello world", got)
	}

	if len(captured.Contents) != 3 {
		t.Fatalf("contents len = %d, want history plus prompt", len(captured.Contents))
	}
	if captured.Contents[0].Role != "user" || captured.Contents[1].Role != "model" {
		t.Fatalf("history roles = %q/%q, want user/model", captured.Contents[0].Role, captured.Contents[1].Role)
	}
	if captured.SystemInstruction == nil || captured.SystemInstruction.Parts[0].Text != "persona" {
		t.Fatalf("system instruction not forwarded: %+v", captured.SystemInstruction)
	}
}

func TestGeminiStreamInitiationFailureOnHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	g := NewGemini("test-key", "gemini-2.0-flash-exp", time.Minute)
	g.baseURL = server.URL

	if _, err := g.Stream(context.Background(), Request{Prompt: "hi"}); err == nil {
		t.Fatalf("Stream() should fail initiation on non-2xx status")
	}
}

func TestGroqStreamParsesSSE(t *testing.T) {
	var captured groqRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer groq-key" {
			t.Errorf("Authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "text/event-stream")
		io.WriteString(w, `data: {"choices":[{"delta":{"content":"Hel"}}]}`+"\n\n")
		io.WriteString(w, `data: {"choices":[{"delta":{"content":"lo"}}]}`+"\n\n")
		io.WriteString(w, "data: [DONE]\n\n")
		io.WriteString(w, `data: {"choices":[{"delta":{"content":"ignored"}}]}`+"\n\n")
	}))
	defer server.Close()

	g := NewGroq("groq-key", "llama-3.3-70b-versatile", time.Minute)
	g.baseURL = server.URL

	stream, err := g.Stream(context.Background(), Request{
		Prompt:            "hi",
		History:           []Turn{{Role: "model", Content: "earlier"}},
		SystemInstruction: "persona",
	})
	if err != nil {
		t.Fatalf("Stream() error = %v", err)
	}

	if got := Drain(stream); got != "Hello" {
		t.Fatalf("Drain() = %q, want Hello (stream ends at [DONE])", got)
	}

	if len(captured.Messages) != 3 {
		t.Fatalf("messages len = %d, want system+history+user", len(captured.Messages))
	}
	if captured.Messages[0].Role != "system" || captured.Messages[0].Content != "persona" {
		t.Fatalf("first message = %+v, want system persona", captured.Messages[0])
	}
	if captured.Messages[1].Role != "assistant" {
		t.Fatalf("non-user history role = %q, want assistant", captured.Messages[1].Role)
	}
	if !captured.Stream {
		t.Fatalf("stream flag not set")
	}
}
