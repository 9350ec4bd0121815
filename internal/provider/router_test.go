package provider

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

func collect(t *testing.T, s Stream) []string {
	t.Helper()
	var frags []string
	for {
		frag, err := s.Recv()
		if errors.Is(err, io.EOF) {
			return frags
		}
		if err != nil {
			t.Fatalf("Recv() error = %v", err)
		}
		frags = append(frags, frag)
	}
}

func TestRouterNoCredentials(t *testing.T) {
	primary := &Mock{ClientName: "gemini", Configured: false}
	fallback := &Mock{ClientName: "groq", Configured: false}
	r := NewRouter(nil, primary, fallback)

	frags := collect(t, r.Stream(context.Background(), Request{Prompt: "hi"}))
	if len(frags) != 1 || frags[0] != NoProviderMessage {
		t.Fatalf("fragments = %q, want exactly the configuration error message", frags)
	}
	if primary.StreamCalls() != 0 || fallback.StreamCalls() != 0 {
		t.Fatalf("no provider call should be attempted without credentials")
	}
}

func TestRouterPrimarySucceeds(t *testing.T) {
	primary := &Mock{ClientName: "gemini", Configured: true, Fragments: []string{"a", "b", "c"}}
	fallback := &Mock{ClientName: "groq", Configured: true, Fragments: []string{"nope"}}
	r := NewRouter(nil, primary, fallback)

	frags := collect(t, r.Stream(context.Background(), Request{Prompt: "hi"}))
	if strings.Join(frags, "") != "abc" {
		t.Fatalf("fragments = %q, want primary output in order", frags)
	}
	if fallback.StreamCalls() != 0 {
		t.Fatalf("fallback was invoked %d times, want 0", fallback.StreamCalls())
	}
}

func TestRouterFallsBackOnInitiationFailure(t *testing.T) {
	req := Request{
		Prompt:            "is it legal?",
		History:           []Turn{{Role: RoleUser, Content: "hello"}, {Role: RoleAssistant, Content: "hi"}},
		SystemInstruction: "persona",
	}
	primary := &Mock{ClientName: "gemini", Configured: true, InitErr: errors.New("boom")}
	fallback := &Mock{ClientName: "groq", Configured: true, Fragments: []string{"ok"}}
	r := NewRouter(nil, primary, fallback)

	frags := collect(t, r.Stream(context.Background(), req))
	if strings.Join(frags, "") != "ok" {
		t.Fatalf("fragments = %q, want fallback output", frags)
	}

	got := fallback.LastRequest()
	if got.Prompt != req.Prompt || got.SystemInstruction != req.SystemInstruction {
		t.Fatalf("fallback request = %+v, want equivalent to original", got)
	}
	if len(got.History) != 2 || got.History[0] != req.History[0] || got.History[1] != req.History[1] {
		t.Fatalf("fallback history = %+v, want %+v", got.History, req.History)
	}
}

func TestRouterSkipsUnconfiguredPrimary(t *testing.T) {
	primary := &Mock{ClientName: "gemini", Configured: false}
	fallback := &Mock{ClientName: "groq", Configured: true, Fragments: []string{"ok"}}
	r := NewRouter(nil, primary, fallback)

	frags := collect(t, r.Stream(context.Background(), Request{Prompt: "hi"}))
	if strings.Join(frags, "") != "ok" {
		t.Fatalf("fragments = %q, want fallback output", frags)
	}
	if primary.StreamCalls() != 0 {
		t.Fatalf("unconfigured primary should never be called")
	}
}

func TestRouterMidStreamFailureNoSwitch(t *testing.T) {
	primary := &Mock{
		ClientName: "gemini",
		Configured: true,
		Fragments:  []string{"partial ", "output "},
		FailAfter:  2,
		FailErr:    errors.New("connection reset"),
	}
	fallback := &Mock{ClientName: "groq", Configured: true, Fragments: []string{"nope"}}
	r := NewRouter(nil, primary, fallback)

	frags := collect(t, r.Stream(context.Background(), Request{Prompt: "hi"}))
	if len(frags) != 3 {
		t.Fatalf("got %d fragments %q, want partial output plus one inline error", len(frags), frags)
	}
	if frags[0] != "partial " || frags[1] != "output " {
		t.Fatalf("fragments = %q, want partial output preserved in order", frags)
	}
	if !strings.Contains(frags[2], "connection reset") {
		t.Fatalf("last fragment = %q, want inline error", frags[2])
	}
	if fallback.StreamCalls() != 0 {
		t.Fatalf("stream must not resume on fallback after first fragment")
	}
}

func TestRouterAllInitiationsFail(t *testing.T) {
	primary := &Mock{ClientName: "gemini", Configured: true, InitErr: errors.New("quota")}
	fallback := &Mock{ClientName: "groq", Configured: true, InitErr: errors.New("down")}
	r := NewRouter(nil, primary, fallback)

	frags := collect(t, r.Stream(context.Background(), Request{Prompt: "hi"}))
	if len(frags) != 1 || !strings.HasPrefix(frags[0], "Error:") {
		t.Fatalf("fragments = %q, want a single inline error fragment", frags)
	}
}

func TestRouterCompleteConcatenates(t *testing.T) {
	primary := &Mock{ClientName: "gemini", Configured: true, Fragments: []string{"{", "\"a\":1", "}"}}
	r := NewRouter(nil, primary)

	text, err := r.Complete(context.Background(), Request{Prompt: "json please"})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if text != `{"a":1}` {
		t.Fatalf("Complete() = %q", text)
	}
}
