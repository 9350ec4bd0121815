package redact

import (
	"errors"
	"strings"
	"testing"
)

func TestSecretsMasksKeyQueryParam(t *testing.T) {
	in := `Post "https://generativelanguage.googleapis.com/v1beta/models/m:streamGenerateContent?alt=sse&key=AIzaSyExample123": dial tcp: timeout`
	out := Secrets(in)

	if strings.Contains(out, "AIzaSyExample123") {
		t.Fatalf("key survived redaction: %q", out)
	}
	if !strings.Contains(out, "key=[REDACTED]") {
		t.Fatalf("expected a redaction marker, got %q", out)
	}
	if !strings.Contains(out, "alt=sse") {
		t.Fatalf("non-secret query params should survive, got %q", out)
	}
}

func TestSecretsMasksBearerToken(t *testing.T) {
	out := Secrets("authorization: Bearer gsk_live_abc123 rejected")
	if strings.Contains(out, "gsk_live_abc123") {
		t.Fatalf("token survived redaction: %q", out)
	}
}

func TestSecretsLeavesPlainTextAlone(t *testing.T) {
	in := "gemini http status 500: internal error"
	if out := Secrets(in); out != in {
		t.Fatalf("Secrets(%q) = %q, want unchanged", in, out)
	}
}

func TestErrorHandlesNil(t *testing.T) {
	if got := Error(nil); got != "" {
		t.Fatalf("Error(nil) = %q, want empty", got)
	}
	if got := Error(errors.New("boom ?key=abc")); strings.Contains(got, "abc") {
		t.Fatalf("Error leaked the key: %q", got)
	}
}
