// Package provider abstracts the hosted text-generation backends behind a
// single streaming interface with primary/fallback ordering.
package provider

import (
	"context"
	"io"
)

// Roles used in conversation history. Anything that is not RoleUser is
// treated as the assistant when mapped to a backend's vocabulary.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one conversation turn supplied by the caller. History is never
// persisted server-side; the client resends it on every request.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a provider-agnostic generation request.
type Request struct {
	Prompt            string
	History           []Turn
	SystemInstruction string
}

// Stream yields text fragments in provider order. Recv returns io.EOF when
// the stream is complete. Streams are finite and not restartable.
type Stream interface {
	Recv() (string, error)
	Close() error
}

// Client is one hosted generation backend.
type Client interface {
	Name() string
	// Available reports whether the backend credential is configured.
	// Unavailable clients are skipped without any network call.
	Available() bool
	// Stream starts a generation call. A non-nil error is an initiation
	// failure: nothing has been emitted and a fallback may be attempted.
	Stream(ctx context.Context, req Request) (Stream, error)
}

// staticStream yields a fixed fragment sequence. Used for the configuration
// error message and in tests.
type staticStream struct {
	fragments []string
	pos       int
}

func newStaticStream(fragments ...string) *staticStream {
	return &staticStream{fragments: fragments}
}

func (s *staticStream) Recv() (string, error) {
	if s.pos >= len(s.fragments) {
		return "", io.EOF
	}
	frag := s.fragments[s.pos]
	s.pos++
	return frag, nil
}

func (s *staticStream) Close() error { return nil }

// Drain reads a stream to completion and concatenates its fragments.
func Drain(s Stream) string {
	defer s.Close()
	var out []byte
	for {
		frag, err := s.Recv()
		if err != nil {
			return string(out)
		}
		out = append(out, frag...)
	}
}
