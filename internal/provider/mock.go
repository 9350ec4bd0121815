package provider

import (
	"context"
	"io"
	"sync"
)

// Mock is a scriptable in-process client for tests.
type Mock struct {
	ClientName  string
	Configured  bool
	Fragments   []string
	InitErr     error
	FailAfter   int // emit an error after this many fragments; 0 disables
	FailErr     error
	mu          sync.Mutex
	streamCalls int
	lastRequest Request
}

func (m *Mock) Name() string {
	if m.ClientName == "" {
		return "mock"
	}
	return m.ClientName
}

func (m *Mock) Available() bool { return m.Configured }

func (m *Mock) Stream(_ context.Context, req Request) (Stream, error) {
	m.mu.Lock()
	m.streamCalls++
	m.lastRequest = req
	m.mu.Unlock()

	if m.InitErr != nil {
		return nil, m.InitErr
	}
	return &mockStream{fragments: m.Fragments, failAfter: m.FailAfter, failErr: m.FailErr}, nil
}

func (m *Mock) StreamCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.streamCalls
}

func (m *Mock) LastRequest() Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastRequest
}

type mockStream struct {
	fragments []string
	failAfter int
	failErr   error
	pos       int
}

func (s *mockStream) Recv() (string, error) {
	if s.failAfter > 0 && s.pos >= s.failAfter {
		return "", s.failErr
	}
	if s.pos >= len(s.fragments) {
		return "", io.EOF
	}
	frag := s.fragments[s.pos]
	s.pos++
	return frag, nil
}

func (s *mockStream) Close() error { return nil }
