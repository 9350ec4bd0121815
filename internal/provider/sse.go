package provider

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// sseStream consumes a server-sent-events body line by line, delegating
// per-event JSON decoding to the owning client.
type sseStream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
	// decode turns one data payload into a text fragment. done ends the
	// stream early (e.g. the OpenAI-style [DONE] sentinel).
	decode func(data string) (fragment string, done bool, err error)
}

func newSSEStream(body io.ReadCloser, decode func(string) (string, bool, error)) *sseStream {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	return &sseStream{body: body, scanner: scanner, decode: decode}
}

func (s *sseStream) Recv() (string, error) {
	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" || strings.HasPrefix(line, ":") {
			continue
		}
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "" {
			continue
		}

		fragment, done, err := s.decode(data)
		if err != nil {
			return "", fmt.Errorf("decode stream event: %w", err)
		}
		if done {
			return "", io.EOF
		}
		if fragment == "" {
			continue
		}
		return fragment, nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", fmt.Errorf("stream read: %w", err)
	}
	return "", io.EOF
}

func (s *sseStream) Close() error {
	return s.body.Close()
}
