package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultGroqBaseURL = "https://api.groq.com/openai"

// Groq streams completions from the Groq OpenAI-compatible API. It is the
// fallback provider.
type Groq struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGroq(apiKey, model string, timeout time.Duration) *Groq {
	return &Groq{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultGroqBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (g *Groq) Name() string { return "groq" }

func (g *Groq) Available() bool { return g.apiKey != "" }

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqRequest struct {
	Model    string        `json:"model"`
	Messages []groqMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type groqChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

func (g *Groq) Stream(ctx context.Context, req Request) (Stream, error) {
	messages := []groqMessage{{Role: "system", Content: req.SystemInstruction}}
	for _, turn := range req.History {
		role := RoleAssistant
		if turn.Role == RoleUser {
			role = RoleUser
		}
		messages = append(messages, groqMessage{Role: role, Content: turn.Content})
	}
	messages = append(messages, groqMessage{Role: RoleUser, Content: req.Prompt})

	body, err := json.Marshal(groqRequest{Model: g.model, Messages: messages, Stream: true})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	res, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		res.Body.Close()
		return nil, fmt.Errorf("groq http status %d: %s", res.StatusCode, string(msg))
	}

	return newSSEStream(res.Body, decodeGroqEvent), nil
}

func decodeGroqEvent(data string) (string, bool, error) {
	if data == "[DONE]" {
		return "", true, nil
	}
	var chunk groqChunk
	if err := json.Unmarshal([]byte(data), &chunk); err != nil {
		return "", false, err
	}
	if len(chunk.Choices) == 0 {
		return "", false, nil
	}
	return chunk.Choices[0].Delta.Content, false, nil
}
