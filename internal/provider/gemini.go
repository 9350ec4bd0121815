package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// Gemini streams completions from the Google AI Studio API. It is the
// primary provider when its credential is configured.
type Gemini struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGemini(apiKey, model string, timeout time.Duration) *Gemini {
	return &Gemini{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultGeminiBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (g *Gemini) Name() string { return "gemini" }

func (g *Gemini) Available() bool { return g.apiKey != "" }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents          []geminiContent `json:"contents"`
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
}

type geminiChunk struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *Gemini) Stream(ctx context.Context, req Request) (Stream, error) {
	payload := geminiRequest{}
	for _, turn := range req.History {
		role := "model"
		if turn.Role == RoleUser {
			role = RoleUser
		}
		payload.Contents = append(payload.Contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: turn.Content}},
		})
	}
	payload.Contents = append(payload.Contents, geminiContent{
		Role:  RoleUser,
		Parts: []geminiPart{{Text: req.Prompt}},
	})
	if req.SystemInstruction != "" {
		payload.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: req.SystemInstruction}},
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:streamGenerateContent?alt=sse&key=%s",
		g.baseURL, g.model, url.QueryEscape(g.apiKey))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		res.Body.Close()
		return nil, fmt.Errorf("gemini http status %d: %s", res.StatusCode, string(msg))
	}

	return newSSEStream(res.Body, decodeGeminiEvent), nil
}

func decodeGeminiEvent(data string) (string, bool, error) {
	var chunk geminiChunk
	if err := json.Unmarshal([]byte(data), &chunk); err != nil {
		return "", false, err
	}
	if len(chunk.Candidates) == 0 {
		return "", false, nil
	}
	parts := chunk.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", false, nil
	}
	return parts[0].Text, false, nil
}
