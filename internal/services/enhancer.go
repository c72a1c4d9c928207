package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// ContentEnhancer transforms raw document text. Handlers depend on this
// interface only, so a real model can replace the stub without touching them.
type ContentEnhancer interface {
	Enhance(ctx context.Context, text string) (string, error)
}

// StubEnhancer is the placeholder pipeline: a pure string transform.
type StubEnhancer struct{}

func (StubEnhancer) Enhance(_ context.Context, text string) (string, error) {
	return fmt.Sprintf("Processed: %s + AI Magic", text), nil
}

// FromEnv picks the OpenRouter-backed enhancer when a key is configured and
// the stub otherwise.
func FromEnv() ContentEnhancer {
	if os.Getenv("OPENROUTER_KEY") != "" {
		return NewOpenRouterEnhancer()
	}
	return StubEnhancer{}
}

type OpenRouterEnhancer struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

type openRouterRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openRouterResponse struct {
	ID      string   `json:"id"`
	Choices []choice `json:"choices"`
}

type choice struct {
	Message message `json:"message"`
}

func NewOpenRouterEnhancer() *OpenRouterEnhancer {
	return &OpenRouterEnhancer{
		apiKey:  os.Getenv("OPENROUTER_KEY"),
		baseURL: "https://openrouter.ai/api/v1",
		model:   "qwen/qwen-2.5-coder-32b-instruct",
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

const systemPrompt = `You are a legal drafting assistant. Rewrite the provided document text
with clearer structure and standard legal phrasing. Return only the rewritten text.`

// Enhance calls the chat-completions endpoint and falls back to the stub
// transform on any failure, so document creation never blocks on the model.
func (e *OpenRouterEnhancer) Enhance(ctx context.Context, text string) (string, error) {
	req := openRouterRequest{
		Model: e.model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal error: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("create request error: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+e.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return StubEnhancer{}.Enhance(ctx, text)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return StubEnhancer{}.Enhance(ctx, text)
	}

	var orResp openRouterResponse
	if err := json.NewDecoder(resp.Body).Decode(&orResp); err != nil {
		return StubEnhancer{}.Enhance(ctx, text)
	}

	if len(orResp.Choices) == 0 || orResp.Choices[0].Message.Content == "" {
		return StubEnhancer{}.Enhance(ctx, text)
	}

	return orResp.Choices[0].Message.Content, nil
}
