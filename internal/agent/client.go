// Package agent implements the health plan generation pipeline: research,
// fitness, nutrition, motivation and safety stages coordinated by the
// Orchestrator.  LLM calls go through the Completer interface so stages can
// run against OpenAI, Anthropic, or a stub in tests; every stage keeps a
// deterministic fallback and never fails the pipeline on an LLM error.
package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Completer produces a text completion for a single user prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// OpenAIClient is a REST client for the OpenAI chat completions API.
type OpenAIClient struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64

	httpClient *http.Client
}

// NewOpenAIClient creates a client for the hosted OpenAI API.
func NewOpenAIClient(apiKey, model string, temperature float64) *OpenAIClient {
	return &OpenAIClient{
		BaseURL:     defaultOpenAIBaseURL,
		APIKey:      apiKey,
		Model:       model,
		Temperature: temperature,
		httpClient:  &http.Client{Timeout: 60 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends a single-message chat completion request and returns the
// assistant's reply.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: c.Temperature,
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		if out.Error != nil {
			return "", fmt.Errorf("openai: %s", out.Error.Message)
		}
		return "", fmt.Errorf("openai: unexpected status %s", resp.Status)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("openai: empty choices in response")
	}
	return out.Choices[0].Message.Content, nil
}

const defaultAnthropicBaseURL = "https://api.anthropic.com/v1"

// AnthropicClient is a REST client for the Anthropic messages API.  It is
// wired in as a fallback completer when ANTHROPIC_API_KEY is configured.
type AnthropicClient struct {
	BaseURL string
	APIKey  string
	Model   string

	httpClient *http.Client
}

// NewAnthropicClient creates a client for the hosted Anthropic API.
func NewAnthropicClient(apiKey, model string) *AnthropicClient {
	return &AnthropicClient{
		BaseURL:    defaultAnthropicBaseURL,
		APIKey:     apiKey,
		Model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type anthropicRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	Messages  []chatMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// Complete sends a single-message request and returns the first text block.
func (c *AnthropicClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		maxTokens = 1024 // required by the messages API
	}
	body, err := json.Marshal(anthropicRequest{
		Model:     c.Model,
		MaxTokens: maxTokens,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/messages", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("anthropic: unexpected status %s", resp.Status)
	}
	var out anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	for _, block := range out.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("anthropic: no text block in response")
}

// FallbackCompleter tries the primary completer first and falls back to the
// secondary on any error.  Secondary may be nil.
type FallbackCompleter struct {
	Primary   Completer
	Secondary Completer
}

func (f *FallbackCompleter) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	out, err := f.Primary.Complete(ctx, prompt, maxTokens)
	if err == nil {
		return out, nil
	}
	if f.Secondary == nil {
		return "", err
	}
	return f.Secondary.Complete(ctx, prompt, maxTokens)
}
