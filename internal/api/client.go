// Package api provides the transport clients the remote breakdown strategy
// calls: an OpenAI-compatible chat-completions client and an Anthropic
// client, behind a shared Completer interface and a shared retry policy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Completer produces a model completion for a system/user prompt pair and
// returns the raw message content. Implementations are safe for concurrent
// use; configuration is fixed at construction.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// StatusError is an HTTP error response from a completion endpoint.
// 5xx responses are temporary and eligible for retry; 4xx responses are
// terminal and surfaced immediately.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error returns a description including the status code.
func (e *StatusError) Error() string {
	return fmt.Sprintf("completion endpoint returned status %d: %s", e.StatusCode, truncate(e.Body, 200))
}

// Temporary reports whether the error is worth retrying.
func (e *StatusError) Temporary() bool {
	return e.StatusCode >= 500
}

// ChatConfig contains configuration for creating a ChatClient.
type ChatConfig struct {
	// BaseURL is the endpoint root, e.g. "https://api.openai.com/v1".
	BaseURL string
	// APIKey is sent as a bearer token on every request.
	APIKey string
	// Model is the model identifier to request.
	Model string
	// MaxRetries bounds retries on transient failures. Defaults to 3.
	MaxRetries int
	// Timeout is the per-attempt timeout. Defaults to 30s.
	Timeout time.Duration
	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
	// Sleep overrides the backoff sleep, mainly for tests.
	Sleep func(time.Duration)
}

// ChatClient calls an OpenAI-compatible chat-completions endpoint,
// requesting the provider's JSON output mode.
type ChatClient struct {
	baseURL    string
	apiKey     string
	model      string
	timeout    time.Duration
	httpClient *http.Client
	retry      RetryPolicy
}

// NewChatClient creates a chat-completions client.
func NewChatClient(cfg ChatConfig) *ChatClient {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &ChatClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		timeout:    cfg.Timeout,
		httpClient: httpClient,
		retry: RetryPolicy{
			MaxRetries:  cfg.MaxRetries,
			IsRetryable: IsRetryable,
			Backoff:     ExponentialBackoff,
			Sleep:       cfg.Sleep,
		},
	}
}

// Model returns the configured model identifier.
func (c *ChatClient) Model() string {
	return c.model
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete posts the prompt pair to the chat-completions endpoint and
// returns the first choice's message content. Transient failures (5xx or
// no response at all) are retried with exponential backoff; 4xx responses
// are terminal.
func (c *ChatClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	req := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}
	req.ResponseFormat.Type = "json_object"

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	var content string
	err = c.retry.Do(ctx, "chat completion", func() error {
		var attemptErr error
		content, attemptErr = c.post(ctx, body)
		return attemptErr
	})
	if err != nil {
		return "", err
	}
	return content, nil
}

// post performs a single attempt against the endpoint.
func (c *ChatClient) post(ctx context.Context, body []byte) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("post chat completion: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", nil
	}
	return parsed.Choices[0].Message.Content, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
