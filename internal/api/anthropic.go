package api

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/bedrock"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/aws/aws-sdk-go-v2/config"
)

// AnthropicConfig contains configuration for creating an AnthropicClient.
type AnthropicConfig struct {
	// APIKey is the Anthropic API key. Required unless UseAWSBedrock is set.
	APIKey string
	// Model is the Claude model to use. Defaults to Claude Sonnet.
	Model string
	// UseAWSBedrock routes requests through AWS Bedrock instead of the
	// direct API, authenticating with the default AWS credential chain.
	UseAWSBedrock bool
	// AWSRegion is the AWS region for Bedrock (e.g., "us-west-2").
	AWSRegion string
	// AWSProfile is the optional AWS profile name to use.
	AWSProfile string
	// MaxRetries bounds retries on transient failures. Defaults to 3.
	MaxRetries int
	// Timeout is the per-attempt timeout. Defaults to 30s.
	Timeout time.Duration
	// Sleep overrides the backoff sleep, mainly for tests.
	Sleep func(time.Duration)
}

// AnthropicClient is a Completer backed by the Anthropic SDK.
type AnthropicClient struct {
	inner   anthropic.Client
	model   anthropic.Model
	timeout time.Duration
	retry   RetryPolicy
}

// NewAnthropicClient creates an Anthropic-backed completion client.
func NewAnthropicClient(cfg AnthropicConfig) (*AnthropicClient, error) {
	var opts []option.RequestOption

	if cfg.UseAWSBedrock {
		ctx := context.Background()

		var loadOpts []func(*config.LoadOptions) error
		if cfg.AWSRegion != "" {
			loadOpts = append(loadOpts, config.WithRegion(cfg.AWSRegion))
		}
		if cfg.AWSProfile != "" {
			loadOpts = append(loadOpts, config.WithSharedConfigProfile(cfg.AWSProfile))
		}

		opts = append(opts, bedrock.WithLoadDefaultConfig(ctx, loadOpts...))
	} else {
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("anthropic API key is required")
		}
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}

	model := anthropic.Model(cfg.Model)
	if model == "" {
		model = anthropic.ModelClaudeSonnet4_20250514
	}

	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	// The SDK has its own retry layer; disable it so the policy here is
	// the only one in play and stays unit-testable.
	opts = append(opts, option.WithMaxRetries(0))

	return &AnthropicClient{
		inner:   anthropic.NewClient(opts...),
		model:   model,
		timeout: cfg.Timeout,
		retry: RetryPolicy{
			MaxRetries:  cfg.MaxRetries,
			IsRetryable: IsRetryable,
			Backoff:     ExponentialBackoff,
			Sleep:       cfg.Sleep,
		},
	}, nil
}

// Model returns the configured model identifier.
func (c *AnthropicClient) Model() string {
	return string(c.model)
}

// Complete sends the prompt pair to the Messages API and returns the
// concatenated text content. SDK errors are normalized to StatusError so
// the shared retry classification applies.
func (c *AnthropicClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	var content string
	err := c.retry.Do(ctx, "anthropic completion", func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		resp, err := c.inner.Messages.New(attemptCtx, anthropic.MessageNewParams{
			Model:     c.model,
			MaxTokens: 4096,
			System: []anthropic.TextBlockParam{
				{Text: systemPrompt},
			},
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
			},
		})
		if err != nil {
			return normalizeSDKError(err)
		}

		var result strings.Builder
		for _, block := range resp.Content {
			if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
				result.WriteString(variant.Text)
			}
		}
		content = result.String()
		return nil
	})
	if err != nil {
		return "", err
	}
	return content, nil
}

// normalizeSDKError maps Anthropic SDK errors onto StatusError so 4xx/5xx
// classification matches the HTTP client. Non-API errors pass through as
// network-level failures.
func normalizeSDKError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return &StatusError{StatusCode: apiErr.StatusCode, Body: apiErr.Error()}
	}
	return err
}
