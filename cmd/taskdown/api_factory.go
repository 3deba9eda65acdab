package main

import (
	"fmt"

	"github.com/taskdown/taskdown/internal/api"
	"github.com/taskdown/taskdown/internal/config"
	"github.com/taskdown/taskdown/internal/strategy"
)

// buildRemoteStrategy constructs the remote strategy for the configured
// provider. Construction fails with a configuration error when no usable
// credential was resolved.
func buildRemoteStrategy(cfg *config.Config) (*strategy.Remote, error) {
	switch cfg.Remote.Provider {
	case "anthropic":
		if cfg.Anthropic.APIKey == "" && !cfg.Anthropic.UseBedrock {
			return nil, strategy.ErrMissingAPIKey
		}
		model := cfg.Anthropic.Model
		if modelOverride != "" {
			model = modelOverride
		}
		client, err := api.NewAnthropicClient(api.AnthropicConfig{
			APIKey:        cfg.Anthropic.APIKey,
			Model:         model,
			UseAWSBedrock: cfg.Anthropic.UseBedrock,
			AWSRegion:     cfg.Anthropic.AWSRegion,
			AWSProfile:    cfg.Anthropic.AWSProfile,
			MaxRetries:    cfg.Remote.MaxRetries,
			Timeout:       cfg.Remote.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("create anthropic client: %w", err)
		}
		return strategy.NewRemote(client), nil

	case "openai", "":
		if cfg.Remote.APIKey == "" {
			return nil, strategy.ErrMissingAPIKey
		}
		model := cfg.Remote.Model
		if modelOverride != "" {
			model = modelOverride
		}
		client := api.NewChatClient(api.ChatConfig{
			BaseURL:    cfg.Remote.BaseURL,
			APIKey:     cfg.Remote.APIKey,
			Model:      model,
			MaxRetries: cfg.Remote.MaxRetries,
			Timeout:    cfg.Remote.Timeout,
		})
		return strategy.NewRemote(client), nil

	default:
		return nil, fmt.Errorf("unknown remote provider %q (expected \"openai\" or \"anthropic\")", cfg.Remote.Provider)
	}
}
