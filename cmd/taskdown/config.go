package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskdown/taskdown/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show resolved configuration",
	Long: `Display the resolved configuration and where it came from.

Configuration is read from ~/.config/taskdown/config.json, with
project-specific overrides in .taskdown.json and environment variables
(OPENAI_API_KEY, OPENAI_MODEL, OPENAI_BASE_URL, ANTHROPIC_API_KEY) taking
precedence.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		displayConfig(cfg)
	},
}

// displayConfig prints all configuration values, masking credentials.
func displayConfig(cfg *config.Config) {
	fmt.Printf("remote.provider: %s\n", cfg.Remote.Provider)
	fmt.Printf("remote.api_key: %s\n", maskKey(cfg.Remote.APIKey))
	fmt.Printf("remote.model: %s\n", cfg.Remote.Model)
	fmt.Printf("remote.base_url: %s\n", cfg.Remote.BaseURL)
	fmt.Printf("remote.max_retries: %d\n", cfg.Remote.MaxRetries)
	fmt.Printf("remote.timeout: %s\n", cfg.Remote.Timeout)
	fmt.Printf("anthropic.api_key: %s\n", maskKey(cfg.Anthropic.APIKey))
	fmt.Printf("anthropic.model: %s\n", cfg.Anthropic.Model)
	fmt.Printf("anthropic.use_bedrock: %t\n", cfg.Anthropic.UseBedrock)

	fmt.Printf("\nuser config: %s\n", config.GetUserConfigPath())
	if project := config.GetProjectConfigPath(); project != "" {
		fmt.Printf("project config: %s\n", project)
	}
}

func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	return "****"
}
