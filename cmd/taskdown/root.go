package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/taskdown/taskdown/internal/classify"
	"github.com/taskdown/taskdown/internal/config"
	"github.com/taskdown/taskdown/internal/format"
	"github.com/taskdown/taskdown/internal/orchestrator"
	"github.com/taskdown/taskdown/internal/strategy"
	"github.com/taskdown/taskdown/pkg/models"
)

var (
	useAI         bool
	modelOverride string
	scopeOverride string
	jsonOutput    bool
)

var rootCmd = &cobra.Command{
	Use:   "taskdown <task description>",
	Short: "Break a development task into actionable steps",
	Long: `Taskdown classifies a free-text development task (CRUD, authentication,
refactor, feature, bugfix) and produces an ordered list of actionable steps
with candidate file paths.

By default the breakdown comes from deterministic per-category templates.
With --ai, the task is sent to a remote language model instead; configure it
via OPENAI_API_KEY / ANTHROPIC_API_KEY, a .taskdown.json in the project, or
~/.config/taskdown/config.json.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBreakdown(cmd.Context(), strings.Join(args, " "))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&useAI, "ai", false, "Use the remote language model instead of templates")
	rootCmd.Flags().StringVar(&modelOverride, "model", "", "Override the configured model identifier")
	rootCmd.Flags().StringVar(&scopeOverride, "scope", "", "Override the detected scope")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the breakdown as JSON")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// runBreakdown is the full pipeline: classify, select a strategy, analyze,
// format. Strategy errors surface unchanged; the exit status comes from
// Execute.
func runBreakdown(ctx context.Context, text string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	task := classify.Classify(text)
	if scopeOverride != "" {
		task.Scope = scopeOverride
	}

	var selected strategy.Strategy
	if useAI {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		remote, err := buildRemoteStrategy(cfg)
		if err != nil {
			return err
		}
		selected = remote
	} else {
		selected = strategy.NewTemplate()
	}

	orch := orchestrator.New(selected)
	breakdown, err := orch.Analyze(ctx, task)
	if err != nil {
		return err
	}

	return printBreakdown(task, breakdown)
}

func printBreakdown(task models.TaskDescriptor, breakdown *models.Breakdown) error {
	if jsonOutput {
		out, err := format.RenderJSON(breakdown)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}
	fmt.Print(format.Render(task, breakdown))
	return nil
}
