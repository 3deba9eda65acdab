// Package format renders breakdowns for terminal and machine consumption.
package format

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskdown/taskdown/pkg/models"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	categoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("12")).
			Padding(0, 1)

	scopeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6"))

	stepNumStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	stepTitleStyle = lipgloss.NewStyle().
			Bold(true)

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// Render produces the human-readable terminal rendering of a breakdown.
func Render(task models.TaskDescriptor, b *models.Breakdown) string {
	var out strings.Builder

	out.WriteString(headerStyle.Render(b.TaskDescription))
	out.WriteString("\n")
	out.WriteString(categoryStyle.Render(string(task.Category)))
	if task.Scope != "" {
		out.WriteString("  ")
		out.WriteString(scopeStyle.Render("scope: " + task.Scope))
	}
	out.WriteString("\n\n")

	for _, step := range b.Steps {
		out.WriteString(stepNumStyle.Render(fmt.Sprintf("%d.", step.ID)))
		out.WriteString(" ")
		out.WriteString(stepTitleStyle.Render(step.Title))
		out.WriteString("\n   ")
		out.WriteString(step.Description)
		out.WriteString("\n")
		for _, file := range step.Files {
			out.WriteString("   ")
			out.WriteString(fileStyle.Render("• " + file))
			out.WriteString("\n")
		}
		out.WriteString("\n")
	}

	return strings.TrimRight(out.String(), "\n") + "\n"
}

// RenderJSON produces the machine-readable rendering of a breakdown.
func RenderJSON(b *models.Breakdown) (string, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode breakdown: %w", err)
	}
	return string(data), nil
}
