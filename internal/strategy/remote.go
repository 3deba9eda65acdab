package strategy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskdown/taskdown/internal/api"
	"github.com/taskdown/taskdown/pkg/models"
)

var (
	// ErrUnauthorized relabels an authentication rejection from the
	// completion endpoint into a user-legible failure.
	ErrUnauthorized = errors.New("the completion endpoint rejected the API key")
	// ErrRateLimited relabels a rate-limit response.
	ErrRateLimited = errors.New("the completion endpoint is rate limiting requests")
)

// Remote is the language-model breakdown strategy. It builds a prompt from
// the task descriptor, calls a completion endpoint through a Completer,
// and validates the returned JSON into the same breakdown shape the
// template strategy produces. Retry on transient transport failures lives
// in the transport client; content-validation failures are never retried.
type Remote struct {
	completer api.Completer
}

// NewRemote creates the remote strategy around a transport client.
func NewRemote(completer api.Completer) *Remote {
	return &Remote{completer: completer}
}

// Name identifies the strategy.
func (r *Remote) Name() string {
	return "remote"
}

// Analyze prompts the model and validates its reply into a breakdown.
// Partial breakdowns are never returned: any invalid step fails the call.
func (r *Remote) Analyze(ctx context.Context, task models.TaskDescriptor) (*models.Breakdown, error) {
	userPrompt := fmt.Sprintf(userPromptTemplate, task.Description, task.Category, task.Scope)

	content, err := r.completer.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, relabel(err)
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyResponse
	}

	steps, err := parseSteps(content)
	if err != nil {
		return nil, err
	}

	log.Printf("[remote] model returned %d steps for category %s", len(steps), task.Category)

	return &models.Breakdown{
		ID:              uuid.New().String(),
		TaskDescription: task.Description,
		Steps:           steps,
		CreatedAt:       time.Now(),
	}, nil
}

// rawStep is the JSON shape the model is instructed to return. ID and
// Files are loosely typed so shape violations surface as step-validation
// failures rather than parse failures.
type rawStep struct {
	ID          any    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Files       []any  `json:"files"`
}

// parseSteps extracts, parses, and validates the steps array from the
// model's reply. Validated steps are renumbered from 1 so the breakdown
// invariant holds regardless of the ids the model chose.
func parseSteps(content string) ([]models.Step, error) {
	// Tolerate prose around the JSON object by slicing to the outermost braces.
	jsonStart := strings.Index(content, "{")
	jsonEnd := strings.LastIndex(content, "}")
	if jsonStart == -1 || jsonEnd == -1 || jsonEnd <= jsonStart {
		return nil, fmt.Errorf("%w: no JSON object found in %q", ErrMalformedResponse, snippet(content))
	}

	var parsed struct {
		Steps []rawStep `json:"steps"`
	}
	if err := json.Unmarshal([]byte(content[jsonStart:jsonEnd+1]), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if len(parsed.Steps) == 0 {
		return nil, models.ErrNoSteps
	}

	steps := make([]models.Step, len(parsed.Steps))
	for i, raw := range parsed.Steps {
		if _, ok := raw.ID.(float64); !ok {
			return nil, fmt.Errorf("%w: step %d has a non-numeric id %v", ErrInvalidStep, i+1, raw.ID)
		}
		title := strings.TrimSpace(raw.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: step %d has an empty title", ErrInvalidStep, i+1)
		}
		description := strings.TrimSpace(raw.Description)
		if description == "" {
			return nil, fmt.Errorf("%w: step %d has an empty description", ErrInvalidStep, i+1)
		}

		files := make([]string, 0, len(raw.Files))
		for _, f := range raw.Files {
			if path, ok := f.(string); ok {
				files = append(files, path)
			}
			// Non-string entries are dropped, not treated as errors.
		}

		steps[i] = models.Step{
			ID:          i + 1,
			Title:       title,
			Description: description,
			Files:       files,
		}
	}

	return steps, nil
}

// relabel translates authentication and rate-limit failures into distinct
// user-legible errors, wrapping the original.
func relabel(err error) error {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.StatusCode == 401 || statusErr.StatusCode == 403:
			return fmt.Errorf("%w: %v", ErrUnauthorized, err)
		case statusErr.StatusCode == 429:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
	}
	lower := strings.ToLower(err.Error())
	switch {
	case strings.Contains(lower, "invalid api key"), strings.Contains(lower, "unauthorized"), strings.Contains(lower, "authentication"):
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	case strings.Contains(lower, "rate limit"):
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	}
	return err
}

func snippet(s string) string {
	if len(s) > 120 {
		return s[:120] + "..."
	}
	return s
}
