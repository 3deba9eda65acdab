// Package strategy provides interchangeable breakdown strategies: a
// deterministic template strategy and a remote language-model strategy.
package strategy

import (
	"context"
	"errors"

	"github.com/taskdown/taskdown/pkg/models"
)

// Strategy turns a task descriptor into an ordered breakdown. Analyze must
// not mutate the descriptor, and must either return a well-formed breakdown
// or an error; it never returns an empty step list silently. Implementations
// are safe for concurrent use: they hold no per-call state beyond their
// immutable configuration.
type Strategy interface {
	// Name identifies the strategy in logs and CLI output.
	Name() string
	// Analyze produces a breakdown for the task. The context bounds any
	// blocking work; the template strategy completes without suspending.
	Analyze(ctx context.Context, task models.TaskDescriptor) (*models.Breakdown, error)
}

var (
	// ErrMissingAPIKey indicates the remote strategy was constructed
	// without a credential. Fatal at construction time, never retried.
	ErrMissingAPIKey = errors.New("remote strategy requires an API key (set OPENAI_API_KEY or remote.api_key in config)")
	// ErrEmptyResponse indicates the model reply carried no content.
	ErrEmptyResponse = errors.New("model returned an empty response")
	// ErrMalformedResponse indicates the model reply was not valid JSON
	// in the requested shape.
	ErrMalformedResponse = errors.New("model returned a malformed response")
	// ErrInvalidStep indicates a step in the model reply failed validation.
	ErrInvalidStep = errors.New("model returned an invalid step")
)
