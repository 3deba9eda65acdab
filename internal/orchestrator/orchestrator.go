// Package orchestrator decouples callers from the concrete breakdown
// strategy. It is a pure dependency-injection point: it adds no behavior
// of its own.
package orchestrator

import (
	"context"

	"github.com/taskdown/taskdown/internal/strategy"
	"github.com/taskdown/taskdown/pkg/models"
)

// Orchestrator holds exactly one strategy instance and invokes it
// uniformly. Strategy errors propagate unchanged.
type Orchestrator struct {
	strategy strategy.Strategy
}

// New creates an orchestrator around the given strategy. A nil strategy
// defaults to the template strategy.
func New(s strategy.Strategy) *Orchestrator {
	if s == nil {
		s = strategy.NewTemplate()
	}
	return &Orchestrator{strategy: s}
}

// StrategyName returns the name of the held strategy.
func (o *Orchestrator) StrategyName() string {
	return o.strategy.Name()
}

// Analyze delegates to the held strategy.
func (o *Orchestrator) Analyze(ctx context.Context, task models.TaskDescriptor) (*models.Breakdown, error) {
	return o.strategy.Analyze(ctx, task)
}
