// Package models provides shared value types for the taskdown pipeline.
package models

import "time"

// TaskCategory is the coarse classification of a development task.
type TaskCategory string

const (
	// CategoryCRUD indicates create/read/update/delete work on an entity.
	CategoryCRUD TaskCategory = "CRUD"
	// CategoryAuthentication indicates login/registration/session work.
	CategoryAuthentication TaskCategory = "AUTHENTICATION"
	// CategoryRefactor indicates restructuring without behavior change.
	CategoryRefactor TaskCategory = "REFACTOR"
	// CategoryFeature indicates new functionality.
	CategoryFeature TaskCategory = "FEATURE"
	// CategoryBugfix indicates fixing a defect.
	CategoryBugfix TaskCategory = "BUGFIX"
	// CategoryOther is the fallback when no rule matches.
	CategoryOther TaskCategory = "OTHER"
)

// Valid returns true if the category is a known value.
func (c TaskCategory) Valid() bool {
	switch c {
	case CategoryCRUD, CategoryAuthentication, CategoryRefactor,
		CategoryFeature, CategoryBugfix, CategoryOther:
		return true
	default:
		return false
	}
}

// String returns the category as a string.
func (c TaskCategory) String() string {
	return string(c)
}

// TaskDescriptor is the structured form of a raw task description.
// It is created once by the classifier and never mutated afterward;
// strategies receive it by value.
type TaskDescriptor struct {
	// Description is the original task text.
	Description string `json:"description"`
	// Category is the classified task category.
	Category TaskCategory `json:"category"`
	// Scope names the affected code area, if one was detected. May be empty.
	Scope string `json:"scope,omitempty"`
}

// Step is a single actionable item in a breakdown.
type Step struct {
	// ID is the 1-based position of the step within its breakdown.
	ID int `json:"id"`
	// Title is a short summary of the step.
	Title string `json:"title"`
	// Description explains what the step involves.
	Description string `json:"description"`
	// Files lists candidate file paths the step is expected to touch.
	Files []string `json:"files"`
}

// Breakdown is the full output of analyzing one task: the originating
// description plus an ordered list of steps. Step IDs are unique and
// match their 1-based position.
type Breakdown struct {
	// ID uniquely identifies this breakdown, for logging and output.
	ID string `json:"id"`
	// TaskDescription is a copy of the text the breakdown was generated from.
	TaskDescription string `json:"task_description"`
	// Steps is the ordered step list. Never empty for a well-formed breakdown.
	Steps []Step `json:"steps"`
	// CreatedAt is when the breakdown was produced.
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the breakdown invariants: at least one step, and step
// IDs contiguous from 1 matching their position.
func (b *Breakdown) Validate() error {
	if len(b.Steps) == 0 {
		return ErrNoSteps
	}
	for i, step := range b.Steps {
		if step.ID != i+1 {
			return ErrStepOrder
		}
	}
	return nil
}
