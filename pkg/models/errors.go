package models

import "errors"

var (
	// ErrNoSteps indicates a breakdown with an empty step list.
	ErrNoSteps = errors.New("breakdown contains no steps")
	// ErrStepOrder indicates step IDs that do not run contiguously from 1.
	ErrStepOrder = errors.New("step ids are not contiguous from 1")
)
