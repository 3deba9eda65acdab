package models

import (
	"errors"
	"testing"
)

func TestTaskCategoryValid(t *testing.T) {
	valid := []TaskCategory{
		CategoryCRUD, CategoryAuthentication, CategoryRefactor,
		CategoryFeature, CategoryBugfix, CategoryOther,
	}
	for _, c := range valid {
		if !c.Valid() {
			t.Errorf("expected %s to be valid", c)
		}
	}

	if TaskCategory("NONSENSE").Valid() {
		t.Error("expected NONSENSE to be invalid")
	}
	if TaskCategory("").Valid() {
		t.Error("expected empty category to be invalid")
	}
}

func TestBreakdownValidate(t *testing.T) {
	tests := []struct {
		name    string
		steps   []Step
		wantErr error
	}{
		{
			"valid single step",
			[]Step{{ID: 1, Title: "a", Description: "b"}},
			nil,
		},
		{
			"valid multiple steps",
			[]Step{{ID: 1}, {ID: 2}, {ID: 3}},
			nil,
		},
		{
			"no steps",
			nil,
			ErrNoSteps,
		},
		{
			"gap in ids",
			[]Step{{ID: 1}, {ID: 3}},
			ErrStepOrder,
		},
		{
			"does not start at 1",
			[]Step{{ID: 2}, {ID: 3}},
			ErrStepOrder,
		},
		{
			"duplicate ids",
			[]Step{{ID: 1}, {ID: 1}},
			ErrStepOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Breakdown{TaskDescription: "t", Steps: tt.steps}
			err := b.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
