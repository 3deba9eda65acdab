package format

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/taskdown/taskdown/pkg/models"
)

var testTask = models.TaskDescriptor{
	Description: "Create CRUD endpoints for products",
	Category:    models.CategoryCRUD,
	Scope:       "products",
}

var testBreakdown = &models.Breakdown{
	ID:              "test-id",
	TaskDescription: "Create CRUD endpoints for products",
	Steps: []models.Step{
		{ID: 1, Title: "Define the model", Description: "Create the products model.", Files: []string{"src/models/products.js"}},
		{ID: 2, Title: "Wire the routes", Description: "Register REST routes.", Files: []string{}},
	},
}

func TestRender(t *testing.T) {
	out := Render(testTask, testBreakdown)

	for _, want := range []string{
		"Create CRUD endpoints for products",
		"CRUD",
		"scope: products",
		"1.",
		"Define the model",
		"Create the products model.",
		"src/models/products.js",
		"2.",
		"Wire the routes",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderOmitsEmptyScope(t *testing.T) {
	task := testTask
	task.Scope = ""
	out := Render(task, testBreakdown)
	if strings.Contains(out, "scope:") {
		t.Errorf("rendered output should omit empty scope:\n%s", out)
	}
}

func TestRenderJSON(t *testing.T) {
	out, err := RenderJSON(testBreakdown)
	if err != nil {
		t.Fatalf("RenderJSON returned error: %v", err)
	}

	var decoded models.Breakdown
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.ID != testBreakdown.ID {
		t.Errorf("decoded id = %q, want %q", decoded.ID, testBreakdown.ID)
	}
	if len(decoded.Steps) != 2 {
		t.Errorf("decoded %d steps, want 2", len(decoded.Steps))
	}
	if decoded.Steps[0].Title != "Define the model" {
		t.Errorf("decoded first step title = %q", decoded.Steps[0].Title)
	}
}
