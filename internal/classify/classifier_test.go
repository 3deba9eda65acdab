package classify

import (
	"testing"

	"github.com/taskdown/taskdown/pkg/models"
)

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.TaskCategory
	}{
		{"crud create", "Create CRUD endpoints for products", models.CategoryCRUD},
		{"crud delete", "delete stale sessions from the store", models.CategoryCRUD},
		{"crud whole word only", "creatively improve code in the parser", models.CategoryRefactor},
		{"auth keyword", "Add authentication to the app", models.CategoryAuthentication},
		{"login keyword", "the login page is broken", models.CategoryAuthentication},
		{"signup keyword", "signup flow needs a captcha", models.CategoryAuthentication},
		{"refactor keyword", "Refactor the payment module", models.CategoryRefactor},
		{"clean up phrase", "clean up the utils package", models.CategoryRefactor},
		{"feature keyword", "implement dark mode", models.CategoryFeature},
		{"support keyword", "support exporting reports as CSV", models.CategoryFeature},
		{"bugfix keyword", "there's an off-by-one defect in pagination", models.CategoryBugfix},
		{"patch keyword", "patch the date parser", models.CategoryBugfix},
		{"no keyword", "Investigate performance of the dashboard", models.CategoryOther},
		{"empty text", "", models.CategoryOther},
		{"case insensitive", "REFACTOR THE PARSER", models.CategoryRefactor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text)
			if got.Category != tt.want {
				t.Errorf("Classify(%q).Category = %s, want %s", tt.text, got.Category, tt.want)
			}
			if !got.Category.Valid() {
				t.Errorf("Classify(%q) returned unknown category %q", tt.text, got.Category)
			}
		})
	}
}

// First-match-wins ordering is a behavioral contract: a text matching
// several rules must classify by the earliest rule.
func TestDetectCategoryFirstMatchWins(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.TaskCategory
	}{
		{"crud beats auth", "create the login audit table", models.CategoryCRUD},
		{"auth beats feature", "add authentication middleware", models.CategoryAuthentication},
		{"refactor beats bugfix", "refactor the error handling", models.CategoryRefactor},
		{"feature beats bugfix", "add a fix-up pass for imports", models.CategoryFeature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text)
			if got.Category != tt.want {
				t.Errorf("Classify(%q).Category = %s, want %s", tt.text, got.Category, tt.want)
			}
		})
	}
}

func TestExtractScope(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"preposition for", "Create CRUD endpoints for products", "products"},
		{"preposition in", "fix the typo in the billing service", "billing service"},
		{"preposition to", "Add authentication to the app", "app"},
		{"entity kind first", "rewrite function parseDate", "function parseDate"},
		{"entity noun phrase", "Refactor the payment module", "payment module"},
		{"component noun phrase", "update the checkout component", "checkout component"},
		{"no scope", "Investigate performance issues", ""},
		{"empty text", "", ""},
		{"trailing punctuation trimmed", "add rate limiting for uploads.", "uploads"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text)
			if got.Scope != tt.want {
				t.Errorf("Classify(%q).Scope = %q, want %q", tt.text, got.Scope, tt.want)
			}
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	text := "Refactor the payment module"
	first := Classify(text)
	for i := 0; i < 5; i++ {
		if got := Classify(text); got != first {
			t.Fatalf("Classify(%q) is not deterministic: %+v != %+v", text, got, first)
		}
	}
	if first.Description != text {
		t.Errorf("descriptor description = %q, want original text %q", first.Description, text)
	}
}
