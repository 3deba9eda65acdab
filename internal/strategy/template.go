package strategy

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/taskdown/taskdown/pkg/models"
)

// Template is the deterministic breakdown strategy. It dispatches on the
// task category to a fixed step skeleton and substitutes the task scope
// into titles, descriptions, and file paths. It performs no I/O and never
// fails: every input yields a non-empty breakdown.
type Template struct{}

// NewTemplate creates the template strategy.
func NewTemplate() *Template {
	return &Template{}
}

// Name identifies the strategy.
func (t *Template) Name() string {
	return "template"
}

// Analyze builds a breakdown from the per-category step skeleton.
func (t *Template) Analyze(_ context.Context, task models.TaskDescriptor) (*models.Breakdown, error) {
	scope, slug := resolveScope(task)

	var steps []models.Step
	switch task.Category {
	case models.CategoryCRUD:
		steps = crudSteps(scope, slug)
	case models.CategoryAuthentication:
		steps = authenticationSteps()
	case models.CategoryRefactor:
		steps = refactorSteps(scope, slug)
	case models.CategoryFeature:
		steps = featureSteps(scope, slug)
	case models.CategoryBugfix:
		steps = bugfixSteps(scope, slug)
	default:
		steps = otherSteps(scope, slug)
	}

	return &models.Breakdown{
		ID:              uuid.New().String(),
		TaskDescription: task.Description,
		Steps:           steps,
		CreatedAt:       time.Now(),
	}, nil
}

// scopeFallbacks supplies a category-specific scope word when the
// classifier found none. OTHER derives its fallback from the description.
var scopeFallbacks = map[models.TaskCategory]string{
	models.CategoryCRUD:           "resource",
	models.CategoryAuthentication: "auth",
	models.CategoryRefactor:       "code",
	models.CategoryFeature:        "feature",
	models.CategoryBugfix:         "bug",
}

// resolveScope returns the display scope (raw text, for titles and
// descriptions) and its slug (for file paths).
func resolveScope(task models.TaskDescriptor) (scope, slug string) {
	scope = strings.TrimSpace(task.Scope)
	if scope == "" {
		if fallback, ok := scopeFallbacks[task.Category]; ok {
			scope = fallback
		} else {
			scope = firstToken(task.Description, 20)
			if scope == "" {
				scope = "task"
			}
		}
	}
	return scope, Slugify(scope)
}

// firstToken returns the first letter/digit-delimited token of text,
// truncated to maxLen characters.
func firstToken(text string, maxLen int) string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(fields) == 0 {
		return ""
	}
	token := fields[0]
	if len(token) > maxLen {
		token = token[:maxLen]
	}
	return token
}

// step builds a single step. Callers number steps from 1 in order.
func step(id int, title, description string, files ...string) models.Step {
	if files == nil {
		files = []string{}
	}
	return models.Step{ID: id, Title: title, Description: description, Files: files}
}

func crudSteps(scope, slug string) []models.Step {
	return []models.Step{
		step(1, fmt.Sprintf("Define the %s data model", scope),
			fmt.Sprintf("Create the data model for %s with its fields, types, and constraints.", scope),
			fmt.Sprintf("src/models/%s.js", slug)),
		step(2, fmt.Sprintf("Implement the %s controller", scope),
			fmt.Sprintf("Add create, read, update, and delete handlers for %s.", scope),
			fmt.Sprintf("src/controllers/%s.controller.js", slug)),
		step(3, fmt.Sprintf("Register %s routes", scope),
			fmt.Sprintf("Wire the controller handlers to REST routes for %s.", scope),
			fmt.Sprintf("src/routes/%s.routes.js", slug)),
		step(4, "Add input validation",
			fmt.Sprintf("Validate request payloads for every %s operation before they reach the controller.", scope),
			fmt.Sprintf("src/validators/%s.validator.js", slug)),
		step(5, fmt.Sprintf("Write %s tests", scope),
			fmt.Sprintf("Cover each CRUD operation on %s, including validation failures and missing records.", scope),
			fmt.Sprintf("tests/%s.test.js", slug)),
		step(6, "Document the endpoints",
			fmt.Sprintf("Describe the %s endpoints, request shapes, and response codes.", scope),
			fmt.Sprintf("docs/%s.md", slug)),
	}
}

// authenticationSteps uses fixed paths: authentication is a whole-system
// concern, not scoped to a single entity.
func authenticationSteps() []models.Step {
	return []models.Step{
		step(1, "Create User model with password field",
			"Define the user model with a unique identifier, email, and a field for the hashed password.",
			"src/models/user.js"),
		step(2, "Add password hashing",
			"Hash passwords with a salted adaptive algorithm before storage; never store plain text.",
			"src/utils/hash.js"),
		step(3, "Implement the registration endpoint",
			"Accept new user signups, validate the payload, and persist the user with a hashed password.",
			"src/controllers/auth.controller.js", "src/routes/auth.routes.js"),
		step(4, "Implement the login endpoint",
			"Verify credentials and issue a signed session token on success.",
			"src/controllers/auth.controller.js", "src/utils/token.js"),
		step(5, "Add authentication middleware",
			"Check the session token on incoming requests and attach the authenticated user.",
			"src/middleware/auth.js"),
		step(6, "Protect existing routes",
			"Apply the authentication middleware to routes that require a signed-in user.",
			"src/routes/"),
		step(7, "Write authentication tests",
			"Cover registration, login, token expiry, and rejected access to protected routes.",
			"tests/auth.test.js"),
	}
}

func refactorSteps(scope, slug string) []models.Step {
	return []models.Step{
		step(1, fmt.Sprintf("Review the current %s implementation", scope),
			fmt.Sprintf("Read through %s and note duplication, unclear naming, and tangled responsibilities.", scope)),
		step(2, "Add characterization tests",
			fmt.Sprintf("Lock in the current behavior of %s with tests before changing anything.", scope),
			fmt.Sprintf("tests/%s.test.js", slug)),
		step(3, fmt.Sprintf("Refactor %s incrementally", scope),
			"Apply one small, reversible change at a time, keeping the tests green between changes."),
		step(4, "Verify behavior is unchanged",
			"Run the full test suite and compare observable behavior against the pre-refactor baseline."),
		step(5, "Update documentation",
			fmt.Sprintf("Reflect the new structure of %s in any affected docs and comments.", scope),
			fmt.Sprintf("docs/%s.md", slug)),
	}
}

func featureSteps(scope, slug string) []models.Step {
	return []models.Step{
		step(1, fmt.Sprintf("Outline the %s design", scope),
			fmt.Sprintf("Sketch the data, interfaces, and user-facing behavior for %s before writing code.", scope)),
		step(2, "Extend the data model",
			fmt.Sprintf("Add or modify the models that %s needs.", scope),
			fmt.Sprintf("src/models/%s.js", slug)),
		step(3, fmt.Sprintf("Implement the %s logic", scope),
			fmt.Sprintf("Build the core behavior of %s as an isolated service.", scope),
			fmt.Sprintf("src/services/%s.service.js", slug)),
		step(4, "Expose the feature",
			fmt.Sprintf("Surface %s through the application's routes or UI entry points.", scope),
			fmt.Sprintf("src/routes/%s.routes.js", slug)),
		step(5, fmt.Sprintf("Write %s tests", scope),
			fmt.Sprintf("Cover the main flows and edge cases of %s.", scope),
			fmt.Sprintf("tests/%s.test.js", slug)),
		step(6, "Document the feature",
			fmt.Sprintf("Explain how to use and configure %s.", scope),
			fmt.Sprintf("docs/%s.md", slug)),
	}
}

func bugfixSteps(scope, slug string) []models.Step {
	return []models.Step{
		step(1, "Reproduce the bug",
			fmt.Sprintf("Write a failing test or minimal repro that demonstrates the problem in %s.", scope),
			fmt.Sprintf("tests/%s.test.js", slug)),
		step(2, "Locate the root cause",
			fmt.Sprintf("Trace the failure in %s to the specific code responsible, not just the symptom.", scope)),
		step(3, "Apply the fix",
			fmt.Sprintf("Change the faulty code in %s, keeping the fix as narrow as the root cause allows.", scope)),
		step(4, "Add a regression test",
			"Keep the repro as a permanent test so the bug cannot silently return.",
			fmt.Sprintf("tests/%s.test.js", slug)),
	}
}

func otherSteps(scope, slug string) []models.Step {
	return []models.Step{
		step(1, fmt.Sprintf("Investigate %s", scope),
			fmt.Sprintf("Gather enough context on %s to define concrete changes.", scope)),
		step(2, fmt.Sprintf("Implement changes for %s", scope),
			fmt.Sprintf("Carry out the work identified for %s.", scope),
			fmt.Sprintf("src/%s.js", slug)),
		step(3, "Verify and document",
			"Confirm the result does what was asked and record anything future maintainers need.",
			fmt.Sprintf("docs/%s.md", slug)),
	}
}
