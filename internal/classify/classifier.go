// Package classify turns raw task text into a structured task descriptor.
package classify

import (
	"regexp"
	"strings"

	"github.com/taskdown/taskdown/pkg/models"
)

// categoryRules is the ordered decision list for category detection.
// The first matching rule wins; the order is a behavioral contract and
// must not be rearranged (a description can match several rules).
var categoryRules = []struct {
	category models.TaskCategory
	pattern  *regexp.Regexp
}{
	// CRUD keywords are short common words, so they match whole words only.
	{models.CategoryCRUD, regexp.MustCompile(`(?i)\b(create|read|update|delete|crud)\b`)},
	{models.CategoryAuthentication, regexp.MustCompile(`(?i)(auth|authentication|login|logout|register|signup|signin)`)},
	{models.CategoryRefactor, regexp.MustCompile(`(?i)(refactor|restructure|clean up|improve code)`)},
	{models.CategoryFeature, regexp.MustCompile(`(?i)(feature|add|implement|support|enhance)`)},
	{models.CategoryBugfix, regexp.MustCompile(`(?i)(bug|fix|error|issue|defect|patch)`)},
}

var (
	// prepositionPattern captures everything after the first in/for/to,
	// e.g. "Create CRUD endpoints for products" -> "products".
	prepositionPattern = regexp.MustCompile(`(?i)\b(?:in|for|to)\b\s+(.+)$`)
	// entityPattern matches an explicit kind-then-name reference,
	// e.g. "function parseDate" -> "function parseDate".
	entityPattern = regexp.MustCompile(`(?i)\b(function|file|class|module|component)\s+([A-Za-z0-9_./-]+)`)
	// nounPhrasePattern matches the name-then-kind word order,
	// e.g. "the payment module" -> "payment module".
	nounPhrasePattern = regexp.MustCompile(`(?i)\b([A-Za-z0-9_-]+)\s+(function|file|class|module|component)\b`)

	leadingArticle = regexp.MustCompile(`(?i)^(?:the|a|an)\s+`)
)

// Classify derives a task descriptor from raw task text. Classification is
// a pure function of the text: the same input always yields the same
// descriptor. Scope may be empty; downstream strategies supply fallbacks.
func Classify(text string) models.TaskDescriptor {
	return models.TaskDescriptor{
		Description: text,
		Category:    detectCategory(text),
		Scope:       extractScope(text),
	}
}

// detectCategory evaluates the ordered rule list and returns the first
// matching category, or OTHER when nothing matches.
func detectCategory(text string) models.TaskCategory {
	for _, rule := range categoryRules {
		if rule.pattern.MatchString(text) {
			return rule.category
		}
	}
	return models.CategoryOther
}

// extractScope finds the code area a task targets. It tries a preposition
// pattern first, then the two entity word orders. An empty result is a
// normal outcome, not an error.
func extractScope(text string) string {
	if m := prepositionPattern.FindStringSubmatch(text); m != nil {
		return cleanScope(leadingArticle.ReplaceAllString(strings.TrimSpace(m[1]), ""))
	}
	if m := entityPattern.FindStringSubmatch(text); m != nil {
		return strings.ToLower(m[1]) + " " + m[2]
	}
	if m := nounPhrasePattern.FindStringSubmatch(text); m != nil {
		return m[1] + " " + strings.ToLower(m[2])
	}
	return ""
}

// cleanScope trims whitespace and trailing sentence punctuation.
func cleanScope(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ".!?,;:")
}
