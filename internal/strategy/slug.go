package strategy

import (
	"regexp"
	"strings"
)

var (
	slugSeparators = regexp.MustCompile(`[\s_]+`)
	slugInvalid    = regexp.MustCompile(`[^a-z0-9-]`)
	slugRepeats    = regexp.MustCompile(`-{2,}`)
)

// Slugify renders a scope string as a filesystem-safe slug: lowercase,
// spaces and underscores become hyphens, everything else non-alphanumeric
// is stripped, runs of hyphens collapse, and leading/trailing hyphens are
// trimmed. An input that reduces to nothing yields "scope" so generated
// file paths always have a name. Slugify is idempotent.
func Slugify(scope string) string {
	s := strings.ToLower(strings.TrimSpace(scope))
	s = slugSeparators.ReplaceAllString(s, "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugRepeats.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "scope"
	}
	return s
}
