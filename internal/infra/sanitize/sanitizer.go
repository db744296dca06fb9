// Package sanitize strips markup from visitor-submitted text.
package sanitize

import (
	"html"
	"strings"

	"dukasync/internal/domain/service"

	"github.com/microcosm-cc/bluemonday"
)

// textSanitizer removes every tag and returns plain text.
// bluemonday escapes entities on output, so the result is unescaped once more for storage;
// a second pass catches markup that was smuggled in as entities.
type textSanitizer struct {
	policy *bluemonday.Policy
}

// NewTextSanitizer creates the plain-text sanitizer
func NewTextSanitizer() service.ContentSanitizer {
	return &textSanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize strips markup and surrounding whitespace
func (s *textSanitizer) Sanitize(input string) string {
	cleaned := html.UnescapeString(s.policy.Sanitize(input))
	if strings.ContainsAny(cleaned, "<>") {
		cleaned = html.UnescapeString(s.policy.Sanitize(cleaned))
	}

	return strings.TrimSpace(cleaned)
}
