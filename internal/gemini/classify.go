package gemini

import (
	"fmt"
	"strings"
)

// Classification labels a backend failure by its raw message text. The
// backend gives us no structured codes, so this is best-effort ordered
// substring matching; anything unmatched falls through to generic.
type Classification string

const (
	ClassRateLimit  Classification = "rate_limit"
	ClassCredential Classification = "credential"
	ClassGeneric    Classification = "generic"
)

// Classify maps raw error text to a classification. Matching is
// case-insensitive and the rules are ordered: rate/quota wins over the
// credential check.
func Classify(msg string) Classification {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "quota") || strings.Contains(lower, "rate"):
		return ClassRateLimit
	case strings.Contains(lower, "api") && strings.Contains(lower, "key"):
		return ClassCredential
	default:
		return ClassGeneric
	}
}

// Describe renders the user-facing message for a failed generation. The
// result is returned as tool content, not as a protocol error.
func Describe(err error) string {
	msg := err.Error()
	switch Classify(msg) {
	case ClassRateLimit:
		return fmt.Sprintf("Rate limit exceeded. Please try again in a few moments. Error: %s", msg)
	case ClassCredential:
		return fmt.Sprintf("API key issue. Please check your Gemini API key configuration. Error: %s", msg)
	default:
		return fmt.Sprintf("Error calling Gemini: %s", msg)
	}
}
