package api

import (
	"regexp"
	"strings"
)

// GitHub username grammar: 1-39 chars, alphanumeric with internal
// hyphens only (no leading/trailing/doubled hyphen). Go's regexp has
// no lookahead, so the hyphen rule consumes its following character
// and the 39-char cap is enforced separately.
const handlePattern = `[a-zA-Z0-9](?:[a-zA-Z0-9]|-[a-zA-Z0-9])*`

const maxHandleLength = 39

var (
	handleRe = regexp.MustCompile(`^` + handlePattern + `$`)
	urlRe    = regexp.MustCompile(`^(?:https?://)?github\.com/(` + handlePattern + `)(?:/.*)?$`)
)

// ParseUserIdentifier normalizes free-text input into a GitHub
// username. It accepts a bare handle, "github.com/handle[/...]", or a
// full profile URL. Returns false when no form matches; callers
// surface ErrInvalidIdentifier without distinguishing a malformed URL
// from a malformed handle.
func ParseUserIdentifier(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", false
	}

	if m := urlRe.FindStringSubmatch(trimmed); m != nil && len(m[1]) <= maxHandleLength {
		return m[1], true
	}

	if len(trimmed) <= maxHandleLength && handleRe.MatchString(trimmed) {
		return trimmed, true
	}

	return "", false
}
