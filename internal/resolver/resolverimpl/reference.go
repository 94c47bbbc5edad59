package resolverimpl

import (
	"strings"

	"github.com/orgball2608/x-media-resolver/internal/domain"
	"github.com/orgball2608/x-media-resolver/pkg/errors"
)

const invalidURLMessage = "Invalid URL. Please enter a valid X or Twitter link."

// DefaultHosts are the host substrings accepted when none are configured.
var DefaultHosts = []string{"twitter.com", "x.com"}

// Normalize drops everything from the first '?' onward. Applying it twice
// yields the same string.
func Normalize(raw string) string {
	normalized, _, _ := strings.Cut(raw, "?")
	return normalized
}

// ParseReference validates raw against the accepted host substrings and
// derives the post identifier from the last path segment. The check is a
// substring match, not URL parsing, and the identifier is not required to be numeric.
func ParseReference(raw string, hosts []string) (domain.PostReference, error) {
	if len(hosts) == 0 {
		hosts = DefaultHosts
	}
	if raw == "" || !containsAny(raw, hosts) {
		return domain.PostReference{}, errors.WrapWithCode(errors.ErrInvalidInput, errors.CodeInvalidInput, invalidURLMessage)
	}

	normalized := Normalize(raw)
	id := normalized[strings.LastIndex(normalized, "/")+1:]
	if id == "" {
		return domain.PostReference{}, errors.WrapWithCode(errors.ErrInvalidInput, errors.CodeInvalidInput, invalidURLMessage)
	}

	return domain.PostReference{
		Raw:        raw,
		Normalized: normalized,
		ID:         id,
	}, nil
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
