package checker

import "strings"

// keywords is the fixed set of abuse-indicator substrings tested against
// normalized usernames. The set is deliberately permissive (high recall,
// lower precision); the avatar similarity stage cuts the false positives.
var keywords = []string{ //nolint: gochecknoglobals
	"academy",
	"agent",
	"bot",
	"dev",
	"discord",
	"employee",
	"events",
	"hype",
	"hypesquad",
	"message",
	"mod",
	"notif",
	"recruit",
	"staff",
	"system",
	"team",
	"terms",
}

// MatchesKeyword reports whether the normalized string contains any of the
// abuse-indicator keywords. Pure substring containment; no fuzzy matching.
func MatchesKeyword(normalized string) bool {
	for _, w := range keywords {
		if strings.Contains(normalized, w) {
			return true
		}
	}

	return false
}
