package sanitize

import (
	"regexp"
	"strings"
)

var digitRun = regexp.MustCompile(`[0-9]{5,}`)

// priceWords are terms that, followed anywhere later by a digit, suggest a
// raw financial figure survived sanitization.
var priceWords = []string{"bought", "sold", "price", "margin"}

// LooksSensitive heuristically flags text that may still contain raw
// currency figures: a run of five or more consecutive digits, or a price
// word followed later in the string by at least one digit. Best-effort
// guard for defensive checks and tests, not a guarantee.
func LooksSensitive(text string) bool {
	if digitRun.MatchString(text) {
		return true
	}

	lower := strings.ToLower(text)
	for _, word := range priceWords {
		idx := strings.Index(lower, word)
		if idx < 0 {
			continue
		}
		if strings.ContainsAny(lower[idx+len(word):], "0123456789") {
			return true
		}
	}
	return false
}
