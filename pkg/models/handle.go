package models

import (
	"regexp"
	"unicode"
)

// throwaway accounts tend to be short letter runs with a long digit suffix,
// e.g. "jenna82731" or "mk20471"
var botSuffixPattern = regexp.MustCompile(`^[a-zA-Z]{2,6}\d{4,}$`)

// BotLikeHandle reports whether a username looks machine-generated: either
// digit-heavy overall or matching the letters-plus-digit-suffix shape.
func BotLikeHandle(handle string) bool {
	if handle == "" {
		return true
	}
	digits := 0
	for _, r := range handle {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	threshold := len(handle) * 2 / 5
	if threshold < 5 {
		threshold = 5
	}
	if digits >= threshold {
		return true
	}
	return botSuffixPattern.MatchString(handle)
}
