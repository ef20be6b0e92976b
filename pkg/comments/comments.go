// Package comments derives engagement-quality metrics from the comments
// captured under a profile's posts. A flood of canned praise, duplicated
// text, or the same handful of commenters everywhere is typical of bought
// engagement.
package comments

import (
	"strings"
	"unicode"

	"igaudit/pkg/models"
)

// genericPhrases are canned praise comments that carry no signal of real
// engagement
var genericPhrases = map[string]struct{}{
	"nice": {}, "nice pic": {}, "nice post": {}, "cool": {}, "wow": {},
	"amazing": {}, "great": {}, "love this": {}, "so nice": {},
	"beautiful": {}, "awesome": {}, "great pic": {}, "lovely": {}, "perfect": {},
}

// Metrics summarizes comment quality across a profile's posts. All shares
// are fractions in [0,1] of the total comment count.
type Metrics struct {
	Total                int     `json:"total"`
	GenericShare         float64 `json:"generic_share"`
	DuplicateShare       float64 `json:"duplicate_share"`
	RepeatCommenterShare float64 `json:"repeat_commenter_share"`
}

// IsGeneric reports whether a comment is contentless filler: empty or
// near-empty text, a canned praise phrase, a short string with almost no
// letters, or symbols only.
func IsGeneric(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if len(t) <= 2 {
		return true
	}
	if _, canned := genericPhrases[t]; canned {
		return true
	}

	letters := 0
	hasWordChar := false
	for _, r := range t {
		if unicode.IsLetter(r) {
			letters++
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			hasWordChar = true
		}
	}
	if letters <= 3 && len(t) <= 12 {
		return true
	}
	return !hasWordChar
}

// Compute aggregates quality metrics over all captured comments. With no
// comments it returns zero metrics; callers decide whether that means
// "healthy" or "unknown".
func Compute(comments []models.CommentRecord) Metrics {
	m := Metrics{Total: len(comments)}
	if m.Total == 0 {
		return m
	}

	generic := 0
	texts := make(map[string]struct{}, len(comments))
	textCount := 0
	commenters := make(map[string]struct{}, len(comments))
	commenterCount := 0

	for _, c := range comments {
		if IsGeneric(c.Text) {
			generic++
		}
		if t := strings.ToLower(strings.TrimSpace(c.Text)); t != "" {
			texts[t] = struct{}{}
			textCount++
		}
		if u := strings.ToLower(strings.TrimSpace(c.Username)); u != "" {
			commenters[u] = struct{}{}
			commenterCount++
		}
	}

	m.GenericShare = float64(generic) / float64(m.Total)
	if textCount > 0 {
		m.DuplicateShare = 1 - float64(len(texts))/float64(textCount)
	}
	if commenterCount > 0 {
		m.RepeatCommenterShare = 1 - float64(len(commenters))/float64(commenterCount)
	}
	return m
}

// QualityScore collapses the metrics into a single [0,1] signal where 1 is
// healthy organic engagement. Generic filler weighs heaviest, then duplicated
// text, then repeat commenters.
func (m Metrics) QualityScore() float64 {
	if m.Total == 0 {
		return 1
	}
	penalty := 0.5*m.GenericShare + 0.3*m.DuplicateShare + 0.2*m.RepeatCommenterShare
	score := 1 - penalty
	if score < 0 {
		return 0
	}
	return score
}
