// Package followers audits a sampled slice of a profile's followers for
// bot-like accounts. Sample collection is the data source's concern; this
// package only classifies and aggregates already-collected stats.
package followers

import (
	"sort"

	"igaudit/pkg/models"
)

// Classification reasons. Kept as stable strings so reason counts aggregate
// across runs.
const (
	ReasonNoPosts          = "0 posts (public)"
	ReasonNoBio            = "no bio (public)"
	ReasonFollowImbalance  = "following very high, followers very low"
	ReasonFollowingExtreme = "following extremely high"
	ReasonBotUsername      = "bot-like username pattern"
)

// classification score weights and the likely-fake threshold
const (
	scoreImbalance   = 3
	scoreNoPosts     = 2
	scoreBotUsername = 2
	scoreDefault     = 1
	fakeThreshold    = 4
)

// FollowerStats are the normalized per-follower counts a sampling
// collaborator supplies
type FollowerStats struct {
	Username  string `json:"username" yaml:"username"`
	Followers int    `json:"followers" yaml:"followers"`
	Following int    `json:"following" yaml:"following"`
	Posts     int    `json:"posts" yaml:"posts"`
	IsPrivate bool   `json:"is_private" yaml:"is_private"`
	HasBio    bool   `json:"has_bio" yaml:"has_bio"`
}

// ReasonCount pairs a classification reason with how often it fired
type ReasonCount struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

// Summary aggregates a classified follower sample
type Summary struct {
	SampleSize      int           `json:"sample_size"`
	LikelyFakeCount int           `json:"likely_fake_count"`
	LikelyFakeShare float64       `json:"likely_fake_share"`
	ReasonCounts    []ReasonCount `json:"reason_counts"`
}

// Classify scores one follower against the bot heuristics and returns the
// verdict with the reasons that fired. Private accounts hide posts and bio
// legitimately, so those reasons only apply to public profiles and privacy
// softens the final score by one point.
func Classify(f FollowerStats) (bool, []string) {
	var reasons []string

	if !f.IsPrivate && f.Posts == 0 {
		reasons = append(reasons, ReasonNoPosts)
	}
	if !f.IsPrivate && !f.HasBio {
		reasons = append(reasons, ReasonNoBio)
	}
	if f.Following >= 1500 && f.Followers <= 50 {
		reasons = append(reasons, ReasonFollowImbalance)
	}
	if f.Following >= 3000 {
		reasons = append(reasons, ReasonFollowingExtreme)
	}
	if models.BotLikeHandle(f.Username) {
		reasons = append(reasons, ReasonBotUsername)
	}

	score := 0
	for _, r := range reasons {
		switch r {
		case ReasonFollowImbalance:
			score += scoreImbalance
		case ReasonNoPosts:
			score += scoreNoPosts
		case ReasonBotUsername:
			score += scoreBotUsername
		default:
			score += scoreDefault
		}
	}
	if f.IsPrivate && score > 0 {
		score--
	}

	return score >= fakeThreshold, reasons
}

// Audit classifies every follower in the sample and aggregates the verdicts.
// Reason counts are sorted by frequency descending, ties by reason string.
func Audit(sample []FollowerStats) Summary {
	s := Summary{SampleSize: len(sample)}
	if s.SampleSize == 0 {
		return s
	}

	counts := make(map[string]int)
	for _, f := range sample {
		fake, reasons := Classify(f)
		if !fake {
			continue
		}
		s.LikelyFakeCount++
		for _, r := range reasons {
			counts[r]++
		}
	}
	s.LikelyFakeShare = float64(s.LikelyFakeCount) / float64(s.SampleSize)

	s.ReasonCounts = make([]ReasonCount, 0, len(counts))
	for reason, count := range counts {
		s.ReasonCounts = append(s.ReasonCounts, ReasonCount{Reason: reason, Count: count})
	}
	sort.Slice(s.ReasonCounts, func(i, j int) bool {
		if s.ReasonCounts[i].Count != s.ReasonCounts[j].Count {
			return s.ReasonCounts[i].Count > s.ReasonCounts[j].Count
		}
		return s.ReasonCounts[i].Reason < s.ReasonCounts[j].Reason
	})
	return s
}
