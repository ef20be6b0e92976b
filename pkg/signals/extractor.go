package signals

import (
	"math"
	"sort"
	"strings"

	"igaudit/pkg/errors"
	"igaudit/pkg/models"
)

// Signal names emitted by Extract. SpamPattern and CommentQuality are never
// produced here; the orchestrator injects them when those integrations are
// enabled in configuration.
const (
	FollowerRatio     = "follower_following_ratio"
	EngagementRate    = "engagement_rate"
	PostingRegularity = "posting_regularity"
	BioCompleteness   = "bio_completeness"
	Verified          = "is_verified"
	UsernamePattern   = "username_pattern"
	SpamPattern       = "spam_pattern"
	CommentQuality    = "comment_quality"
)

// ratioSquashK controls how fast the follower/following ratio saturates:
// squashed = ratio/(ratio+k), so a ratio of k maps to 0.5
const ratioSquashK = 2.0

// minPostsForRegularity is the smallest post count that yields at least two
// inter-post gaps
const minPostsForRegularity = 3

// SignalVector maps signal names to normalized values in [0,1]. Boolean
// signals are encoded as 0 or 1. A vector belongs to a single scoring
// invocation and is never persisted.
type SignalVector map[string]float64

// Names returns the signal names present in the vector in ascending order.
func (v SignalVector) Names() []string {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the vector.
func (v SignalVector) Clone() SignalVector {
	out := make(SignalVector, len(v))
	for name, value := range v {
		out[name] = value
	}
	return out
}

// Extract derives the signal vector for a profile and its posts. With an
// empty post list it still returns the profile-only signals alongside an
// insufficient-data error, so callers can continue in degraded mode.
func Extract(profile models.ProfileRecord, posts []models.PostRecord) (SignalVector, error) {
	v := SignalVector{
		FollowerRatio:   followerRatio(profile),
		BioCompleteness: bioCompleteness(profile),
		Verified:        boolSignal(profile.IsVerified),
		UsernamePattern: boolSignal(models.BotLikeHandle(profile.Handle)),
	}

	if len(posts) == 0 {
		return v, errors.NewInsufficientData("profile %q has no posts; post-derived signals omitted", profile.Handle)
	}

	v[EngagementRate] = engagementRate(profile, posts)
	if reg, ok := postingRegularity(posts); ok {
		v[PostingRegularity] = reg
	}

	return v, nil
}

func boolSignal(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// followerRatio squashes followers/max(following,1) through a bounded
// monotonic transform so extreme ratios saturate instead of dominating.
func followerRatio(profile models.ProfileRecord) float64 {
	following := profile.FollowingCount
	if following < 1 {
		following = 1
	}
	ratio := float64(profile.FollowerCount) / float64(following)
	return ratio / (ratio + ratioSquashK)
}

// engagementRate is the mean of (likes+comments)/max(followers,1) across
// posts, clamped to [0,1].
func engagementRate(profile models.ProfileRecord, posts []models.PostRecord) float64 {
	followers := profile.FollowerCount
	if followers < 1 {
		followers = 1
	}

	var sum float64
	for _, post := range posts {
		sum += float64(post.LikeCount+post.CommentCount) / float64(followers)
	}
	return clamp01(sum / float64(len(posts)))
}

// postingRegularity is 1 minus the clamped coefficient of variation of
// inter-post time gaps. A value near 1 means metronomic posting, near 0
// means erratic bursts; the scorer's likelihood table treats both extremes
// as mild fake evidence. Needs at least two gaps and usable timestamps.
func postingRegularity(posts []models.PostRecord) (float64, bool) {
	if len(posts) < minPostsForRegularity {
		return 0, false
	}

	times := make([]int64, 0, len(posts))
	for _, post := range posts {
		if post.Timestamp.IsZero() {
			continue
		}
		times = append(times, post.Timestamp.Unix())
	}
	if len(times) < minPostsForRegularity {
		return 0, false
	}
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })

	gaps := make([]float64, 0, len(times)-1)
	for i := 1; i < len(times); i++ {
		gaps = append(gaps, float64(times[i]-times[i-1]))
	}

	var mean float64
	for _, gap := range gaps {
		mean += gap
	}
	mean /= float64(len(gaps))
	if mean <= 0 {
		// all posts share one timestamp: perfectly uniform
		return 1, true
	}

	var variance float64
	for _, gap := range gaps {
		d := gap - mean
		variance += d * d
	}
	variance /= float64(len(gaps))

	cv := math.Sqrt(variance) / mean
	return 1 - clamp01(cv), true
}

// bioCompleteness is the fraction of profile-completeness markers present:
// a profile picture, a non-empty bio, and a known account age.
func bioCompleteness(profile models.ProfileRecord) float64 {
	present := 0
	if profile.HasProfilePicture {
		present++
	}
	if strings.TrimSpace(profile.BioText) != "" {
		present++
	}
	if profile.AccountAgeDays != nil {
		present++
	}
	return float64(present) / 3
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
