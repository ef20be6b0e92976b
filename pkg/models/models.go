package models

import (
	"strings"
	"time"

	"igaudit/pkg/errors"
)

// ProfileRecord is the immutable profile input handed to the analysis engine.
// Counts must be non-negative; AccountAgeDays is optional and nil when the
// data source could not determine it.
type ProfileRecord struct {
	Handle            string `json:"handle" yaml:"handle"`
	FollowerCount     int    `json:"follower_count" yaml:"follower_count"`
	FollowingCount    int    `json:"following_count" yaml:"following_count"`
	PostCount         int    `json:"post_count" yaml:"post_count"`
	BioText           string `json:"bio_text" yaml:"bio_text"`
	HasProfilePicture bool   `json:"has_profile_picture" yaml:"has_profile_picture"`
	IsVerified        bool   `json:"is_verified" yaml:"is_verified"`
	AccountAgeDays    *int   `json:"account_age_days,omitempty" yaml:"account_age_days,omitempty"`
}

// Validate checks the profile field invariants. Violations are fatal for the
// analysis call and are never silently clamped.
func (p ProfileRecord) Validate() error {
	if strings.TrimSpace(p.Handle) == "" {
		return errors.NewInvalidRecord("profile handle is empty")
	}
	if p.FollowerCount < 0 {
		return errors.NewInvalidRecord("profile %q has negative follower count %d", p.Handle, p.FollowerCount)
	}
	if p.FollowingCount < 0 {
		return errors.NewInvalidRecord("profile %q has negative following count %d", p.Handle, p.FollowingCount)
	}
	if p.PostCount < 0 {
		return errors.NewInvalidRecord("profile %q has negative post count %d", p.Handle, p.PostCount)
	}
	if p.AccountAgeDays != nil && *p.AccountAgeDays < 0 {
		return errors.NewInvalidRecord("profile %q has negative account age %d", p.Handle, *p.AccountAgeDays)
	}
	return nil
}

// PostRecord is one post belonging to the profile under analysis. Hashtags
// are expected lowercase with the leading '#' stripped; NormalizeHashtags
// puts raw scraped tags into that shape.
type PostRecord struct {
	Caption      string          `json:"caption" yaml:"caption"`
	Hashtags     []string        `json:"hashtags" yaml:"hashtags"`
	LikeCount    int             `json:"like_count" yaml:"like_count"`
	CommentCount int             `json:"comment_count" yaml:"comment_count"`
	Timestamp    time.Time       `json:"timestamp" yaml:"timestamp"`
	Comments     []CommentRecord `json:"comments,omitempty" yaml:"comments,omitempty"`
}

// Validate checks the post field invariants.
func (p PostRecord) Validate() error {
	if p.LikeCount < 0 {
		return errors.NewInvalidRecord("post has negative like count %d", p.LikeCount)
	}
	if p.CommentCount < 0 {
		return errors.NewInvalidRecord("post has negative comment count %d", p.CommentCount)
	}
	return nil
}

// CommentRecord is a single comment captured under a post.
type CommentRecord struct {
	Username string `json:"username" yaml:"username"`
	Text     string `json:"text" yaml:"text"`
}

// NormalizeHashtags lowercases tags, strips a leading '#', and drops empties
// and duplicates while preserving first-seen order. Ingestion glue applies
// this before records reach the engine.
func NormalizeHashtags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		t := strings.ToLower(strings.TrimSpace(tag))
		t = strings.TrimPrefix(t, "#")
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
