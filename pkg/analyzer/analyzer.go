package analyzer

import (
	"time"

	"github.com/google/uuid"

	"igaudit/pkg/classifier"
	"igaudit/pkg/comments"
	"igaudit/pkg/config"
	"igaudit/pkg/errors"
	"igaudit/pkg/followers"
	"igaudit/pkg/hashtag"
	"igaudit/pkg/logger"
	"igaudit/pkg/models"
	"igaudit/pkg/scorer"
	"igaudit/pkg/signals"
)

// AnalysisReport is the aggregate result of one analysis run. It is built
// once per request, never mutated afterwards, and never persisted by the
// engine; storage belongs to the reporting consumer.
type AnalysisReport struct {
	ReportID    string    `json:"report_id"`
	Handle      string    `json:"handle"`
	GeneratedAt time.Time `json:"generated_at"`

	// Degraded marks a run that proceeded with profile-only signals after a
	// recoverable extraction failure
	Degraded       bool   `json:"degraded"`
	DegradedReason string `json:"degraded_reason,omitempty"`

	Authenticity scorer.AuthenticityResult `json:"authenticity"`
	Graph        hashtag.Metrics           `json:"graph"`
	Topics       classifier.TopicBreakdown `json:"topics"`

	// CommentMetrics is present only when comments were captured with the posts
	CommentMetrics *comments.Metrics `json:"comment_metrics,omitempty"`
}

// Analyzer sequences the signal extractor, authenticity scorer, hashtag
// graph analyzer, and content classifier over one profile's data. An
// Analyzer holds no per-run state, so a single instance serves concurrent
// calls as long as each call gets its own records.
type Analyzer struct {
	cfg        *config.Config
	scorer     *scorer.Scorer
	classifier *classifier.Classifier
	logger     logger.Logger
}

// New creates an Analyzer from validated configuration. Malformed topic
// configuration surfaces here as a configuration error, not at run time.
func New(cfg *config.Config) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cls, err := classifier.New(cfg.Topics)
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		cfg:        cfg,
		scorer:     scorer.New(&cfg.Scorer),
		classifier: cls,
		logger:     logger.GetLogger(),
	}, nil
}

// Run analyzes one profile and its posts and assembles the combined report.
// Invalid records fail the whole call; missing post data only degrades the
// affected sections. The call is all-or-nothing: either a complete report or
// an error, never a partial result.
func (a *Analyzer) Run(profile models.ProfileRecord, posts []models.PostRecord) (*AnalysisReport, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	for _, post := range posts {
		if err := post.Validate(); err != nil {
			return nil, err
		}
	}

	log := a.logger.WithField("handle", profile.Handle)
	log.WithField("posts", len(posts)).Debug("starting analysis run")

	report := &AnalysisReport{
		ReportID:    uuid.NewString(),
		Handle:      profile.Handle,
		GeneratedAt: time.Now().UTC(),
	}

	vector, err := signals.Extract(profile, posts)
	if err != nil {
		if !errors.IsInsufficientData(err) {
			return nil, err
		}
		report.Degraded = true
		report.DegradedReason = err.Error()
		log.WithError(err).Warn("continuing with profile-only signals")
	}

	_, graphMetrics := hashtag.Analyze(posts, &a.cfg.Graph)
	report.Graph = graphMetrics

	report.Topics = a.classifier.Classify(textFragments(profile, posts))

	if a.cfg.Scorer.UseSpamPatternSignal && len(posts) > 0 {
		vector[signals.SpamPattern] = boolSignal(graphMetrics.SpamPattern)
	}
	if metrics := commentMetrics(posts); metrics != nil {
		report.CommentMetrics = metrics
		if a.cfg.Scorer.UseCommentQualitySignal {
			vector[signals.CommentQuality] = metrics.QualityScore()
		}
	}

	report.Authenticity = a.scorer.Score(vector)

	log.InfoWithFields("analysis complete", map[string]interface{}{
		"posterior_fake": report.Authenticity.PosteriorFake,
		"verdict":        string(report.Authenticity.Verdict),
		"degraded":       report.Degraded,
		"hashtag_nodes":  report.Graph.NodeCount,
	})

	return report, nil
}

// AuditFollowers classifies a sampled follower list. It is independent of
// Run: follower samples arrive separately from post data.
func (a *Analyzer) AuditFollowers(handle string, sample []followers.FollowerStats) followers.Summary {
	summary := followers.Audit(sample)
	a.logger.InfoWithFields("follower audit complete", map[string]interface{}{
		"handle":            handle,
		"sample_size":       summary.SampleSize,
		"likely_fake_share": summary.LikelyFakeShare,
	})
	return summary
}

// textFragments collects the bio and captions for classification
func textFragments(profile models.ProfileRecord, posts []models.PostRecord) []string {
	fragments := make([]string, 0, len(posts)+1)
	if profile.BioText != "" {
		fragments = append(fragments, profile.BioText)
	}
	for _, post := range posts {
		if post.Caption != "" {
			fragments = append(fragments, post.Caption)
		}
	}
	return fragments
}

// commentMetrics computes comment-quality metrics when any comments were
// captured, nil otherwise
func commentMetrics(posts []models.PostRecord) *comments.Metrics {
	var all []models.CommentRecord
	for _, post := range posts {
		all = append(all, post.Comments...)
	}
	if len(all) == 0 {
		return nil
	}
	m := comments.Compute(all)
	return &m
}

func boolSignal(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
