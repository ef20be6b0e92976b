package scorer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"igaudit/pkg/config"
	"igaudit/pkg/signals"
)

func defaultScorer() *Scorer {
	cfg := config.DefaultConfig()
	return New(&cfg.Scorer)
}

func TestScoreEmptyVector(t *testing.T) {
	s := defaultScorer()
	result := s.Score(signals.SignalVector{})

	assert.InDelta(t, 0.5, result.PosteriorFake, 1e-9, "posterior should equal the prior")
	assert.Equal(t, VerdictUncertain, result.Verdict)
	assert.Empty(t, result.ContributingSignals)
}

func TestScoreStrictlyInsideUnitInterval(t *testing.T) {
	s := defaultScorer()

	vectors := []signals.SignalVector{
		{
			signals.FollowerRatio:     0,
			signals.EngagementRate:    0,
			signals.PostingRegularity: 1,
			signals.BioCompleteness:   0,
			signals.Verified:          0,
			signals.UsernamePattern:   1,
			signals.SpamPattern:       1,
			signals.CommentQuality:    0,
		},
		{
			signals.FollowerRatio:     1,
			signals.EngagementRate:    1,
			signals.PostingRegularity: 0.5,
			signals.BioCompleteness:   1,
			signals.Verified:          1,
			signals.UsernamePattern:   0,
			signals.SpamPattern:       0,
			signals.CommentQuality:    1,
		},
	}

	for _, v := range vectors {
		result := s.Score(v)
		assert.Greater(t, result.PosteriorFake, 0.0)
		assert.Less(t, result.PosteriorFake, 1.0)
	}
}

func TestScoreFakeProfile(t *testing.T) {
	// follower_count=1000, following_count=5000, three posts with one like
	// each: squashed ratio 0.2/2.2 ≈ 0.09, engagement 0.001
	s := defaultScorer()
	result := s.Score(signals.SignalVector{
		signals.FollowerRatio:   0.0909,
		signals.EngagementRate:  0.001,
		signals.BioCompleteness: 0,
		signals.Verified:        0,
		signals.UsernamePattern: 0,
	})

	assert.Greater(t, result.PosteriorFake, 0.65)
	assert.Equal(t, VerdictLikelyFake, result.Verdict)
}

func TestScoreGenuineProfile(t *testing.T) {
	s := defaultScorer()
	result := s.Score(signals.SignalVector{
		signals.FollowerRatio:     0.83,
		signals.EngagementRate:    0.03,
		signals.PostingRegularity: 0.6,
		signals.BioCompleteness:   1,
		signals.Verified:          0,
		signals.UsernamePattern:   0,
	})

	assert.Less(t, result.PosteriorFake, 0.35)
	assert.Equal(t, VerdictLikelyGenuine, result.Verdict)
}

func TestScoreVerifiedIsStrongGenuineEvidence(t *testing.T) {
	s := defaultScorer()

	unverified := s.Score(signals.SignalVector{signals.Verified: 0})
	verified := s.Score(signals.SignalVector{signals.Verified: 1})

	assert.Less(t, verified.PosteriorFake, unverified.PosteriorFake)
	assert.Less(t, verified.PosteriorFake, 0.2)
}

func TestScorePostingRegularityIsUShaped(t *testing.T) {
	s := defaultScorer()

	metronomic := s.Score(signals.SignalVector{signals.PostingRegularity: 0.95})
	erratic := s.Score(signals.SignalVector{signals.PostingRegularity: 0.05})
	natural := s.Score(signals.SignalVector{signals.PostingRegularity: 0.5})

	assert.Greater(t, metronomic.PosteriorFake, natural.PosteriorFake)
	assert.Greater(t, erratic.PosteriorFake, natural.PosteriorFake)
}

func TestScoreContributionOrdering(t *testing.T) {
	s := defaultScorer()
	result := s.Score(signals.SignalVector{
		signals.FollowerRatio:   0.05,
		signals.EngagementRate:  0.001,
		signals.BioCompleteness: 0.5,
		signals.Verified:        1,
	})

	require.Len(t, result.ContributingSignals, 4)
	for i := 1; i < len(result.ContributingSignals); i++ {
		prev := math.Abs(result.ContributingSignals[i-1].LogLikelihoodRatio)
		curr := math.Abs(result.ContributingSignals[i].LogLikelihoodRatio)
		assert.GreaterOrEqual(t, prev, curr, "contributions must be sorted by |llr| descending")
	}
}

func TestScoreContributionTieBreak(t *testing.T) {
	// two signals with identical likelihood pairs tie on |llr|; the name
	// breaks the tie ascending
	table := Table{
		"b_signal": {Buckets: []Bucket{{UpTo: 1, Fake: 0.6, Genuine: 0.3}}},
		"a_signal": {Buckets: []Bucket{{UpTo: 1, Fake: 0.6, Genuine: 0.3}}},
	}
	cfg := config.DefaultConfig()
	s := NewWithTable(table, &cfg.Scorer)

	result := s.Score(signals.SignalVector{"a_signal": 0.5, "b_signal": 0.5})
	require.Len(t, result.ContributingSignals, 2)
	assert.Equal(t, "a_signal", result.ContributingSignals[0].Signal)
	assert.Equal(t, "b_signal", result.ContributingSignals[1].Signal)
}

func TestScoreUnknownSignalIsNeutral(t *testing.T) {
	s := defaultScorer()

	with := s.Score(signals.SignalVector{signals.Verified: 1, "mystery_signal": 0.9})
	without := s.Score(signals.SignalVector{signals.Verified: 1})

	assert.Equal(t, without.PosteriorFake, with.PosteriorFake)
	assert.Len(t, with.ContributingSignals, 1)
}

func TestScoreMissingSignalsSkippedNotImputed(t *testing.T) {
	s := defaultScorer()

	full := s.Score(signals.SignalVector{
		signals.Verified:       0,
		signals.EngagementRate: 0.001,
	})
	partial := s.Score(signals.SignalVector{
		signals.Verified: 0,
	})

	// dropping a fake-leaning signal must move the posterior toward the prior
	assert.Less(t, partial.PosteriorFake, full.PosteriorFake)
	assert.Len(t, partial.ContributingSignals, 1)
}

func TestVerdictMappingIsTotal(t *testing.T) {
	s := defaultScorer()

	// sweep vectors that land across the posterior range and check that a
	// verdict is always produced and consistent with the thresholds
	values := []float64{0, 0.1, 0.25, 0.4, 0.5, 0.6, 0.75, 0.9, 1}
	for _, ratio := range values {
		for _, engagement := range values {
			result := s.Score(signals.SignalVector{
				signals.FollowerRatio:  ratio,
				signals.EngagementRate: engagement,
			})
			switch {
			case result.PosteriorFake < 0.35:
				assert.Equal(t, VerdictLikelyGenuine, result.Verdict)
			case result.PosteriorFake > 0.65:
				assert.Equal(t, VerdictLikelyFake, result.Verdict)
			default:
				assert.Equal(t, VerdictUncertain, result.Verdict)
			}
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	s := defaultScorer()
	v := signals.SignalVector{
		signals.FollowerRatio:   0.3,
		signals.EngagementRate:  0.008,
		signals.BioCompleteness: 0.67,
		signals.Verified:        0,
	}

	first := s.Score(v)
	second := s.Score(v)
	assert.Equal(t, first, second)
}
