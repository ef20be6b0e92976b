package scorer

import (
	"math"
	"sort"

	"igaudit/pkg/config"
	"igaudit/pkg/signals"
)

// Verdict is the discrete authenticity call derived from the posterior
type Verdict string

const (
	VerdictLikelyGenuine Verdict = "likely_genuine"
	VerdictUncertain     Verdict = "uncertain"
	VerdictLikelyFake    Verdict = "likely_fake"
)

// Contribution records one signal's evidence for explainability. A positive
// log-likelihood ratio pushes toward fake, a negative one toward genuine.
type Contribution struct {
	Signal             string  `json:"signal"`
	Value              float64 `json:"value"`
	LogLikelihoodRatio float64 `json:"log_likelihood_ratio"`
}

// AuthenticityResult is the scored outcome for one signal vector
type AuthenticityResult struct {
	PosteriorFake       float64        `json:"posterior_fake"`
	Verdict             Verdict        `json:"verdict"`
	ContributingSignals []Contribution `json:"contributing_signals"`
}

// Scorer combines signal evidence through a naive-Bayes update. It holds no
// mutable state, so one instance may score concurrently.
type Scorer struct {
	table        Table
	priorFake    float64
	genuineBelow float64
	fakeAbove    float64
}

// New creates a Scorer with the default likelihood table
func New(cfg *config.ScorerConfig) *Scorer {
	return NewWithTable(DefaultTable(), cfg)
}

// NewWithTable creates a Scorer with a caller-supplied likelihood table
func NewWithTable(table Table, cfg *config.ScorerConfig) *Scorer {
	return &Scorer{
		table:        table,
		priorFake:    cfg.PriorFake,
		genuineBelow: cfg.GenuineThreshold,
		fakeAbove:    cfg.FakeThreshold,
	}
}

// Score computes the posterior fake probability for a signal vector. Signals
// absent from the vector or unknown to the table are neutral evidence and
// skipped. It never fails: an empty vector yields the prior posterior and an
// uncertain verdict.
func (s *Scorer) Score(vector signals.SignalVector) AuthenticityResult {
	logOdds := math.Log(s.priorFake / (1 - s.priorFake))

	contributions := make([]Contribution, 0, len(vector))
	for _, name := range vector.Names() {
		likelihood, known := s.table[name]
		if !known {
			continue
		}
		value := vector[name]
		fake, genuine := likelihood.lookup(value)
		llr := math.Log(fake / genuine)
		logOdds += llr
		contributions = append(contributions, Contribution{
			Signal:             name,
			Value:              value,
			LogLikelihoodRatio: llr,
		})
	}

	sort.SliceStable(contributions, func(i, j int) bool {
		ai, aj := math.Abs(contributions[i].LogLikelihoodRatio), math.Abs(contributions[j].LogLikelihoodRatio)
		if ai != aj {
			return ai > aj
		}
		return contributions[i].Signal < contributions[j].Signal
	})

	posterior := sigmoid(logOdds)

	verdict := VerdictUncertain
	if len(contributions) > 0 {
		switch {
		case posterior < s.genuineBelow:
			verdict = VerdictLikelyGenuine
		case posterior > s.fakeAbove:
			verdict = VerdictLikelyFake
		}
	}

	return AuthenticityResult{
		PosteriorFake:       posterior,
		Verdict:             verdict,
		ContributingSignals: contributions,
	}
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
