package scorer

// Bucket covers the value range (previous UpTo, UpTo] and carries the pair of
// likelihoods P(bucket|fake) and P(bucket|genuine). The first bucket starts
// at 0 inclusive; the last bucket must reach 1.
type Bucket struct {
	UpTo    float64
	Fake    float64
	Genuine float64
}

// Likelihood discretizes one signal's [0,1] range into buckets.
type Likelihood struct {
	Buckets []Bucket
}

// lookup returns the likelihood pair for a value. Values outside [0,1] are
// clamped to the nearest bucket.
func (l Likelihood) lookup(value float64) (fake, genuine float64) {
	for _, b := range l.Buckets {
		if value <= b.UpTo {
			return b.Fake, b.Genuine
		}
	}
	last := l.Buckets[len(l.Buckets)-1]
	return last.Fake, last.Genuine
}

// Table maps signal names to their likelihoods. Signals missing from the
// vector are skipped during scoring; signal names missing from the table
// contribute no evidence either.
type Table map[string]Likelihood

// DefaultTable is the hand-authored likelihood table, version 1. It is fixed
// configuration data, not learned: the pairs encode coarse domain judgments
// such as "a follower/following ratio far below 1 is common among bought
// accounts" and "verification is strong genuine evidence". No likelihood is
// ever 0 or 1, so finite log-odds keep the posterior strictly inside (0,1).
//
// posting_regularity is deliberately U-shaped: both metronomic scheduling
// (near 1) and erratic bursts (near 0) lean fake, while the natural middle
// leans genuine.
func DefaultTable() Table {
	return Table{
		"follower_following_ratio": {Buckets: []Bucket{
			{UpTo: 0.15, Fake: 0.65, Genuine: 0.20},
			{UpTo: 0.45, Fake: 0.25, Genuine: 0.40},
			{UpTo: 1.00, Fake: 0.10, Genuine: 0.40},
		}},
		"engagement_rate": {Buckets: []Bucket{
			{UpTo: 0.002, Fake: 0.60, Genuine: 0.15},
			{UpTo: 0.010, Fake: 0.25, Genuine: 0.35},
			{UpTo: 1.000, Fake: 0.15, Genuine: 0.50},
		}},
		"posting_regularity": {Buckets: []Bucket{
			{UpTo: 0.20, Fake: 0.35, Genuine: 0.20},
			{UpTo: 0.85, Fake: 0.25, Genuine: 0.60},
			{UpTo: 1.00, Fake: 0.40, Genuine: 0.20},
		}},
		"bio_completeness": {Buckets: []Bucket{
			{UpTo: 0.34, Fake: 0.55, Genuine: 0.20},
			{UpTo: 0.67, Fake: 0.30, Genuine: 0.35},
			{UpTo: 1.00, Fake: 0.15, Genuine: 0.45},
		}},
		"is_verified": {Buckets: []Bucket{
			{UpTo: 0.5, Fake: 0.95, Genuine: 0.70},
			{UpTo: 1.0, Fake: 0.05, Genuine: 0.30},
		}},
		"username_pattern": {Buckets: []Bucket{
			{UpTo: 0.5, Fake: 0.60, Genuine: 0.90},
			{UpTo: 1.0, Fake: 0.40, Genuine: 0.10},
		}},
		"spam_pattern": {Buckets: []Bucket{
			{UpTo: 0.5, Fake: 0.55, Genuine: 0.85},
			{UpTo: 1.0, Fake: 0.45, Genuine: 0.15},
		}},
		"comment_quality": {Buckets: []Bucket{
			{UpTo: 0.30, Fake: 0.55, Genuine: 0.15},
			{UpTo: 0.70, Fake: 0.30, Genuine: 0.35},
			{UpTo: 1.00, Fake: 0.15, Genuine: 0.50},
		}},
	}
}
