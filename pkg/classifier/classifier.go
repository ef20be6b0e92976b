package classifier

import (
	"sort"
	"strings"
	"unicode"

	"igaudit/pkg/config"
	"igaudit/pkg/errors"
)

// TopicUnclassified is the label returned when no keyword matches at all
const TopicUnclassified = "unclassified"

// defaultWeight applies to topics that leave their weight unset
const defaultWeight = 1.0

// TopicBreakdown maps topic labels to normalized scores. The values sum to 1,
// or the breakdown is exactly {unclassified: 1} when nothing matched.
type TopicBreakdown map[string]float64

// topic is one compiled topic: lowercased keyword set plus weight
type topic struct {
	label    string
	weight   float64
	keywords map[string]struct{}
}

// Classifier matches text fragments against configured topic keyword sets.
// Topics always come from configuration; the classifier hardcodes none.
type Classifier struct {
	topics []topic
}

// New compiles the configured topics. A declared topic with an empty keyword
// set or a negative weight is a configuration error, raised here rather than
// at classification time.
func New(topics map[string]config.TopicConfig) (*Classifier, error) {
	labels := make([]string, 0, len(topics))
	for label := range topics {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	compiled := make([]topic, 0, len(labels))
	for _, label := range labels {
		cfg := topics[label]
		if strings.TrimSpace(label) == "" {
			return nil, errors.NewConfiguration("topic with empty label declared")
		}
		if cfg.Weight < 0 {
			return nil, errors.NewConfiguration("topic %q has negative weight %v", label, cfg.Weight)
		}

		keywords := make(map[string]struct{}, len(cfg.Keywords))
		for _, kw := range cfg.Keywords {
			normalized := strings.ToLower(strings.TrimSpace(kw))
			if normalized == "" {
				continue
			}
			keywords[normalized] = struct{}{}
		}
		if len(keywords) == 0 {
			return nil, errors.NewConfiguration("topic %q declares an empty keyword set", label)
		}

		weight := cfg.Weight
		if weight == 0 {
			weight = defaultWeight
		}
		compiled = append(compiled, topic{label: label, weight: weight, keywords: keywords})
	}

	return &Classifier{topics: compiled}, nil
}

// Classify scores text fragments against every topic and normalizes the
// scores to a distribution. Matching is case-insensitive and exact-token
// based: "art" never matches inside "smart". With zero matches the result is
// {unclassified: 1} rather than a mapping of zeros.
func (c *Classifier) Classify(fragments []string) TopicBreakdown {
	scores := make(map[string]float64, len(c.topics))
	var total float64

	for _, fragment := range fragments {
		for _, token := range tokenize(fragment) {
			for _, t := range c.topics {
				if _, match := t.keywords[token]; match {
					scores[t.label] += t.weight
					total += t.weight
				}
			}
		}
	}

	if total == 0 {
		return TopicBreakdown{TopicUnclassified: 1}
	}

	breakdown := make(TopicBreakdown, len(scores))
	for label, score := range scores {
		breakdown[label] = score / total
	}
	return breakdown
}

// tokenize lowercases a fragment and splits it on word boundaries
func tokenize(fragment string) []string {
	return strings.FieldsFunc(strings.ToLower(fragment), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
