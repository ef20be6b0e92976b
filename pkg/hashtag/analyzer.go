package hashtag

import (
	"igaudit/pkg/config"
	"igaudit/pkg/models"
)

// Metrics summarizes the structure of one profile's hashtag graph
type Metrics struct {
	NodeCount             int        `json:"node_count"`
	EdgeCount             int        `json:"edge_count"`
	AverageDegree         float64    `json:"average_degree"`
	Density               float64    `json:"density"`
	ClusteringCoefficient float64    `json:"clustering_coefficient"`
	TopCommunities        [][]string `json:"top_communities"`

	// SpamPattern is set when a dense graph sits on very few distinct tags:
	// the same hashtags reused constantly across posts. It feeds the scorer
	// only when that integration is enabled in configuration.
	SpamPattern bool `json:"spam_pattern"`
}

// Analyze builds the co-occurrence graph for the posts and computes its
// metrics. An empty post list yields an empty graph and zero metrics.
func Analyze(posts []models.PostRecord, cfg *config.GraphConfig) (*Graph, Metrics) {
	g := Build(posts)

	m := Metrics{
		NodeCount: g.NodeCount(),
		EdgeCount: g.EdgeCount(),
	}
	if m.NodeCount > 0 {
		m.AverageDegree = 2 * float64(m.EdgeCount) / float64(m.NodeCount)
	}
	if m.NodeCount >= 2 {
		possible := float64(m.NodeCount) * float64(m.NodeCount-1) / 2
		m.Density = float64(m.EdgeCount) / possible
	}
	m.ClusteringCoefficient = g.clusteringCoefficient()
	m.TopCommunities = g.Communities()

	m.SpamPattern = m.NodeCount >= 2 &&
		m.NodeCount <= cfg.SpamMaxNodes &&
		m.Density >= cfg.SpamDensityThreshold

	return g, m
}

// clusteringCoefficient is the mean local clustering coefficient over nodes
// with degree at least 2. Lower-degree nodes are excluded from the mean, not
// counted as zero.
func (g *Graph) clusteringCoefficient() float64 {
	var sum float64
	counted := 0

	for _, tag := range g.Nodes() {
		neighbors := g.Neighbors(tag)
		deg := len(neighbors)
		if deg < 2 {
			continue
		}

		links := 0
		for i := 0; i < deg; i++ {
			for j := i + 1; j < deg; j++ {
				if g.HasEdge(neighbors[i], neighbors[j]) {
					links++
				}
			}
		}

		possible := float64(deg) * float64(deg-1) / 2
		sum += float64(links) / possible
		counted++
	}

	if counted == 0 {
		return 0
	}
	return sum / float64(counted)
}
