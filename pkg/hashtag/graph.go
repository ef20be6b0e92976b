package hashtag

import (
	"sort"

	"igaudit/pkg/models"
)

// Graph is an undirected weighted hashtag co-occurrence graph. Nodes are
// distinct hashtags; edge weights count posts where both tags appear. The
// graph never contains self-loops.
type Graph struct {
	adj map[string]map[string]int
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{adj: make(map[string]map[string]int)}
}

// Build constructs the co-occurrence graph for a set of posts. Posts with a
// single hashtag contribute a node but no edges; duplicate tags within one
// post count once.
func Build(posts []models.PostRecord) *Graph {
	g := NewGraph()
	for _, post := range posts {
		g.addPost(post.Hashtags)
	}
	return g
}

func (g *Graph) addPost(tags []string) {
	distinct := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		distinct = append(distinct, tag)
	}

	for _, tag := range distinct {
		g.ensureNode(tag)
	}
	for i := 0; i < len(distinct); i++ {
		for j := i + 1; j < len(distinct); j++ {
			g.addCoOccurrence(distinct[i], distinct[j])
		}
	}
}

func (g *Graph) ensureNode(tag string) {
	if g.adj[tag] == nil {
		g.adj[tag] = make(map[string]int)
	}
}

func (g *Graph) addCoOccurrence(a, b string) {
	g.adj[a][b]++
	g.adj[b][a]++
}

// NodeCount returns the number of distinct hashtags
func (g *Graph) NodeCount() int {
	return len(g.adj)
}

// EdgeCount returns the number of distinct co-occurring pairs
func (g *Graph) EdgeCount() int {
	total := 0
	for _, neighbors := range g.adj {
		total += len(neighbors)
	}
	return total / 2
}

// Nodes returns all hashtags in ascending order
func (g *Graph) Nodes() []string {
	nodes := make([]string, 0, len(g.adj))
	for tag := range g.adj {
		nodes = append(nodes, tag)
	}
	sort.Strings(nodes)
	return nodes
}

// Degree returns the number of neighbors of a hashtag
func (g *Graph) Degree(tag string) int {
	return len(g.adj[tag])
}

// Weight returns the co-occurrence count between two hashtags, 0 when they
// never co-occur
func (g *Graph) Weight(a, b string) int {
	return g.adj[a][b]
}

// Neighbors returns the hashtags adjacent to tag in ascending order
func (g *Graph) Neighbors(tag string) []string {
	neighbors := make([]string, 0, len(g.adj[tag]))
	for other := range g.adj[tag] {
		neighbors = append(neighbors, other)
	}
	sort.Strings(neighbors)
	return neighbors
}

// HasEdge reports whether two hashtags ever co-occurred
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.adj[a][b]
	return ok
}

// totalWeight is the sum of all edge weights
func (g *Graph) totalWeight() float64 {
	var sum int
	for _, neighbors := range g.adj {
		for _, w := range neighbors {
			sum += w
		}
	}
	return float64(sum) / 2
}

// weightedDegree is the sum of weights on edges incident to tag
func (g *Graph) weightedDegree(tag string) float64 {
	var sum int
	for _, w := range g.adj[tag] {
		sum += w
	}
	return float64(sum)
}
