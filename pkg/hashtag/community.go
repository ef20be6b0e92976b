package hashtag

import "sort"

// community is one partition cell during greedy modularity merging
type community struct {
	labels []string // sorted
	degree float64  // sum of weighted degrees of members
}

// Communities partitions the graph by greedy modularity maximization: start
// with singleton communities and repeatedly merge the connected pair with
// the largest modularity gain until no merge improves modularity. When gains
// tie, the pair whose combined label set is lexicographically smaller wins,
// which makes the partition deterministic. Communities holding a single node
// are excluded from the result.
//
// The returned communities are ordered by size descending, then by their
// first label; members within a community are sorted.
func (g *Graph) Communities() [][]string {
	m := g.totalWeight()
	if m == 0 {
		return nil
	}

	nodes := g.Nodes()
	comms := make([]*community, len(nodes))
	index := make(map[string]int, len(nodes))
	for i, tag := range nodes {
		comms[i] = &community{labels: []string{tag}, degree: g.weightedDegree(tag)}
		index[tag] = i
	}

	// between[i][j] holds the total edge weight between communities i and j
	between := make([]map[int]float64, len(nodes))
	for i := range between {
		between[i] = make(map[int]float64)
	}
	for tag, neighbors := range g.adj {
		i := index[tag]
		for other, w := range neighbors {
			j := index[other]
			if i < j {
				between[i][j] += float64(w)
				between[j][i] += float64(w)
			}
		}
	}

	for {
		bestI, bestJ := -1, -1
		bestGain := 0.0
		var bestLabels []string

		for i, comm := range comms {
			if comm == nil {
				continue
			}
			for j, w := range between[i] {
				if j <= i || comms[j] == nil {
					continue
				}
				gain := w/m - comm.degree*comms[j].degree/(2*m*m)
				if gain <= 0 {
					continue
				}
				merged := mergeSorted(comm.labels, comms[j].labels)
				if bestI == -1 || gain > bestGain ||
					(gain == bestGain && lessLabels(merged, bestLabels)) {
					bestI, bestJ = i, j
					bestGain = gain
					bestLabels = merged
				}
			}
		}

		if bestI == -1 {
			break
		}

		// fold community bestJ into bestI
		comms[bestI].labels = bestLabels
		comms[bestI].degree += comms[bestJ].degree
		for k, w := range between[bestJ] {
			if k == bestI {
				continue
			}
			between[bestI][k] += w
			between[k][bestI] += w
			delete(between[k], bestJ)
		}
		delete(between[bestI], bestJ)
		between[bestJ] = nil
		comms[bestJ] = nil
	}

	var result [][]string
	for _, comm := range comms {
		if comm == nil || len(comm.labels) < 2 {
			continue
		}
		result = append(result, comm.labels)
	}
	sort.Slice(result, func(i, j int) bool {
		if len(result[i]) != len(result[j]) {
			return len(result[i]) > len(result[j])
		}
		return lessLabels(result[i], result[j])
	})
	return result
}

// mergeSorted merges two sorted label slices into one sorted slice
func mergeSorted(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// lessLabels compares label sets lexicographically element by element
func lessLabels(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
