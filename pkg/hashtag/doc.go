// Package hashtag builds weighted co-occurrence graphs over the hashtags of
// a profile's posts and derives structural metrics from them.
//
// Two hashtags are connected when they appear together in at least one post;
// the edge weight counts how many posts they share. Graphs are rebuilt fresh
// for every analysis run, so there is no cross-profile state. Community
// structure comes from greedy modularity maximization with a lexicographic
// tie-break, which keeps results reproducible when merge gains tie.
package hashtag
