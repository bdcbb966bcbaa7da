package interest

import (
	"sort"

	"github.com/graphmotif/grandiso/graph"
)

// Scores maps each motif vertex to its interestingness. Higher values are
// expanded earlier.
type Scores map[string]float64

// Uniform returns the default interestingness: every motif vertex scores
// 1.0, so ordering degenerates to vertex ID order (spec.md §4.3).
func Uniform(motif *graph.Graph) Scores {
	s := make(Scores, len(motif.Vertices()))
	for _, v := range motif.Vertices() {
		s[v] = 1.0
	}
	return s
}

// Pick returns the candidate with the highest score, breaking ties by the
// lexicographically smallest vertex ID (spec.md §3: "Ties broken
// deterministically by motif vertex identifier order"). Pick panics if
// candidates is empty; callers are expected to have already established
// that at least one candidate exists.
func Pick(candidates []string, scores Scores) string {
	best := candidates[0]
	bestScore := scores[best]
	for _, c := range candidates[1:] {
		s := scores[c]
		if s > bestScore || (s == bestScore && c < best) {
			best = c
			bestScore = s
		}
	}
	return best
}

// Sorted returns the motif vertices ordered most-interesting-first, with
// ties broken by ascending vertex ID. The search engine uses it to pick
// the seed vertex that anchors the very first assignment.
func Sorted(scores Scores) []string {
	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if scores[ids[i]] != scores[ids[j]] {
			return scores[ids[i]] > scores[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return ids
}
