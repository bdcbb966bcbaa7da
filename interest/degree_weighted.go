package interest

import (
	"gonum.org/v1/gonum/stat"

	"github.com/graphmotif/grandiso/graph"
)

// DegreeWeighted scores each motif vertex by its z-scored degree: vertices
// whose degree is unusually high relative to the rest of the motif score
// higher, so the search engine prefers to anchor on them first (spec.md
// §4.3: "choosing highly selective motif vertices early prunes the search
// tree aggressively"). A motif vertex's degree bounds how many host edges
// must line up for it, so high-degree vertices tend to eliminate more
// candidates per expansion than low-degree ones.
//
// If every motif vertex has equal degree (stat.StdDev is 0, e.g. a cycle)
// or the motif has a single vertex (whose sample standard deviation is
// undefined), DegreeWeighted falls back to Uniform to avoid dividing by
// zero.
func DegreeWeighted(motif *graph.Graph) Scores {
	ids := motif.Vertices()
	if len(ids) == 0 {
		return Scores{}
	}

	degrees := make([]float64, len(ids))
	for i, id := range ids {
		if motif.Directed() {
			degrees[i] = float64(motif.DegreeIn(id) + motif.DegreeOut(id))
		} else {
			degrees[i] = float64(motif.Degree(id))
		}
	}

	mean := stat.Mean(degrees, nil)
	std := stat.StdDev(degrees, nil)
	if len(ids) == 1 || std == 0 {
		return Uniform(motif)
	}

	scores := make(Scores, len(ids))
	for i, id := range ids {
		scores[id] = stat.StdScore(degrees[i], mean, std)
	}
	return scores
}
