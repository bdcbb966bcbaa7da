package search

import (
	"fmt"
	"sort"

	"github.com/graphmotif/grandiso/backbone"
	"github.com/graphmotif/grandiso/graph"
	"github.com/graphmotif/grandiso/interest"
	"github.com/graphmotif/grandiso/match"
)

// Item is the search package's local name for a partial or complete
// mapping in flight, identical to queue.Item.
type Item = *backbone.Backbone

// requiredEdge describes one motif edge between the vertex about to be
// placed (implicit) and a vertex already present in a backbone.
type requiredEdge struct {
	placed           string // motif vertex ID already in the backbone
	outgoingFromNext bool   // true: motif edge runs (next -> placed); false: (placed -> next)
}

// searcher holds everything one FindMotifs/FindMotifsIter call needs to
// expand backbones: the effective (possibly undirected-viewed) graphs,
// the interestingness ordering, and the predicate configuration. It has
// no mutable state of its own beyond the cache, so one searcher may be
// shared across the parallel worker pool of spec.md §5.
type searcher struct {
	motif, host *graph.Graph
	motifSize   int
	scores      interest.Scores
	directed    bool
	cfg         *config
	cache       *match.Cache
}

// chooseSeed picks the motif vertex to anchor the very first assignment:
// the highest-interestingness vertex, ties broken by ascending ID.
func chooseSeed(scores interest.Scores) string {
	return interest.Sorted(scores)[0]
}

// hasMappedNeighbor reports whether motif vertex v has at least one
// neighbor (ignoring direction) already present in b's domain.
func hasMappedNeighbor(b Item, motif *graph.Graph, v string, directed bool) bool {
	for _, n := range motif.NeighborsOut(v) {
		if _, ok := b.Get(n); ok {
			return true
		}
	}
	if directed {
		for _, n := range motif.NeighborsIn(v) {
			if _, ok := b.Get(n); ok {
				return true
			}
		}
	}
	return false
}

// chooseNextNode picks the next motif vertex to assign, per spec.md
// §4.5.2 step 2: among unmapped motif vertices adjacent to the current
// backbone, the one with maximum interestingness (interest.Pick's
// deterministic tie-break by ID); if none are adjacent — the motif is
// disconnected and the current component is exhausted — the most
// interesting unmapped vertex globally. Returns "" once every motif
// vertex is assigned.
func chooseNextNode(b Item, motif *graph.Graph, scores interest.Scores, directed bool) string {
	var unmapped, adjacent []string
	for _, v := range motif.Vertices() {
		if _, ok := b.Get(v); ok {
			continue
		}
		unmapped = append(unmapped, v)
		if hasMappedNeighbor(b, motif, v, directed) {
			adjacent = append(adjacent, v)
		}
	}
	if len(unmapped) == 0 {
		return ""
	}
	if len(adjacent) > 0 {
		return interest.Pick(adjacent, scores)
	}
	return interest.Pick(unmapped, scores)
}

func requiredEdgesFor(next string, b Item, motif *graph.Graph, directed bool) []requiredEdge {
	var edges []requiredEdge
	for _, other := range motif.NeighborsOut(next) {
		if _, ok := b.Get(other); ok {
			edges = append(edges, requiredEdge{placed: other, outgoingFromNext: true})
		}
	}
	if directed {
		for _, other := range motif.NeighborsIn(next) {
			if _, ok := b.Get(other); ok {
				edges = append(edges, requiredEdge{placed: other, outgoingFromNext: false})
			}
		}
	}
	return edges
}

// candidateHostVertices intersects, across every required edge, the set
// of host vertices reachable from (or reaching) that edge's already-placed
// endpoint, leaving only host vertices that could satisfy every required
// edge at once.
func candidateHostVertices(edges []requiredEdge, b Item, host *graph.Graph, directed bool) []string {
	var set map[string]struct{}
	for i, re := range edges {
		hostOther, _ := b.Get(re.placed)

		var neighbors []string
		switch {
		case directed && re.outgoingFromNext:
			// motif edge is (next -> placed): a candidate c must satisfy
			// host edge (c -> hostOther), so c is a predecessor of hostOther.
			neighbors = host.NeighborsIn(hostOther)
		case directed && !re.outgoingFromNext:
			// motif edge is (placed -> next): c must satisfy (hostOther -> c).
			neighbors = host.NeighborsOut(hostOther)
		default:
			neighbors = host.NeighborsOut(hostOther)
		}

		if i == 0 {
			set = make(map[string]struct{}, len(neighbors))
			for _, n := range neighbors {
				set[n] = struct{}{}
			}
			continue
		}
		next := make(map[string]struct{}, len(set))
		for _, n := range neighbors {
			if _, ok := set[n]; ok {
				next[n] = struct{}{}
			}
		}
		set = next
	}

	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// callPredicate recovers a panic raised by a caller-supplied predicate,
// turning it into a *PredicateError carrying the backbone that was under
// construction, per spec.md §7.
func callPredicate(b Item, fn func() bool) (result bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newPredicateError(b.ToMap(), r)
		}
	}()
	result = fn()
	return
}

func (s *searcher) structuralOK(m, h string, b Item) (bool, error) {
	return callPredicate(b, func() bool { return s.cfg.structuralMatch(s.motif, s.host, m, h) })
}

func (s *searcher) nodeAttrOK(m, h string, b Item) (bool, error) {
	var predicateErr error
	ok := s.cache.GetOrCompute("node:"+m, h, func() bool {
		result, err := callPredicate(b, func() bool { return s.cfg.nodeAttrMatch(s.motif, s.host, m, h) })
		predicateErr = err
		return result
	})
	return ok, predicateErr
}

func (s *searcher) edgeAttrOK(mu, mv, hu, hv string, b Item) (bool, error) {
	var predicateErr error
	ok := s.cache.GetOrCompute(fmt.Sprintf("edge:%s>%s", mu, mv), fmt.Sprintf("%s>%s", hu, hv), func() bool {
		result, err := callPredicate(b, func() bool { return s.cfg.edgeAttrMatch(s.motif, s.host, mu, mv, hu, hv) })
		predicateErr = err
		return result
	})
	return ok, predicateErr
}

func (s *searcher) edgesOK(edges []requiredEdge, b Item, next, c string) (bool, error) {
	for _, re := range edges {
		hostOther, _ := b.Get(re.placed)
		var mu, mv, hu, hv string
		if re.outgoingFromNext {
			mu, mv, hu, hv = next, re.placed, c, hostOther
		} else {
			mu, mv, hu, hv = re.placed, next, hostOther, c
		}
		ok, err := s.edgeAttrOK(mu, mv, hu, hv, b)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// isInducedConsistent reports whether, among the motif vertices assigned
// in b, every non-edge of the motif is realized as a non-edge in the
// host. It is checked as soon as a motif vertex is placed (not only at
// completion), so induced-isomorphism searches prune spurious-edge
// backbones as early as possible.
func (s *searcher) isInducedConsistent(b Item) bool {
	domain := b.Domain()
	for _, u := range domain {
		hu, _ := b.Get(u)
		for _, v := range domain {
			if u == v {
				continue
			}
			hv, _ := b.Get(v)
			if !s.motif.HasEdge(u, v) && s.host.HasEdge(hu, hv) {
				return false
			}
		}
	}
	return true
}

// expand returns every backbone reachable from b by assigning one more
// motif vertex, applying the structural, node-attribute and
// edge-attribute predicates (and, if configured, the induced-isomorphism
// no-extra-edge check) as it goes. A returned backbone whose Len equals
// the motif's vertex count is a completion; any other length is a partial
// mapping to push back onto the work queue.
func (s *searcher) expand(b Item) ([]Item, error) {
	if b.Len() == 0 {
		seed := chooseSeed(s.scores)
		var out []Item
		for _, h := range s.host.Vertices() {
			structOK, err := s.structuralOK(seed, h, b)
			if err != nil {
				return nil, err
			}
			if !structOK {
				continue
			}
			attrOK, err := s.nodeAttrOK(seed, h, b)
			if err != nil {
				return nil, err
			}
			if !attrOK {
				continue
			}
			out = append(out, b.Extend(seed, h))
		}
		return out, nil
	}

	next := chooseNextNode(b, s.motif, s.scores, s.directed)
	if next == "" {
		// Every motif vertex is already assigned; nothing left to expand.
		return nil, nil
	}

	edges := requiredEdgesFor(next, b, s.motif, s.directed)
	var candidates []string
	if len(edges) == 0 {
		// next has no already-mapped motif neighbor — either the motif is
		// disconnected and chooseNextNode fell back to a different
		// component, or next is genuinely isolated. Either way spec.md
		// §4.5.2 step 3 says every host vertex is a candidate; injectivity
		// is filtered in the loop below like any other candidate set.
		candidates = s.host.Vertices()
	} else {
		candidates = candidateHostVertices(edges, b, s.host, s.directed)
	}

	var out []Item
	for _, c := range candidates {
		if b.HasHost(c) {
			continue
		}
		structOK, err := s.structuralOK(next, c, b)
		if err != nil {
			return nil, err
		}
		if !structOK {
			continue
		}
		attrOK, err := s.nodeAttrOK(next, c, b)
		if err != nil {
			return nil, err
		}
		if !attrOK {
			continue
		}
		edgesOK, err := s.edgesOK(edges, b, next, c)
		if err != nil {
			return nil, err
		}
		if !edgesOK {
			continue
		}
		candidate := b.Extend(next, c)
		if s.cfg.isomorphismsOnly && !s.isInducedConsistent(candidate) {
			continue
		}
		out = append(out, candidate)
	}
	return out, nil
}

// validateHint checks whether a caller-supplied partial mapping is
// internally consistent (injective, structurally admissible, and
// edge-consistent with everything already assigned) before it is allowed
// to seed the search. Invalid hints are dropped by the caller rather than
// erroring the whole run (SPEC_FULL.md §5.7); a panicking predicate is
// still reported, since that indicates a broken predicate rather than an
// unlucky hint.
func (s *searcher) validateHint(hint map[string]string) (Item, bool, error) {
	motifIDs := make([]string, 0, len(hint))
	for m := range hint {
		motifIDs = append(motifIDs, m)
	}
	sort.Strings(motifIDs)

	b := backbone.Empty()
	hostSeen := make(map[string]struct{}, len(hint))
	for _, m := range motifIDs {
		h := hint[m]
		if _, ok := s.motif.VertexAttrs(m); !ok {
			return nil, false, nil
		}
		if _, ok := s.host.VertexAttrs(h); !ok {
			return nil, false, nil
		}
		if _, dup := hostSeen[h]; dup {
			return nil, false, nil
		}
		hostSeen[h] = struct{}{}
		structOK, err := s.structuralOK(m, h, b)
		if err != nil {
			return nil, false, err
		}
		if !structOK {
			return nil, false, nil
		}
		attrOK, err := s.nodeAttrOK(m, h, b)
		if err != nil {
			return nil, false, err
		}
		if !attrOK {
			return nil, false, nil
		}
		b = b.Extend(m, h)
	}

	for _, u := range motifIDs {
		hu, _ := b.Get(u)
		for _, v := range motifIDs {
			if u == v {
				continue
			}
			hv, _ := b.Get(v)
			if s.motif.HasEdge(u, v) {
				if !s.host.HasEdge(hu, hv) {
					return nil, false, nil
				}
				edgeOK, err := s.edgeAttrOK(u, v, hu, hv, b)
				if err != nil {
					return nil, false, err
				}
				if !edgeOK {
					return nil, false, nil
				}
			} else if s.cfg.isomorphismsOnly && s.host.HasEdge(hu, hv) {
				return nil, false, nil
			}
		}
	}
	return b, true, nil
}
