package graph

// Triple is one RDF statement.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// Graph is a deduplicated set of triples that preserves first-insertion
// order. It is append-only while being built; once sealed, further Add
// calls are rejected.
type Graph struct {
	triples []Triple
	index   map[Triple]struct{}
	sealed  bool
}

// New returns an empty, unsealed graph.
func New() *Graph {
	return &Graph{index: make(map[Triple]struct{})}
}

// Add inserts a triple and reports whether it was new. Duplicates and
// adds after Seal are no-ops returning false.
func (g *Graph) Add(t Triple) bool {
	if g.sealed {
		return false
	}
	if _, ok := g.index[t]; ok {
		return false
	}
	g.index[t] = struct{}{}
	g.triples = append(g.triples, t)
	return true
}

// Seal freezes the graph. A sealed graph is safe to hand to a
// serializer without further synchronization.
func (g *Graph) Seal() { g.sealed = true }

// Sealed reports whether the graph has been frozen.
func (g *Graph) Sealed() bool { return g.sealed }

// Has reports whether the graph contains t.
func (g *Graph) Has(t Triple) bool {
	_, ok := g.index[t]
	return ok
}

// Len returns the number of distinct triples.
func (g *Graph) Len() int { return len(g.triples) }

// Triples returns the triples in first-insertion order. The slice is a
// copy.
func (g *Graph) Triples() []Triple {
	return append([]Triple(nil), g.triples...)
}

// Subjects returns the distinct subjects in first-insertion order.
func (g *Graph) Subjects() []Term {
	seen := make(map[Term]struct{}, len(g.triples))
	var subjects []Term
	for _, t := range g.triples {
		if _, ok := seen[t.Subject]; ok {
			continue
		}
		seen[t.Subject] = struct{}{}
		subjects = append(subjects, t.Subject)
	}
	return subjects
}

// About returns the triples with the given subject, in insertion order.
func (g *Graph) About(subject Term) []Triple {
	var out []Triple
	for _, t := range g.triples {
		if t.Subject == subject {
			out = append(out, t)
		}
	}
	return out
}
