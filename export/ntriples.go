package export

import (
	"fmt"
	"strings"

	"github.com/semgff/semgff/graph"
)

// NTriplesWriter writes a graph in N-Triples format, one statement per
// line with full IRIs.
type NTriplesWriter struct {
	sb strings.Builder
}

// NewNTriplesWriter creates a new N-Triples writer.
func NewNTriplesWriter() *NTriplesWriter {
	return &NTriplesWriter{}
}

// Write serializes the whole graph and returns the N-Triples document.
func (w *NTriplesWriter) Write(g *graph.Graph) string {
	for _, t := range g.Triples() {
		w.sb.WriteString(fmt.Sprintf("%s %s %s .\n",
			formatTermNTriples(t.Subject),
			formatTermNTriples(t.Predicate),
			formatTermNTriples(t.Object)))
	}
	return w.sb.String()
}

// formatTermNTriples renders a term in the N-Triples grammar.
func formatTermNTriples(t graph.Term) string {
	switch t.Kind {
	case graph.KindIRI:
		return "<" + t.Value + ">"
	case graph.KindBlank:
		return "_:" + t.Value
	default:
		s := "\"" + escapeString(t.Value) + "\""
		if t.Datatype != "" {
			s += "^^<" + t.Datatype + ">"
		}
		return s
	}
}

// escapeString escapes special characters in literals for RDF
// serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
