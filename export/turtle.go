package export

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/semgff/semgff/graph"
	"github.com/semgff/semgff/vocabulary"
)

// localName matches IRI remainders safe to emit as a prefixed local
// part in Turtle.
var localName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// TurtleWriter writes a graph in Turtle format, grouped by subject.
type TurtleWriter struct {
	prefixes map[string]string
	sb       strings.Builder
}

// NewTurtleWriter creates a new Turtle writer with default prefixes.
func NewTurtleWriter() *TurtleWriter {
	return &TurtleWriter{
		prefixes: defaultPrefixes(),
	}
}

// SetPrefix sets a namespace prefix.
func (w *TurtleWriter) SetPrefix(prefix, iri string) {
	w.prefixes[prefix] = iri
}

// Write serializes the whole graph and returns the Turtle document.
func (w *TurtleWriter) Write(g *graph.Graph) string {
	w.writePrefixes()
	for _, subject := range g.Subjects() {
		w.writeSubject(subject, g.About(subject))
	}
	return w.sb.String()
}

// writePrefixes writes prefix declarations, sorted for stable output.
func (w *TurtleWriter) writePrefixes() {
	keys := make([]string, 0, len(w.prefixes))
	for k := range w.prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, prefix := range keys {
		w.sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", prefix, w.prefixes[prefix]))
	}
	w.sb.WriteString("\n")
}

// writeSubject writes one subject block.
func (w *TurtleWriter) writeSubject(subject graph.Term, triples []graph.Triple) {
	w.sb.WriteString(w.term(subject) + "\n")
	for i, t := range triples {
		terminator := " ;"
		if i == len(triples)-1 {
			terminator = " ."
		}
		predicate := w.term(t.Predicate)
		if t.Predicate.Value == vocabulary.RdfType {
			predicate = "a"
		}
		w.sb.WriteString(fmt.Sprintf("    %s %s%s\n", predicate, w.term(t.Object), terminator))
	}
	w.sb.WriteString("\n")
}

// term renders a term, compacting IRIs against the bound prefixes.
func (w *TurtleWriter) term(t graph.Term) string {
	switch t.Kind {
	case graph.KindIRI:
		return w.iri(t.Value)
	case graph.KindBlank:
		return "_:" + t.Value
	default:
		s := "\"" + escapeString(t.Value) + "\""
		if t.Datatype != "" {
			s += "^^" + w.iri(t.Datatype)
		}
		return s
	}
}

func (w *TurtleWriter) iri(iri string) string {
	for prefix, ns := range w.prefixes {
		local, ok := strings.CutPrefix(iri, ns)
		if ok && localName.MatchString(local) {
			return prefix + ":" + local
		}
	}
	return "<" + iri + ">"
}
