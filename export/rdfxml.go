package export

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"sort"

	"github.com/semgff/semgff/graph"
	"github.com/semgff/semgff/vocabulary"
)

// RDFXMLWriter writes a graph in RDF/XML format through an
// encoding/xml token encoder. Statements are grouped into one
// rdf:Description element per subject.
type RDFXMLWriter struct {
	prefixes map[string]string
	buf      bytes.Buffer
	enc      *xml.Encoder
}

// NewRDFXMLWriter creates a new RDF/XML writer with default prefixes.
func NewRDFXMLWriter() *RDFXMLWriter {
	w := &RDFXMLWriter{prefixes: defaultPrefixes()}
	w.enc = xml.NewEncoder(&w.buf)
	w.enc.Indent("", "  ")
	return w
}

// Write serializes the whole graph and returns the RDF/XML document.
func (w *RDFXMLWriter) Write(g *graph.Graph) (string, error) {
	w.buf.WriteString(xml.Header)

	attrs := make([]xml.Attr, 0, len(w.prefixes))
	keys := make([]string, 0, len(w.prefixes))
	for k := range w.prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "xmlns:" + k}, Value: w.prefixes[k]})
	}

	root := xml.StartElement{Name: xml.Name{Local: "rdf:RDF"}, Attr: attrs}
	if err := w.enc.EncodeToken(root); err != nil {
		return "", err
	}

	for _, subject := range g.Subjects() {
		if err := w.writeDescription(subject, g.About(subject)); err != nil {
			return "", err
		}
	}

	if err := w.enc.EncodeToken(xml.EndElement{Name: root.Name}); err != nil {
		return "", err
	}
	if err := w.enc.Flush(); err != nil {
		return "", err
	}
	w.buf.WriteString("\n")
	return w.buf.String(), nil
}

// writeDescription writes one rdf:Description element.
func (w *RDFXMLWriter) writeDescription(subject graph.Term, triples []graph.Triple) error {
	attr := xml.Attr{Name: xml.Name{Local: "rdf:about"}, Value: subject.Value}
	if subject.IsBlank() {
		attr = xml.Attr{Name: xml.Name{Local: "rdf:nodeID"}, Value: subject.Value}
	}
	start := xml.StartElement{Name: xml.Name{Local: "rdf:Description"}, Attr: []xml.Attr{attr}}
	if err := w.enc.EncodeToken(start); err != nil {
		return err
	}

	for _, t := range triples {
		if err := w.writeStatement(t); err != nil {
			return err
		}
	}

	return w.enc.EncodeToken(xml.EndElement{Name: start.Name})
}

// writeStatement writes one predicate element inside a description.
func (w *RDFXMLWriter) writeStatement(t graph.Triple) error {
	qname, err := w.qname(t.Predicate.Value)
	if err != nil {
		return err
	}
	el := xml.StartElement{Name: xml.Name{Local: qname}}

	switch {
	case t.Object.IsIRI():
		el.Attr = append(el.Attr, xml.Attr{Name: xml.Name{Local: "rdf:resource"}, Value: t.Object.Value})
		if err := w.enc.EncodeToken(el); err != nil {
			return err
		}
	case t.Object.IsBlank():
		el.Attr = append(el.Attr, xml.Attr{Name: xml.Name{Local: "rdf:nodeID"}, Value: t.Object.Value})
		if err := w.enc.EncodeToken(el); err != nil {
			return err
		}
	default:
		if t.Object.Datatype != "" {
			el.Attr = append(el.Attr, xml.Attr{Name: xml.Name{Local: "rdf:datatype"}, Value: t.Object.Datatype})
		}
		if err := w.enc.EncodeToken(el); err != nil {
			return err
		}
		if err := w.enc.EncodeToken(xml.CharData(t.Object.Value)); err != nil {
			return err
		}
	}

	return w.enc.EncodeToken(xml.EndElement{Name: el.Name})
}

// qname compacts a predicate IRI to prefix:local form. RDF/XML cannot
// express a predicate whose IRI does not split on a bound namespace.
func (w *RDFXMLWriter) qname(iri string) (string, error) {
	if iri == vocabulary.RdfType {
		return "rdf:type", nil
	}
	for prefix, ns := range w.prefixes {
		if local, ok := cutNamespace(iri, ns); ok {
			return prefix + ":" + local, nil
		}
	}
	return "", fmt.Errorf("predicate %q not in a bound namespace", iri)
}

func cutNamespace(iri, ns string) (string, bool) {
	if len(iri) <= len(ns) || iri[:len(ns)] != ns {
		return "", false
	}
	local := iri[len(ns):]
	if !localName.MatchString(local) {
		return "", false
	}
	return local, true
}
