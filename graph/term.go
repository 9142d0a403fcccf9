// Package graph holds the RDF triple set produced by one conversion
// run and the Builder that fills it from a feature store. The graph is
// an explicit value handed to a serializer; nothing is aggregated
// globally.
package graph

import "github.com/semgff/semgff/vocabulary"

// TermKind discriminates the three RDF term forms.
type TermKind int

const (
	KindIRI TermKind = iota
	KindBlank
	KindLiteral
)

// Term is a single RDF term. Datatype is set only for literals and may
// be empty for plain literals.
type Term struct {
	Kind     TermKind
	Value    string
	Datatype string
}

// IRI returns an IRI term.
func IRI(value string) Term { return Term{Kind: KindIRI, Value: value} }

// Blank returns a blank node term with the given label.
func Blank(label string) Term { return Term{Kind: KindBlank, Value: label} }

// Literal returns a typed literal term.
func Literal(value, datatype string) Term {
	return Term{Kind: KindLiteral, Value: value, Datatype: datatype}
}

// String returns an xsd:string literal term.
func String(value string) Term {
	return Literal(value, vocabulary.XsdString)
}

// Plain returns an untyped literal term.
func Plain(value string) Term {
	return Term{Kind: KindLiteral, Value: value}
}

func (t Term) IsIRI() bool     { return t.Kind == KindIRI }
func (t Term) IsBlank() bool   { return t.Kind == KindBlank }
func (t Term) IsLiteral() bool { return t.Kind == KindLiteral }
