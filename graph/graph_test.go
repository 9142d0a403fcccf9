package graph

import (
	"testing"

	"github.com/semgff/semgff/vocabulary"
)

func TestGraphDeduplicates(t *testing.T) {
	g := New()
	tr := Triple{IRI("urn:s"), IRI(vocabulary.RdfType), IRI("urn:c")}
	if !g.Add(tr) {
		t.Error("first Add must report new")
	}
	if g.Add(tr) {
		t.Error("duplicate Add must report not new")
	}
	if g.Len() != 1 {
		t.Errorf("Len = %d, want 1", g.Len())
	}
	if !g.Has(tr) {
		t.Error("Has must find the triple")
	}
}

func TestGraphOrder(t *testing.T) {
	g := New()
	triples := []Triple{
		{IRI("urn:b"), IRI("urn:p"), IRI("urn:x")},
		{IRI("urn:a"), IRI("urn:p"), IRI("urn:y")},
		{IRI("urn:b"), IRI("urn:p"), IRI("urn:z")},
	}
	for _, tr := range triples {
		g.Add(tr)
	}
	got := g.Triples()
	if len(got) != 3 {
		t.Fatalf("Len = %d, want 3", len(got))
	}
	for i := range triples {
		if got[i] != triples[i] {
			t.Errorf("triple %d = %v, want %v (insertion order)", i, got[i], triples[i])
		}
	}

	subjects := g.Subjects()
	if len(subjects) != 2 || subjects[0].Value != "urn:b" || subjects[1].Value != "urn:a" {
		t.Errorf("Subjects = %v, want [urn:b urn:a]", subjects)
	}
	if about := g.About(IRI("urn:b")); len(about) != 2 {
		t.Errorf("About(urn:b) = %d triples, want 2", len(about))
	}
}

func TestGraphSealed(t *testing.T) {
	g := New()
	g.Add(Triple{IRI("urn:s"), IRI("urn:p"), String("v")})
	g.Seal()
	if !g.Sealed() {
		t.Error("Sealed must report true after Seal")
	}
	if g.Add(Triple{IRI("urn:s2"), IRI("urn:p"), String("v")}) {
		t.Error("Add after Seal must be rejected")
	}
	if g.Len() != 1 {
		t.Errorf("Len = %d after sealed Add, want 1", g.Len())
	}
}

func TestTriplesIsACopy(t *testing.T) {
	g := New()
	g.Add(Triple{IRI("urn:s"), IRI("urn:p"), Plain("v")})
	ts := g.Triples()
	ts[0].Subject = IRI("urn:mutated")
	if g.Triples()[0].Subject.Value != "urn:s" {
		t.Error("mutating the returned slice must not affect the graph")
	}
}

func TestTermConstructors(t *testing.T) {
	if tr := IRI("urn:x"); !tr.IsIRI() || tr.IsLiteral() || tr.IsBlank() {
		t.Errorf("IRI kind wrong: %+v", tr)
	}
	if tr := Blank("b0"); !tr.IsBlank() {
		t.Errorf("Blank kind wrong: %+v", tr)
	}
	if tr := String("hello"); !tr.IsLiteral() || tr.Datatype != vocabulary.XsdString {
		t.Errorf("String term wrong: %+v", tr)
	}
	if tr := Plain("hello"); !tr.IsLiteral() || tr.Datatype != "" {
		t.Errorf("Plain term wrong: %+v", tr)
	}
}
