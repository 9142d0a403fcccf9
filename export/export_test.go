package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semgff/semgff/graph"
	"github.com/semgff/semgff/vocabulary"
	"github.com/semgff/semgff/vocabulary/faldo"
	"github.com/semgff/semgff/vocabulary/so"
)

func sampleGraph() *graph.Graph {
	const gene = "https://example.org/genome/tomato/gene/gene001"
	const region = "https://example.org/genome/tomato/chromosome/chr1#1000-5000"
	g := graph.New()
	g.Add(graph.Triple{Subject: graph.IRI(gene), Predicate: graph.IRI(vocabulary.RdfType), Object: graph.IRI(so.Gene)})
	g.Add(graph.Triple{Subject: graph.IRI(gene), Predicate: graph.IRI(vocabulary.RdfsLabel), Object: graph.String("gene gene001")})
	g.Add(graph.Triple{Subject: graph.IRI(gene), Predicate: graph.IRI(faldo.Location), Object: graph.IRI(region)})
	g.Add(graph.Triple{Subject: graph.IRI(region), Predicate: graph.IRI(vocabulary.RdfType), Object: graph.IRI(faldo.Region)})
	g.Add(graph.Triple{Subject: graph.IRI(region), Predicate: graph.IRI(vocabulary.RdfsLabel), Object: graph.Plain("region 1000-5000 on chromosome chr1")})
	g.Seal()
	return g
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTurtle, false},
		{"turtle", FormatTurtle, false},
		{"ttl", FormatTurtle, false},
		{"xml", FormatRDFXML, false},
		{"rdf", FormatRDFXML, false},
		{"nt", FormatNTriples, false},
		{"ntriples", FormatNTriples, false},
		{"n3", FormatN3, false},
		{"jsonld", "", true},
	}
	for _, tc := range tests {
		got, err := ParseFormat(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "ParseFormat(%q)", tc.in)
			continue
		}
		require.NoError(t, err, "ParseFormat(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParseFormat(%q)", tc.in)
	}
}

func TestFormatRegistry(t *testing.T) {
	tests := []struct {
		format Format
		ext    string
		mime   string
	}{
		{FormatTurtle, ".ttl", "text/turtle"},
		{FormatRDFXML, ".rdf", "application/rdf+xml"},
		{FormatNTriples, ".nt", "application/n-triples"},
		{FormatN3, ".n3", "text/n3"},
	}
	for _, tc := range tests {
		info, ok := GetFormatInfo(tc.format)
		require.True(t, ok, "missing registry entry for %s", tc.format)
		assert.Equal(t, tc.ext, info.Extension)
		assert.Equal(t, tc.mime, info.MIMEType)
	}
}

func TestTurtleOutput(t *testing.T) {
	doc, err := Serialize(sampleGraph(), FormatTurtle)
	require.NoError(t, err)

	assert.Contains(t, doc, "@prefix obo: <http://purl.obolibrary.org/obo/> .")
	assert.Contains(t, doc, "@prefix faldo: <http://biohackathon.org/resource/faldo#> .")

	// Subject block with compacted predicates and the rdf:type shortcut.
	assert.Contains(t, doc, "<https://example.org/genome/tomato/gene/gene001>\n")
	assert.Contains(t, doc, "    a obo:SO_0000704 ;")
	assert.Contains(t, doc, `    rdfs:label "gene gene001"^^xsd:string ;`)

	// Region URIs carry a fragment and stay in full form.
	assert.Contains(t, doc, "    faldo:location <https://example.org/genome/tomato/chromosome/chr1#1000-5000> .")

	// Plain literal without a datatype suffix.
	assert.Contains(t, doc, `"region 1000-5000 on chromosome chr1" .`)
}

func TestNTriplesOutput(t *testing.T) {
	doc, err := Serialize(sampleGraph(), FormatNTriples)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(doc, "\n"), "\n")
	assert.Len(t, lines, 5)
	assert.Equal(t,
		"<https://example.org/genome/tomato/gene/gene001> "+
			"<http://www.w3.org/1999/02/22-rdf-syntax-ns#type> "+
			"<http://purl.obolibrary.org/obo/SO_0000704> .",
		lines[0])
	assert.Equal(t,
		"<https://example.org/genome/tomato/gene/gene001> "+
			"<http://www.w3.org/2000/01/rdf-schema#label> "+
			`"gene gene001"^^<http://www.w3.org/2001/XMLSchema#string> .`,
		lines[1])
}

func TestNTriplesEscaping(t *testing.T) {
	g := graph.New()
	g.Add(graph.Triple{
		Subject:   graph.IRI("urn:s"),
		Predicate: graph.IRI(vocabulary.RdfsComment),
		Object:    graph.Plain("line1\nline2 \"quoted\" back\\slash"),
	})
	doc, err := Serialize(g, FormatNTriples)
	require.NoError(t, err)
	assert.Contains(t, doc, `"line1\nline2 \"quoted\" back\\slash"`)
}

func TestRDFXMLOutput(t *testing.T) {
	doc, err := Serialize(sampleGraph(), FormatRDFXML)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "<?xml"))
	assert.Contains(t, doc, `xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"`)
	assert.Contains(t, doc, `<rdf:Description rdf:about="https://example.org/genome/tomato/gene/gene001">`)
	assert.Contains(t, doc, `<rdf:type rdf:resource="http://purl.obolibrary.org/obo/SO_0000704">`)
	assert.Contains(t, doc, `rdf:datatype="http://www.w3.org/2001/XMLSchema#string"`)
	assert.Contains(t, doc, "gene gene001")
}

func TestN3MatchesTurtle(t *testing.T) {
	ttl, err := Serialize(sampleGraph(), FormatTurtle)
	require.NoError(t, err)
	n3, err := Serialize(sampleGraph(), FormatN3)
	require.NoError(t, err)
	assert.Equal(t, ttl, n3)
}

func TestSerializeDeterministic(t *testing.T) {
	for _, format := range []Format{FormatTurtle, FormatNTriples, FormatRDFXML} {
		t.Run(string(format), func(t *testing.T) {
			first, err := Serialize(sampleGraph(), format)
			require.NoError(t, err)
			second, err := Serialize(sampleGraph(), format)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ttl")
	require.NoError(t, WriteFile(path, sampleGraph(), FormatTurtle))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "a obo:SO_0000704")
}

func TestWriteFileUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bad")
	err := WriteFile(path, sampleGraph(), Format("jsonld"))
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no partial output on failure")
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "annotation.ttl", OutputPath("annotation.db", FormatTurtle))
	assert.Equal(t, "data/tomato.rdf", OutputPath("data/tomato.db", FormatRDFXML))
	assert.Equal(t, "in.nt", OutputPath("in.gff3", FormatNTriples))
	assert.Equal(t, "plain.n3", OutputPath("plain", FormatN3))
}
