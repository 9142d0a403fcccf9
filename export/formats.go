package export

import (
	"fmt"

	"github.com/semgff/semgff/vocabulary"
	"github.com/semgff/semgff/vocabulary/faldo"
	"github.com/semgff/semgff/vocabulary/so"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output. This is the default.
	FormatTurtle Format = "turtle"

	// FormatRDFXML produces RDF/XML (.rdf) output.
	FormatRDFXML Format = "xml"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "nt"

	// FormatN3 produces Notation3 (.n3) output. The emitted document is
	// the Turtle subset of N3.
	FormatN3 Format = "n3"
)

// DefaultFormat is used when no format is configured.
const DefaultFormat = FormatTurtle

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Description: "Turtle - Terse RDF Triple Language",
	},
	FormatRDFXML: {
		Name:        FormatRDFXML,
		MIMEType:    "application/rdf+xml",
		Extension:   ".rdf",
		Description: "RDF/XML - XML syntax for RDF",
	},
	FormatNTriples: {
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extension:   ".nt",
		Description: "N-Triples - Line-based RDF format",
	},
	FormatN3: {
		Name:        FormatN3,
		MIMEType:    "text/n3",
		Extension:   ".n3",
		Description: "Notation3 - Turtle-compatible subset",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// ParseFormat resolves a format name to a Format. The empty string
// resolves to the default.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "":
		return DefaultFormat, nil
	case "turtle", "ttl":
		return FormatTurtle, nil
	case "xml", "rdf", "rdfxml":
		return FormatRDFXML, nil
	case "nt", "ntriples":
		return FormatNTriples, nil
	case "n3":
		return FormatN3, nil
	}
	return "", fmt.Errorf("unsupported RDF serialization %q", name)
}

// defaultPrefixes returns the namespace prefixes bound in Turtle and
// RDF/XML output.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":      vocabulary.RDFNamespace,
		"rdfs":     vocabulary.RDFSNamespace,
		"xsd":      vocabulary.XSDNamespace,
		"dcterms":  vocabulary.DCTermsNamespace,
		"dcmitype": vocabulary.DCMITypeNamespace,
		"obo":      so.Namespace,
		"faldo":    faldo.Namespace,
	}
}
