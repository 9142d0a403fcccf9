// Package export serializes a built graph into one of the supported
// RDF formats. Serialization is all-or-nothing: output is rendered in
// memory first, so a failing run never leaves a partial file behind.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/semgff/semgff/graph"
)

// Serialize renders the graph in the given format.
func Serialize(g *graph.Graph, format Format) (string, error) {
	switch format {
	case FormatTurtle, FormatN3:
		return NewTurtleWriter().Write(g), nil
	case FormatNTriples:
		return NewNTriplesWriter().Write(g), nil
	case FormatRDFXML:
		return NewRDFXMLWriter().Write(g)
	default:
		return "", fmt.Errorf("unsupported RDF serialization %q", format)
	}
}

// WriteFile serializes the graph and writes it to path in one shot.
func WriteFile(path string, g *graph.Graph, format Format) error {
	doc, err := Serialize(g, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// OutputPath derives the output file name from an input path by
// swapping its extension for the format's.
func OutputPath(inputPath string, format Format) string {
	info, ok := GetFormatInfo(format)
	if !ok {
		info = FormatRegistry[DefaultFormat]
	}
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return base + info.Extension
}
