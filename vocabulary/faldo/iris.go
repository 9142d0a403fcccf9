// Package faldo provides Feature Annotation Location Description Ontology
// IRIs used to describe sequence positions and regions in RDF.
//
// Reference: http://biohackathon.org/resource/faldo
package faldo

// Namespace is the FALDO base IRI.
const Namespace = "http://biohackathon.org/resource/faldo#"

// Class IRIs.
const (
	// Region is a location with a begin and an end position.
	Region = Namespace + "Region"

	// ExactPosition is a position known to single-base resolution.
	ExactPosition = Namespace + "ExactPosition"

	// ForwardStrandPosition is a position on the forward (+) strand.
	ForwardStrandPosition = Namespace + "ForwardStrandPosition"

	// ReverseStrandPosition is a position on the reverse (-) strand.
	ReverseStrandPosition = Namespace + "ReverseStrandPosition"

	// StrandedPosition is a position on one strand, which one unknown.
	StrandedPosition = Namespace + "StrandedPosition"

	// Position is a position with no strand information.
	Position = Namespace + "Position"
)

// Property IRIs.
const (
	// Location links a feature to its region.
	Location = Namespace + "location"

	// Begin links a region to its start position node.
	Begin = Namespace + "begin"

	// End links a region to its end position node.
	End = Namespace + "end"

	// PositionValue carries the 1-based coordinate literal of a position
	// node. The FALDO property name is "position"; the Go name avoids
	// clashing with the Position class constant.
	PositionValue = Namespace + "position"

	// Reference links a position to the sequence it is on.
	Reference = Namespace + "reference"
)
