// Package vocabulary provides W3C standard vocabulary IRIs shared by the
// ontology mapper, the graph builder, and the serializers.
//
// References:
// - RDF: https://www.w3.org/TR/rdf11-concepts/
// - RDF Schema: https://www.w3.org/TR/rdf-schema/
// - XML Schema Datatypes: https://www.w3.org/TR/xmlschema11-2/
// - Dublin Core Terms: https://www.dublincore.org/specifications/dublin-core/dcmi-terms/
package vocabulary

// Namespace IRIs for the standard vocabularies used in generated graphs.
const (
	// RDFNamespace is the RDF syntax namespace.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RDFSNamespace is the RDF Schema namespace.
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"

	// XSDNamespace is the XML Schema datatype namespace.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

	// DCTermsNamespace is the Dublin Core terms namespace.
	DCTermsNamespace = "http://purl.org/dc/terms/"

	// DCMITypeNamespace is the DCMI type vocabulary namespace.
	DCMITypeNamespace = "http://purl.org/dc/dcmitype/"
)

// RDF and RDF Schema IRIs.
const (
	// RdfType asserts the class of a resource.
	RdfType = RDFNamespace + "type"

	// RdfsLabel provides a human-readable name for a resource.
	RdfsLabel = RDFSNamespace + "label"

	// RdfsComment provides a human-readable description of a resource.
	RdfsComment = RDFSNamespace + "comment"
)

// XML Schema datatype IRIs used on literals.
const (
	// XsdString types plain string literals.
	XsdString = XSDNamespace + "string"

	// XsdDate types ISO-8601 date literals.
	XsdDate = XSDNamespace + "date"

	// XsdInteger types integer literals.
	XsdInteger = XSDNamespace + "integer"

	// XsdPositiveInteger types strictly positive integer literals.
	// Feature coordinates are 1-based, so positions use this type.
	XsdPositiveInteger = XSDNamespace + "positiveInteger"
)

// Dublin Core IRIs carried on the genome dataset node.
const (
	// DcIdentifier provides an unambiguous reference to the resource.
	DcIdentifier = DCTermsNamespace + "identifier"

	// DcTitle provides the name given to the resource.
	DcTitle = DCTermsNamespace + "title"

	// DcCreated records the creation date of the resource.
	DcCreated = DCTermsNamespace + "created"

	// DcCreator identifies the agent that made the resource available.
	DcCreator = DCTermsNamespace + "creator"

	// DcSource indicates the resource the dataset is derived from.
	DcSource = DCTermsNamespace + "source"

	// DcmiDataset is the DCMI class for data collections.
	DcmiDataset = DCMITypeNamespace + "Dataset"
)
