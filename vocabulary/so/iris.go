package so

import "strconv"

// Namespace is the OBO base IRI under which SO terms are published.
const Namespace = "http://purl.obolibrary.org/obo/"

// Class IRIs for the supported feature types.
const (
	// Genome is a whole genome (SO:0001026).
	Genome = Namespace + "SO_0001026"

	// Chromosome is a structural unit of the genome (SO:0000340).
	Chromosome = Namespace + "SO_0000340"

	// Gene is a region associated with a transcribed unit (SO:0000704).
	Gene = Namespace + "SO_0000704"

	// PrimTranscript is a protein-coding primary (unprocessed) transcript
	// which may contain introns (SO:0000120).
	PrimTranscript = Namespace + "SO_0000120"

	// MRNA is a mature messenger RNA (SO:0000234). The mRNA feature key is
	// often used in annotations where prim_transcript would be correct; both
	// keys are supported and mapped to their own classes.
	MRNA = Namespace + "SO_0000234"

	// CDS is a coding sequence (SO:0000316).
	CDS = Namespace + "SO_0000316"

	// Exon is a transcribed region present in mature RNA (SO:0000147).
	Exon = Namespace + "SO_0000147"

	// Intron is a region removed by splicing (SO:0000188).
	Intron = Namespace + "SO_0000188"

	// FivePrimeUTR is the 5' untranslated region (SO:0000204).
	FivePrimeUTR = Namespace + "SO_0000204"

	// ThreePrimeUTR is the 3' untranslated region (SO:0000205).
	ThreePrimeUTR = Namespace + "SO_0000205"

	// PolyASite is a polyadenylation site (SO:0000553).
	PolyASite = Namespace + "SO_0000553"

	// PolyASequence is a post-transcriptionally added adenine run
	// (SO:0000610).
	PolyASequence = Namespace + "SO_0000610"
)

// Relation property IRIs between features.
const (
	// PartOf links a feature to the feature it is a component of.
	PartOf = Namespace + "SO_part_of"

	// HasPart is the inverse of PartOf. Both directions are emitted so the
	// resulting graph can be traversed either way.
	HasPart = Namespace + "SO_has_part"

	// TranscribedTo links a gene to a transcript-level feature.
	TranscribedTo = Namespace + "SO_transcribed_to"

	// GenomeOf links a genome to the organism it belongs to.
	GenomeOf = Namespace + "SO_genome_of"

	// InTaxon is the RO "in taxon" property, asserted alongside GenomeOf
	// since the SO relation properties have no domain/range defined.
	InTaxon = Namespace + "RO_0002162"
)

// Taxon returns the OBO IRI of an NCBI Taxonomy identifier.
func Taxon(id int) string {
	return Namespace + "NCBITaxon_" + strconv.Itoa(id)
}
