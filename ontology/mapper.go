// Package ontology maps GFF feature types, strands and parent-child
// relations onto Sequence Ontology and FALDO terms, and mints the
// deterministic URIs that identify features in the output graph.
//
// The URI data space is rooted at a configured base URI:
//
//	<base>/genome/<species>/<type>/<id>
//
// with chromosome-anchored fragments #<start>-<end> for regions and
// #<pos> for exact positions.
package ontology

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/semgff/semgff/gff"
	"github.com/semgff/semgff/vocabulary/faldo"
	"github.com/semgff/semgff/vocabulary/so"
)

// featureClasses is the fixed feature-type mapping. Note the distinct
// entries for mRNA (mature transcript, SO_0000234) and prim_transcript
// (unprocessed transcript, SO_0000120): annotations commonly use the
// former key where the latter is meant, but both are accepted as-is.
var featureClasses = map[string]string{
	"genome":          so.Genome,
	"chromosome":      so.Chromosome,
	"gene":            so.Gene,
	"prim_transcript": so.PrimTranscript,
	"mRNA":            so.MRNA,
	"CDS":             so.CDS,
	"exon":            so.Exon,
	"intron":          so.Intron,
	"five_prime_UTR":  so.FivePrimeUTR,
	"three_prime_UTR": so.ThreePrimeUTR,
	"polyA_site":      so.PolyASite,
	"polyA_sequence":  so.PolyASequence,
}

var strandClasses = map[gff.Strand]string{
	gff.StrandForward: faldo.ForwardStrandPosition,
	gff.StrandReverse: faldo.ReverseStrandPosition,
	gff.StrandUnknown: faldo.StrandedPosition,
	gff.StrandNone:    faldo.Position,
}

// transcriptTypes are the feature types a gene is transcribed_to.
var transcriptTypes = map[string]bool{
	"mRNA":            true,
	"prim_transcript": true,
}

// idPrefix matches the feature-type prefixes some annotation pipelines
// prepend to identifiers (e.g. "gene:Solyc00g005000.2").
var idPrefix = regexp.MustCompile(`gene:|mRNA:|CDS:|exon:|intron:|\w+UTR:`)

// ValidateBaseURI checks that s is an absolute http, https or ftp URI
// with a host, and returns it with any trailing slash removed.
func ValidateBaseURI(s string) (string, error) {
	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid base URI %q: %w", s, err)
	}
	switch u.Scheme {
	case "http", "https", "ftp":
	default:
		return "", fmt.Errorf("invalid base URI %q: scheme must be http, https or ftp", s)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid base URI %q: no host specified", s)
	}
	return strings.TrimRight(u.String(), "/"), nil
}

// Mapper holds the fixed type and strand mappings together with the
// configured URI space. The zero value is not usable; construct with
// NewMapper.
type Mapper struct {
	base    string
	species string
	genome  string // memoized GenomeURI
}

// NewMapper validates base and returns a Mapper rooted there. species
// may be empty, in which case the genome segment carries no species
// path element.
func NewMapper(base, species string) (*Mapper, error) {
	b, err := ValidateBaseURI(base)
	if err != nil {
		return nil, err
	}
	m := &Mapper{base: b, species: species}
	m.genome = m.base + "/genome"
	if species != "" {
		m.genome += "/" + strings.ReplaceAll(species, " ", "_")
	}
	return m, nil
}

// NormalizeID strips recognized feature-type prefixes from a feature
// identifier.
func NormalizeID(id string) string {
	return idPrefix.ReplaceAllString(id, "")
}

// ClassFor returns the Sequence Ontology class IRI for a feature type.
func (m *Mapper) ClassFor(featureType string) (string, error) {
	c, ok := featureClasses[featureType]
	if !ok {
		return "", &UnsupportedTypeError{Kind: "feature type", Value: featureType}
	}
	return c, nil
}

// StrandClass returns the FALDO position class IRI for a strand value.
func (m *Mapper) StrandClass(s gff.Strand) (string, error) {
	c, ok := strandClasses[s]
	if !ok {
		return "", &UnsupportedTypeError{Kind: "strand", Value: string(s)}
	}
	return c, nil
}

// Supported reports whether featureType has a class mapping.
func (m *Mapper) Supported(featureType string) bool {
	_, ok := featureClasses[featureType]
	return ok
}

// IsTranscript reports whether featureType is a transcript produced
// from a gene.
func (m *Mapper) IsTranscript(featureType string) bool {
	return transcriptTypes[featureType]
}

// SupportedTypes returns the supported feature types in sorted order.
func SupportedTypes() []string {
	types := make([]string, 0, len(featureClasses))
	for t := range featureClasses {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// GenomeURI returns the URI of the genome node all features hang off.
func (m *Mapper) GenomeURI() string { return m.genome }

// Species returns the configured species name, possibly empty.
func (m *Mapper) Species() string { return m.species }

// TaxonURI returns the OBO NCBI taxon URI for a taxon ID.
func (m *Mapper) TaxonURI(taxonID int) string { return so.Taxon(taxonID) }

// FeatureURI mints the URI for a feature of the given type. The ID is
// normalized first. Unsupported types fail before any URI is produced.
func (m *Mapper) FeatureURI(featureType, id string) (string, error) {
	if !m.Supported(featureType) {
		return "", &UnsupportedTypeError{Kind: "feature type", Value: featureType}
	}
	return m.genome + "/" + featureType + "/" + NormalizeID(id), nil
}

// ChromosomeURI mints the URI for a reference sequence. Every seqid is
// taken to name a chromosome of the genome.
func (m *Mapper) ChromosomeURI(seqid string) string {
	return m.genome + "/chromosome/" + seqid
}

// RegionURI mints the URI for the [start, end] region on a chromosome.
func (m *Mapper) RegionURI(seqid string, start, end int) string {
	return m.ChromosomeURI(seqid) + "#" + strconv.Itoa(start) + "-" + strconv.Itoa(end)
}

// PositionURI mints the URI for a single position on a chromosome.
func (m *Mapper) PositionURI(seqid string, pos int) string {
	return m.ChromosomeURI(seqid) + "#" + strconv.Itoa(pos)
}
